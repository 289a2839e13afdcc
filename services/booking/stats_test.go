package booking

import (
	"testing"
	"time"

	"skillconnect/models"
)

func TestSnapshotProvider(t *testing.T) {
	now := time.Now()
	bookings := []models.Booking{
		{ID: "b1", Status: models.BookingPending, Price: 500},
		{ID: "b2", Status: models.BookingAccepted, Price: 300},
		{ID: "b3", Status: models.BookingCompleted, Price: 750, CompletedAt: ts(now.Add(-time.Hour))},
		{ID: "b4", Status: models.BookingCompleted, Price: 250, Reviewed: true, CompletedAt: ts(now.Add(-48 * time.Hour))},
		{ID: "b5", Status: models.BookingCancelled, Price: 100},
	}

	stats := Snapshot(bookings, models.RoleProvider, now)

	if stats.Total != 5 {
		t.Errorf("Total = %d, want 5", stats.Total)
	}
	if stats.Active != 2 {
		t.Errorf("Active = %d, want 2", stats.Active)
	}
	if stats.Past != 3 {
		t.Errorf("Past = %d, want 3", stats.Past)
	}
	if stats.Completed != 2 {
		t.Errorf("Completed = %d, want 2", stats.Completed)
	}
	if stats.Earnings != 1000 {
		t.Errorf("Earnings = %v, want 1000 (completed bookings only)", stats.Earnings)
	}
}

func TestSnapshotZeroPriceCompleted(t *testing.T) {
	now := time.Now()
	bookings := []models.Booking{
		{ID: "b1", Status: models.BookingCompleted, CompletedAt: ts(now.Add(-time.Hour))},
	}

	stats := Snapshot(bookings, models.RoleCustomer, now)
	if stats.Completed != 1 || stats.Earnings != 0 {
		t.Errorf("Completed = %d Earnings = %v, want 1 and 0", stats.Completed, stats.Earnings)
	}
}

func TestSnapshotEmpty(t *testing.T) {
	stats := Snapshot(nil, models.RoleCustomer, time.Now())
	if stats != (Stats{}) {
		t.Errorf("Snapshot(nil) = %+v, want zero stats", stats)
	}
}
