package booking

import (
	"testing"
	"time"

	"skillconnect/models"
)

func ts(t time.Time) models.Timestamp {
	return models.Timestamp{Time: t}
}

func ids(bookings []models.Booking) []string {
	out := make([]string, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.ID)
	}
	return out
}

func equalIDs(got []models.Booking, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, b := range got {
		if b.ID != want[i] {
			return false
		}
	}
	return true
}

func TestClassifyCustomerScenario(t *testing.T) {
	now := time.Now()
	bookings := []models.Booking{
		{ID: "b1", Status: models.BookingPending},
		{ID: "b2", Status: models.BookingCompleted, Reviewed: false, CompletedAt: ts(now.Add(-2 * time.Hour))},
		{ID: "b3", Status: models.BookingCancelled},
	}

	active, past := Classify(bookings, models.RoleCustomer, now)
	if !equalIDs(active, []string{"b1", "b2"}) {
		t.Errorf("active = %v, want [b1 b2]", ids(active))
	}
	if !equalIDs(past, []string{"b3"}) {
		t.Errorf("past = %v, want [b3]", ids(past))
	}
}

func TestClassifyProviderScenario(t *testing.T) {
	now := time.Now()
	bookings := []models.Booking{
		{ID: "b1", Status: models.BookingAccepted},
		{ID: "b2", Status: models.BookingRejected},
	}

	active, past := Classify(bookings, models.RoleProvider, now)
	if !equalIDs(active, []string{"b1"}) {
		t.Errorf("active = %v, want [b1]", ids(active))
	}
	if !equalIDs(past, []string{"b2"}) {
		t.Errorf("past = %v, want [b2]", ids(past))
	}
}

func TestClassifyCustomerRules(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		booking    models.Booking
		wantActive bool
	}{
		{"pending", models.Booking{Status: models.BookingPending}, true},
		{"ongoing", models.Booking{Status: models.BookingOngoing}, true},
		{"accepted falls to past", models.Booking{Status: models.BookingAccepted}, false},
		{"rejected falls to past", models.Booking{Status: models.BookingRejected}, false},
		{"cancelled", models.Booking{Status: models.BookingCancelled}, false},
		{
			"completed and reviewed",
			models.Booking{Status: models.BookingCompleted, Reviewed: true, CompletedAt: ts(now.Add(-time.Hour))},
			false,
		},
		{
			"unreviewed inside window",
			models.Booking{Status: models.BookingCompleted, CompletedAt: ts(now.Add(-2 * time.Hour))},
			true,
		},
		{
			"unreviewed exactly at window boundary",
			models.Booking{Status: models.BookingCompleted, CompletedAt: ts(now.Add(-ActiveWindow))},
			true,
		},
		{
			"unreviewed one second past boundary",
			models.Booking{Status: models.BookingCompleted, CompletedAt: ts(now.Add(-ActiveWindow - time.Second))},
			false,
		},
		{
			"falls back to updatedAt when completedAt missing",
			models.Booking{Status: models.BookingCompleted, UpdatedAt: ts(now.Add(-time.Hour))},
			true,
		},
		{
			"completedAt preferred over stale updatedAt",
			models.Booking{
				Status:      models.BookingCompleted,
				CompletedAt: ts(now.Add(-time.Hour)),
				UpdatedAt:   ts(now.Add(-48 * time.Hour)),
			},
			true,
		},
		{
			"missing timestamps degrade to past",
			models.Booking{Status: models.BookingCompleted},
			false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			active, past := Classify([]models.Booking{tc.booking}, models.RoleCustomer, now)
			gotActive := len(active) == 1
			if gotActive != tc.wantActive {
				t.Errorf("active = %v, want %v (active=%d past=%d)", gotActive, tc.wantActive, len(active), len(past))
			}
		})
	}
}

func TestClassifyProviderIgnoresReviewState(t *testing.T) {
	now := time.Now()
	reviewed := models.Booking{ID: "r1", Status: models.BookingCompleted, Reviewed: true, CompletedAt: ts(now.Add(-time.Hour))}
	unreviewed := reviewed
	unreviewed.ID = "r2"
	unreviewed.Reviewed = false

	_, past := Classify([]models.Booking{reviewed, unreviewed}, models.RoleProvider, now)
	if !equalIDs(past, []string{"r1", "r2"}) {
		t.Errorf("past = %v, want both completed bookings regardless of review state", ids(past))
	}
}

func TestClassifyPartitionProperties(t *testing.T) {
	now := time.Now()
	bookings := []models.Booking{
		{ID: "b1", Status: models.BookingPending},
		{ID: "b2", Status: models.BookingAccepted},
		{ID: "b3", Status: models.BookingOngoing},
		{ID: "b4", Status: models.BookingCompleted, CompletedAt: ts(now.Add(-time.Hour))},
		{ID: "b5", Status: models.BookingCompleted, Reviewed: true, CompletedAt: ts(now.Add(-time.Hour))},
		{ID: "b6", Status: models.BookingCancelled},
		{ID: "b7", Status: models.BookingRejected},
		{ID: "b8", Status: models.BookingCompleted, CompletedAt: ts(now.Add(-72 * time.Hour))},
	}

	for _, role := range []models.Role{models.RoleCustomer, models.RoleProvider} {
		active, past := Classify(bookings, role, now)

		if len(active)+len(past) != len(bookings) {
			t.Fatalf("role %s: |active|+|past| = %d, want %d", role, len(active)+len(past), len(bookings))
		}

		seen := make(map[string]bool, len(bookings))
		for _, b := range append(append([]models.Booking{}, active...), past...) {
			if seen[b.ID] {
				t.Fatalf("role %s: booking %s appears in both buckets", role, b.ID)
			}
			seen[b.ID] = true
		}

		// Relative order within each bucket must match the input order.
		for _, bucket := range [][]models.Booking{active, past} {
			last := -1
			for _, b := range bucket {
				idx := indexOf(bookings, b.ID)
				if idx <= last {
					t.Fatalf("role %s: bucket order %v does not preserve input order", role, ids(bucket))
				}
				last = idx
			}
		}
	}
}

func indexOf(bookings []models.Booking, id string) int {
	for i, b := range bookings {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func TestClassifyEmptyInput(t *testing.T) {
	active, past := Classify(nil, models.RoleCustomer, time.Now())
	if len(active) != 0 || len(past) != 0 {
		t.Errorf("expected empty buckets, got active=%d past=%d", len(active), len(past))
	}
}
