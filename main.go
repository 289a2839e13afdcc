// File: skillconnect/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"skillconnect/api"
	"skillconnect/config"
	"skillconnect/models"
	"skillconnect/services/booking"
	"skillconnect/services/session"
	"skillconnect/services/storage"
	"skillconnect/utils"

	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	store, err := newCredentialStore()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize credential store: %v", err)
	}

	sessions := session.NewManager(store)
	sessions.Restore()
	client := api.NewClient(config.AppConfig.APIBaseURL, sessions)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	command := "dashboard"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "login":
		if len(os.Args) != 4 {
			logger.Sugar().Fatal("usage: skillconnect login <email> <password>")
		}
		identity, err := client.Login(ctx, os.Args[2], os.Args[3])
		if err != nil {
			logger.Sugar().Fatalf("main: login failed: %v", err)
		}
		fmt.Printf("Logged in as %s (%s)\n", identity.Name, identity.Role)

	case "register":
		if len(os.Args) != 6 {
			logger.Sugar().Fatal("usage: skillconnect register <name> <email> <password> <customer|provider>")
		}
		identity, err := client.Register(ctx, os.Args[2], os.Args[3], os.Args[4], models.Role(os.Args[5]))
		if err != nil {
			logger.Sugar().Fatalf("main: registration failed: %v", err)
		}
		fmt.Printf("Registered %s as %s\n", identity.Email, identity.Role)

	case "logout":
		if err := client.Logout(); err != nil {
			logger.Sugar().Fatalf("main: logout failed: %v", err)
		}
		fmt.Println("Logged out")

	case "services":
		var services []models.Service
		if len(os.Args) > 2 {
			services, err = client.SearchServices(ctx, os.Args[2])
		} else {
			services, err = client.ListServices(ctx)
		}
		if err != nil {
			logger.Sugar().Fatalf("main: failed to fetch services: %v", err)
		}
		for _, s := range services {
			fmt.Printf("%-24s %-14s %8.2f  by %s\n", s.Title, s.Category, s.Price, s.Provider.Name)
		}

	case "dashboard":
		renderDashboard(ctx, client, sessions)

	default:
		logger.Sugar().Fatalf("unknown command %q", command)
	}
}

// renderDashboard prints the active/past buckets and stat cards for the
// signed-in account, customer or provider.
func renderDashboard(ctx context.Context, client *api.Client, sessions session.Manager) {
	logger := utils.GetLogger()

	current := sessions.Current()
	if !current.Active() {
		logger.Sugar().Fatal("main: not logged in; run: skillconnect login <email> <password>")
	}
	identity := current.Identity

	var bookings []models.Booking
	var err error
	if identity.Role.IsProvider() {
		bookings, err = client.ProviderBookings(ctx)
	} else {
		bookings, err = client.UserBookings(ctx)
	}
	if err != nil {
		logger.Sugar().Fatalf("main: failed to fetch bookings: %v", err)
	}

	now := time.Now()
	active, past := booking.Classify(bookings, identity.Role, now)
	stats := booking.Snapshot(bookings, identity.Role, now)

	fmt.Printf("%s <%s> [%s]\n\n", identity.Name, identity.Email, identity.Role)
	fmt.Printf("Total: %d  Active: %d  Past: %d  Completed: %d", stats.Total, stats.Active, stats.Past, stats.Completed)
	if identity.Role.IsProvider() {
		fmt.Printf("  Earnings: %.2f", stats.Earnings)
	}
	fmt.Println()

	printBucket("Active bookings", active)
	printBucket("Past bookings", past)
}

func printBucket(title string, bookings []models.Booking) {
	fmt.Printf("\n%s:\n", title)
	if len(bookings) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, b := range bookings {
		line := fmt.Sprintf("  %-24s %-10s", b.Service.Title, b.Status)
		if b.Price > 0 {
			line += fmt.Sprintf("  %8.2f", b.Price)
		}
		if b.Reviewed {
			line += fmt.Sprintf("  reviewed %d/5", b.Rating)
		}
		fmt.Println(line)
	}
}

// newCredentialStore builds the configured persistence backend.
func newCredentialStore() (storage.CredentialStore, error) {
	switch config.AppConfig.CredentialStore {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisSessionDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if _, err := client.Ping(ctx).Result(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		return storage.NewRedisStore(client, ""), nil
	default:
		return storage.NewFileStore(config.AppConfig.CredentialDir)
	}
}
