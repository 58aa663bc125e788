package sqllite

import (
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Sharjeel-22/request-management-system/internal/domain"
	"github.com/Sharjeel-22/request-management-system/internal/repository"
	"github.com/Sharjeel-22/request-management-system/test/integration"
)

func openTestDatabase(t *testing.T) *sql.DB {
	t.Helper()

	dbName := os.Getenv("RMS_DATABASE_SQLLITE_FILE_NAME")
	db, err := sql.Open("sqlite3", dbName)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// Create the schema directly rather than going through the full
	// app setup; these tests target the repositories only.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			password TEXT NOT NULL,
			role TEXT NOT NULL,
			created DATETIME,
			enabled BOOLEAN
		);
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id),
			role TEXT NOT NULL,
			email TEXT NOT NULL,
			name TEXT NOT NULL,
			login_time DATETIME NOT NULL,
			expiry DATETIME NOT NULL
		);
	`)
	if err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return db
}

func TestUserRepository(t *testing.T) {
	runTestWithSetup(t, func(t *testing.T) {
		clock := integration.NewFakeClock(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC))
		db := openTestDatabase(t)
		userRepo := repository.NewUserRepository(db, clock)

		u := &domain.User{
			Email:    "admin@company.com",
			Name:     "Admin User",
			Password: "hashed",
			Role:     "admin",
			Enabled:  sql.NullBool{Bool: true, Valid: true},
		}
		id, err := userRepo.Save(u)
		if err != nil {
			t.Fatalf("Failed to save user: %v", err)
		}
		if id == 0 {
			t.Errorf("Expected a generated id")
		}

		found, err := userRepo.FindByEmail("admin@company.com")
		if err != nil {
			t.Fatalf("FindByEmail returned error: %v", err)
		}
		if found == nil {
			t.Fatal("Saved user not found")
		}
		if found.Name != "Admin User" || found.Role != "admin" {
			t.Errorf("Unexpected user row: %+v", found)
		}
		if !found.Created.Valid {
			t.Errorf("Created not stamped on save")
		}

		missing, err := userRepo.FindByEmail("ghost@company.com")
		if err != nil {
			t.Fatalf("FindByEmail returned error: %v", err)
		}
		if missing != nil {
			t.Errorf("Expected nil for unknown email, got %+v", missing)
		}

		all, err := userRepo.FindAll()
		if err != nil {
			t.Fatalf("FindAll returned error: %v", err)
		}
		if len(*all) != 1 {
			t.Errorf("Expected 1 user, got %d", len(*all))
		}
	})
}

func TestSessionRepository(t *testing.T) {
	runTestWithSetup(t, func(t *testing.T) {
		clock := integration.NewFakeClock(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC))
		db := openTestDatabase(t)
		userRepo := repository.NewUserRepository(db, clock)
		sessionRepo := repository.NewSessionRepository(db, clock)

		uid, err := userRepo.Save(&domain.User{
			Email:    "finance@company.com",
			Name:     "Finance Team",
			Password: "hashed",
			Role:     "finance",
			Enabled:  sql.NullBool{Bool: true, Valid: true},
		})
		if err != nil {
			t.Fatalf("Failed to save user: %v", err)
		}

		session := &domain.Session{
			ID:        "11111111-2222-3333-4444-555555555555",
			UserID:    uid,
			Role:      "finance",
			Email:     "finance@company.com",
			Name:      "Finance Team",
			LoginTime: clock.Now(),
			Expiry:    clock.Now().Add(time.Hour),
		}
		if err := sessionRepo.Save(session); err != nil {
			t.Fatalf("Failed to save session: %v", err)
		}

		live, err := sessionRepo.FindLive(session.ID, clock.Now())
		if err != nil {
			t.Fatalf("FindLive returned error: %v", err)
		}
		if live == nil {
			t.Fatal("Live session not found")
		}
		if live.Email != "finance@company.com" || live.UserID != uid {
			t.Errorf("Unexpected session row: %+v", live)
		}

		// Past expiry the session no longer resolves.
		expired, err := sessionRepo.FindLive(session.ID, clock.Now().Add(2*time.Hour))
		if err != nil {
			t.Fatalf("FindLive returned error: %v", err)
		}
		if expired != nil {
			t.Errorf("Expired session still resolved")
		}

		// DeleteExpired prunes it once time has moved past expiry.
		n, err := sessionRepo.DeleteExpired(clock.Now().Add(2 * time.Hour))
		if err != nil {
			t.Fatalf("DeleteExpired returned error: %v", err)
		}
		if n != 1 {
			t.Errorf("Expected 1 pruned session, got %d", n)
		}

		// Delete on a missing row is a no-op.
		if err := sessionRepo.Delete(session.ID); err != nil {
			t.Errorf("Delete returned error: %v", err)
		}
	})
}
