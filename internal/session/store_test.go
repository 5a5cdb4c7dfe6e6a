package session_test

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"detailing-app-server/internal/models"
	"detailing-app-server/internal/session"
)

func setupStore(t *testing.T) (*session.GormStore, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := models.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	user := models.User{Email: "admin@example.com", Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return session.NewGormStore(db), db
}

func TestSessionLifecycle(t *testing.T) {
	store, _ := setupStore(t)

	sess, err := store.Create(1, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sess.Token == "" {
		t.Fatalf("expected opaque token")
	}

	got, err := store.Get(sess.Token)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserID != 1 {
		t.Fatalf("expected user 1, got %d", got.UserID)
	}

	if err := store.Destroy(sess.Token); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if _, err := store.Get(sess.Token); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after destroy, got %v", err)
	}

	// Destroying again is not an error.
	if err := store.Destroy(sess.Token); err != nil {
		t.Fatalf("repeat destroy: %v", err)
	}
}

func TestSessionUnknownToken(t *testing.T) {
	store, _ := setupStore(t)

	if _, err := store.Get("no-such-token"); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionExpiryDeletesRow(t *testing.T) {
	store, db := setupStore(t)

	sess, err := store.Create(1, -time.Minute) // already expired
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := store.Get(sess.Token); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for expired session, got %v", err)
	}

	// The expired row is removed on sight.
	var count int64
	if err := db.Model(&models.Session{}).Where("token = ?", sess.Token).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected expired session row deleted, found %d", count)
	}
}

func TestConcurrentSessionsForSameUser(t *testing.T) {
	store, _ := setupStore(t)

	a, err := store.Create(1, time.Hour)
	if err != nil {
		t.Fatalf("create a: %v", err)
	}
	b, err := store.Create(1, time.Hour)
	if err != nil {
		t.Fatalf("create b: %v", err)
	}
	if a.Token == b.Token {
		t.Fatalf("expected distinct tokens")
	}

	if err := store.Destroy(a.Token); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if _, err := store.Get(b.Token); err != nil {
		t.Fatalf("second session should be unaffected: %v", err)
	}
}
