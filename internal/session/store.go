package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"detailing-app-server/internal/models"
)

// ErrNotFound is returned when no live session exists for a token.
var ErrNotFound = errors.New("session not found")

// Store is the server-side session store: opaque token in, identity out.
// It is injected into the auth middleware and handlers so the request
// layer never touches in-process session state.
type Store interface {
	Create(userID uint, ttl time.Duration) (*models.Session, error)
	Get(token string) (*models.Session, error)
	Destroy(token string) error
}

// GormStore persists sessions in the application database, one row per
// active session.
type GormStore struct {
	DB *gorm.DB
}

// NewGormStore creates a database-backed session store.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// Create issues a new session for the user with a random opaque token.
func (s *GormStore) Create(userID uint, ttl time.Duration) (*models.Session, error) {
	sess := models.Session{
		Token:     uuid.New().String(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := s.DB.Create(&sess).Error; err != nil {
		return nil, err
	}
	return &sess, nil
}

// Get looks up a session by token. Expired sessions are deleted on sight
// and reported as ErrNotFound.
func (s *GormStore) Get(token string) (*models.Session, error) {
	var sess models.Session
	if err := s.DB.First(&sess, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if sess.Expired() {
		if err := s.DB.Delete(&models.Session{}, "token = ?", token).Error; err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}

	return &sess, nil
}

// Destroy removes a session. Destroying an unknown token is not an error.
func (s *GormStore) Destroy(token string) error {
	return s.DB.Delete(&models.Session{}, "token = ?", token).Error
}
