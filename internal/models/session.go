package models

import (
	"time"
)

// Session represents a server-side login session referenced by an opaque
// cookie token. Concurrent logins by the same user create independent rows.
type Session struct {
	Token     string    `gorm:"primaryKey;size:36" json:"-"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`

	// Define the relationship to User
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// Expired reports whether the session is past its TTL.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
