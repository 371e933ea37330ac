package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuthSession is one server-side HTTP session row. The ID is the opaque
// value stored in the browser cookie; it is never derived from the
// professional's identity.
type AuthSession struct {
	ID             string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;not null;index" json:"professionalId"`
	ExpiresAt      time.Time `gorm:"not null;index" json:"expiresAt"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`

	// Relationships
	Professional Professional `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
}

func (AuthSession) TableName() string {
	return "http_sessions"
}

// IsExpired reports whether the session has passed its expiry instant.
func (s *AuthSession) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
