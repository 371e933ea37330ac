package entity

import (
	"time"

	"github.com/google/uuid"
)

// Professional roles
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Professional represents a practitioner account. A record is created on the
// first Google login with only the identity fields filled in; DNI and license
// number arrive later through the profile-completion flow.
type Professional struct {
	ID                        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID                    *string   `gorm:"type:varchar(255);uniqueIndex" json:"userId,omitempty"`
	Email                     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FirstName                 string    `gorm:"type:varchar(255);not null" json:"firstName"`
	LastName                  string    `gorm:"type:varchar(255);not null" json:"lastName"`
	DNI                       *string   `gorm:"type:varchar(20)" json:"dni,omitempty"`
	ProfessionalLicenseNumber *string   `gorm:"type:varchar(50)" json:"professionalLicenseNumber,omitempty"`
	Role                      string    `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	IsActive                  bool      `gorm:"not null;default:true;index" json:"isActive"`
	CreatedAt                 time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt                 time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:ProfessionalID" json:"appointments,omitempty"`
	Sessions     []Session     `gorm:"foreignKey:ProfessionalID" json:"sessions,omitempty"`
}

func (Professional) TableName() string {
	return "professionals"
}

// IsComplete reports whether the profile-completion flow has been finished.
func (p *Professional) IsComplete() bool {
	return p.DNI != nil && *p.DNI != "" &&
		p.ProfessionalLicenseNumber != nil && *p.ProfessionalLicenseNumber != ""
}

// IsAdmin reports whether the professional holds the ADMIN role.
func (p *Professional) IsAdmin() bool {
	return p.Role == RoleAdmin
}
