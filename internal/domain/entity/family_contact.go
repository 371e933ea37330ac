package entity

import (
	"time"

	"github.com/google/uuid"
)

// FamilyContact is a relative or emergency contact attached to one patient.
type FamilyContact struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID             uuid.UUID `gorm:"type:uuid;not null;index" json:"patientId"`
	FirstName             string    `gorm:"type:varchar(255);not null" json:"firstName"`
	LastName              string    `gorm:"type:varchar(255);not null" json:"lastName"`
	RelationshipToPatient string    `gorm:"type:varchar(100);not null" json:"relationshipToPatient"`
	MobilePhone           string    `gorm:"type:varchar(30);not null" json:"mobilePhone"`
	Email                 *string   `gorm:"type:varchar(255)" json:"email,omitempty"`
	CreatedAt             time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (FamilyContact) TableName() string {
	return "family_contacts"
}
