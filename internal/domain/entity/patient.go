package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a patient record. Patients are shared across the
// practice; only appointments and sessions are scoped per professional.
type Patient struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DNI         string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"dni"`
	FirstName   string    `gorm:"type:varchar(255);not null" json:"firstName"`
	LastName    string    `gorm:"type:varchar(255);not null;index" json:"lastName"`
	BirthDate   time.Time `gorm:"type:date;not null" json:"birthDate"`
	MobilePhone string    `gorm:"type:varchar(30);not null" json:"mobilePhone"`
	Email       *string   `gorm:"type:varchar(255)" json:"email,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	FamilyContacts []FamilyContact `gorm:"foreignKey:PatientID" json:"familyContacts,omitempty"`
	Appointments   []Appointment   `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
	Sessions       []Session       `gorm:"foreignKey:PatientID" json:"sessions,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
