package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the clinical record written after an appointment takes place.
// At most one session exists per appointment; the unique index on
// AppointmentID is what enforces that under concurrent creates.
type Session struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"appointmentId"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;not null;index" json:"professionalId"`
	PatientID      uuid.UUID `gorm:"type:uuid;not null;index" json:"patientId"`
	Date           time.Time `gorm:"not null;index" json:"date"`
	Time           time.Time `gorm:"not null" json:"time"`
	SessionType    string    `gorm:"type:varchar(100)" json:"sessionType"`
	Notes          string    `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Appointment  Appointment  `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Professional Professional `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
	Patient      Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Session) TableName() string {
	return "sessions"
}
