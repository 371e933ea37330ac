package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recurrence represents how an appointment repeats
type Recurrence string

const (
	RecurrenceNone    Recurrence = "NONE"
	RecurrenceWeekly  Recurrence = "WEEKLY"
	RecurrenceMonthly Recurrence = "MONTHLY"
)

// IsValid reports whether the value is one of the known recurrence modes.
func (r Recurrence) IsValid() bool {
	switch r {
	case RecurrenceNone, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusReserved  AppointmentStatus = "RESERVADO"
	AppointmentStatusConfirmed AppointmentStatus = "CONFIRMADO"
)

// Appointment represents a scheduled slot between a professional and a
// patient. WEEKLY/MONTHLY creations expand into independent rows that share
// the recurrence tag but not ids or statuses.
type Appointment struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProfessionalID uuid.UUID         `gorm:"type:uuid;not null;index" json:"professionalId"`
	PatientID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"patientId"`
	DateTime       time.Time         `gorm:"not null;index" json:"dateTime"`
	Recurrence     Recurrence        `gorm:"type:varchar(10);not null;default:'NONE'" json:"recurrence"`
	Status         AppointmentStatus `gorm:"type:varchar(20);not null;default:'RESERVADO';index" json:"status"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Professional Professional `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
	Patient      Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Session      *Session     `gorm:"foreignKey:AppointmentID" json:"session,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsConfirmed checks if the appointment has been confirmed by a session
func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}

// Confirm changes appointment status to confirmed
func (a *Appointment) Confirm() {
	a.Status = AppointmentStatusConfirmed
}
