package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	SessionType string `json:"sessionType" validate:"required,max=100"`
	Notes       string `json:"notes"`
}

type UpdateSessionRequest struct {
	SessionType string `json:"sessionType" validate:"required,max=100"`
	Notes       string `json:"notes"`
}

type SessionResponse struct {
	ID             uuid.UUID            `json:"id"`
	AppointmentID  uuid.UUID            `json:"appointmentId"`
	ProfessionalID uuid.UUID            `json:"professionalId"`
	PatientID      uuid.UUID            `json:"patientId"`
	Date           time.Time            `json:"date"`
	Time           time.Time            `json:"time"`
	SessionType    string               `json:"sessionType"`
	Notes          string               `json:"notes"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
	Patient        *PatientResponse     `json:"patient,omitempty"`
	Appointment    *AppointmentResponse `json:"appointment,omitempty"`
}

type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
	Total    int               `json:"total"`
}
