package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	PatientID  string `json:"patientId" validate:"required,uuid"`
	DateTime   string `json:"dateTime" validate:"required"`
	Recurrence string `json:"recurrence" validate:"omitempty,oneof=NONE WEEKLY MONTHLY"`
	Status     string `json:"status" validate:"omitempty,oneof=RESERVADO CONFIRMADO"`
}

type UpdateAppointmentRequest struct {
	PatientID string `json:"patientId" validate:"omitempty,uuid"`
	DateTime  string `json:"dateTime"`
	Status    string `json:"status" validate:"omitempty,oneof=RESERVADO CONFIRMADO"`
}

type AppointmentResponse struct {
	ID             uuid.UUID        `json:"id"`
	ProfessionalID uuid.UUID        `json:"professionalId"`
	PatientID      uuid.UUID        `json:"patientId"`
	DateTime       time.Time        `json:"dateTime"`
	Recurrence     string           `json:"recurrence"`
	Status         string           `json:"status"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
	Patient        *PatientResponse `json:"patient,omitempty"`
	Session        *SessionResponse `json:"session,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// CreateAppointmentResponse reports how many rows the recurrence expansion
// actually inserted.
type CreateAppointmentResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type AppointmentStatsResponse struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
}
