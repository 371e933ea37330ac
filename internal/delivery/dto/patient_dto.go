package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePatientRequest struct {
	DNI         string  `json:"dni" validate:"required,max=20"`
	FirstName   string  `json:"firstName" validate:"required,max=255"`
	LastName    string  `json:"lastName" validate:"required,max=255"`
	BirthDate   string  `json:"birthDate" validate:"required"`
	MobilePhone string  `json:"mobilePhone" validate:"required,max=30"`
	Email       *string `json:"email" validate:"omitempty,email"`
}

type UpdatePatientRequest struct {
	DNI         string  `json:"dni" validate:"required,max=20"`
	FirstName   string  `json:"firstName" validate:"required,max=255"`
	LastName    string  `json:"lastName" validate:"required,max=255"`
	BirthDate   string  `json:"birthDate" validate:"required"`
	MobilePhone string  `json:"mobilePhone" validate:"required,max=30"`
	Email       *string `json:"email" validate:"omitempty,email"`
}

type PatientResponse struct {
	ID          uuid.UUID `json:"id"`
	DNI         string    `json:"dni"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	BirthDate   string    `json:"birthDate"`
	MobilePhone string    `json:"mobilePhone"`
	Email       *string   `json:"email,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PatientDetailResponse carries the patient together with its related
// records, matching the detail endpoint's include semantics.
type PatientDetailResponse struct {
	PatientResponse
	FamilyContacts []FamilyContactResponse `json:"familyContacts"`
	Appointments   []AppointmentResponse   `json:"appointments"`
	Sessions       []SessionResponse       `json:"sessions"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
