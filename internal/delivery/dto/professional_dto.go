package dto

import (
	"time"

	"github.com/google/uuid"
)

// ProfessionalResponse mirrors the stored record, including the profile
// fields that are still nil before the completion flow has run.
type ProfessionalResponse struct {
	ID                        uuid.UUID `json:"id"`
	UserID                    *string   `json:"userId,omitempty"`
	Email                     string    `json:"email"`
	FirstName                 string    `json:"firstName"`
	LastName                  string    `json:"lastName"`
	DNI                       *string   `json:"dni"`
	ProfessionalLicenseNumber *string   `json:"professionalLicenseNumber"`
	Role                      string    `json:"role"`
	IsActive                  bool      `json:"isActive"`
	ProfileComplete           bool      `json:"profileComplete"`
	CreatedAt                 time.Time `json:"createdAt"`
	UpdatedAt                 time.Time `json:"updatedAt"`
}

type UpdateProfileRequest struct {
	FirstName                 string `json:"firstName" validate:"required,max=255"`
	LastName                  string `json:"lastName" validate:"required,max=255"`
	DNI                       string `json:"dni" validate:"required,max=20"`
	ProfessionalLicenseNumber string `json:"professionalLicenseNumber" validate:"required,max=50"`
}

type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
	Total         int                    `json:"total"`
}
