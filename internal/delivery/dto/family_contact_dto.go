package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFamilyContactRequest struct {
	FirstName             string  `json:"firstName" validate:"required,max=255"`
	LastName              string  `json:"lastName" validate:"required,max=255"`
	RelationshipToPatient string  `json:"relationshipToPatient" validate:"required,max=100"`
	MobilePhone           string  `json:"mobilePhone" validate:"required,max=30"`
	Email                 *string `json:"email" validate:"omitempty,email"`
}

type UpdateFamilyContactRequest struct {
	FirstName             string  `json:"firstName" validate:"required,max=255"`
	LastName              string  `json:"lastName" validate:"required,max=255"`
	RelationshipToPatient string  `json:"relationshipToPatient" validate:"required,max=100"`
	MobilePhone           string  `json:"mobilePhone" validate:"required,max=30"`
	Email                 *string `json:"email" validate:"omitempty,email"`
}

type FamilyContactResponse struct {
	ID                    uuid.UUID `json:"id"`
	PatientID             uuid.UUID `json:"patientId"`
	FirstName             string    `json:"firstName"`
	LastName              string    `json:"lastName"`
	RelationshipToPatient string    `json:"relationshipToPatient"`
	MobilePhone           string    `json:"mobilePhone"`
	Email                 *string   `json:"email,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}
