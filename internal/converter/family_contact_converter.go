package converter

import (
	"psych-portal-api/internal/delivery/dto"
	"psych-portal-api/internal/domain/entity"
)

// FamilyContactToResponse converts a FamilyContact entity to its DTO
func FamilyContactToResponse(contact *entity.FamilyContact) *dto.FamilyContactResponse {
	if contact == nil {
		return nil
	}

	return &dto.FamilyContactResponse{
		ID:                    contact.ID,
		PatientID:             contact.PatientID,
		FirstName:             contact.FirstName,
		LastName:              contact.LastName,
		RelationshipToPatient: contact.RelationshipToPatient,
		MobilePhone:           contact.MobilePhone,
		Email:                 contact.Email,
		CreatedAt:             contact.CreatedAt,
		UpdatedAt:             contact.UpdatedAt,
	}
}

// FamilyContactsToResponses converts a slice of FamilyContact entities to DTOs
func FamilyContactsToResponses(contacts []entity.FamilyContact) []dto.FamilyContactResponse {
	responses := make([]dto.FamilyContactResponse, len(contacts))
	for i, contact := range contacts {
		resp := FamilyContactToResponse(&contact)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
