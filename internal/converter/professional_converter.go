package converter

import (
	"psych-portal-api/internal/delivery/dto"
	"psych-portal-api/internal/domain/entity"
)

// ProfessionalToResponse converts a Professional entity to ProfessionalResponse DTO
func ProfessionalToResponse(professional *entity.Professional) *dto.ProfessionalResponse {
	if professional == nil {
		return nil
	}

	return &dto.ProfessionalResponse{
		ID:                        professional.ID,
		UserID:                    professional.UserID,
		Email:                     professional.Email,
		FirstName:                 professional.FirstName,
		LastName:                  professional.LastName,
		DNI:                       professional.DNI,
		ProfessionalLicenseNumber: professional.ProfessionalLicenseNumber,
		Role:                      professional.Role,
		IsActive:                  professional.IsActive,
		ProfileComplete:           professional.IsComplete(),
		CreatedAt:                 professional.CreatedAt,
		UpdatedAt:                 professional.UpdatedAt,
	}
}

// ProfessionalsToResponses converts a slice of Professional entities to response DTOs
func ProfessionalsToResponses(professionals []entity.Professional) []dto.ProfessionalResponse {
	responses := make([]dto.ProfessionalResponse, len(professionals))
	for i, professional := range professionals {
		resp := ProfessionalToResponse(&professional)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
