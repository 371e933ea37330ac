package converter

import (
	"psych-portal-api/internal/delivery/dto"
	"psych-portal-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:          patient.ID,
		DNI:         patient.DNI,
		FirstName:   patient.FirstName,
		LastName:    patient.LastName,
		BirthDate:   patient.BirthDate.Format("2006-01-02"),
		MobilePhone: patient.MobilePhone,
		Email:       patient.Email,
		CreatedAt:   patient.CreatedAt,
		UpdatedAt:   patient.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to response DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, patient := range patients {
		resp := PatientToResponse(&patient)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// PatientToDetailResponse converts a Patient entity with preloaded relations
// to the detail DTO.
func PatientToDetailResponse(patient *entity.Patient) *dto.PatientDetailResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientDetailResponse{
		PatientResponse: *PatientToResponse(patient),
		FamilyContacts:  FamilyContactsToResponses(patient.FamilyContacts),
		Appointments:    AppointmentsToResponses(patient.Appointments),
		Sessions:        SessionsToResponses(patient.Sessions),
	}
}
