package converter

import (
	"psych-portal-api/internal/delivery/dto"
	"psych-portal-api/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to its DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:             appointment.ID,
		ProfessionalID: appointment.ProfessionalID,
		PatientID:      appointment.PatientID,
		DateTime:       appointment.DateTime,
		Recurrence:     string(appointment.Recurrence),
		Status:         string(appointment.Status),
		CreatedAt:      appointment.CreatedAt,
		UpdatedAt:      appointment.UpdatedAt,
	}

	// Include patient info if preloaded
	if appointment.Patient.ID != uuid.Nil {
		response.Patient = PatientToResponse(&appointment.Patient)
	}

	// Include session info if one exists
	if appointment.Session != nil && appointment.Session.ID != uuid.Nil {
		response.Session = SessionToResponse(appointment.Session)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
