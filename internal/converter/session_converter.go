package converter

import (
	"psych-portal-api/internal/delivery/dto"
	"psych-portal-api/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionToResponse converts a Session entity to its DTO
func SessionToResponse(session *entity.Session) *dto.SessionResponse {
	if session == nil {
		return nil
	}

	response := &dto.SessionResponse{
		ID:             session.ID,
		AppointmentID:  session.AppointmentID,
		ProfessionalID: session.ProfessionalID,
		PatientID:      session.PatientID,
		Date:           session.Date,
		Time:           session.Time,
		SessionType:    session.SessionType,
		Notes:          session.Notes,
		CreatedAt:      session.CreatedAt,
		UpdatedAt:      session.UpdatedAt,
	}

	// Include patient info if preloaded
	if session.Patient.ID != uuid.Nil {
		response.Patient = PatientToResponse(&session.Patient)
	}

	// Include appointment info if preloaded
	if session.Appointment.ID != uuid.Nil {
		response.Appointment = AppointmentToResponse(&session.Appointment)
	}

	return response
}

// SessionsToResponses converts a slice of Session entities to DTOs
func SessionsToResponses(sessions []entity.Session) []dto.SessionResponse {
	responses := make([]dto.SessionResponse, len(sessions))
	for i, session := range sessions {
		resp := SessionToResponse(&session)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
