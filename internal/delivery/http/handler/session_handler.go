package handler

import (
	"encoding/json"
	"net/http"

	"psych-portal-api/internal/delivery/dto"
	"psych-portal-api/internal/delivery/http/middleware"
	"psych-portal-api/internal/usecase"
	"psych-portal-api/pkg/response"
	"psych-portal-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type SessionHandler struct {
	sessionUsecase usecase.SessionUsecase
	validator      *validator.CustomValidator
}

func NewSessionHandler(sessionUsecase usecase.SessionUsecase, validator *validator.CustomValidator) *SessionHandler {
	return &SessionHandler{
		sessionUsecase: sessionUsecase,
		validator:      validator,
	}
}

func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	professional, ok := middleware.GetProfessionalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	sessions, err := h.sessionUsecase.ListSessions(r.Context(), professional.ID)
	if err != nil {
		response.InternalServerError(w, "Failed to get sessions")
		return
	}

	response.Success(w, http.StatusOK, "Sessions retrieved successfully", sessions)
}

func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	professional, ok := middleware.GetProfessionalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	sessionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid session ID", nil)
		return
	}

	session, err := h.sessionUsecase.GetSession(r.Context(), professional.ID, sessionID)
	if err != nil {
		switch err {
		case usecase.ErrSessionNotFound:
			response.NotFound(w, "Session not found")
		case usecase.ErrNotSessionOwner:
			response.Forbidden(w, "Session does not belong to you")
		default:
			response.InternalServerError(w, "Failed to get session")
		}
		return
	}

	response.Success(w, http.StatusOK, "Session retrieved successfully", session)
}

// CreateSession opens the clinical record for an appointment. The appointment
// is confirmed in the same transaction.
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	professional, ok := middleware.GetProfessionalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	session, err := h.sessionUsecase.CreateFromAppointment(r.Context(), professional.ID, appointmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrNotAppointmentOwner:
			response.Forbidden(w, "Appointment does not belong to you")
		case usecase.ErrSessionAlreadyExists:
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create session")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Session created successfully", session)
}

func (h *SessionHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	professional, ok := middleware.GetProfessionalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	sessionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid session ID", nil)
		return
	}

	var req dto.UpdateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	session, err := h.sessionUsecase.UpdateSession(r.Context(), professional.ID, sessionID, &req)
	if err != nil {
		switch err {
		case usecase.ErrSessionNotFound:
			response.NotFound(w, "Session not found")
		case usecase.ErrNotSessionOwner:
			response.Forbidden(w, "Session does not belong to you")
		default:
			response.InternalServerError(w, "Failed to update session")
		}
		return
	}

	response.Success(w, http.StatusOK, "Session updated successfully", session)
}

func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	professional, ok := middleware.GetProfessionalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	sessionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid session ID", nil)
		return
	}

	err = h.sessionUsecase.DeleteSession(r.Context(), professional.ID, sessionID)
	if err != nil {
		switch err {
		case usecase.ErrSessionNotFound:
			response.NotFound(w, "Session not found")
		case usecase.ErrNotSessionOwner:
			response.Forbidden(w, "Session does not belong to you")
		default:
			response.InternalServerError(w, "Failed to delete session")
		}
		return
	}

	response.Success(w, http.StatusOK, "Session deleted successfully", nil)
}
