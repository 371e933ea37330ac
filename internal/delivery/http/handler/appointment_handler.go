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

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	professional, ok := middleware.GetProfessionalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	query := r.URL.Query()
	filter := usecase.AppointmentFilter{
		StartDate: query.Get("startDate"),
		EndDate:   query.Get("endDate"),
		Today:     query.Get("today") == "true",
	}

	appointments, err := h.appointmentUsecase.ListAppointments(r.Context(), professional.ID, filter)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateTime:
			response.Error(w, http.StatusBadRequest, "Invalid date range", nil)
		default:
			response.InternalServerError(w, "Failed to get appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetWeek(w http.ResponseWriter, r *http.Request) {
	professional, ok := middleware.GetProfessionalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	appointments, err := h.appointmentUsecase.GetWeek(r.Context(), professional.ID, r.URL.Query().Get("date"))
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateTime:
			response.Error(w, http.StatusBadRequest, "Invalid date", nil)
		default:
			response.InternalServerError(w, "Failed to get week appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Week appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	professional, ok := middleware.GetProfessionalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	stats, err := h.appointmentUsecase.GetStats(r.Context(), professional.ID)
	if err != nil {
		response.InternalServerError(w, "Failed to get appointment stats")
		return
	}

	response.Success(w, http.StatusOK, "Appointment stats retrieved successfully", stats)
}

func (h *AppointmentHandler) CreateAppointments(w http.ResponseWriter, r *http.Request) {
	professional, ok := middleware.GetProfessionalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.appointmentUsecase.CreateAppointments(r.Context(), professional.ID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidPatientID:
			response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		case usecase.ErrInvalidDateTime:
			response.Error(w, http.StatusBadRequest, "Invalid date/time", nil)
		default:
			response.InternalServerError(w, "Failed to create appointments")
		}
		return
	}

	response.Success(w, http.StatusCreated, result.Message, result)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
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

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), professional.ID, appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to get appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
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

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), professional.ID, appointmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidPatientID:
			response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		case usecase.ErrInvalidDateTime:
			response.Error(w, http.StatusBadRequest, "Invalid date/time", nil)
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
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

	err = h.appointmentUsecase.DeleteAppointment(r.Context(), professional.ID, appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to delete appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}
