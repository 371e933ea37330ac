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

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) SearchPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.SearchPatients(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		response.InternalServerError(w, "Failed to search patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	professional, ok := middleware.GetProfessionalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.CreatePatient(r.Context(), professional.ID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientDNIExists:
			response.Conflict(w, err.Error())
		case usecase.ErrInvalidBirthDate:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient created successfully", patient)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.UpdatePatient(r.Context(), patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrPatientDNIExists:
			response.Conflict(w, err.Error())
		case usecase.ErrInvalidBirthDate:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	professional, ok := middleware.GetProfessionalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	err = h.patientUsecase.DeletePatient(r.Context(), professional.ID, patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrPatientHasAppointments:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to delete patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient deleted successfully", nil)
}

func (h *PatientHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	contacts, err := h.patientUsecase.ListContacts(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get family contacts")
		return
	}

	response.Success(w, http.StatusOK, "Family contacts retrieved successfully", contacts)
}

func (h *PatientHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	var req dto.CreateFamilyContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	contact, err := h.patientUsecase.CreateContact(r.Context(), patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to create family contact")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Family contact created successfully", contact)
}

func (h *PatientHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	contactID, err := uuid.Parse(mux.Vars(r)["contactId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid contact ID", nil)
		return
	}

	var req dto.UpdateFamilyContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	contact, err := h.patientUsecase.UpdateContact(r.Context(), contactID, &req)
	if err != nil {
		switch err {
		case usecase.ErrContactNotFound:
			response.NotFound(w, "Family contact not found")
		default:
			response.InternalServerError(w, "Failed to update family contact")
		}
		return
	}

	response.Success(w, http.StatusOK, "Family contact updated successfully", contact)
}

func (h *PatientHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	contactID, err := uuid.Parse(mux.Vars(r)["contactId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid contact ID", nil)
		return
	}

	err = h.patientUsecase.DeleteContact(r.Context(), contactID)
	if err != nil {
		switch err {
		case usecase.ErrContactNotFound:
			response.NotFound(w, "Family contact not found")
		default:
			response.InternalServerError(w, "Failed to delete family contact")
		}
		return
	}

	response.Success(w, http.StatusOK, "Family contact deleted successfully", nil)
}
