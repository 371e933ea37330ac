package handler

import (
	"encoding/json"
	"net/http"

	"psych-portal-api/internal/delivery/dto"
	"psych-portal-api/internal/delivery/http/middleware"
	"psych-portal-api/internal/usecase"
	"psych-portal-api/pkg/response"
	"psych-portal-api/pkg/validator"
)

type ProfessionalHandler struct {
	professionalUsecase usecase.ProfessionalUsecase
	validator           *validator.CustomValidator
}

func NewProfessionalHandler(professionalUsecase usecase.ProfessionalUsecase, validator *validator.CustomValidator) *ProfessionalHandler {
	return &ProfessionalHandler{
		professionalUsecase: professionalUsecase,
		validator:           validator,
	}
}

func (h *ProfessionalHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	professional, ok := middleware.GetProfessionalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	profile, err := h.professionalUsecase.GetProfile(r.Context(), professional.ID)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		default:
			response.InternalServerError(w, "Failed to get profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}

func (h *ProfessionalHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	professional, ok := middleware.GetProfessionalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.professionalUsecase.UpdateProfile(r.Context(), professional.ID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		default:
			response.InternalServerError(w, "Failed to update profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", profile)
}
