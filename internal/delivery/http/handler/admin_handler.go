package handler

import (
	"net/http"

	"psych-portal-api/internal/delivery/http/middleware"
	"psych-portal-api/internal/usecase"
	"psych-portal-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
	}
}

func (h *AdminHandler) ListProfessionals(w http.ResponseWriter, r *http.Request) {
	professionals, err := h.adminUsecase.ListProfessionals(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get professionals")
		return
	}

	response.Success(w, http.StatusOK, "Professionals retrieved successfully", professionals)
}

func (h *AdminHandler) ToggleProfessionalStatus(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.GetProfessionalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	targetID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	professional, err := h.adminUsecase.ToggleProfessionalStatus(r.Context(), admin.ID, targetID)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		case usecase.ErrCannotDeactivateSelf:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update professional status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Professional status updated successfully", professional)
}
