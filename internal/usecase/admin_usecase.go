package usecase

import (
	"context"
	"errors"

	"psych-portal-api/internal/converter"
	"psych-portal-api/internal/delivery/dto"
	"psych-portal-api/internal/domain/entity"
	"psych-portal-api/internal/domain/repository"
	"psych-portal-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrCannotDeactivateSelf carries the user-facing message for the self-toggle guard.
var ErrCannotDeactivateSelf = errors.New("No puedes desactivar tu propia cuenta.")

type AdminUsecase interface {
	ListProfessionals(ctx context.Context) (*dto.ProfessionalListResponse, error)
	ToggleProfessionalStatus(ctx context.Context, adminID uuid.UUID, targetID uuid.UUID) (*dto.ProfessionalResponse, error)
}

type adminUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	professionalRepo repository.ProfessionalRepository
	auditService     service.AuditService
}

func NewAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	professionalRepo repository.ProfessionalRepository,
	auditService service.AuditService,
) AdminUsecase {
	return &adminUsecase{
		db:               db,
		log:              log,
		professionalRepo: professionalRepo,
		auditService:     auditService,
	}
}

func (u *adminUsecase) ListProfessionals(ctx context.Context) (*dto.ProfessionalListResponse, error) {
	professionals, err := u.professionalRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list professionals: %+v", err)
		return nil, err
	}

	responses := converter.ProfessionalsToResponses(professionals)
	return &dto.ProfessionalListResponse{
		Professionals: responses,
		Total:         len(responses),
	}, nil
}

func (u *adminUsecase) ToggleProfessionalStatus(ctx context.Context, adminID uuid.UUID, targetID uuid.UUID) (*dto.ProfessionalResponse, error) {
	db := u.db.WithContext(ctx)

	professional, err := u.professionalRepo.FindByID(db, targetID)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	// Admins cannot lock themselves out.
	if professional.ID == adminID {
		return nil, ErrCannotDeactivateSelf
	}

	professional.IsActive = !professional.IsActive

	if err := u.professionalRepo.Update(db, professional); err != nil {
		u.log.Warnf("Failed to toggle professional status: %+v", err)
		return nil, err
	}

	u.auditService.Record(db, &adminID, entity.AuditActionProfessionalToggle, entity.JSON{
		"professional_id": targetID.String(),
		"is_active":       professional.IsActive,
	})

	return converter.ProfessionalToResponse(professional), nil
}
