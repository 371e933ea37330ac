package usecase

import (
	"context"

	"psych-portal-api/internal/converter"
	"psych-portal-api/internal/delivery/dto"
	"psych-portal-api/internal/domain/entity"
	"psych-portal-api/internal/domain/repository"
	"psych-portal-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ProfessionalUsecase interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*dto.ProfessionalResponse, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfessionalResponse, error)
}

type professionalUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	professionalRepo repository.ProfessionalRepository
	auditService     service.AuditService
}

func NewProfessionalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	professionalRepo repository.ProfessionalRepository,
	auditService service.AuditService,
) ProfessionalUsecase {
	return &professionalUsecase{
		db:               db,
		log:              log,
		professionalRepo: professionalRepo,
		auditService:     auditService,
	}
}

func (u *professionalUsecase) GetProfile(ctx context.Context, id uuid.UUID) (*dto.ProfessionalResponse, error) {
	professional, err := u.professionalRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	return converter.ProfessionalToResponse(professional), nil
}

func (u *professionalUsecase) UpdateProfile(ctx context.Context, id uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfessionalResponse, error) {
	db := u.db.WithContext(ctx)

	professional, err := u.professionalRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	professional.FirstName = req.FirstName
	professional.LastName = req.LastName
	dni := req.DNI
	professional.DNI = &dni
	license := req.ProfessionalLicenseNumber
	professional.ProfessionalLicenseNumber = &license

	if err := u.professionalRepo.Update(db, professional); err != nil {
		u.log.Warnf("Failed to update professional profile: %+v", err)
		return nil, err
	}

	u.auditService.Record(db, &professional.ID, entity.AuditActionProfileUpdate, entity.JSON{
		"dni":     req.DNI,
		"license": req.ProfessionalLicenseNumber,
	})

	return converter.ProfessionalToResponse(professional), nil
}
