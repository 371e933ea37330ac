package usecase

import (
	"context"
	"errors"

	"psych-portal-api/internal/domain/entity"
	"psych-portal-api/internal/domain/repository"
	"psych-portal-api/internal/infrastructure/oauth"
	"psych-portal-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	// ErrAccountDisabled carries the user-facing denial for deactivated accounts.
	ErrAccountDisabled      = errors.New("Tu cuenta ha sido desactivada. Contacta al administrador.")
	ErrProfessionalNotFound = errors.New("professional not found")
)

type AuthUsecase interface {
	// ResolveGoogleIdentity maps a Google profile onto a local professional:
	// found by subject id, linked by email, or created fresh.
	ResolveGoogleIdentity(ctx context.Context, profile *oauth.GoogleProfile) (*entity.Professional, error)
	GetProfessional(ctx context.Context, id uuid.UUID) (*entity.Professional, error)
	RecordLogout(ctx context.Context, professionalID uuid.UUID)
}

type authUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	professionalRepo repository.ProfessionalRepository
	auditService     service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	professionalRepo repository.ProfessionalRepository,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:               db,
		log:              log,
		professionalRepo: professionalRepo,
		auditService:     auditService,
	}
}

func (u *authUsecase) ResolveGoogleIdentity(ctx context.Context, profile *oauth.GoogleProfile) (*entity.Professional, error) {
	db := u.db.WithContext(ctx)

	professional, err := u.professionalRepo.FindByUserID(db, profile.ID)
	if err != nil {
		u.log.Warnf("Failed to find professional by user id: %+v", err)
		return nil, err
	}

	if professional == nil {
		professional, err = u.professionalRepo.FindByEmail(db, profile.Email)
		if err != nil {
			u.log.Warnf("Failed to find professional by email: %+v", err)
			return nil, err
		}

		if professional != nil {
			// Attach the Google subject to the existing record. Linking by
			// email is safe only because Google verifies addresses; an
			// unverified provider must not reuse this path.
			userID := profile.ID
			professional.UserID = &userID
			if err := u.professionalRepo.Update(db, professional); err != nil {
				u.log.Warnf("Failed to link google identity: %+v", err)
				return nil, err
			}
		} else {
			// First login: create a partial record. DNI and license number
			// arrive later through the profile-completion flow.
			userID := profile.ID
			professional = &entity.Professional{
				UserID:    &userID,
				Email:     profile.Email,
				FirstName: profile.GivenName,
				LastName:  profile.FamilyName,
				Role:      entity.RoleUser,
				IsActive:  true,
			}
			if err := u.professionalRepo.Create(db, professional); err != nil {
				if isDuplicateKeyError(err, "email") || isDuplicateKeyError(err, "user_id") {
					// Lost a race against a concurrent first login; reread.
					return u.ResolveGoogleIdentity(ctx, profile)
				}
				u.log.Warnf("Failed to create professional: %+v", err)
				return nil, err
			}
		}
	}

	if !professional.IsActive {
		return nil, ErrAccountDisabled
	}

	u.auditService.Record(db, &professional.ID, entity.AuditActionLogin, entity.JSON{
		"email": professional.Email,
	})

	return professional, nil
}

func (u *authUsecase) GetProfessional(ctx context.Context, id uuid.UUID) (*entity.Professional, error) {
	professional, err := u.professionalRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find professional by id: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}
	return professional, nil
}

func (u *authUsecase) RecordLogout(ctx context.Context, professionalID uuid.UUID) {
	u.auditService.Record(u.db.WithContext(ctx), &professionalID, entity.AuditActionLogout, nil)
}
