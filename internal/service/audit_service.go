package service

import (
	"psych-portal-api/internal/domain/entity"
	"psych-portal-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService writes the audit trail. Recording is best-effort from the
// caller's point of view; a failed audit write never fails the request.
type AuditService interface {
	Record(db *gorm.DB, professionalID *uuid.UUID, action string, metadata entity.JSON)
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(db *gorm.DB, professionalID *uuid.UUID, action string, metadata entity.JSON) {
	auditLog := &entity.AuditLog{
		ProfessionalID: professionalID,
		Action:         action,
		Metadata:       metadata,
	}

	if err := s.auditRepo.Create(db, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log for %s: %+v", action, err)
	}
}
