package repository

import (
	"psych-portal-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(db *gorm.DB, session *entity.Session) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Session, error)
	FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.Session, error)
	FindByProfessional(db *gorm.DB, professionalID uuid.UUID) ([]entity.Session, error)
	CountByProfessional(db *gorm.DB, professionalID uuid.UUID) (int64, error)
	Update(db *gorm.DB, session *entity.Session) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
