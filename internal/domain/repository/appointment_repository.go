package repository

import (
	"time"

	"psych-portal-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	CreateBatch(db *gorm.DB, appointments []entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindOwned(db *gorm.DB, id uuid.UUID, professionalID uuid.UUID) (*entity.Appointment, error)
	FindByProfessional(db *gorm.DB, professionalID uuid.UUID) ([]entity.Appointment, error)
	FindByProfessionalInRange(db *gorm.DB, professionalID uuid.UUID, start, end time.Time) ([]entity.Appointment, error)
	CountByProfessional(db *gorm.DB, professionalID uuid.UUID) (int64, error)
	CountByPatient(db *gorm.DB, patientID uuid.UUID) (int64, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
