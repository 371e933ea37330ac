package repository

import (
	"psych-portal-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	FindByIDWithRelations(db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	FindByDNI(db *gorm.DB, dni string) (*entity.Patient, error)
	Search(db *gorm.DB, search string) ([]entity.Patient, error)
	Update(db *gorm.DB, patient *entity.Patient) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
