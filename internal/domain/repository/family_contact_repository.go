package repository

import (
	"psych-portal-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FamilyContactRepository interface {
	Create(db *gorm.DB, contact *entity.FamilyContact) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.FamilyContact, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.FamilyContact, error)
	Update(db *gorm.DB, contact *entity.FamilyContact) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
