package repository

import (
	"psych-portal-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfessionalRepository interface {
	Create(db *gorm.DB, professional *entity.Professional) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Professional, error)
	FindByUserID(db *gorm.DB, userID string) (*entity.Professional, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Professional, error)
	FindAll(db *gorm.DB) ([]entity.Professional, error)
	Update(db *gorm.DB, professional *entity.Professional) error
}
