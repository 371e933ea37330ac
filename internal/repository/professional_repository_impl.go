package repository

import (
	"errors"

	"psych-portal-api/internal/domain/entity"
	domainRepo "psych-portal-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type professionalRepository struct{}

func NewProfessionalRepository() domainRepo.ProfessionalRepository {
	return &professionalRepository{}
}

func (r *professionalRepository) Create(db *gorm.DB, professional *entity.Professional) error {
	return db.Create(professional).Error
}

func (r *professionalRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Professional, error) {
	var professional entity.Professional
	err := db.Where("id = ?", id).First(&professional).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &professional, nil
}

func (r *professionalRepository) FindByUserID(db *gorm.DB, userID string) (*entity.Professional, error) {
	var professional entity.Professional
	err := db.Where("user_id = ?", userID).First(&professional).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &professional, nil
}

func (r *professionalRepository) FindByEmail(db *gorm.DB, email string) (*entity.Professional, error) {
	var professional entity.Professional
	err := db.Where("email = ?", email).First(&professional).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &professional, nil
}

func (r *professionalRepository) FindAll(db *gorm.DB) ([]entity.Professional, error) {
	var professionals []entity.Professional
	err := db.Order("created_at DESC").Find(&professionals).Error
	if err != nil {
		return nil, err
	}
	return professionals, nil
}

func (r *professionalRepository) Update(db *gorm.DB, professional *entity.Professional) error {
	return db.Save(professional).Error
}
