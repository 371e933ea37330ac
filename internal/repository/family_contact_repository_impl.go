package repository

import (
	"errors"

	"psych-portal-api/internal/domain/entity"
	domainRepo "psych-portal-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type familyContactRepository struct{}

func NewFamilyContactRepository() domainRepo.FamilyContactRepository {
	return &familyContactRepository{}
}

func (r *familyContactRepository) Create(db *gorm.DB, contact *entity.FamilyContact) error {
	return db.Create(contact).Error
}

func (r *familyContactRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.FamilyContact, error) {
	var contact entity.FamilyContact
	err := db.Where("id = ?", id).First(&contact).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *familyContactRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.FamilyContact, error) {
	var contacts []entity.FamilyContact
	err := db.Where("patient_id = ?", patientID).Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *familyContactRepository) Update(db *gorm.DB, contact *entity.FamilyContact) error {
	return db.Save(contact).Error
}

func (r *familyContactRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Delete(&entity.FamilyContact{}, "id = ?", id).Error
}
