package repository

import (
	"errors"

	"psych-portal-api/internal/domain/entity"
	domainRepo "psych-portal-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ?", id).First(&patient).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByIDWithRelations(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.
		Preload("FamilyContacts").
		Preload("Appointments").
		Preload("Sessions").
		Where("id = ?", id).
		First(&patient).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByDNI(db *gorm.DB, dni string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("dni = ?", dni).First(&patient).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Search(db *gorm.DB, search string) ([]entity.Patient, error) {
	var patients []entity.Patient
	query := db.Order("last_name ASC")
	if search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"dni ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?",
			like, like, like,
		)
	}
	err := query.Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return db.Save(patient).Error
}

func (r *patientRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Delete(&entity.Patient{}, "id = ?", id).Error
}
