package repository

import (
	"errors"
	"time"

	"psych-portal-api/internal/domain/entity"
	domainRepo "psych-portal-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) CreateBatch(db *gorm.DB, appointments []entity.Appointment) error {
	return db.Create(&appointments).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id = ?", id).First(&appointment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindOwned(db *gorm.DB, id uuid.UUID, professionalID uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.
		Preload("Patient").
		Where("id = ? AND professional_id = ?", id, professionalID).
		First(&appointment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByProfessional(db *gorm.DB, professionalID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Preload("Patient").
		Preload("Session").
		Where("professional_id = ?", professionalID).
		Order("date_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByProfessionalInRange(db *gorm.DB, professionalID uuid.UUID, start, end time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Preload("Patient").
		Preload("Session").
		Where("professional_id = ? AND date_time >= ? AND date_time <= ?", professionalID, start, end).
		Order("date_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) CountByProfessional(db *gorm.DB, professionalID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("professional_id = ?", professionalID).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountByPatient(db *gorm.DB, patientID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("patient_id = ?", patientID).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit(clause.Associations).Save(appointment).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Delete(&entity.Appointment{}, "id = ?", id).Error
}
