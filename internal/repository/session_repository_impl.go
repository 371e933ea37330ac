package repository

import (
	"errors"

	"psych-portal-api/internal/domain/entity"
	domainRepo "psych-portal-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sessionRepository struct{}

func NewSessionRepository() domainRepo.SessionRepository {
	return &sessionRepository{}
}

func (r *sessionRepository) Create(db *gorm.DB, session *entity.Session) error {
	return db.Create(session).Error
}

func (r *sessionRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Session, error) {
	var session entity.Session
	err := db.
		Preload("Patient").
		Preload("Appointment").
		Where("id = ?", id).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.Session, error) {
	var session entity.Session
	err := db.Where("appointment_id = ?", appointmentID).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) FindByProfessional(db *gorm.DB, professionalID uuid.UUID) ([]entity.Session, error) {
	var sessions []entity.Session
	err := db.
		Preload("Patient").
		Preload("Appointment").
		Where("professional_id = ?", professionalID).
		Order("date DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) CountByProfessional(db *gorm.DB, professionalID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Session{}).
		Where("professional_id = ?", professionalID).
		Count(&count).Error
	return count, err
}

func (r *sessionRepository) Update(db *gorm.DB, session *entity.Session) error {
	return db.Omit(clause.Associations).Save(session).Error
}

func (r *sessionRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Delete(&entity.Session{}, "id = ?", id).Error
}
