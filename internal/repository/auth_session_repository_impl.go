package repository

import (
	"errors"
	"time"

	"psych-portal-api/internal/domain/entity"
	domainRepo "psych-portal-api/internal/domain/repository"

	"gorm.io/gorm"
)

type authSessionRepository struct{}

func NewAuthSessionRepository() domainRepo.AuthSessionRepository {
	return &authSessionRepository{}
}

func (r *authSessionRepository) Create(db *gorm.DB, session *entity.AuthSession) error {
	return db.Create(session).Error
}

func (r *authSessionRepository) FindByID(db *gorm.DB, id string) (*entity.AuthSession, error) {
	var session entity.AuthSession
	err := db.Where("id = ?", id).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *authSessionRepository) Delete(db *gorm.DB, id string) error {
	return db.Delete(&entity.AuthSession{}, "id = ?", id).Error
}

func (r *authSessionRepository) DeleteExpired(db *gorm.DB, now time.Time) error {
	return db.Delete(&entity.AuthSession{}, "expires_at < ?", now).Error
}
