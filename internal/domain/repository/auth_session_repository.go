package repository

import (
	"time"

	"psych-portal-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AuthSessionRepository interface {
	Create(db *gorm.DB, session *entity.AuthSession) error
	FindByID(db *gorm.DB, id string) (*entity.AuthSession, error)
	Delete(db *gorm.DB, id string) error
	DeleteExpired(db *gorm.DB, now time.Time) error
}
