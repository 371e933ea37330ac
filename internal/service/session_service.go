package service

import (
	"context"
	"errors"
	"time"

	"psych-portal-api/internal/domain/entity"
	"psych-portal-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CookieName is the browser cookie carrying the opaque session id.
const CookieName = "portal_session"

const sessionKeyPrefix = "http_session:"

var ErrSessionNotFound = errors.New("session not found or expired")

// SessionService manages server-side HTTP sessions. Rows live in the
// http_sessions table; Redis caches id → professional id lookups so the hot
// path skips Postgres. The cache is best-effort: Redis failures fall through
// to the database.
type SessionService interface {
	Create(ctx context.Context, professionalID uuid.UUID) (*entity.AuthSession, error)
	Resolve(ctx context.Context, sessionID string) (uuid.UUID, error)
	Destroy(ctx context.Context, sessionID string) error
	PurgeExpired(ctx context.Context) error
	Expiry() time.Duration
}

type sessionService struct {
	db          *gorm.DB
	log         *logrus.Logger
	redisClient *redis.Client
	sessionRepo repository.AuthSessionRepository
	expiry      time.Duration
}

func NewSessionService(
	db *gorm.DB,
	log *logrus.Logger,
	redisClient *redis.Client,
	sessionRepo repository.AuthSessionRepository,
	expiry time.Duration,
) SessionService {
	return &sessionService{
		db:          db,
		log:         log,
		redisClient: redisClient,
		sessionRepo: sessionRepo,
		expiry:      expiry,
	}
}

func (s *sessionService) Create(ctx context.Context, professionalID uuid.UUID) (*entity.AuthSession, error) {
	session := &entity.AuthSession{
		ID:             uuid.New().String(),
		ProfessionalID: professionalID,
		ExpiresAt:      time.Now().Add(s.expiry),
	}

	if err := s.sessionRepo.Create(s.db.WithContext(ctx), session); err != nil {
		s.log.Warnf("Failed to create session: %+v", err)
		return nil, err
	}

	s.cache(ctx, session)

	return session, nil
}

func (s *sessionService) Resolve(ctx context.Context, sessionID string) (uuid.UUID, error) {
	if sessionID == "" {
		return uuid.Nil, ErrSessionNotFound
	}

	if cached, err := s.redisClient.Get(ctx, sessionKeyPrefix+sessionID).Result(); err == nil {
		if professionalID, parseErr := uuid.Parse(cached); parseErr == nil {
			return professionalID, nil
		}
	} else if err != redis.Nil {
		s.log.Warnf("Session cache lookup failed: %+v", err)
	}

	session, err := s.sessionRepo.FindByID(s.db.WithContext(ctx), sessionID)
	if err != nil {
		s.log.Warnf("Failed to load session: %+v", err)
		return uuid.Nil, err
	}
	if session == nil {
		return uuid.Nil, ErrSessionNotFound
	}
	if session.IsExpired(time.Now()) {
		if err := s.sessionRepo.Delete(s.db.WithContext(ctx), sessionID); err != nil {
			s.log.Warnf("Failed to purge expired session: %+v", err)
		}
		return uuid.Nil, ErrSessionNotFound
	}

	s.cache(ctx, session)

	return session.ProfessionalID, nil
}

func (s *sessionService) Destroy(ctx context.Context, sessionID string) error {
	if err := s.sessionRepo.Delete(s.db.WithContext(ctx), sessionID); err != nil {
		s.log.Warnf("Failed to delete session: %+v", err)
		return err
	}

	if err := s.redisClient.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		s.log.Warnf("Failed to evict session from cache: %+v", err)
	}

	return nil
}

// PurgeExpired removes rows that have passed their expiry instant. Resolve
// already deletes expired sessions lazily; this sweep cleans up the ones no
// browser ever presents again. Cached entries expire on their own TTL.
func (s *sessionService) PurgeExpired(ctx context.Context) error {
	if err := s.sessionRepo.DeleteExpired(s.db.WithContext(ctx), time.Now()); err != nil {
		s.log.Warnf("Failed to purge expired sessions: %+v", err)
		return err
	}
	return nil
}

func (s *sessionService) Expiry() time.Duration {
	return s.expiry
}

// cache stores the lookup with TTL equal to the session's remaining life.
func (s *sessionService) cache(ctx context.Context, session *entity.AuthSession) {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return
	}
	key := sessionKeyPrefix + session.ID
	if err := s.redisClient.Set(ctx, key, session.ProfessionalID.String(), ttl).Err(); err != nil {
		s.log.Warnf("Failed to cache session: %+v", err)
	}
}
