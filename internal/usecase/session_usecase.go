package usecase

import (
	"context"
	"errors"

	"psych-portal-api/internal/converter"
	"psych-portal-api/internal/delivery/dto"
	"psych-portal-api/internal/domain/entity"
	"psych-portal-api/internal/domain/repository"
	"psych-portal-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrNotSessionOwner      = errors.New("session belongs to another professional")
	ErrNotAppointmentOwner  = errors.New("appointment belongs to another professional")
	ErrSessionAlreadyExists = errors.New("Session already exists for this appointment")
)

type SessionUsecase interface {
	ListSessions(ctx context.Context, professionalID uuid.UUID) (*dto.SessionListResponse, error)
	GetSession(ctx context.Context, professionalID uuid.UUID, id uuid.UUID) (*dto.SessionResponse, error)
	CreateFromAppointment(ctx context.Context, professionalID uuid.UUID, appointmentID uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	UpdateSession(ctx context.Context, professionalID uuid.UUID, id uuid.UUID, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error)
	DeleteSession(ctx context.Context, professionalID uuid.UUID, id uuid.UUID) error
}

type sessionUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	sessionRepo     repository.SessionRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewSessionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	sessionRepo repository.SessionRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) SessionUsecase {
	return &sessionUsecase{
		db:              db,
		log:             log,
		sessionRepo:     sessionRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

func (u *sessionUsecase) ListSessions(ctx context.Context, professionalID uuid.UUID) (*dto.SessionListResponse, error) {
	sessions, err := u.sessionRepo.FindByProfessional(u.db.WithContext(ctx), professionalID)
	if err != nil {
		u.log.Warnf("Failed to list sessions: %+v", err)
		return nil, err
	}

	responses := converter.SessionsToResponses(sessions)
	return &dto.SessionListResponse{
		Sessions: responses,
		Total:    len(responses),
	}, nil
}

func (u *sessionUsecase) GetSession(ctx context.Context, professionalID uuid.UUID, id uuid.UUID) (*dto.SessionResponse, error) {
	session, err := u.sessionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find session: %+v", err)
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.ProfessionalID != professionalID {
		return nil, ErrNotSessionOwner
	}

	return converter.SessionToResponse(session), nil
}

func (u *sessionUsecase) CreateFromAppointment(ctx context.Context, professionalID uuid.UUID, appointmentID uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.ProfessionalID != professionalID {
		return nil, ErrNotAppointmentOwner
	}

	existing, err := u.sessionRepo.FindByAppointmentID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to check existing session: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrSessionAlreadyExists
	}

	session := &entity.Session{
		AppointmentID:  appointmentID,
		ProfessionalID: professionalID,
		PatientID:      appointment.PatientID,
		Date:           appointment.DateTime,
		Time:           appointment.DateTime,
		SessionType:    req.SessionType,
		Notes:          req.Notes,
	}

	// Session insert and status flip commit together.
	tx := db.Begin()
	defer tx.Rollback()

	if err := u.sessionRepo.Create(tx, session); err != nil {
		// Concurrent creates race to the unique index on appointment_id.
		if isDuplicateKeyError(err, "appointment_id") {
			return nil, ErrSessionAlreadyExists
		}
		u.log.Warnf("Failed to create session: %+v", err)
		return nil, err
	}

	appointment.Confirm()
	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to confirm appointment: %+v", err)
		return nil, err
	}

	u.auditService.Record(tx, &professionalID, entity.AuditActionSessionCreate, entity.JSON{
		"appointment_id": appointmentID.String(),
		"patient_id":     appointment.PatientID.String(),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.SessionToResponse(session), nil
}

func (u *sessionUsecase) UpdateSession(ctx context.Context, professionalID uuid.UUID, id uuid.UUID, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error) {
	db := u.db.WithContext(ctx)

	session, err := u.sessionRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find session: %+v", err)
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.ProfessionalID != professionalID {
		return nil, ErrNotSessionOwner
	}

	session.SessionType = req.SessionType
	session.Notes = req.Notes

	if err := u.sessionRepo.Update(db, session); err != nil {
		u.log.Warnf("Failed to update session: %+v", err)
		return nil, err
	}

	return converter.SessionToResponse(session), nil
}

func (u *sessionUsecase) DeleteSession(ctx context.Context, professionalID uuid.UUID, id uuid.UUID) error {
	db := u.db.WithContext(ctx)

	session, err := u.sessionRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find session: %+v", err)
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}
	if session.ProfessionalID != professionalID {
		return ErrNotSessionOwner
	}

	if err := u.sessionRepo.Delete(db, id); err != nil {
		u.log.Warnf("Failed to delete session: %+v", err)
		return err
	}

	u.auditService.Record(db, &professionalID, entity.AuditActionSessionDelete, entity.JSON{
		"session_id": id.String(),
	})

	return nil
}
