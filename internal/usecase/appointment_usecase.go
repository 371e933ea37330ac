package usecase

import (
	"context"
	"errors"
	"time"

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
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidDateTime     = errors.New("invalid date/time format")
	ErrInvalidPatientID    = errors.New("invalid patient id")
)

// AppointmentFilter narrows the list endpoint to a date range or to today.
type AppointmentFilter struct {
	StartDate string
	EndDate   string
	Today     bool
}

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context, professionalID uuid.UUID, filter AppointmentFilter) (*dto.AppointmentListResponse, error)
	GetWeek(ctx context.Context, professionalID uuid.UUID, date string) (*dto.AppointmentListResponse, error)
	GetStats(ctx context.Context, professionalID uuid.UUID) (*dto.AppointmentStatsResponse, error)
	CreateAppointments(ctx context.Context, professionalID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.CreateAppointmentResponse, error)
	GetAppointment(ctx context.Context, professionalID uuid.UUID, id uuid.UUID) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, professionalID uuid.UUID, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, professionalID uuid.UUID, id uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	sessionRepo     repository.SessionRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	sessionRepo repository.SessionRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		sessionRepo:     sessionRepo,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, professionalID uuid.UUID, filter AppointmentFilter) (*dto.AppointmentListResponse, error) {
	db := u.db.WithContext(ctx)

	var appointments []entity.Appointment
	var err error

	switch {
	case filter.StartDate != "" && filter.EndDate != "":
		start, parseErr := parseDateTime(filter.StartDate)
		if parseErr != nil {
			return nil, ErrInvalidDateTime
		}
		end, parseErr := parseDateTime(filter.EndDate)
		if parseErr != nil {
			return nil, ErrInvalidDateTime
		}
		appointments, err = u.appointmentRepo.FindByProfessionalInRange(db, professionalID, start, end)
	case filter.Today:
		start, end := dayRange(time.Now())
		appointments, err = u.appointmentRepo.FindByProfessionalInRange(db, professionalID, start, end)
	default:
		appointments, err = u.appointmentRepo.FindByProfessional(db, professionalID)
	}

	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	responses := converter.AppointmentsToResponses(appointments)
	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}, nil
}

func (u *appointmentUsecase) GetWeek(ctx context.Context, professionalID uuid.UUID, date string) (*dto.AppointmentListResponse, error) {
	target := time.Now()
	if date != "" {
		parsed, err := parseDateTime(date)
		if err != nil {
			return nil, ErrInvalidDateTime
		}
		target = parsed
	}

	start, end := weekRange(target)

	appointments, err := u.appointmentRepo.FindByProfessionalInRange(u.db.WithContext(ctx), professionalID, start, end)
	if err != nil {
		u.log.Warnf("Failed to fetch weekly appointments: %+v", err)
		return nil, err
	}

	responses := converter.AppointmentsToResponses(appointments)
	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}, nil
}

func (u *appointmentUsecase) GetStats(ctx context.Context, professionalID uuid.UUID) (*dto.AppointmentStatsResponse, error) {
	db := u.db.WithContext(ctx)

	total, err := u.appointmentRepo.CountByProfessional(db, professionalID)
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	completed, err := u.sessionRepo.CountByProfessional(db, professionalID)
	if err != nil {
		u.log.Warnf("Failed to count sessions: %+v", err)
		return nil, err
	}

	return &dto.AppointmentStatsResponse{
		Total:     total,
		Completed: completed,
		Cancelled: 0,
	}, nil
}

func (u *appointmentUsecase) CreateAppointments(ctx context.Context, professionalID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.CreateAppointmentResponse, error) {
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, ErrInvalidPatientID
	}

	start, err := parseDateTime(req.DateTime)
	if err != nil {
		return nil, ErrInvalidDateTime
	}

	recurrence := entity.Recurrence(req.Recurrence)
	if req.Recurrence == "" {
		recurrence = entity.RecurrenceNone
	}

	status := entity.AppointmentStatus(req.Status)
	if req.Status == "" {
		status = entity.AppointmentStatusReserved
	}

	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	appointments := ExpandRecurrence(professionalID, patientID, start, recurrence, status, time.Now())

	// The whole expanded set lands or none of it does.
	tx := db.Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.CreateBatch(tx, appointments); err != nil {
		// The patient can disappear between the existence check and the
		// insert; the foreign key reports it.
		if isForeignKeyError(err, "patient_id") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create appointments: %+v", err)
		return nil, err
	}

	u.auditService.Record(tx, &professionalID, entity.AuditActionAppointmentCreate, entity.JSON{
		"patient_id": patientID.String(),
		"recurrence": string(recurrence),
		"count":      len(appointments),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.CreateAppointmentResponse{
		Message: "Appointments created",
		Count:   len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, professionalID uuid.UUID, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindOwned(u.db.WithContext(ctx), id, professionalID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, professionalID uuid.UUID, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindOwned(db, id, professionalID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if req.PatientID != "" {
		patientID, err := uuid.Parse(req.PatientID)
		if err != nil {
			return nil, ErrInvalidPatientID
		}
		appointment.PatientID = patientID
	}
	if req.DateTime != "" {
		dateTime, err := parseDateTime(req.DateTime)
		if err != nil {
			return nil, ErrInvalidDateTime
		}
		appointment.DateTime = dateTime
	}
	if req.Status != "" {
		appointment.Status = entity.AppointmentStatus(req.Status)
	}

	if err := u.appointmentRepo.Update(db, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, professionalID uuid.UUID, id uuid.UUID) error {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindOwned(db, id, professionalID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if err := u.appointmentRepo.Delete(db, id); err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}

	u.auditService.Record(db, &professionalID, entity.AuditActionAppointmentDelete, entity.JSON{
		"appointment_id": id.String(),
	})

	return nil
}

// parseDateTime accepts RFC3339 plus the bare local formats clients send.
func parseDateTime(value string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, ErrInvalidDateTime
}
