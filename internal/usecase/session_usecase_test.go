package usecase

import (
	"context"
	"testing"
	"time"

	"psych-portal-api/internal/delivery/dto"
	"psych-portal-api/internal/domain/entity"

	"github.com/google/uuid"
)

func TestCreateFromAppointmentRejectsForeignAppointment(t *testing.T) {
	appointmentRepo := &fakeAppointmentRepo{}
	appointment := &entity.Appointment{
		ID:             uuid.New(),
		ProfessionalID: uuid.New(),
		PatientID:      uuid.New(),
		DateTime:       time.Now(),
		Status:         entity.AppointmentStatusReserved,
	}
	appointmentRepo.appointments = append(appointmentRepo.appointments, appointment)

	uc := NewSessionUsecase(newTestDB(), newTestLogger(), &fakeSessionRepo{}, appointmentRepo, &fakeAuditService{})

	_, err := uc.CreateFromAppointment(context.Background(), uuid.New(), appointment.ID, &dto.CreateSessionRequest{
		SessionType: "primera consulta",
	})
	if err != ErrNotAppointmentOwner {
		t.Fatalf("expected ErrNotAppointmentOwner, got %v", err)
	}
}

func TestCreateFromAppointmentRejectsDuplicate(t *testing.T) {
	professionalID := uuid.New()
	appointmentRepo := &fakeAppointmentRepo{}
	appointment := &entity.Appointment{
		ID:             uuid.New(),
		ProfessionalID: professionalID,
		PatientID:      uuid.New(),
		DateTime:       time.Now(),
		Status:         entity.AppointmentStatusReserved,
	}
	appointmentRepo.appointments = append(appointmentRepo.appointments, appointment)

	sessionRepo := &fakeSessionRepo{}
	sessionRepo.sessions = append(sessionRepo.sessions, &entity.Session{
		ID:             uuid.New(),
		AppointmentID:  appointment.ID,
		ProfessionalID: professionalID,
	})

	uc := NewSessionUsecase(newTestDB(), newTestLogger(), sessionRepo, appointmentRepo, &fakeAuditService{})

	_, err := uc.CreateFromAppointment(context.Background(), professionalID, appointment.ID, &dto.CreateSessionRequest{
		SessionType: "seguimiento",
	})
	if err != ErrSessionAlreadyExists {
		t.Fatalf("expected ErrSessionAlreadyExists, got %v", err)
	}
}

func TestCreateFromAppointmentConfirmsAppointment(t *testing.T) {
	professionalID := uuid.New()
	patientID := uuid.New()
	appointmentRepo := &fakeAppointmentRepo{}
	appointment := &entity.Appointment{
		ID:             uuid.New(),
		ProfessionalID: professionalID,
		PatientID:      patientID,
		DateTime:       time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC),
		Status:         entity.AppointmentStatusReserved,
	}
	appointmentRepo.appointments = append(appointmentRepo.appointments, appointment)

	sessionRepo := &fakeSessionRepo{}
	audit := &fakeAuditService{}
	uc := NewSessionUsecase(newTestDB(), newTestLogger(), sessionRepo, appointmentRepo, audit)

	resp, err := uc.CreateFromAppointment(context.Background(), professionalID, appointment.ID, &dto.CreateSessionRequest{
		SessionType: "primera consulta",
		Notes:       "derivación",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if appointment.Status != entity.AppointmentStatusConfirmed {
		t.Errorf("expected the appointment flipped to CONFIRMADO, got %s", appointment.Status)
	}
	if len(sessionRepo.sessions) != 1 {
		t.Fatalf("expected one persisted session, got %d", len(sessionRepo.sessions))
	}
	stored := sessionRepo.sessions[0]
	if stored.AppointmentID != appointment.ID || stored.PatientID != patientID {
		t.Error("session must reference the appointment and its patient")
	}
	if !stored.Date.Equal(appointment.DateTime) {
		t.Errorf("session date must mirror the appointment, got %v", stored.Date)
	}
	if resp.SessionType != "primera consulta" {
		t.Errorf("unexpected session type %s", resp.SessionType)
	}
	if !audit.recorded(entity.AuditActionSessionCreate) {
		t.Error("expected session create audit entry")
	}
}

func TestCreateFromAppointmentNotFound(t *testing.T) {
	uc := NewSessionUsecase(newTestDB(), newTestLogger(), &fakeSessionRepo{}, &fakeAppointmentRepo{}, &fakeAuditService{})

	_, err := uc.CreateFromAppointment(context.Background(), uuid.New(), uuid.New(), &dto.CreateSessionRequest{
		SessionType: "primera consulta",
	})
	if err != ErrAppointmentNotFound {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestGetSessionRejectsForeignSession(t *testing.T) {
	sessionRepo := &fakeSessionRepo{}
	session := &entity.Session{
		ID:             uuid.New(),
		AppointmentID:  uuid.New(),
		ProfessionalID: uuid.New(),
	}
	sessionRepo.sessions = append(sessionRepo.sessions, session)

	uc := NewSessionUsecase(newTestDB(), newTestLogger(), sessionRepo, &fakeAppointmentRepo{}, &fakeAuditService{})

	_, err := uc.GetSession(context.Background(), uuid.New(), session.ID)
	if err != ErrNotSessionOwner {
		t.Fatalf("expected ErrNotSessionOwner, got %v", err)
	}
}

func TestUpdateSession(t *testing.T) {
	professionalID := uuid.New()
	sessionRepo := &fakeSessionRepo{}
	session := &entity.Session{
		ID:             uuid.New(),
		AppointmentID:  uuid.New(),
		ProfessionalID: professionalID,
		SessionType:    "primera consulta",
	}
	sessionRepo.sessions = append(sessionRepo.sessions, session)

	uc := NewSessionUsecase(newTestDB(), newTestLogger(), sessionRepo, &fakeAppointmentRepo{}, &fakeAuditService{})

	resp, err := uc.UpdateSession(context.Background(), professionalID, session.ID, &dto.UpdateSessionRequest{
		SessionType: "seguimiento",
		Notes:       "evolución favorable",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.SessionType != "seguimiento" {
		t.Errorf("expected updated type, got %s", resp.SessionType)
	}
}

func TestDeleteSessionNotFound(t *testing.T) {
	uc := NewSessionUsecase(newTestDB(), newTestLogger(), &fakeSessionRepo{}, &fakeAppointmentRepo{}, &fakeAuditService{})

	err := uc.DeleteSession(context.Background(), uuid.New(), uuid.New())
	if err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
