package usecase

import (
	"context"
	"testing"
	"time"

	"psych-portal-api/internal/delivery/dto"
	"psych-portal-api/internal/domain/entity"

	"github.com/google/uuid"
)

func newAppointmentUsecaseForTest(appointmentRepo *fakeAppointmentRepo, patientRepo *fakePatientRepo, sessionRepo *fakeSessionRepo) AppointmentUsecase {
	return NewAppointmentUsecase(newTestDB(), newTestLogger(), appointmentRepo, patientRepo, sessionRepo, &fakeAuditService{})
}

func TestCreateAppointmentsRejectsBadPatientID(t *testing.T) {
	uc := newAppointmentUsecaseForTest(&fakeAppointmentRepo{}, &fakePatientRepo{}, &fakeSessionRepo{})

	_, err := uc.CreateAppointments(context.Background(), uuid.New(), &dto.CreateAppointmentRequest{
		PatientID: "not-a-uuid",
		DateTime:  "2025-03-10T14:00",
	})
	if err != ErrInvalidPatientID {
		t.Fatalf("expected ErrInvalidPatientID, got %v", err)
	}
}

func TestCreateAppointmentsRejectsBadDateTime(t *testing.T) {
	uc := newAppointmentUsecaseForTest(&fakeAppointmentRepo{}, &fakePatientRepo{}, &fakeSessionRepo{})

	_, err := uc.CreateAppointments(context.Background(), uuid.New(), &dto.CreateAppointmentRequest{
		PatientID: uuid.New().String(),
		DateTime:  "10/03/2025 14:00",
	})
	if err != ErrInvalidDateTime {
		t.Fatalf("expected ErrInvalidDateTime, got %v", err)
	}
}

func TestCreateAppointmentsRequiresExistingPatient(t *testing.T) {
	uc := newAppointmentUsecaseForTest(&fakeAppointmentRepo{}, &fakePatientRepo{}, &fakeSessionRepo{})

	_, err := uc.CreateAppointments(context.Background(), uuid.New(), &dto.CreateAppointmentRequest{
		PatientID: uuid.New().String(),
		DateTime:  "2025-03-10T14:00",
	})
	if err != ErrPatientNotFound {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestCreateAppointmentsPersistsBatch(t *testing.T) {
	patientRepo := &fakePatientRepo{}
	patient := &entity.Patient{DNI: "30123456", BirthDate: time.Now()}
	if err := patientRepo.Create(newTestDB(), patient); err != nil {
		t.Fatal(err)
	}

	professionalID := uuid.New()
	appointmentRepo := &fakeAppointmentRepo{}
	audit := &fakeAuditService{}
	uc := NewAppointmentUsecase(newTestDB(), newTestLogger(), appointmentRepo, patientRepo, &fakeSessionRepo{}, audit)

	resp, err := uc.CreateAppointments(context.Background(), professionalID, &dto.CreateAppointmentRequest{
		PatientID:  patient.ID.String(),
		DateTime:   "2025-03-10T14:00",
		Recurrence: "NONE",
		Status:     "CONFIRMADO",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Count != 1 {
		t.Errorf("expected count 1 for NONE recurrence, got %d", resp.Count)
	}
	if len(appointmentRepo.appointments) != resp.Count {
		t.Fatalf("reported count %d but stored %d rows", resp.Count, len(appointmentRepo.appointments))
	}
	stored := appointmentRepo.appointments[0]
	if stored.ProfessionalID != professionalID || stored.PatientID != patient.ID {
		t.Error("stored appointment must carry the requesting professional and patient")
	}
	if stored.Status != entity.AppointmentStatusConfirmed {
		t.Errorf("requested status must be preserved, got %s", stored.Status)
	}
	if !audit.recorded(entity.AuditActionAppointmentCreate) {
		t.Error("expected appointment create audit entry")
	}
}

func TestListAppointmentsRejectsBadRange(t *testing.T) {
	uc := newAppointmentUsecaseForTest(&fakeAppointmentRepo{}, &fakePatientRepo{}, &fakeSessionRepo{})

	_, err := uc.ListAppointments(context.Background(), uuid.New(), AppointmentFilter{
		StartDate: "not-a-date",
		EndDate:   "2025-03-31",
	})
	if err != ErrInvalidDateTime {
		t.Fatalf("expected ErrInvalidDateTime, got %v", err)
	}
}

func TestListAppointmentsRange(t *testing.T) {
	professionalID := uuid.New()
	repo := &fakeAppointmentRepo{}
	for _, day := range []int{5, 12, 25} {
		repo.appointments = append(repo.appointments, &entity.Appointment{
			ID:             uuid.New(),
			ProfessionalID: professionalID,
			PatientID:      uuid.New(),
			DateTime:       time.Date(2025, 3, day, 10, 0, 0, 0, time.Local),
			Status:         entity.AppointmentStatusReserved,
		})
	}

	uc := newAppointmentUsecaseForTest(repo, &fakePatientRepo{}, &fakeSessionRepo{})

	resp, err := uc.ListAppointments(context.Background(), professionalID, AppointmentFilter{
		StartDate: "2025-03-10",
		EndDate:   "2025-03-20",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("expected 1 appointment in range, got %d", resp.Total)
	}
}

func TestGetWeekRejectsBadDate(t *testing.T) {
	uc := newAppointmentUsecaseForTest(&fakeAppointmentRepo{}, &fakePatientRepo{}, &fakeSessionRepo{})

	_, err := uc.GetWeek(context.Background(), uuid.New(), "13-03-2025")
	if err != ErrInvalidDateTime {
		t.Fatalf("expected ErrInvalidDateTime, got %v", err)
	}
}

func TestGetWeekFiltersToContainingWeek(t *testing.T) {
	professionalID := uuid.New()
	repo := &fakeAppointmentRepo{}
	// Wednesday of the requested week plus one appointment the week after.
	repo.appointments = append(repo.appointments,
		&entity.Appointment{
			ID:             uuid.New(),
			ProfessionalID: professionalID,
			PatientID:      uuid.New(),
			DateTime:       time.Date(2025, 3, 12, 10, 0, 0, 0, time.Local),
			Status:         entity.AppointmentStatusReserved,
		},
		&entity.Appointment{
			ID:             uuid.New(),
			ProfessionalID: professionalID,
			PatientID:      uuid.New(),
			DateTime:       time.Date(2025, 3, 19, 10, 0, 0, 0, time.Local),
			Status:         entity.AppointmentStatusReserved,
		},
	)

	uc := newAppointmentUsecaseForTest(repo, &fakePatientRepo{}, &fakeSessionRepo{})

	resp, err := uc.GetWeek(context.Background(), professionalID, "2025-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("expected 1 appointment in the week, got %d", resp.Total)
	}
}

func TestGetAppointmentHidesForeignRows(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	foreign := &entity.Appointment{
		ID:             uuid.New(),
		ProfessionalID: uuid.New(),
		PatientID:      uuid.New(),
		DateTime:       time.Now(),
		Status:         entity.AppointmentStatusReserved,
	}
	repo.appointments = append(repo.appointments, foreign)

	uc := newAppointmentUsecaseForTest(repo, &fakePatientRepo{}, &fakeSessionRepo{})

	// Another professional's appointment reads as missing, not forbidden.
	_, err := uc.GetAppointment(context.Background(), uuid.New(), foreign.ID)
	if err != ErrAppointmentNotFound {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestGetStats(t *testing.T) {
	professionalID := uuid.New()
	appointmentRepo := &fakeAppointmentRepo{}
	for i := 0; i < 4; i++ {
		appointmentRepo.appointments = append(appointmentRepo.appointments, &entity.Appointment{
			ID:             uuid.New(),
			ProfessionalID: professionalID,
			PatientID:      uuid.New(),
			DateTime:       time.Now(),
			Status:         entity.AppointmentStatusReserved,
		})
	}
	sessionRepo := &fakeSessionRepo{}
	sessionRepo.sessions = append(sessionRepo.sessions, &entity.Session{
		ID:             uuid.New(),
		AppointmentID:  uuid.New(),
		ProfessionalID: professionalID,
	})

	uc := newAppointmentUsecaseForTest(appointmentRepo, &fakePatientRepo{}, sessionRepo)

	stats, err := uc.GetStats(context.Background(), professionalID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 4 {
		t.Errorf("expected total 4, got %d", stats.Total)
	}
	if stats.Completed != 1 {
		t.Errorf("expected completed 1, got %d", stats.Completed)
	}
	if stats.Cancelled != 0 {
		t.Errorf("cancelled is not tracked and must stay 0, got %d", stats.Cancelled)
	}
}

func TestParseDateTimeFormats(t *testing.T) {
	valid := []string{
		"2025-03-10T14:00:00Z",
		"2025-03-10T14:00:00",
		"2025-03-10T14:00",
		"2025-03-10",
	}
	for _, value := range valid {
		if _, err := parseDateTime(value); err != nil {
			t.Errorf("expected %q to parse, got %v", value, err)
		}
	}

	if _, err := parseDateTime("10/03/2025"); err != ErrInvalidDateTime {
		t.Errorf("expected ErrInvalidDateTime for slash format, got %v", err)
	}
}
