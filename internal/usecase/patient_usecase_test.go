package usecase

import (
	"context"
	"testing"
	"time"

	"psych-portal-api/internal/delivery/dto"
	"psych-portal-api/internal/domain/entity"

	"github.com/google/uuid"
)

func newPatientUsecaseForTest(patientRepo *fakePatientRepo, contactRepo *fakeFamilyContactRepo, appointmentRepo *fakeAppointmentRepo, audit *fakeAuditService) PatientUsecase {
	return NewPatientUsecase(newTestDB(), newTestLogger(), patientRepo, contactRepo, appointmentRepo, audit)
}

func TestCreatePatient(t *testing.T) {
	repo := &fakePatientRepo{}
	audit := &fakeAuditService{}
	uc := newPatientUsecaseForTest(repo, &fakeFamilyContactRepo{}, &fakeAppointmentRepo{}, audit)

	patient, err := uc.CreatePatient(context.Background(), uuid.New(), &dto.CreatePatientRequest{
		DNI:       "30123456",
		FirstName: "Lucía",
		LastName:  "Pérez",
		BirthDate: "1990-05-20",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if patient.BirthDate != "1990-05-20" {
		t.Errorf("expected formatted birth date, got %s", patient.BirthDate)
	}
	if len(repo.patients) != 1 {
		t.Fatalf("expected one stored patient, got %d", len(repo.patients))
	}
	if !audit.recorded(entity.AuditActionPatientCreate) {
		t.Error("expected patient creation to be audited")
	}
}

func TestCreatePatientRejectsDuplicateDNI(t *testing.T) {
	repo := &fakePatientRepo{}
	if err := repo.Create(newTestDB(), &entity.Patient{DNI: "30123456"}); err != nil {
		t.Fatal(err)
	}

	uc := newPatientUsecaseForTest(repo, &fakeFamilyContactRepo{}, &fakeAppointmentRepo{}, &fakeAuditService{})

	_, err := uc.CreatePatient(context.Background(), uuid.New(), &dto.CreatePatientRequest{
		DNI:       "30123456",
		FirstName: "Lucía",
		LastName:  "Pérez",
		BirthDate: "1990-05-20",
	})
	if err != ErrPatientDNIExists {
		t.Fatalf("expected ErrPatientDNIExists, got %v", err)
	}
}

func TestCreatePatientRejectsBadBirthDate(t *testing.T) {
	uc := newPatientUsecaseForTest(&fakePatientRepo{}, &fakeFamilyContactRepo{}, &fakeAppointmentRepo{}, &fakeAuditService{})

	_, err := uc.CreatePatient(context.Background(), uuid.New(), &dto.CreatePatientRequest{
		DNI:       "30123456",
		FirstName: "Lucía",
		LastName:  "Pérez",
		BirthDate: "20/05/1990",
	})
	if err != ErrInvalidBirthDate {
		t.Fatalf("expected ErrInvalidBirthDate, got %v", err)
	}
}

func TestDeletePatientBlockedWhileAppointmentsExist(t *testing.T) {
	patientRepo := &fakePatientRepo{}
	patient := &entity.Patient{DNI: "30123456", BirthDate: time.Now()}
	if err := patientRepo.Create(newTestDB(), patient); err != nil {
		t.Fatal(err)
	}

	appointmentRepo := &fakeAppointmentRepo{patientCount: 3}
	uc := newPatientUsecaseForTest(patientRepo, &fakeFamilyContactRepo{}, appointmentRepo, &fakeAuditService{})

	err := uc.DeletePatient(context.Background(), uuid.New(), patient.ID)
	if err != ErrPatientHasAppointments {
		t.Fatalf("expected ErrPatientHasAppointments, got %v", err)
	}
	if len(patientRepo.deleted) != 0 {
		t.Error("patient must not be deleted while appointments exist")
	}
}

func TestDeletePatient(t *testing.T) {
	patientRepo := &fakePatientRepo{}
	patient := &entity.Patient{DNI: "30123456", BirthDate: time.Now()}
	if err := patientRepo.Create(newTestDB(), patient); err != nil {
		t.Fatal(err)
	}

	audit := &fakeAuditService{}
	uc := newPatientUsecaseForTest(patientRepo, &fakeFamilyContactRepo{}, &fakeAppointmentRepo{}, audit)

	if err := uc.DeletePatient(context.Background(), uuid.New(), patient.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patientRepo.deleted) != 1 {
		t.Fatal("expected the patient to be deleted")
	}
	if !audit.recorded(entity.AuditActionPatientDelete) {
		t.Error("expected delete audit entry")
	}
}

func TestDeletePatientNotFound(t *testing.T) {
	uc := newPatientUsecaseForTest(&fakePatientRepo{}, &fakeFamilyContactRepo{}, &fakeAppointmentRepo{}, &fakeAuditService{})

	err := uc.DeletePatient(context.Background(), uuid.New(), uuid.New())
	if err != ErrPatientNotFound {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestCreateContactRequiresExistingPatient(t *testing.T) {
	uc := newPatientUsecaseForTest(&fakePatientRepo{}, &fakeFamilyContactRepo{}, &fakeAppointmentRepo{}, &fakeAuditService{})

	_, err := uc.CreateContact(context.Background(), uuid.New(), &dto.CreateFamilyContactRequest{
		FirstName:             "Marta",
		LastName:              "Pérez",
		RelationshipToPatient: "madre",
	})
	if err != ErrPatientNotFound {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestUpdateContactNotFound(t *testing.T) {
	uc := newPatientUsecaseForTest(&fakePatientRepo{}, &fakeFamilyContactRepo{}, &fakeAppointmentRepo{}, &fakeAuditService{})

	_, err := uc.UpdateContact(context.Background(), uuid.New(), &dto.UpdateFamilyContactRequest{
		FirstName: "Marta",
	})
	if err != ErrContactNotFound {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}
