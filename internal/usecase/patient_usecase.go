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
	ErrPatientNotFound  = errors.New("patient not found")
	ErrPatientDNIExists = errors.New("Patient with this DNI already exists")
	// ErrPatientHasAppointments carries the user-facing message for the delete guard.
	ErrPatientHasAppointments = errors.New("No se puede eliminar el paciente porque tiene turnos asignados. Elimine primero los turnos.")
	ErrInvalidBirthDate       = errors.New("invalid birth date format, use YYYY-MM-DD")
	ErrContactNotFound        = errors.New("family contact not found")
)

type PatientUsecase interface {
	SearchPatients(ctx context.Context, search string) (*dto.PatientListResponse, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientDetailResponse, error)
	CreatePatient(ctx context.Context, actorID uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error

	ListContacts(ctx context.Context, patientID uuid.UUID) ([]dto.FamilyContactResponse, error)
	CreateContact(ctx context.Context, patientID uuid.UUID, req *dto.CreateFamilyContactRequest) (*dto.FamilyContactResponse, error)
	UpdateContact(ctx context.Context, contactID uuid.UUID, req *dto.UpdateFamilyContactRequest) (*dto.FamilyContactResponse, error)
	DeleteContact(ctx context.Context, contactID uuid.UUID) error
}

type patientUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	contactRepo     repository.FamilyContactRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	contactRepo repository.FamilyContactRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		contactRepo:     contactRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

func (u *patientUsecase) SearchPatients(ctx context.Context, search string) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.Search(u.db.WithContext(ctx), search)
	if err != nil {
		u.log.Warnf("Failed to search patients: %+v", err)
		return nil, err
	}

	responses := converter.PatientsToResponses(patients)
	return &dto.PatientListResponse{
		Patients: responses,
		Total:    len(responses),
	}, nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientDetailResponse, error) {
	patient, err := u.patientRepo.FindByIDWithRelations(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToDetailResponse(patient), nil
}

func (u *patientUsecase) CreatePatient(ctx context.Context, actorID uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	db := u.db.WithContext(ctx)

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, ErrInvalidBirthDate
	}

	existing, err := u.patientRepo.FindByDNI(db, req.DNI)
	if err != nil {
		u.log.Warnf("Failed to check patient DNI: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrPatientDNIExists
	}

	patient := &entity.Patient{
		DNI:         req.DNI,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		BirthDate:   birthDate,
		MobilePhone: req.MobilePhone,
		Email:       req.Email,
	}

	if err := u.patientRepo.Create(db, patient); err != nil {
		// Two requests can race past the pre-check; the unique index settles it.
		if isDuplicateKeyError(err, "dni") {
			return nil, ErrPatientDNIExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.auditService.Record(db, &actorID, entity.AuditActionPatientCreate, entity.JSON{
		"patient_id": patient.ID.String(),
		"dni":        patient.DNI,
	})

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, ErrInvalidBirthDate
	}

	patient.DNI = req.DNI
	patient.FirstName = req.FirstName
	patient.LastName = req.LastName
	patient.BirthDate = birthDate
	patient.MobilePhone = req.MobilePhone
	patient.Email = req.Email

	if err := u.patientRepo.Update(db, patient); err != nil {
		if isDuplicateKeyError(err, "dni") {
			return nil, ErrPatientDNIExists
		}
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	count, err := u.appointmentRepo.CountByPatient(db, id)
	if err != nil {
		u.log.Warnf("Failed to count patient appointments: %+v", err)
		return err
	}
	if count > 0 {
		return ErrPatientHasAppointments
	}

	if err := u.patientRepo.Delete(db, id); err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}

	u.auditService.Record(db, &actorID, entity.AuditActionPatientDelete, entity.JSON{
		"patient_id": id.String(),
		"dni":        patient.DNI,
	})

	return nil
}

func (u *patientUsecase) ListContacts(ctx context.Context, patientID uuid.UUID) ([]dto.FamilyContactResponse, error) {
	contacts, err := u.contactRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list contacts: %+v", err)
		return nil, err
	}

	return converter.FamilyContactsToResponses(contacts), nil
}

func (u *patientUsecase) CreateContact(ctx context.Context, patientID uuid.UUID, req *dto.CreateFamilyContactRequest) (*dto.FamilyContactResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	contact := &entity.FamilyContact{
		PatientID:             patientID,
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		RelationshipToPatient: req.RelationshipToPatient,
		MobilePhone:           req.MobilePhone,
		Email:                 req.Email,
	}

	if err := u.contactRepo.Create(db, contact); err != nil {
		u.log.Warnf("Failed to create contact: %+v", err)
		return nil, err
	}

	return converter.FamilyContactToResponse(contact), nil
}

func (u *patientUsecase) UpdateContact(ctx context.Context, contactID uuid.UUID, req *dto.UpdateFamilyContactRequest) (*dto.FamilyContactResponse, error) {
	db := u.db.WithContext(ctx)

	contact, err := u.contactRepo.FindByID(db, contactID)
	if err != nil {
		u.log.Warnf("Failed to find contact: %+v", err)
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}

	contact.FirstName = req.FirstName
	contact.LastName = req.LastName
	contact.RelationshipToPatient = req.RelationshipToPatient
	contact.MobilePhone = req.MobilePhone
	contact.Email = req.Email

	if err := u.contactRepo.Update(db, contact); err != nil {
		u.log.Warnf("Failed to update contact: %+v", err)
		return nil, err
	}

	return converter.FamilyContactToResponse(contact), nil
}

func (u *patientUsecase) DeleteContact(ctx context.Context, contactID uuid.UUID) error {
	db := u.db.WithContext(ctx)

	contact, err := u.contactRepo.FindByID(db, contactID)
	if err != nil {
		u.log.Warnf("Failed to find contact: %+v", err)
		return err
	}
	if contact == nil {
		return ErrContactNotFound
	}

	if err := u.contactRepo.Delete(db, contactID); err != nil {
		u.log.Warnf("Failed to delete contact: %+v", err)
		return err
	}

	return nil
}
