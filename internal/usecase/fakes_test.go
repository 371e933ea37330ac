package usecase

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"time"

	"psych-portal-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// fakeTxPool satisfies gorm's ConnPoolBeginner and TxCommitter so that
// Begin/Commit/Rollback work against the fakes without a driver. Query
// methods error out; the fake repositories never reach them.
type fakeTxPool struct{}

func (p *fakeTxPool) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return nil, errors.New("no database in tests")
}

func (p *fakeTxPool) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, errors.New("no database in tests")
}

func (p *fakeTxPool) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("no database in tests")
}

func (p *fakeTxPool) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (p *fakeTxPool) BeginTx(ctx context.Context, opts *sql.TxOptions) (gorm.ConnPool, error) {
	return p, nil
}

func (p *fakeTxPool) Commit() error {
	return nil
}

func (p *fakeTxPool) Rollback() error {
	return nil
}

// The fakes below ignore the db handle entirely; the pool only exists so
// the usecases' transaction bracketing succeeds.
func newTestDB() *gorm.DB {
	pool := &fakeTxPool{}
	return &gorm.DB{
		Config:    &gorm.Config{ConnPool: pool},
		Statement: &gorm.Statement{ConnPool: pool, Context: context.Background()},
	}
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeAuditService struct {
	actions []string
}

func (s *fakeAuditService) Record(db *gorm.DB, professionalID *uuid.UUID, action string, metadata entity.JSON) {
	s.actions = append(s.actions, action)
}

func (s *fakeAuditService) recorded(action string) bool {
	for _, a := range s.actions {
		if a == action {
			return true
		}
	}
	return false
}

type fakeProfessionalRepo struct {
	professionals []*entity.Professional
	updateErr     error
	createErr     error
}

func (r *fakeProfessionalRepo) Create(db *gorm.DB, professional *entity.Professional) error {
	if r.createErr != nil {
		return r.createErr
	}
	if professional.ID == uuid.Nil {
		professional.ID = uuid.New()
	}
	r.professionals = append(r.professionals, professional)
	return nil
}

func (r *fakeProfessionalRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Professional, error) {
	for _, p := range r.professionals {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProfessionalRepo) FindByUserID(db *gorm.DB, userID string) (*entity.Professional, error) {
	for _, p := range r.professionals {
		if p.UserID != nil && *p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProfessionalRepo) FindByEmail(db *gorm.DB, email string) (*entity.Professional, error) {
	for _, p := range r.professionals {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProfessionalRepo) FindAll(db *gorm.DB) ([]entity.Professional, error) {
	out := make([]entity.Professional, 0, len(r.professionals))
	for _, p := range r.professionals {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProfessionalRepo) Update(db *gorm.DB, professional *entity.Professional) error {
	return r.updateErr
}

type fakePatientRepo struct {
	patients  []*entity.Patient
	deleted   []uuid.UUID
	createErr error
}

func (r *fakePatientRepo) Create(db *gorm.DB, patient *entity.Patient) error {
	if r.createErr != nil {
		return r.createErr
	}
	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	r.patients = append(r.patients, patient)
	return nil
}

func (r *fakePatientRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	for _, p := range r.patients {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePatientRepo) FindByIDWithRelations(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	return r.FindByID(db, id)
}

func (r *fakePatientRepo) FindByDNI(db *gorm.DB, dni string) (*entity.Patient, error) {
	for _, p := range r.patients {
		if p.DNI == dni {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePatientRepo) Search(db *gorm.DB, search string) ([]entity.Patient, error) {
	out := make([]entity.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePatientRepo) Update(db *gorm.DB, patient *entity.Patient) error {
	return nil
}

func (r *fakePatientRepo) Delete(db *gorm.DB, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeFamilyContactRepo struct {
	contacts []*entity.FamilyContact
}

func (r *fakeFamilyContactRepo) Create(db *gorm.DB, contact *entity.FamilyContact) error {
	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	r.contacts = append(r.contacts, contact)
	return nil
}

func (r *fakeFamilyContactRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.FamilyContact, error) {
	for _, c := range r.contacts {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeFamilyContactRepo) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.FamilyContact, error) {
	var out []entity.FamilyContact
	for _, c := range r.contacts {
		if c.PatientID == patientID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeFamilyContactRepo) Update(db *gorm.DB, contact *entity.FamilyContact) error {
	return nil
}

func (r *fakeFamilyContactRepo) Delete(db *gorm.DB, id uuid.UUID) error {
	for i, c := range r.contacts {
		if c.ID == id {
			r.contacts = append(r.contacts[:i], r.contacts[i+1:]...)
			break
		}
	}
	return nil
}

type fakeAppointmentRepo struct {
	appointments []*entity.Appointment
	patientCount int64
}

func (r *fakeAppointmentRepo) CreateBatch(db *gorm.DB, appointments []entity.Appointment) error {
	for i := range appointments {
		a := appointments[i]
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		r.appointments = append(r.appointments, &a)
	}
	return nil
}

func (r *fakeAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	for _, a := range r.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAppointmentRepo) FindOwned(db *gorm.DB, id uuid.UUID, professionalID uuid.UUID) (*entity.Appointment, error) {
	for _, a := range r.appointments {
		if a.ID == id && a.ProfessionalID == professionalID {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAppointmentRepo) FindByProfessional(db *gorm.DB, professionalID uuid.UUID) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.appointments {
		if a.ProfessionalID == professionalID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindByProfessionalInRange(db *gorm.DB, professionalID uuid.UUID, start, end time.Time) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.appointments {
		if a.ProfessionalID == professionalID && !a.DateTime.Before(start) && !a.DateTime.After(end) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) CountByProfessional(db *gorm.DB, professionalID uuid.UUID) (int64, error) {
	var n int64
	for _, a := range r.appointments {
		if a.ProfessionalID == professionalID {
			n++
		}
	}
	return n, nil
}

func (r *fakeAppointmentRepo) CountByPatient(db *gorm.DB, patientID uuid.UUID) (int64, error) {
	return r.patientCount, nil
}

func (r *fakeAppointmentRepo) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return nil
}

func (r *fakeAppointmentRepo) Delete(db *gorm.DB, id uuid.UUID) error {
	for i, a := range r.appointments {
		if a.ID == id {
			r.appointments = append(r.appointments[:i], r.appointments[i+1:]...)
			break
		}
	}
	return nil
}

type fakeSessionRepo struct {
	sessions []*entity.Session
}

func (r *fakeSessionRepo) Create(db *gorm.DB, session *entity.Session) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	r.sessions = append(r.sessions, session)
	return nil
}

func (r *fakeSessionRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Session, error) {
	for _, s := range r.sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.Session, error) {
	for _, s := range r.sessions {
		if s.AppointmentID == appointmentID {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindByProfessional(db *gorm.DB, professionalID uuid.UUID) ([]entity.Session, error) {
	var out []entity.Session
	for _, s := range r.sessions {
		if s.ProfessionalID == professionalID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) CountByProfessional(db *gorm.DB, professionalID uuid.UUID) (int64, error) {
	var n int64
	for _, s := range r.sessions {
		if s.ProfessionalID == professionalID {
			n++
		}
	}
	return n, nil
}

func (r *fakeSessionRepo) Update(db *gorm.DB, session *entity.Session) error {
	return nil
}

func (r *fakeSessionRepo) Delete(db *gorm.DB, id uuid.UUID) error {
	for i, s := range r.sessions {
		if s.ID == id {
			r.sessions = append(r.sessions[:i], r.sessions[i+1:]...)
			break
		}
	}
	return nil
}
