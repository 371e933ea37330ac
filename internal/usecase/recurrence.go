package usecase

import (
	"time"

	"psych-portal-api/internal/domain/entity"

	"github.com/google/uuid"
)

// ExpandRecurrence turns one creation request into the full batch of
// appointment rows. The first row keeps the requested status; every repeat
// is RESERVADO. The horizon is the last instant of the calendar year at
// now, the moment the request is processed, not the appointment's own year.
// A January date created in November only extends through that December.
func ExpandRecurrence(
	professionalID uuid.UUID,
	patientID uuid.UUID,
	start time.Time,
	recurrence entity.Recurrence,
	status entity.AppointmentStatus,
	now time.Time,
) []entity.Appointment {
	appointments := []entity.Appointment{{
		ProfessionalID: professionalID,
		PatientID:      patientID,
		DateTime:       start,
		Recurrence:     recurrence,
		Status:         status,
	}}

	limit := endOfYear(now)

	switch recurrence {
	case entity.RecurrenceWeekly:
		for i := 1; ; i++ {
			next := start.AddDate(0, 0, 7*i)
			if next.After(limit) {
				break
			}
			appointments = append(appointments, entity.Appointment{
				ProfessionalID: professionalID,
				PatientID:      patientID,
				DateTime:       next,
				Recurrence:     entity.RecurrenceWeekly,
				Status:         entity.AppointmentStatusReserved,
			})
		}
	case entity.RecurrenceMonthly:
		for i := 1; ; i++ {
			next := addMonthsClamped(start, i)
			if next.After(limit) {
				break
			}
			appointments = append(appointments, entity.Appointment{
				ProfessionalID: professionalID,
				PatientID:      patientID,
				DateTime:       next,
				Recurrence:     entity.RecurrenceMonthly,
				Status:         entity.AppointmentStatusReserved,
			})
		}
	}

	return appointments
}

// addMonthsClamped steps from the original start date, keeping its day of
// month and clamping to the target month's last day (Jan 31 → Feb 28 →
// Mar 31). Plain AddDate would overflow Jan 31 into Mar 3.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	target := time.Date(year, month+time.Month(months), 1, hour, min, sec, t.Nanosecond(), t.Location())
	if last := daysInMonth(target.Year(), target.Month()); day > last {
		day = last
	}

	return time.Date(target.Year(), target.Month(), day, hour, min, sec, t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// endOfYear returns the last instant of t's calendar year.
func endOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), 12, 31, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// weekRange returns the Monday 00:00 start and Sunday end of the week
// containing t.
func weekRange(t time.Time) (time.Time, time.Time) {
	offset := (int(t.Weekday()) + 6) % 7
	year, month, day := t.AddDate(0, 0, -offset).Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return start, end
}

// dayRange returns the first and last instants of t's calendar day.
func dayRange(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}
