package entity

import "time"

type ScheduleEntryKind string

const (
	ScheduleEntryMedication  ScheduleEntryKind = "MEDICATION"
	ScheduleEntryAppointment ScheduleEntryKind = "APPOINTMENT"
)

// Appointment entries carry a fixed status since no reminder tracks them.
const AppointmentStatusScheduled = "SCHEDULED"

// ScheduleEntry is one row of a patient's materialized daily schedule: a
// medication dose joined with its reminder, or an appointment. It is derived
// data, recomputed from source rows and cached with a TTL, never persisted.
type ScheduleEntry struct {
	Kind        ScheduleEntryKind
	ScheduledAt time.Time
	DrugName    string
	Dosage      string
	Description string
	Status      string
	ReminderID  *int
}
