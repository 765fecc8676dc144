package entity

import "time"

type ReminderStatus string

const (
	ReminderStatusPending ReminderStatus = "PENDING"
	ReminderStatusDone    ReminderStatus = "DONE"
	ReminderStatusMissed  ReminderStatus = "MISSED"
)

// Reminder is a generated, stateful instance of a medication dose
// occurrence. PENDING is the initial state; DONE and MISSED are terminal.
// The PENDING->MISSED transition is performed by the sweep with a
// conditional bulk update, the PENDING->DONE transition by an explicit
// user action with the same status predicate.
type Reminder struct {
	ID           int            `gorm:"primaryKey;autoIncrement" json:"id"`
	MedicationID int            `gorm:"not null;index" json:"medication_id"`
	PatientID    int            `gorm:"not null;index" json:"patient_id"`
	AlertTime    time.Time      `gorm:"not null" json:"alert_time"`
	Status       ReminderStatus `gorm:"type:varchar(10);not null;default:PENDING" json:"status"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Medication Medication `gorm:"foreignKey:MedicationID" json:"medication,omitempty"`
}

func (Reminder) TableName() string {
	return "reminders"
}

func (r *Reminder) IsTerminal() bool {
	return r.Status == ReminderStatusDone || r.Status == ReminderStatusMissed
}
