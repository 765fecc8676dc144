package entity

import (
	"strings"
	"time"
)

// Medication belongs to exactly one patient. TimeSchedule holds the daily
// dose times as a comma delimited list of HH:MM values, e.g. "08:00,20:00".
type Medication struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID    int       `gorm:"not null;index" json:"patient_id"`
	DrugName     string    `gorm:"type:varchar(255);not null" json:"drug_name"`
	Dosage       string    `gorm:"type:varchar(100)" json:"dosage"`
	TimeSchedule string    `gorm:"type:varchar(255)" json:"time_schedule"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient   Patient    `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Reminders []Reminder `gorm:"foreignKey:MedicationID;constraint:OnDelete:CASCADE" json:"reminders,omitempty"`
}

func (Medication) TableName() string {
	return "medications"
}

// DoseTimes parses TimeSchedule into times of day. Malformed entries are
// dropped, never fatal, same policy as the assigned-patient lists.
func (m *Medication) DoseTimes() []time.Time {
	parts := strings.Split(m.TimeSchedule, ",")
	times := make([]time.Time, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		t, err := time.Parse("15:04", p)
		if err != nil {
			continue
		}
		times = append(times, t)
	}
	return times
}
