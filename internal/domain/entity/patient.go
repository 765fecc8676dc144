package entity

import "time"

// Patient is the central record every schedule, medication and reminder
// hangs off. Deleting a patient cascades to all dependent rows (FKs in the
// migration).
type Patient struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Contact        string    `gorm:"type:varchar(255)" json:"contact,omitempty"`
	MedicalHistory string    `gorm:"type:text" json:"medical_history,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Medications  []Medication  `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"medications,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"appointments,omitempty"`
	Reminders    []Reminder    `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"reminders,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
