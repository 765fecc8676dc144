package entity

import "time"

// Appointment links a patient with a caregiver at a point in time. No
// reminder rows are generated for appointments; they only surface in the
// daily schedule view.
type Appointment struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID   int       `gorm:"not null;index" json:"patient_id"`
	CaregiverID int       `gorm:"not null;index" json:"caregiver_id"`
	ScheduledAt time.Time `gorm:"not null;index" json:"scheduled_at"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient   Patient   `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Caregiver Caregiver `gorm:"foreignKey:CaregiverID" json:"caregiver,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
