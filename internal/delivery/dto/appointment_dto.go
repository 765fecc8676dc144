package dto

import "time"

type CreateAppointmentRequest struct {
	PatientID   int    `json:"patient_id" validate:"required,gt=0"`
	CaregiverID int    `json:"caregiver_id" validate:"required,gt=0"`
	ScheduledAt string `json:"scheduled_at" validate:"required"`
	Description string `json:"description"`
}

type AppointmentResponse struct {
	ID          int       `json:"id"`
	PatientID   int       `json:"patient_id"`
	CaregiverID int       `json:"caregiver_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
