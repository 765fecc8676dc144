package dto

// ScheduleEntryResponse is one row of a patient's daily schedule: a
// medication dose or an appointment, ordered by time ascending.
type ScheduleEntryResponse struct {
	Kind        string `json:"kind"`
	Time        string `json:"time"`
	DrugName    string `json:"drug_name,omitempty"`
	Dosage      string `json:"dosage,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	ReminderID  *int   `json:"reminder_id,omitempty"`
}

type DailyScheduleResponse struct {
	PatientID int                     `json:"patient_id"`
	Date      string                  `json:"date"`
	Entries   []ScheduleEntryResponse `json:"entries"`
	Total     int                     `json:"total"`
}

// PatientScheduleBlock pairs a patient with their daily schedule inside a
// caregiver or family aggregate view.
type PatientScheduleBlock struct {
	PatientID int                   `json:"patient_id"`
	Schedule  DailyScheduleResponse `json:"schedule"`
}

type AggregateScheduleResponse struct {
	Schedules []PatientScheduleBlock `json:"schedules"`
	Total     int                    `json:"total"`
}
