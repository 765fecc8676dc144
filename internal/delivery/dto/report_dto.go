package dto

type ReportRowResponse struct {
	PatientID        int     `json:"patient_id"`
	Name             string  `json:"name"`
	TotalReminders   int     `json:"total_reminders"`
	MissedCount      int     `json:"missed_count"`
	AdherencePercent float64 `json:"adherence_percent"`
}

type ReportResponse struct {
	Rows  []ReportRowResponse `json:"rows"`
	Total int                 `json:"total"`
}
