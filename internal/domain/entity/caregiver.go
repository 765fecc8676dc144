package entity

import (
	"strconv"
	"strings"
	"time"
)

// Caregiver has a delimited list of assigned patient IDs. The list comes in
// from forms as free text, so it is parsed defensively: empty and
// non-numeric entries are dropped, never fatal.
type Caregiver struct {
	ID               int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string    `gorm:"type:varchar(255);not null" json:"name"`
	Contact          string    `gorm:"type:varchar(255)" json:"contact,omitempty"`
	AssignedPatients string    `gorm:"type:text" json:"assigned_patients,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Caregiver) TableName() string {
	return "caregivers"
}

func (c *Caregiver) AssignedPatientIDs() []int {
	return ParseAssignedPatients(c.AssignedPatients)
}

// ParseAssignedPatients parses a comma delimited patient ID list, e.g.
// "3, abc, ,7" resolves to [3 7].
func ParseAssignedPatients(raw string) []int {
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.Atoi(p)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
