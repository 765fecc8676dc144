package entity

import "time"

// FamilyMember mirrors Caregiver: identity, contact and a delimited list of
// assigned patient IDs sharing the same defensive parsing.
type FamilyMember struct {
	ID               int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string    `gorm:"type:varchar(255);not null" json:"name"`
	Contact          string    `gorm:"type:varchar(255)" json:"contact,omitempty"`
	AssignedPatients string    `gorm:"type:text" json:"assigned_patients,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (FamilyMember) TableName() string {
	return "family_members"
}

func (f *FamilyMember) AssignedPatientIDs() []int {
	return ParseAssignedPatients(f.AssignedPatients)
}
