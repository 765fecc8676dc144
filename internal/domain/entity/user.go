package entity

import "time"

// Role constants for the static role check
const (
	RolePatient   = "patient"
	RoleCaregiver = "caregiver"
	RoleFamily    = "family"
	RoleAdmin     = "admin"
)

// User is a login credential row. LinkedID points at the patient, caregiver
// or family member record the account belongs to; admins have no link.
type User struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null;index" json:"role"`
	LinkedID  int       `gorm:"index" json:"linked_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
