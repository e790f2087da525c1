package entity

import "time"

// Patient is the owner of appointments and bills. Deleting a patient
// removes everything that references it.
type Patient struct {
	ID             int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string     `gorm:"type:varchar(255);not null" json:"name"`
	Email          string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone          string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	DateOfBirth    *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	MedicalHistory string     `gorm:"type:text" json:"medical_history,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}
