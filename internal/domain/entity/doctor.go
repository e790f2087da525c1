package entity

import "time"

// Doctor is a practitioner that appointments can be booked with.
type Doctor struct {
	ID                int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string    `gorm:"type:varchar(255);not null" json:"name"`
	Specialty         string    `gorm:"type:varchar(255);not null;index" json:"specialty"`
	LicenseNumber     *string   `gorm:"type:varchar(100);uniqueIndex" json:"license_number,omitempty"`
	YearsOfExperience *int      `json:"years_of_experience,omitempty"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// HasLicense reports whether a non-empty license number is set.
func (d *Doctor) HasLicense() bool {
	return d.LicenseNumber != nil && *d.LicenseNumber != ""
}
