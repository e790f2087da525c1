package dto

import "time"

// Request DTOs

// DoctorRequest is used for both create and full-replace update.
type DoctorRequest struct {
	Name              string  `json:"name" validate:"required,max=255"`
	Specialty         string  `json:"specialty" validate:"required,max=255"`
	LicenseNumber     *string `json:"license_number" validate:"omitempty,max=100"`
	YearsOfExperience *int    `json:"years_of_experience" validate:"omitempty,gte=0,lte=70"`
}

// Response DTOs

type DoctorResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Specialty         string    `json:"specialty"`
	LicenseNumber     *string   `json:"license_number,omitempty"`
	YearsOfExperience *int      `json:"years_of_experience,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
