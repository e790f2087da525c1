package dto

import "time"

// Request DTOs

type PatientRequest struct {
	Name           string `json:"name" validate:"required,max=255"`
	Email          string `json:"email" validate:"required,email,max=255"`
	Phone          string `json:"phone" validate:"omitempty,phone"`
	DateOfBirth    string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	MedicalHistory string `json:"medical_history"`
}

// Response DTOs

type PatientResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	DateOfBirth    string    `json:"date_of_birth,omitempty"`
	MedicalHistory string    `json:"medical_history,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
