package dto

import "time"

// Request DTOs

type AppointmentRequest struct {
	Patient        PatientRef `json:"patient"`
	Doctor         DoctorRef  `json:"doctor"`
	DateTime       Timestamp  `json:"date_time" validate:"required"`
	Status         string     `json:"status" validate:"omitempty,oneof=SCHEDULED COMPLETED CANCELLED"`
	ReasonForVisit string     `json:"reason_for_visit"`
	Notes          string     `json:"notes"`
}

// Response DTOs

type AppointmentResponse struct {
	ID             int64     `json:"id"`
	PatientID      int64     `json:"patient_id"`
	PatientName    string    `json:"patient_name,omitempty"`
	DoctorID       int64     `json:"doctor_id"`
	DoctorName     string    `json:"doctor_name,omitempty"`
	DateTime       Timestamp `json:"date_time"`
	Status         string    `json:"status"`
	ReasonForVisit string    `json:"reason_for_visit,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
