package entity

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "SCHEDULED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
)

// IsValid reports whether s is one of the known appointment statuses.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment links one patient to one doctor at a point in time.
// Only the parent ids are stored.
type Appointment struct {
	ID             int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID      int64             `gorm:"not null;index" json:"patient_id"`
	DoctorID       int64             `gorm:"not null;index" json:"doctor_id"`
	DateTime       time.Time         `gorm:"column:appointment_date_time;type:timestamp;not null" json:"date_time"`
	Status         AppointmentStatus `gorm:"type:varchar(20);not null;default:'SCHEDULED';index" json:"status"`
	ReasonForVisit string            `gorm:"type:text" json:"reason_for_visit,omitempty"`
	Notes          string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

func (a *Appointment) Complete() {
	a.Status = AppointmentStatusCompleted
}

func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}
