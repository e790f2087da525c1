package converter

import (
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/apperror"
	"hospital-management/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// patient and doctor only feed the display names and may be nil.
func AppointmentToResponse(appointment *entity.Appointment, patient *entity.Patient, doctor *entity.Doctor) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:             appointment.ID,
		PatientID:      appointment.PatientID,
		DoctorID:       appointment.DoctorID,
		DateTime:       dto.NewTimestamp(appointment.DateTime),
		Status:         string(appointment.Status),
		ReasonForVisit: appointment.ReasonForVisit,
		Notes:          appointment.Notes,
		CreatedAt:      appointment.CreatedAt,
		UpdatedAt:      appointment.UpdatedAt,
	}
	if patient != nil {
		response.PatientName = patient.Name
	}
	if doctor != nil {
		response.DoctorName = doctor.Name
	}
	return response
}

// ApplyAppointmentRequest overwrites every mutable field of appointment.
// An empty status falls back to SCHEDULED.
func ApplyAppointmentRequest(appointment *entity.Appointment, req *dto.AppointmentRequest, patientID, doctorID int64) error {
	if req.DateTime.IsZero() {
		return apperror.InvalidArgument("dateTime", "is required")
	}
	status, err := ParseAppointmentStatus(req.Status)
	if err != nil {
		return err
	}

	appointment.PatientID = patientID
	appointment.DoctorID = doctorID
	appointment.DateTime = req.DateTime.Time
	appointment.Status = status
	appointment.ReasonForVisit = req.ReasonForVisit
	appointment.Notes = req.Notes
	return nil
}

// ParseAppointmentStatus is case-sensitive.
func ParseAppointmentStatus(s string) (entity.AppointmentStatus, error) {
	if s == "" {
		return entity.AppointmentStatusScheduled, nil
	}
	status := entity.AppointmentStatus(s)
	if !status.IsValid() {
		return "", apperror.InvalidArgument("status", "must be one of SCHEDULED, COMPLETED, CANCELLED")
	}
	return status, nil
}
