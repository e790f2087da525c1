package converter

import (
	"strings"
	"time"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/apperror"
	"hospital-management/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:             patient.ID,
		Name:           patient.Name,
		Email:          patient.Email,
		Phone:          patient.Phone,
		MedicalHistory: patient.MedicalHistory,
		CreatedAt:      patient.CreatedAt,
		UpdatedAt:      patient.UpdatedAt,
	}
	if patient.DateOfBirth != nil {
		response.DateOfBirth = patient.DateOfBirth.Format(dateLayout)
	}
	return response
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

// PatientRequestToEntity builds an unsaved Patient from req.
func PatientRequestToEntity(req *dto.PatientRequest) (*entity.Patient, error) {
	patient := &entity.Patient{}
	if err := ApplyPatientRequest(patient, req); err != nil {
		return nil, err
	}
	return patient, nil
}

// ApplyPatientRequest overwrites every mutable field of patient. patient
// is left untouched when the date of birth cannot be parsed.
func ApplyPatientRequest(patient *entity.Patient, req *dto.PatientRequest) error {
	var dob *time.Time
	if s := strings.TrimSpace(req.DateOfBirth); s != "" {
		parsed, err := time.Parse(dateLayout, s)
		if err != nil {
			return apperror.InvalidArgument("dateOfBirth", "must be formatted as YYYY-MM-DD")
		}
		dob = &parsed
	}

	patient.Name = strings.TrimSpace(req.Name)
	patient.Email = strings.TrimSpace(req.Email)
	patient.Phone = strings.TrimSpace(req.Phone)
	patient.DateOfBirth = dob
	patient.MedicalHistory = req.MedicalHistory
	return nil
}
