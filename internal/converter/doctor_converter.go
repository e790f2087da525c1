package converter

import (
	"strings"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:                doctor.ID,
		Name:              doctor.Name,
		Specialty:         doctor.Specialty,
		LicenseNumber:     doctor.LicenseNumber,
		YearsOfExperience: doctor.YearsOfExperience,
		CreatedAt:         doctor.CreatedAt,
		UpdatedAt:         doctor.UpdatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// DoctorRequestToEntity builds an unsaved Doctor from req.
func DoctorRequestToEntity(req *dto.DoctorRequest) *entity.Doctor {
	doctor := &entity.Doctor{}
	ApplyDoctorRequest(doctor, req)
	return doctor
}

// ApplyDoctorRequest overwrites every mutable field of doctor. A blank
// license number is stored as NULL so it never takes part in uniqueness.
func ApplyDoctorRequest(doctor *entity.Doctor, req *dto.DoctorRequest) {
	doctor.Name = strings.TrimSpace(req.Name)
	doctor.Specialty = strings.TrimSpace(req.Specialty)
	doctor.LicenseNumber = nil
	if req.LicenseNumber != nil {
		if ln := strings.TrimSpace(*req.LicenseNumber); ln != "" {
			doctor.LicenseNumber = &ln
		}
	}
	doctor.YearsOfExperience = nil
	if req.YearsOfExperience != nil {
		years := *req.YearsOfExperience
		doctor.YearsOfExperience = &years
	}
}
