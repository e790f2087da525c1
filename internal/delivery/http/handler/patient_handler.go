package handler

import (
	"encoding/json"
	"net/http"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/response"
	"hospital-management/pkg/validator"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.InvalidBody(w)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.CreatePatient(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create patient")
		return
	}

	response.Created(w, "Patient created successfully", patient)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), patientID)
	if err != nil {
		writeError(w, err, "Failed to get patient")
		return
	}

	response.OK(w, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.GetAllPatients(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get patients")
		return
	}

	response.OK(w, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	var req dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.InvalidBody(w)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.UpdatePatient(r.Context(), patientID, &req)
	if err != nil {
		writeError(w, err, "Failed to update patient")
		return
	}

	response.OK(w, "Patient updated successfully", patient)
}

// DeletePatient also removes the patient's appointments and bills.
func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	if err := h.patientUsecase.DeletePatient(r.Context(), patientID); err != nil {
		writeError(w, err, "Failed to delete patient")
		return
	}

	response.OK(w, "Patient deleted successfully", nil)
}
