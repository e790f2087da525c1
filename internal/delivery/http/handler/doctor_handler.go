package handler

import (
	"encoding/json"
	"net/http"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/response"
	"hospital-management/pkg/validator"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.DoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.InvalidBody(w)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create doctor")
		return
	}

	response.Created(w, "Doctor created successfully", doctor)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := parseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		writeError(w, err, "Failed to get doctor")
		return
	}

	response.OK(w, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get doctors")
		return
	}

	response.OK(w, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) GetDoctorsBySpecialty(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.GetDoctorsBySpecialty(r.Context(), mux.Vars(r)["specialty"])
	if err != nil {
		writeError(w, err, "Failed to get doctors")
		return
	}

	response.OK(w, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := parseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	var req dto.DoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.InvalidBody(w)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.UpdateDoctor(r.Context(), doctorID, &req)
	if err != nil {
		writeError(w, err, "Failed to update doctor")
		return
	}

	response.OK(w, "Doctor updated successfully", doctor)
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := parseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	if err := h.doctorUsecase.DeleteDoctor(r.Context(), doctorID); err != nil {
		writeError(w, err, "Failed to delete doctor")
		return
	}

	response.OK(w, "Doctor deleted successfully", nil)
}
