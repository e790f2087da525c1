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

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) decode(w http.ResponseWriter, r *http.Request) (*dto.AppointmentRequest, bool) {
	var req dto.AppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.InvalidBody(w)
		return nil, false
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return nil, false
	}
	return &req, true
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), req)
	if err != nil {
		writeError(w, err, "Failed to create appointment")
		return
	}

	response.Created(w, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), appointmentID)
	if err != nil {
		writeError(w, err, "Failed to get appointment")
		return
	}

	response.OK(w, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAllAppointments(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get appointments")
		return
	}

	response.OK(w, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetAppointmentsByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseID(r, "patientId")
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	appointments, err := h.appointmentUsecase.GetAppointmentsByPatient(r.Context(), patientID)
	if err != nil {
		writeError(w, err, "Failed to get appointments")
		return
	}

	response.OK(w, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetAppointmentsByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := parseID(r, "doctorId")
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	appointments, err := h.appointmentUsecase.GetAppointmentsByDoctor(r.Context(), doctorID)
	if err != nil {
		writeError(w, err, "Failed to get appointments")
		return
	}

	response.OK(w, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetAppointmentsByStatus(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAppointmentsByStatus(r.Context(), mux.Vars(r)["status"])
	if err != nil {
		writeError(w, err, "Failed to get appointments")
		return
	}

	response.OK(w, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), appointmentID, req)
	if err != nil {
		writeError(w, err, "Failed to update appointment")
		return
	}

	response.OK(w, "Appointment updated successfully", appointment)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	if err := h.appointmentUsecase.DeleteAppointment(r.Context(), appointmentID); err != nil {
		writeError(w, err, "Failed to delete appointment")
		return
	}

	response.OK(w, "Appointment deleted successfully", nil)
}
