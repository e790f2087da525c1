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

type BillHandler struct {
	billUsecase usecase.BillUsecase
	validator   *validator.CustomValidator
}

func NewBillHandler(billUsecase usecase.BillUsecase, validator *validator.CustomValidator) *BillHandler {
	return &BillHandler{
		billUsecase: billUsecase,
		validator:   validator,
	}
}

func (h *BillHandler) decode(w http.ResponseWriter, r *http.Request) (*dto.BillRequest, bool) {
	var req dto.BillRequest
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

func (h *BillHandler) CreateBill(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	bill, err := h.billUsecase.CreateBill(r.Context(), req)
	if err != nil {
		writeError(w, err, "Failed to create bill")
		return
	}

	response.Created(w, "Bill created successfully", bill)
}

func (h *BillHandler) GetBill(w http.ResponseWriter, r *http.Request) {
	billID, err := parseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid bill ID")
		return
	}

	bill, err := h.billUsecase.GetBill(r.Context(), billID)
	if err != nil {
		writeError(w, err, "Failed to get bill")
		return
	}

	response.OK(w, "Bill retrieved successfully", bill)
}

func (h *BillHandler) GetAllBills(w http.ResponseWriter, r *http.Request) {
	bills, err := h.billUsecase.GetAllBills(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get bills")
		return
	}

	response.OK(w, "Bills retrieved successfully", bills)
}

func (h *BillHandler) GetBillsByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseID(r, "patientId")
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	bills, err := h.billUsecase.GetBillsByPatient(r.Context(), patientID)
	if err != nil {
		writeError(w, err, "Failed to get bills")
		return
	}

	response.OK(w, "Bills retrieved successfully", bills)
}

func (h *BillHandler) GetBillsByStatus(w http.ResponseWriter, r *http.Request) {
	bills, err := h.billUsecase.GetBillsByStatus(r.Context(), mux.Vars(r)["status"])
	if err != nil {
		writeError(w, err, "Failed to get bills")
		return
	}

	response.OK(w, "Bills retrieved successfully", bills)
}

func (h *BillHandler) UpdateBill(w http.ResponseWriter, r *http.Request) {
	billID, err := parseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid bill ID")
		return
	}

	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	bill, err := h.billUsecase.UpdateBill(r.Context(), billID, req)
	if err != nil {
		writeError(w, err, "Failed to update bill")
		return
	}

	response.OK(w, "Bill updated successfully", bill)
}

func (h *BillHandler) DeleteBill(w http.ResponseWriter, r *http.Request) {
	billID, err := parseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid bill ID")
		return
	}

	if err := h.billUsecase.DeleteBill(r.Context(), billID); err != nil {
		writeError(w, err, "Failed to delete bill")
		return
	}

	response.OK(w, "Bill deleted successfully", nil)
}
