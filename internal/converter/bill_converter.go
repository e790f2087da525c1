package converter

import (
	"time"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/apperror"
	"hospital-management/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// maxBillAmount is the largest value a numeric(10,2) column holds.
var maxBillAmount = decimal.RequireFromString("99999999.99")

func BillToResponse(bill *entity.Bill, patient *entity.Patient) *dto.BillResponse {
	if bill == nil {
		return nil
	}

	response := &dto.BillResponse{
		ID:          bill.ID,
		PatientID:   bill.PatientID,
		Amount:      bill.Amount,
		Status:      string(bill.Status),
		BillDate:    dto.NewTimestamp(bill.BillDate),
		DueDate:     dto.TimestampPtr(bill.DueDate),
		Description: bill.Description,
		PaymentDate: dto.TimestampPtr(bill.PaymentDate),
		CreatedAt:   bill.CreatedAt,
		UpdatedAt:   bill.UpdatedAt,
	}
	if patient != nil {
		response.PatientName = patient.Name
	}
	return response
}

// ApplyBillRequest overwrites every mutable field of bill. An empty status
// becomes PENDING and a missing bill date becomes now. A PAID bill without
// a payment date is accepted as is.
func ApplyBillRequest(bill *entity.Bill, req *dto.BillRequest, patientID int64, now time.Time) error {
	if !req.Amount.IsPositive() {
		return apperror.InvalidArgument("amount", "must be greater than 0")
	}
	if req.Amount.Exponent() < -2 && !req.Amount.Equal(req.Amount.Truncate(2)) {
		return apperror.InvalidArgument("amount", "must have at most 2 decimal places")
	}
	if req.Amount.GreaterThan(maxBillAmount) {
		return apperror.InvalidArgument("amount", "must not exceed "+maxBillAmount.StringFixed(2))
	}
	status, err := ParseBillStatus(req.Status)
	if err != nil {
		return err
	}

	billDate := now
	if t := req.BillDate.TimePtr(); t != nil {
		billDate = *t
	}

	bill.PatientID = patientID
	bill.Amount = req.Amount
	bill.Status = status
	bill.BillDate = billDate
	bill.DueDate = req.DueDate.TimePtr()
	bill.Description = req.Description
	bill.PaymentDate = req.PaymentDate.TimePtr()
	return nil
}

func ParseBillStatus(s string) (entity.BillStatus, error) {
	if s == "" {
		return entity.BillStatusPending, nil
	}
	status := entity.BillStatus(s)
	if !status.IsValid() {
		return "", apperror.InvalidArgument("status", "must be one of PENDING, PAID, OVERDUE, CANCELLED")
	}
	return status, nil
}
