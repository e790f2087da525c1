package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type BillRequest struct {
	Patient     PatientRef      `json:"patient"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status" validate:"omitempty,oneof=PENDING PAID OVERDUE CANCELLED"`
	BillDate    *Timestamp      `json:"bill_date"`
	DueDate     *Timestamp      `json:"due_date"`
	Description string          `json:"description"`
	PaymentDate *Timestamp      `json:"payment_date"`
}

// Response DTOs

type BillResponse struct {
	ID          int64           `json:"id"`
	PatientID   int64           `json:"patient_id"`
	PatientName string          `json:"patient_name,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	BillDate    Timestamp       `json:"bill_date"`
	DueDate     *Timestamp      `json:"due_date,omitempty"`
	Description string          `json:"description,omitempty"`
	PaymentDate *Timestamp      `json:"payment_date,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type BillListResponse struct {
	Bills []BillResponse `json:"bills"`
	Total int            `json:"total"`
}
