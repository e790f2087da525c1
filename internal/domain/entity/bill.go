package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillStatus represents the payment state of a bill
type BillStatus string

const (
	BillStatusPending   BillStatus = "PENDING"
	BillStatusPaid      BillStatus = "PAID"
	BillStatusOverdue   BillStatus = "OVERDUE"
	BillStatusCancelled BillStatus = "CANCELLED"
)

func (s BillStatus) IsValid() bool {
	switch s {
	case BillStatusPending, BillStatusPaid, BillStatusOverdue, BillStatusCancelled:
		return true
	}
	return false
}

type Bill struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID   int64           `gorm:"not null;index" json:"patient_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status      BillStatus      `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	BillDate    time.Time       `gorm:"type:timestamp;not null" json:"bill_date"`
	DueDate     *time.Time      `gorm:"type:timestamp" json:"due_date,omitempty"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	PaymentDate *time.Time      `gorm:"type:timestamp" json:"payment_date,omitempty"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Bill) TableName() string {
	return "bills"
}

// IsPaid checks if bill is settled
func (b *Bill) IsPaid() bool {
	return b.Status == BillStatusPaid
}
