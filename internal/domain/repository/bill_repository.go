package repository

import (
	"context"

	"hospital-management/internal/domain/entity"
)

type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	FindByID(ctx context.Context, id int64) (*entity.Bill, error)
	FindAll(ctx context.Context) ([]entity.Bill, error)
	FindByPatientID(ctx context.Context, patientID int64) ([]entity.Bill, error)
	FindByStatus(ctx context.Context, status entity.BillStatus) ([]entity.Bill, error)
	Update(ctx context.Context, bill *entity.Bill) error
	Delete(ctx context.Context, id int64) (int64, error)
}
