package repository

import (
	"context"

	"hospital-management/internal/domain/entity"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id int64) (*entity.Patient, error)
	FindAll(ctx context.Context) ([]entity.Patient, error)
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	Update(ctx context.Context, patient *entity.Patient) error
	Delete(ctx context.Context, id int64) (int64, error)
}
