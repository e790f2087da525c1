package repository

import (
	"context"

	"hospital-management/internal/domain/entity"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindByID(ctx context.Context, id int64) (*entity.Doctor, error)
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	FindBySpecialty(ctx context.Context, specialty string) ([]entity.Doctor, error)
	// ExistsByLicenseNumber ignores the doctor with excludeID; pass 0 to check all rows.
	ExistsByLicenseNumber(ctx context.Context, licenseNumber string, excludeID int64) (bool, error)
	Update(ctx context.Context, doctor *entity.Doctor) error
	Delete(ctx context.Context, id int64) (int64, error)
}
