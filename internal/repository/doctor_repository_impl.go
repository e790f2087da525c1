package repository

import (
	"context"
	"errors"

	"hospital-management/internal/domain/apperror"
	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	return r.translate(r.db.WithContext(ctx).Create(doctor).Error, doctor)
}

func (r *doctorRepository) FindByID(ctx context.Context, id int64) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindBySpecialty(ctx context.Context, specialty string) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := r.db.WithContext(ctx).
		Where("specialty = ?", specialty).
		Order("id ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) ExistsByLicenseNumber(ctx context.Context, licenseNumber string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entity.Doctor{}).Where("license_number = ?", licenseNumber)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *entity.Doctor) error {
	return r.translate(r.db.WithContext(ctx).Save(doctor).Error, doctor)
}

func (r *doctorRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Doctor{})
	if isForeignKeyError(result.Error, "doctor") {
		return 0, apperror.ConflictWithReason("doctor", id, "is still referenced by appointments")
	}
	return result.RowsAffected, result.Error
}

func (r *doctorRepository) translate(err error, doctor *entity.Doctor) error {
	if isDuplicateKeyError(err, "license_number") {
		var value string
		if doctor.LicenseNumber != nil {
			value = *doctor.LicenseNumber
		}
		return apperror.Conflict("licenseNumber", value)
	}
	return err
}
