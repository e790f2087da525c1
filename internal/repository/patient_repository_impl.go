package repository

import (
	"context"
	"errors"

	"hospital-management/internal/domain/apperror"
	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	return r.translate(r.db.WithContext(ctx).Create(patient).Error, patient)
}

func (r *patientRepository) FindByID(ctx context.Context, id int64) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	var patients []entity.Patient
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entity.Patient{}).Where("email = ?", email)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	return r.translate(r.db.WithContext(ctx).Save(patient).Error, patient)
}

func (r *patientRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}

func (r *patientRepository) translate(err error, patient *entity.Patient) error {
	if isDuplicateKeyError(err, "email") {
		return apperror.Conflict("email", patient.Email)
	}
	return err
}
