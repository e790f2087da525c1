package repository

import (
	"context"
	"errors"

	"hospital-management/internal/domain/apperror"
	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	return r.translate(r.db.WithContext(ctx).Create(bill).Error, bill)
}

func (r *billRepository) FindByID(ctx context.Context, id int64) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&bill).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) FindAll(ctx context.Context) ([]entity.Bill, error) {
	var bills []entity.Bill
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *billRepository) FindByPatientID(ctx context.Context, patientID int64) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("id ASC").
		Find(&bills).Error
	if err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *billRepository) FindByStatus(ctx context.Context, status entity.BillStatus) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("id ASC").
		Find(&bills).Error
	if err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *billRepository) Update(ctx context.Context, bill *entity.Bill) error {
	return r.translate(r.db.WithContext(ctx).Save(bill).Error, bill)
}

func (r *billRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Bill{})
	return result.RowsAffected, result.Error
}

func (r *billRepository) translate(err error, bill *entity.Bill) error {
	if isForeignKeyError(err, "patient") {
		return apperror.NotFound(entity.KindPatient, bill.PatientID)
	}
	return err
}
