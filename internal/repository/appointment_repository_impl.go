package repository

import (
	"context"
	"errors"

	"hospital-management/internal/domain/apperror"
	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.translate(r.db.WithContext(ctx).Create(appointment).Error, appointment)
}

func (r *appointmentRepository) FindByID(ctx context.Context, id int64) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, patientID int64) ([]entity.Appointment, error) {
	return r.findWhere(ctx, "patient_id = ?", patientID)
}

func (r *appointmentRepository) FindByDoctorID(ctx context.Context, doctorID int64) ([]entity.Appointment, error) {
	return r.findWhere(ctx, "doctor_id = ?", doctorID)
}

func (r *appointmentRepository) FindByStatus(ctx context.Context, status entity.AppointmentStatus) ([]entity.Appointment, error) {
	return r.findWhere(ctx, "status = ?", status)
}

func (r *appointmentRepository) CountByDoctorID(ctx context.Context, doctorID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).Where("doctor_id = ?", doctorID).Count(&count).Error
	return count, err
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	return r.translate(r.db.WithContext(ctx).Save(appointment).Error, appointment)
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) findWhere(ctx context.Context, cond string, arg interface{}) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Where(cond, arg).
		Order("id ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// translate maps foreign key violations raised when a parent vanished
// between resolution and insert.
func (r *appointmentRepository) translate(err error, appointment *entity.Appointment) error {
	if isForeignKeyError(err, "patient") {
		return apperror.NotFound(entity.KindPatient, appointment.PatientID)
	}
	if isForeignKeyError(err, "doctor") {
		return apperror.NotFound(entity.KindDoctor, appointment.DoctorID)
	}
	return err
}
