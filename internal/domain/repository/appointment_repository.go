package repository

import (
	"context"

	"hospital-management/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id int64) (*entity.Appointment, error)
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	FindByPatientID(ctx context.Context, patientID int64) ([]entity.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID int64) ([]entity.Appointment, error)
	FindByStatus(ctx context.Context, status entity.AppointmentStatus) ([]entity.Appointment, error)
	CountByDoctorID(ctx context.Context, doctorID int64) (int64, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id int64) (int64, error)
}
