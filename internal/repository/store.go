package repository

import (
	"context"

	domainRepo "hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type gormStore struct {
	db           *gorm.DB
	doctors      domainRepo.DoctorRepository
	patients     domainRepo.PatientRepository
	appointments domainRepo.AppointmentRepository
	bills        domainRepo.BillRepository
	auditLogs    domainRepo.AuditLogRepository
}

// NewStore returns a Store whose repositories all run on db.
func NewStore(db *gorm.DB) domainRepo.Store {
	return &gormStore{
		db:           db,
		doctors:      NewDoctorRepository(db),
		patients:     NewPatientRepository(db),
		appointments: NewAppointmentRepository(db),
		bills:        NewBillRepository(db),
		auditLogs:    NewAuditLogRepository(db),
	}
}

func (s *gormStore) Doctors() domainRepo.DoctorRepository           { return s.doctors }
func (s *gormStore) Patients() domainRepo.PatientRepository         { return s.patients }
func (s *gormStore) Appointments() domainRepo.AppointmentRepository { return s.appointments }
func (s *gormStore) Bills() domainRepo.BillRepository               { return s.bills }
func (s *gormStore) AuditLogs() domainRepo.AuditLogRepository       { return s.auditLogs }

func (s *gormStore) Transaction(ctx context.Context, fn func(tx domainRepo.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
