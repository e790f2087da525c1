package usecase

import (
	"context"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/apperror"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"
	"hospital-management/internal/service"

	"github.com/sirupsen/logrus"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, id int64) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error)
	UpdatePatient(ctx context.Context, id int64, req *dto.PatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id int64) error
}

type patientUsecase struct {
	store        repository.Store
	log          *logrus.Logger
	auditService service.AuditService
	keyLock      service.KeyLock
}

func NewPatientUsecase(
	store repository.Store,
	log *logrus.Logger,
	auditService service.AuditService,
	keyLock service.KeyLock,
) PatientUsecase {
	return &patientUsecase{
		store:        store,
		log:          log,
		auditService: auditService,
		keyLock:      keyLock,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	if req == nil {
		return nil, apperror.InvalidArgument("patient", "request is required")
	}
	patient, err := converter.PatientRequestToEntity(req)
	if err != nil {
		return nil, err
	}

	release, err := service.AcquireAll(ctx, u.keyLock, patientLockKey(patient.Email))
	if err != nil {
		u.log.Warnf("Failed to acquire patient lock: %+v", err)
		return nil, err
	}
	defer release()

	err = u.store.Transaction(ctx, func(tx repository.Store) error {
		return insertPatient(ctx, tx, u.auditService, patient)
	})
	if err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.log.Infof("Patient %d created", patient.ID)
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id int64) (*dto.PatientResponse, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	patient, err := u.store.Patients().FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NotFound(entity.KindPatient, id)
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.store.Patients().FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id int64, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, apperror.InvalidArgument("patient", "request is required")
	}

	release, err := service.AcquireAll(ctx, u.keyLock, patientLockKey(req.Email))
	if err != nil {
		u.log.Warnf("Failed to acquire patient lock: %+v", err)
		return nil, err
	}
	defer release()

	var patient *entity.Patient
	err = u.store.Transaction(ctx, func(tx repository.Store) error {
		existing, err := tx.Patients().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperror.NotFound(entity.KindPatient, id)
		}
		oldValue := converter.PatientToResponse(existing)

		if err := converter.ApplyPatientRequest(existing, req); err != nil {
			return err
		}
		if err := validatePatient(existing); err != nil {
			return err
		}
		if err := checkEmailAvailable(ctx, tx, existing); err != nil {
			return err
		}
		if err := tx.Patients().Update(ctx, existing); err != nil {
			return err
		}
		patient = existing

		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionPatientUpdate, entity.KindPatient, id, oldValue, converter.PatientToResponse(patient))
	})
	if err != nil {
		u.log.Warnf("Failed to update patient %d: %+v", id, err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

// DeletePatient removes the patient together with every appointment and
// bill that references it. Either all of them go or none do.
func (u *patientUsecase) DeletePatient(ctx context.Context, id int64) error {
	if err := requireID("id", id); err != nil {
		return err
	}

	var appointmentCount, billCount int
	err := u.store.Transaction(ctx, func(tx repository.Store) error {
		patient, err := tx.Patients().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if patient == nil {
			return apperror.NotFound(entity.KindPatient, id)
		}

		appointments, err := tx.Appointments().FindByPatientID(ctx, id)
		if err != nil {
			return err
		}
		bills, err := tx.Bills().FindByPatientID(ctx, id)
		if err != nil {
			return err
		}

		for i := range appointments {
			a := &appointments[i]
			if _, err := tx.Appointments().Delete(ctx, a.ID); err != nil {
				return err
			}
			if err := u.auditService.LogDelete(ctx, tx, entity.AuditActionAppointmentDelete, entity.KindAppointment, a.ID, converter.AppointmentToResponse(a, patient, nil)); err != nil {
				return err
			}
		}
		for i := range bills {
			b := &bills[i]
			if _, err := tx.Bills().Delete(ctx, b.ID); err != nil {
				return err
			}
			if err := u.auditService.LogDelete(ctx, tx, entity.AuditActionBillDelete, entity.KindBill, b.ID, converter.BillToResponse(b, patient)); err != nil {
				return err
			}
		}

		if _, err := tx.Patients().Delete(ctx, id); err != nil {
			return err
		}
		appointmentCount, billCount = len(appointments), len(bills)

		return u.auditService.LogDelete(ctx, tx, entity.AuditActionPatientDelete, entity.KindPatient, id, converter.PatientToResponse(patient))
	})
	if err != nil {
		u.log.Warnf("Failed to delete patient %d: %+v", id, err)
		return err
	}

	u.log.Infof("Patient %d deleted with %d appointments and %d bills", id, appointmentCount, billCount)
	return nil
}
