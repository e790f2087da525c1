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

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id int64) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointmentsByPatient(ctx context.Context, patientID int64) (*dto.AppointmentListResponse, error)
	GetAppointmentsByDoctor(ctx context.Context, doctorID int64) (*dto.AppointmentListResponse, error)
	GetAppointmentsByStatus(ctx context.Context, status string) (*dto.AppointmentListResponse, error)
	UpdateAppointment(ctx context.Context, id int64, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id int64) error
}

type appointmentUsecase struct {
	store        repository.Store
	log          *logrus.Logger
	auditService service.AuditService
	keyLock      service.KeyLock
}

func NewAppointmentUsecase(
	store repository.Store,
	log *logrus.Logger,
	auditService service.AuditService,
	keyLock service.KeyLock,
) AppointmentUsecase {
	return &appointmentUsecase{
		store:        store,
		log:          log,
		auditService: auditService,
		keyLock:      keyLock,
	}
}

// CreateAppointment resolves both parents, creating inline ones in the
// same transaction, and stores the appointment.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	if req == nil {
		return nil, apperror.InvalidArgument("appointment", "request is required")
	}
	appointment := &entity.Appointment{}
	if err := converter.ApplyAppointmentRequest(appointment, req, 0, 0); err != nil {
		return nil, err
	}

	release, err := service.AcquireAll(ctx, u.keyLock, patientRefLockKey(req.Patient), doctorRefLockKey(req.Doctor))
	if err != nil {
		u.log.Warnf("Failed to acquire appointment locks: %+v", err)
		return nil, err
	}
	defer release()

	var response *dto.AppointmentResponse
	err = u.store.Transaction(ctx, func(tx repository.Store) error {
		resolver := converter.NewResolver(tx.Patients(), tx.Doctors())
		patient, doctor, err := resolveParents(ctx, tx, u.auditService, resolver, req.Patient, req.Doctor)
		if err != nil {
			return err
		}

		appointment.PatientID = patient.ID
		appointment.DoctorID = doctor.ID
		if err := tx.Appointments().Create(ctx, appointment); err != nil {
			return err
		}

		response = converter.AppointmentToResponse(appointment, patient, doctor)
		return u.auditService.LogCreate(ctx, tx, entity.AuditActionAppointmentCreate, entity.KindAppointment, appointment.ID, response)
	})
	if err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment %d created for patient %d with doctor %d", appointment.ID, appointment.PatientID, appointment.DoctorID)
	return response, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	appointment, err := u.store.Appointments().FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NotFound(entity.KindAppointment, id)
	}

	return u.resolver().AppointmentResponse(ctx, appointment)
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.store.Appointments().FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}
	return u.toList(ctx, u.resolver(), appointments)
}

func (u *appointmentUsecase) GetAppointmentsByPatient(ctx context.Context, patientID int64) (*dto.AppointmentListResponse, error) {
	if err := requireID("patientId", patientID); err != nil {
		return nil, err
	}

	resolver := u.resolver()
	patient, err := resolver.Patient(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NotFound(entity.KindPatient, patientID)
	}

	appointments, err := u.store.Appointments().FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %d: %+v", patientID, err)
		return nil, err
	}
	return u.toList(ctx, resolver, appointments)
}

func (u *appointmentUsecase) GetAppointmentsByDoctor(ctx context.Context, doctorID int64) (*dto.AppointmentListResponse, error) {
	if err := requireID("doctorId", doctorID); err != nil {
		return nil, err
	}

	resolver := u.resolver()
	doctor, err := resolver.Doctor(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.NotFound(entity.KindDoctor, doctorID)
	}

	appointments, err := u.store.Appointments().FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %d: %+v", doctorID, err)
		return nil, err
	}
	return u.toList(ctx, resolver, appointments)
}

// GetAppointmentsByStatus matches the status exactly; unknown values give an empty list.
func (u *appointmentUsecase) GetAppointmentsByStatus(ctx context.Context, status string) (*dto.AppointmentListResponse, error) {
	if status == "" {
		return nil, apperror.InvalidArgument("status", "is required")
	}

	appointments, err := u.store.Appointments().FindByStatus(ctx, entity.AppointmentStatus(status))
	if err != nil {
		u.log.Warnf("Failed to find appointments with status %q: %+v", status, err)
		return nil, err
	}
	return u.toList(ctx, u.resolver(), appointments)
}

// UpdateAppointment replaces every field. Status changes are not checked
// against the previous status.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id int64, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, apperror.InvalidArgument("appointment", "request is required")
	}
	if err := converter.ApplyAppointmentRequest(&entity.Appointment{}, req, 0, 0); err != nil {
		return nil, err
	}

	release, err := service.AcquireAll(ctx, u.keyLock, patientRefLockKey(req.Patient), doctorRefLockKey(req.Doctor))
	if err != nil {
		u.log.Warnf("Failed to acquire appointment locks: %+v", err)
		return nil, err
	}
	defer release()

	var response *dto.AppointmentResponse
	err = u.store.Transaction(ctx, func(tx repository.Store) error {
		existing, err := tx.Appointments().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperror.NotFound(entity.KindAppointment, id)
		}

		resolver := converter.NewResolver(tx.Patients(), tx.Doctors())
		oldValue, err := resolver.AppointmentResponse(ctx, existing)
		if err != nil {
			return err
		}

		patient, doctor, err := resolveParents(ctx, tx, u.auditService, resolver, req.Patient, req.Doctor)
		if err != nil {
			return err
		}
		if err := converter.ApplyAppointmentRequest(existing, req, patient.ID, doctor.ID); err != nil {
			return err
		}
		if err := tx.Appointments().Update(ctx, existing); err != nil {
			return err
		}

		response = converter.AppointmentToResponse(existing, patient, doctor)
		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionAppointmentUpdate, entity.KindAppointment, id, oldValue, response)
	})
	if err != nil {
		u.log.Warnf("Failed to update appointment %d: %+v", id, err)
		return nil, err
	}

	return response, nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id int64) error {
	if err := requireID("id", id); err != nil {
		return err
	}

	err := u.store.Transaction(ctx, func(tx repository.Store) error {
		appointment, err := tx.Appointments().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if appointment == nil {
			return apperror.NotFound(entity.KindAppointment, id)
		}
		if _, err := tx.Appointments().Delete(ctx, id); err != nil {
			return err
		}
		return u.auditService.LogDelete(ctx, tx, entity.AuditActionAppointmentDelete, entity.KindAppointment, id, converter.AppointmentToResponse(appointment, nil, nil))
	})
	if err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", id, err)
		return err
	}

	return nil
}

func (u *appointmentUsecase) resolver() *converter.Resolver {
	return converter.NewResolver(u.store.Patients(), u.store.Doctors())
}

func (u *appointmentUsecase) toList(ctx context.Context, resolver *converter.Resolver, appointments []entity.Appointment) (*dto.AppointmentListResponse, error) {
	responses, err := resolver.AppointmentResponses(ctx, appointments)
	if err != nil {
		u.log.Warnf("Failed to resolve appointment owners: %+v", err)
		return nil, err
	}
	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}, nil
}
