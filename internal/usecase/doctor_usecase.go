package usecase

import (
	"context"
	"strings"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/apperror"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"
	"hospital-management/internal/service"

	"github.com/sirupsen/logrus"
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.DoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, id int64) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	GetDoctorsBySpecialty(ctx context.Context, specialty string) (*dto.DoctorListResponse, error)
	UpdateDoctor(ctx context.Context, id int64, req *dto.DoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, id int64) error
}

type doctorUsecase struct {
	store        repository.Store
	log          *logrus.Logger
	auditService service.AuditService
	keyLock      service.KeyLock
}

func NewDoctorUsecase(
	store repository.Store,
	log *logrus.Logger,
	auditService service.AuditService,
	keyLock service.KeyLock,
) DoctorUsecase {
	return &doctorUsecase{
		store:        store,
		log:          log,
		auditService: auditService,
		keyLock:      keyLock,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.DoctorRequest) (*dto.DoctorResponse, error) {
	if req == nil {
		return nil, apperror.InvalidArgument("doctor", "request is required")
	}
	doctor := converter.DoctorRequestToEntity(req)

	release, err := service.AcquireAll(ctx, u.keyLock, doctorLockKey(doctor))
	if err != nil {
		u.log.Warnf("Failed to acquire doctor lock: %+v", err)
		return nil, err
	}
	defer release()

	err = u.store.Transaction(ctx, func(tx repository.Store) error {
		return insertDoctor(ctx, tx, u.auditService, doctor)
	})
	if err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	u.log.Infof("Doctor %d created", doctor.ID)
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id int64) (*dto.DoctorResponse, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	doctor, err := u.store.Doctors().FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.NotFound(entity.KindDoctor, id)
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.store.Doctors().FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) GetDoctorsBySpecialty(ctx context.Context, specialty string) (*dto.DoctorListResponse, error) {
	if strings.TrimSpace(specialty) == "" {
		return nil, apperror.InvalidArgument("specialty", "is required")
	}

	doctors, err := u.store.Doctors().FindBySpecialty(ctx, specialty)
	if err != nil {
		u.log.Warnf("Failed to find doctors by specialty %q: %+v", specialty, err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, id int64, req *dto.DoctorRequest) (*dto.DoctorResponse, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, apperror.InvalidArgument("doctor", "request is required")
	}

	release, err := service.AcquireAll(ctx, u.keyLock, doctorLockKey(converter.DoctorRequestToEntity(req)))
	if err != nil {
		u.log.Warnf("Failed to acquire doctor lock: %+v", err)
		return nil, err
	}
	defer release()

	var doctor *entity.Doctor
	err = u.store.Transaction(ctx, func(tx repository.Store) error {
		existing, err := tx.Doctors().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperror.NotFound(entity.KindDoctor, id)
		}
		oldValue := converter.DoctorToResponse(existing)

		converter.ApplyDoctorRequest(existing, req)
		if err := validateDoctor(existing); err != nil {
			return err
		}
		if err := checkLicenseAvailable(ctx, tx, existing); err != nil {
			return err
		}
		if err := tx.Doctors().Update(ctx, existing); err != nil {
			return err
		}
		doctor = existing

		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionDoctorUpdate, entity.KindDoctor, id, oldValue, converter.DoctorToResponse(doctor))
	})
	if err != nil {
		u.log.Warnf("Failed to update doctor %d: %+v", id, err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

// DeleteDoctor refuses to remove a doctor that appointments still point at.
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, id int64) error {
	if err := requireID("id", id); err != nil {
		return err
	}

	err := u.store.Transaction(ctx, func(tx repository.Store) error {
		doctor, err := tx.Doctors().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if doctor == nil {
			return apperror.NotFound(entity.KindDoctor, id)
		}

		count, err := tx.Appointments().CountByDoctorID(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return apperror.ConflictWithReason("doctor", id, "is still referenced by appointments")
		}

		if _, err := tx.Doctors().Delete(ctx, id); err != nil {
			return err
		}

		return u.auditService.LogDelete(ctx, tx, entity.AuditActionDoctorDelete, entity.KindDoctor, id, converter.DoctorToResponse(doctor))
	})
	if err != nil {
		u.log.Warnf("Failed to delete doctor %d: %+v", id, err)
		return err
	}

	u.log.Infof("Doctor %d deleted", id)
	return nil
}
