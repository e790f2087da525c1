package usecase

import (
	"context"
	"time"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/apperror"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"
	"hospital-management/internal/service"

	"github.com/sirupsen/logrus"
)

type BillUsecase interface {
	CreateBill(ctx context.Context, req *dto.BillRequest) (*dto.BillResponse, error)
	GetBill(ctx context.Context, id int64) (*dto.BillResponse, error)
	GetAllBills(ctx context.Context) (*dto.BillListResponse, error)
	GetBillsByPatient(ctx context.Context, patientID int64) (*dto.BillListResponse, error)
	GetBillsByStatus(ctx context.Context, status string) (*dto.BillListResponse, error)
	UpdateBill(ctx context.Context, id int64, req *dto.BillRequest) (*dto.BillResponse, error)
	DeleteBill(ctx context.Context, id int64) error
}

type billUsecase struct {
	store        repository.Store
	log          *logrus.Logger
	auditService service.AuditService
	keyLock      service.KeyLock
	now          func() time.Time
}

func NewBillUsecase(
	store repository.Store,
	log *logrus.Logger,
	auditService service.AuditService,
	keyLock service.KeyLock,
) BillUsecase {
	return &billUsecase{
		store:        store,
		log:          log,
		auditService: auditService,
		keyLock:      keyLock,
		now:          time.Now,
	}
}

func (u *billUsecase) CreateBill(ctx context.Context, req *dto.BillRequest) (*dto.BillResponse, error) {
	if req == nil {
		return nil, apperror.InvalidArgument("bill", "request is required")
	}
	bill := &entity.Bill{}
	if err := converter.ApplyBillRequest(bill, req, 0, u.now()); err != nil {
		return nil, err
	}

	release, err := service.AcquireAll(ctx, u.keyLock, patientRefLockKey(req.Patient))
	if err != nil {
		u.log.Warnf("Failed to acquire bill locks: %+v", err)
		return nil, err
	}
	defer release()

	var response *dto.BillResponse
	err = u.store.Transaction(ctx, func(tx repository.Store) error {
		resolver := converter.NewResolver(tx.Patients(), tx.Doctors())
		patient, err := resolvePatient(ctx, tx, u.auditService, resolver, req.Patient)
		if err != nil {
			return err
		}

		bill.PatientID = patient.ID
		if err := tx.Bills().Create(ctx, bill); err != nil {
			return err
		}

		response = converter.BillToResponse(bill, patient)
		return u.auditService.LogCreate(ctx, tx, entity.AuditActionBillCreate, entity.KindBill, bill.ID, response)
	})
	if err != nil {
		u.log.Warnf("Failed to create bill: %+v", err)
		return nil, err
	}

	u.log.Infof("Bill %d created for patient %d", bill.ID, bill.PatientID)
	return response, nil
}

func (u *billUsecase) GetBill(ctx context.Context, id int64) (*dto.BillResponse, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	bill, err := u.store.Bills().FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find bill: %+v", err)
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NotFound(entity.KindBill, id)
	}

	return u.resolver().BillResponse(ctx, bill)
}

func (u *billUsecase) GetAllBills(ctx context.Context) (*dto.BillListResponse, error) {
	bills, err := u.store.Bills().FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all bills: %+v", err)
		return nil, err
	}
	return u.toList(ctx, u.resolver(), bills)
}

func (u *billUsecase) GetBillsByPatient(ctx context.Context, patientID int64) (*dto.BillListResponse, error) {
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

	bills, err := u.store.Bills().FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find bills for patient %d: %+v", patientID, err)
		return nil, err
	}
	return u.toList(ctx, resolver, bills)
}

// GetBillsByStatus matches the status exactly; unknown values give an empty list.
func (u *billUsecase) GetBillsByStatus(ctx context.Context, status string) (*dto.BillListResponse, error) {
	if status == "" {
		return nil, apperror.InvalidArgument("status", "is required")
	}

	bills, err := u.store.Bills().FindByStatus(ctx, entity.BillStatus(status))
	if err != nil {
		u.log.Warnf("Failed to find bills with status %q: %+v", status, err)
		return nil, err
	}
	return u.toList(ctx, u.resolver(), bills)
}

// UpdateBill replaces every field. Marking a bill PAID does not require a
// payment date.
func (u *billUsecase) UpdateBill(ctx context.Context, id int64, req *dto.BillRequest) (*dto.BillResponse, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, apperror.InvalidArgument("bill", "request is required")
	}
	now := u.now()
	if err := converter.ApplyBillRequest(&entity.Bill{}, req, 0, now); err != nil {
		return nil, err
	}

	release, err := service.AcquireAll(ctx, u.keyLock, patientRefLockKey(req.Patient))
	if err != nil {
		u.log.Warnf("Failed to acquire bill locks: %+v", err)
		return nil, err
	}
	defer release()

	var response *dto.BillResponse
	err = u.store.Transaction(ctx, func(tx repository.Store) error {
		existing, err := tx.Bills().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperror.NotFound(entity.KindBill, id)
		}

		resolver := converter.NewResolver(tx.Patients(), tx.Doctors())
		oldValue, err := resolver.BillResponse(ctx, existing)
		if err != nil {
			return err
		}

		patient, err := resolvePatient(ctx, tx, u.auditService, resolver, req.Patient)
		if err != nil {
			return err
		}
		if err := converter.ApplyBillRequest(existing, req, patient.ID, now); err != nil {
			return err
		}
		if err := tx.Bills().Update(ctx, existing); err != nil {
			return err
		}

		response = converter.BillToResponse(existing, patient)
		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionBillUpdate, entity.KindBill, id, oldValue, response)
	})
	if err != nil {
		u.log.Warnf("Failed to update bill %d: %+v", id, err)
		return nil, err
	}

	return response, nil
}

func (u *billUsecase) DeleteBill(ctx context.Context, id int64) error {
	if err := requireID("id", id); err != nil {
		return err
	}

	err := u.store.Transaction(ctx, func(tx repository.Store) error {
		bill, err := tx.Bills().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if bill == nil {
			return apperror.NotFound(entity.KindBill, id)
		}
		if _, err := tx.Bills().Delete(ctx, id); err != nil {
			return err
		}
		return u.auditService.LogDelete(ctx, tx, entity.AuditActionBillDelete, entity.KindBill, id, converter.BillToResponse(bill, nil))
	})
	if err != nil {
		u.log.Warnf("Failed to delete bill %d: %+v", id, err)
		return err
	}

	return nil
}

func (u *billUsecase) resolver() *converter.Resolver {
	return converter.NewResolver(u.store.Patients(), u.store.Doctors())
}

func (u *billUsecase) toList(ctx context.Context, resolver *converter.Resolver, bills []entity.Bill) (*dto.BillListResponse, error) {
	responses, err := resolver.BillResponses(ctx, bills)
	if err != nil {
		u.log.Warnf("Failed to resolve bill owners: %+v", err)
		return nil, err
	}
	return &dto.BillListResponse{
		Bills: responses,
		Total: len(responses),
	}, nil
}
