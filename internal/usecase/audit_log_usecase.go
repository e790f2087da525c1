package usecase

import (
	"context"
	"strings"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/apperror"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type AuditLogUsecase interface {
	GetAllAuditLogs(ctx context.Context) (*dto.AuditLogListResponse, error)
	GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
	GetEntityHistory(ctx context.Context, entityName string, entityID int64) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	store repository.Store
	log   *logrus.Logger
}

func NewAuditLogUsecase(store repository.Store, log *logrus.Logger) AuditLogUsecase {
	return &auditLogUsecase{
		store: store,
		log:   log,
	}
}

func (u *auditLogUsecase) GetAllAuditLogs(ctx context.Context) (*dto.AuditLogListResponse, error) {
	logs, err := u.store.AuditLogs().FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	auditLog, err := u.store.AuditLogs().FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find audit log: %+v", err)
		return nil, err
	}
	if auditLog == nil {
		return nil, apperror.NotFound(entity.KindAuditLog, id)
	}

	return converter.AuditLogToResponse(auditLog), nil
}

// GetEntityHistory accepts the entity name in any case, e.g. "doctor" or "Doctor".
func (u *auditLogUsecase) GetEntityHistory(ctx context.Context, entityName string, entityID int64) (*dto.AuditLogListResponse, error) {
	kind, ok := canonicalKind(entityName)
	if !ok {
		return nil, apperror.InvalidArgument("entity", "must be one of doctor, patient, appointment, bill")
	}
	if err := requireID("entityId", entityID); err != nil {
		return nil, err
	}

	logs, err := u.store.AuditLogs().FindByEntity(ctx, kind, entityID)
	if err != nil {
		u.log.Warnf("Failed to find audit logs for %s %d: %+v", kind, entityID, err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}

func canonicalKind(name string) (string, bool) {
	for _, kind := range []string{entity.KindDoctor, entity.KindPatient, entity.KindAppointment, entity.KindBill} {
		if strings.EqualFold(name, kind) {
			return kind, true
		}
	}
	return "", false
}
