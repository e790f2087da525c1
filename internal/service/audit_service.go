package service

import (
	"context"

	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// AuditService writes audit entries through the Store of the surrounding
// transaction, so an entry commits or rolls back with the change it records.
type AuditService interface {
	LogCreate(ctx context.Context, tx repository.Store, action string, entityName string, entityID int64, newValue interface{}) error
	LogUpdate(ctx context.Context, tx repository.Store, action string, entityName string, entityID int64, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, tx repository.Store, action string, entityName string, entityID int64, oldValue interface{}) error
}

type auditService struct {
	log *logrus.Logger
}

func NewAuditService(log *logrus.Logger) AuditService {
	return &auditService{log: log}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, tx repository.Store, action string, entityName string, entityID int64, newValue interface{}) error {
	return s.write(ctx, tx, action, entityName, entityID, nil, newValue)
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, tx repository.Store, action string, entityName string, entityID int64, oldValue, newValue interface{}) error {
	return s.write(ctx, tx, action, entityName, entityID, oldValue, newValue)
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, tx repository.Store, action string, entityName string, entityID int64, oldValue interface{}) error {
	return s.write(ctx, tx, action, entityName, entityID, oldValue, nil)
}

func (s *auditService) write(ctx context.Context, tx repository.Store, action string, entityName string, entityID int64, oldValue, newValue interface{}) error {
	auditLog := &entity.AuditLog{
		Action:     action,
		EntityName: entityName,
		EntityID:   entityID,
		Metadata: entity.JSON{
			"entity":    entityName,
			"entity_id": entityID,
			"old_value": oldValue,
			"new_value": newValue,
		},
	}

	if err := tx.AuditLogs().Create(ctx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
