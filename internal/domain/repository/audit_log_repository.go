package repository

import (
	"context"

	"hospital-management/internal/domain/entity"
)

type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	FindAll(ctx context.Context) ([]entity.AuditLog, error)
	FindByID(ctx context.Context, id int64) (*entity.AuditLog, error)
	FindByEntity(ctx context.Context, entityName string, entityID int64) ([]entity.AuditLog, error)
}
