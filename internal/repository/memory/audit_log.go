package memory

import (
	"context"

	"hospital-management/internal/domain/entity"
)

type auditLogRepository struct {
	s *Store
}

func (r *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	r.s.write(func(st *memoryState) {
		st.lastAuditLogID++
		log.ID = st.lastAuditLogID
		log.CreatedAt = r.s.nowFn()
		st.auditLogs[log.ID] = cloneAuditLog(*log)
	})
	return nil
}

func (r *auditLogRepository) FindAll(ctx context.Context) ([]entity.AuditLog, error) {
	return r.filter(func(entity.AuditLog) bool { return true }), nil
}

func (r *auditLogRepository) FindByID(ctx context.Context, id int64) (*entity.AuditLog, error) {
	var out *entity.AuditLog
	r.s.read(func(st *memoryState) {
		if l, ok := st.auditLogs[id]; ok {
			l = cloneAuditLog(l)
			out = &l
		}
	})
	return out, nil
}

func (r *auditLogRepository) FindByEntity(ctx context.Context, entityName string, entityID int64) ([]entity.AuditLog, error) {
	return r.filter(func(l entity.AuditLog) bool {
		return l.EntityName == entityName && l.EntityID == entityID
	}), nil
}

func (r *auditLogRepository) filter(keep func(entity.AuditLog) bool) []entity.AuditLog {
	var out []entity.AuditLog
	r.s.read(func(st *memoryState) {
		for _, id := range sortedIDs(st.auditLogs) {
			if l := st.auditLogs[id]; keep(l) {
				out = append(out, cloneAuditLog(l))
			}
		}
	})
	return out
}
