package handler

import (
	"net/http"

	"hospital-management/internal/usecase"
	"hospital-management/pkg/response"

	"github.com/gorilla/mux"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	auditLogID, err := parseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid audit log ID")
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), auditLogID)
	if err != nil {
		writeError(w, err, "Failed to get audit log")
		return
	}

	response.OK(w, "Audit log retrieved successfully", auditLog)
}

func (h *AuditLogHandler) GetAllAuditLogs(w http.ResponseWriter, r *http.Request) {
	auditLogs, err := h.auditLogUsecase.GetAllAuditLogs(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get audit logs")
		return
	}

	response.OK(w, "Audit logs retrieved successfully", auditLogs)
}

func (h *AuditLogHandler) GetEntityHistory(w http.ResponseWriter, r *http.Request) {
	entityID, err := parseID(r, "entityId")
	if err != nil {
		response.BadRequest(w, "Invalid entity ID")
		return
	}

	auditLogs, err := h.auditLogUsecase.GetEntityHistory(r.Context(), mux.Vars(r)["entity"], entityID)
	if err != nil {
		writeError(w, err, "Failed to get audit logs")
		return
	}

	response.OK(w, "Audit logs retrieved successfully", auditLogs)
}
