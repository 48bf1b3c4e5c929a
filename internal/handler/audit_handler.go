package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/mattear/doclens-ai/internal/adapter/store"
	"github.com/mattear/doclens-ai/internal/domain"
)

// AuditHandler exposes the audit log.
type AuditHandler struct {
	store *store.PostgresStore
}

// NewAuditHandler creates a new audit handler.
func NewAuditHandler(pgStore *store.PostgresStore) *AuditHandler {
	return &AuditHandler{store: pgStore}
}

// Register sets up audit routes.
func (h *AuditHandler) Register(router fiber.Router) {
	router.Get("/audit", h.List)
}

// List returns recent audit records, optionally filtered by action.
func (h *AuditHandler) List(c fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "100"))
	if err != nil || limit <= 0 || limit > 1000 {
		limit = 100
	}

	logs, err := h.store.ListAuditLogs(c.Context(), limit, c.Query("action"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if logs == nil {
		logs = []domain.AuditLog{}
	}
	return c.JSON(fiber.Map{"audit_logs": logs})
}
