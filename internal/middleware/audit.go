package middleware

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/mattear/doclens-ai/internal/domain"
)

// AuditWriter defines how audit records are persisted.
type AuditWriter interface {
	WriteAudit(action, resource, resourceID, details, ip, userAgent string) error
}

// AuditMiddleware records every mutating request (method, path, status,
// latency) to the audit log. Reads are not audited.
func AuditMiddleware(writer AuditWriter) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		if c.Method() == fiber.MethodGet {
			return err
		}

		details, _ := json.Marshal(map[string]any{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     c.Response().StatusCode(),
			"latency_ms": time.Since(start).Milliseconds(),
		})

		if werr := writer.WriteAudit(
			auditAction(c.Method(), c.Path()), c.Path(), c.Params("id"),
			string(details), c.IP(), string(c.Request().Header.UserAgent()),
		); werr != nil {
			slog.Error("audit write failed", "error", werr)
		}

		return err
	}
}

// auditAction names the mutating operation behind a request.
func auditAction(method, path string) string {
	path = strings.TrimSuffix(path, "/")
	switch {
	case strings.HasSuffix(path, "/summarize"),
		strings.HasSuffix(path, "/analyze"),
		strings.HasSuffix(path, "/tags"):
		return domain.AuditActionEnrichment
	case strings.HasSuffix(path, "/clusters/run"):
		return domain.AuditActionClusterRun
	case method == fiber.MethodDelete && strings.Contains(path, "/documents/"):
		return domain.AuditActionDocumentDelete
	case method == fiber.MethodPost && strings.HasSuffix(path, "/documents"):
		return domain.AuditActionDocumentCreate
	}
	return "http_request"
}
