package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/mattear/doclens-ai/internal/port"
	"github.com/mattear/doclens-ai/internal/service"
)

// EnrichHandler exposes LLM-backed document enrichment.
type EnrichHandler struct {
	enrichService *service.EnrichService
}

// NewEnrichHandler creates a new enrichment handler.
func NewEnrichHandler(enrichService *service.EnrichService) *EnrichHandler {
	return &EnrichHandler{enrichService: enrichService}
}

// Register sets up enrichment routes.
func (h *EnrichHandler) Register(router fiber.Router) {
	docs := router.Group("/documents")
	docs.Post("/:id/summarize", h.run("summarize"))
	docs.Post("/:id/analyze", h.run("analyze"))
	docs.Post("/:id/tags", h.run("tags"))
}

func (h *EnrichHandler) run(strategy string) fiber.Handler {
	return func(c fiber.Ctx) error {
		result, err := h.enrichService.Enrich(c.Context(), c.Params("id"), strategy)
		if errors.Is(err, port.ErrDocumentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "document not found"})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		c.Set("Content-Type", "application/json")
		return c.Send(result)
	}
}
