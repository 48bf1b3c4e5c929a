package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/mattear/doclens-ai/internal/domain"
	"github.com/mattear/doclens-ai/internal/port"
	"github.com/mattear/doclens-ai/internal/service"
)

// DocumentHandler handles document CRUD and related-document lookups.
type DocumentHandler struct {
	store          port.DocumentStore
	clusterService *service.ClusterService
}

// NewDocumentHandler creates a new document handler.
func NewDocumentHandler(store port.DocumentStore, clusterService *service.ClusterService) *DocumentHandler {
	return &DocumentHandler{store: store, clusterService: clusterService}
}

// Register sets up document routes.
func (h *DocumentHandler) Register(router fiber.Router) {
	docs := router.Group("/documents")
	docs.Post("/", h.Create)
	docs.Get("/", h.List)
	docs.Get("/:id", h.Get)
	docs.Delete("/:id", h.Delete)
	docs.Get("/:id/related", h.Related)
}

// Create stores a new document.
func (h *DocumentHandler) Create(c fiber.Ctx) error {
	var body struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if body.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "content is required"})
	}

	doc, err := h.store.CreateDocument(c.Context(), &domain.Document{Title: body.Title, Content: body.Content})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// List returns the full corpus in row order.
func (h *DocumentHandler) List(c fiber.Ctx) error {
	docs, err := h.store.ListDocuments(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	return c.JSON(fiber.Map{"documents": docs})
}

// Get returns a single document.
func (h *DocumentHandler) Get(c fiber.Ctx) error {
	doc, err := h.store.GetDocumentByID(c.Context(), c.Params("id"))
	if errors.Is(err, port.ErrDocumentNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "document not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(doc)
}

// Delete removes a document.
func (h *DocumentHandler) Delete(c fiber.Ctx) error {
	err := h.store.DeleteDocument(c.Context(), c.Params("id"))
	if errors.Is(err, port.ErrDocumentNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "document not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Related returns the other members of the document's cluster with their
// similarity scores, from the last persisted clustering run.
func (h *DocumentHandler) Related(c fiber.Ctx) error {
	if _, err := h.store.GetDocumentByID(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, port.ErrDocumentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "document not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	related, err := h.clusterService.Related(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"related": related})
}
