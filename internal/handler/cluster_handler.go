package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/mattear/doclens-ai/internal/cluster"
	"github.com/mattear/doclens-ai/internal/service"
)

// ClusterHandler exposes clustering runs and the persisted cluster set.
type ClusterHandler struct {
	clusterService *service.ClusterService
	defaultMethod  string
	defaultMax     int
}

// NewClusterHandler creates a new cluster handler.
func NewClusterHandler(clusterService *service.ClusterService, defaultMethod string, defaultMax int) *ClusterHandler {
	return &ClusterHandler{clusterService: clusterService, defaultMethod: defaultMethod, defaultMax: defaultMax}
}

// Register sets up cluster routes.
func (h *ClusterHandler) Register(router fiber.Router) {
	clusters := router.Group("/clusters")
	clusters.Post("/run", h.Run)
	clusters.Get("/", h.Latest)
}

// Run executes a clustering run over the stored corpus.
func (h *ClusterHandler) Run(c fiber.Ctx) error {
	body := struct {
		Method      string `json:"method"`
		MaxClusters int    `json:"max_clusters"`
	}{Method: h.defaultMethod, MaxClusters: h.defaultMax}

	if len(c.Body()) > 0 {
		if err := c.Bind().JSON(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
	}
	if body.Method == "" {
		body.Method = h.defaultMethod
	}
	if body.MaxClusters <= 0 {
		body.MaxClusters = h.defaultMax
	}
	if _, err := cluster.ParseMethod(body.Method); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	set, err := h.clusterService.Run(c.Context(), body.Method, body.MaxClusters)
	if err != nil {
		var inputErr *cluster.InputError
		var configErr *cluster.ConfigError
		switch {
		case errors.As(err, &inputErr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.As(err, &configErr):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return c.JSON(set)
}

// Latest returns the most recently persisted cluster set.
func (h *ClusterHandler) Latest(c fiber.Ctx) error {
	set, err := h.clusterService.Latest(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(set)
}
