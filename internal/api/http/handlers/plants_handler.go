package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/rumman321/e-Commerce-server/internal/api/dto"
	"github.com/rumman321/e-Commerce-server/internal/auth"
	"github.com/rumman321/e-Commerce-server/internal/domain"
	"github.com/rumman321/e-Commerce-server/internal/service"
	apperrors "github.com/rumman321/e-Commerce-server/pkg/util"
)

// PlantsHandler exposes catalog endpoints.
type PlantsHandler struct {
	catalog *service.CatalogService
}

// NewPlantsHandler constructs handler.
func NewPlantsHandler(catalogService *service.CatalogService) *PlantsHandler {
	return &PlantsHandler{catalog: catalogService}
}

// Create handles POST /plants (session required).
func (h *PlantsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthorized access")
	}
	var req dto.CreatePlantRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	plant, err := h.catalog.CreatePlant(c.UserContext(), req.SellerName, principal.Email, service.PlantCreateInput{
		Name:        req.Name,
		Image:       req.Image,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewPlantResponse(plant)})
}

// List handles GET /plants (public).
func (h *PlantsHandler) List(c *fiber.Ctx) error {
	plants, err := h.catalog.ListPlants(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.PlantResponse, 0, len(plants))
	for i := range plants {
		items = append(items, dto.NewPlantResponse(&plants[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get handles GET /plants/:id (public).
func (h *PlantsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return err
	}
	plant, err := h.catalog.GetPlant(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPlantResponse(plant)})
}

// AdjustQuantity handles PATCH /plants/quantity/:id (session required).
func (h *PlantsHandler) AdjustQuantity(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthorized access")
	}
	id, err := parseID(c.Params("id"))
	if err != nil {
		return err
	}
	var req dto.AdjustQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	direction := domain.AdjustDecrease
	if req.Status == string(domain.AdjustIncrease) {
		direction = domain.AdjustIncrease
	}
	if err := h.catalog.AdjustQuantity(c.UserContext(), principal.Email, id, req.QuantityToUpdate, direction); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

func parseID(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", apperrors.NewValidationError("invalid id", map[string]any{"id": raw})
	}
	return id.String(), nil
}
