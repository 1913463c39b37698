package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rumman321/e-Commerce-server/internal/api/dto"
	"github.com/rumman321/e-Commerce-server/internal/auth"
	"github.com/rumman321/e-Commerce-server/internal/service"
	apperrors "github.com/rumman321/e-Commerce-server/pkg/util"
)

// OrdersHandler exposes order lifecycle endpoints.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orderService}
}

// Create handles POST /order (session required). The customer identity on the
// order is the session email, regardless of the payload.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthorized access")
	}
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	plantID, err := parseID(req.PlantID)
	if err != nil {
		return err
	}

	order, err := h.orders.PlaceOrder(c.UserContext(), principal.Email, service.OrderCreateInput{
		CustomerName:  req.Customer.Name,
		CustomerImage: req.Customer.Image,
		PlantID:       plantID,
		Quantity:      req.Quantity,
		Price:         req.Price,
		Phone:         req.Phone,
		Address:       req.Address,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewOrderResponse(order)})
}

// ListForCustomer handles GET /customer-orders/:email (session required).
func (h *OrdersHandler) ListForCustomer(c *fiber.Ctx) error {
	if _, ok := auth.PrincipalFromContext(c); !ok {
		return apperrors.NewUnauthorized("unauthorized access")
	}
	orders, err := h.orders.ListCustomerOrders(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	items := make([]dto.CustomerOrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, dto.NewCustomerOrderResponse(&orders[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Cancel handles DELETE /order/:id (session required). Delivered orders are
// immutable and cannot be cancelled.
func (h *OrdersHandler) Cancel(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthorized access")
	}
	id, err := parseID(c.Params("id"))
	if err != nil {
		return err
	}
	if err := h.orders.CancelOrder(c.UserContext(), principal.Email, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}
