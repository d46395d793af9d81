package order

import (
	"retail-storage/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for orders.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, l *zap.Logger) *Handler {
	return &Handler{service: service, logger: l}
}

// RegisterRoutes registers the order routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/orders")
	group.Post("/", h.HandleCreate)
	group.Get("/", h.HandleList)
	group.Post("/queue/process", h.HandleProcessQueue)
}

// HandleCreate submits a new order.
// @Summary Create Order
// @Description Persists a new order and notifies the transaction queue for payment processing.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body Input true "Order input"
// @Success 201 {object} map[string]string "Created order id"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Creation failed"
// @Router /orders [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var in Input
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order payload"})
	}
	if !in.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order input"})
	}

	orderID, ok := h.service.Submit(c.Context(), in)
	if !ok {
		l.Error("Order creation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create order"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"order_id": orderID})
}

// HandleList returns all orders.
// @Summary List Orders
// @Description Returns the full order snapshot from the record store.
// @Tags orders
// @Produce json
// @Success 200 {array} models.OrderRecord "Orders"
// @Router /orders [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	orders := h.service.Orders(c.Context())
	return c.JSON(orders)
}

// HandleProcessQueue drains pending transaction messages.
// @Summary Process Transaction Queue
// @Description Receives up to max pending transaction messages. Messages are removed on receipt.
// @Tags orders
// @Produce json
// @Param max query int false "Maximum messages to receive" default(5)
// @Success 200 {object} map[string]interface{} "Received messages"
// @Router /orders/queue/process [post]
func (h *Handler) HandleProcessQueue(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	max := c.QueryInt("max", DefaultReceiveBatch)
	messages := h.service.ProcessPending(c.Context(), max)

	l.Info("Transaction queue drained", zap.Int("count", len(messages)))
	return c.JSON(fiber.Map{
		"count":    len(messages),
		"messages": messages,
	})
}
