package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plateup/orderflow/internal/domain/model"
	"github.com/plateup/orderflow/internal/server/http/dto"
)

// OrderHandler manages order placement, reads, and lifecycle endpoints.
type OrderHandler struct {
	orders   OrderFacade
	workflow WorkflowFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(orders OrderFacade, workflow WorkflowFacade) *OrderHandler {
	return &OrderHandler{orders: orders, workflow: workflow}
}

// Place handles POST /api/orders.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	items := make([]model.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.OrderItem{Name: item.Name, Quantity: item.Quantity, Price: item.Price})
	}

	order, err := h.orders.PlaceOrder(c.Request.Context(), CurrentActor(c), req.RestaurantID, items, req.Address, req.PaymentMethod)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewOrderResponse(order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orders.Orders(c.Request.Context(), CurrentActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		response = append(response, dto.NewOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	orderID := pathID(c, "id")
	if orderID == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.orders.Order(c.Request.Context(), CurrentActor(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

// UpdateStatus handles PUT /api/orders/:id/status. A direct transition
// returns the mutated order; a staff actor outside their authority gets the
// queued request back with 202.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID := pathID(c, "id")
	if orderID == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.workflow.UpdateOrderStatus(c.Request.Context(), CurrentActor(c), orderID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	if result.Request != nil {
		c.JSON(http.StatusAccepted, dto.NewRequestResponse(result.Request))
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(result.Order))
}

// Cancel handles PUT /api/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	orderID := pathID(c, "id")
	if orderID == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.workflow.CancelOrder(c.Request.Context(), CurrentActor(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}
