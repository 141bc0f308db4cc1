package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plateup/orderflow/internal/server/http/dto"
)

// RequestHandler manages the status-change request queue endpoints.
type RequestHandler struct {
	workflow WorkflowFacade
}

// NewRequestHandler constructs RequestHandler.
func NewRequestHandler(workflow WorkflowFacade) *RequestHandler {
	return &RequestHandler{workflow: workflow}
}

// Submit handles POST /api/orders/:id/status-requests.
func (h *RequestHandler) Submit(c *gin.Context) {
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

	request, err := h.workflow.SubmitStatusRequest(c.Request.Context(), CurrentActor(c), orderID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewRequestResponse(request))
}

// List handles GET /api/requests.
func (h *RequestHandler) List(c *gin.Context) {
	requests, err := h.workflow.PendingStatusRequests(c.Request.Context(), CurrentActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if len(requests) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.RequestResponse, 0, len(requests))
	for i := range requests {
		response = append(response, dto.NewRequestResponse(&requests[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Approve handles PUT /api/requests/:id/approve. The approved transition is
// applied to the order, which is returned.
func (h *RequestHandler) Approve(c *gin.Context) {
	requestID := pathID(c, "id")
	if requestID == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.workflow.ApproveStatusRequest(c.Request.Context(), CurrentActor(c), requestID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

// Reject handles PUT /api/requests/:id/reject. The order is untouched.
func (h *RequestHandler) Reject(c *gin.Context) {
	requestID := pathID(c, "id")
	if requestID == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	request, err := h.workflow.RejectStatusRequest(c.Request.Context(), CurrentActor(c), requestID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRequestResponse(request))
}
