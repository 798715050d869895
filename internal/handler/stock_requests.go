package handler

import (
	"context"
	"net/http"

	"tindahan/internal/apierror"
	"tindahan/internal/dto"
	"tindahan/internal/middleware"
	"tindahan/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StockRequestsHandler struct{ svc service.StockRequestService }

func NewStockRequestsHandler(svc service.StockRequestService) *StockRequestsHandler {
	return &StockRequestsHandler{svc: svc}
}

// Submit POST /v1/stock-requests
func (h *StockRequestsHandler) Submit(c *gin.Context) {
	var req dto.SubmitStockRequestRequest
	if !bindAndValidate(c, &req) {
		return
	}
	// Default the requester to the authenticated user when not provided.
	if req.RequestedBy == nil {
		claims := middleware.GetClaims(c)
		if claims != nil && claims.Name != "" {
			req.RequestedBy = &claims.Name
		}
	}
	resp, err := h.svc.Submit(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List GET /v1/stock-requests?status=
func (h *StockRequestsHandler) List(c *gin.Context) {
	var filter dto.StockRequestFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid query: "+err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Approve PATCH /v1/stock-requests/:id/approve
func (h *StockRequestsHandler) Approve(c *gin.Context) {
	h.transition(c, h.svc.Approve)
}

// Reject PATCH /v1/stock-requests/:id/reject
func (h *StockRequestsHandler) Reject(c *gin.Context) {
	h.transition(c, h.svc.Reject)
}

func (h *StockRequestsHandler) transition(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*dto.StockRequestResponse, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	resp, svcErr := fn(c.Request.Context(), id)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}
