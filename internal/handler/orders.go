package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"tindahan/internal/apierror"
	"tindahan/internal/dto"
	"tindahan/internal/middleware"
	"tindahan/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrdersHandler struct {
	svc                service.OrderService
	receiptStoragePath string
}

func NewOrdersHandler(svc service.OrderService, receiptStoragePath string) *OrdersHandler {
	return &OrdersHandler{svc: svc, receiptStoragePath: receiptStoragePath}
}

// Record POST /v1/orders
// The acting user comes from the JWT claims, never the request body.
func (h *OrdersHandler) Record(c *gin.Context) {
	var req dto.RecordOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}

	claims := middleware.GetClaims(c)
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Malformed token"))
		return
	}

	resp, svcErr := h.svc.Record(c.Request.Context(), userID, claims.Name, req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List GET /v1/orders?date=&status=&page=&limit=
func (h *OrdersHandler) List(c *gin.Context) {
	var filter dto.OrderFilter
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

// GetByID GET /v1/orders/:id
func (h *OrdersHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	resp, svcErr := h.svc.GetByID(c.Request.Context(), id)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DownloadReceipt GET /v1/orders/:id/receipt
// Serves the PDF generated by the receipt worker; 404 until the async job
// has run.
func (h *OrdersHandler) DownloadReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	order, svcErr := h.svc.GetByID(c.Request.Context(), id)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}

	path := filepath.Join(h.receiptStoragePath, "receipt_"+order.OrderNumber+".pdf")
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Receipt not generated yet"))
		return
	}
	c.FileAttachment(path, "receipt_"+order.OrderNumber+".pdf")
}
