package handlers

import (
	"errors"
	"net/http"

	request "foodcoop_orders/internal/adapter/http/dto/request"
	response "foodcoop_orders/internal/adapter/http/dto/response"
	"foodcoop_orders/internal/usecase"
	"foodcoop_orders/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler handles the customer-facing order endpoints: draft upserts,
// order retrieval, and the confirmation step.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// SaveDraft godoc
// @Summary  Save the customer's draft order
// @Tags     orders
// @Param    slug path string true "customer slug"
// @Success  200 {object} response.OrderResponse
// @Router   /orders/{slug} [put]
func (h *OrderHandler) SaveDraft(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	slug := c.Param("slug")
	order, err := h.usecase.SaveDraft(c.Request.Context(), slug, payload.ToOrder(slug))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// GetOrder godoc
// @Summary  Fetch the customer's order for the current cycle
// @Tags     orders
// @Param    slug path string true "customer slug"
// @Success  200 {object} response.OrderResponse
// @Router   /orders/{slug} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ConfirmOrder godoc
// @Summary  Confirm the customer's draft order, reserving pooled stock
// @Tags     orders
// @Param    slug path string true "customer slug"
// @Success  200 {object} response.OrderResponse
// @Failure  409 {object} response.OutOfStockResponse
// @Router   /orders/{slug}/confirm [post]
func (h *OrderHandler) ConfirmOrder(c *gin.Context) {
	order, err := h.usecase.Confirm(c.Request.Context(), c.Param("slug"))
	if err != nil {
		var oos *usecase.OutOfStockError
		if errors.As(err, &oos) {
			c.JSON(http.StatusConflict, response.FromOutOfStock(oos))
			return
		}
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerSlug), errors.Is(err, usecase.ErrInvalidOrderQuantities):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownCustomer):
		return pkg.NewDomainErrorSimple("UNKNOWN_CUSTOMER", "Customer does not belong to the current cycle", http.StatusForbidden)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadyConfirmed):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_CONFIRMED", "Order was already confirmed", http.StatusConflict)
	case errors.Is(err, usecase.ErrCycleNotFound):
		return pkg.NewDomainErrorSimple("CYCLE_NOT_FOUND", "No active sales cycle", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLedgerNotFound):
		return pkg.NewDomainError("LEDGER_NOT_FOUND", "Volume ledger missing for the current cycle", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
