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
	errInvalidCyclePayload  = pkg.NewDomainErrorSimple("INVALID_CYCLE_INPUT", "Invalid cycle payload", http.StatusBadRequest)
	errInvalidResyncPayload = pkg.NewDomainErrorSimple("INVALID_RESYNC_INPUT", "Invalid resync payload", http.StatusBadRequest)
)

// CycleHandler handles the admin campaign endpoints and the public
// current-cycle snapshot.

type CycleHandler struct {
	cycles  usecase.ICycleUseCase
	volumes usecase.IVolumeUseCase
}

func NewCycleHandler(cycles usecase.ICycleUseCase, volumes usecase.IVolumeUseCase) *CycleHandler {
	return &CycleHandler{cycles: cycles, volumes: volumes}
}

// GetCurrentCycle godoc
// @Summary  Current campaign snapshot for the order form
// @Tags     cycles
// @Success  200 {object} response.CycleResponse
// @Router   /cycles/current [get]
func (h *CycleHandler) GetCurrentCycle(c *gin.Context) {
	cycle, err := h.cycles.Current(c.Request.Context())
	if err != nil {
		appErr := mapCycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSalesCycle(cycle))
}

// CreateCycle godoc
// @Summary  Open a new campaign and bootstrap its volume ledger
// @Tags     cycles
// @Success  201 {object} response.CycleResponse
// @Router   /cycles [post]
func (h *CycleHandler) CreateCycle(c *gin.Context) {
	var payload request.CreateCycleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCyclePayload.HTTPStatus, errInvalidCyclePayload.ToHTTPError())
		return
	}

	input, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidCyclePayload.HTTPStatus, errInvalidCyclePayload.ToHTTPError())
		return
	}

	cycle, err := h.cycles.Create(c.Request.Context(), input)
	if err != nil {
		appErr := mapCycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSalesCycle(cycle))
}

// ResyncQuantities godoc
// @Summary  Merge re-imported offered quantities into the volume ledger
// @Tags     cycles
// @Success  204
// @Router   /cycles/current/resync [post]
func (h *CycleHandler) ResyncQuantities(c *gin.Context) {
	var payload request.ResyncRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidResyncPayload.HTTPStatus, errInvalidResyncPayload.ToHTTPError())
		return
	}

	quantities := payload.ResolveQuantities()
	if len(quantities) == 0 {
		c.JSON(errInvalidResyncPayload.HTTPStatus, errInvalidResyncPayload.ToHTTPError())
		return
	}

	if err := h.cycles.ResyncQuantities(c.Request.Context(), quantities); err != nil {
		appErr := mapCycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// GetOrderVolumes godoc
// @Summary  Remaining-stock view of the current cycle's ledger
// @Tags     cycles
// @Success  200 {object} response.VolumesResponse
// @Router   /cycles/current/volumes [get]
func (h *CycleHandler) GetOrderVolumes(c *gin.Context) {
	ledger, err := h.volumes.GetOrderVolumes(c.Request.Context())
	if err != nil {
		appErr := mapCycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVolumeLedger(ledger))
}

func mapCycleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyCatalog), errors.Is(err, usecase.ErrEmptyCustomers), errors.Is(err, usecase.ErrInvalidDates):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCycleNotFound):
		return pkg.NewDomainErrorSimple("CYCLE_NOT_FOUND", "No active sales cycle", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLedgerNotFound):
		return pkg.NewDomainError("LEDGER_NOT_FOUND", "Volume ledger missing for the current cycle", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
