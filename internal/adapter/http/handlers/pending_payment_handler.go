package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/vixinox/ecommerce-application-sub000/internal/adapter/http/dto/request"
	"github.com/vixinox/ecommerce-application-sub000/internal/adapter/http/dto/response"
	"github.com/vixinox/ecommerce-application-sub000/internal/adapter/http/validation"
	"github.com/vixinox/ecommerce-application-sub000/internal/usecase"
	"github.com/vixinox/ecommerce-application-sub000/pkg"
)

// PendingPaymentHandler exposes the coordinator to the UI surfaces over JSON.

type PendingPaymentHandler struct {
	coordinator usecase.IPendingPaymentCoordinator
	validate    *validatorv10.Validate
}

func NewPendingPaymentHandler(coordinator usecase.IPendingPaymentCoordinator) *PendingPaymentHandler {
	return &PendingPaymentHandler{coordinator: coordinator, validate: validation.New()}
}

// GetState returns the full coordinator snapshot: working set with countdown
// fields, selection tallies, loading flag, intent and execution phase.
func (h *PendingPaymentHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSnapshot(h.coordinator.Snapshot()))
}

// Refresh re-fetches the working set from the backend.
func (h *PendingPaymentHandler) Refresh(c *gin.Context) {
	log.Printf("[pending][handler] refresh start")
	if err := h.coordinator.FetchPendingOrders(c.Request.Context()); err != nil {
		log.Printf("[pending][handler] refresh failed err=%v", err)
		appErr := mapPendingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(h.coordinator.Snapshot()))
}

// ToggleSelection flips the selection flag of one order. Toggles on expired
// or unknown orders are silent no-ops; the returned snapshot is the truth.
func (h *PendingPaymentHandler) ToggleSelection(c *gin.Context) {
	var req request.ToggleSelectionRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}
	h.coordinator.ToggleOrderSelection(req.OrderID)
	c.JSON(http.StatusOK, response.FromSnapshot(h.coordinator.Snapshot()))
}

// ToggleAll applies one selection state to every selectable order.
func (h *PendingPaymentHandler) ToggleAll(c *gin.Context) {
	var req request.ToggleAllRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}
	h.coordinator.ToggleSelectAll(*req.SelectAll)
	c.JSON(http.StatusOK, response.FromSnapshot(h.coordinator.Snapshot()))
}

// PrepareIntent snapshots the selection into a payment intent. An empty
// selection is informational, not an error; a second preparation while an
// intent is active is a conflict.
func (h *PendingPaymentHandler) PrepareIntent(c *gin.Context) {
	log.Printf("[pending][handler] prepare start")
	intent, err := h.coordinator.PreparePayment()
	if err != nil {
		if errors.Is(err, usecase.ErrEmptySelection) {
			c.JSON(http.StatusOK, gin.H{"message": "select at least one order to pay"})
			return
		}
		log.Printf("[pending][handler] prepare failed err=%v", err)
		appErr := mapPendingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[pending][handler] prepare success tx=%s orders=%d", intent.TransactionID, len(intent.OrderIDs))
	c.JSON(http.StatusCreated, response.FromPaymentIntent(intent))
}

// ConfirmIntent submits the prepared intent to the backend.
func (h *PendingPaymentHandler) ConfirmIntent(c *gin.Context) {
	log.Printf("[pending][handler] confirm start")
	if err := h.coordinator.ConfirmPayment(c.Request.Context()); err != nil {
		log.Printf("[pending][handler] confirm failed err=%v", err)
		appErr := mapPendingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[pending][handler] confirm success")
	c.JSON(http.StatusOK, response.FromSnapshot(h.coordinator.Snapshot()))
}

// ClearIntent drops the intent and resets every selection. Idempotent.
func (h *PendingPaymentHandler) ClearIntent(c *gin.Context) {
	h.coordinator.ClearPaymentIntent()
	c.JSON(http.StatusOK, response.FromSnapshot(h.coordinator.Snapshot()))
}

// CancelOrder cancels one pending order outside the active intent.
func (h *PendingPaymentHandler) CancelOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil || orderID <= 0 {
		appErr := pkg.NewDomainErrorSimple("INVALID_ORDER_ID", "Invalid order id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[pending][handler] cancel start order_id=%d", orderID)
	if err := h.coordinator.CancelOrder(c.Request.Context(), orderID); err != nil {
		log.Printf("[pending][handler] cancel failed order_id=%d err=%v", orderID, err)
		appErr := mapPendingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[pending][handler] cancel success order_id=%d", orderID)
	c.JSON(http.StatusOK, response.FromSnapshot(h.coordinator.Snapshot()))
}

func mapPendingPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoSession):
		return pkg.NewDomainErrorSimple("NO_SESSION", "No active session", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrIntentActive):
		return pkg.NewDomainErrorSimple("INTENT_ACTIVE", "A payment is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoIntent):
		return pkg.NewDomainErrorSimple("NO_INTENT", "No payment prepared", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentInFlight):
		return pkg.NewDomainErrorSimple("PAYMENT_IN_FLIGHT", "Payment submission already in flight", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentResolved):
		return pkg.NewDomainErrorSimple("PAYMENT_RESOLVED", "Payment already resolved; clear it first", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentTimedOut):
		return pkg.NewDomainErrorSimple("PAYMENT_TIMEOUT", "Payment timed out; check order status before retrying", http.StatusGatewayTimeout)
	case errors.Is(err, usecase.ErrOrderInActiveIntent):
		return pkg.NewDomainErrorSimple("ORDER_IN_INTENT", "Order belongs to the payment in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotCancelable):
		return pkg.NewDomainErrorSimple("ORDER_NOT_CANCELABLE", "Order can no longer be canceled", http.StatusConflict)
	default:
		return pkg.NewDomainError("UPSTREAM_ERROR", "The storefront backend rejected the request", err, http.StatusBadGateway)
	}
}
