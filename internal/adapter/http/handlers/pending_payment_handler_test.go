package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vixinox/ecommerce-application-sub000/internal/adapter/http/handlers/mocks"
	"github.com/vixinox/ecommerce-application-sub000/internal/domain/entities"
	"github.com/vixinox/ecommerce-application-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newHandlerRouter(t *testing.T) (*gin.Engine, *mocks.MockIPendingPaymentCoordinator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	coordinator := mocks.NewMockIPendingPaymentCoordinator(ctrl)
	h := NewPendingPaymentHandler(coordinator)

	r := gin.New()
	r.GET("/v1/pending-payments", h.GetState)
	r.POST("/v1/pending-payments/refresh", h.Refresh)
	r.POST("/v1/pending-payments/selection", h.ToggleSelection)
	r.POST("/v1/pending-payments/selection/all", h.ToggleAll)
	r.POST("/v1/pending-payments/intent", h.PrepareIntent)
	r.POST("/v1/pending-payments/intent/confirm", h.ConfirmIntent)
	r.DELETE("/v1/pending-payments/intent", h.ClearIntent)
	r.POST("/v1/pending-payments/:order_id/cancel", h.CancelOrder)
	return r, coordinator
}

func idleSnapshot() usecase.CoordinatorSnapshot {
	return usecase.CoordinatorSnapshot{Phase: entities.PhaseIdle}
}

func snapshotWithOrder() usecase.CoordinatorSnapshot {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expires := created.Add(10 * time.Minute)
	return usecase.CoordinatorSnapshot{
		Orders: []entities.PendingOrder{{
			Order:           entities.Order{ID: 1, UserID: 7, Status: entities.OrderStatusPendingPayment, CreatedAt: created, ExpiresAt: &expires},
			Items:           []entities.OrderItem{{ID: 11, OrderID: 1, Quantity: 2, PurchasedPrice: 45.5, SnapshotName: "Trail Jacket"}},
			InitialDuration: 600,
			TimeRemaining:   420,
			IsSelected:      true,
		}},
		SelectedCount:       1,
		HasSelectableOrders: true,
		Phase:               entities.PhaseIdle,
	}
}

func TestPendingPaymentHandler_GetState(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the full snapshot", func(t *testing.T) {
		r, coordinator := newHandlerRouter(t)
		coordinator.EXPECT().Snapshot().Return(snapshotWithOrder())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pending-payments", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["selected_count"].(float64) != 1 {
			t.Fatalf("unexpected selected_count %v", body["selected_count"])
		}
		if body["phase"] != "idle" {
			t.Fatalf("unexpected phase %v", body["phase"])
		}
		orders := body["orders"].([]any)
		first := orders[0].(map[string]any)
		if first["countdown_display"] != "7:00" {
			t.Fatalf("unexpected countdown %v", first["countdown_display"])
		}
	})
}

func TestPendingPaymentHandler_Refresh(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		r, coordinator := newHandlerRouter(t)
		coordinator.EXPECT().FetchPendingOrders(gomock.Any()).Return(nil)
		coordinator.EXPECT().Snapshot().Return(idleSnapshot())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/pending-payments/refresh", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("upstream failure maps to 502", func(t *testing.T) {
		r, coordinator := newHandlerRouter(t)
		coordinator.EXPECT().FetchPendingOrders(gomock.Any()).Return(errors.New("backend down"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/pending-payments/refresh", nil))

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestPendingPaymentHandler_ToggleSelection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newHandlerRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/pending-payments/selection", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing order id fails validation", func(t *testing.T) {
		r, _ := newHandlerRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/pending-payments/selection", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, coordinator := newHandlerRouter(t)
		coordinator.EXPECT().ToggleOrderSelection(int64(1))
		coordinator.EXPECT().Snapshot().Return(snapshotWithOrder())

		req := httptest.NewRequest(http.MethodPost, "/v1/pending-payments/selection", bytes.NewBufferString(`{"order_id":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPendingPaymentHandler_ToggleAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("select_all is required", func(t *testing.T) {
		r, _ := newHandlerRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/pending-payments/selection/all", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("false is a valid value", func(t *testing.T) {
		r, coordinator := newHandlerRouter(t)
		coordinator.EXPECT().ToggleSelectAll(false)
		coordinator.EXPECT().Snapshot().Return(idleSnapshot())

		req := httptest.NewRequest(http.MethodPost, "/v1/pending-payments/selection/all", bytes.NewBufferString(`{"select_all":false}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPendingPaymentHandler_PrepareIntent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty selection is informational", func(t *testing.T) {
		r, coordinator := newHandlerRouter(t)
		coordinator.EXPECT().PreparePayment().Return(nil, usecase.ErrEmptySelection)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/pending-payments/intent", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["message"] != "select at least one order to pay" {
			t.Fatalf("unexpected message %v", body["message"])
		}
	})

	t.Run("active intent maps to 409", func(t *testing.T) {
		r, coordinator := newHandlerRouter(t)
		coordinator.EXPECT().PreparePayment().Return(nil, usecase.ErrIntentActive)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/pending-payments/intent", nil))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns the minted intent", func(t *testing.T) {
		r, coordinator := newHandlerRouter(t)
		coordinator.EXPECT().PreparePayment().Return(&entities.PaymentIntent{
			OrderIDs:      []int64{1, 3},
			Amount:        240,
			TransactionID: "tx-1-abc",
			CreatedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/pending-payments/intent", nil))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["transaction_id"] != "tx-1-abc" {
			t.Fatalf("unexpected transaction id %v", body["transaction_id"])
		}
		if body["amount"].(float64) != 240 {
			t.Fatalf("unexpected amount %v", body["amount"])
		}
	})
}

func TestPendingPaymentHandler_ConfirmIntent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"no intent", usecase.ErrNoIntent, http.StatusNotFound},
		{"no session", usecase.ErrNoSession, http.StatusUnauthorized},
		{"in flight", usecase.ErrPaymentInFlight, http.StatusConflict},
		{"already resolved", usecase.ErrPaymentResolved, http.StatusConflict},
		{"timed out", usecase.ErrPaymentTimedOut, http.StatusGatewayTimeout},
		{"upstream rejection", errors.New("declined"), http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, coordinator := newHandlerRouter(t)
			coordinator.EXPECT().ConfirmPayment(gomock.Any()).Return(tc.err)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/pending-payments/intent/confirm", nil))

			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		r, coordinator := newHandlerRouter(t)
		coordinator.EXPECT().ConfirmPayment(gomock.Any()).Return(nil)
		coordinator.EXPECT().Snapshot().Return(idleSnapshot())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/pending-payments/intent/confirm", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPendingPaymentHandler_ClearIntent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("always succeeds", func(t *testing.T) {
		r, coordinator := newHandlerRouter(t)
		coordinator.EXPECT().ClearPaymentIntent()
		coordinator.EXPECT().Snapshot().Return(idleSnapshot())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/pending-payments/intent", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPendingPaymentHandler_CancelOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid order id", func(t *testing.T) {
		r, _ := newHandlerRouter(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/pending-payments/abc/cancel", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"order in active intent", usecase.ErrOrderInActiveIntent, http.StatusConflict},
		{"order not found", usecase.ErrOrderNotFound, http.StatusNotFound},
		{"order not cancelable", usecase.ErrOrderNotCancelable, http.StatusConflict},
		{"no session", usecase.ErrNoSession, http.StatusUnauthorized},
		{"upstream rejection", errors.New("backend down"), http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, coordinator := newHandlerRouter(t)
			coordinator.EXPECT().CancelOrder(gomock.Any(), int64(42)).Return(tc.err)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/pending-payments/42/cancel", nil))

			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		r, coordinator := newHandlerRouter(t)
		coordinator.EXPECT().CancelOrder(gomock.Any(), int64(42)).Return(nil)
		coordinator.EXPECT().Snapshot().Return(idleSnapshot())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/pending-payments/42/cancel", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
