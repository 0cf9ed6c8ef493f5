package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/vixinox/ecommerce-application-sub000/internal/domain/entities"
	"github.com/vixinox/ecommerce-application-sub000/internal/usecase/interfaces"
)

var ErrMissingStorefrontAPIURL = errors.New("missing STOREFRONT_API_URL")

// Gateway is the HTTP client for the commerce backend's order API. It covers
// the three operations the coordinator needs: list pending orders, cancel an
// order and submit a batched payment.
type Gateway struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IStorefrontGateway = (*Gateway)(nil)

func NewGateway(baseURL string, timeout time.Duration) (*Gateway, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[pending][gateway] missing STOREFRONT_API_URL")
		return nil, ErrMissingStorefrontAPIURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	log.Printf("[pending][gateway] storefront client initialized base_url=%s", baseURL)
	return &Gateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

func (g *Gateway) ListPendingOrders(ctx context.Context, token string) ([]entities.PendingOrder, error) {
	log.Printf("[pending][gateway] list start")
	body, err := g.do(ctx, http.MethodGet, "/api/orders/pending", token, nil)
	if err != nil {
		return nil, err
	}

	var out []entities.PendingOrder
	if err := json.Unmarshal(body, &out); err != nil {
		log.Printf("[pending][gateway] list decode failed err=%v", err)
		return nil, fmt.Errorf("decode pending orders: %w", err)
	}
	log.Printf("[pending][gateway] list success orders=%d", len(out))
	return out, nil
}

func (g *Gateway) CancelOrder(ctx context.Context, token string, orderID int64) error {
	log.Printf("[pending][gateway] cancel start order_id=%d", orderID)
	_, err := g.do(ctx, http.MethodPost, fmt.Sprintf("/api/orders/%d/cancel", orderID), token, nil)
	if err != nil {
		return err
	}
	log.Printf("[pending][gateway] cancel success order_id=%d", orderID)
	return nil
}

type payRequest struct {
	OrderIDs      []int64 `json:"orderIds"`
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
}

func (g *Gateway) SubmitPayment(ctx context.Context, token string, orderIDs []int64, transactionID string, amount float64) error {
	log.Printf("[pending][gateway] pay start tx=%s orders=%d amount=%.2f", transactionID, len(orderIDs), amount)
	payload, err := json.Marshal(payRequest{OrderIDs: orderIDs, TransactionID: transactionID, Amount: amount})
	if err != nil {
		return fmt.Errorf("encode payment request: %w", err)
	}
	if _, err := g.do(ctx, http.MethodPost, "/api/orders/pay", token, payload); err != nil {
		return err
	}
	log.Printf("[pending][gateway] pay success tx=%s", transactionID)
	return nil
}

// do issues one request and returns the response body. Non-2xx statuses are
// mapped to errors carrying the backend's message when one is present.
func (g *Gateway) do(ctx context.Context, method, path, token string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[pending][gateway] request failed method=%s path=%s err=%v", method, path, err)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := backendMessage(body)
		log.Printf("[pending][gateway] request rejected method=%s path=%s status=%d msg=%q", method, path, resp.StatusCode, msg)
		if msg != "" {
			return nil, fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, msg)
		}
		return nil, fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}
	return body, nil
}

// backendMessage pulls the human-readable message out of the backend's error
// envelope ({"message": ...} or {"error": ...}).
func backendMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if envelope.Message != "" {
		return envelope.Message
	}
	return envelope.Error
}
