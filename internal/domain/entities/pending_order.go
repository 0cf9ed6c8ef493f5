package entities

import "time"

// OrderStatus mirrors the storefront backend's order lifecycle vocabulary.
//
// Domain notes:
//   - Only pending_payment orders ever enter the coordinator's working set.
//   - pending means "paid, awaiting shipment"; the backend flips an order
//     there once a payment submission is confirmed.
//   - canceled_timeout is applied server-side when the payment window lapses.

type OrderStatus string

const (
	OrderStatusPendingPayment  OrderStatus = "pending_payment"
	OrderStatusPending         OrderStatus = "pending"
	OrderStatusCanceled        OrderStatus = "canceled"
	OrderStatusCanceledTimeout OrderStatus = "canceled_timeout"
)

// OrderItem is one line of a pending order. The snapshot_* fields are the
// product/variant description frozen at purchase time; PurchasedPrice is the
// unit price actually charged, so the payable amount of an order is always
// Σ PurchasedPrice × Quantity over its items.
type OrderItem struct {
	ID               int64   `json:"id"`
	OrderID          int64   `json:"orderId"`
	ProductID        int64   `json:"productId"`
	ProductVariantID int64   `json:"productVariantId"`
	Quantity         int     `json:"quantity"`
	PurchasedPrice   float64 `json:"purchasedPrice"`
	SnapshotName     string  `json:"snapshotProductName"`
	SnapshotColor    string  `json:"snapshotVariantColor"`
	SnapshotSize     string  `json:"snapshotVariantSize"`
	SnapshotImage    string  `json:"snapshotVariantImage"`
}

// Order is the backend order header as returned by the pending-orders listing.
// ExpiresAt is server-assigned and may be absent on older rows.
type Order struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"userId"`
	TotalAmount float64     `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	ExpiresAt   *time.Time  `json:"expiresAt,omitempty"`
}

// PendingOrder is one tracked order awaiting payment: the backend order plus
// the coordinator-derived countdown/selection state.
//
// Invariant: IsSelected implies !IsExpired. The coordinator enforces it both
// on the expiry sweep (expiring deselects in the same pass) and on toggle
// (expired orders cannot be selected).
type PendingOrder struct {
	Order Order       `json:"order"`
	Items []OrderItem `json:"items"`

	// InitialDuration is the full payment window in seconds, derived once at
	// fetch time from ExpiresAt−CreatedAt (or the configured fallback window
	// when ExpiresAt is missing).
	InitialDuration int64 `json:"initialDuration"`
	// TimeRemaining is recomputed on every sweep tick; never negative.
	TimeRemaining int64 `json:"timeRemaining"`
	IsExpired     bool  `json:"isExpired"`
	IsSelected    bool  `json:"isSelected"`
}

// ItemsTotal returns the payable amount of the order recomputed from its
// line items.
func (p PendingOrder) ItemsTotal() float64 {
	var total float64
	for _, it := range p.Items {
		total += it.PurchasedPrice * float64(it.Quantity)
	}
	return total
}
