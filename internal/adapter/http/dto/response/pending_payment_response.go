package response

import (
	"time"

	"github.com/vixinox/ecommerce-application-sub000/internal/domain/entities"
	"github.com/vixinox/ecommerce-application-sub000/internal/usecase"
	"github.com/vixinox/ecommerce-application-sub000/pkg"
)

type OrderItemResponse struct {
	ID             int64   `json:"id"`
	ProductID      int64   `json:"product_id"`
	VariantID      int64   `json:"variant_id"`
	Quantity       int     `json:"quantity"`
	PurchasedPrice float64 `json:"purchased_price"`
	ProductName    string  `json:"product_name"`
	VariantColor   string  `json:"variant_color"`
	VariantSize    string  `json:"variant_size"`
	VariantImage   string  `json:"variant_image"`
}

// PendingOrderResponse is one tracked order as the UI surfaces consume it:
// the backend fields plus the countdown state and pre-rendered display
// strings.
type PendingOrderResponse struct {
	ID               int64               `json:"id"`
	UserID           int64               `json:"user_id"`
	TotalAmount      float64             `json:"total_amount"`
	Status           string              `json:"status"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
	ExpiresAt        *time.Time          `json:"expires_at,omitempty"`
	Items            []OrderItemResponse `json:"items"`
	InitialDuration  int64               `json:"initial_duration"`
	TimeRemaining    int64               `json:"time_remaining"`
	CountdownDisplay string              `json:"countdown_display"`
	Progress         float64             `json:"progress"`
	IsExpired        bool                `json:"is_expired"`
	IsSelected       bool                `json:"is_selected"`
	ItemsTotal       float64             `json:"items_total"`
	TotalDisplay     string              `json:"total_display"`
}

type PaymentIntentResponse struct {
	OrderIDs      []int64                `json:"order_ids"`
	Amount        float64                `json:"amount"`
	AmountDisplay string                 `json:"amount_display"`
	TransactionID string                 `json:"transaction_id"`
	CreatedAt     time.Time              `json:"created_at"`
	Orders        []PendingOrderResponse `json:"orders"`
}

// PendingPaymentStateResponse is the full coordinator snapshot every UI
// surface reads: the working set, the selection tallies, the loading flag and
// the single-flight intent with its execution phase.
type PendingPaymentStateResponse struct {
	Orders              []PendingOrderResponse `json:"orders"`
	SelectedCount       int                    `json:"selected_count"`
	HasSelectableOrders bool                   `json:"has_selectable_orders"`
	Loading             bool                   `json:"loading"`
	Intent              *PaymentIntentResponse `json:"intent,omitempty"`
	Phase               string                 `json:"phase"`
	FailureMessage      string                 `json:"failure_message,omitempty"`
}

func FromPendingOrder(po entities.PendingOrder) PendingOrderResponse {
	items := make([]OrderItemResponse, 0, len(po.Items))
	for _, it := range po.Items {
		items = append(items, OrderItemResponse{
			ID:             it.ID,
			ProductID:      it.ProductID,
			VariantID:      it.ProductVariantID,
			Quantity:       it.Quantity,
			PurchasedPrice: it.PurchasedPrice,
			ProductName:    it.SnapshotName,
			VariantColor:   it.SnapshotColor,
			VariantSize:    it.SnapshotSize,
			VariantImage:   it.SnapshotImage,
		})
	}
	total := po.ItemsTotal()
	return PendingOrderResponse{
		ID:               po.Order.ID,
		UserID:           po.Order.UserID,
		TotalAmount:      po.Order.TotalAmount,
		Status:           string(po.Order.Status),
		CreatedAt:        po.Order.CreatedAt,
		UpdatedAt:        po.Order.UpdatedAt,
		ExpiresAt:        po.Order.ExpiresAt,
		Items:            items,
		InitialDuration:  po.InitialDuration,
		TimeRemaining:    po.TimeRemaining,
		CountdownDisplay: pkg.FormatTimeRemaining(po.TimeRemaining),
		Progress:         pkg.PaymentProgress(po),
		IsExpired:        po.IsExpired,
		IsSelected:       po.IsSelected,
		ItemsTotal:       total,
		TotalDisplay:     pkg.FormatPrice(total, "", ""),
	}
}

func FromPaymentIntent(in *entities.PaymentIntent) *PaymentIntentResponse {
	if in == nil {
		return nil
	}
	orders := make([]PendingOrderResponse, 0, len(in.Orders))
	for _, po := range in.Orders {
		orders = append(orders, FromPendingOrder(po))
	}
	return &PaymentIntentResponse{
		OrderIDs:      in.OrderIDs,
		Amount:        in.Amount,
		AmountDisplay: pkg.FormatPrice(in.Amount, "", ""),
		TransactionID: in.TransactionID,
		CreatedAt:     in.CreatedAt,
		Orders:        orders,
	}
}

func FromSnapshot(s usecase.CoordinatorSnapshot) PendingPaymentStateResponse {
	orders := make([]PendingOrderResponse, 0, len(s.Orders))
	for _, po := range s.Orders {
		orders = append(orders, FromPendingOrder(po))
	}
	return PendingPaymentStateResponse{
		Orders:              orders,
		SelectedCount:       s.SelectedCount,
		HasSelectableOrders: s.HasSelectableOrders,
		Loading:             s.Loading,
		Intent:              FromPaymentIntent(s.Intent),
		Phase:               string(s.Phase),
		FailureMessage:      s.FailureMessage,
	}
}
