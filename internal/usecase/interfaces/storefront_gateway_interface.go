package interfaces

import (
	"context"

	"github.com/vixinox/ecommerce-application-sub000/internal/domain/entities"
)

//go:generate mockgen -source=storefront_gateway_interface.go -destination=mocks/mock_storefront_gateway.go -package=mocks

// IStorefrontGateway abstracts the commerce backend REST API as seen by the
// pending-payment coordinator.
//
// The coordinator uses exactly three backend operations:
//   - list the caller's orders still awaiting payment
//   - cancel one order (succeeds only while it is still awaiting payment)
//   - submit one batched payment for a set of orders
type IStorefrontGateway interface {
	ListPendingOrders(ctx context.Context, token string) ([]entities.PendingOrder, error)
	CancelOrder(ctx context.Context, token string, orderID int64) error
	SubmitPayment(ctx context.Context, token string, orderIDs []int64, transactionID string, amount float64) error
}
