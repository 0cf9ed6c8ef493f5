package entities

import "time"

// PaymentPhase is the single-flight execution state of the coordinator's
// payment intent.
//
// Domain notes:
//   - At most one intent exists at a time; the phase always refers to it.
//   - prepared and paying are the "active" phases: selection is frozen and a
//     second PreparePayment is rejected while in them.
//   - succeeded and failed are resolved phases; ClearPaymentIntent returns
//     the coordinator to idle from any phase.

type PaymentPhase string

const (
	PhaseIdle      PaymentPhase = "idle"
	PhasePrepared  PaymentPhase = "prepared"
	PhasePaying    PaymentPhase = "paying"
	PhaseSucceeded PaymentPhase = "succeeded"
	PhaseFailed    PaymentPhase = "failed"
)

// Active reports whether the phase pins an in-flight intent (selection frozen,
// re-preparation rejected).
func (p PaymentPhase) Active() bool {
	return p == PhasePrepared || p == PhasePaying
}

// PaymentIntent is an immutable batch-payment proposal built from the
// selection at preparation time.
//
// Amount and Orders are snapshotted when the intent is created and never
// recomputed, even if the underlying working set mutates afterwards; an
// order expiring mid-flight stays pinned inside the intent.
type PaymentIntent struct {
	OrderIDs      []int64        `json:"orderIds"`
	Amount        float64        `json:"amount"`
	TransactionID string         `json:"transactionId"`
	Orders        []PendingOrder `json:"orders"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// Contains reports whether the given order id belongs to this intent.
func (i *PaymentIntent) Contains(orderID int64) bool {
	if i == nil {
		return false
	}
	for _, id := range i.OrderIDs {
		if id == orderID {
			return true
		}
	}
	return false
}
