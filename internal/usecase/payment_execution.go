package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/vixinox/ecommerce-application-sub000/internal/domain/entities"
)

// ConfirmPayment submits the prepared intent to the backend and drives the
// prepared→paying→{succeeded|failed} transitions.
//
// On success the coordinator waits out the grace delay (so the user can read
// the confirmation), then re-fetches pending orders and clears the intent.
// On failure the working set is still re-fetched (the server may have
// partially changed state) but the intent is kept; the user must clear it
// explicitly before anything can be retried.
func (s *PendingPaymentCoordinator) ConfirmPayment(ctx context.Context) error {
	s.mu.Lock()
	if s.intent == nil {
		s.mu.Unlock()
		return ErrNoIntent
	}
	switch s.phase {
	case entities.PhasePaying:
		s.mu.Unlock()
		return ErrPaymentInFlight
	case entities.PhaseSucceeded, entities.PhaseFailed:
		s.mu.Unlock()
		return ErrPaymentResolved
	}
	token := s.token
	if token == "" {
		s.mu.Unlock()
		return ErrNoSession
	}

	orderIDs := append([]int64(nil), s.intent.OrderIDs...)
	transactionID := s.intent.TransactionID
	amount := s.intent.Amount
	s.phase = entities.PhasePaying
	s.failure = ""
	s.mu.Unlock()
	s.notifySubscribers()

	log.Printf("[pending][usecase] payment submit start tx=%s orders=%d amount=%.2f", transactionID, len(orderIDs), amount)

	submitCtx := ctx
	if s.submitTimeout > 0 {
		var cancel context.CancelFunc
		submitCtx, cancel = context.WithTimeout(ctx, s.submitTimeout)
		defer cancel()
	}

	err := s.gateway.SubmitPayment(submitCtx, token, orderIDs, transactionID, amount)
	if err != nil {
		timedOut := errors.Is(err, context.DeadlineExceeded)
		msg := err.Error()
		if timedOut {
			msg = ErrPaymentTimedOut.Error()
		}
		log.Printf("[pending][usecase] payment submit failed tx=%s timed_out=%t err=%v", transactionID, timedOut, err)

		s.mu.Lock()
		s.phase = entities.PhaseFailed
		s.failure = msg
		s.mu.Unlock()
		s.notifySubscribers()
		s.notifier.Error("payment failed", msg)

		// Server state may have partially changed; resynchronize regardless.
		_ = s.FetchPendingOrders(ctx)

		if timedOut {
			return ErrPaymentTimedOut
		}
		return fmt.Errorf("submit payment: %w", err)
	}

	log.Printf("[pending][usecase] payment submit success tx=%s", transactionID)

	s.mu.Lock()
	s.phase = entities.PhaseSucceeded
	s.mu.Unlock()
	s.notifySubscribers()
	s.notifier.Success("payment successful", transactionID)

	if s.successGrace > 0 {
		time.AfterFunc(s.successGrace, func() {
			s.finalizeSuccess(context.Background(), transactionID)
		})
	} else {
		s.finalizeSuccess(ctx, transactionID)
	}
	return nil
}

// finalizeSuccess runs once per successful submission, after the grace
// delay: one refetch, then the standard clear. It backs off if the user
// already cleared the intent (or something replaced it) in the meantime.
func (s *PendingPaymentCoordinator) finalizeSuccess(ctx context.Context, transactionID string) {
	s.mu.Lock()
	if s.phase != entities.PhaseSucceeded || s.intent == nil || s.intent.TransactionID != transactionID {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	_ = s.FetchPendingOrders(ctx)
	s.ClearPaymentIntent()
}
