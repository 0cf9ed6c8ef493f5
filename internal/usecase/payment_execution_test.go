package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vixinox/ecommerce-application-sub000/internal/domain/entities"
	mock_interfaces "github.com/vixinox/ecommerce-application-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func prepareIntent(t *testing.T, s *PendingPaymentCoordinator, gateway *mock_interfaces.MockIStorefrontGateway, notifier *mock_interfaces.MockINotifier, orders ...entities.PendingOrder) *entities.PaymentIntent {
	t.Helper()
	startSession(t, s, gateway, orders)
	for _, po := range orders {
		s.ToggleOrderSelection(po.Order.ID)
	}
	notifier.EXPECT().Info("payment prepared", gomock.Any())
	intent, err := s.PreparePayment()
	if err != nil {
		t.Fatalf("PreparePayment: %v", err)
	}
	return intent
}

func TestConfirmPayment_Guards(t *testing.T) {
	t.Run("no intent", func(t *testing.T) {
		s, _, _, _ := newTestCoordinator(t)
		if err := s.ConfirmPayment(context.Background()); !errors.Is(err, ErrNoIntent) {
			t.Fatalf("expected ErrNoIntent, got %v", err)
		}
	})

	t.Run("resolved intent must be cleared before anything else", func(t *testing.T) {
		s, gateway, notifier, _ := newTestCoordinator(t)
		intent := prepareIntent(t, s, gateway, notifier, pendingOrderFixture(1, testStart, 10*time.Minute))

		gateway.EXPECT().SubmitPayment(gomock.Any(), "tok-1", intent.OrderIDs, intent.TransactionID, intent.Amount).Return(errors.New("declined"))
		notifier.EXPECT().Error("payment failed", "declined")
		gateway.EXPECT().ListPendingOrders(gomock.Any(), "tok-1").Return(nil, nil)

		if err := s.ConfirmPayment(context.Background()); err == nil {
			t.Fatal("expected submit error")
		}
		if err := s.ConfirmPayment(context.Background()); !errors.Is(err, ErrPaymentResolved) {
			t.Fatalf("expected ErrPaymentResolved, got %v", err)
		}
	})

	t.Run("second confirm while the first is in flight", func(t *testing.T) {
		s, gateway, notifier, _ := newTestCoordinator(t)
		intent := prepareIntent(t, s, gateway, notifier, pendingOrderFixture(1, testStart, 10*time.Minute))

		entered := make(chan struct{})
		release := make(chan struct{})
		gateway.EXPECT().SubmitPayment(gomock.Any(), "tok-1", intent.OrderIDs, intent.TransactionID, intent.Amount).DoAndReturn(
			func(context.Context, string, []int64, string, float64) error {
				close(entered)
				<-release
				return nil
			})
		notifier.EXPECT().Success("payment successful", intent.TransactionID)
		gateway.EXPECT().ListPendingOrders(gomock.Any(), "tok-1").Return(nil, nil)

		done := make(chan error, 1)
		go func() { done <- s.ConfirmPayment(context.Background()) }()
		<-entered

		if err := s.ConfirmPayment(context.Background()); !errors.Is(err, ErrPaymentInFlight) {
			t.Fatalf("expected ErrPaymentInFlight, got %v", err)
		}

		close(release)
		if err := <-done; err != nil {
			t.Fatalf("first ConfirmPayment: %v", err)
		}
	})
}

func TestConfirmPayment_Success(t *testing.T) {
	t.Run("exactly one refetch, then the intent and selection are cleared", func(t *testing.T) {
		s, gateway, notifier, _ := newTestCoordinator(t)
		unpaid := pendingOrderFixture(2, testStart, 10*time.Minute)
		startSession(t, s, gateway, []entities.PendingOrder{
			pendingOrderFixture(1, testStart, 10*time.Minute),
			unpaid,
		})
		s.ToggleOrderSelection(1)
		notifier.EXPECT().Info("payment prepared", gomock.Any())
		intent, err := s.PreparePayment()
		if err != nil {
			t.Fatalf("PreparePayment: %v", err)
		}

		gateway.EXPECT().SubmitPayment(gomock.Any(), "tok-1", intent.OrderIDs, intent.TransactionID, intent.Amount).Return(nil)
		notifier.EXPECT().Success("payment successful", intent.TransactionID)
		gateway.EXPECT().ListPendingOrders(gomock.Any(), "tok-1").Return([]entities.PendingOrder{unpaid}, nil).Times(1)

		if err := s.ConfirmPayment(context.Background()); err != nil {
			t.Fatalf("ConfirmPayment: %v", err)
		}

		if s.Intent() != nil {
			t.Fatal("expected intent cleared after success")
		}
		if s.Phase() != entities.PhaseIdle {
			t.Fatalf("expected idle phase, got %s", s.Phase())
		}
		if s.SelectedCount() != 0 {
			t.Fatalf("expected 0 selected, got %d", s.SelectedCount())
		}
		orders := s.PendingOrders()
		if len(orders) != 1 || orders[0].Order.ID != 2 {
			t.Fatalf("expected only the unpaid order, got %+v", orders)
		}
	})

	t.Run("grace delay defers the refetch and clear", func(t *testing.T) {
		s, gateway, notifier, _ := newTestCoordinator(t, WithSuccessGrace(10*time.Millisecond))
		intent := prepareIntent(t, s, gateway, notifier, pendingOrderFixture(1, testStart, 10*time.Minute))

		gateway.EXPECT().SubmitPayment(gomock.Any(), "tok-1", intent.OrderIDs, intent.TransactionID, intent.Amount).Return(nil)
		notifier.EXPECT().Success("payment successful", intent.TransactionID)

		fetched := make(chan struct{})
		gateway.EXPECT().ListPendingOrders(gomock.Any(), "tok-1").DoAndReturn(
			func(context.Context, string) ([]entities.PendingOrder, error) {
				close(fetched)
				return nil, nil
			})

		if err := s.ConfirmPayment(context.Background()); err != nil {
			t.Fatalf("ConfirmPayment: %v", err)
		}
		if s.Phase() != entities.PhaseSucceeded {
			t.Fatalf("expected succeeded phase during the grace window, got %s", s.Phase())
		}

		select {
		case <-fetched:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for the deferred refetch")
		}

		deadline := time.Now().Add(2 * time.Second)
		for s.Intent() != nil {
			if time.Now().After(deadline) {
				t.Fatal("timed out waiting for the intent to clear")
			}
			time.Sleep(time.Millisecond)
		}
		if s.Phase() != entities.PhaseIdle {
			t.Fatalf("expected idle phase after grace, got %s", s.Phase())
		}
	})

	t.Run("clearing during the grace window aborts the deferred finalization", func(t *testing.T) {
		s, gateway, notifier, _ := newTestCoordinator(t, WithSuccessGrace(50*time.Millisecond))
		intent := prepareIntent(t, s, gateway, notifier, pendingOrderFixture(1, testStart, 10*time.Minute))

		gateway.EXPECT().SubmitPayment(gomock.Any(), "tok-1", intent.OrderIDs, intent.TransactionID, intent.Amount).Return(nil)
		notifier.EXPECT().Success("payment successful", intent.TransactionID)
		// No ListPendingOrders expectation: the deferred refetch must not run.

		if err := s.ConfirmPayment(context.Background()); err != nil {
			t.Fatalf("ConfirmPayment: %v", err)
		}
		s.ClearPaymentIntent()

		time.Sleep(120 * time.Millisecond)
		if s.Intent() != nil {
			t.Fatal("expected intent to stay cleared")
		}
	})
}

func TestConfirmPayment_Failure(t *testing.T) {
	t.Run("intent is retained and the working set resynchronized", func(t *testing.T) {
		s, gateway, notifier, _ := newTestCoordinator(t)
		po := pendingOrderFixture(1, testStart, 10*time.Minute)
		intent := prepareIntent(t, s, gateway, notifier, po)

		gateway.EXPECT().SubmitPayment(gomock.Any(), "tok-1", intent.OrderIDs, intent.TransactionID, intent.Amount).Return(errors.New("insufficient funds"))
		notifier.EXPECT().Error("payment failed", "insufficient funds")
		gateway.EXPECT().ListPendingOrders(gomock.Any(), "tok-1").Return([]entities.PendingOrder{po}, nil)

		err := s.ConfirmPayment(context.Background())
		if err == nil || errors.Is(err, ErrPaymentTimedOut) {
			t.Fatalf("expected a plain submit error, got %v", err)
		}

		if s.Phase() != entities.PhaseFailed {
			t.Fatalf("expected failed phase, got %s", s.Phase())
		}
		if s.FailureMessage() != "insufficient funds" {
			t.Fatalf("unexpected failure message %q", s.FailureMessage())
		}
		got := s.Intent()
		if got == nil || got.TransactionID != intent.TransactionID {
			t.Fatal("expected the intent to be retained after failure")
		}
		if len(s.PendingOrders()) != 1 {
			t.Fatal("expected working set resynchronized")
		}
	})

	t.Run("timeout is a distinguishable outcome", func(t *testing.T) {
		s, gateway, notifier, _ := newTestCoordinator(t)
		intent := prepareIntent(t, s, gateway, notifier, pendingOrderFixture(1, testStart, 10*time.Minute))

		gateway.EXPECT().SubmitPayment(gomock.Any(), "tok-1", intent.OrderIDs, intent.TransactionID, intent.Amount).Return(context.DeadlineExceeded)
		notifier.EXPECT().Error("payment failed", ErrPaymentTimedOut.Error())
		gateway.EXPECT().ListPendingOrders(gomock.Any(), "tok-1").Return(nil, nil)

		if err := s.ConfirmPayment(context.Background()); !errors.Is(err, ErrPaymentTimedOut) {
			t.Fatalf("expected ErrPaymentTimedOut, got %v", err)
		}
		if s.Phase() != entities.PhaseFailed {
			t.Fatalf("expected failed phase, got %s", s.Phase())
		}
		if s.FailureMessage() != ErrPaymentTimedOut.Error() {
			t.Fatalf("unexpected failure message %q", s.FailureMessage())
		}
		if s.Intent() == nil {
			t.Fatal("expected the intent to be retained; the outcome is unknown server-side")
		}
	})

	t.Run("clearing a failed intent re-enables preparation", func(t *testing.T) {
		s, gateway, notifier, _ := newTestCoordinator(t)
		po := pendingOrderFixture(1, testStart, 10*time.Minute)
		intent := prepareIntent(t, s, gateway, notifier, po)

		gateway.EXPECT().SubmitPayment(gomock.Any(), "tok-1", intent.OrderIDs, intent.TransactionID, intent.Amount).Return(errors.New("declined"))
		notifier.EXPECT().Error("payment failed", "declined")
		gateway.EXPECT().ListPendingOrders(gomock.Any(), "tok-1").Return([]entities.PendingOrder{po}, nil)

		if err := s.ConfirmPayment(context.Background()); err == nil {
			t.Fatal("expected submit error")
		}

		s.ClearPaymentIntent()
		s.ToggleOrderSelection(1)
		notifier.EXPECT().Info("payment prepared", gomock.Any())
		retried, err := s.PreparePayment()
		if err != nil {
			t.Fatalf("PreparePayment after clear: %v", err)
		}
		if retried.TransactionID == intent.TransactionID {
			t.Fatal("expected a fresh transaction id on retry")
		}
	})
}
