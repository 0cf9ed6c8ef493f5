package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vixinox/ecommerce-application-sub000/internal/clock"
	"github.com/vixinox/ecommerce-application-sub000/internal/domain/entities"
	"github.com/vixinox/ecommerce-application-sub000/internal/usecase/interfaces"
)

var (
	ErrNoSession           = errors.New("no active session token")
	ErrEmptySelection      = errors.New("no payable orders selected")
	ErrIntentActive        = errors.New("a payment intent is already active")
	ErrNoIntent            = errors.New("no payment intent prepared")
	ErrPaymentInFlight     = errors.New("payment submission already in flight")
	ErrPaymentResolved     = errors.New("payment already resolved; clear the intent first")
	ErrPaymentTimedOut     = errors.New("payment submission timed out; check order status before retrying")
	ErrOrderNotFound       = errors.New("order not found in working set")
	ErrOrderInActiveIntent = errors.New("order belongs to the active payment intent")
	ErrOrderNotCancelable  = errors.New("order status no longer permits cancellation")
)

// IPendingPaymentCoordinator owns the client-resident pending-payment state
// for one storefront session: the working set of orders awaiting payment,
// their countdown toward expiry, the user's selection, and the single-flight
// payment intent driven through prepare/confirm/clear.
//
// All UI surfaces (order list, header badge, payment screen) read the same
// coordinator through the accessors below; Subscribe delivers a change signal
// after every committed mutation so simultaneously rendered views never
// diverge.

type IPendingPaymentCoordinator interface {
	// Session lifecycle. An empty token deactivates the coordinator: the
	// working set is cleared and the expiry sweep stops. A changed token
	// tears the old sweep down, starts a fresh one and refetches.
	SetSessionToken(ctx context.Context, token string) error

	// Actions.
	FetchPendingOrders(ctx context.Context) error
	ToggleOrderSelection(orderID int64)
	ToggleSelectAll(selectAll bool)
	PreparePayment() (*entities.PaymentIntent, error)
	ConfirmPayment(ctx context.Context) error
	ClearPaymentIntent()
	CancelOrder(ctx context.Context, orderID int64) error

	// Read accessors.
	Snapshot() CoordinatorSnapshot
	PendingOrders() []entities.PendingOrder
	SelectedCount() int
	HasSelectableOrders() bool
	IsLoading() bool
	Intent() *entities.PaymentIntent
	Phase() entities.PaymentPhase
	FailureMessage() string

	// Subscribe registers a change listener and returns its unsubscribe
	// function. Listeners run outside the coordinator's critical section.
	Subscribe(fn func()) (unsubscribe func())

	// Shutdown stops the expiry sweep. The coordinator is unusable afterwards.
	Shutdown()
}

// CoordinatorSnapshot is a consistent point-in-time view of the whole
// coordinator state, taken under one critical section.
type CoordinatorSnapshot struct {
	Orders              []entities.PendingOrder
	SelectedCount       int
	HasSelectableOrders bool
	Loading             bool
	Intent              *entities.PaymentIntent
	Phase               entities.PaymentPhase
	FailureMessage      string
}

const (
	defaultFallbackWindow = 15 * time.Minute
	defaultRecencyWindow  = 24 * time.Hour
	defaultSweepInterval  = time.Second
	defaultSuccessGrace   = 3 * time.Second
	defaultSubmitTimeout  = 30 * time.Second
)

type PendingPaymentCoordinator struct {
	gateway  interfaces.IStorefrontGateway
	notifier interfaces.INotifier
	clock    clock.Clock

	fallbackWindow time.Duration
	recencyWindow  time.Duration
	sweepInterval  time.Duration
	successGrace   time.Duration
	submitTimeout  time.Duration

	mu        sync.Mutex
	token     string
	loading   bool
	orders    []entities.PendingOrder
	intent    *entities.PaymentIntent
	phase     entities.PaymentPhase
	failure   string
	stopSweep chan struct{}

	subMu  sync.Mutex
	subs   map[int]func()
	nextID int
}

var _ IPendingPaymentCoordinator = (*PendingPaymentCoordinator)(nil)

type CoordinatorOption func(*PendingPaymentCoordinator)

// WithFallbackWindow overrides the payment window assumed for orders the
// backend returned without an expiresAt.
func WithFallbackWindow(d time.Duration) CoordinatorOption {
	return func(s *PendingPaymentCoordinator) {
		if d > 0 {
			s.fallbackWindow = d
		}
	}
}

// WithRecencyWindow overrides the defensive createdAt backstop applied on
// fetch.
func WithRecencyWindow(d time.Duration) CoordinatorOption {
	return func(s *PendingPaymentCoordinator) {
		if d > 0 {
			s.recencyWindow = d
		}
	}
}

// WithSweepInterval overrides the expiry sweep granularity.
func WithSweepInterval(d time.Duration) CoordinatorOption {
	return func(s *PendingPaymentCoordinator) {
		if d > 0 {
			s.sweepInterval = d
		}
	}
}

// WithSuccessGrace overrides the delay between a successful submission and
// the post-success refetch+clear. A non-positive grace runs the finalization
// inline, which tests rely on.
func WithSuccessGrace(d time.Duration) CoordinatorOption {
	return func(s *PendingPaymentCoordinator) {
		s.successGrace = d
	}
}

// WithSubmitTimeout bounds the wait on a payment submission. Zero disables
// the bound.
func WithSubmitTimeout(d time.Duration) CoordinatorOption {
	return func(s *PendingPaymentCoordinator) {
		s.submitTimeout = d
	}
}

func NewPendingPaymentCoordinator(gateway interfaces.IStorefrontGateway, notifier interfaces.INotifier, clk clock.Clock, opts ...CoordinatorOption) *PendingPaymentCoordinator {
	s := &PendingPaymentCoordinator{
		gateway:        gateway,
		notifier:       notifier,
		clock:          clk,
		fallbackWindow: defaultFallbackWindow,
		recencyWindow:  defaultRecencyWindow,
		sweepInterval:  defaultSweepInterval,
		successGrace:   defaultSuccessGrace,
		submitTimeout:  defaultSubmitTimeout,
		phase:          entities.PhaseIdle,
		subs:           map[int]func(){},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetSessionToken adopts the session's bearer token. Setting the same token
// twice is a no-op; a change restarts the expiry sweep against a freshly
// fetched working set.
func (s *PendingPaymentCoordinator) SetSessionToken(ctx context.Context, token string) error {
	s.mu.Lock()
	if token == s.token {
		s.mu.Unlock()
		return nil
	}

	log.Printf("[pending][usecase] session token changed (present=%t)", token != "")
	s.token = token
	s.stopSweepLocked()

	if token == "" {
		s.orders = nil
		s.intent = nil
		s.phase = entities.PhaseIdle
		s.failure = ""
		s.loading = false
		s.mu.Unlock()
		s.notifySubscribers()
		return nil
	}

	s.startSweepLocked()
	s.mu.Unlock()
	s.notifySubscribers()

	return s.FetchPendingOrders(ctx)
}

// FetchPendingOrders refreshes the working set from the backend. On any
// transport/decode error the working set is emptied and a notification is
// emitted; there is no automatic retry.
func (s *PendingPaymentCoordinator) FetchPendingOrders(ctx context.Context) error {
	s.mu.Lock()
	token := s.token
	if token == "" {
		s.orders = nil
		s.loading = false
		s.mu.Unlock()
		s.notifySubscribers()
		return nil
	}
	s.loading = true
	s.mu.Unlock()
	s.notifySubscribers()

	list, err := s.gateway.ListPendingOrders(ctx, token)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		log.Printf("[pending][usecase] fetch failed err=%v", err)
		s.orders = nil
		s.mu.Unlock()
		s.notifySubscribers()
		s.notifier.Error("failed to load pending orders", err.Error())
		return fmt.Errorf("fetch pending orders: %w", err)
	}

	s.orders = s.normalizeFetched(list)
	count := len(s.orders)
	s.mu.Unlock()
	s.notifySubscribers()

	log.Printf("[pending][usecase] fetch success orders=%d", count)
	return nil
}

// normalizeFetched filters and derives the coordinator fields for a freshly
// fetched order list. Orders already expired at fetch time never enter the
// working set; selection does not survive a refresh.
func (s *PendingPaymentCoordinator) normalizeFetched(list []entities.PendingOrder) []entities.PendingOrder {
	now := s.clock.Now()
	out := make([]entities.PendingOrder, 0, len(list))
	for _, po := range list {
		if po.Order.Status != entities.OrderStatusPendingPayment {
			continue
		}
		if now.Sub(po.Order.CreatedAt) > s.recencyWindow {
			log.Printf("[pending][usecase] dropping stale order id=%d created_at=%s", po.Order.ID, po.Order.CreatedAt.Format(time.RFC3339))
			continue
		}

		if po.Order.ExpiresAt == nil {
			log.Printf("[pending][usecase] order id=%d has no expires_at; assuming %s window", po.Order.ID, s.fallbackWindow)
			exp := po.Order.CreatedAt.Add(s.fallbackWindow)
			po.Order.ExpiresAt = &exp
		}

		po.InitialDuration = int64(po.Order.ExpiresAt.Sub(po.Order.CreatedAt).Seconds())
		po.TimeRemaining = remainingSeconds(*po.Order.ExpiresAt, now)
		po.IsExpired = po.TimeRemaining == 0
		po.IsSelected = false

		if po.IsExpired {
			continue
		}
		out = append(out, po)
	}
	return out
}

func remainingSeconds(expiresAt, now time.Time) int64 {
	rem := int64(expiresAt.Sub(now).Seconds())
	if rem < 0 {
		return 0
	}
	return rem
}

// sweep recomputes time-remaining/expired for the whole working set. An
// order crossing into expiry is deselected in the same critical section, so
// a toggle can never observe an expired-but-selected order. Returns whether
// anything changed.
func (s *PendingPaymentCoordinator) sweep() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	changed := false
	for i := range s.orders {
		po := &s.orders[i]
		rem := remainingSeconds(*po.Order.ExpiresAt, now)
		expired := rem == 0
		if rem != po.TimeRemaining || expired != po.IsExpired {
			changed = true
		}
		po.TimeRemaining = rem
		if expired && !po.IsExpired {
			log.Printf("[pending][usecase] order id=%d expired", po.Order.ID)
			if po.IsSelected {
				po.IsSelected = false
			}
			po.Order.Status = entities.OrderStatusCanceledTimeout
		}
		po.IsExpired = expired
	}
	return changed
}

func (s *PendingPaymentCoordinator) startSweepLocked() {
	stop := make(chan struct{})
	s.stopSweep = stop
	interval := s.sweepInterval
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				if s.sweep() {
					s.notifySubscribers()
				}
			}
		}
	}()
}

func (s *PendingPaymentCoordinator) stopSweepLocked() {
	if s.stopSweep != nil {
		close(s.stopSweep)
		s.stopSweep = nil
	}
}

// ToggleOrderSelection flips the selection flag of one order. Expired or
// unknown orders, and any toggle while a payment intent is active, are
// silent no-ops.
func (s *PendingPaymentCoordinator) ToggleOrderSelection(orderID int64) {
	s.mu.Lock()
	if s.phase.Active() {
		s.mu.Unlock()
		return
	}
	changed := false
	for i := range s.orders {
		po := &s.orders[i]
		if po.Order.ID == orderID && !po.IsExpired {
			po.IsSelected = !po.IsSelected
			changed = true
			break
		}
	}
	s.mu.Unlock()
	if changed {
		s.notifySubscribers()
	}
}

// ToggleSelectAll applies selectAll to every non-expired order. No-op while
// a fetch is in flight or a payment intent is active.
func (s *PendingPaymentCoordinator) ToggleSelectAll(selectAll bool) {
	s.mu.Lock()
	if s.loading || s.phase.Active() {
		s.mu.Unlock()
		return
	}
	changed := false
	for i := range s.orders {
		po := &s.orders[i]
		if po.IsExpired {
			continue
		}
		if po.IsSelected != selectAll {
			po.IsSelected = selectAll
			changed = true
		}
	}
	s.mu.Unlock()
	if changed {
		s.notifySubscribers()
	}
}

// PreparePayment snapshots the current selection into an immutable payment
// intent and makes it the sole active one. A second preparation while an
// intent is active is rejected rather than silently superseding it.
func (s *PendingPaymentCoordinator) PreparePayment() (*entities.PaymentIntent, error) {
	s.mu.Lock()
	if s.phase.Active() {
		s.mu.Unlock()
		return nil, ErrIntentActive
	}

	selected := make([]entities.PendingOrder, 0, len(s.orders))
	for _, po := range s.orders {
		if po.IsSelected && !po.IsExpired {
			selected = append(selected, clonePendingOrder(po))
		}
	}
	if len(selected) == 0 {
		s.mu.Unlock()
		s.notifier.Info("select at least one order to pay", "")
		return nil, ErrEmptySelection
	}

	ids := make([]int64, 0, len(selected))
	var amount float64
	for _, po := range selected {
		ids = append(ids, po.Order.ID)
		amount += po.ItemsTotal()
	}

	now := s.clock.Now()
	intent := &entities.PaymentIntent{
		OrderIDs:      ids,
		Amount:        amount,
		TransactionID: fmt.Sprintf("tx-%d-%s", now.UnixMilli(), uuid.NewString()[:8]),
		Orders:        selected,
		CreatedAt:     now,
	}
	s.intent = intent
	s.phase = entities.PhasePrepared
	s.failure = ""
	s.mu.Unlock()
	s.notifySubscribers()

	log.Printf("[pending][usecase] payment prepared tx=%s orders=%d amount=%.2f", intent.TransactionID, len(ids), amount)
	s.notifier.Info("payment prepared", intent.TransactionID)
	return cloneIntent(intent), nil
}

// ClearPaymentIntent drops the active intent, returns the phase to idle and
// resets every selection flag. Safe to call repeatedly.
func (s *PendingPaymentCoordinator) ClearPaymentIntent() {
	s.mu.Lock()
	s.intent = nil
	s.phase = entities.PhaseIdle
	s.failure = ""
	for i := range s.orders {
		s.orders[i].IsSelected = false
	}
	s.mu.Unlock()
	s.notifySubscribers()
}

// CancelOrder cancels one order that is not part of the active payment
// intent: the order is removed from the working set optimistically, then the
// backend cancel runs; a backend failure re-fetches the whole set to
// resynchronize instead of surgically rolling back the one edit.
func (s *PendingPaymentCoordinator) CancelOrder(ctx context.Context, orderID int64) error {
	s.mu.Lock()
	token := s.token
	if token == "" {
		s.mu.Unlock()
		return ErrNoSession
	}
	if s.intent.Contains(orderID) {
		s.mu.Unlock()
		s.notifier.Warning("order is part of the payment in progress", "cancel the payment first")
		return ErrOrderInActiveIntent
	}

	idx := -1
	for i := range s.orders {
		if s.orders[i].Order.ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		s.notifier.Error("order not found", "")
		return ErrOrderNotFound
	}
	po := s.orders[idx]
	if po.IsExpired || po.Order.Status != entities.OrderStatusPendingPayment {
		s.mu.Unlock()
		s.notifier.Info("order already expired or no longer cancelable", "")
		return ErrOrderNotCancelable
	}

	s.orders = append(s.orders[:idx], s.orders[idx+1:]...)
	s.mu.Unlock()
	s.notifySubscribers()

	if err := s.gateway.CancelOrder(ctx, token, orderID); err != nil {
		log.Printf("[pending][usecase] cancel failed order_id=%d err=%v", orderID, err)
		s.notifier.Error(fmt.Sprintf("failed to cancel order %d", orderID), err.Error())
		// Compensating refetch; the optimistic removal may be wrong now.
		_ = s.FetchPendingOrders(ctx)
		return fmt.Errorf("cancel order %d: %w", orderID, err)
	}

	log.Printf("[pending][usecase] cancel success order_id=%d", orderID)
	s.notifier.Success(fmt.Sprintf("order %d canceled", orderID), "")
	return nil
}

func (s *PendingPaymentCoordinator) Snapshot() CoordinatorSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CoordinatorSnapshot{
		Orders:              cloneOrders(s.orders),
		SelectedCount:       s.selectedCountLocked(),
		HasSelectableOrders: s.hasSelectableLocked(),
		Loading:             s.loading,
		Intent:              cloneIntent(s.intent),
		Phase:               s.phase,
		FailureMessage:      s.failure,
	}
}

func (s *PendingPaymentCoordinator) PendingOrders() []entities.PendingOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneOrders(s.orders)
}

func (s *PendingPaymentCoordinator) SelectedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedCountLocked()
}

func (s *PendingPaymentCoordinator) HasSelectableOrders() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasSelectableLocked()
}

func (s *PendingPaymentCoordinator) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *PendingPaymentCoordinator) Intent() *entities.PaymentIntent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneIntent(s.intent)
}

func (s *PendingPaymentCoordinator) Phase() entities.PaymentPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *PendingPaymentCoordinator) FailureMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failure
}

func (s *PendingPaymentCoordinator) selectedCountLocked() int {
	n := 0
	for _, po := range s.orders {
		if po.IsSelected {
			n++
		}
	}
	return n
}

func (s *PendingPaymentCoordinator) hasSelectableLocked() bool {
	for _, po := range s.orders {
		if !po.IsExpired {
			return true
		}
	}
	return false
}

func (s *PendingPaymentCoordinator) Subscribe(fn func()) func() {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *PendingPaymentCoordinator) notifySubscribers() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (s *PendingPaymentCoordinator) Shutdown() {
	s.mu.Lock()
	s.stopSweepLocked()
	s.mu.Unlock()
}

func clonePendingOrder(po entities.PendingOrder) entities.PendingOrder {
	out := po
	out.Items = append([]entities.OrderItem(nil), po.Items...)
	if po.Order.ExpiresAt != nil {
		exp := *po.Order.ExpiresAt
		out.Order.ExpiresAt = &exp
	}
	return out
}

func cloneOrders(orders []entities.PendingOrder) []entities.PendingOrder {
	out := make([]entities.PendingOrder, 0, len(orders))
	for _, po := range orders {
		out = append(out, clonePendingOrder(po))
	}
	return out
}

func cloneIntent(in *entities.PaymentIntent) *entities.PaymentIntent {
	if in == nil {
		return nil
	}
	out := *in
	out.OrderIDs = append([]int64(nil), in.OrderIDs...)
	out.Orders = cloneOrders(in.Orders)
	return &out
}
