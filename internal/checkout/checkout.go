// Package checkout runs the simulated payment flow: a fixed processing
// delay that always succeeds unless the delay itself is interrupted.
package checkout

import (
	"context"
	"errors"
	"sync"
	"time"

	"warung/internal/notify"

	"github.com/google/uuid"
)

// ProcessingDelay is how long the simulated payment takes.
const ProcessingDelay = 2 * time.Second

// SuccessDismiss is how long the success banner stays up before it
// dismisses itself.
const SuccessDismiss = 8 * time.Second

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
)

type State int

const (
	StateIdle State = iota
	StateProcessing
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateProcessing:
		return "processing"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Cart is the slice of the cart aggregate checkout needs.
type Cart interface {
	Len() int
	TotalItems() int
	TotalPrice() int64
	Clear() error
}

type Receipt struct {
	OrderRef    string
	Items       int
	Total       int64
	CompletedAt time.Time
}

type Processor struct {
	mu    sync.Mutex
	state State

	cart  Cart
	sink  notify.Sink
	delay time.Duration
	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time
}

type Option func(*Processor)

// WithDelay overrides the simulated payment duration.
func WithDelay(d time.Duration) Option {
	return func(p *Processor) { p.delay = d }
}

// WithSleeper overrides the delay mechanism. The sleeper returning an
// error is the only path into the Failed state.
func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(p *Processor) { p.sleep = sleep }
}

func WithClock(now func() time.Time) Option {
	return func(p *Processor) { p.now = now }
}

func NewProcessor(cart Cart, sink notify.Sink, opts ...Option) *Processor {
	p := &Processor{
		state: StateIdle,
		cart:  cart,
		sink:  sink,
		delay: ProcessingDelay,
		sleep: sleepContext,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Processor) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Checkout drives one pass of the state machine. An empty cart produces a
// warning notification and no transition. A second call while Processing
// is rejected rather than starting an overlapping timer. On success the
// cart is cleared; on failure it is left intact so the user can retry.
func (p *Processor) Checkout(ctx context.Context) (Receipt, error) {
	if err := p.begin(); err != nil {
		return Receipt{}, err
	}

	items := p.cart.TotalItems()
	total := p.cart.TotalPrice()

	if err := p.sleep(ctx, p.delay); err != nil {
		p.finish(StateFailed)
		p.sink.Notify("Payment could not be processed. Please try again.", notify.SeverityDanger)
		return Receipt{}, err
	}

	if err := p.cart.Clear(); err != nil {
		p.finish(StateFailed)
		p.sink.Notify("Payment could not be processed. Please try again.", notify.SeverityDanger)
		return Receipt{}, err
	}

	p.finish(StateSucceeded)
	return Receipt{
		OrderRef:    uuid.New().String(),
		Items:       items,
		Total:       total,
		CompletedAt: p.now(),
	}, nil
}

func (p *Processor) begin() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == StateProcessing {
		return ErrCheckoutInProgress
	}
	if p.cart.Len() == 0 {
		p.sink.Notify("Your cart is empty!", notify.SeverityWarning)
		return ErrEmptyCart
	}

	p.state = StateProcessing
	return nil
}

func (p *Processor) finish(s State) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}
