package account

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bipbipboopboop/ielts-progressor/internal/domain"
)

// lifecycleHandler is the handler a Dispatcher runs for every event.
type lifecycleHandler interface {
	OnIdentityCreated(ctx context.Context, evt domain.IdentityCreated) error
}

// Dispatcher runs the lifecycle handler outside the request that produced the
// event. The handler context keeps the request's values but not its
// cancellation, so a finished request does not abort profile creation.
type Dispatcher struct {
	log     *slog.Logger
	handler lifecycleHandler
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewDispatcher creates a dispatcher. A non-positive timeout means no deadline.
func NewDispatcher(logger *slog.Logger, handler lifecycleHandler, timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		log:     logger.With("service", "account-dispatcher"),
		handler: handler,
		timeout: timeout,
	}
}

// Dispatch schedules the handler for evt and returns immediately.
func (d *Dispatcher) Dispatch(ctx context.Context, evt domain.IdentityCreated) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		hctx := context.WithoutCancel(ctx)
		if d.timeout > 0 {
			var cancel context.CancelFunc
			hctx, cancel = context.WithTimeout(hctx, d.timeout)
			defer cancel()
		}

		defer func() {
			if r := recover(); r != nil {
				d.log.ErrorContext(hctx, "identity created handler panicked",
					slog.String("user_id", evt.UID),
					slog.Any("panic", r))
			}
		}()

		if err := d.handler.OnIdentityCreated(hctx, evt); err != nil {
			d.log.ErrorContext(hctx, "identity created handler failed",
				slog.String("user_id", evt.UID),
				slog.String("error", err.Error()))
		}
	}()
}

// Wait blocks until every dispatched handler has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
