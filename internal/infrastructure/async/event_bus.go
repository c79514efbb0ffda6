package async

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"prmetrics/internal/domain"
)

// AsyncEventBus logs pipeline lifecycle events off the hot path. Events
// queued before Close are flushed; Publish after cancellation is a no-op.
type AsyncEventBus struct {
	queue  chan domain.Event
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
	log    *zap.Logger
}

func NewAsyncEventBus(parent context.Context, workers int, log *zap.Logger) *AsyncEventBus {
	ctx, cancel := context.WithCancel(parent)
	b := &AsyncEventBus{
		queue:  make(chan domain.Event, 16),
		ctx:    ctx,
		cancel: cancel,
		log:    log,
	}

	for i := 0; i < workers; i++ {
		b.wg.Add(1)
		go b.worker()
	}

	return b
}

func (b *AsyncEventBus) worker() {
	defer b.wg.Done()

	for e := range b.queue {
		func() {
			defer func() {
				if r := recover(); r != nil {
					b.log.Error("event handler panicked", zap.Any("panic", r))
				}
			}()
			b.log.Info("pipeline_event",
				zap.String("type", e.Type),
				zap.Any("payload", e.Payload),
			)
		}()
	}
}

func (b *AsyncEventBus) Publish(ctx context.Context, e domain.Event) {
	// Checked up front so a Publish after Close never touches the closed
	// queue.
	select {
	case <-b.ctx.Done():
		return
	case <-ctx.Done():
		return
	default:
	}

	select {
	case <-b.ctx.Done():
	case <-ctx.Done():
	case b.queue <- e:
	}
}

// Close stops accepting events, then drains what was already queued.
func (b *AsyncEventBus) Close() {
	b.cancel()
	close(b.queue)
	b.wg.Wait()
}
