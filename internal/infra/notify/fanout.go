package notify

import (
	"context"

	"laundromat-api/internal/domain/notification"
	"laundromat-api/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

// Fanout dispatches events to every notifier concurrently. Every notifier runs
// even when another fails; the first error is returned.
type Fanout struct {
	notifiers []shared.Notifier
}

func NewFanout(notifiers ...shared.Notifier) *Fanout {
	return &Fanout{notifiers: notifiers}
}

func (f *Fanout) Notify(ctx context.Context, events ...notification.Event) error {
	var g errgroup.Group
	for _, n := range f.notifiers {
		g.Go(func() error {
			return n.Notify(ctx, events...)
		})
	}
	return g.Wait()
}
