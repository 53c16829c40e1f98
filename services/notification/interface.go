package notification

import (
	"context"

	"santai/models"
)

// Sink receives lifecycle notifications. Implementations are always best-effort:
// callers log delivery failures and never let them fail a state transition.
type Sink interface {
	Notify(ctx context.Context, n models.Notification) error
}

// NoopSink discards all notifications. It is the default when no notification
// collection is configured.
type NoopSink struct{}

func (NoopSink) Notify(ctx context.Context, n models.Notification) error {
	return nil
}
