package ports

import (
	"context"

	"scheduling/internal/core/domain/model/schedule"
)

// EventPublisher delivers schedule lifecycle events to interested parties.
// It is invoked only after the transaction that produced the event committed.
type EventPublisher interface {
	Publish(ctx context.Context, event schedule.Event) error
}
