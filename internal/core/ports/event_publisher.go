package ports

import (
	"context"

	"hatid/internal/core/domain/model/kernel"
)

// NotificationPublisher delivers status change events to the notification
// collaborator after the surrounding transaction commits. Publishing is best
// effort: a failed publish never undoes committed state.
type NotificationPublisher interface {
	PublishStatusChanged(ctx context.Context, events []kernel.StatusChangedEvent) error
}
