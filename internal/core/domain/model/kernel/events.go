package kernel

import "time"

// StatusChangedEvent is the discrete record of one successful lifecycle
// transition. Every transition an aggregate commits is representable as
// exactly one of these, suitable for downstream notification without the
// domain dispatching anything itself.
type StatusChangedEvent struct {
	// EntityKind names the aggregate type, e.g. "order" or "delivery".
	EntityKind string
	// EntityID is the aggregate identifier.
	EntityID UUID
	// OldStatus is the status string before the transition.
	OldStatus string
	// NewStatus is the status string after the transition.
	NewStatus string
	// OccurredAt is when the transition was applied.
	OccurredAt time.Time
}

// NewStatusChangedEvent creates a status change record for one transition.
func NewStatusChangedEvent(entityKind string, entityID UUID, oldStatus, newStatus string, occurredAt time.Time) StatusChangedEvent {
	return StatusChangedEvent{
		EntityKind: entityKind,
		EntityID:   entityID,
		OldStatus:  oldStatus,
		NewStatus:  newStatus,
		OccurredAt: occurredAt,
	}
}
