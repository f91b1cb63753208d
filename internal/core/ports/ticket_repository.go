package ports

import (
	"context"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/core/domain/model/ticket"
)

// TicketRepository defines the persistence contract for ticket aggregates,
// including their message threads.
type TicketRepository interface {
	// Add persists a new ticket aggregate to storage.
	Add(ctx context.Context, aggregate *ticket.Ticket) error

	// Update persists changes to an existing ticket aggregate. New thread
	// messages are inserted; existing messages are never rewritten.
	Update(ctx context.Context, aggregate *ticket.Ticket) error

	// Get retrieves a ticket aggregate with its full thread.
	Get(ctx context.Context, id kernel.UUID) (*ticket.Ticket, error)
}
