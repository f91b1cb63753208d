// Package ticketrepo provides data transfer objects and mapping functions for
// ticket persistence. The aggregate spans two tables: the ticket row and its
// append-only message thread.
package ticketrepo

import (
	"time"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/core/domain/model/ticket"

	"github.com/google/uuid"
)

// TicketDTO represents the database structure for persisting ticket aggregates.
type TicketDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OpenerID  uuid.UUID `gorm:"type:uuid;index"`
	Subject   string
	Status    string `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for ticket entities.
func (TicketDTO) TableName() string {
	return "tickets"
}

// MessageDTO represents a single thread message row. Rows are inserted once
// and never rewritten.
type MessageDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TicketID uuid.UUID `gorm:"type:uuid;index"`
	SenderID uuid.UUID `gorm:"type:uuid"`
	Body     string
	SentAt   time.Time
}

// TableName specifies the database table name for ticket messages.
func (MessageDTO) TableName() string {
	return "ticket_messages"
}

// fromDomain converts a ticket aggregate to its database representation,
// splitting the thread into message rows.
func fromDomain(ticket *ticket.Ticket) (TicketDTO, []MessageDTO) {
	dto := TicketDTO{
		ID:        ticket.ID().Bytes(),
		OpenerID:  ticket.OpenerID().Bytes(),
		Subject:   ticket.Subject(),
		Status:    ticket.Status().String(),
		CreatedAt: ticket.CreatedAt(),
		UpdatedAt: ticket.UpdatedAt(),
	}

	messages := ticket.Messages()
	messageDTOs := make([]MessageDTO, 0, len(messages))
	for _, m := range messages {
		messageDTOs = append(messageDTOs, MessageDTO{
			ID:       m.ID().Bytes(),
			TicketID: dto.ID,
			SenderID: m.SenderID().Bytes(),
			Body:     m.Body(),
			SentAt:   m.SentAt(),
		})
	}

	return dto, messageDTOs
}

// toDomain converts a ticket row and its message rows to a ticket aggregate.
// Messages must arrive in posting order; the repository reads them sorted by
// sent_at.
func toDomain(dto TicketDTO, messageDTOs []MessageDTO) (*ticket.Ticket, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	openerID, err := kernel.UUIDFromBytes(dto.OpenerID[:])
	if err != nil {
		return nil, err
	}

	status, err := ticket.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	messages := make([]ticket.Message, 0, len(messageDTOs))
	for _, m := range messageDTOs {
		messageID, msgErr := kernel.UUIDFromBytes(m.ID[:])
		if msgErr != nil {
			return nil, msgErr
		}

		senderID, msgErr := kernel.UUIDFromBytes(m.SenderID[:])
		if msgErr != nil {
			return nil, msgErr
		}

		message, msgErr := ticket.NewMessage(messageID, senderID, m.Body, m.SentAt)
		if msgErr != nil {
			return nil, msgErr
		}
		messages = append(messages, message)
	}

	return ticket.RestoreTicket(id, openerID, dto.Subject, status, messages, dto.CreatedAt, dto.UpdatedAt)
}
