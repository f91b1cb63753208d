package ticket

import (
	"errors"
	"time"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/pkg/errs"
	"hatid/internal/pkg/guard"
)

// entityKind labels ticket status change events for downstream consumers.
const entityKind = "ticket"

var (
	// ErrTicketIsNotConstructed is returned when a Ticket instance was not
	// created through the NewTicket or RestoreTicket factory functions.
	ErrTicketIsNotConstructed = errors.New("Ticket must be created via NewTicket or RestoreTicket")

	// ErrSubjectIsRequired is returned when attempting to open a ticket
	// without a subject.
	ErrSubjectIsRequired = errs.NewValueIsRequiredError("subject")

	// ErrTicketIsClosed is returned when posting a message to a closed ticket.
	ErrTicketIsClosed = errs.NewInvariantViolatedError(
		entityKind, "status", "messages cannot be posted to a closed ticket")
)

// Message is a single entry in a ticket's thread. Messages are append-only:
// once posted they are never edited or removed.
type Message struct {
	id       kernel.UUID
	senderID kernel.UUID
	body     string
	sentAt   time.Time
}

// NewMessage creates a thread entry, enforcing the message body length rule.
func NewMessage(id kernel.UUID, senderID kernel.UUID, body string, sentAt time.Time) (Message, error) {
	if err := errors.Join(
		id.Validate(),
		senderID.Validate(),
		kernel.ValidateMessageBody(body),
	); err != nil {
		return Message{}, err
	}

	return Message{
		id:       id,
		senderID: senderID,
		body:     body,
		sentAt:   sentAt,
	}, nil
}

// ID returns the message identifier.
func (m Message) ID() kernel.UUID {
	return m.id
}

// SenderID returns the user who posted the message.
func (m Message) SenderID() kernel.UUID {
	return m.senderID
}

// Body returns the message text.
func (m Message) Body() string {
	return m.body
}

// SentAt returns when the message was posted.
func (m Message) SentAt() time.Time {
	return m.sentAt
}

// Ticket is the aggregate root for a support conversation.
//
// Ticket maintains these invariants:
//   - identifier and opener reference are valid UUIDs
//   - status only ever moves forward through the Status state machine
//   - the message thread is append-only and frozen once the ticket closes
//
// Successful transitions are recorded as kernel.StatusChangedEvent values,
// retrievable once via PopEvents.
type Ticket struct {
	id        kernel.UUID
	openerID  kernel.UUID
	subject   string
	status    Status
	messages  []Message
	createdAt time.Time
	updatedAt time.Time

	events []kernel.StatusChangedEvent
	guard  guard.ConstructorGuard
}

// NewTicket opens a Ticket in Open status with an empty thread.
func NewTicket(
	id kernel.UUID,
	openerID kernel.UUID,
	subject string,
	now time.Time,
) (*Ticket, error) {
	ticket := &Ticket{
		status:    Open,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ticket.setID(id),
		ticket.setOpenerID(openerID),
		ticket.setSubject(subject),
	); err != nil {
		return nil, err
	}

	return ticket, nil
}

// RestoreTicket reconstructs a Ticket from persistent storage, including its
// message thread. Unlike NewTicket it accepts an arbitrary valid status and
// the stored timestamps, and emits no events.
func RestoreTicket(
	id kernel.UUID,
	openerID kernel.UUID,
	subject string,
	status Status,
	messages []Message,
	createdAt time.Time,
	updatedAt time.Time,
) (*Ticket, error) {
	ticket := &Ticket{
		messages:  messages,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ticket.setID(id),
		ticket.setOpenerID(openerID),
		ticket.setSubject(subject),
		ticket.setStatus(status),
	); err != nil {
		return nil, err
	}

	return ticket, nil
}

// Validate ensures the Ticket was created through a factory function.
func (t *Ticket) Validate() error {
	if t == nil {
		return ErrTicketIsNotConstructed
	}
	return t.guard.Validate(ErrTicketIsNotConstructed)
}

// ID returns the ticket's unique identifier.
func (t *Ticket) ID() kernel.UUID {
	return t.id
}

// OpenerID returns the identifier of the user who opened the ticket.
func (t *Ticket) OpenerID() kernel.UUID {
	return t.openerID
}

// Subject returns the ticket subject line.
func (t *Ticket) Subject() string {
	return t.subject
}

// Status returns the current status of the ticket.
func (t *Ticket) Status() Status {
	return t.status
}

// Messages returns the thread in posting order. The returned slice must not
// be mutated by the caller.
func (t *Ticket) Messages() []Message {
	return t.messages
}

// CreatedAt returns when the ticket was opened.
func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

// UpdatedAt returns when the ticket last changed.
func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// IsClosed reports whether the ticket reached its terminal status.
func (t *Ticket) IsClosed() bool {
	return t.status.IsTerminal()
}

// TransitionTo moves the ticket to target status.
//
// Any strictly forward move is accepted, including skips over intermediate
// statuses. Moving backward or out of Closed is rejected and leaves the
// ticket unchanged.
func (t *Ticket) TransitionTo(target Status, now time.Time) error {
	newStatus, err := t.status.TransitionTo(target)
	if err != nil {
		return err
	}

	t.events = append(t.events, kernel.NewStatusChangedEvent(
		entityKind, t.id, t.status.String(), newStatus.String(), now,
	))
	t.status = newStatus
	t.updatedAt = now
	return nil
}

// PostMessage appends a message to the thread.
// Fails with ErrTicketIsClosed once the ticket is closed; any earlier status
// accepts messages, including Resolved.
func (t *Ticket) PostMessage(message Message, now time.Time) error {
	if t.IsClosed() {
		return ErrTicketIsClosed
	}

	t.messages = append(t.messages, message)
	t.updatedAt = now
	return nil
}

// PopEvents returns the status change events recorded since the last call
// and clears the internal buffer.
func (t *Ticket) PopEvents() []kernel.StatusChangedEvent {
	events := t.events
	t.events = nil
	return events
}

func (t *Ticket) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Ticket) setOpenerID(openerID kernel.UUID) error {
	if err := openerID.Validate(); err != nil {
		return err
	}
	t.openerID = openerID
	return nil
}

func (t *Ticket) setSubject(subject string) error {
	if subject == "" {
		return ErrSubjectIsRequired
	}
	t.subject = subject
	return nil
}

func (t *Ticket) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.status = status
	return nil
}
