// Package ticket contains the Ticket aggregate and its message thread.
//
// A ticket is a support conversation tied to a user. Its status only ever
// moves forward through open, in_progress, resolved and closed; skipping
// intermediate statuses is allowed but reopening is not. Messages form an
// append-only thread and can only be posted while the ticket is not closed.
package ticket
