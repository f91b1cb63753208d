// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and best-effort event publication after commit.
package commands

import (
	"context"

	"hatid/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DeliveryRepoFactory provides access to delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// UserRepoFactory provides access to user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// RiderProfileRepoFactory provides access to rider profile repository within a transaction.
	RiderProfileRepoFactory interface {
		RiderProfileRepository() ports.RiderProfileRepository
	}

	// RatingRepoFactory provides access to rating repository within a transaction.
	RatingRepoFactory interface {
		RatingRepository() ports.RatingRepository
	}

	// TicketRepoFactory provides access to ticket repository within a transaction.
	TicketRepoFactory interface {
		TicketRepository() ports.TicketRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DeliveryUoW manages transactions spanning delivery and order aggregates.
	// Every delivery command touches the owning order: the completion
	// precursor check reads it and cancellation cascades into it.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		OrderRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// AssignmentUoW manages transactions for the rider assignment workflow,
	// which reads orders and rider records and writes the new delivery.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
		UserRepoFactory
		RiderProfileRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// RatingUoW manages transactions for rating submission, which writes the
	// rating record and folds the score into the ratee's running average.
	RatingUoW interface {
		TxManager
		RatingRepoFactory
		UserRepoFactory
		OrderRepoFactory
	}

	// RatingUoWFactory creates new rating unit of work instances.
	RatingUoWFactory interface {
		Create() RatingUoW
	}

	// RiderProfileUoW manages transactions for rider profile operations.
	RiderProfileUoW interface {
		TxManager
		RiderProfileRepoFactory
	}

	// RiderProfileUoWFactory creates new rider profile unit of work instances.
	RiderProfileUoWFactory interface {
		Create() RiderProfileUoW
	}

	// TicketUoW manages transactions for ticket operations.
	TicketUoW interface {
		TxManager
		TicketRepoFactory
	}

	// TicketUoWFactory creates new ticket unit of work instances.
	TicketUoWFactory interface {
		Create() TicketUoW
	}
)
