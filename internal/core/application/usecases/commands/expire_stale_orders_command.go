package commands

import (
	"errors"
	"time"

	"hatid/internal/pkg/errs"
	"hatid/internal/pkg/guard"
)

var ErrExpireStaleOrdersCommandIsNotConstructed = errors.New(
	"ExpireStaleOrdersCommand must be created via NewExpireStaleOrdersCommand constructor",
)

// ExpireStaleOrdersCommand requests cancellation of pending orders that have
// waited longer than MaxAge for confirmation. Orders that progressed past
// Pending are never touched.
type ExpireStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewExpireStaleOrdersCommand creates a command to expire pending orders
// older than maxAge.
func NewExpireStaleOrdersCommand(maxAge time.Duration) (ExpireStaleOrdersCommand, error) {
	if maxAge <= 0 {
		return ExpireStaleOrdersCommand{}, errs.NewValueIsInvalidError("maxAge")
	}

	return ExpireStaleOrdersCommand{
		maxAge: maxAge,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireStaleOrdersCommandIsNotConstructed)
}

// MaxAge returns how long a pending order may wait before expiry.
func (c ExpireStaleOrdersCommand) MaxAge() time.Duration {
	return c.maxAge
}
