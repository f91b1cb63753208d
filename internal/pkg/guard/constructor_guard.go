// Package guard provides the constructor guard pattern used across the domain
// model to ensure value objects, entities, and commands are only created through
// their designated constructor functions. A zero-value struct embedding a
// ConstructorGuard fails validation, which prevents accidentally using objects
// that bypassed invariant checks.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a zero
// value and no specific error was supplied by the caller.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
//
// Embed a ConstructorGuard in a struct and set it via NewConstructorGuard in
// the constructor. Any zero-value instance of the struct will then fail
// Validate, making improper construction detectable.
//
// Example:
//
//	type Score struct {
//	    value int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewScore(value int) (Score, error) {
//	    if value < 1 || value > 5 {
//	        return Score{}, errors.New("score out of range")
//	    }
//	    return Score{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (s Score) Validate() error {
//	    return s.guard.Validate(ErrScoreIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// constructed. Call this only from constructor functions.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guard was created via NewConstructorGuard.
// For zero-value guards it returns notConstructedErr, or
// ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}

	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}

	return notConstructedErr
}
