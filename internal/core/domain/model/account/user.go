package account

import (
	"errors"
	"fmt"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/pkg/errs"
	"hatid/internal/pkg/guard"
)

var (
	// ErrUserIsNotConstructed is returned when a User was not created through
	// NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

	// ErrNameIsRequired is returned when attempting to create a user without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrRatingStateInvalid is returned when restoring a user whose rating sum
	// cannot have been produced by its rating count.
	ErrRatingStateInvalid = errs.NewInvariantViolatedError(
		"user", "rating", "rating must be neutral at zero ratings and within [1,5] otherwise")
)

// UserType tags a user as customer or rider. The roles are mutually
// exclusive; a rider is not a specialization of a customer.
type UserType int

const (
	// UserTypeUnknown represents an invalid or undefined user type.
	UserTypeUnknown UserType = iota

	// UserTypeCustomer is a user who places orders.
	UserTypeCustomer

	// UserTypeRider is a user who fulfills orders and carries a RiderProfile.
	UserTypeRider
)

func getUserTypeStrings() map[UserType]string {
	return map[UserType]string{
		UserTypeUnknown:  "unknown",
		UserTypeCustomer: "customer",
		UserTypeRider:    "rider",
	}
}

// UserTypeFromString parses a user type from its string form.
func UserTypeFromString(s string) (UserType, error) {
	switch s {
	case "customer":
		return UserTypeCustomer, nil
	case "rider":
		return UserTypeRider, nil
	default:
		return UserTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
			"user type is invalid",
			fmt.Errorf("%q is not a valid user type", s),
		)
	}
}

// Validate checks that the UserType is customer or rider.
func (u UserType) Validate() error {
	if u != UserTypeCustomer && u != UserTypeRider {
		return errs.NewValueIsInvalidErrorWithCause(
			"user type is invalid",
			fmt.Errorf("%d is not a valid user type", u),
		)
	}
	return nil
}

// String returns "customer", "rider", or "unknown". Implements fmt.Stringer.
func (u UserType) String() string {
	if str, ok := getUserTypeStrings()[u]; ok {
		return str
	}
	return "unknown"
}

// User is the identity record for a customer or rider.
//
// The rating is a running average over all scores the user has received.
// While totalRatings is zero the average is neutral and Rating reports zero;
// once ratings exist the average always lies within [MinScore, MaxScore].
type User struct {
	id         kernel.UUID
	name       string
	phone      kernel.PhoneNumber
	userType   UserType
	ratingSum  int64
	numRatings int64

	guard guard.ConstructorGuard
}

// NewUser creates a User with no ratings yet.
func NewUser(id kernel.UUID, name string, phone kernel.PhoneNumber, userType UserType) (*User, error) {
	user := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		user.setID(id),
		user.setName(name),
		user.setPhone(phone),
		user.setUserType(userType),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUser reconstructs a User from persistent storage, including the
// rating accumulator state. Snapshots whose rating sum could not have been
// produced by numRatings scores in [1,5] are rejected.
func RestoreUser(
	id kernel.UUID,
	name string,
	phone kernel.PhoneNumber,
	userType UserType,
	ratingSum int64,
	numRatings int64,
) (*User, error) {
	user := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		user.setID(id),
		user.setName(name),
		user.setPhone(phone),
		user.setUserType(userType),
		user.setRatingState(ratingSum, numRatings),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate ensures the User was created through a factory function.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Phone returns the user's mobile number.
func (u *User) Phone() kernel.PhoneNumber {
	return u.phone
}

// UserType returns whether the user is a customer or a rider.
func (u *User) UserType() UserType {
	return u.userType
}

// IsRider reports whether the user is a rider.
func (u *User) IsRider() bool {
	return u.userType == UserTypeRider
}

// TotalRatings returns how many ratings the user has received.
func (u *User) TotalRatings() int64 {
	return u.numRatings
}

// RatingSum returns the accumulated sum of received scores, for persistence.
func (u *User) RatingSum() int64 {
	return u.ratingSum
}

// Rating returns the running average of received scores.
// It is zero (neutral) while the user has no ratings, and within
// [MinScore, MaxScore] otherwise.
func (u *User) Rating() float64 {
	if u.numRatings == 0 {
		return 0
	}
	return float64(u.ratingSum) / float64(u.numRatings)
}

// ApplyRating folds one received score into the running average.
func (u *User) ApplyRating(score kernel.Score) error {
	if err := score.Validate(); err != nil {
		return err
	}

	u.ratingSum += int64(score.Value())
	u.numRatings++
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	u.name = name
	return nil
}

func (u *User) setPhone(phone kernel.PhoneNumber) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	u.phone = phone
	return nil
}

func (u *User) setUserType(userType UserType) error {
	if err := userType.Validate(); err != nil {
		return err
	}
	u.userType = userType
	return nil
}

func (u *User) setRatingState(ratingSum, numRatings int64) error {
	if numRatings < 0 {
		return ErrRatingStateInvalid
	}
	if numRatings == 0 && ratingSum != 0 {
		return ErrRatingStateInvalid
	}
	if numRatings > 0 {
		if ratingSum < numRatings*kernel.MinScore || ratingSum > numRatings*kernel.MaxScore {
			return ErrRatingStateInvalid
		}
	}
	u.ratingSum = ratingSum
	u.numRatings = numRatings
	return nil
}
