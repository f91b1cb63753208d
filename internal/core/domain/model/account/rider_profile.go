package account

import (
	"errors"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/pkg/errs"
	"hatid/internal/pkg/guard"
)

var (
	// ErrRiderProfileIsNotConstructed is returned when a RiderProfile was not
	// created through NewRiderProfile or RestoreRiderProfile.
	ErrRiderProfileIsNotConstructed = errors.New(
		"RiderProfile must be created via NewRiderProfile or RestoreRiderProfile")

	// ErrAvailableWhileOffline is returned for any state in which a rider
	// would be available but not online.
	ErrAvailableWhileOffline = errs.NewInvariantViolatedError(
		"rider_profile", "is_available", "available rider must be online")

	// ErrAvailableWhileUnverified is returned for any state in which a rider
	// would be available but not verified.
	ErrAvailableWhileUnverified = errs.NewInvariantViolatedError(
		"rider_profile", "is_available", "available rider must be verified")
)

// RiderProfile is the 1:1 extension of a rider user. It carries the service
// type the rider offers and the three independent flags controlling whether
// the rider can be dispatched.
//
// The flags are independent booleans, not an enum, but they are not free:
// is_available implies both is_online and is_verified. The mutating methods
// maintain the implication (going offline or losing verification clears
// availability) and the restore path rejects snapshots that violate it.
type RiderProfile struct {
	riderID     kernel.UUID
	serviceType kernel.ServiceType
	isAvailable bool
	isVerified  bool
	isOnline    bool

	guard guard.ConstructorGuard
}

// NewRiderProfile creates a profile for a newly registered rider: offline,
// unverified, and unavailable.
func NewRiderProfile(riderID kernel.UUID, serviceType kernel.ServiceType) (*RiderProfile, error) {
	profile := &RiderProfile{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		profile.setRiderID(riderID),
		profile.setServiceType(serviceType),
	); err != nil {
		return nil, err
	}

	return profile, nil
}

// RestoreRiderProfile reconstructs a RiderProfile from persistent storage.
// Snapshots where the rider is available while offline or unverified are
// rejected, never coerced.
func RestoreRiderProfile(
	riderID kernel.UUID,
	serviceType kernel.ServiceType,
	isAvailable, isVerified, isOnline bool,
) (*RiderProfile, error) {
	profile := &RiderProfile{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		profile.setRiderID(riderID),
		profile.setServiceType(serviceType),
	); err != nil {
		return nil, err
	}

	if isAvailable && !isOnline {
		return nil, ErrAvailableWhileOffline
	}
	if isAvailable && !isVerified {
		return nil, ErrAvailableWhileUnverified
	}

	profile.isAvailable = isAvailable
	profile.isVerified = isVerified
	profile.isOnline = isOnline
	return profile, nil
}

// Validate ensures the RiderProfile was created through a factory function.
func (p *RiderProfile) Validate() error {
	if p == nil {
		return ErrRiderProfileIsNotConstructed
	}
	return p.guard.Validate(ErrRiderProfileIsNotConstructed)
}

// RiderID returns the identifier of the rider user this profile extends.
func (p *RiderProfile) RiderID() kernel.UUID {
	return p.riderID
}

// ServiceType returns the kind of work the rider offers.
func (p *RiderProfile) ServiceType() kernel.ServiceType {
	return p.serviceType
}

// IsAvailable reports whether the rider can currently take work.
func (p *RiderProfile) IsAvailable() bool {
	return p.isAvailable
}

// IsVerified reports whether the rider passed verification.
func (p *RiderProfile) IsVerified() bool {
	return p.isVerified
}

// IsOnline reports whether the rider is currently connected.
func (p *RiderProfile) IsOnline() bool {
	return p.isOnline
}

// GoOnline marks the rider as connected. Availability is not granted
// automatically; the rider opts in separately via SetAvailable.
func (p *RiderProfile) GoOnline() {
	p.isOnline = true
}

// GoOffline marks the rider as disconnected and clears availability, since
// an offline rider can never be available.
func (p *RiderProfile) GoOffline() {
	p.isOnline = false
	p.isAvailable = false
}

// MarkVerified records that the rider passed verification.
func (p *RiderProfile) MarkVerified() {
	p.isVerified = true
}

// RevokeVerification withdraws verification and clears availability, since
// an unverified rider can never be available.
func (p *RiderProfile) RevokeVerification() {
	p.isVerified = false
	p.isAvailable = false
}

// SetAvailable switches availability on or off.
// Turning it on requires the rider to be online and verified; otherwise the
// call is rejected and the profile is unchanged.
func (p *RiderProfile) SetAvailable(available bool) error {
	if !available {
		p.isAvailable = false
		return nil
	}

	if !p.isOnline {
		return ErrAvailableWhileOffline
	}
	if !p.isVerified {
		return ErrAvailableWhileUnverified
	}

	p.isAvailable = true
	return nil
}

func (p *RiderProfile) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	p.riderID = riderID
	return nil
}

func (p *RiderProfile) setServiceType(serviceType kernel.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	p.serviceType = serviceType
	return nil
}
