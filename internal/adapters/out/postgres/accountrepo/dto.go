// Package accountrepo provides data transfer objects and mapping functions for
// user and rider profile persistence. The two aggregates live in separate
// tables joined by the rider's user ID.
package accountrepo

import (
	"hatid/internal/core/domain/model/account"
	"hatid/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
// The rating accumulator is stored raw; the average is derived at read time.
type UserDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	Phone      string `gorm:"uniqueIndex"`
	UserType   string
	RatingSum  int64
	NumRatings int64
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// RiderProfileDTO represents the database structure for persisting rider profiles.
// RiderID doubles as the primary key since a rider has exactly one profile.
type RiderProfileDTO struct {
	RiderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceType string    `gorm:"index"`
	IsAvailable bool      `gorm:"index"`
	IsVerified  bool
	IsOnline    bool
}

// TableName specifies the database table name for rider profile entities.
func (RiderProfileDTO) TableName() string {
	return "rider_profiles"
}

// userFromDomain converts a user domain aggregate to its database representation.
func userFromDomain(user *account.User) UserDTO {
	return UserDTO{
		ID:         user.ID().Bytes(),
		Name:       user.Name(),
		Phone:      user.Phone().String(),
		UserType:   user.UserType().String(),
		RatingSum:  user.RatingSum(),
		NumRatings: user.TotalRatings(),
	}
}

// userToDomain converts a database DTO to a user domain aggregate.
func userToDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhoneNumber(dto.Phone)
	if err != nil {
		return nil, err
	}

	userType, err := account.UserTypeFromString(dto.UserType)
	if err != nil {
		return nil, err
	}

	return account.RestoreUser(id, dto.Name, phone, userType, dto.RatingSum, dto.NumRatings)
}

// profileFromDomain converts a rider profile to its database representation.
func profileFromDomain(profile *account.RiderProfile) RiderProfileDTO {
	return RiderProfileDTO{
		RiderID:     profile.RiderID().Bytes(),
		ServiceType: profile.ServiceType().String(),
		IsAvailable: profile.IsAvailable(),
		IsVerified:  profile.IsVerified(),
		IsOnline:    profile.IsOnline(),
	}
}

// profileToDomain converts a database DTO to a rider profile aggregate.
func profileToDomain(dto RiderProfileDTO) (*account.RiderProfile, error) {
	riderID, err := kernel.UUIDFromBytes(dto.RiderID[:])
	if err != nil {
		return nil, err
	}

	serviceType, err := kernel.ServiceTypeFromString(dto.ServiceType)
	if err != nil {
		return nil, err
	}

	return account.RestoreRiderProfile(riderID, serviceType, dto.IsAvailable, dto.IsVerified, dto.IsOnline)
}
