package accountrepo

import (
	"context"
	"errors"

	"hatid/internal/core/domain/model/account"
	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new user to the database.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *account.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := userFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing user to the database.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *account.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := userFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a user by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return userToDomain(dto)
}

// GormRiderProfileRepository implements RiderProfileRepository using GORM.
type GormRiderProfileRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormRiderProfileRepository creates a new GORM rider profile repository.
func NewGormRiderProfileRepository(db *gorm.DB, tracker aggregateTracker) *GormRiderProfileRepository {
	return &GormRiderProfileRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rider profile to the database.
func (r *GormRiderProfileRepository) Add(ctx context.Context, aggregate *account.RiderProfile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := profileFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.RiderID(), aggregate)
	return nil
}

// Update saves an existing rider profile to the database.
// Select("*") makes GORM write false flags too; going offline or revoking
// verification must clear the columns, not leave them behind.
func (r *GormRiderProfileRepository) Update(ctx context.Context, aggregate *account.RiderProfile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := profileFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RiderProfileDTO{}).
		Where("rider_id = ?", dto.RiderID).
		Select("*").
		Omit("rider_id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.RiderID(), aggregate)
	return nil
}

// Get retrieves the profile extending the given rider user.
func (r *GormRiderProfileRepository) Get(ctx context.Context, riderID kernel.UUID) (*account.RiderProfile, error) {
	if err := riderID.Validate(); err != nil {
		return nil, err
	}

	var dto RiderProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "rider_id = ?", riderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider_id", riderID.String())
		}
		return nil, err
	}

	return profileToDomain(dto)
}

// GetAllAvailable retrieves profiles of riders currently available for the
// given service type.
func (r *GormRiderProfileRepository) GetAllAvailable(ctx context.Context, serviceType kernel.ServiceType) ([]*account.RiderProfile, error) {
	if err := serviceType.Validate(); err != nil {
		return nil, err
	}

	var dtos []RiderProfileDTO
	err := r.db.WithContext(ctx).
		Order("rider_id").
		Find(&dtos, "is_available AND service_type = ?", serviceType.String()).Error
	if err != nil {
		return nil, err
	}

	profiles := make([]*account.RiderProfile, 0, len(dtos))
	for _, dto := range dtos {
		p, err := profileToDomain(dto)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return profiles, nil
}
