package account_test

import (
	"testing"

	"hatid/internal/core/domain/model/account"
	"hatid/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProfile(t *testing.T) *account.RiderProfile {
	t.Helper()
	profile, err := account.NewRiderProfile(kernel.NewUUID(), kernel.ServiceTypeDelivery)
	require.NoError(t, err)
	return profile
}

func TestNewRiderProfile(t *testing.T) {
	t.Run("should start offline, unverified and unavailable", func(t *testing.T) {
		profile := newTestProfile(t)

		require.NoError(t, profile.Validate())
		assert.Equal(t, kernel.ServiceTypeDelivery, profile.ServiceType())
		assert.False(t, profile.IsOnline())
		assert.False(t, profile.IsVerified())
		assert.False(t, profile.IsAvailable())
	})

	t.Run("should reject unknown service type", func(t *testing.T) {
		_, err := account.NewRiderProfile(kernel.NewUUID(), kernel.ServiceTypeUnknown)

		require.Error(t, err)
	})

	t.Run("should reject empty rider id", func(t *testing.T) {
		_, err := account.NewRiderProfile(kernel.UUID{}, kernel.ServiceTypeDelivery)

		require.Error(t, err)
	})
}

func TestRiderProfile_SetAvailable(t *testing.T) {
	t.Run("rejects availability while offline", func(t *testing.T) {
		profile := newTestProfile(t)
		profile.MarkVerified()

		err := profile.SetAvailable(true)

		require.ErrorIs(t, err, account.ErrAvailableWhileOffline)
		assert.False(t, profile.IsAvailable())
	})

	t.Run("rejects availability while unverified", func(t *testing.T) {
		profile := newTestProfile(t)
		profile.GoOnline()

		err := profile.SetAvailable(true)

		require.ErrorIs(t, err, account.ErrAvailableWhileUnverified)
		assert.False(t, profile.IsAvailable())
	})

	t.Run("grants availability when online and verified", func(t *testing.T) {
		profile := newTestProfile(t)
		profile.GoOnline()
		profile.MarkVerified()

		require.NoError(t, profile.SetAvailable(true))
		assert.True(t, profile.IsAvailable())
	})

	t.Run("turning availability off always succeeds", func(t *testing.T) {
		profile := newTestProfile(t)

		require.NoError(t, profile.SetAvailable(false))
		assert.False(t, profile.IsAvailable())
	})
}

func TestRiderProfile_GoOffline(t *testing.T) {
	t.Run("clears availability", func(t *testing.T) {
		profile := newTestProfile(t)
		profile.GoOnline()
		profile.MarkVerified()
		require.NoError(t, profile.SetAvailable(true))

		profile.GoOffline()

		assert.False(t, profile.IsOnline())
		assert.False(t, profile.IsAvailable())
		assert.True(t, profile.IsVerified())
	})

	t.Run("going online again does not restore availability", func(t *testing.T) {
		profile := newTestProfile(t)
		profile.GoOnline()
		profile.MarkVerified()
		require.NoError(t, profile.SetAvailable(true))

		profile.GoOffline()
		profile.GoOnline()

		assert.False(t, profile.IsAvailable())
	})
}

func TestRiderProfile_RevokeVerification(t *testing.T) {
	t.Run("clears availability and blocks re-enabling", func(t *testing.T) {
		profile := newTestProfile(t)
		profile.GoOnline()
		profile.MarkVerified()
		require.NoError(t, profile.SetAvailable(true))

		profile.RevokeVerification()

		assert.False(t, profile.IsAvailable())
		require.ErrorIs(t, profile.SetAvailable(true), account.ErrAvailableWhileUnverified)
	})
}

func TestRestoreRiderProfile(t *testing.T) {
	t.Run("should restore a consistent snapshot", func(t *testing.T) {
		profile, err := account.RestoreRiderProfile(
			kernel.NewUUID(), kernel.ServiceTypePlumbing, true, true, true)

		require.NoError(t, err)
		assert.Equal(t, kernel.ServiceTypePlumbing, profile.ServiceType())
		assert.True(t, profile.IsAvailable())
	})

	t.Run("should reject available while offline", func(t *testing.T) {
		_, err := account.RestoreRiderProfile(
			kernel.NewUUID(), kernel.ServiceTypeDelivery, true, true, false)

		require.ErrorIs(t, err, account.ErrAvailableWhileOffline)
	})

	t.Run("should reject available while unverified", func(t *testing.T) {
		_, err := account.RestoreRiderProfile(
			kernel.NewUUID(), kernel.ServiceTypeDelivery, true, false, true)

		require.ErrorIs(t, err, account.ErrAvailableWhileUnverified)
	})

	t.Run("unavailable snapshots need no other flags", func(t *testing.T) {
		profile, err := account.RestoreRiderProfile(
			kernel.NewUUID(), kernel.ServiceTypeAircon, false, false, false)

		require.NoError(t, err)
		assert.False(t, profile.IsAvailable())
	})
}
