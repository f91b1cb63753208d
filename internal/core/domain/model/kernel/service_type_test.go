package kernel_test

import (
	"fmt"
	"testing"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceType_Validate(t *testing.T) {
	t.Run("should validate defined service types", func(t *testing.T) {
		valid := []kernel.ServiceType{
			kernel.ServiceTypeDelivery,
			kernel.ServiceTypePlumbing,
			kernel.ServiceTypeAircon,
			kernel.ServiceTypeElectrician,
		}

		for _, serviceType := range valid {
			t.Run(fmt.Sprintf("should validate %s", serviceType), func(t *testing.T) {
				require.NoError(t, serviceType.Validate())
			})
		}
	})

	t.Run("should reject unknown and out-of-range values", func(t *testing.T) {
		invalid := []kernel.ServiceType{
			kernel.ServiceTypeUnknown,
			kernel.ServiceType(-1),
			kernel.ServiceType(5),
			kernel.ServiceType(100),
		}

		for _, serviceType := range invalid {
			t.Run(fmt.Sprintf("should reject value %d", int(serviceType)), func(t *testing.T) {
				err := serviceType.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestServiceTypeFromString(t *testing.T) {
	t.Run("should round-trip all valid names", func(t *testing.T) {
		for _, name := range []string{"delivery", "plumbing", "aircon", "electrician"} {
			t.Run(fmt.Sprintf("should parse %q", name), func(t *testing.T) {
				serviceType, err := kernel.ServiceTypeFromString(name)

				require.NoError(t, err)
				assert.Equal(t, name, serviceType.String())
			})
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "Delivery", "carpentry", "unknown"} {
			_, err := kernel.ServiceTypeFromString(name)
			require.Error(t, err)
		}
	})
}
