package kernel

import (
	"fmt"

	"hatid/internal/pkg/errs"
)

// ServiceType identifies which kind of service an order requests and which
// kind of work a rider offers. It is fixed at order creation and immutable
// thereafter.
type ServiceType int

const (
	// ServiceTypeUnknown represents an invalid or undefined service type.
	// This value (0) helps catch uninitialized ServiceType values.
	ServiceTypeUnknown ServiceType = iota

	// ServiceTypeDelivery is a package or food delivery request.
	ServiceTypeDelivery

	// ServiceTypePlumbing is a home plumbing service request.
	ServiceTypePlumbing

	// ServiceTypeAircon is an air conditioning service request.
	ServiceTypeAircon

	// ServiceTypeElectrician is an electrical service request.
	ServiceTypeElectrician
)

func getServiceTypeStrings() map[ServiceType]string {
	return map[ServiceType]string{
		ServiceTypeUnknown:     "unknown",
		ServiceTypeDelivery:    "delivery",
		ServiceTypePlumbing:    "plumbing",
		ServiceTypeAircon:      "aircon",
		ServiceTypeElectrician: "electrician",
	}
}

func getValidServiceTypeStrings() map[ServiceType]string {
	//nolint:exhaustive // ServiceTypeUnknown is intentionally excluded as it's invalid
	return map[ServiceType]string{
		ServiceTypeDelivery:    "delivery",
		ServiceTypePlumbing:    "plumbing",
		ServiceTypeAircon:      "aircon",
		ServiceTypeElectrician: "electrician",
	}
}

// ServiceTypeFromString parses a service type from its string form.
// Used when reconstructing entities from persistence or external input.
func ServiceTypeFromString(s string) (ServiceType, error) {
	for serviceType, str := range getValidServiceTypeStrings() {
		if str == s {
			return serviceType, nil
		}
	}
	return ServiceTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"service type is invalid",
		fmt.Errorf("%q is not a valid service type", s),
	)
}

// Validate checks that the ServiceType is one of the defined values.
// ServiceTypeUnknown (0) and any other values are invalid.
func (s ServiceType) Validate() error {
	if _, ok := getValidServiceTypeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"service type is invalid",
			fmt.Errorf("%d is not a valid service type", s),
		)
	}
	return nil
}

// String returns the lowercase name of the service type, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (s ServiceType) String() string {
	if str, ok := getServiceTypeStrings()[s]; ok {
		return str
	}
	return "unknown"
}
