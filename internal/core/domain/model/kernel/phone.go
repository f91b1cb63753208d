package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"hatid/internal/pkg/errs"
)

// ErrPhoneNumberIsNotConstructed indicates a PhoneNumber zero value that was
// not created via NewPhoneNumber.
var ErrPhoneNumberIsNotConstructed = errs.NewValueIsRequiredError("phone number must be created via NewPhoneNumber")

// Mobile numbers are accepted in two canonical shapes: the local format
// "09XXXXXXXXX" (zero, nine, then nine digits) and the international format
// "+639XXXXXXXXX". Everything else is rejected.
var (
	localPhonePattern         = regexp.MustCompile(`^09\d{9}$`)
	internationalPhonePattern = regexp.MustCompile(`^\+639\d{9}$`)
)

// PhoneNumber is a value object for a Philippine mobile number.
//
// Input is normalized before validation: spaces and dashes are stripped, so
// "0917 123-4567" and "09171234567" are the same number. The value is stored
// in whichever canonical format (local or international) the input used.
//
// Example:
//
//	phone, err := kernel.NewPhoneNumber("+63 917 123 4567")
//	if err != nil {
//	    // not a valid PH mobile number
//	}
//	phone.Local() // "09171234567"
type PhoneNumber struct {
	value string
}

// NewPhoneNumber creates a PhoneNumber from raw input.
// Spaces and dashes are removed before matching; the remainder must match the
// local or international canonical pattern exactly.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	normalized := normalizePhone(raw)
	if !localPhonePattern.MatchString(normalized) && !internationalPhonePattern.MatchString(normalized) {
		return PhoneNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"phone number",
			fmt.Errorf("%q is not a valid PH mobile number", raw),
		)
	}

	return PhoneNumber{value: normalized}, nil
}

// IsValidPhoneNumber reports whether raw is a valid Philippine mobile number
// in either canonical format. Separator characters (spaces, dashes) do not
// affect validity.
func IsValidPhoneNumber(raw string) bool {
	_, err := NewPhoneNumber(raw)
	return err == nil
}

func normalizePhone(raw string) string {
	replacer := strings.NewReplacer(" ", "", "-", "")
	return replacer.Replace(raw)
}

// String returns the normalized number as it was provided (local or
// international format).
func (p PhoneNumber) String() string {
	return p.value
}

// Local returns the number in local format ("09..."), converting from the
// international format if needed.
func (p PhoneNumber) Local() string {
	if strings.HasPrefix(p.value, "+63") {
		return "0" + p.value[3:]
	}
	return p.value
}

// International returns the number in international format ("+639..."),
// converting from the local format if needed.
func (p PhoneNumber) International() string {
	if strings.HasPrefix(p.value, "0") {
		return "+63" + p.value[1:]
	}
	return p.value
}

// IsEqual compares two phone numbers, treating the local and international
// renderings of the same number as equal.
func (p PhoneNumber) IsEqual(other PhoneNumber) bool {
	return p.Local() == other.Local()
}

// Validate returns ErrPhoneNumberIsNotConstructed for zero-value phone numbers.
func (p PhoneNumber) Validate() error {
	if p.value == "" {
		return ErrPhoneNumberIsNotConstructed
	}
	return nil
}
