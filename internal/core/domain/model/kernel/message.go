package kernel

import (
	"fmt"
	"unicode/utf8"

	"hatid/internal/pkg/errs"
)

// MaxMessageLength caps chat and ticket message bodies, in runes.
const MaxMessageLength = 1000

// ValidateMessageBody checks a message body against the length rule:
// non-empty and at most MaxMessageLength runes.
func ValidateMessageBody(body string) error {
	if body == "" {
		return errs.NewValueIsRequiredError("message body")
	}

	if length := utf8.RuneCountInString(body); length > MaxMessageLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"message body",
			fmt.Errorf("%d runes exceeds the maximum of %d", length, MaxMessageLength),
		)
	}

	return nil
}

// IsValidMessageLength reports whether body satisfies the message length rule.
func IsValidMessageLength(body string) bool {
	return ValidateMessageBody(body) == nil
}
