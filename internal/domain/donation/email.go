package donation

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// emailPattern is the email-shape predicate: a local part of ASCII letters,
// digits and ._%+-, then dot-separated domain labels ending in a TLD of at
// least two letters.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@([A-Za-z0-9-]+\.)+[A-Za-z]{2,}$`)

// EmailRule is the ozzo-validation rule form of the email predicate, for
// struct validation in inbound adapters. Like other ozzo rules it skips
// empty values; pair it with validation.Required.
var EmailRule = validation.Match(emailPattern).Error("must be a valid email address")

// ValidateEmail reports whether raw satisfies the email predicate. The empty
// string is invalid.
func ValidateEmail(raw string) bool {
	return validation.Validate(raw, validation.Required, EmailRule) == nil
}
