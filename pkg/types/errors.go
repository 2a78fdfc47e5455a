package types

import "errors"

// ErrStructural reports a persisted entity mapping that does not match the
// entity's field set: a field is missing, unknown, or of the wrong type.
var ErrStructural = errors.New("structural error")

// Catalog validation errors. Their messages are shown to the user as is.
var (
	ErrMemberNotFound  = errors.New("member not found")
	ErrBookNotFound    = errors.New("book not found")
	ErrBookUnavailable = errors.New("book not available")
	ErrNotBorrowed     = errors.New("not borrowed by this member")
	ErrInvalidQuantity = errors.New("quantity must not be negative")
)

// IsValidation reports whether err is one of the catalog validation errors,
// as opposed to an infrastructure failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMemberNotFound) ||
		errors.Is(err, ErrBookNotFound) ||
		errors.Is(err, ErrBookUnavailable) ||
		errors.Is(err, ErrNotBorrowed) ||
		errors.Is(err, ErrInvalidQuantity)
}
