package deck

import (
	"errors"
	"fmt"
)

// ErrCollectionNotFound is returned by operations that need an existing
// collection to act on. Rename, delete and card removal are deliberately
// idempotent instead and never return it.
var ErrCollectionNotFound = errors.New("collection not found")

// ValidationError reports a user input field that failed validation. The
// message is produced by the translator, ready for display.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
