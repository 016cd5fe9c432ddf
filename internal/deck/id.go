package deck

import "github.com/google/uuid"

// NewID returns a unique identifier for collections and cards.
func NewID() string {
	return uuid.NewString()
}
