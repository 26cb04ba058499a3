package dashboard

import "errors"

// Both errors come back alongside a valid, empty chart so hosts can render it
// and carry on.
var (
	ErrInvalidSelection = errors.New("invalid site selection")
	ErrInvalidRange     = errors.New("invalid payload range")
)
