package chat

import "errors"

var (
	// ErrMissingText rejects a turn whose text field is absent or blank.
	ErrMissingText = errors.New("text is required")
)
