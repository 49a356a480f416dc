package vault

import "errors"

var (
	// ErrInvalidBlob indicates the export container is not valid base64.
	ErrInvalidBlob = errors.New("vault: blob is not valid base64")

	// ErrInvalidSchema indicates a schema definition is malformed (bad
	// chunk id, empty item name, or duplicate entry).
	ErrInvalidSchema = errors.New("vault: invalid schema")
)
