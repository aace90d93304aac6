package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// The store wraps these so handlers can map to HTTP status codes without
// leaking infrastructure details.
var (
	ErrNotFound = errors.New("not found")

	// ErrEmptyInsert means the store reported a successful write but the
	// inserted row could not be read back.
	ErrEmptyInsert = errors.New("no data was inserted")
)
