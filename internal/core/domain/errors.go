package domain

import "errors"

// Sentinel errors raised by the core services. Adapters classify them
// with errors.Is and never depend on the wrapping message.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource already exists")
	ErrUnauthorized = errors.New("invalid credentials")
)
