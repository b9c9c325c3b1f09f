package types

import "errors"

// Store operation errors.
var (
	ErrNotFound     = errors.New("participant not found")
	ErrCapacityFull = errors.New("board is at capacity")
	ErrInvalidName  = errors.New("invalid name")
	ErrStoreClosed  = errors.New("store is closed")
)

// Import errors.
var (
	ErrNoNameColumn = errors.New("no name column in header row")
	ErrNoRows       = errors.New("no data rows")
)

// Config validation errors.
var (
	ErrBackendEmpty        = errors.New("backend must not be empty")
	ErrBackendUnknown      = errors.New("unknown backend")
	ErrStorageKeyEmpty     = errors.New("storage key must not be empty")
	ErrPollIntervalInvalid = errors.New("poll interval must be positive")
)

// Backend lifecycle errors.
var (
	ErrAlreadyAttached = errors.New("backend is already attached")
	ErrDetached        = errors.New("backend is detached")
)
