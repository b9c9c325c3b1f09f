// Package sqlite provides the public API for the SQLite board backend.
// This package exposes the factory function for creating SQLite backends
// while keeping implementation details internal.
package sqlite

import (
	"github.com/section308/heartboard/internal/sqlite"
	"github.com/section308/heartboard/pkg/types"
)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	backend := sqlite.NewBackend()
//	err := backend.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".heartboard-data",
//	})
//	defer backend.Detach()
func NewBackend() types.Board {
	return sqlite.NewBackend()
}
