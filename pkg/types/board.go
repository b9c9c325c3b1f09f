package types

// Board defines the interface for backend-agnostic board storage.
// Callers attach to a backend, load and save the participant list as a
// whole, and detach when done.
type Board interface {
	// Attach connects the Board to the backend described by config.
	// Creates the DataDir if it does not exist. Returns
	// ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrDetached.
	Detach() error

	// Load returns the stored participant list. found is false when
	// nothing has been stored yet.
	Load() ([]Participant, bool, error)

	// Save replaces the stored participant list.
	Save(list []Participant) error

	// Clear removes the stored participant list.
	Clear() error
}
