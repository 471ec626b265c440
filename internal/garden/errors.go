package garden

import "fmt"

// ValidationError indicates the caller supplied an empty or invalid field.
// It is returned before any interaction with the log file, so the log is
// guaranteed unchanged.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PersistenceError indicates the log file could not be read or written.
// After a failed append the in-memory log matches the file again, so the
// caller may retry.
type PersistenceError struct {
	Op  string // "load" or "save"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s log: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
