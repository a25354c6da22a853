package faktur

import "fmt"

// ValidationError reports a user-correctable input defect: a missing or
// duplicate name, a non-positive weight or price, an empty item list. The
// attempted operation performed no mutation.
type ValidationError struct {
	Field  string // the offending field, e.g. "customer" or "item weight"
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a lookup with a stale index or invoice number.
type NotFoundError struct {
	What string
}

func (e *NotFoundError) Error() string {
	return e.What + " not found"
}

// MalformedSnapshotError reports a backup snapshot that could not be
// recognized at all: the top level does not resolve to the three
// collections, or no invoice survives normalization. The import is rejected
// wholesale and the stored book is left untouched.
type MalformedSnapshotError struct {
	Reason string
}

func (e *MalformedSnapshotError) Error() string {
	return "malformed snapshot: " + e.Reason
}
