package shared

import "errors"

// Sentinel errors shared by every feature package. Repositories and services
// wrap these with fmt.Errorf("%w: ...") so handlers can map them uniformly.
var (
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = errors.New("already exists")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)
