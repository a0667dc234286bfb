package errs

// Error classes. Concrete sentinels across the domain and usecase layers are
// marked with exactly one of these so the transport layer can fall back to a
// status code for anything it does not map explicitly.
var (
	ErrValidation      = New("validation failed")
	ErrConflict        = New("conflict")
	ErrUnauthenticated = New("unauthenticated")
	ErrForbidden       = New("forbidden")
	ErrNotFound        = New("not found")
	ErrTransient       = New("transient failure")
)

// Class builds a sentinel that belongs to the given class.
func Class(msg string, class error) error {
	return Mark(New(msg), class)
}
