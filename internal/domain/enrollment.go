package domain

// EnrollmentStatus is the outcome of an enrollment transition.
// None of the outcomes is an error: callers decide how to present them.
type EnrollmentStatus int

// Possible enrollment outcomes
const (
	// EnrollmentEnrolled means the user was added to the roster.
	EnrollmentEnrolled EnrollmentStatus = iota + 1

	// EnrollmentAlreadyEnrolled means a user with the same ID was already on
	// the roster and nothing changed.
	EnrollmentAlreadyEnrolled

	// EnrollmentCancelled means the user was removed from the roster.
	EnrollmentCancelled

	// EnrollmentNotFound means no roster entry had the given user ID.
	EnrollmentNotFound
)

func (s EnrollmentStatus) String() string {
	switch s {
	case EnrollmentEnrolled:
		return "enrolled"
	case EnrollmentAlreadyEnrolled:
		return "already_enrolled"
	case EnrollmentCancelled:
		return "cancelled"
	case EnrollmentNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Changed reports whether the transition mutated the roster.
func (s EnrollmentStatus) Changed() bool {
	return s == EnrollmentEnrolled || s == EnrollmentCancelled
}

// MarshalText encodes the status as its String form.
func (s EnrollmentStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
