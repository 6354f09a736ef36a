package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/formations/internal/domain"
)

// Event types, one per enrollment outcome.
const (
	TypeEnrolled        = "enrollment.enrolled"
	TypeAlreadyEnrolled = "enrollment.already_enrolled"
	TypeCancelled       = "enrollment.cancelled"
	TypeNotFound        = "enrollment.not_found"
)

// EnrollmentEvent records the outcome of a single enrollment transition on a
// program.
type EnrollmentEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is derived from Status, see the Type* constants
	Type string `json:"type"`

	ProgramID   string `json:"program_id"`
	ProgramName string `json:"program_name"`

	// UserName is empty when a cancellation matched no user
	UserID   string `json:"user_id"`
	UserName string `json:"user_name,omitempty"`

	Status domain.EnrollmentStatus `json:"status"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// NewEnrollmentEvent creates an event for the given program, user and outcome.
func NewEnrollmentEvent(program *domain.Program, userID, userName string, status domain.EnrollmentStatus) *EnrollmentEvent {
	return &EnrollmentEvent{
		ID:          uuid.New(),
		Type:        typeFor(status),
		ProgramID:   program.ID(),
		ProgramName: program.Name(),
		UserID:      userID,
		UserName:    userName,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}
}

func typeFor(status domain.EnrollmentStatus) string {
	switch status {
	case domain.EnrollmentEnrolled:
		return TypeEnrolled
	case domain.EnrollmentAlreadyEnrolled:
		return TypeAlreadyEnrolled
	case domain.EnrollmentCancelled:
		return TypeCancelled
	case domain.EnrollmentNotFound:
		return TypeNotFound
	default:
		return "enrollment.unknown"
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *EnrollmentEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *EnrollmentEvent) error
}

// HandlerFunc adapts an ordinary function to the EventHandler interface.
type HandlerFunc func(ctx context.Context, event *EnrollmentEvent) error

// HandleEvent calls f(ctx, event).
func (f HandlerFunc) HandleEvent(ctx context.Context, event *EnrollmentEvent) error {
	return f(ctx, event)
}
