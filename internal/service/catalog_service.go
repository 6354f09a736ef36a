package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/formations/internal/domain"
	"github.com/phrazzld/formations/internal/events"
	"github.com/phrazzld/formations/internal/idgen"
)

// CatalogService creates catalog entities and runs enrollment transitions.
type CatalogService interface {
	// NewUser creates a user with a freshly generated ID
	NewUser(name string, age int) (domain.User, error)

	// NewContent creates educational content with a freshly generated ID
	NewContent(name string, opts ...domain.ContentOption) (domain.EducationalContent, error)

	// NewProgram creates an empty program with a freshly generated ID
	NewProgram(name string, level domain.Level, opts ...domain.ProgramOption) (*domain.Program, error)

	// Enroll adds the user to the program's roster and reports the outcome.
	// The returned status is always valid; a non-nil error only means the
	// outcome event could not be delivered.
	Enroll(ctx context.Context, program *domain.Program, user domain.User) (domain.EnrollmentStatus, error)

	// CancelEnrollment removes the user from the program's roster and reports
	// the outcome. Errors follow the same rule as Enroll.
	CancelEnrollment(ctx context.Context, program *domain.Program, userID string) (domain.EnrollmentStatus, error)
}

// CatalogServiceImpl implements the CatalogService interface
type CatalogServiceImpl struct {
	ids     idgen.Func
	emitter events.EventEmitter
	logger  *slog.Logger
}

// NewCatalogService creates a new CatalogService.
// ids supplies every entity identifier; emitter receives one event per
// enrollment transition.
func NewCatalogService(ids idgen.Func, emitter events.EventEmitter, logger *slog.Logger) CatalogService {
	return &CatalogServiceImpl{
		ids:     ids,
		emitter: emitter,
		logger:  logger.With("component", "catalog_service"),
	}
}

// NewUser creates a user with a freshly generated ID
func (s *CatalogServiceImpl) NewUser(name string, age int) (domain.User, error) {
	user, err := domain.NewUser(s.ids(), name, age)
	if err != nil {
		s.logger.Debug("rejected user", "error", err, "name", name, "age", age)
		return domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Debug("created user", "user_id", user.ID(), "name", user.Name())
	return user, nil
}

// NewContent creates educational content with a freshly generated ID
func (s *CatalogServiceImpl) NewContent(name string, opts ...domain.ContentOption) (domain.EducationalContent, error) {
	content, err := domain.NewEducationalContent(s.ids(), name, opts...)
	if err != nil {
		s.logger.Debug("rejected content", "error", err, "name", name)
		return domain.EducationalContent{}, fmt.Errorf("failed to create content: %w", err)
	}

	s.logger.Debug("created content",
		"content_id", content.ID(),
		"name", content.Name(),
		"duration_minutes", content.DurationMinutes())
	return content, nil
}

// NewProgram creates an empty program with a freshly generated ID
func (s *CatalogServiceImpl) NewProgram(name string, level domain.Level, opts ...domain.ProgramOption) (*domain.Program, error) {
	program, err := domain.NewProgram(s.ids(), name, level, opts...)
	if err != nil {
		s.logger.Debug("rejected program", "error", err, "name", name, "level", level)
		return nil, fmt.Errorf("failed to create program: %w", err)
	}

	s.logger.Debug("created program",
		"program_id", program.ID(),
		"name", program.Name(),
		"level", program.Level())
	return program, nil
}

// Enroll adds the user to the program's roster and reports the outcome.
func (s *CatalogServiceImpl) Enroll(ctx context.Context, program *domain.Program, user domain.User) (domain.EnrollmentStatus, error) {
	status := program.Enroll(user)

	s.logger.Info("enrollment processed",
		"program_id", program.ID(),
		"user_id", user.ID(),
		"status", status)

	return status, s.emit(ctx, events.NewEnrollmentEvent(program, user.ID(), user.Name(), status))
}

// CancelEnrollment removes the user from the program's roster and reports the outcome.
func (s *CatalogServiceImpl) CancelEnrollment(ctx context.Context, program *domain.Program, userID string) (domain.EnrollmentStatus, error) {
	// Look the name up first so the event can mention who left.
	var userName string
	for _, u := range program.Enrollees() {
		if u.ID() == userID {
			userName = u.Name()
			break
		}
	}

	status := program.CancelEnrollment(userID)

	s.logger.Info("enrollment cancellation processed",
		"program_id", program.ID(),
		"user_id", userID,
		"status", status)

	return status, s.emit(ctx, events.NewEnrollmentEvent(program, userID, userName, status))
}

func (s *CatalogServiceImpl) emit(ctx context.Context, event *events.EnrollmentEvent) error {
	if s.emitter == nil {
		return nil
	}

	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		s.logger.Error("failed to emit enrollment event",
			"error", err,
			"event_id", event.ID,
			"event_type", event.Type)
		return fmt.Errorf("%w: %w", ErrEventDelivery, err)
	}

	return nil
}
