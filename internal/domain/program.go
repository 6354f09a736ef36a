package domain

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// ErrProgramNameBlank is returned when a program is created without a name.
var ErrProgramNameBlank = fmt.Errorf("%w: program name cannot be blank", ErrInvalidArgument)

// Program is the aggregate root of the catalog. It groups educational content
// under a level and keeps the roster of enrolled users.
//
// The roster never holds two users with the same ID. The content list has no
// uniqueness constraint. A Program is safe for concurrent use.
type Program struct {
	id    string
	name  string
	level Level

	mu        sync.Mutex
	contents  []EducationalContent
	enrollees []User
}

// ProgramOption customizes a Program during construction.
type ProgramOption func(*Program)

// WithContents seeds the program with an initial content list, in order.
func WithContents(contents ...EducationalContent) ProgramOption {
	return func(p *Program) {
		p.contents = append(p.contents, contents...)
	}
}

// Summary is a read-only report of a program's current state.
type Summary struct {
	ProgramID            string `json:"program_id"`
	Name                 string `json:"name"`
	Level                Level  `json:"level"`
	ContentCount         int    `json:"content_count"`
	TotalDurationMinutes int    `json:"total_duration_minutes"`
	EnrolleeCount        int    `json:"enrollee_count"`
}

// NewProgram creates an empty Program with a caller-supplied identifier.
// The id, name and level are fixed for the lifetime of the program.
// Returns an error wrapping ErrInvalidArgument if validation fails.
func NewProgram(id, name string, level Level, opts ...ProgramOption) (*Program, error) {
	if id == "" {
		return nil, ErrEmptyID
	}

	if strings.TrimSpace(name) == "" {
		return nil, ErrProgramNameBlank
	}

	if !level.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}

	program := &Program{
		id:    id,
		name:  name,
		level: level,
	}
	for _, opt := range opts {
		opt(program)
	}

	return program, nil
}

// ID returns the program identifier.
func (p *Program) ID() string { return p.id }

// Name returns the program name.
func (p *Program) Name() string { return p.name }

// Level returns the program difficulty level.
func (p *Program) Level() Level { return p.level }

// AddContent appends content to the program. Duplicates are allowed.
func (p *Program) AddContent(content EducationalContent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.contents = append(p.contents, content)
}

// Contents returns a copy of the program's content list in insertion order.
func (p *Program) Contents() []EducationalContent {
	p.mu.Lock()
	defer p.mu.Unlock()

	return slices.Clone(p.contents)
}

// TotalDuration returns the sum of all content durations, in minutes.
func (p *Program) TotalDuration() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.totalDuration()
}

func (p *Program) totalDuration() int {
	total := 0
	for _, c := range p.contents {
		total += c.durationMinutes
	}
	return total
}

// Enroll adds user to the roster unless a user with the same ID is already
// enrolled, in which case the roster is left untouched.
func (p *Program) Enroll(user User) EnrollmentStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.indexOf(user.id) >= 0 {
		return EnrollmentAlreadyEnrolled
	}

	p.enrollees = append(p.enrollees, user)
	return EnrollmentEnrolled
}

// CancelEnrollment removes the user with the given ID from the roster.
func (p *Program) CancelEnrollment(userID string) EnrollmentStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := p.indexOf(userID)
	if i < 0 {
		return EnrollmentNotFound
	}

	p.enrollees = slices.Delete(p.enrollees, i, i+1)
	return EnrollmentCancelled
}

// IsEnrolled reports whether a user with the given ID is on the roster.
func (p *Program) IsEnrolled(userID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.indexOf(userID) >= 0
}

// Enrollees returns a copy of the roster in enrollment order.
func (p *Program) Enrollees() []User {
	p.mu.Lock()
	defer p.mu.Unlock()

	return slices.Clone(p.enrollees)
}

// Summary reports the program's name, level and derived counts.
func (p *Program) Summary() Summary {
	p.mu.Lock()
	defer p.mu.Unlock()

	return Summary{
		ProgramID:            p.id,
		Name:                 p.name,
		Level:                p.level,
		ContentCount:         len(p.contents),
		TotalDurationMinutes: p.totalDuration(),
		EnrolleeCount:        len(p.enrollees),
	}
}

// indexOf must be called with mu held.
func (p *Program) indexOf(userID string) int {
	return slices.IndexFunc(p.enrollees, func(u User) bool {
		return u.id == userID
	})
}
