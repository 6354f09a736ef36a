package domain

import (
	"fmt"
	"strings"
)

// DefaultDurationMinutes is the duration given to content created without
// an explicit one.
const DefaultDurationMinutes = 60

// EducationalContent validation errors
var (
	ErrContentNameBlank           = fmt.Errorf("%w: content name cannot be blank", ErrInvalidArgument)
	ErrContentDurationNotPositive = fmt.Errorf("%w: content duration must be greater than zero", ErrInvalidArgument)
)

// EducationalContent is a single unit of study with a duration in minutes.
type EducationalContent struct {
	id              string
	name            string
	durationMinutes int
}

// ContentOption customizes an EducationalContent during construction.
type ContentOption func(*EducationalContent)

// WithDurationMinutes sets the content duration. Without it the content
// lasts DefaultDurationMinutes.
func WithDurationMinutes(minutes int) ContentOption {
	return func(c *EducationalContent) {
		c.durationMinutes = minutes
	}
}

// NewEducationalContent creates content with a caller-supplied identifier.
// Returns an error wrapping ErrInvalidArgument if validation fails.
func NewEducationalContent(id, name string, opts ...ContentOption) (EducationalContent, error) {
	content := EducationalContent{
		id:              id,
		name:            name,
		durationMinutes: DefaultDurationMinutes,
	}
	for _, opt := range opts {
		opt(&content)
	}

	if err := content.Validate(); err != nil {
		return EducationalContent{}, err
	}

	return content, nil
}

// Validate checks if the EducationalContent has valid data.
func (c EducationalContent) Validate() error {
	if c.id == "" {
		return ErrEmptyID
	}

	if strings.TrimSpace(c.name) == "" {
		return ErrContentNameBlank
	}

	if c.durationMinutes <= 0 {
		return ErrContentDurationNotPositive
	}

	return nil
}

// Rename changes the content's display name.
// The content is left unchanged if the new name is blank.
func (c *EducationalContent) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrContentNameBlank
	}

	c.name = name
	return nil
}

// ID returns the content identifier.
func (c EducationalContent) ID() string { return c.id }

// Name returns the content display name.
func (c EducationalContent) Name() string { return c.name }

// DurationMinutes returns how long the content takes, in minutes.
func (c EducationalContent) DurationMinutes() int { return c.durationMinutes }
