package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/formations/internal/domain"
)

func TestInMemoryEventEmitter(t *testing.T) {
	// Create a minimal logger that discards output
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("emit event with no handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		event := NewEnrollmentEvent(testProgram(t), "u-1", "Jhon", domain.EnrollmentEnrolled)

		err := emitter.EmitEvent(context.Background(), event)
		assert.NoError(t, err)
	})

	t.Run("emit event with successful handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)

		handler1 := &MockEventHandler{}
		handler2 := &MockEventHandler{}
		emitter.RegisterHandler(handler1)
		emitter.RegisterHandler(handler2)

		event := NewEnrollmentEvent(testProgram(t), "u-1", "Jhon", domain.EnrollmentEnrolled)
		err := emitter.EmitEvent(context.Background(), event)
		assert.NoError(t, err)

		assert.Equal(t, 1, handler1.HandledCount)
		assert.Equal(t, 1, handler2.HandledCount)
		assert.Equal(t, event, handler1.LastEvent)
		assert.Equal(t, event, handler2.LastEvent)
	})

	t.Run("emit event with failing handler", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)

		successHandler := &MockEventHandler{}
		failingHandler := &MockEventHandler{
			HandlerError: errors.New("handler error"),
		}
		emitter.RegisterHandler(failingHandler)
		emitter.RegisterHandler(successHandler)

		event := NewEnrollmentEvent(testProgram(t), "u-1", "Jhon", domain.EnrollmentCancelled)
		err := emitter.EmitEvent(context.Background(), event)
		assert.EqualError(t, err, "handler error")

		// Handlers after the failing one still receive the event
		assert.Equal(t, 1, successHandler.HandledCount)
		assert.Equal(t, 1, failingHandler.HandledCount)
	})
}
