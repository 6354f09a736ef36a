package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/formations/internal/domain"
)

func testProgram(t *testing.T) *domain.Program {
	t.Helper()
	program, err := domain.NewProgram("p-1", "Go Developer", domain.LevelBasic)
	require.NoError(t, err)
	return program
}

func TestNewEnrollmentEvent(t *testing.T) {
	program := testProgram(t)

	testCases := []struct {
		status   domain.EnrollmentStatus
		wantType string
	}{
		{status: domain.EnrollmentEnrolled, wantType: TypeEnrolled},
		{status: domain.EnrollmentAlreadyEnrolled, wantType: TypeAlreadyEnrolled},
		{status: domain.EnrollmentCancelled, wantType: TypeCancelled},
		{status: domain.EnrollmentNotFound, wantType: TypeNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.wantType, func(t *testing.T) {
			event := NewEnrollmentEvent(program, "u-1", "Jhon", tc.status)

			assert.NotEqual(t, uuid.Nil, event.ID)
			assert.Equal(t, tc.wantType, event.Type)
			assert.Equal(t, "p-1", event.ProgramID)
			assert.Equal(t, "Go Developer", event.ProgramName)
			assert.Equal(t, "u-1", event.UserID)
			assert.Equal(t, "Jhon", event.UserName)
			assert.Equal(t, tc.status, event.Status)
			assert.WithinDuration(t, time.Now(), event.CreatedAt, 2*time.Second)
		})
	}
}

func TestEnrollmentEventJSON(t *testing.T) {
	event := NewEnrollmentEvent(testProgram(t), "u-1", "", domain.EnrollmentNotFound)

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "not_found", decoded["status"])
	assert.Equal(t, TypeNotFound, decoded["type"])
	assert.NotContains(t, decoded, "user_name")
}

// MockEventHandler implements the EventHandler interface for testing
type MockEventHandler struct {
	// The last event received by this handler
	LastEvent *EnrollmentEvent
	// Error to return from HandleEvent
	HandlerError error
	// Count of events handled
	HandledCount int
}

// HandleEvent implements the EventHandler interface
func (h *MockEventHandler) HandleEvent(ctx context.Context, event *EnrollmentEvent) error {
	h.LastEvent = event
	h.HandledCount++
	return h.HandlerError
}

func TestHandlerFunc(t *testing.T) {
	var got *EnrollmentEvent
	handler := HandlerFunc(func(ctx context.Context, event *EnrollmentEvent) error {
		got = event
		return errors.New("boom")
	})

	event := NewEnrollmentEvent(testProgram(t), "u-1", "Jhon", domain.EnrollmentEnrolled)
	err := handler.HandleEvent(context.Background(), event)

	assert.EqualError(t, err, "boom")
	assert.Same(t, event, got)
}
