package report

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/formations/internal/domain"
	"github.com/phrazzld/formations/internal/events"
)

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSummary(&buf, domain.Summary{
		ProgramID:            "p-1",
		Name:                 "Kotlin Developer",
		Level:                domain.LevelIntermediate,
		ContentCount:         2,
		TotalDurationMinutes: 210,
		EnrolleeCount:        2,
	})
	require.NoError(t, err)

	want := "=== Program: Kotlin Developer ===\n" +
		"Level: INTERMEDIATE\n" +
		"Contents: 2\n" +
		"Total duration: 210 minutes\n" +
		"Enrollees: 2\n" +
		"=========================\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteRoster(t *testing.T) {
	jhon, err := domain.NewUser("u-1", "Jhon", 25)
	require.NoError(t, err)
	caio, err := domain.NewUser("u-2", "Caio", 30)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteRoster(&buf, []domain.User{jhon, caio}))
	assert.Equal(t, "Jhon (25 years)\nCaio (30 years)\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteRoster(&buf, nil))
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("closed") }

func TestWriteErrors(t *testing.T) {
	user, err := domain.NewUser("u-1", "Jhon", 25)
	require.NoError(t, err)

	assert.Error(t, WriteSummary(failingWriter{}, domain.Summary{}))
	assert.Error(t, WriteRoster(failingWriter{}, []domain.User{user}))
}

func TestNoticeHandler(t *testing.T) {
	program, err := domain.NewProgram("p-1", "Go", domain.LevelBasic)
	require.NoError(t, err)

	var buf bytes.Buffer
	handler := NewNoticeHandler(&buf)
	ctx := context.Background()

	statuses := []domain.EnrollmentStatus{
		domain.EnrollmentEnrolled,
		domain.EnrollmentAlreadyEnrolled,
		domain.EnrollmentCancelled,
		domain.EnrollmentNotFound,
	}
	for _, status := range statuses {
		require.NoError(t, handler.HandleEvent(ctx, events.NewEnrollmentEvent(program, "u-1", "Jhon", status)))
	}

	want := "User Jhon enrolled successfully!\n" +
		"User Jhon is already enrolled.\n" +
		"Enrollment removed successfully.\n" +
		"User not found in program.\n"
	assert.Equal(t, want, buf.String())
}
