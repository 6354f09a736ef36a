package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEducationalContent(t *testing.T) {
	t.Parallel()

	t.Run("default duration", func(t *testing.T) {
		t.Parallel()
		content, err := NewEducationalContent("c-1", "Intro")

		require.NoError(t, err)
		assert.Equal(t, "c-1", content.ID())
		assert.Equal(t, "Intro", content.Name())
		assert.Equal(t, DefaultDurationMinutes, content.DurationMinutes())
	})

	t.Run("explicit duration", func(t *testing.T) {
		t.Parallel()
		content, err := NewEducationalContent("c-1", "OOP", WithDurationMinutes(120))

		require.NoError(t, err)
		assert.Equal(t, 120, content.DurationMinutes())
	})

	testCases := []struct {
		name     string
		id       string
		content  string
		duration int
		wantErr  error
	}{
		{name: "empty id", id: "", content: "Intro", duration: 10, wantErr: ErrEmptyID},
		{name: "blank name", id: "c-1", content: "   ", duration: 10, wantErr: ErrContentNameBlank},
		{name: "zero duration", id: "c-1", content: "Intro", duration: 0, wantErr: ErrContentDurationNotPositive},
		{name: "negative duration", id: "c-1", content: "Intro", duration: -90, wantErr: ErrContentDurationNotPositive},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewEducationalContent(tc.id, tc.content, WithDurationMinutes(tc.duration))

			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestEducationalContentRename(t *testing.T) {
	t.Parallel()

	content, err := NewEducationalContent("c-1", "Intro", WithDurationMinutes(90))
	require.NoError(t, err)

	require.NoError(t, content.Rename("Introduction"))
	assert.Equal(t, "Introduction", content.Name())

	err = content.Rename("  ")
	assert.ErrorIs(t, err, ErrContentNameBlank)
	assert.Equal(t, "Introduction", content.Name(), "a rejected rename must not change the name")
	assert.NoError(t, content.Validate())
}
