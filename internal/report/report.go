// Package report renders catalog views for a console.
package report

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/phrazzld/formations/internal/domain"
	"github.com/phrazzld/formations/internal/events"
)

const rule = "========================="

// WriteSummary writes the program summary block.
func WriteSummary(w io.Writer, s domain.Summary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Program: %s ===\n", s.Name)
	fmt.Fprintf(&b, "Level: %s\n", s.Level)
	fmt.Fprintf(&b, "Contents: %d\n", s.ContentCount)
	fmt.Fprintf(&b, "Total duration: %d minutes\n", s.TotalDurationMinutes)
	fmt.Fprintf(&b, "Enrollees: %d\n", s.EnrolleeCount)
	b.WriteString(rule + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteRoster writes one line per user, in the order given.
func WriteRoster(w io.Writer, users []domain.User) error {
	for _, u := range users {
		if _, err := fmt.Fprintf(w, "%s (%d years)\n", u.Name(), u.Age()); err != nil {
			return err
		}
	}
	return nil
}

// Notice turns an enrollment outcome into a one-line message for the user.
func Notice(e *events.EnrollmentEvent) string {
	switch e.Status {
	case domain.EnrollmentEnrolled:
		return fmt.Sprintf("User %s enrolled successfully!", e.UserName)
	case domain.EnrollmentAlreadyEnrolled:
		return fmt.Sprintf("User %s is already enrolled.", e.UserName)
	case domain.EnrollmentCancelled:
		return "Enrollment removed successfully."
	case domain.EnrollmentNotFound:
		return "User not found in program."
	default:
		return fmt.Sprintf("Unknown enrollment outcome for user %s.", e.UserID)
	}
}

// NoticeHandler is an events.EventHandler that prints a Notice for every
// enrollment event it receives.
type NoticeHandler struct {
	mu sync.Mutex
	w  io.Writer
}

// NewNoticeHandler creates a NoticeHandler writing to w.
func NewNoticeHandler(w io.Writer) *NoticeHandler {
	return &NoticeHandler{w: w}
}

// HandleEvent implements events.EventHandler.
func (h *NoticeHandler) HandleEvent(ctx context.Context, event *events.EnrollmentEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := fmt.Fprintln(h.w, Notice(event))
	return err
}
