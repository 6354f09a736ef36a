package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/formations/internal/config"
	"github.com/phrazzld/formations/internal/domain"
	"github.com/phrazzld/formations/internal/events"
	"github.com/phrazzld/formations/internal/idgen"
	"github.com/phrazzld/formations/internal/report"
	"github.com/phrazzld/formations/internal/service"
)

// application holds the wired components of the demo.
type application struct {
	catalog service.CatalogService
	out     io.Writer
	logger  *slog.Logger
}

// wireApplication builds the id generator, event emitter and catalog service.
// Enrollment notices are printed to out as they happen.
func wireApplication(cfg *config.Config, logger *slog.Logger, out io.Writer) (*application, error) {
	ids, err := idgen.New(cfg.IDs.Strategy, cfg.IDs.Prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to create id generator: %w", err)
	}

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(report.NewNoticeHandler(out))

	return &application{
		catalog: service.NewCatalogService(ids, emitter, logger),
		out:     out,
		logger:  logger,
	}, nil
}

// RunDemo creates a Kotlin program with two contents, enrolls two users and
// prints the summary followed by the roster.
func (a *application) RunDemo(ctx context.Context) error {
	program, err := a.catalog.NewProgram("Kotlin Developer", domain.LevelIntermediate)
	if err != nil {
		return err
	}

	contents := []struct {
		name    string
		minutes int
	}{
		{name: "Introduction to Kotlin", minutes: 90},
		{name: "Object-Oriented Programming", minutes: 120},
	}
	for _, c := range contents {
		content, err := a.catalog.NewContent(c.name, domain.WithDurationMinutes(c.minutes))
		if err != nil {
			return err
		}
		program.AddContent(content)
	}

	users := []struct {
		name string
		age  int
	}{
		{name: "Jhon", age: 25},
		{name: "Caio", age: 30},
	}
	for _, u := range users {
		user, err := a.catalog.NewUser(u.name, u.age)
		if err != nil {
			return err
		}
		if _, err := a.catalog.Enroll(ctx, program, user); err != nil {
			return err
		}
	}

	if err := report.WriteSummary(a.out, program.Summary()); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	if _, err := fmt.Fprintln(a.out, "\nEnrollees:"); err != nil {
		return err
	}
	if err := report.WriteRoster(a.out, program.Enrollees()); err != nil {
		return fmt.Errorf("failed to write roster: %w", err)
	}

	a.logger.Info("demo finished", "program_id", program.ID())
	return nil
}
