// Package main implements the formations demo driver: it builds a program,
// adds content, enrolls users and prints the resulting summary and roster.
package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/phrazzld/formations/internal/config"
	"github.com/phrazzld/formations/internal/platform/logger"
)

func main() {
	if err := newCLI(os.Stdout).Run(os.Args); err != nil {
		log.Fatalf("formations: %v", err)
	}
}

func newCLI(out io.Writer) *cli.App {
	return &cli.App{
		Name:  "formations",
		Usage: "run the training catalog demo scenario",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				EnvVars: []string{config.EnvPrefix + "_CONFIG"},
				Usage:   "configuration file to use instead of the default search paths",
			},
		},
		Writer: out,
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c.String("config"))
			if err != nil {
				return err
			}

			app, err := newApplication(cfg, c.App.Writer)
			if err != nil {
				return err
			}

			return app.RunDemo(c.Context)
		},
	}
}

func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// newApplication sets up logging from cfg and wires the application.
func newApplication(cfg *config.Config, out io.Writer) (*application, error) {
	l, err := logger.Setup(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Debug("configuration loaded",
		"log_level", cfg.Log.Level,
		"id_strategy", cfg.IDs.Strategy)

	return wireApplication(cfg, l, out)
}
