// Command brewctl is the operator tool for the recipe catalogue: it seeds
// fixtures and previews how search queries are interpreted.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/pageza/brewfinder/backend/config"
	"github.com/pageza/brewfinder/backend/internal/logger"
)

func main() {
	app := &cli.Command{
		Name:  "brewctl",
		Usage: "Manage the brewfinder recipe catalogue",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
				Value: false,
			},
		},
		Commands: []*cli.Command{
			SeedCommand(),
			SearchCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// setup loads configuration and a logger honouring the --debug flag.
func setup(c *cli.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	level := cfg.LogLevel
	if c.Bool("debug") {
		level = "debug"
	}
	l, err := logger.New(level, true)
	if err != nil {
		return nil, nil, err
	}
	return cfg, l, nil
}
