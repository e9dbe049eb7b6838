package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/pageza/brewfinder/backend/internal/database"
	"github.com/pageza/brewfinder/backend/internal/filter"
	"github.com/pageza/brewfinder/backend/internal/query"
	"github.com/pageza/brewfinder/backend/internal/service"
)

// SearchCommand creates the search command
func SearchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Show how a recipe search query string is interpreted",
		ArgsUsage: "<query string>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "execute",
				Usage: "Run the query against the database and list matching recipes",
				Value: false,
			},
			&cli.BoolFlag{
				Name:  "strict-ranges",
				Usage: "Reject malformed range parameters instead of dropping them",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, log, err := setup(c)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			strict := cfg.Search.StrictRanges || c.Bool("strict-ranges")
			spec, err := PreviewSearch(c.Args().First(), strict, os.Stdout, log)
			if err != nil || !c.Bool("execute") {
				return err
			}

			db, err := database.New(cfg.Database, log)
			if err != nil {
				return err
			}
			defer database.Close(db) //nolint:errcheck

			recipes := service.NewRecipeService(db, service.NewTagService(service.NewTagStore(db)), log)
			result, err := recipes.Search(ctx, spec)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "\n%d matching recipes (page %d, limit %d)\n", result.Total, result.Page, result.Limit)
			for _, r := range result.Recipes {
				fmt.Fprintf(os.Stdout, "  %5d  %s\n", r.ID, r.Title)
			}
			return nil
		},
	}
}

// PreviewSearch validates raw as a search query string, prints the
// normalized query and the resulting store query, and returns the latter.
func PreviewSearch(raw string, strictRanges bool, out io.Writer, log *zap.Logger) (query.Spec, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return query.Spec{}, fmt.Errorf("parsing query string: %w", err)
	}

	f, err := filter.FromQuery(values, filter.Options{StrictRanges: strictRanges, Logger: log})
	if err != nil {
		return query.Spec{}, err
	}

	spec := query.Build(f)
	fmt.Fprintf(out, "normalized: %s\n", filter.Encode(f).Encode())
	fmt.Fprintf(out, "query:      %s\n", spec)
	return spec, nil
}
