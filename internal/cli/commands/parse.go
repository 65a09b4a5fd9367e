package commands

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/schemalens/schemalens/internal/cli/config"
	"github.com/schemalens/schemalens/pkg/ast"
	"github.com/schemalens/schemalens/pkg/dialect"
	"github.com/schemalens/schemalens/pkg/parser"
)

// parseResult holds the outcome of parsing one input source.
type parseResult struct {
	Name       string
	Statements []ast.Statement
	Errors     []error
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [files...]",
		Short: "Parse SQL files into syntax trees",
		Long: `Parse one or more SQL files with the configured dialect.

Files are parsed concurrently. With no arguments, SQL is read from stdin.
Table output prints one summary row per statement; json and yaml emit the
full syntax tree.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := config.GetSettings(cmd.Context())
			logger := config.GetLogger(cmd.Context())

			cfg, err := dialect.Get(settings.Dialect)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				sql, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				stmts, errs := parser.Parse(string(sql), cfg)
				return reportResults(cmd, settings.Output, []parseResult{
					{Name: "stdin", Statements: stmts, Errors: errs},
				})
			}

			// Each goroutine writes its own slot, so no locking is needed.
			results := make([]parseResult, len(args))

			eg, _ := errgroup.WithContext(cmd.Context())
			eg.SetLimit(runtime.NumCPU())
			for i, path := range args {
				eg.Go(func() error {
					logger.Debug("parsing file", "path", path, "dialect", cfg.Name)
					sql, err := os.ReadFile(path)
					if err != nil {
						return fmt.Errorf("failed to read %s: %w", path, err)
					}
					stmts, errs := parser.Parse(string(sql), cfg)
					results[i] = parseResult{Name: path, Statements: stmts, Errors: errs}
					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				return err
			}

			return reportResults(cmd, settings.Output, results)
		},
	}
}

// reportResults renders each result and returns an error if any source had
// parse errors.
func reportResults(cmd *cobra.Command, format string, results []parseResult) error {
	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })

	failed := 0
	for _, res := range results {
		if len(res.Errors) > 0 {
			failed++
			printParseErrors(cmd.ErrOrStderr(), res.Name, res.Errors)
		}
		if err := renderStatements(cmd.OutOrStdout(), res.Name, res.Statements, format); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d sources had parse errors", failed, len(results))
	}
	return nil
}
