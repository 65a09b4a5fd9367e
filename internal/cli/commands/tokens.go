package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/schemalens/schemalens/internal/cli/config"
	"github.com/schemalens/schemalens/pkg/dialect"
	"github.com/schemalens/schemalens/pkg/parser"
)

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	var sqlArg string

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Dump the token stream of a SQL source",
		Long: `Tokenize a SQL file (or stdin, or the --sql argument) with the
configured dialect and print every token with its position.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := config.GetSettings(cmd.Context())

			cfg, err := dialect.Get(settings.Dialect)
			if err != nil {
				return err
			}

			sql, name, err := readSource(cmd, args, sqlArg)
			if err != nil {
				return err
			}

			tokens, err := parser.Tokenize(sql, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return renderTokens(cmd.OutOrStdout(), tokens, settings.Output)
		},
	}

	cmd.Flags().StringVar(&sqlArg, "sql", "", "SQL text to tokenize instead of a file")
	return cmd
}

// readSource resolves the SQL input: the --sql flag, a file argument, or
// stdin, in that order.
func readSource(cmd *cobra.Command, args []string, sqlArg string) (sql, name string, err error) {
	if sqlArg != "" {
		return sqlArg, "sql", nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), "stdin", nil
}
