package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/schemalens/schemalens/internal/cli/config"
	"github.com/schemalens/schemalens/pkg/dialect"
	"github.com/schemalens/schemalens/pkg/parser"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive SQL parsing shell",
		Long: `Start an interactive shell that parses SQL as you type.

Statements are buffered until a terminating semicolon, then parsed with
the active dialect. Type .help for the available dot-commands.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings := config.GetSettings(cmd.Context())
			cfg, err := dialect.Get(settings.Dialect)
			if err != nil {
				return err
			}
			return runREPL(cmd, cfg, settings.Output)
		},
	}
}

func runREPL(cmd *cobra.Command, cfg *dialect.Config, format string) error {
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".schemalens_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "schemalens> ",
		HistoryFile:     historyFile,
		AutoComplete:    replCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "schemalens REPL (dialect: %s)\n", cfg.Name)
	_, _ = fmt.Fprintln(out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(out)

	var buffer strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buffer.Reset()
			rl.SetPrompt("schemalens> ")
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if buffer.Len() == 0 && strings.HasPrefix(line, ".") {
			quit, newCfg := handleDotCommand(cmd, cfg, line, format)
			if quit {
				break
			}
			cfg = newCfg
			continue
		}

		// Accumulate multi-line SQL until semicolon
		buffer.WriteString(line)
		if !strings.HasSuffix(line, ";") {
			buffer.WriteString(" ")
			rl.SetPrompt("       ...> ")
			continue
		}
		rl.SetPrompt("schemalens> ")

		sql := buffer.String()
		buffer.Reset()

		stmts, errs := parser.Parse(sql, cfg)
		if len(errs) > 0 {
			printParseErrors(cmd.ErrOrStderr(), "repl", errs)
		}
		if len(stmts) > 0 {
			if err := renderStatements(out, "repl", stmts, format); err != nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}
		}
		_, _ = fmt.Fprintln(out)
	}

	return nil
}

// handleDotCommand processes a dot-command. It returns whether the REPL
// should exit and the (possibly switched) active dialect.
func handleDotCommand(cmd *cobra.Command, cfg *dialect.Config, line, format string) (bool, *dialect.Config) {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true, cfg

	case ".help":
		printREPLHelp(cmd.OutOrStdout())

	case ".dialect":
		if len(parts) < 2 {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Active dialect: %s\n", cfg.Name)
			return false, cfg
		}
		next, err := dialect.Get(parts[1])
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return false, cfg
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Switched to dialect: %s\n", next.Name)
		return false, next

	case ".tokens":
		if len(parts) < 2 {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Usage: .tokens <sql>")
			return false, cfg
		}
		sql := strings.TrimPrefix(line, parts[0])
		tokens, err := parser.Tokenize(strings.TrimSpace(sql), cfg)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return false, cfg
		}
		if err := renderTokens(cmd.OutOrStdout(), tokens, format); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}

	case ".clear":
		fmt.Print("\033[H\033[2J")

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s (type .help for commands)\n", command)
	}
	return false, cfg
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help            Show this help message
  .dialect [name]  Show or switch the active dialect
  .tokens <sql>    Show the token stream of a SQL snippet
  .clear           Clear the screen
  .quit / .exit    Exit the REPL

Tips:
  - SQL statements must end with a semicolon (;)
  - Use arrow keys to navigate history
`
	_, _ = fmt.Fprintln(w, help)
}

// replCompleter completes dot-commands and registered dialect names.
func replCompleter() *readline.PrefixCompleter {
	var dialectItems []readline.PrefixCompleterInterface
	for _, name := range dialect.List() {
		dialectItems = append(dialectItems, readline.PcItem(name))
	}

	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".dialect", dialectItems...),
		readline.PcItem(".tokens"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
