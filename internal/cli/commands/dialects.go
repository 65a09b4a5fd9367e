package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/schemalens/schemalens/internal/cli/config"
	"github.com/schemalens/schemalens/pkg/dialect"
)

// dialectRow is the serialized form of one dialect for json and yaml output.
type dialectRow struct {
	Name            string `json:"name" yaml:"name"`
	Quoting         string `json:"quoting" yaml:"quoting"`
	AutoIncrement   string `json:"auto_increment,omitempty" yaml:"auto_increment,omitempty"`
	CTEs            bool   `json:"ctes" yaml:"ctes"`
	RecursiveCTEs   bool   `json:"recursive_ctes" yaml:"recursive_ctes"`
	WindowFunctions bool   `json:"window_functions" yaml:"window_functions"`
	Keywords        int    `json:"keywords" yaml:"keywords"`
	DataTypes       int    `json:"data_types" yaml:"data_types"`
}

func describeDialect(cfg *dialect.Config) dialectRow {
	quoting := ""
	for i, pair := range cfg.QuotePairs {
		if i > 0 {
			quoting += " "
		}
		quoting += string(pair.Open) + string(pair.Close)
	}
	autoInc := ""
	if cfg.SupportsAutoIncrement {
		autoInc = cfg.AutoIncrementKeyword
	}
	return dialectRow{
		Name:            cfg.Name,
		Quoting:         quoting,
		AutoIncrement:   autoInc,
		CTEs:            cfg.SupportsCTEs,
		RecursiveCTEs:   cfg.SupportsRecursiveCTEs,
		WindowFunctions: cfg.SupportsWindowFunctions,
		Keywords:        len(cfg.Keywords),
		DataTypes:       len(cfg.DataTypes),
	}
}

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List registered SQL dialects and their features",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings := config.GetSettings(cmd.Context())

			// List returns names and aliases; keep one row per dialect.
			seen := make(map[string]bool)
			var rows []dialectRow
			for _, name := range dialect.List() {
				cfg, err := dialect.Get(name)
				if err != nil {
					return err
				}
				if seen[cfg.Name] {
					continue
				}
				seen[cfg.Name] = true
				rows = append(rows, describeDialect(cfg))
			}

			switch settings.Output {
			case "json":
				return renderJSON(cmd.OutOrStdout(), rows)
			case "yaml":
				return renderYAML(cmd.OutOrStdout(), rows)
			default:
				t := newTable(cmd.OutOrStdout())
				t.AppendHeader(table.Row{
					"Name", "Quoting", "Auto Increment", "CTEs",
					"Recursive CTEs", "Window Functions", "Keywords", "Data Types",
				})
				for _, row := range rows {
					t.AppendRow(table.Row{
						row.Name, row.Quoting, row.AutoIncrement, row.CTEs,
						row.RecursiveCTEs, row.WindowFunctions, row.Keywords, row.DataTypes,
					})
				}
				t.Render()
				return nil
			}
		},
	}
}
