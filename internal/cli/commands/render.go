package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/schemalens/schemalens/pkg/ast"
	"github.com/schemalens/schemalens/pkg/dialect"
	"github.com/schemalens/schemalens/pkg/token"
)

// DialectNames returns the registered dialect names, for flag completion.
func DialectNames() []string {
	return dialect.List()
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()
	return enc.Encode(v)
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

// statementSummary is the row rendered per parsed statement in table mode.
type statementSummary struct {
	Kind   string `json:"kind" yaml:"kind"`
	Detail string `json:"detail" yaml:"detail"`
}

func summarize(stmt ast.Statement) statementSummary {
	switch s := stmt.(type) {
	case *ast.SelectStmt:
		detail := fmt.Sprintf("%d columns", len(s.Columns))
		if len(s.From) > 0 {
			detail += fmt.Sprintf(", %d table refs", len(s.From))
		}
		if s.With != nil {
			detail += fmt.Sprintf(", %d CTEs", len(s.With.CTEs))
		}
		if len(s.Unions) > 0 {
			detail += fmt.Sprintf(", %d unions", len(s.Unions))
		}
		return statementSummary{Kind: "SELECT", Detail: detail}
	case *ast.InsertStmt:
		detail := "into " + s.Table
		if s.Query != nil {
			detail += " from query"
		} else {
			detail += fmt.Sprintf(", %d rows", len(s.Values))
		}
		return statementSummary{Kind: "INSERT", Detail: detail}
	case *ast.UpdateStmt:
		return statementSummary{
			Kind:   "UPDATE",
			Detail: fmt.Sprintf("%s, %d assignments", s.Table, len(s.Assignments)),
		}
	case *ast.DeleteStmt:
		return statementSummary{Kind: "DELETE", Detail: "from " + s.Table}
	case *ast.CreateTableStmt:
		return statementSummary{
			Kind:   "CREATE TABLE",
			Detail: fmt.Sprintf("%s, %d columns", s.Name, len(s.Columns)),
		}
	case *ast.AlterTableStmt:
		return statementSummary{
			Kind:   "ALTER TABLE",
			Detail: fmt.Sprintf("%s, %d actions", s.Table, len(s.Actions)),
		}
	case *ast.DropTableStmt:
		return statementSummary{Kind: "DROP TABLE", Detail: strings.Join(s.Tables, ", ")}
	case *ast.CreateIndexStmt:
		return statementSummary{
			Kind:   "CREATE INDEX",
			Detail: fmt.Sprintf("%s on %s", s.Name, s.Table),
		}
	case *ast.DropIndexStmt:
		return statementSummary{Kind: "DROP INDEX", Detail: strings.Join(s.Names, ", ")}
	default:
		return statementSummary{Kind: fmt.Sprintf("%T", stmt)}
	}
}

// renderStatements renders parsed statements in the requested format.
// Table mode prints one summary row per statement; json and yaml emit the
// full syntax tree.
func renderStatements(w io.Writer, name string, stmts []ast.Statement, format string) error {
	switch format {
	case "json":
		return renderJSON(w, stmts)
	case "yaml":
		return renderYAML(w, stmts)
	default:
		t := newTable(w)
		t.AppendHeader(table.Row{"#", "Kind", "Detail"})
		for i, stmt := range stmts {
			s := summarize(stmt)
			t.AppendRow(table.Row{i + 1, s.Kind, s.Detail})
		}
		t.Render()
		_, _ = fmt.Fprintf(w, "%s: %d statements\n", name, len(stmts))
		return nil
	}
}

// tokenRow is the serialized form of one token for json and yaml output.
type tokenRow struct {
	Type    string `json:"type" yaml:"type"`
	Literal string `json:"literal" yaml:"literal"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
}

func renderTokens(w io.Writer, tokens []token.Token, format string) error {
	rows := make([]tokenRow, len(tokens))
	for i, tok := range tokens {
		rows[i] = tokenRow{
			Type:    tok.Type.String(),
			Literal: tok.Literal,
			Line:    tok.Pos.Line,
			Column:  tok.Pos.Column,
		}
	}

	switch format {
	case "json":
		return renderJSON(w, rows)
	case "yaml":
		return renderYAML(w, rows)
	default:
		t := newTable(w)
		t.AppendHeader(table.Row{"Type", "Literal", "Line", "Column"})
		for _, row := range rows {
			t.AppendRow(table.Row{row.Type, row.Literal, row.Line, row.Column})
		}
		t.Render()
		return nil
	}
}

// printParseErrors writes each error prefixed with the source name, so
// errors across multiple files stay attributable.
func printParseErrors(w io.Writer, name string, errs []error) {
	for _, err := range errs {
		_, _ = fmt.Fprintf(w, "%s: %v\n", name, err)
	}
}
