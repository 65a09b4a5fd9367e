package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemalens/schemalens/pkg/dialects/mssql"
	"github.com/schemalens/schemalens/pkg/dialects/mysql"
	"github.com/schemalens/schemalens/pkg/dialects/postgres"
	"github.com/schemalens/schemalens/pkg/dialects/sqlite"
	"github.com/schemalens/schemalens/pkg/dialects/standard"
	"github.com/schemalens/schemalens/pkg/parser"
	"github.com/schemalens/schemalens/pkg/token"
)

// lexTypes tokenizes the input with the standard dialect and returns the
// token types without the trailing EOF.
func lexTypes(t *testing.T, input string) []token.TokenType {
	t.Helper()
	tokens, err := parser.Tokenize(input, standard.New())
	require.NoError(t, err)
	require.NotEmpty(t, tokens)
	require.Equal(t, token.EOF, tokens[len(tokens)-1].Type)

	types := make([]token.TokenType, 0, len(tokens)-1)
	for _, tok := range tokens[:len(tokens)-1] {
		types = append(types, tok.Type)
	}
	return types
}

func TestLexerKeywords(t *testing.T) {
	types := lexTypes(t, "SELECT FROM WHERE")
	assert.Equal(t, []token.TokenType{token.SELECT, token.FROM, token.WHERE}, types)
}

func TestLexerKeywordsCaseInsensitive(t *testing.T) {
	types := lexTypes(t, "select Select SELECT from From FROM")
	assert.Equal(t, []token.TokenType{
		token.SELECT, token.SELECT, token.SELECT,
		token.FROM, token.FROM, token.FROM,
	}, types)
}

func TestLexerIdentifiers(t *testing.T) {
	tokens, err := parser.Tokenize(`users user_id "quoted table"`, standard.New())
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	assert.Equal(t, token.IDENT, tokens[0].Type)
	assert.Equal(t, "users", tokens[0].Literal)
	assert.Equal(t, token.IDENT, tokens[1].Type)
	assert.Equal(t, "user_id", tokens[1].Literal)
	assert.Equal(t, token.QIDENT, tokens[2].Type)
	assert.Equal(t, "quoted table", tokens[2].Literal)
}

func TestLexerDialectQuoting(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lex   func(*testing.T, string) []token.Token
		want  string
	}{
		{
			name:  "mysql backticks",
			input: "`order table`",
			want:  "order table",
			lex: func(t *testing.T, input string) []token.Token {
				tokens, err := parser.Tokenize(input, mysql.New())
				require.NoError(t, err)
				return tokens
			},
		},
		{
			name:  "mssql brackets",
			input: "[order]",
			want:  "order",
			lex: func(t *testing.T, input string) []token.Token {
				tokens, err := parser.Tokenize(input, mssql.New())
				require.NoError(t, err)
				return tokens
			},
		},
		{
			name:  "ansi double quotes",
			input: `"order"`,
			want:  "order",
			lex: func(t *testing.T, input string) []token.Token {
				tokens, err := parser.Tokenize(input, standard.New())
				require.NoError(t, err)
				return tokens
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := tt.lex(t, tt.input)
			require.Len(t, tokens, 2)
			assert.Equal(t, token.QIDENT, tokens[0].Type)
			assert.Equal(t, tt.want, tokens[0].Literal)
		})
	}
}

func TestLexerBracketIsPunctuationWithoutBracketQuoting(t *testing.T) {
	// The standard dialect does not quote with brackets, so they lex as
	// punctuation.
	types := lexTypes(t, "[ ]")
	assert.Equal(t, []token.TokenType{token.LBRACKET, token.RBRACKET}, types)
}

func TestLexerLiterals(t *testing.T) {
	tokens, err := parser.Tokenize("123 45.67 'hello world' TRUE FALSE NULL", standard.New())
	require.NoError(t, err)
	require.Len(t, tokens, 7)

	assert.Equal(t, token.INT, tokens[0].Type)
	assert.Equal(t, "123", tokens[0].Literal)
	assert.Equal(t, token.FLOAT, tokens[1].Type)
	assert.Equal(t, "45.67", tokens[1].Literal)
	assert.Equal(t, token.STRING, tokens[2].Type)
	assert.Equal(t, "hello world", tokens[2].Literal)
	assert.Equal(t, token.TRUE, tokens[3].Type)
	assert.Equal(t, token.FALSE, tokens[4].Type)
	assert.Equal(t, token.NULL, tokens[5].Type)
}

func TestLexerUnicodeIdentifiers(t *testing.T) {
	tokens, err := parser.Tokenize("SELECT café FROM tâble WHERE n = 'héllo'", standard.New())
	require.NoError(t, err)
	require.Len(t, tokens, 9)

	assert.Equal(t, token.IDENT, tokens[1].Type)
	assert.Equal(t, "café", tokens[1].Literal)
	assert.Equal(t, token.IDENT, tokens[3].Type)
	assert.Equal(t, "tâble", tokens[3].Literal)
	assert.Equal(t, token.STRING, tokens[7].Type)
	assert.Equal(t, "héllo", tokens[7].Literal)
}

func TestLexerUnicodeColumnsCountRunes(t *testing.T) {
	tokens, err := parser.Tokenize("éé = 1", standard.New())
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	assert.Equal(t, token.Position{Line: 1, Column: 1, Offset: 0}, tokens[0].Pos)
	assert.Equal(t, token.Position{Line: 1, Column: 4, Offset: 5}, tokens[1].Pos)
	assert.Equal(t, token.Position{Line: 1, Column: 6, Offset: 7}, tokens[2].Pos)
}

func TestLexerStringEscape(t *testing.T) {
	tokens, err := parser.Tokenize("'it''s'", standard.New())
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.STRING, tokens[0].Type)
	assert.Equal(t, "it's", tokens[0].Literal)
}

func TestLexerTrailingDotFloat(t *testing.T) {
	tokens, err := parser.Tokenize("1.", standard.New())
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.FLOAT, tokens[0].Type)
	assert.Equal(t, "1.", tokens[0].Literal)
}

func TestLexerOperators(t *testing.T) {
	types := lexTypes(t, "= <> != < <= > >= + - * / % || & | ^ ~ << >>")
	assert.Equal(t, []token.TokenType{
		token.EQ, token.NE, token.NE, token.LT, token.LE, token.GT, token.GE,
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT,
		token.DPIPE, token.AMP, token.PIPE, token.CARET, token.TILDE,
		token.LSHIFT, token.RSHIFT,
	}, types)
}

func TestLexerPunctuation(t *testing.T) {
	types := lexTypes(t, "( ) , ; . : :: ? @")
	assert.Equal(t, []token.TokenType{
		token.LPAREN, token.RPAREN, token.COMMA, token.SEMICOLON, token.DOT,
		token.COLON, token.DCOLON, token.QUESTION, token.AT,
	}, types)
}

func TestLexerComments(t *testing.T) {
	types := lexTypes(t, "SELECT -- this is a comment\nFROM /* multi\nline\ncomment */ WHERE")
	assert.Equal(t, []token.TokenType{token.SELECT, token.FROM, token.WHERE}, types)
}

func TestLexerPositionTracking(t *testing.T) {
	tokens, err := parser.Tokenize("SELECT\n  name\nFROM users", standard.New())
	require.NoError(t, err)
	require.Len(t, tokens, 5)

	assert.Equal(t, token.Position{Line: 1, Column: 1, Offset: 0}, tokens[0].Pos)
	assert.Equal(t, token.Position{Line: 2, Column: 3, Offset: 9}, tokens[1].Pos)
	assert.Equal(t, token.Position{Line: 3, Column: 1, Offset: 14}, tokens[2].Pos)
	assert.Equal(t, token.Position{Line: 3, Column: 6, Offset: 19}, tokens[3].Pos)

	for i := 1; i < len(tokens); i++ {
		assert.Greater(t, tokens[i].Pos.Offset, tokens[i-1].Pos.Offset)
	}
}

func TestLexerDialectKeywordSpellings(t *testing.T) {
	tests := []struct {
		name    string
		dialect string
		input   string
		want    token.TokenType
	}{
		{name: "mysql auto_increment", dialect: "mysql", input: "auto_increment", want: token.AUTOINCREMENT},
		{name: "mysql autoincrement is plain ident", dialect: "mysql", input: "autoincrement", want: token.IDENT},
		{name: "sqlite autoincrement", dialect: "sqlite", input: "autoincrement", want: token.AUTOINCREMENT},
		{name: "postgres has no auto increment spelling", dialect: "postgres", input: "auto_increment", want: token.IDENT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokens []token.Token
			var err error
			switch tt.dialect {
			case "mysql":
				tokens, err = parser.Tokenize(tt.input, mysql.New())
			case "sqlite":
				tokens, err = parser.Tokenize(tt.input, sqlite.New())
			case "postgres":
				tokens, err = parser.Tokenize(tt.input, postgres.New())
			}
			require.NoError(t, err)
			require.Len(t, tokens, 2)
			assert.Equal(t, tt.want, tokens[0].Type)
		})
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bare exclamation", input: "SELECT !", want: "unexpected character"},
		{name: "unterminated string", input: "'abc", want: "unterminated string literal"},
		{name: "string broken by newline", input: "'abc\ndef'", want: "unterminated string literal"},
		{name: "unterminated quoted identifier", input: `"abc`, want: "unterminated quoted identifier"},
		{name: "integer overflow", input: "99999999999999999999", want: "invalid number literal"},
		{name: "unknown character", input: "SELECT #", want: "unexpected character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Tokenize(tt.input, standard.New())
			require.Error(t, err)
			var lexErr *parser.LexError
			require.ErrorAs(t, err, &lexErr)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), "lexer error at line")
		})
	}
}
