package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/schemalens/schemalens/pkg/dialect"
	"github.com/schemalens/schemalens/pkg/token"
)

// Lexer tokenizes SQL input for a given dialect. The dialect drives quoted
// identifier delimiters and dialect-specific keyword spellings; everything
// else is shared across dialects. Input is UTF-8; identifiers may contain
// any Unicode letter.
type Lexer struct {
	input   string
	pos     int  // byte offset of the current rune
	readPos int  // byte offset after the current rune
	ch      rune // current rune under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based, counted in runes)

	dialect *dialect.Config
}

// NewLexer creates a new Lexer for the given input and dialect.
func NewLexer(input string, cfg *dialect.Config) *Lexer {
	l := &Lexer{
		input:   input,
		line:    1,
		col:     0,
		dialect: cfg,
	}
	l.readChar()
	return l
}

// readChar advances to the next rune. Invalid UTF-8 decodes to
// utf8.RuneError, which no token class accepts, so it surfaces as an
// unexpected-character error.
func (l *Lexer) readChar() {
	l.pos = l.readPos
	if l.readPos >= len(l.input) {
		l.ch = 0 // NUL = EOF
		l.readPos++
	} else {
		r, width := utf8.DecodeRuneInString(l.input[l.readPos:])
		l.ch = r
		l.readPos += width
	}

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next rune without advancing.
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// NextToken returns the next token, or a LexError for malformed input.
// At end of input it returns an EOF token.
func (l *Lexer) NextToken() (token.Token, error) {
	l.skipWhitespaceAndComments()

	pos := l.currentPos()

	var tok token.Token
	tok.Pos = pos

	switch l.ch {
	case 0:
		tok.Type = token.EOF
		tok.Literal = ""
		return tok, nil
	case '+':
		tok = l.newToken(token.PLUS, "+")
	case '-':
		tok = l.newToken(token.MINUS, "-")
	case '*':
		tok = l.newToken(token.STAR, "*")
	case '/':
		tok = l.newToken(token.SLASH, "/")
	case '%':
		tok = l.newToken(token.PERCENT, "%")
	case '&':
		tok = l.newToken(token.AMP, "&")
	case '^':
		tok = l.newToken(token.CARET, "^")
	case '~':
		tok = l.newToken(token.TILDE, "~")
	case '=':
		tok = l.newToken(token.EQ, "=")
	case '<':
		switch l.peekChar() {
		case '=':
			l.readChar()
			tok = token.Token{Type: token.LE, Literal: "<=", Pos: pos}
		case '>':
			l.readChar()
			tok = token.Token{Type: token.NE, Literal: "<>", Pos: pos}
		case '<':
			l.readChar()
			tok = token.Token{Type: token.LSHIFT, Literal: "<<", Pos: pos}
		default:
			tok = l.newToken(token.LT, "<")
		}
	case '>':
		switch l.peekChar() {
		case '=':
			l.readChar()
			tok = token.Token{Type: token.GE, Literal: ">=", Pos: pos}
		case '>':
			l.readChar()
			tok = token.Token{Type: token.RSHIFT, Literal: ">>", Pos: pos}
		default:
			tok = l.newToken(token.GT, ">")
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.NE, Literal: "!=", Pos: pos}
		} else {
			return token.Token{}, &LexError{Pos: pos, Message: fmt.Sprintf(ErrUnexpectedChar, string(l.ch))}
		}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			tok = token.Token{Type: token.DPIPE, Literal: "||", Pos: pos}
		} else {
			tok = l.newToken(token.PIPE, "|")
		}
	case ':':
		if l.peekChar() == ':' {
			l.readChar()
			tok = token.Token{Type: token.DCOLON, Literal: "::", Pos: pos}
		} else {
			tok = l.newToken(token.COLON, ":")
		}
	case '.':
		tok = l.newToken(token.DOT, ".")
	case ',':
		tok = l.newToken(token.COMMA, ",")
	case ';':
		tok = l.newToken(token.SEMICOLON, ";")
	case '?':
		tok = l.newToken(token.QUESTION, "?")
	case '@':
		tok = l.newToken(token.AT, "@")
	case '(':
		tok = l.newToken(token.LPAREN, "(")
	case ')':
		tok = l.newToken(token.RPAREN, ")")
	case ']':
		tok = l.newToken(token.RBRACKET, "]")
	case '\'':
		lit, err := l.readString()
		if err != nil {
			return token.Token{}, err
		}
		return token.Token{Type: token.STRING, Literal: lit, Pos: pos}, nil
	default:
		// Quoted identifiers use dialect-specific delimiters, so '"', '`'
		// and '[' route through the dialect's quote pairs.
		if closing, ok := l.closeQuote(l.ch); ok {
			lit, err := l.readQuotedIdentifier(closing)
			if err != nil {
				return token.Token{}, err
			}
			return token.Token{Type: token.QIDENT, Literal: lit, Pos: pos}, nil
		}
		if l.ch == '[' {
			tok = l.newToken(token.LBRACKET, "[")
			break
		}
		switch {
		case isLetter(l.ch) || l.ch == '_':
			tok.Literal = l.readIdentifier()
			lowerIdent := strings.ToLower(tok.Literal)
			tok.Type = token.IDENT
			// Dialect keyword spellings win over the core keyword table.
			if l.dialect != nil {
				if t, ok := l.dialect.KeywordToken(lowerIdent); ok {
					tok.Type = t
				}
			}
			if tok.Type == token.IDENT {
				tok.Type = token.LookupIdent(lowerIdent)
			}
			tok.Pos = pos
			return tok, nil
		case isDigit(l.ch):
			lit, typ, err := l.readNumber(pos)
			if err != nil {
				return token.Token{}, err
			}
			return token.Token{Type: typ, Literal: lit, Pos: pos}, nil
		default:
			return token.Token{}, &LexError{Pos: pos, Message: fmt.Sprintf(ErrUnexpectedChar, string(l.ch))}
		}
	}

	l.readChar()
	return tok, nil
}

// closeQuote resolves an identifier quote delimiter through the dialect.
// Without a dialect only ANSI double quotes are recognized. Quote
// delimiters are ASCII in every dialect.
func (l *Lexer) closeQuote(open rune) (rune, bool) {
	if open >= utf8.RuneSelf {
		return 0, false
	}
	if l.dialect != nil {
		closing, ok := l.dialect.CloseQuote(byte(open))
		return rune(closing), ok
	}
	if open == '"' {
		return '"', true
	}
	return 0, false
}

// newToken creates a new token at the current position.
func (l *Lexer) newToken(tokenType token.TokenType, literal string) token.Token {
	return token.Token{Type: tokenType, Literal: literal, Pos: l.currentPos()}
}

// skipWhitespaceAndComments skips whitespace, line comments (-- ...) and
// block comments (/* ... */).
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.readChar()
		}

		if l.ch == '-' && l.peekChar() == '-' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}

		if l.ch == '/' && l.peekChar() == '*' {
			l.readChar() // skip '/'
			l.readChar() // skip '*'
			for l.ch != 0 {
				if l.ch == '*' && l.peekChar() == '/' {
					l.readChar() // skip '*'
					l.readChar() // skip '/'
					break
				}
				l.readChar()
			}
			continue
		}

		break
	}
}

// readString reads a single-quoted string literal. A doubled quote
// escapes itself.
func (l *Lexer) readString() (string, error) {
	l.readChar() // skip opening quote

	var result strings.Builder
	for {
		switch l.ch {
		case 0, '\n', '\r':
			return "", &LexError{Pos: l.currentPos(), Message: ErrUnterminatedString}
		case '\'':
			if l.peekChar() == '\'' {
				result.WriteRune('\'')
				l.readChar() // skip first quote
				l.readChar() // skip second quote
			} else {
				l.readChar() // skip closing quote
				return result.String(), nil
			}
		default:
			result.WriteRune(l.ch)
			l.readChar()
		}
	}
}

// readQuotedIdentifier reads a quoted identifier up to the given closing
// delimiter. A doubled closing delimiter escapes itself.
func (l *Lexer) readQuotedIdentifier(closing rune) (string, error) {
	l.readChar() // skip opening quote

	var result strings.Builder
	for {
		switch l.ch {
		case 0, '\n', '\r':
			return "", &LexError{Pos: l.currentPos(), Message: ErrUnterminatedQuote}
		case closing:
			if l.peekChar() == closing {
				result.WriteRune(closing)
				l.readChar() // skip first delimiter
				l.readChar() // skip second delimiter
			} else {
				l.readChar() // skip closing delimiter
				return result.String(), nil
			}
		default:
			result.WriteRune(l.ch)
			l.readChar()
		}
	}
}

// readIdentifier reads an unquoted identifier.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readNumber reads a numeric literal: digits with at most one decimal
// point. A decimal point makes it a float.
func (l *Lexer) readNumber(pos token.Position) (string, token.TokenType, error) {
	start := l.pos
	hasDot := false

	for isDigit(l.ch) || (l.ch == '.' && !hasDot) {
		if l.ch == '.' {
			hasDot = true
		}
		l.readChar()
	}

	text := l.input[start:l.pos]
	if hasDot {
		if _, err := strconv.ParseFloat(text, 64); err != nil {
			return "", token.ILLEGAL, &LexError{Pos: pos, Message: fmt.Sprintf(ErrInvalidNumber, text)}
		}
		return text, token.FLOAT, nil
	}
	if _, err := strconv.ParseInt(text, 10, 64); err != nil {
		return "", token.ILLEGAL, &LexError{Pos: pos, Message: fmt.Sprintf(ErrInvalidNumber, text)}
	}
	return text, token.INT, nil
}

// isLetter returns true if ch is a Unicode letter.
func isLetter(ch rune) bool {
	return unicode.IsLetter(ch)
}

// isDigit returns true if ch is an ASCII digit.
func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize returns all tokens from the input, ending with an EOF token.
// Lexing stops at the first malformed token.
func Tokenize(input string, cfg *dialect.Config) ([]token.Token, error) {
	l := NewLexer(input, cfg)
	var tokens []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}
