// lexer.go — tokenizer for CStart source text.
//
// CStart is a tiny C-style language over numbers only. The scanner is a
// single left-to-right pass with maximal munch for digit and word runs;
// there is no backtracking and no error recovery: the first unrecognized
// character aborts the scan. Every user-defined variable name must begin
// with the letter 'c'; words that are not keywords and fail that rule
// are rejected here, not in the parser.
package cstart

import (
	"fmt"
	"strconv"
)

// TokenType represents the kind of token.
type TokenType int

const (
	EOF TokenType = iota

	NUMBER     // unsigned integer literal, e.g. 42
	IDENT      // sentinel-prefixed identifier, e.g. cval
	KEYWORD    // "for", "if", "else"
	OPERATOR   // "+", "-", "*", "/", "="
	COMPARATOR // "<", ">"
	PAREN      // "(", ")"
	BRACE      // "{", "}"
	SEMICOLON  // ";"
)

func (tt TokenType) String() string {
	switch tt {
	case EOF:
		return "EOF"
	case NUMBER:
		return "NUMBER"
	case IDENT:
		return "IDENT"
	case KEYWORD:
		return "KEYWORD"
	case OPERATOR:
		return "OPERATOR"
	case COMPARATOR:
		return "COMPARATOR"
	case PAREN:
		return "PAREN"
	case BRACE:
		return "BRACE"
	case SEMICOLON:
		return "SEMICOLON"
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a lexical token. Num is meaningful only for NUMBER tokens;
// every other kind carries the exact source text in Lexeme.
type Token struct {
	Type   TokenType
	Lexeme string
	Num    float64
	Line   int // 1-based
	Col    int // 0-based column within line
}

// keywords map
var keywords = map[string]bool{
	"for":  true,
	"if":   true,
	"else": true,
}

// Sentinel is the required first letter of every variable name.
const Sentinel = 'c'

// Lexer scans a CStart source string into tokens.
type Lexer struct {
	src    string
	start  int // start index of current token
	cur    int // current index
	line   int // 1-based
	col    int // 0-based column within line
	tokens []Token

	// token start position, captured before scanning each token
	tokStartLine int
	tokStartCol  int
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{
		src:  src,
		line: 1,
		col:  0,
	}
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return ch, true
}

func (l *Lexer) addToken(tt TokenType, num float64) {
	l.tokens = append(l.tokens, Token{
		Type:   tt,
		Lexeme: l.src[l.start:l.cur],
		Num:    num,
		Line:   l.tokStartLine,
		Col:    l.tokStartCol,
	})
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

// Scan tokenizes the whole source. It returns the token slice terminated
// by an EOF token, or the first error encountered; on error no tokens are
// returned.
func (l *Lexer) Scan() ([]Token, error) {
	for !l.isAtEnd() {
		ch, _ := l.peek()
		if isSpace(ch) {
			l.advance()
			continue
		}

		l.start = l.cur
		l.tokStartLine = l.line
		l.tokStartCol = l.col

		switch {
		case isDigit(ch):
			l.scanNumber()
		case isLetter(ch):
			if err := l.scanWord(); err != nil {
				return nil, err
			}
		default:
			l.advance()
			switch ch {
			case '+', '-', '*', '/', '=':
				l.addToken(OPERATOR, 0)
			case '<', '>':
				l.addToken(COMPARATOR, 0)
			case '(', ')':
				l.addToken(PAREN, 0)
			case '{', '}':
				l.addToken(BRACE, 0)
			case ';':
				l.addToken(SEMICOLON, 0)
			default:
				return nil, &LexError{
					Line: l.tokStartLine,
					Col:  l.tokStartCol,
					Msg:  fmt.Sprintf("unexpected character %q", string(ch)),
				}
			}
		}
	}

	l.start = l.cur
	l.tokStartLine = l.line
	l.tokStartCol = l.col
	l.addToken(EOF, 0)
	return l.tokens, nil
}

// scanNumber consumes a maximal digit run. Only unsigned integer forms
// exist in the surface syntax; a '.' after the run is not part of the
// number and fails as an unexpected character on the next iteration.
func (l *Lexer) scanNumber() {
	for {
		ch, ok := l.peek()
		if !ok || !isDigit(ch) {
			break
		}
		l.advance()
	}
	// a pure digit run always parses
	n, _ := strconv.ParseFloat(l.src[l.start:l.cur], 64)
	l.addToken(NUMBER, n)
}

// scanWord consumes a maximal letter/digit run and classifies it as a
// keyword or a sentinel-prefixed identifier.
func (l *Lexer) scanWord() error {
	for {
		ch, ok := l.peek()
		if !ok || !(isLetter(ch) || isDigit(ch)) {
			break
		}
		l.advance()
	}
	word := l.src[l.start:l.cur]
	if keywords[word] {
		l.addToken(KEYWORD, 0)
		return nil
	}
	if word[0] != Sentinel {
		return &InvalidIdentError{
			Line: l.tokStartLine,
			Col:  l.tokStartCol,
			Name: word,
		}
	}
	l.addToken(IDENT, 0)
	return nil
}

// ----- errors -----

// LexError reports the first character that matches no token rule.
type LexError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d:%d: %s", e.Line, e.Col+1, e.Msg)
}

// InvalidIdentError reports a variable name that does not start with the
// sentinel letter.
type InvalidIdentError struct {
	Line int
	Col  int
	Name string
}

func (e *InvalidIdentError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d:%d: invalid identifier %q: variable names must start with %q",
		e.Line, e.Col+1, e.Name, string(Sentinel))
}
