// parser.go — recursive-descent parser for CStart.
//
// One parsing function per precedence level, lowest binding at the top:
//
//	program       := statement*
//	statement     := ifStmt | forStmt | blockStmt | exprStmt
//	exprStmt      := expression ';'?
//	expression    := assignment | comparison
//	assignment    := IDENT '=' expression
//	comparison    := additive (('<' | '>') additive)*
//	additive      := multiplicative (('+' | '-') multiplicative)*
//	multiplicative:= factor (('*' | '/') factor)*
//	factor        := NUMBER | IDENT | '(' expression ')'
//	ifStmt        := 'if' '(' expression ')' statement ('else' statement)?
//	forStmt       := 'for' '(' expression ';' expression ';' expression ')' statement
//	blockStmt     := '{' statement* '}'
//
// An expression is parsed as an assignment only when the current token
// is an identifier immediately followed by '='. There is no general
// lvalue grammar: `(cx) = 1` is a syntax error, while `ca = cb = 3`
// works through the right-recursive value of the outer assignment.
//
// Comparators chain left-associatively with no precedence among
// themselves, so `ca < cb < cc` is `(ca < cb) < cc` with the first
// comparison's 0/1 result feeding the second as a number.
//
// There is no error recovery: the first structural mismatch raises a
// *SyntaxError and no partial tree is returned.
package cstart

import "fmt"

// maxDepth caps statement/factor nesting so adversarial input cannot
// grow the call stack without bound.
const maxDepth = 200

// Parser consumes a token slice (EOF-terminated, from Lexer.Scan) and
// produces the program root Block.
type Parser struct {
	tokens []Token
	pos    int
	depth  int
}

// NewParser creates a parser over an EOF-terminated token slice.
func NewParser(tokens []Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != EOF {
		tokens = append(tokens, Token{Type: EOF})
	}
	return &Parser{tokens: tokens}
}

// Parse is a convenience wrapper: tokenize src and parse it to the
// program root.
func Parse(src string) (*Block, error) {
	tokens, err := NewLexer(src).Scan()
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).Program()
}

// Program parses statements up to EOF and returns the root Block.
func (p *Parser) Program() (*Block, error) {
	root := &Block{Pos: tokenPos(p.peek())}
	for p.peek().Type != EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		root.Statements = append(root.Statements, stmt)
	}
	return root, nil
}

// ----- cursor helpers -----

func (p *Parser) peek() Token { return p.tokens[p.pos] }

func (p *Parser) peekAt(n int) Token {
	idx := p.pos + n
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF terminator
	}
	return p.tokens[idx]
}

func (p *Parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Type != EOF {
		p.pos++
	}
	return tok
}

// check reports whether the current token has the given type and, when
// lexeme is non-empty, the given source text.
func (p *Parser) check(tt TokenType, lexeme string) bool {
	tok := p.peek()
	return tok.Type == tt && (lexeme == "" || tok.Lexeme == lexeme)
}

func (p *Parser) checkAt(n int, tt TokenType, lexeme string) bool {
	tok := p.peekAt(n)
	return tok.Type == tt && (lexeme == "" || tok.Lexeme == lexeme)
}

// expect consumes the current token when it matches, or raises a
// SyntaxError naming what was expected.
func (p *Parser) expect(tt TokenType, lexeme string, expected string) (Token, error) {
	if p.check(tt, lexeme) {
		return p.next(), nil
	}
	return Token{}, p.errExpected(expected)
}

func (p *Parser) errExpected(expected string) error {
	tok := p.peek()
	return &SyntaxError{
		Line: tok.Line,
		Col:  tok.Col,
		Msg:  fmt.Sprintf("expected %s, found %s", expected, describeToken(tok)),
	}
}

func describeToken(tok Token) string {
	if tok.Type == EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", tok.Lexeme)
}

func tokenPos(tok Token) Pos { return Pos{Line: tok.Line, Col: tok.Col} }

func (p *Parser) enter() error {
	p.depth++
	if p.depth > maxDepth {
		tok := p.peek()
		return &SyntaxError{Line: tok.Line, Col: tok.Col, Msg: "nesting too deep"}
	}
	return nil
}

func (p *Parser) leave() { p.depth-- }

// ----- statements -----

func (p *Parser) parseStatement() (Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch {
	case p.check(KEYWORD, "if"):
		return p.parseIf()
	case p.check(KEYWORD, "for"):
		return p.parseFor()
	case p.check(BRACE, "{"):
		return p.parseBlock()
	default:
		return p.parseExprStatement()
	}
}

// parseExprStatement parses an expression and consumes one trailing ';'
// when present; the semicolon is optional.
func (p *Parser) parseExprStatement() (Node, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.check(SEMICOLON, "") {
		p.next()
	}
	return expr, nil
}

func (p *Parser) parseIf() (Node, error) {
	ifTok := p.next()
	if _, err := p.expect(PAREN, "(", "'(' after 'if'"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(PAREN, ")", "')' after if condition"); err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	node := &IfElse{Pos: tokenPos(ifTok), Cond: cond, Then: then}
	if p.check(KEYWORD, "else") {
		p.next()
		node.Else, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	return node, nil
}

func (p *Parser) parseFor() (Node, error) {
	forTok := p.next()
	if _, err := p.expect(PAREN, "(", "'(' after 'for'"); err != nil {
		return nil, err
	}
	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON, "", "';' after loop initializer"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON, "", "';' after loop condition"); err != nil {
		return nil, err
	}
	update, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(PAREN, ")", "')' after for clauses"); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ForLoop{Pos: tokenPos(forTok), Init: init, Cond: cond, Update: update, Body: body}, nil
}

func (p *Parser) parseBlock() (Node, error) {
	braceTok := p.next()
	block := &Block{Pos: tokenPos(braceTok)}
	for !p.check(BRACE, "}") {
		if p.peek().Type == EOF {
			return nil, p.errExpected("'}' to close block")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	p.next()
	return block, nil
}

// ----- expressions -----

func (p *Parser) parseExpression() (Node, error) {
	// Assignment only when the current token is IDENT and the very next
	// token is '='. Anything else, including `(cx) = 1`, falls through
	// to the comparison chain and fails there on the stray '='.
	if p.check(IDENT, "") && p.checkAt(1, OPERATOR, "=") {
		return p.parseAssignment()
	}
	return p.parseComparison()
}

func (p *Parser) parseAssignment() (Node, error) {
	target := p.next()
	p.next() // '='
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Assignment{Pos: tokenPos(target), Name: target.Lexeme, Value: value}, nil
}

func (p *Parser) parseComparison() (Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.check(COMPARATOR, "") {
		op := p.next()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &Comparison{Pos: tokenPos(op), Op: op.Lexeme, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAdditive() (Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.check(OPERATOR, "+") || p.check(OPERATOR, "-") {
		op := p.next()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Pos: tokenPos(op), Op: op.Lexeme, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.check(OPERATOR, "*") || p.check(OPERATOR, "/") {
		op := p.next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Pos: tokenPos(op), Op: op.Lexeme, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseFactor() (Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	tok := p.peek()
	switch {
	case tok.Type == NUMBER:
		p.next()
		return &NumberLiteral{Pos: tokenPos(tok), Value: tok.Num}, nil
	case tok.Type == IDENT:
		p.next()
		return &Identifier{Pos: tokenPos(tok), Name: tok.Lexeme}, nil
	case tok.Type == PAREN && tok.Lexeme == "(":
		p.next()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(PAREN, ")", "')' to close group"); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, p.errExpected("a number, identifier or '('")
	}
}

// ----- errors -----

// SyntaxError reports a structural expectation that was not met. Msg
// names the expected construct and the token found instead.
type SyntaxError struct {
	Line int
	Col  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("SYNTAX ERROR at %d:%d: %s", e.Line, e.Col+1, e.Msg)
}
