// ast.go — syntax-tree node types.
//
// The parser builds a closed set of variant nodes; the evaluator only
// reads them. Every program parses to a *Block root. Positions are the
// line/col of the token that introduced the node and feed runtime error
// reporting.
package cstart

// Pos is a source location (1-based line, 0-based column).
type Pos struct {
	Line int
	Col  int
}

// Node is the interface implemented by all syntax-tree nodes.
type Node interface {
	Kind() string
	NodePos() Pos
	node() // sealed marker
}

// NumberLiteral is an unsigned integer literal, held as float64 since
// all CStart arithmetic is floating point.
type NumberLiteral struct {
	Pos   Pos
	Value float64
}

// Identifier is a read of a sentinel-prefixed variable.
type Identifier struct {
	Pos  Pos
	Name string
}

// BinaryOp is one of "+", "-", "*", "/" applied to two operands.
type BinaryOp struct {
	Pos   Pos // position of the operator token
	Op    string
	Left  Node
	Right Node
}

// Comparison is "<" or ">", yielding 1 or 0. Comparisons chain
// left-associatively, so the left operand of a chained comparison may
// itself be a Comparison whose 0/1 result feeds the next one.
type Comparison struct {
	Pos   Pos // position of the comparator token
	Op    string
	Left  Node
	Right Node
}

// Assignment stores the value of Value under Name. The target is always
// a bare identifier; there is no lvalue grammar.
type Assignment struct {
	Pos   Pos // position of the target identifier
	Name  string
	Value Node
}

// Block is an ordered statement sequence. Its value is the value of the
// last statement, or no value when empty.
type Block struct {
	Pos        Pos
	Statements []Node
}

// IfElse evaluates Then when Cond is non-zero, otherwise Else when
// present. Else is nil when no else branch was written.
type IfElse struct {
	Pos  Pos
	Cond Node
	Then Node
	Else Node
}

// ForLoop is a C-style loop: Init once, then Body and Update while Cond
// is non-zero. The three header clauses are expressions, not statements.
type ForLoop struct {
	Pos    Pos
	Init   Node
	Cond   Node
	Update Node
	Body   Node
}

func (n *NumberLiteral) Kind() string { return "NumberLiteral" }
func (n *Identifier) Kind() string    { return "Identifier" }
func (n *BinaryOp) Kind() string      { return "BinaryOp" }
func (n *Comparison) Kind() string    { return "Comparison" }
func (n *Assignment) Kind() string    { return "Assignment" }
func (n *Block) Kind() string         { return "Block" }
func (n *IfElse) Kind() string        { return "IfElse" }
func (n *ForLoop) Kind() string       { return "ForLoop" }

func (n *NumberLiteral) NodePos() Pos { return n.Pos }
func (n *Identifier) NodePos() Pos    { return n.Pos }
func (n *BinaryOp) NodePos() Pos      { return n.Pos }
func (n *Comparison) NodePos() Pos    { return n.Pos }
func (n *Assignment) NodePos() Pos    { return n.Pos }
func (n *Block) NodePos() Pos         { return n.Pos }
func (n *IfElse) NodePos() Pos        { return n.Pos }
func (n *ForLoop) NodePos() Pos       { return n.Pos }

func (n *NumberLiteral) node() {}
func (n *Identifier) node()    {}
func (n *BinaryOp) node()      {}
func (n *Comparison) node()    {}
func (n *Assignment) node()    {}
func (n *Block) node()         {}
func (n *IfElse) node()        {}
func (n *ForLoop) node()       {}
