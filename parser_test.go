// parser_test.go
package cstart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- helpers ---------------------------------------------------------------

func mustParse(t *testing.T, src string) *Block {
	t.Helper()
	root, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse error: %v\nsource:\n%s", err, src)
	}
	return root
}

func onlyStmt(t *testing.T, src string) Node {
	t.Helper()
	root := mustParse(t, src)
	if len(root.Statements) != 1 {
		t.Fatalf("want 1 statement, got %d\nsource:\n%s\ntree:\n%s",
			len(root.Statements), src, DumpTree(root))
	}
	return root.Statements[0]
}

func mustFailParse(t *testing.T, src string, substr string) *SyntaxError {
	t.Helper()
	root, err := Parse(src)
	if err == nil {
		t.Fatalf("expected parse error containing %q, got tree:\n%s", substr, DumpTree(root))
	}
	se, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %T: %v", err, err)
	}
	if !strings.Contains(se.Msg, substr) {
		t.Fatalf("error %q does not mention %q", se.Msg, substr)
	}
	if root != nil {
		t.Fatalf("partial tree returned alongside error")
	}
	return se
}

func asBinary(t *testing.T, n Node, op string) *BinaryOp {
	t.Helper()
	b, ok := n.(*BinaryOp)
	if !ok {
		t.Fatalf("want *BinaryOp %q, got %T", op, n)
	}
	if b.Op != op {
		t.Fatalf("want operator %q, got %q", op, b.Op)
	}
	return b
}

func numValue(t *testing.T, n Node) float64 {
	t.Helper()
	lit, ok := n.(*NumberLiteral)
	if !ok {
		t.Fatalf("want *NumberLiteral, got %T", n)
	}
	return lit.Value
}

// --- shapes ----------------------------------------------------------------

func Test_Parser_RootIsBlock(t *testing.T) {
	root := mustParse(t, "")
	assert.Empty(t, root.Statements)

	root = mustParse(t, "1; 2; 3")
	assert.Len(t, root.Statements, 3)
}

func Test_Parser_Precedence_MulOverAdd(t *testing.T) {
	// 2 + 3 * 4 => (+ 2 (* 3 4))
	add := asBinary(t, onlyStmt(t, "2 + 3 * 4"), "+")
	assert.Equal(t, float64(2), numValue(t, add.Left))
	mul := asBinary(t, add.Right, "*")
	assert.Equal(t, float64(3), numValue(t, mul.Left))
	assert.Equal(t, float64(4), numValue(t, mul.Right))
}

func Test_Parser_Grouping_ResetsPrecedence(t *testing.T) {
	// (2 + 3) * 4 => (* (+ 2 3) 4)
	mul := asBinary(t, onlyStmt(t, "(2 + 3) * 4"), "*")
	add := asBinary(t, mul.Left, "+")
	assert.Equal(t, float64(2), numValue(t, add.Left))
	assert.Equal(t, float64(4), numValue(t, mul.Right))
}

func Test_Parser_Additive_LeftAssociative(t *testing.T) {
	// 1 - 2 - 3 => (- (- 1 2) 3)
	outer := asBinary(t, onlyStmt(t, "1 - 2 - 3"), "-")
	inner := asBinary(t, outer.Left, "-")
	assert.Equal(t, float64(1), numValue(t, inner.Left))
	assert.Equal(t, float64(3), numValue(t, outer.Right))
}

func Test_Parser_ComparisonBindsLooserThanAdditive(t *testing.T) {
	// 1 + 2 < 4 => (< (+ 1 2) 4)
	cmp, ok := onlyStmt(t, "1 + 2 < 4").(*Comparison)
	if !ok {
		t.Fatalf("want *Comparison root")
	}
	asBinary(t, cmp.Left, "+")
}

func Test_Parser_ChainedComparisons(t *testing.T) {
	// ca < cb < cc => (< (< ca cb) cc), first result feeds the second
	outer, ok := onlyStmt(t, "ca < cb < cc").(*Comparison)
	if !ok {
		t.Fatalf("want *Comparison root")
	}
	inner, ok := outer.Left.(*Comparison)
	if !ok {
		t.Fatalf("want chained left *Comparison, got %T", outer.Left)
	}
	assert.Equal(t, "<", inner.Op)
}

func Test_Parser_AssignmentChain(t *testing.T) {
	// ca = cb = 3 nests through the right-recursive value
	outer, ok := onlyStmt(t, "ca = cb = 3").(*Assignment)
	if !ok {
		t.Fatalf("want *Assignment root")
	}
	assert.Equal(t, "ca", outer.Name)
	inner, ok := outer.Value.(*Assignment)
	if !ok {
		t.Fatalf("want nested *Assignment, got %T", outer.Value)
	}
	assert.Equal(t, "cb", inner.Name)
	assert.Equal(t, float64(3), numValue(t, inner.Value))
}

func Test_Parser_ParenTargetIsNotAssignment(t *testing.T) {
	// assignment needs IDENT '=' at the current position; a
	// parenthesized name is not an lvalue
	mustFailParse(t, "(cx) = 1", "")
}

func Test_Parser_OptionalSemicolon(t *testing.T) {
	assert.Len(t, mustParse(t, "cx = 1").Statements, 1)
	assert.Len(t, mustParse(t, "cx = 1;").Statements, 1)
	assert.Len(t, mustParse(t, "cx = 1; cy = 2").Statements, 2)
}

func Test_Parser_IfElse(t *testing.T) {
	n, ok := onlyStmt(t, "if (cv > 5) { cr = 1; } else { cr = 0; }").(*IfElse)
	if !ok {
		t.Fatalf("want *IfElse")
	}
	assert.NotNil(t, n.Else)

	n, ok = onlyStmt(t, "if (cv > 5) cr = 1;").(*IfElse)
	if !ok {
		t.Fatalf("want *IfElse with bare statement body")
	}
	assert.Nil(t, n.Else)
	_, isAssign := n.Then.(*Assignment)
	assert.True(t, isAssign)
}

func Test_Parser_ForLoop(t *testing.T) {
	n, ok := onlyStmt(t, "for (ci = 0; ci < 5; ci = ci + 1) { cs = cs + ci; }").(*ForLoop)
	if !ok {
		t.Fatalf("want *ForLoop")
	}
	_, isAssign := n.Init.(*Assignment)
	assert.True(t, isAssign)
	_, isCmp := n.Cond.(*Comparison)
	assert.True(t, isCmp)
	_, isBlock := n.Body.(*Block)
	assert.True(t, isBlock)
}

func Test_Parser_NestedBlocks(t *testing.T) {
	n, ok := onlyStmt(t, "{ { cx = 1; } }").(*Block)
	if !ok {
		t.Fatalf("want *Block")
	}
	_, isBlock := n.Statements[0].(*Block)
	assert.True(t, isBlock)
}

// --- structural errors -----------------------------------------------------

func Test_Parser_UnbalancedParen(t *testing.T) {
	mustFailParse(t, "(2 + 3", "')'")
	mustFailParse(t, "cx = (1", "')'")
}

func Test_Parser_UnbalancedBrace(t *testing.T) {
	mustFailParse(t, "{ cx = 1;", "'}'")
}

func Test_Parser_IfHeaderErrors(t *testing.T) {
	mustFailParse(t, "if cv > 5 { }", "'('")
	mustFailParse(t, "if (cv > 5 { }", "')'")
}

func Test_Parser_ForHeaderErrors(t *testing.T) {
	mustFailParse(t, "for (ci = 0 ci < 5; ci = ci + 1) { }", "';'")
	mustFailParse(t, "for (ci = 0; ci < 5 ci = ci + 1) { }", "';'")
	mustFailParse(t, "for (ci = 0; ci < 5; ci = ci + 1 { }", "')'")
}

func Test_Parser_DanglingOperator(t *testing.T) {
	mustFailParse(t, "1 +", "expected a number, identifier or '('")
}

func Test_Parser_ErrorPosition(t *testing.T) {
	se := mustFailParse(t, "cv = 7\nif (cv > 5 ;", "')'")
	assert.Equal(t, 2, se.Line)
	assert.Equal(t, 11, se.Col)
}

func Test_Parser_NestingDepthCapped(t *testing.T) {
	deep := strings.Repeat("(", 300) + "1" + strings.Repeat(")", 300)
	mustFailParse(t, deep, "nesting too deep")
}
