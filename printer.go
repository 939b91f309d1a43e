// printer.go — human-readable dumps of values, token streams, and trees.
// Used by the driver binary (REPL output, demo diagnostics) and tests.
package cstart

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatValue renders a Value the way the REPL prints it. Numbers use
// the shortest round-trip form ("10", not "10.000000"); the no-value
// result renders as an empty string so drivers can skip printing it.
func FormatValue(v Value) string {
	if v.Void {
		return ""
	}
	return strconv.FormatFloat(v.Num, 'g', -1, 64)
}

// DumpTokens renders one token per line: position, kind, and lexeme
// (or the numeric value for NUMBER tokens).
func DumpTokens(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		switch tok.Type {
		case EOF:
			fmt.Fprintf(&b, "%3d:%-3d %s\n", tok.Line, tok.Col+1, tok.Type)
		case NUMBER:
			fmt.Fprintf(&b, "%3d:%-3d %-10s %s\n", tok.Line, tok.Col+1, tok.Type,
				strconv.FormatFloat(tok.Num, 'g', -1, 64))
		default:
			fmt.Fprintf(&b, "%3d:%-3d %-10s %q\n", tok.Line, tok.Col+1, tok.Type, tok.Lexeme)
		}
	}
	return b.String()
}

// DumpTree renders a node as an indented tree, two spaces per level.
func DumpTree(n Node) string {
	var b strings.Builder
	dumpNode(&b, n, 0)
	return b.String()
}

func dumpNode(b *strings.Builder, n Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch node := n.(type) {
	case *NumberLiteral:
		fmt.Fprintf(b, "%sNumberLiteral %s\n", indent, strconv.FormatFloat(node.Value, 'g', -1, 64))
	case *Identifier:
		fmt.Fprintf(b, "%sIdentifier %s\n", indent, node.Name)
	case *BinaryOp:
		fmt.Fprintf(b, "%sBinaryOp %q\n", indent, node.Op)
		dumpNode(b, node.Left, depth+1)
		dumpNode(b, node.Right, depth+1)
	case *Comparison:
		fmt.Fprintf(b, "%sComparison %q\n", indent, node.Op)
		dumpNode(b, node.Left, depth+1)
		dumpNode(b, node.Right, depth+1)
	case *Assignment:
		fmt.Fprintf(b, "%sAssignment %s\n", indent, node.Name)
		dumpNode(b, node.Value, depth+1)
	case *Block:
		fmt.Fprintf(b, "%sBlock\n", indent)
		for _, stmt := range node.Statements {
			dumpNode(b, stmt, depth+1)
		}
	case *IfElse:
		fmt.Fprintf(b, "%sIfElse\n", indent)
		dumpNode(b, node.Cond, depth+1)
		dumpNode(b, node.Then, depth+1)
		if node.Else != nil {
			dumpNode(b, node.Else, depth+1)
		}
	case *ForLoop:
		fmt.Fprintf(b, "%sForLoop\n", indent)
		dumpNode(b, node.Init, depth+1)
		dumpNode(b, node.Cond, depth+1)
		dumpNode(b, node.Update, depth+1)
		dumpNode(b, node.Body, depth+1)
	default:
		fmt.Fprintf(b, "%s%T\n", indent, n)
	}
}
