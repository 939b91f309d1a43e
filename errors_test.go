// errors_test.go
package cstart

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Wrap_SyntaxErrorSnippet(t *testing.T) {
	src := "cval = 7\nif (cval > 5 ;"
	_, err := Parse(src)
	if err == nil {
		t.Fatal("expected parse error")
	}

	wrapped := WrapErrorWithSource(err, src)
	msg := wrapped.Error()

	assert.Contains(t, msg, "SYNTAX ERROR at 2:12")
	assert.Contains(t, msg, "   1 | cval = 7")
	assert.Contains(t, msg, "   2 | if (cval > 5 ;")

	// caret lands under the ';' (column 12)
	var caretLine string
	for _, ln := range strings.Split(msg, "\n") {
		if strings.Contains(ln, "^") {
			caretLine = ln
		}
	}
	if caretLine == "" {
		t.Fatalf("no caret line in:\n%s", msg)
	}
	assert.Equal(t, len("   2 | ")+11, strings.Index(caretLine, "^"))
}

func Test_Wrap_LexErrorSnippet(t *testing.T) {
	src := "cx = @"
	_, err := NewLexer(src).Scan()
	wrapped := WrapErrorWithSource(err, src)
	assert.Contains(t, wrapped.Error(), "LEXICAL ERROR at 1:6")
	assert.Contains(t, wrapped.Error(), "^")
}

func Test_Wrap_InvalidIdentSnippet(t *testing.T) {
	src := "xvar = 1"
	_, err := NewLexer(src).Scan()
	wrapped := WrapErrorWithSource(err, src)
	assert.Contains(t, wrapped.Error(), `invalid identifier "xvar"`)
}

func Test_Wrap_RuntimeErrorSnippet(t *testing.T) {
	src := "cmissing + 1"
	_, err := NewInterpreter().EvalSource(src)
	wrapped := WrapErrorWithSource(err, src)
	assert.Contains(t, wrapped.Error(), "RUNTIME ERROR at 1:1")
	assert.Contains(t, wrapped.Error(), "unbound variable: cmissing")
}

func Test_Wrap_OtherErrorsPassThrough(t *testing.T) {
	err := errors.New("plain")
	assert.Same(t, err, WrapErrorWithSource(err, "whatever"))
}

func Test_Wrap_ClampsOutOfRangePositions(t *testing.T) {
	// should not panic on short or empty sources
	wrapped := WrapErrorWithSource(&SyntaxError{Line: 99, Col: 99, Msg: "boom"}, "cx")
	assert.Contains(t, wrapped.Error(), "boom")

	wrapped = WrapErrorWithSource(&SyntaxError{Line: 1, Col: 0, Msg: "boom"}, "")
	assert.Contains(t, wrapped.Error(), "boom")
}
