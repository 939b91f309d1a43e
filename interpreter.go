// interpreter.go — tree-walking evaluator and the session environment.
//
// An Interpreter is one scripting session: it owns the single flat
// variable namespace and persists it across EvalSource calls, so a
// hosting driver constructs one Interpreter and feeds it lines for the
// lifetime of the process. There is no lexical scoping — a for-loop's
// induction variable stays visible with its final value after the loop,
// and assignments inside either if branch land in the same namespace.
//
// Everything is synchronous and single-threaded; a for-loop whose
// condition never becomes zero runs until the process is killed.
package cstart

import "fmt"

// Version of the CStart interpreter.
const Version = "1.0.0"

// Value is the result of evaluating a node: either a number or no value
// at all (for-loops, and if without else when the condition is false).
type Value struct {
	Num  float64
	Void bool
}

// NumVal wraps a number into a Value.
func NumVal(n float64) Value { return Value{Num: n} }

// Void is the no-value result.
var Void = Value{Void: true}

// Env is the flat mapping from variable name to numeric value. Entries
// are created or overwritten by Set and never deleted.
type Env struct {
	table map[string]float64
}

// NewEnv creates an empty environment.
func NewEnv() *Env {
	return &Env{table: make(map[string]float64)}
}

// Get retrieves the value bound to name.
func (e *Env) Get(name string) (float64, bool) {
	v, ok := e.table[name]
	return v, ok
}

// Set binds name to v, creating or overwriting the entry.
func (e *Env) Set(name string, v float64) {
	e.table[name] = v
}

// Len reports the number of bound variables.
func (e *Env) Len() int { return len(e.table) }

// Interpreter is the entry point for evaluating CStart programs. Global
// is the session environment; it is mutated only by this Interpreter and
// persists across EvalSource calls.
type Interpreter struct {
	Global *Env
}

// NewInterpreter creates a session with an empty environment.
func NewInterpreter() *Interpreter {
	return &Interpreter{Global: NewEnv()}
}

// EvalSource runs the full pipeline on src: scan, parse, evaluate
// against the session environment. It returns the value of the last
// statement, or the first error from any stage unmodified.
func (ip *Interpreter) EvalSource(src string) (Value, error) {
	root, err := Parse(src)
	if err != nil {
		return Value{}, err
	}
	return ip.Eval(root)
}

// Eval evaluates a single node against the session environment.
func (ip *Interpreter) Eval(n Node) (Value, error) {
	switch node := n.(type) {
	case *NumberLiteral:
		return NumVal(node.Value), nil

	case *Identifier:
		v, ok := ip.Global.Get(node.Name)
		if !ok {
			return Value{}, &UnboundVarError{Line: node.Pos.Line, Col: node.Pos.Col, Name: node.Name}
		}
		return NumVal(v), nil

	case *BinaryOp:
		// left before right; the order matters if operands ever gain
		// side effects
		left, err := ip.Eval(node.Left)
		if err != nil {
			return Value{}, err
		}
		right, err := ip.Eval(node.Right)
		if err != nil {
			return Value{}, err
		}
		switch node.Op {
		case "+":
			return NumVal(left.Num + right.Num), nil
		case "-":
			return NumVal(left.Num - right.Num), nil
		case "*":
			return NumVal(left.Num * right.Num), nil
		case "/":
			// division by zero follows float64 convention (Inf/NaN)
			return NumVal(left.Num / right.Num), nil
		default:
			return Value{}, &UnknownOpError{Line: node.Pos.Line, Col: node.Pos.Col, Op: node.Op}
		}

	case *Comparison:
		left, err := ip.Eval(node.Left)
		if err != nil {
			return Value{}, err
		}
		right, err := ip.Eval(node.Right)
		if err != nil {
			return Value{}, err
		}
		var holds bool
		switch node.Op {
		case "<":
			holds = left.Num < right.Num
		case ">":
			holds = left.Num > right.Num
		default:
			return Value{}, &UnknownOpError{Line: node.Pos.Line, Col: node.Pos.Col, Op: node.Op}
		}
		if holds {
			return NumVal(1), nil
		}
		return NumVal(0), nil

	case *Assignment:
		v, err := ip.Eval(node.Value)
		if err != nil {
			return Value{}, err
		}
		ip.Global.Set(node.Name, v.Num)
		return v, nil

	case *Block:
		last := Void
		for _, stmt := range node.Statements {
			v, err := ip.Eval(stmt)
			if err != nil {
				return Value{}, err
			}
			last = v
		}
		return last, nil

	case *IfElse:
		cond, err := ip.Eval(node.Cond)
		if err != nil {
			return Value{}, err
		}
		if cond.Num != 0 {
			return ip.Eval(node.Then)
		}
		if node.Else != nil {
			return ip.Eval(node.Else)
		}
		return Void, nil

	case *ForLoop:
		if _, err := ip.Eval(node.Init); err != nil {
			return Value{}, err
		}
		for {
			cond, err := ip.Eval(node.Cond)
			if err != nil {
				return Value{}, err
			}
			if cond.Num == 0 {
				return Void, nil
			}
			if _, err := ip.Eval(node.Body); err != nil {
				return Value{}, err
			}
			if _, err := ip.Eval(node.Update); err != nil {
				return Value{}, err
			}
		}

	default:
		return Value{}, fmt.Errorf("internal: unknown node kind %T", n)
	}
}

// ----- errors -----

// UnboundVarError reports a read of a variable never assigned in this
// session.
type UnboundVarError struct {
	Line int
	Col  int
	Name string
}

func (e *UnboundVarError) Error() string {
	return fmt.Sprintf("RUNTIME ERROR at %d:%d: unbound variable: %s", e.Line, e.Col+1, e.Name)
}

// UnknownOpError reports an operator the evaluator does not implement.
// Unreachable through the fixed grammar; kept so future operator tokens
// fail loudly instead of silently evaluating to zero.
type UnknownOpError struct {
	Line int
	Col  int
	Op   string
}

func (e *UnknownOpError) Error() string {
	return fmt.Sprintf("RUNTIME ERROR at %d:%d: unknown operator %q", e.Line, e.Col+1, e.Op)
}
