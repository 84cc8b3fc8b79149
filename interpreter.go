// interpreter.go: tree-walking evaluator.
//
// Statements execute in sequence against an Env chain. Runtime failures —
// operand type mismatches and undefined-variable references — are raised as
// soon as detected and unwind the whole pass: internally they travel as a
// private panic value and are recovered at the Interpret boundary, surfacing
// as a *RuntimeError. Side effects applied by statements before the failure
// stay applied; the Env chain is never rolled back.
//
// The evaluator threads the current Env through call parameters instead of
// mutating a field, so a block's child frame is dropped on any exit path,
// early unwind included.
package lox

import (
	"fmt"
	"io"
	"os"
)

// RuntimeError is an execution-time failure at the offending token.
type RuntimeError struct {
	Token Token
	Msg   string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Msg, e.Token.Line)
}

// rtErr is the private unwind signal carrying a RuntimeError up to Interpret.
type rtErr struct {
	err *RuntimeError
}

func runtimeFail(tok Token, msg string) {
	panic(rtErr{err: &RuntimeError{Token: tok, Msg: msg}})
}

// Interpreter evaluates statements. Globals persists across Interpret calls,
// which is what lets a REPL session accumulate state while each line runs
// independently.
type Interpreter struct {
	Globals *Env
	out     io.Writer
}

// NewInterpreter creates an interpreter with a fresh global environment.
// out receives print output; nil means os.Stdout.
func NewInterpreter(out io.Writer) *Interpreter {
	if out == nil {
		out = os.Stdout
	}
	return &Interpreter{Globals: NewEnv(nil), out: out}
}

// Interpret executes stmts in order against the global environment. On a
// runtime failure it stops immediately — remaining statements do not run —
// and returns the *RuntimeError. Globals keeps whatever was defined or
// assigned before the failure.
func (ip *Interpreter) Interpret(stmts []Stmt) (err error) {
	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(rtErr)
			if !ok {
				panic(r)
			}
			err = sig.err
		}
	}()
	for _, st := range stmts {
		ip.exec(st, ip.Globals)
	}
	return nil
}

// Evaluate evaluates a single expression against the global environment.
// Used by tests and tooling; errors surface the same way as Interpret.
func (ip *Interpreter) Evaluate(expr Expr) (val Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(rtErr)
			if !ok {
				panic(r)
			}
			err = sig.err
		}
	}()
	return ip.eval(expr, ip.Globals), nil
}

/* ===========================
   statements
   =========================== */

func (ip *Interpreter) exec(st Stmt, env *Env) {
	switch s := st.(type) {
	case *ExpressionStmt:
		ip.eval(s.Expression, env)

	case *PrintStmt:
		v := ip.eval(s.Expression, env)
		fmt.Fprintln(ip.out, v.Stringify())

	case *VarStmt:
		v := Nil
		if s.Initializer != nil {
			v = ip.eval(s.Initializer, env)
		}
		env.Define(s.Name.Lexeme, v)

	case *BlockStmt:
		child := NewEnv(env)
		for _, inner := range s.Statements {
			ip.exec(inner, child)
		}

	case *IfStmt:
		if ip.eval(s.Condition, env).Truthy() {
			ip.exec(s.ThenBranch, env)
		} else if s.ElseBranch != nil {
			ip.exec(s.ElseBranch, env)
		}

	case *WhileStmt:
		for ip.eval(s.Condition, env).Truthy() {
			ip.exec(s.Body, env)
		}

	default:
		panic(fmt.Sprintf("unhandled statement %T", st))
	}
}

/* ===========================
   expressions
   =========================== */

func (ip *Interpreter) eval(ex Expr, env *Env) Value {
	switch e := ex.(type) {
	case *LiteralExpr:
		return valueFromLiteral(e.Value)

	case *GroupingExpr:
		return ip.eval(e.Expression, env)

	case *UnaryExpr:
		return ip.evalUnary(e, env)

	case *BinaryExpr:
		return ip.evalBinary(e, env)

	case *LogicalExpr:
		return ip.evalLogical(e, env)

	case *VariableExpr:
		v, err := env.Get(e.Name.Lexeme)
		if err != nil {
			runtimeFail(e.Name, err.Error())
		}
		return v

	case *AssignExpr:
		v := ip.eval(e.Value, env)
		if err := env.Set(e.Name.Lexeme, v); err != nil {
			runtimeFail(e.Name, err.Error())
		}
		return v

	default:
		panic(fmt.Sprintf("unhandled expression %T", ex))
	}
}

func (ip *Interpreter) evalUnary(e *UnaryExpr, env *Env) Value {
	right := ip.eval(e.Right, env)
	switch e.Operator.Type {
	case MINUS:
		if right.Tag != VTNum {
			runtimeFail(e.Operator, "Operand must be a number.")
		}
		return Num(-right.AsNum())
	case BANG:
		return Bool(!right.Truthy())
	}
	panic("unreachable")
}

func (ip *Interpreter) evalBinary(e *BinaryExpr, env *Env) Value {
	left := ip.eval(e.Left, env)
	right := ip.eval(e.Right, env)

	switch e.Operator.Type {
	case PLUS:
		// Overloaded: numeric addition or string concatenation, never mixed.
		if left.Tag == VTNum && right.Tag == VTNum {
			return Num(left.AsNum() + right.AsNum())
		}
		if left.Tag == VTStr && right.Tag == VTStr {
			return Str(left.AsStr() + right.AsStr())
		}
		runtimeFail(e.Operator, "Operands must be two numbers or two strings.")

	case MINUS:
		a, b := ip.numberOperands(e.Operator, left, right)
		return Num(a - b)
	case STAR:
		a, b := ip.numberOperands(e.Operator, left, right)
		return Num(a * b)
	case SLASH:
		a, b := ip.numberOperands(e.Operator, left, right)
		return Num(a / b)

	case GREATER:
		a, b := ip.numberOperands(e.Operator, left, right)
		return Bool(a > b)
	case GREATER_EQUAL:
		a, b := ip.numberOperands(e.Operator, left, right)
		return Bool(a >= b)
	case LESS:
		a, b := ip.numberOperands(e.Operator, left, right)
		return Bool(a < b)
	case LESS_EQUAL:
		a, b := ip.numberOperands(e.Operator, left, right)
		return Bool(a <= b)

	case EQUAL_EQUAL:
		return Bool(left.Equal(right))
	case BANG_EQUAL:
		return Bool(!left.Equal(right))
	}
	panic("unreachable")
}

// evalLogical short-circuits and returns one of the two original operand
// values, not a coerced boolean.
func (ip *Interpreter) evalLogical(e *LogicalExpr, env *Env) Value {
	left := ip.eval(e.Left, env)

	if e.Operator.Type == OR {
		if left.Truthy() {
			return left
		}
	} else {
		if !left.Truthy() {
			return left
		}
	}
	return ip.eval(e.Right, env)
}

func (ip *Interpreter) numberOperands(op Token, left, right Value) (float64, float64) {
	if left.Tag != VTNum || right.Tag != VTNum {
		runtimeFail(op, "Operands must be numbers.")
	}
	return left.AsNum(), right.AsNum()
}
