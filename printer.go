// printer.go: parenthesized prefix rendering of the AST.
//
// Used by parser tests to assert tree shape (precedence and associativity are
// directly visible in the output) and by the "ast" CLI verb. The rendering is
// deterministic: same tree, same string.
package lox

import (
	"fmt"
	"strings"
)

// PrintExpr renders an expression as a Lisp-style prefix string, e.g.
// "(* (- 123) (group 45.67))".
func PrintExpr(ex Expr) string {
	switch e := ex.(type) {
	case *LiteralExpr:
		return valueFromLiteral(e.Value).Stringify()
	case *GroupingExpr:
		return parenthesize("group", e.Expression)
	case *UnaryExpr:
		return parenthesize(e.Operator.Lexeme, e.Right)
	case *BinaryExpr:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *LogicalExpr:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *VariableExpr:
		return e.Name.Lexeme
	case *AssignExpr:
		return fmt.Sprintf("(= %s %s)", e.Name.Lexeme, PrintExpr(e.Value))
	default:
		return fmt.Sprintf("<?%T>", ex)
	}
}

// PrintStatement renders a statement, one node per parenthesized group.
// Blocks list their children in order; desugared for-loops render as the
// while form they were rewritten into.
func PrintStatement(st Stmt) string {
	switch s := st.(type) {
	case *ExpressionStmt:
		return fmt.Sprintf("(expr %s)", PrintExpr(s.Expression))
	case *PrintStmt:
		return fmt.Sprintf("(print %s)", PrintExpr(s.Expression))
	case *VarStmt:
		if s.Initializer == nil {
			return fmt.Sprintf("(var %s)", s.Name.Lexeme)
		}
		return fmt.Sprintf("(var %s %s)", s.Name.Lexeme, PrintExpr(s.Initializer))
	case *BlockStmt:
		parts := make([]string, 0, len(s.Statements)+1)
		parts = append(parts, "(block")
		for _, inner := range s.Statements {
			parts = append(parts, PrintStatement(inner))
		}
		return strings.Join(parts, " ") + ")"
	case *IfStmt:
		if s.ElseBranch == nil {
			return fmt.Sprintf("(if %s %s)", PrintExpr(s.Condition), PrintStatement(s.ThenBranch))
		}
		return fmt.Sprintf("(if %s %s %s)",
			PrintExpr(s.Condition), PrintStatement(s.ThenBranch), PrintStatement(s.ElseBranch))
	case *WhileStmt:
		return fmt.Sprintf("(while %s %s)", PrintExpr(s.Condition), PrintStatement(s.Body))
	default:
		return fmt.Sprintf("<?%T>", st)
	}
}

// PrintProgram renders a statement sequence, one line per top-level statement.
func PrintProgram(stmts []Stmt) string {
	var b strings.Builder
	for _, st := range stmts {
		b.WriteString(PrintStatement(st))
		b.WriteByte('\n')
	}
	return b.String()
}

func parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, ex := range exprs {
		b.WriteByte(' ')
		b.WriteString(PrintExpr(ex))
	}
	b.WriteByte(')')
	return b.String()
}
