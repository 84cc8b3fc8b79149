// printer_test.go
package lox

import "testing"

func Test_Printer_Expression_Shapes(t *testing.T) {
	// Built by hand so the printer is tested independently of the parser.
	expr := &BinaryExpr{
		Left: &UnaryExpr{
			Operator: Token{Type: MINUS, Lexeme: "-"},
			Right:    &LiteralExpr{Value: 123.0},
		},
		Operator: Token{Type: STAR, Lexeme: "*"},
		Right:    &GroupingExpr{Expression: &LiteralExpr{Value: 45.67}},
	}
	if got := PrintExpr(expr); got != "(* (- 123) (group 45.67))" {
		t.Fatalf("got %s", got)
	}
}

func Test_Printer_Literals(t *testing.T) {
	cases := []struct {
		lit  any
		want string
	}{
		{nil, "nil"},
		{true, "true"},
		{false, "false"},
		{7.0, "7"},
		{2.5, "2.5"},
		{"s", "s"},
	}
	for _, c := range cases {
		if got := PrintExpr(&LiteralExpr{Value: c.lit}); got != c.want {
			t.Fatalf("literal %#v: want %q, got %q", c.lit, c.want, got)
		}
	}
}

func Test_Printer_Statements(t *testing.T) {
	// The print statement node and its rendering, side by side.
	ps := &PrintStmt{Expression: &LiteralExpr{Value: 1.0}}
	if got := PrintStatement(ps); got != "(print 1)" {
		t.Fatalf("got %s", got)
	}

	st := &IfStmt{
		Condition:  &VariableExpr{Name: Token{Type: IDENTIFIER, Lexeme: "ok"}},
		ThenBranch: &PrintStmt{Expression: &LiteralExpr{Value: 1.0}},
	}
	if got := PrintStatement(st); got != "(if ok (print 1))" {
		t.Fatalf("got %s", got)
	}

	blk := &BlockStmt{Statements: []Stmt{
		&VarStmt{Name: Token{Type: IDENTIFIER, Lexeme: "a"}},
		&ExpressionStmt{Expression: &AssignExpr{
			Name:  Token{Type: IDENTIFIER, Lexeme: "a"},
			Value: &LiteralExpr{Value: 1.0},
		}},
	}}
	if got := PrintStatement(blk); got != "(block (var a) (expr (= a 1)))" {
		t.Fatalf("got %s", got)
	}
}

func Test_Printer_Deterministic(t *testing.T) {
	stmts := parseClean(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	a := PrintProgram(stmts)
	b := PrintProgram(stmts)
	if a != b {
		t.Fatalf("printer not deterministic:\n%s\n%s", a, b)
	}
}
