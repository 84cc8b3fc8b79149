// ast.go: the syntax tree built by the parser and walked by the evaluator.
//
// Expressions and statements are closed sums: a sealed interface per category
// with one struct per variant and an unexported marker method. Consumers
// (printer.go, interpreter.go) dispatch with a type switch, which the
// compiler can check for a missing default even if not for exhaustiveness —
// a deliberate trade against the visitor pattern, which buys exhaustiveness
// at the cost of a second dispatch layer per node.
//
// Nodes are immutable once constructed and each subtree is owned by exactly
// one parent.
package lox

// Expr is the sealed expression interface. Only the variants in this file
// implement it.
type Expr interface {
	exprNode()
}

// LiteralExpr holds an already-decoded value: float64, string, bool, or nil.
type LiteralExpr struct {
	Value any
}

// GroupingExpr is a parenthesized expression.
type GroupingExpr struct {
	Expression Expr
}

// UnaryExpr is a prefix operator application: !x or -x.
type UnaryExpr struct {
	Operator Token
	Right    Expr
}

// BinaryExpr is an infix arithmetic, comparison, or equality application.
type BinaryExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

// LogicalExpr is "and"/"or". Kept separate from BinaryExpr because the right
// operand is evaluated conditionally.
type LogicalExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

// VariableExpr is a read of a named variable.
type VariableExpr struct {
	Name Token
}

// AssignExpr writes Value to an existing binding of Name.
type AssignExpr struct {
	Name  Token
	Value Expr
}

func (*LiteralExpr) exprNode()  {}
func (*GroupingExpr) exprNode() {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*LogicalExpr) exprNode()  {}
func (*VariableExpr) exprNode() {}
func (*AssignExpr) exprNode()   {}

// Stmt is the sealed statement interface.
type Stmt interface {
	stmtNode()
}

// ExpressionStmt evaluates an expression for its side effects.
type ExpressionStmt struct {
	Expression Expr
}

// PrintStmt evaluates an expression and emits its textual form.
type PrintStmt struct {
	Expression Expr
}

// VarStmt declares a variable in the current scope. Initializer may be nil,
// in which case the variable starts out as nil.
type VarStmt struct {
	Name        Token
	Initializer Expr
}

// BlockStmt runs its statements in a fresh child scope.
type BlockStmt struct {
	Statements []Stmt
}

// IfStmt executes exactly one branch. ElseBranch may be nil.
type IfStmt struct {
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt
}

// WhileStmt re-evaluates Condition before every iteration. "for" loops are
// desugared to this node at parse time and never reach the evaluator.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
