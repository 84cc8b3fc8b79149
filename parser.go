// parser.go: recursive-descent parser from tokens to the AST.
//
// OVERVIEW
// --------
// One method per precedence level, lowest precedence outermost:
//
//	program    → declaration* EOF
//	declaration→ varDecl | statement
//	statement  → exprStmt | printStmt | ifStmt | whileStmt | forStmt | block
//	expression → assignment
//	assignment → IDENTIFIER "=" assignment | logic_or
//	logic_or   → logic_and ( "or" logic_and )*
//	logic_and  → equality ( "and" equality )*
//	equality   → comparison ( ("!="|"==") comparison )*
//	comparison → term ( (">"|">="|"<"|"<=") term )*
//	term       → factor ( ("-"|"+") factor )*
//	factor     → unary ( ("/"|"*") unary )*
//	unary      → ("!"|"-") unary | primary
//	primary    → NUMBER | STRING | "true" | "false" | "nil"
//	           | "(" expression ")" | IDENTIFIER
//
// Binary and logical levels left-associate by looping; assignment recurses on
// its right side and so right-associates.
//
// ERROR RECOVERY
// --------------
// Every grammar method returns (node, error). A violated token expectation is
// reported immediately (message + location) and then handed up as a
// *ParseError; nothing panics. The only place that error is caught is the
// declaration loop (top level and block level), which calls synchronize to
// skip forward to a statement boundary and then carries on. A failed
// declaration is omitted from the output, so callers never see partial or
// placeholder statements. Parse always returns every statement it could
// recover; the caller checks its accumulated error state before evaluating.
//
// The "for" statement has no AST node: it is desugared here into
// initializer + while + increment blocks (see forStatement).
package lox

import "fmt"

// ParseError is a structural parse failure at a specific token. It is
// reported before being returned, so callers unwind without re-reporting.
type ParseError struct {
	Token Token
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s", e.Token.Line, e.Msg)
}

// Parser consumes a token slice (EOF-terminated) and produces statements.
type Parser struct {
	tokens []Token
	cur    int

	// report receives parse diagnostics. May be nil.
	report func(tok Token, msg string)
}

// NewParser creates a parser over tokens. report may be nil.
func NewParser(tokens []Token, report func(tok Token, msg string)) *Parser {
	return &Parser{tokens: tokens, report: report}
}

// Parse runs the declaration loop to EOF. Statements that failed to parse
// are synchronized past and omitted; whatever parsed cleanly is returned in
// source order.
func (p *Parser) Parse() []Stmt {
	var stmts []Stmt
	for !p.atEnd() {
		st, err := p.declaration()
		if err != nil {
			p.synchronize()
			continue
		}
		stmts = append(stmts, st)
	}
	return stmts
}

// ParseExpression parses a single expression (no trailing semicolon). Used by
// tests and the AST dump tool.
func (p *Parser) ParseExpression() (Expr, error) {
	return p.expression()
}

/* ===========================
   declarations & statements
   =========================== */

func (p *Parser) declaration() (Stmt, error) {
	if p.match(VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() (Stmt, error) {
	name, err := p.need(IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var init Expr
	if p.match(EQUAL) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.need(SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &VarStmt{Name: name, Initializer: init}, nil
}

func (p *Parser) statement() (Stmt, error) {
	switch {
	case p.match(FOR):
		return p.forStatement()
	case p.match(IF):
		return p.ifStatement()
	case p.match(PRINT):
		return p.printStatement()
	case p.match(WHILE):
		return p.whileStatement()
	case p.match(LEFT_BRACE):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &BlockStmt{Statements: stmts}, nil
	}
	return p.expressionStatement()
}

// forStatement parses a for loop and desugars it on the spot:
//
//	for (init; cond; incr) body
//
// becomes
//
//	{ init; while (cond) { body; incr; } }
//
// with cond defaulting to true when omitted. The evaluator only ever sees
// the while form, and the runtime effect is identical to a native loop.
func (p *Parser) forStatement() (Stmt, error) {
	if _, err := p.need(LEFT_PAREN, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var init Stmt
	var err error
	switch {
	case p.match(SEMICOLON):
		init = nil
	case p.match(VAR):
		init, err = p.varDeclaration()
	default:
		init, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var cond Expr
	if !p.check(SEMICOLON) {
		cond, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.need(SEMICOLON, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var incr Expr
	if !p.check(RIGHT_PAREN) {
		incr, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.need(RIGHT_PAREN, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if incr != nil {
		body = &BlockStmt{Statements: []Stmt{body, &ExpressionStmt{Expression: incr}}}
	}
	if cond == nil {
		cond = &LiteralExpr{Value: true}
	}
	body = &WhileStmt{Condition: cond, Body: body}
	if init != nil {
		body = &BlockStmt{Statements: []Stmt{init, body}}
	}
	return body, nil
}

func (p *Parser) ifStatement() (Stmt, error) {
	if _, err := p.need(LEFT_PAREN, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(RIGHT_PAREN, "Expect ')' after if condition."); err != nil {
		return nil, err
	}

	then, err := p.statement()
	if err != nil {
		return nil, err
	}
	var els Stmt
	if p.match(ELSE) {
		els, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &IfStmt{Condition: cond, ThenBranch: then, ElseBranch: els}, nil
}

func (p *Parser) printStatement() (Stmt, error) {
	val, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &PrintStmt{Expression: val}, nil
}

func (p *Parser) whileStatement() (Stmt, error) {
	if _, err := p.need(LEFT_PAREN, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(RIGHT_PAREN, "Expect ')' after condition."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Condition: cond, Body: body}, nil
}

// block gulps declarations until the matching brace. A failed declaration
// inside the block synchronizes here, same policy as the top level.
func (p *Parser) block() ([]Stmt, error) {
	var stmts []Stmt
	for !p.check(RIGHT_BRACE) && !p.atEnd() {
		st, err := p.declaration()
		if err != nil {
			p.synchronize()
			continue
		}
		stmts = append(stmts, st)
	}
	if _, err := p.need(RIGHT_BRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) expressionStatement() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ExpressionStmt{Expression: expr}, nil
}

/* ===========================
   expressions
   =========================== */

func (p *Parser) expression() (Expr, error) {
	return p.assignment()
}

// assignment parses the full left side as an or-expression first; only if
// that turns out to be a bare variable reference and the next token is "="
// is it reinterpreted as an assignment target. An "=" after anything else is
// reported but not fatal: the left expression is returned and parsing keeps
// going.
func (p *Parser) assignment() (Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(EQUAL) {
		equals := p.prev()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		if v, ok := expr.(*VariableExpr); ok {
			return &AssignExpr{Name: v.Name, Value: value}, nil
		}
		p.errorAt(equals, "Invalid assignment target.")
	}
	return expr, nil
}

func (p *Parser) or() (Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(OR) {
		op := p.prev()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpr{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) and() (Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(AND) {
		op := p.prev()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpr{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) equality() (Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(BANG_EQUAL, EQUAL_EQUAL) {
		op := p.prev()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) comparison() (Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(GREATER, GREATER_EQUAL, LESS, LESS_EQUAL) {
		op := p.prev()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) term() (Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(MINUS, PLUS) {
		op := p.prev()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) factor() (Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(SLASH, STAR) {
		op := p.prev()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (Expr, error) {
	if p.match(BANG, MINUS) {
		op := p.prev()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Operator: op, Right: right}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (Expr, error) {
	switch {
	case p.match(FALSE):
		return &LiteralExpr{Value: false}, nil
	case p.match(TRUE):
		return &LiteralExpr{Value: true}, nil
	case p.match(NIL):
		return &LiteralExpr{Value: nil}, nil
	case p.match(NUMBER, STRING):
		return &LiteralExpr{Value: p.prev().Literal}, nil
	case p.match(IDENTIFIER):
		return &VariableExpr{Name: p.prev()}, nil
	case p.match(LEFT_PAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &GroupingExpr{Expression: expr}, nil
	}
	return nil, p.errorAt(p.peek(), "Expect expression.")
}

/* ===========================
   token plumbing & recovery
   =========================== */

func (p *Parser) match(tts ...TokenType) bool {
	for _, tt := range tts {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// need consumes a token of the expected type or reports and returns a
// *ParseError for the caller to unwind with.
func (p *Parser) need(tt TokenType, msg string) (Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return Token{}, p.errorAt(p.peek(), msg)
}

func (p *Parser) check(tt TokenType) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *Parser) advance() Token {
	if !p.atEnd() {
		p.cur++
	}
	return p.prev()
}

func (p *Parser) atEnd() bool { return p.peek().Type == EOF }
func (p *Parser) peek() Token { return p.tokens[p.cur] }
func (p *Parser) prev() Token { return p.tokens[p.cur-1] }

// errorAt reports the failure and returns it as a *ParseError. Returning
// rather than panicking leaves the unwind decision to the caller; invalid
// assignment targets, for instance, are reported without unwinding.
func (p *Parser) errorAt(tok Token, msg string) *ParseError {
	if p.report != nil {
		p.report(tok, msg)
	}
	return &ParseError{Token: tok, Msg: msg}
}

// synchronize discards tokens until a likely statement boundary: just past a
// ";" or just before a keyword that starts a declaration or statement. Called
// only from the declaration loops after a ParseError.
func (p *Parser) synchronize() {
	p.advance()

	for !p.atEnd() {
		if p.prev().Type == SEMICOLON {
			return
		}
		switch p.peek().Type {
		case CLASS, FUN, VAR, FOR, IF, WHILE, PRINT, RETURN:
			return
		}
		p.advance()
	}
}
