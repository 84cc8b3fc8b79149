// token.go: lexical token model shared by the scanner, parser, and evaluator.
package lox

import "fmt"

// TokenType represents the kind of token.
type TokenType int

const (
	// Single-character tokens
	LEFT_PAREN TokenType = iota
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	COMMA
	DOT
	MINUS
	PLUS
	SEMICOLON
	SLASH
	STAR

	// One or two character tokens
	BANG
	BANG_EQUAL
	EQUAL
	EQUAL_EQUAL
	GREATER
	GREATER_EQUAL
	LESS
	LESS_EQUAL

	// Literals
	IDENTIFIER
	STRING
	NUMBER

	// Keywords
	AND
	CLASS
	ELSE
	FALSE
	FUN
	FOR
	IF
	NIL
	OR
	PRINT
	RETURN
	SUPER
	THIS
	TRUE
	VAR
	WHILE

	EOF
)

var tokenNames = map[TokenType]string{
	LEFT_PAREN: "LEFT_PAREN", RIGHT_PAREN: "RIGHT_PAREN",
	LEFT_BRACE: "LEFT_BRACE", RIGHT_BRACE: "RIGHT_BRACE",
	COMMA: "COMMA", DOT: "DOT", MINUS: "MINUS", PLUS: "PLUS",
	SEMICOLON: "SEMICOLON", SLASH: "SLASH", STAR: "STAR",
	BANG: "BANG", BANG_EQUAL: "BANG_EQUAL",
	EQUAL: "EQUAL", EQUAL_EQUAL: "EQUAL_EQUAL",
	GREATER: "GREATER", GREATER_EQUAL: "GREATER_EQUAL",
	LESS: "LESS", LESS_EQUAL: "LESS_EQUAL",
	IDENTIFIER: "IDENTIFIER", STRING: "STRING", NUMBER: "NUMBER",
	AND: "AND", CLASS: "CLASS", ELSE: "ELSE", FALSE: "FALSE",
	FUN: "FUN", FOR: "FOR", IF: "IF", NIL: "NIL", OR: "OR",
	PRINT: "PRINT", RETURN: "RETURN", SUPER: "SUPER", THIS: "THIS",
	TRUE: "TRUE", VAR: "VAR", WHILE: "WHILE",
	EOF: "EOF",
}

func (tt TokenType) String() string {
	if s, ok := tokenNames[tt]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a lexical token with optional literal value. Tokens are created
// once by the lexer and read-only afterwards.
type Token struct {
	Type    TokenType
	Lexeme  string // raw text slice
	Literal any    // decoded value for NUMBER (float64) and STRING (string)
	Line    int    // 1-based
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %v", t.Type, t.Lexeme, t.Literal)
}

// keywords map: exact reserved-word set. The full set is reserved at the
// lexical level even though this front end evaluates only a subset, so the
// parser can treat all of them as statement boundaries when it resynchronizes.
var keywords = map[string]TokenType{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}
