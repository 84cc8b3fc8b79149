// lexer.go: single-pass scanner from source text to tokens.
//
// The lexer walks the source left to right with a start/cur cursor pair,
// tracking the 1-based line for diagnostics. It is error-tolerant: an unknown
// character or an unterminated string is reported through the injected
// callback and scanning continues with the next character, so one bad token
// never hides the diagnostics that follow it. The returned slice always ends
// with exactly one EOF token.
package lox

import "strconv"

// Lexer scans a source string into tokens.
type Lexer struct {
	src    string
	start  int // start index of current token
	cur    int // current index
	line   int // 1-based
	tokens []Token

	// report receives scan diagnostics (line, message). May be nil.
	report func(line int, msg string)
}

// NewLexer creates a lexer for the given source. report may be nil, in which
// case diagnostics are dropped (the token stream is still produced).
func NewLexer(src string, report func(line int, msg string)) *Lexer {
	return &Lexer{src: src, line: 1, report: report}
}

// Scan tokenizes the whole source and returns the token slice, EOF-terminated.
func (l *Lexer) Scan() []Token {
	for !l.isAtEnd() {
		l.start = l.cur
		l.scanToken()
	}
	l.tokens = append(l.tokens, Token{Type: EOF, Lexeme: "", Literal: nil, Line: l.line})
	return l.tokens
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) advance() byte {
	ch := l.src[l.cur]
	l.cur++
	return ch
}

// match consumes the next character only if it equals want.
func (l *Lexer) match(want byte) bool {
	if l.isAtEnd() || l.src[l.cur] != want {
		return false
	}
	l.cur++
	return true
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.src[l.cur]
}

func (l *Lexer) peekNext() byte {
	if l.cur+1 >= len(l.src) {
		return 0
	}
	return l.src[l.cur+1]
}

func (l *Lexer) addToken(tt TokenType, lit any) {
	l.tokens = append(l.tokens, Token{
		Type:    tt,
		Lexeme:  l.src[l.start:l.cur],
		Literal: lit,
		Line:    l.line,
	})
}

func (l *Lexer) err(msg string) {
	if l.report != nil {
		l.report(l.line, msg)
	}
}

func (l *Lexer) scanToken() {
	ch := l.advance()
	switch ch {
	case '(':
		l.addToken(LEFT_PAREN, nil)
	case ')':
		l.addToken(RIGHT_PAREN, nil)
	case '{':
		l.addToken(LEFT_BRACE, nil)
	case '}':
		l.addToken(RIGHT_BRACE, nil)
	case ',':
		l.addToken(COMMA, nil)
	case '.':
		l.addToken(DOT, nil)
	case '-':
		l.addToken(MINUS, nil)
	case '+':
		l.addToken(PLUS, nil)
	case ';':
		l.addToken(SEMICOLON, nil)
	case '*':
		l.addToken(STAR, nil)
	case '!':
		if l.match('=') {
			l.addToken(BANG_EQUAL, nil)
		} else {
			l.addToken(BANG, nil)
		}
	case '=':
		if l.match('=') {
			l.addToken(EQUAL_EQUAL, nil)
		} else {
			l.addToken(EQUAL, nil)
		}
	case '<':
		if l.match('=') {
			l.addToken(LESS_EQUAL, nil)
		} else {
			l.addToken(LESS, nil)
		}
	case '>':
		if l.match('=') {
			l.addToken(GREATER_EQUAL, nil)
		} else {
			l.addToken(GREATER, nil)
		}
	case '/':
		if l.match('/') {
			// Line comment, runs to end of line.
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
		} else {
			l.addToken(SLASH, nil)
		}
	case ' ', '\r', '\t':
		// skip
	case '\n':
		l.line++
	case '"':
		l.scanString()
	default:
		switch {
		case isDigit(ch):
			l.scanNumber()
		case isAlpha(ch):
			l.scanIdentifier()
		default:
			l.err("Unexpected character.")
		}
	}
}

// scanString consumes a double-quoted string literal. Strings may span
// multiple lines; there are no escape sequences.
func (l *Lexer) scanString() {
	for l.peek() != '"' && !l.isAtEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.isAtEnd() {
		l.err("Unterminated string.")
		return
	}

	l.advance() // closing quote

	// Trim the surrounding quotes for the literal value.
	val := l.src[l.start+1 : l.cur-1]
	l.addToken(STRING, val)
}

// scanNumber consumes an integer or decimal literal. A trailing dot is not
// part of the number: "123." scans as NUMBER DOT.
func (l *Lexer) scanNumber() {
	for isDigit(l.peek()) {
		l.advance()
	}

	// Fractional part only when a digit follows the dot.
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	n, _ := strconv.ParseFloat(l.src[l.start:l.cur], 64)
	l.addToken(NUMBER, n)
}

func (l *Lexer) scanIdentifier() {
	for isAlphaNum(l.peek()) {
		l.advance()
	}
	text := l.src[l.start:l.cur]
	if tt, ok := keywords[text]; ok {
		l.addToken(tt, nil)
		return
	}
	l.addToken(IDENTIFIER, nil)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_'
}
