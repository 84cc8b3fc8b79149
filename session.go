// session.go: the public run boundary tying scanner, parser, and evaluator
// together.
//
// A Session owns one interpreter (so variables persist across runs) and one
// Reporter (so every diagnostic, from any phase, lands in the same place).
// Each Run resets the per-run error flags, which is what keeps an interactive
// session alive after a bad line: the error state is per run, the environment
// chain is per session.
package lox

import (
	"fmt"
	"io"
	"os"
)

// Reporter receives every diagnostic the pipeline produces. where is either
// empty (scan errors), " at end", or " at '<lexeme>'".
type Reporter interface {
	Report(line int, where, msg string)
}

type writerReporter struct {
	w io.Writer
}

// NewReporter returns a Reporter that writes "[line N] Error<where>: <msg>"
// lines to w.
func NewReporter(w io.Writer) Reporter {
	return &writerReporter{w: w}
}

func (r *writerReporter) Report(line int, where, msg string) {
	fmt.Fprintf(r.w, "[line %d] Error%s: %s\n", line, where, msg)
}

// Session runs source strings through scan → parse → evaluate against a
// persistent global environment.
type Session struct {
	interp   *Interpreter
	reporter Reporter

	hadError        bool // syntax error (scan or parse) in the current run
	hadRuntimeError bool // runtime error in the current run
}

// NewSession creates a session. out receives print output (nil: os.Stdout);
// reporter receives diagnostics (nil: a NewReporter on os.Stderr).
func NewSession(out io.Writer, reporter Reporter) *Session {
	if reporter == nil {
		reporter = NewReporter(os.Stderr)
	}
	return &Session{interp: NewInterpreter(out), reporter: reporter}
}

// Globals exposes the session's global environment (tests, embedding).
func (s *Session) Globals() *Env { return s.interp.Globals }

// HadSyntaxError reports whether the most recent Run hit a scan or parse
// error. HadRuntimeError likewise for evaluation. File drivers use the split
// for exit codes; the REPL ignores it.
func (s *Session) HadSyntaxError() bool  { return s.hadError }
func (s *Session) HadRuntimeError() bool { return s.hadRuntimeError }

// Run scans, parses, and evaluates src. It returns true when any error was
// reported. Syntax errors gate evaluation: statements are only executed when
// the whole source scanned and parsed cleanly. A runtime error halts the
// remaining statements of this run but leaves the environment as the already
// executed statements made it.
func (s *Session) Run(src string) bool {
	s.hadError = false
	s.hadRuntimeError = false

	stmts := s.parse(src)
	if s.hadError {
		return true
	}

	if err := s.interp.Interpret(stmts); err != nil {
		re := err.(*RuntimeError)
		s.reporter.Report(re.Token.Line, tokenWhere(re.Token), re.Msg)
		s.hadRuntimeError = true
		return true
	}
	return false
}

// Parse scans and parses without evaluating, returning whatever statements
// survived error recovery. Used by the AST dump verb; errors are still
// reported and reflected in HadSyntaxError.
func (s *Session) Parse(src string) []Stmt {
	s.hadError = false
	s.hadRuntimeError = false
	return s.parse(src)
}

func (s *Session) parse(src string) []Stmt {
	lexer := NewLexer(src, s.errorLine)
	tokens := lexer.Scan()

	parser := NewParser(tokens, s.errorToken)
	return parser.Parse()
}

// errorLine is the scan-time reporting entry point: a raw line number.
func (s *Session) errorLine(line int, msg string) {
	s.reporter.Report(line, "", msg)
	s.hadError = true
}

// errorToken is the parse-time entry point: location is rendered from the
// offending token.
func (s *Session) errorToken(tok Token, msg string) {
	s.reporter.Report(tok.Line, tokenWhere(tok), msg)
	s.hadError = true
}

func tokenWhere(tok Token) string {
	if tok.Type == EOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", tok.Lexeme)
}
