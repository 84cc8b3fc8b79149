// lexer_test.go
package lox

import (
	"reflect"
	"testing"
)

// collect gathers reported diagnostics during a scan.
type scanDiag struct {
	line int
	msg  string
}

func scan(t *testing.T, src string) ([]Token, []scanDiag) {
	t.Helper()
	var diags []scanDiag
	l := NewLexer(src, func(line int, msg string) {
		diags = append(diags, scanDiag{line: line, msg: msg})
	})
	return l.Scan(), diags
}

func typesWithoutEOF(tokens []Token) []TokenType {
	if len(tokens) == 0 {
		return nil
	}
	end := len(tokens)
	if tokens[end-1].Type == EOF {
		end--
	}
	out := make([]TokenType, 0, end)
	for i := 0; i < end; i++ {
		out = append(out, tokens[i].Type)
	}
	return out
}

func wantTypes(t *testing.T, src string, want []TokenType) []Token {
	t.Helper()
	got, diags := scan(t, src)
	if len(diags) != 0 {
		t.Fatalf("unexpected scan diagnostics for %q: %v", src, diags)
	}
	gotTypes := typesWithoutEOF(got)
	if !reflect.DeepEqual(gotTypes, want) {
		t.Fatalf("\nsource:\n%s\nwant types:\n%v\ngot types:\n%v\n", src, want, gotTypes)
	}
	return got
}

func Test_Lexer_Operators_LongestMatch(t *testing.T) {
	wantTypes(t, "! != = == < <= > >= - + * / ( ) { } , . ;", []TokenType{
		BANG, BANG_EQUAL, EQUAL, EQUAL_EQUAL,
		LESS, LESS_EQUAL, GREATER, GREATER_EQUAL,
		MINUS, PLUS, STAR, SLASH,
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE,
		COMMA, DOT, SEMICOLON,
	})
}

func Test_Lexer_EOF_Always_Terminates(t *testing.T) {
	for _, src := range []string{"", "  \t\r\n", "var x;"} {
		got, _ := scan(t, src)
		if len(got) == 0 || got[len(got)-1].Type != EOF {
			t.Fatalf("token stream for %q not EOF-terminated: %v", src, got)
		}
		for _, tok := range got[:len(got)-1] {
			if tok.Type == EOF {
				t.Fatalf("interior EOF token in %q: %v", src, got)
			}
		}
	}
}

func Test_Lexer_Numbers(t *testing.T) {
	got := wantTypes(t, "123 45.67", []TokenType{NUMBER, NUMBER})
	if got[0].Literal.(float64) != 123 || got[1].Literal.(float64) != 45.67 {
		t.Fatalf("number literals wrong: %v %v", got[0].Literal, got[1].Literal)
	}

	// A trailing dot is not part of the number.
	wantTypes(t, "123.", []TokenType{NUMBER, DOT})
	// Nor is a leading dot.
	wantTypes(t, ".5", []TokenType{DOT, NUMBER})
}

func Test_Lexer_Strings(t *testing.T) {
	got := wantTypes(t, `"hello" ""`, []TokenType{STRING, STRING})
	if got[0].Literal.(string) != "hello" || got[1].Literal.(string) != "" {
		t.Fatalf("string literals wrong: %q %q", got[0].Literal, got[1].Literal)
	}
	if got[0].Lexeme != `"hello"` {
		t.Fatalf("lexeme should keep quotes, got %q", got[0].Lexeme)
	}
}

func Test_Lexer_String_Multiline_Tracks_Lines(t *testing.T) {
	got := wantTypes(t, "\"a\nb\"\nx", []TokenType{STRING, IDENTIFIER})
	if got[0].Literal.(string) != "a\nb" {
		t.Fatalf("multiline literal wrong: %q", got[0].Literal)
	}
	if got[1].Line != 3 {
		t.Fatalf("identifier after multiline string should be line 3, got %d", got[1].Line)
	}
}

func Test_Lexer_Unterminated_String_Reported_Not_Fatal(t *testing.T) {
	got, diags := scan(t, "var x;\n\"oops")
	if len(diags) != 1 || diags[0].msg != "Unterminated string." || diags[0].line != 2 {
		t.Fatalf("want one unterminated-string diagnostic on line 2, got %v", diags)
	}
	// Tokens before the bad string are intact.
	want := []TokenType{VAR, IDENTIFIER, SEMICOLON}
	if !reflect.DeepEqual(typesWithoutEOF(got), want) {
		t.Fatalf("tokens before error lost: %v", typesWithoutEOF(got))
	}
}

func Test_Lexer_Unknown_Character_Skipped(t *testing.T) {
	got, diags := scan(t, "1 @ 2 # 3")
	if len(diags) != 2 {
		t.Fatalf("want two diagnostics, got %v", diags)
	}
	for _, d := range diags {
		if d.msg != "Unexpected character." {
			t.Fatalf("wrong message: %q", d.msg)
		}
	}
	want := []TokenType{NUMBER, NUMBER, NUMBER}
	if !reflect.DeepEqual(typesWithoutEOF(got), want) {
		t.Fatalf("scan did not continue past bad characters: %v", typesWithoutEOF(got))
	}
}

func Test_Lexer_Comments_And_Whitespace_Skipped(t *testing.T) {
	wantTypes(t, "a // rest is ignored != ==\nb // to the very end", []TokenType{
		IDENTIFIER, IDENTIFIER,
	})
	wantTypes(t, "1 / 2 // divide", []TokenType{NUMBER, SLASH, NUMBER})
}

func Test_Lexer_Keywords_Versus_Identifiers(t *testing.T) {
	got := wantTypes(t, "var if else while for and or print true false nil class fun return super this orchid iffy", []TokenType{
		VAR, IF, ELSE, WHILE, FOR, AND, OR, PRINT, TRUE, FALSE, NIL,
		CLASS, FUN, RETURN, SUPER, THIS,
		IDENTIFIER, IDENTIFIER,
	})
	if got[16].Lexeme != "orchid" || got[17].Lexeme != "iffy" {
		t.Fatalf("identifier lexemes wrong: %q %q", got[16].Lexeme, got[17].Lexeme)
	}
}

func Test_Lexer_Line_Numbers(t *testing.T) {
	got, _ := scan(t, "a\nb\n\nc")
	wantLines := []int{1, 2, 4}
	for i, ln := range wantLines {
		if got[i].Line != ln {
			t.Fatalf("token %d: want line %d, got %d", i, ln, got[i].Line)
		}
	}
}
