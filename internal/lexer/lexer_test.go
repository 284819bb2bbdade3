package lexer

import (
	"testing"

	"leo/internal/diag"
	"leo/internal/source"
	"leo/internal/token"
)

type lexedToken struct {
	kind token.Kind
	text string
}

func lexAll(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()

	fs := source.NewFileSet()
	id := fs.AddVirtual("test", []byte(src))

	bag := diag.NewBag(64)
	adapter := &ReporterAdapter{Bag: bag}
	lx := New(fs.Get(id), Options{Reporter: adapter.Reporter()})

	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, bag
		}
		if len(toks) > 1000 {
			t.Fatal("lexer did not reach EOF")
		}
	}
}

func expectKinds(t *testing.T, src string, want []lexedToken) {
	t.Helper()

	toks, bag := lexAll(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected lex errors for %q: %s", src, bag.Items()[0].Message)
	}
	// Drop the trailing EOF.
	toks = toks[:len(toks)-1]

	if len(toks) != len(want) {
		t.Fatalf("token count for %q: got %d, want %d", src, len(toks), len(want))
	}
	for i, w := range want {
		if toks[i].Kind != w.kind {
			t.Errorf("token %d of %q: kind got %s, want %s", i, src, toks[i].Kind, w.kind)
		}
		if w.text != "" && toks[i].Text != w.text {
			t.Errorf("token %d of %q: text got %q, want %q", i, src, toks[i].Text, w.text)
		}
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	expectKinds(t, "finalize then return let", []lexedToken{
		{token.KwFinalize, "finalize"},
		{token.KwThen, "then"},
		{token.KwReturn, "return"},
		{token.KwLet, "let"},
	})

	// `async` is not a keyword in this dialect.
	expectKinds(t, "async async finalize", []lexedToken{
		{token.Ident, "async"},
		{token.Ident, "async"},
		{token.KwFinalize, "finalize"},
	})

	// Near-misses of keywords stay identifiers.
	expectKinds(t, "asyn finalizer _then", []lexedToken{
		{token.Ident, "asyn"},
		{token.Ident, "finalizer"},
		{token.Ident, "_then"},
	})
}

func TestUnderscore(t *testing.T) {
	expectKinds(t, "_ _x", []lexedToken{
		{token.Underscore, "_"},
		{token.Ident, "_x"},
	})
}

func TestOperatorsAndPunctuation(t *testing.T) {
	expectKinds(t, "( ) , ; :: -> => ** .. <= !=", []lexedToken{
		{token.LParen, "("},
		{token.RParen, ")"},
		{token.Comma, ","},
		{token.Semicolon, ";"},
		{token.ColonColon, "::"},
		{token.Arrow, "->"},
		{token.FatArrow, "=>"},
		{token.StarStar, "**"},
		{token.DotDot, ".."},
		{token.LtEq, "<="},
		{token.BangEq, "!="},
	})
}

func TestNumberSuffixes(t *testing.T) {
	expectKinds(t, "1u8 42field 7 100scalar", []lexedToken{
		{token.IntLit, "1u8"},
		{token.IntLit, "42field"},
		{token.IntLit, "7"},
		{token.IntLit, "100scalar"},
	})

	// An unknown suffix is not absorbed into the literal.
	expectKinds(t, "5xyz", []lexedToken{
		{token.IntLit, "5"},
		{token.Ident, "xyz"},
	})
}

func TestSpans(t *testing.T) {
	toks, _ := lexAll(t, "finalize(foo, bar)")

	wantSpans := []struct {
		start, end uint32
	}{
		{0, 8},   // finalize
		{8, 9},   // (
		{9, 12},  // foo
		{12, 13}, // ,
		{14, 17}, // bar
		{17, 18}, // )
	}
	for i, w := range wantSpans {
		got := toks[i].Span
		if got.Start != w.start || got.End != w.end {
			t.Errorf("token %d: span got %d..%d, want %d..%d", i, got.Start, got.End, w.start, w.end)
		}
	}
}

func TestLeadingTrivia(t *testing.T) {
	toks, bag := lexAll(t, "// header\nfinalize /* inner */ ;")
	if bag.HasErrors() {
		t.Fatalf("unexpected lex errors: %v", bag.Items())
	}

	if toks[0].Kind != token.KwFinalize {
		t.Fatalf("first token: got %s, want finalize", toks[0].Kind)
	}
	var sawLineComment bool
	for _, tr := range toks[0].Leading {
		if tr.Kind == token.TriviaLineComment {
			sawLineComment = true
		}
	}
	if !sawLineComment {
		t.Error("line comment not attached as leading trivia")
	}

	if toks[1].Kind != token.Semicolon {
		t.Fatalf("second token: got %s, want ;", toks[1].Kind)
	}
	var sawBlockComment bool
	for _, tr := range toks[1].Leading {
		if tr.Kind == token.TriviaBlockComment {
			sawBlockComment = true
		}
	}
	if !sawBlockComment {
		t.Error("block comment not attached as leading trivia")
	}
}

func TestStringLiteral(t *testing.T) {
	expectKinds(t, `"hello" "with \" escape"`, []lexedToken{
		{token.StringLit, `"hello"`},
		{token.StringLit, `"with \" escape"`},
	})
}

func TestUnterminatedString(t *testing.T) {
	toks, bag := lexAll(t, "\"oops\nfinalize")

	if !bag.HasErrors() {
		t.Fatal("expected an unterminated-string error")
	}
	if bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Fatalf("code: got %s", bag.Items()[0].Code.ID())
	}
	// The lexer recovers at the newline and keeps going.
	if toks[1].Kind != token.KwFinalize {
		t.Fatalf("token after recovery: got %s, want finalize", toks[1].Kind)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	_, bag := lexAll(t, "/* no close")
	if !bag.HasErrors() {
		t.Fatal("expected an unterminated-comment error")
	}
	if bag.Items()[0].Code != diag.LexUnterminatedComment {
		t.Fatalf("code: got %s", bag.Items()[0].Code.ID())
	}
}

func TestUnknownChar(t *testing.T) {
	toks, bag := lexAll(t, "#")
	if !bag.HasErrors() {
		t.Fatal("expected an unknown-character error")
	}
	if bag.Items()[0].Code != diag.LexUnknownChar {
		t.Fatalf("code: got %s", bag.Items()[0].Code.ID())
	}
	if toks[0].Kind != token.Invalid {
		t.Fatalf("kind: got %s, want invalid", toks[0].Kind)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test", []byte("finalize;"))
	lx := New(fs.Get(id), Options{Reporter: diag.NopReporter{}})

	p := lx.Peek()
	n := lx.Next()
	if p.Kind != n.Kind || p.Span != n.Span {
		t.Fatal("Peek and subsequent Next disagree")
	}
	if lx.Next().Kind != token.Semicolon {
		t.Fatal("Peek consumed a token")
	}
}

func TestEOFIsSticky(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test", []byte(";"))
	lx := New(fs.Get(id), Options{Reporter: diag.NopReporter{}})

	lx.Next()
	for i := 0; i < 3; i++ {
		if lx.Next().Kind != token.EOF {
			t.Fatal("EOF not sticky")
		}
	}
}
