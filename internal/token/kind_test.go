package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident  string
		want   Kind
		wantOk bool
	}{
		{"finalize", KwFinalize, true},
		{"then", KwThen, true},
		{"return", KwReturn, true},
		{"transition", KwTransition, true},
		{"async", Invalid, false}, // async is an identifier
		{"Finalize", Invalid, false},
		{"fin", Invalid, false},
	}
	for _, tt := range tests {
		k, ok := LookupKeyword(tt.ident)
		if ok != tt.wantOk {
			t.Errorf("LookupKeyword(%q): ok=%v, want %v", tt.ident, ok, tt.wantOk)
			continue
		}
		if ok && k != tt.want {
			t.Errorf("LookupKeyword(%q): got %v, want %v", tt.ident, k, tt.want)
		}
	}
}

func TestKindStringSpellings(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Semicolon, ";"},
		{KwFinalize, "finalize"},
		{LParen, "("},
		{EOF, "<eof>"},
		{Ident, "identifier"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String(): got %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestTokenDisplayFallsBackToKind(t *testing.T) {
	if got := (Token{Kind: EOF}).Display(); got != "<eof>" {
		t.Fatalf("EOF display: got %q", got)
	}
	if got := (Token{Kind: Ident, Text: "async"}).Display(); got != "async" {
		t.Fatalf("ident display: got %q", got)
	}
}
