package token

import (
	"leo/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwConst, KwConstant, KwElse, KwFalse, KwFinalize, KwFor, KwFunction,
		KwIf, KwImport, KwIn, KwInline, KwLet, KwMapping, KwProgram, KwPublic,
		KwRecord, KwReturn, KwStruct, KwThen, KwTransition, KwTrue:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Display returns the token's appearance for diagnostics: the source text
// when available, the kind name otherwise (EOF, zero-width invalids).
func (t Token) Display() string {
	if t.Text != "" {
		return t.Text
	}
	return t.Kind.String()
}
