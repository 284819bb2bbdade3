package lexer

import (
	"leo/internal/diag"
	"leo/internal/token"
)

// scanString scans a double-quoted string literal. Escapes are kept verbatim
// in Text; decoding is a later concern. An unterminated string is reported
// and the token clipped at the newline or EOF.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	terminated := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' {
			break
		}
		lx.cursor.Bump()
		if b == '\\' {
			if !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			continue
		}
		if b == '"' {
			terminated = true
			break
		}
	}

	sp := lx.cursor.SpanFrom(start)
	if !terminated {
		lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	}
	return token.Token{
		Kind: token.StringLit,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
