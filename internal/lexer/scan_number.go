package lexer

import (
	"leo/internal/token"
)

// Integer type suffixes accepted directly after the digits: 1u64, 5field.
var intSuffixes = map[string]struct{}{
	"u8": {}, "u16": {}, "u32": {}, "u64": {}, "u128": {},
	"i8": {}, "i16": {}, "i32": {}, "i64": {}, "i128": {},
	"field": {}, "group": {}, "scalar": {},
}

// scanNumber scans a decimal integer literal with an optional type suffix.
// The suffix, when present, is part of the token text and span.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// Optional suffix: letters/digits immediately following. Only known
	// suffixes are consumed; anything else stays a separate identifier.
	suffixMark := lx.cursor.Mark()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if suffixMark != lx.cursor.Mark() {
		suffix := string(lx.file.Content[uint32(suffixMark):lx.cursor.Off])
		if _, ok := intSuffixes[suffix]; !ok {
			lx.cursor.Reset(suffixMark)
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.IntLit,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
