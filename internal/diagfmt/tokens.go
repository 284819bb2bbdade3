package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"leo/internal/source"
	"leo/internal/token"
)

// FormatTokensPretty writes one token per line with its resolved position:
//
//	1:1-1:9  finalize  "finalize"
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for _, tok := range tokens {
		start, end := fs.Resolve(tok.Span)
		_, err := fmt.Fprintf(w, "%d:%d-%d:%d\t%s\t%q\n",
			start.Line, start.Col, end.Line, end.Col, tok.Kind, tok.Text)
		if err != nil {
			return err
		}
	}
	return nil
}

// TokenJSON is one token in JSON output.
type TokenJSON struct {
	Kind      string `json:"kind"`
	Text      string `json:"text,omitempty"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
}

// FormatTokensJSON writes the token stream as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	out := make([]TokenJSON, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, TokenJSON{
			Kind:      tok.Kind.String(),
			Text:      tok.Text,
			StartByte: tok.Span.Start,
			EndByte:   tok.Span.End,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
