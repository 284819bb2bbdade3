package parser

import (
	"fmt"
	"slices"

	"leo/internal/diag"
	"leo/internal/source"
	"leo/internal/token"
)

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// advance consumes the next token and updates lastSpan.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// getDiagnosticSpan picks the best span for a diagnostic at the current
// position. At EOF the span falls back to just past the last consumed token.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{
			File:  p.lastSpan.File,
			Start: p.lastSpan.End,
			End:   p.lastSpan.End,
		}
	}
	return peek.Span
}

// expect consumes a token of kind k or reports
// `expected <k> -- found '<tok>'` at the found token.
func (p *Parser) expect(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	found := p.lx.Peek()
	sp := p.getDiagnosticSpan()
	p.report(diag.ParUnexpected, diag.SevError, sp,
		fmt.Sprintf("expected %s -- found '%s'", k, found.Display()))
	return token.Token{Kind: token.Invalid, Span: sp, Text: found.Text}, false
}

// err reports an error at the current position.
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	return p.reportFull(code, sev, sp, msg, "", nil, nil)
}

func (p *Parser) reportFull(code diag.Code, sev diag.Severity, sp source.Span, msg, hint string, notes []diag.Note, fixes []diag.Fix) bool {
	if p.opts.Reporter == nil {
		return false
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Enough() && p.opts.CurrentErrors > p.opts.MaxErrors {
		return false
	}
	p.opts.Reporter.Report(code, sev, sp, msg, hint, notes, fixes)
	return true
}

// resyncStatement skips forward to the next `;` (consuming it). It stops
// without consuming at `}` or EOF so enclosing blocks still close. Skipped
// tokens produce no further diagnostics.
func (p *Parser) resyncStatement() {
	for {
		switch p.lx.Peek().Kind {
		case token.EOF, token.RBrace:
			return
		case token.Semicolon:
			p.advance()
			return
		default:
			p.advance()
		}
	}
}

// resyncUntil skips forward until one of the stop kinds or EOF, consuming
// nothing at the stop position.
func (p *Parser) resyncUntil(stop ...token.Kind) {
	for !p.at(token.EOF) && !p.atAny(stop...) {
		p.advance()
	}
}
