package parser

import (
	"leo/internal/ast"
	"leo/internal/diag"
	"leo/internal/token"
)

// Exact wording of the deprecated-finalize diagnostic. Leo programs written
// against older releases still carry these statements, so the message points
// straight at the replacement form.
const (
	finalizeDeprecatedMsg  = "The `finalize` statement is deprecated."
	finalizeDeprecatedHint = "Use `return <expr> then finalize(<args>)` instead."
	finalizeFixTitle       = "rewrite as `return then finalize(...)`"
)

func (p *Parser) parseStatement() (ast.StmtID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwReturn:
		return p.parseReturn()
	case token.KwFinalize:
		return p.parseDeprecatedFinalize()
	case token.KwLet:
		return p.parseLet(ast.StmtLet)
	case token.KwConst:
		return p.parseLet(ast.StmtConst)
	case token.KwIf:
		return p.parseIf()
	case token.KwFor:
		return p.parseFor()
	case token.LBrace:
		return p.parseBlock()
	default:
		return p.parseExprStatement()
	}
}

// parseDeprecatedFinalize handles `finalize ...;` at statement position.
// One diagnostic fires per statement; the span covers the keyword and, when
// a `(` immediately follows, that opening paren. The argument list is never
// parsed: the parser resynchronizes to the closing `;`, so malformed
// arguments stay silent.
func (p *Parser) parseDeprecatedFinalize() (ast.StmtID, bool) {
	kw := p.advance()
	sp := kw.Span
	if p.at(token.LParen) {
		sp = sp.Cover(p.lx.Peek().Span)
	}

	p.reportFull(diag.ParFinalizeStatementDeprecated, diag.SevError, sp,
		finalizeDeprecatedMsg, finalizeDeprecatedHint, nil,
		[]diag.Fix{{Title: finalizeFixTitle}})

	p.resyncStatement()

	full := kw.Span.Cover(p.lastSpan)
	return p.arenas.Stmts.NewFinalize(sp, full), true
}

// parseReturn handles `return [value] [then finalize(args)];`. The value is
// absent when the next token is `then` or `;`.
func (p *Parser) parseReturn() (ast.StmtID, bool) {
	kw := p.advance()
	ret := ast.ReturnStmt{}

	if !p.at(token.KwThen) && !p.at(token.Semicolon) {
		value, ok := p.parseExpr()
		if !ok {
			p.resyncStatement()
			return p.arenas.Stmts.NewBad(kw.Span.Cover(p.lastSpan)), false
		}
		ret.Value = value
	}

	if p.at(token.KwThen) {
		thenTok := p.advance()
		ret.ThenSpan = thenTok.Span
		ret.HasFinalize = true

		finTok, ok := p.expect(token.KwFinalize)
		if !ok {
			p.resyncStatement()
			return p.arenas.Stmts.NewBad(kw.Span.Cover(p.lastSpan)), false
		}
		ret.FinalizeSpan = finTok.Span

		if _, ok := p.expect(token.LParen); !ok {
			p.resyncStatement()
			return p.arenas.Stmts.NewBad(kw.Span.Cover(p.lastSpan)), false
		}
		args, ok := p.parseCallArgs()
		if !ok {
			p.resyncStatement()
			return p.arenas.Stmts.NewBad(kw.Span.Cover(p.lastSpan)), false
		}
		ret.FinalizeArgs = args
	}

	if _, ok := p.expect(token.Semicolon); !ok {
		p.resyncStatement()
	}
	return p.arenas.Stmts.NewReturn(ret, kw.Span.Cover(p.lastSpan)), true
}

// parseLet handles `let name[: type] = value;` and the `const` form.
func (p *Parser) parseLet(kind ast.StmtKind) (ast.StmtID, bool) {
	kw := p.advance()

	nameTok, ok := p.expect(token.Ident)
	if !ok {
		p.resyncStatement()
		return p.arenas.Stmts.NewBad(kw.Span.Cover(p.lastSpan)), false
	}
	name := p.arenas.Intern(nameTok.Text)

	var typ ast.TypeRef
	hasType := false
	if p.at(token.Colon) {
		p.advance()
		typ, ok = p.parseTypeRef()
		if !ok {
			p.resyncStatement()
			return p.arenas.Stmts.NewBad(kw.Span.Cover(p.lastSpan)), false
		}
		hasType = true
	}

	if _, ok := p.expect(token.Assign); !ok {
		p.resyncStatement()
		return p.arenas.Stmts.NewBad(kw.Span.Cover(p.lastSpan)), false
	}
	value, ok := p.parseExpr()
	if !ok {
		p.resyncStatement()
		return p.arenas.Stmts.NewBad(kw.Span.Cover(p.lastSpan)), false
	}
	if _, ok := p.expect(token.Semicolon); !ok {
		p.resyncStatement()
	}
	return p.arenas.Stmts.NewLet(kind, name, typ, hasType, value, kw.Span.Cover(p.lastSpan)), true
}

// parseIf handles `if cond block [else (if | block)]`.
func (p *Parser) parseIf() (ast.StmtID, bool) {
	kw := p.advance()

	cond, ok := p.parseExpr()
	if !ok {
		p.resyncStatement()
		return p.arenas.Stmts.NewBad(kw.Span.Cover(p.lastSpan)), false
	}
	then, ok := p.parseBlock()
	if !ok {
		return p.arenas.Stmts.NewBad(kw.Span.Cover(p.lastSpan)), false
	}

	els := ast.NoStmtID
	if p.at(token.KwElse) {
		p.advance()
		if p.at(token.KwIf) {
			els, ok = p.parseIf()
		} else {
			els, ok = p.parseBlock()
		}
		if !ok {
			return p.arenas.Stmts.NewBad(kw.Span.Cover(p.lastSpan)), false
		}
	}
	return p.arenas.Stmts.NewIf(cond, then, els, kw.Span.Cover(p.lastSpan)), true
}

// parseFor handles `for name[: type] in from..to block`.
func (p *Parser) parseFor() (ast.StmtID, bool) {
	kw := p.advance()
	f := ast.ForStmt{}

	nameTok, ok := p.expect(token.Ident)
	if !ok {
		p.resyncStatement()
		return p.arenas.Stmts.NewBad(kw.Span.Cover(p.lastSpan)), false
	}
	f.Var = p.arenas.Intern(nameTok.Text)

	if p.at(token.Colon) {
		p.advance()
		f.Type, ok = p.parseTypeRef()
		if !ok {
			p.resyncStatement()
			return p.arenas.Stmts.NewBad(kw.Span.Cover(p.lastSpan)), false
		}
		f.HasType = true
	}

	if _, ok := p.expect(token.KwIn); !ok {
		p.resyncStatement()
		return p.arenas.Stmts.NewBad(kw.Span.Cover(p.lastSpan)), false
	}
	if f.From, ok = p.parseExpr(); !ok {
		p.resyncStatement()
		return p.arenas.Stmts.NewBad(kw.Span.Cover(p.lastSpan)), false
	}
	if _, ok := p.expect(token.DotDot); !ok {
		p.resyncStatement()
		return p.arenas.Stmts.NewBad(kw.Span.Cover(p.lastSpan)), false
	}
	if f.To, ok = p.parseExpr(); !ok {
		p.resyncStatement()
		return p.arenas.Stmts.NewBad(kw.Span.Cover(p.lastSpan)), false
	}
	if f.Body, ok = p.parseBlock(); !ok {
		return p.arenas.Stmts.NewBad(kw.Span.Cover(p.lastSpan)), false
	}
	return p.arenas.Stmts.NewFor(f, kw.Span.Cover(p.lastSpan)), true
}

// parseBlock handles `{ stmts }` with per-statement recovery.
func (p *Parser) parseBlock() (ast.StmtID, bool) {
	open, ok := p.expect(token.LBrace)
	if !ok {
		p.resyncStatement()
		return p.arenas.Stmts.NewBad(p.lastSpan), false
	}

	var stmts []ast.StmtID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmt, ok := p.parseStatement()
		if ok {
			stmts = append(stmts, stmt)
		}
	}
	if _, ok := p.expect(token.RBrace); !ok {
		return p.arenas.Stmts.NewBad(open.Span.Cover(p.lastSpan)), false
	}
	return p.arenas.Stmts.NewBlock(stmts, open.Span.Cover(p.lastSpan)), true
}

// parseExprStatement handles statements headed by an expression: either an
// assignment or a bare expression terminated by `;`.
func (p *Parser) parseExprStatement() (ast.StmtID, bool) {
	start := p.lx.Peek().Span

	expr, ok := p.parseExpr()
	if !ok {
		p.resyncStatement()
		return p.arenas.Stmts.NewBad(start.Cover(p.lastSpan)), false
	}

	if p.atAny(token.Assign, token.PlusAssign, token.MinusAssign,
		token.StarAssign, token.SlashAssign, token.PercentAssign) {
		opTok := p.advance()
		value, ok := p.parseExpr()
		if !ok {
			p.resyncStatement()
			return p.arenas.Stmts.NewBad(start.Cover(p.lastSpan)), false
		}
		if _, ok := p.expect(token.Semicolon); !ok {
			p.resyncStatement()
		}
		return p.arenas.Stmts.NewAssign(expr, opTok.Kind, value, start.Cover(p.lastSpan)), true
	}

	if _, ok := p.expect(token.Semicolon); !ok {
		p.resyncStatement()
	}
	return p.arenas.Stmts.NewExprStmt(expr, start.Cover(p.lastSpan)), true
}
