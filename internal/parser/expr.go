package parser

import (
	"fmt"

	"leo/internal/ast"
	"leo/internal/diag"
	"leo/internal/token"
)

// Binding powers for binary operators; 0 means "not a binary operator".
func binPrec(k token.Kind) int {
	switch k {
	case token.OrOr:
		return 1
	case token.AndAnd:
		return 2
	case token.EqEq, token.BangEq:
		return 3
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return 4
	case token.Plus, token.Minus:
		return 5
	case token.Star, token.Slash, token.Percent:
		return 6
	case token.StarStar:
		return 7
	default:
		return 0
	}
}

func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinary(1)
}

// parseBinary is a precedence climber; `**` binds right-associatively,
// everything else left.
func (p *Parser) parseBinary(minPrec int) (ast.ExprID, bool) {
	lhs, ok := p.parseUnary()
	if !ok {
		return lhs, false
	}

	for {
		prec := binPrec(p.lx.Peek().Kind)
		if prec == 0 || prec < minPrec {
			return lhs, true
		}
		opTok := p.advance()

		next := prec + 1
		if opTok.Kind == token.StarStar {
			next = prec
		}
		rhs, ok := p.parseBinary(next)
		if !ok {
			return rhs, false
		}
		span := p.arenas.Exprs.Get(lhs).Span.Cover(p.arenas.Exprs.Get(rhs).Span)
		lhs = p.arenas.Exprs.NewBinary(opTok.Kind, lhs, rhs, span)
	}
}

func (p *Parser) parseUnary() (ast.ExprID, bool) {
	if p.atAny(token.Bang, token.Minus) {
		opTok := p.advance()
		operand, ok := p.parseUnary()
		if !ok {
			return operand, false
		}
		span := opTok.Span.Cover(p.arenas.Exprs.Get(operand).Span)
		return p.arenas.Exprs.NewUnary(opTok.Kind, operand, span), true
	}
	return p.parsePostfix()
}

// parsePostfix applies call, member, and index suffixes to a primary.
func (p *Parser) parsePostfix() (ast.ExprID, bool) {
	expr, ok := p.parsePrimary()
	if !ok {
		return expr, false
	}

	for {
		switch p.lx.Peek().Kind {
		case token.LParen:
			p.advance()
			args, ok := p.parseCallArgs()
			if !ok {
				return expr, false
			}
			span := p.arenas.Exprs.Get(expr).Span.Cover(p.lastSpan)
			expr = p.arenas.Exprs.NewCall(expr, args, span)

		case token.Dot:
			p.advance()
			nameTok, ok := p.expect(token.Ident)
			if !ok {
				return expr, false
			}
			span := p.arenas.Exprs.Get(expr).Span.Cover(nameTok.Span)
			expr = p.arenas.Exprs.NewMember(expr, p.arenas.Intern(nameTok.Text), span)

		case token.LBracket:
			p.advance()
			index, ok := p.parseExpr()
			if !ok {
				return expr, false
			}
			if _, ok := p.expect(token.RBracket); !ok {
				return expr, false
			}
			span := p.arenas.Exprs.Get(expr).Span.Cover(p.lastSpan)
			expr = p.arenas.Exprs.NewIndex(expr, index, span)

		default:
			return expr, true
		}
	}
}

// parseCallArgs parses a comma-separated argument list; the caller has
// already consumed the `(`. Consumes the closing `)` on success.
func (p *Parser) parseCallArgs() ([]ast.ExprID, bool) {
	var args []ast.ExprID
	for !p.at(token.RParen) {
		arg, ok := p.parseExpr()
		if !ok {
			return args, false
		}
		args = append(args, arg)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.RParen); !ok {
		return args, false
	}
	return args, true
}

func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		return p.arenas.Exprs.NewIdent(p.arenas.Intern(tok.Text), tok.Span), true

	case token.IntLit:
		p.advance()
		return p.arenas.Exprs.NewLit(ast.LitInt, tok.Text, tok.Span), true

	case token.StringLit:
		p.advance()
		return p.arenas.Exprs.NewLit(ast.LitString, tok.Text, tok.Span), true

	case token.KwTrue, token.KwFalse:
		p.advance()
		return p.arenas.Exprs.NewLit(ast.LitBool, tok.Text, tok.Span), true

	case token.LParen:
		open := p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return inner, false
		}
		if _, ok := p.expect(token.RParen); !ok {
			return p.arenas.Exprs.NewBad(open.Span.Cover(p.lastSpan)), false
		}
		return p.arenas.Exprs.NewGroup(inner, open.Span.Cover(p.lastSpan)), true

	default:
		sp := p.getDiagnosticSpan()
		p.report(diag.ParExpectedExpression, diag.SevError, sp,
			fmt.Sprintf("expected expression -- found '%s'", tok.Display()))
		return p.arenas.Exprs.NewBad(sp), false
	}
}

// parseTypeRef parses a type annotation. Type names (u64, field, custom
// structs) all lex as identifiers.
func (p *Parser) parseTypeRef() (ast.TypeRef, bool) {
	nameTok, ok := p.expect(token.Ident)
	if !ok {
		return ast.TypeRef{}, false
	}
	return ast.TypeRef{
		Name: p.arenas.Intern(nameTok.Text),
		Span: nameTok.Span,
	}, true
}
