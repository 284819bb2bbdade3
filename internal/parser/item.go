package parser

import (
	"leo/internal/ast"
	"leo/internal/diag"
	"leo/internal/token"
)

// parseItems is the top-level loop: items until EOF.
func (p *Parser) parseItems() {
	startSpan := p.lx.Peek().Span
	for !p.at(token.EOF) {
		itemID, ok := p.parseItem()
		if !ok {
			p.resyncTop()
			continue
		}
		p.arenas.PushItem(p.file, itemID)
	}
	p.arenas.Files.Get(p.file).Span = startSpan.Cover(p.lx.Peek().Span)
}

func (p *Parser) parseItem() (ast.ItemID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwImport:
		return p.parseImportItem()
	case token.KwProgram:
		return p.parseProgramItem()
	case token.KwFunction:
		return p.parseFnItem(ast.ItemFunction)
	case token.KwTransition:
		return p.parseFnItem(ast.ItemTransition)
	case token.KwInline:
		return p.parseFnItem(ast.ItemInline)
	case token.KwStruct:
		return p.parseStructItem(ast.ItemStruct)
	case token.KwRecord:
		return p.parseStructItem(ast.ItemRecord)
	case token.KwMapping:
		return p.parseMappingItem()
	case token.KwConst:
		return p.parseConstItem()
	default:
		p.err(diag.ParUnexpectedToken, "unexpected top-level construct")
		return ast.NoItemID, false
	}
}

// resyncTop recovers at the top level: skip to the next item starter,
// consuming a stray `;` or `}` on the way.
func (p *Parser) resyncTop() {
	starters := []token.Kind{
		token.KwImport, token.KwProgram, token.KwFunction, token.KwTransition,
		token.KwInline, token.KwStruct, token.KwRecord, token.KwMapping, token.KwConst,
	}
	for !p.at(token.EOF) {
		if p.atAny(starters...) {
			return
		}
		p.advance()
	}
}

// parseProgramName parses `name.aleo` style program identifiers.
func (p *Parser) parseProgramName() (string, bool) {
	nameTok, ok := p.expect(token.Ident)
	if !ok {
		return "", false
	}
	name := nameTok.Text
	if p.at(token.Dot) {
		p.advance()
		netTok, ok := p.expect(token.Ident)
		if !ok {
			return "", false
		}
		name += "." + netTok.Text
	}
	return name, true
}

// parseImportItem handles `import name.aleo;`.
func (p *Parser) parseImportItem() (ast.ItemID, bool) {
	kw := p.advance()

	name, ok := p.parseProgramName()
	if !ok {
		p.resyncStatement()
		return ast.NoItemID, false
	}
	if _, ok := p.expect(token.Semicolon); !ok {
		p.resyncStatement()
	}
	return p.arenas.Items.NewImport(p.arenas.Intern(name), kw.Span.Cover(p.lastSpan)), true
}

// parseProgramItem handles `program name.aleo { items }`.
func (p *Parser) parseProgramItem() (ast.ItemID, bool) {
	kw := p.advance()

	name, ok := p.parseProgramName()
	if !ok {
		p.resyncTop()
		return ast.NoItemID, false
	}
	if _, ok := p.expect(token.LBrace); !ok {
		p.resyncTop()
		return ast.NoItemID, false
	}

	var items []ast.ItemID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		item, ok := p.parseItem()
		if !ok {
			p.resyncTop()
			if p.at(token.RBrace) || p.at(token.EOF) {
				break
			}
			continue
		}
		items = append(items, item)
	}
	if _, ok := p.expect(token.RBrace); !ok {
		return ast.NoItemID, false
	}
	return p.arenas.Items.NewProgram(p.arenas.Intern(name), items, kw.Span.Cover(p.lastSpan)), true
}

// parseFnItem handles function, transition, and inline declarations:
// `function name(params) [-> type] block`.
func (p *Parser) parseFnItem(kind ast.ItemKind) (ast.ItemID, bool) {
	kw := p.advance()

	nameTok, ok := p.expect(token.Ident)
	if !ok {
		p.resyncTop()
		return ast.NoItemID, false
	}
	name := p.arenas.Intern(nameTok.Text)

	if _, ok := p.expect(token.LParen); !ok {
		p.resyncTop()
		return ast.NoItemID, false
	}
	params, ok := p.parseFnParams()
	if !ok {
		p.resyncTop()
		return ast.NoItemID, false
	}

	var ret ast.TypeRef
	hasRet := false
	if p.at(token.Arrow) {
		p.advance()
		ret, ok = p.parseTypeRef()
		if !ok {
			p.resyncTop()
			return ast.NoItemID, false
		}
		hasRet = true
	}

	body, ok := p.parseBlock()
	if !ok {
		return ast.NoItemID, false
	}
	return p.arenas.Items.NewFn(kind, name, params, ret, hasRet, body, kw.Span.Cover(p.lastSpan)), true
}

// parseFnParams parses `[mode] name: type` pairs up to the closing `)`.
// The caller has already consumed the `(`.
func (p *Parser) parseFnParams() ([]ast.FnParam, bool) {
	var params []ast.FnParam
	for !p.at(token.RParen) {
		param := ast.FnParam{Mode: ast.ParamNone}
		start := p.lx.Peek().Span

		switch p.lx.Peek().Kind {
		case token.KwPublic:
			p.advance()
			param.Mode = ast.ParamPublic
		case token.KwConstant:
			p.advance()
			param.Mode = ast.ParamConstant
		case token.Ident:
			if p.lx.Peek().Text == "private" {
				p.advance()
				param.Mode = ast.ParamPrivate
			}
		}

		nameTok, ok := p.expect(token.Ident)
		if !ok {
			return params, false
		}
		param.Name = p.arenas.Intern(nameTok.Text)

		if _, ok := p.expect(token.Colon); !ok {
			return params, false
		}
		if param.Type, ok = p.parseTypeRef(); !ok {
			return params, false
		}
		param.Span = start.Cover(p.lastSpan)
		params = append(params, param)

		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.RParen); !ok {
		return params, false
	}
	return params, true
}

// parseStructItem handles `struct Name { field: type, ... }` and the
// `record` form.
func (p *Parser) parseStructItem(kind ast.ItemKind) (ast.ItemID, bool) {
	kw := p.advance()

	nameTok, ok := p.expect(token.Ident)
	if !ok {
		p.resyncTop()
		return ast.NoItemID, false
	}
	name := p.arenas.Intern(nameTok.Text)

	if _, ok := p.expect(token.LBrace); !ok {
		p.resyncTop()
		return ast.NoItemID, false
	}

	var fields []ast.StructField
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		start := p.lx.Peek().Span

		fieldTok, ok := p.expect(token.Ident)
		if !ok {
			p.resyncUntil(token.Comma, token.RBrace)
			if p.at(token.Comma) {
				p.advance()
			}
			continue
		}
		if _, ok := p.expect(token.Colon); !ok {
			p.resyncUntil(token.Comma, token.RBrace)
			if p.at(token.Comma) {
				p.advance()
			}
			continue
		}
		typ, ok := p.parseTypeRef()
		if !ok {
			p.resyncUntil(token.Comma, token.RBrace)
			if p.at(token.Comma) {
				p.advance()
			}
			continue
		}
		fields = append(fields, ast.StructField{
			Name: p.arenas.Intern(fieldTok.Text),
			Type: typ,
			Span: start.Cover(p.lastSpan),
		})
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.RBrace); !ok {
		return ast.NoItemID, false
	}
	return p.arenas.Items.NewStruct(kind, name, fields, kw.Span.Cover(p.lastSpan)), true
}

// parseMappingItem handles `mapping name: key => value;`.
func (p *Parser) parseMappingItem() (ast.ItemID, bool) {
	kw := p.advance()

	nameTok, ok := p.expect(token.Ident)
	if !ok {
		p.resyncStatement()
		return ast.NoItemID, false
	}
	name := p.arenas.Intern(nameTok.Text)

	if _, ok := p.expect(token.Colon); !ok {
		p.resyncStatement()
		return ast.NoItemID, false
	}
	key, ok := p.parseTypeRef()
	if !ok {
		p.resyncStatement()
		return ast.NoItemID, false
	}
	if _, ok := p.expect(token.FatArrow); !ok {
		p.resyncStatement()
		return ast.NoItemID, false
	}
	value, ok := p.parseTypeRef()
	if !ok {
		p.resyncStatement()
		return ast.NoItemID, false
	}
	if _, ok := p.expect(token.Semicolon); !ok {
		p.resyncStatement()
	}
	return p.arenas.Items.NewMapping(name, key, value, kw.Span.Cover(p.lastSpan)), true
}

// parseConstItem handles top-level `const name: type = value;`.
func (p *Parser) parseConstItem() (ast.ItemID, bool) {
	kw := p.advance()

	nameTok, ok := p.expect(token.Ident)
	if !ok {
		p.resyncStatement()
		return ast.NoItemID, false
	}
	name := p.arenas.Intern(nameTok.Text)

	if _, ok := p.expect(token.Colon); !ok {
		p.resyncStatement()
		return ast.NoItemID, false
	}
	typ, ok := p.parseTypeRef()
	if !ok {
		p.resyncStatement()
		return ast.NoItemID, false
	}
	if _, ok := p.expect(token.Assign); !ok {
		p.resyncStatement()
		return ast.NoItemID, false
	}
	value, ok := p.parseExpr()
	if !ok {
		p.resyncStatement()
		return ast.NoItemID, false
	}
	if _, ok := p.expect(token.Semicolon); !ok {
		p.resyncStatement()
	}
	return p.arenas.Items.NewConst(name, typ, value, kw.Span.Cover(p.lastSpan)), true
}
