package ast

import (
	"leo/internal/source"
	"leo/internal/token"
)

type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprLit
	ExprUnary
	ExprBinary
	ExprCall
	ExprMember
	ExprGroup
	ExprIndex
	// ExprBad is a placeholder produced by error recovery.
	ExprBad
)

// LitKind classifies literal expressions.
type LitKind uint8

const (
	LitInt LitKind = iota
	LitString
	LitBool
)

type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

type IdentExpr struct {
	Name source.StringID
}

type LitExpr struct {
	Kind LitKind
	Text string // source spelling, suffix included for integers
}

type UnaryExpr struct {
	Op      token.Kind
	Operand ExprID
}

type BinaryExpr struct {
	Op  token.Kind
	LHS ExprID
	RHS ExprID
}

type CallExpr struct {
	Callee ExprID
	Args   []ExprID
}

type MemberExpr struct {
	Recv ExprID
	Name source.StringID
}

type GroupExpr struct {
	Inner ExprID
}

type IndexExpr struct {
	Recv  ExprID
	Index ExprID
}

type Exprs struct {
	Arena    *Arena[Expr]
	Idents   *Arena[IdentExpr]
	Lits     *Arena[LitExpr]
	Unaries  *Arena[UnaryExpr]
	Binaries *Arena[BinaryExpr]
	Calls    *Arena[CallExpr]
	Members  *Arena[MemberExpr]
	Groups   *Arena[GroupExpr]
	Indexes  *Arena[IndexExpr]
}

func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Idents:   NewArena[IdentExpr](capHint),
		Lits:     NewArena[LitExpr](capHint),
		Unaries:  NewArena[UnaryExpr](capHint),
		Binaries: NewArena[BinaryExpr](capHint),
		Calls:    NewArena[CallExpr](capHint),
		Members:  NewArena[MemberExpr](capHint),
		Groups:   NewArena[GroupExpr](capHint),
		Indexes:  NewArena[IndexExpr](capHint),
	}
}

func (e *Exprs) New(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) NewIdent(name source.StringID, span source.Span) ExprID {
	payload := e.Idents.Allocate(IdentExpr{Name: name})
	return e.New(ExprIdent, span, PayloadID(payload))
}

func (e *Exprs) NewLit(kind LitKind, text string, span source.Span) ExprID {
	payload := e.Lits.Allocate(LitExpr{Kind: kind, Text: text})
	return e.New(ExprLit, span, PayloadID(payload))
}

func (e *Exprs) NewUnary(op token.Kind, operand ExprID, span source.Span) ExprID {
	payload := e.Unaries.Allocate(UnaryExpr{Op: op, Operand: operand})
	return e.New(ExprUnary, span, PayloadID(payload))
}

func (e *Exprs) NewBinary(op token.Kind, lhs, rhs ExprID, span source.Span) ExprID {
	payload := e.Binaries.Allocate(BinaryExpr{Op: op, LHS: lhs, RHS: rhs})
	return e.New(ExprBinary, span, PayloadID(payload))
}

func (e *Exprs) NewCall(callee ExprID, args []ExprID, span source.Span) ExprID {
	payload := e.Calls.Allocate(CallExpr{Callee: callee, Args: append([]ExprID(nil), args...)})
	return e.New(ExprCall, span, PayloadID(payload))
}

func (e *Exprs) NewMember(recv ExprID, name source.StringID, span source.Span) ExprID {
	payload := e.Members.Allocate(MemberExpr{Recv: recv, Name: name})
	return e.New(ExprMember, span, PayloadID(payload))
}

func (e *Exprs) NewGroup(inner ExprID, span source.Span) ExprID {
	payload := e.Groups.Allocate(GroupExpr{Inner: inner})
	return e.New(ExprGroup, span, PayloadID(payload))
}

func (e *Exprs) NewIndex(recv, index ExprID, span source.Span) ExprID {
	payload := e.Indexes.Allocate(IndexExpr{Recv: recv, Index: index})
	return e.New(ExprIndex, span, PayloadID(payload))
}

func (e *Exprs) NewBad(span source.Span) ExprID {
	return e.New(ExprBad, span, NoPayloadID)
}

// Ident returns the payload for an identifier expression, or nil.
func (e *Exprs) Ident(id ExprID) *IdentExpr {
	ex := e.Get(id)
	if ex == nil || ex.Kind != ExprIdent {
		return nil
	}
	return e.Idents.Get(uint32(ex.Payload))
}

// Lit returns the payload for a literal, or nil.
func (e *Exprs) Lit(id ExprID) *LitExpr {
	ex := e.Get(id)
	if ex == nil || ex.Kind != ExprLit {
		return nil
	}
	return e.Lits.Get(uint32(ex.Payload))
}

// Unary returns the payload for a unary expression, or nil.
func (e *Exprs) Unary(id ExprID) *UnaryExpr {
	ex := e.Get(id)
	if ex == nil || ex.Kind != ExprUnary {
		return nil
	}
	return e.Unaries.Get(uint32(ex.Payload))
}

// Binary returns the payload for a binary expression, or nil.
func (e *Exprs) Binary(id ExprID) *BinaryExpr {
	ex := e.Get(id)
	if ex == nil || ex.Kind != ExprBinary {
		return nil
	}
	return e.Binaries.Get(uint32(ex.Payload))
}

// Call returns the payload for a call expression, or nil.
func (e *Exprs) Call(id ExprID) *CallExpr {
	ex := e.Get(id)
	if ex == nil || ex.Kind != ExprCall {
		return nil
	}
	return e.Calls.Get(uint32(ex.Payload))
}

// Member returns the payload for a member access, or nil.
func (e *Exprs) Member(id ExprID) *MemberExpr {
	ex := e.Get(id)
	if ex == nil || ex.Kind != ExprMember {
		return nil
	}
	return e.Members.Get(uint32(ex.Payload))
}

// Group returns the payload for a parenthesized expression, or nil.
func (e *Exprs) Group(id ExprID) *GroupExpr {
	ex := e.Get(id)
	if ex == nil || ex.Kind != ExprGroup {
		return nil
	}
	return e.Groups.Get(uint32(ex.Payload))
}

// Index returns the payload for an index expression, or nil.
func (e *Exprs) Index(id ExprID) *IndexExpr {
	ex := e.Get(id)
	if ex == nil || ex.Kind != ExprIndex {
		return nil
	}
	return e.Indexes.Get(uint32(ex.Payload))
}
