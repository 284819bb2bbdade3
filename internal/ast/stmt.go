package ast

import (
	"leo/internal/source"
	"leo/internal/token"
)

type StmtKind uint8

const (
	StmtBlock StmtKind = iota
	StmtLet
	StmtConst
	StmtAssign
	StmtReturn
	StmtIf
	StmtFor
	StmtExpr
	// StmtFinalize is the deprecated statement form `finalize(args);`.
	// The parser reports it and skips the argument list, so the node only
	// records where the keyword (and an adjacent `(`) appeared.
	StmtFinalize
	// StmtBad is a placeholder produced by error recovery.
	StmtBad
)

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// BlockStmt is `{ stmts }`.
type BlockStmt struct {
	Stmts []StmtID
}

// LetStmt covers `let` and `const` definitions; the Stmt kind distinguishes
// them.
type LetStmt struct {
	Name    source.StringID
	Type    TypeRef
	HasType bool
	Value   ExprID
}

// AssignStmt is `target op value;` where op is `=` or a compound assignment.
type AssignStmt struct {
	Target ExprID
	Op     token.Kind
	Value  ExprID
}

// ReturnStmt is `return [value] [then finalize(args)];`.
type ReturnStmt struct {
	Value        ExprID // NoExprID when the return carries no value
	HasFinalize  bool
	ThenSpan     source.Span
	FinalizeSpan source.Span
	FinalizeArgs []ExprID
}

// IfStmt is `if cond block [else block-or-if]`.
type IfStmt struct {
	Cond ExprID
	Then StmtID
	Else StmtID // NoStmtID when absent
}

// ForStmt is `for name: type in from..to block`.
type ForStmt struct {
	Var     source.StringID
	Type    TypeRef
	HasType bool
	From    ExprID
	To      ExprID
	Body    StmtID
}

// ExprStmt is `expr;`.
type ExprStmt struct {
	Expr ExprID
}

// FinalizeStmt records the deprecated `finalize` statement site.
type FinalizeStmt struct {
	KeywordSpan source.Span
}

type Stmts struct {
	Arena     *Arena[Stmt]
	Blocks    *Arena[BlockStmt]
	Lets      *Arena[LetStmt]
	Assigns   *Arena[AssignStmt]
	Returns   *Arena[ReturnStmt]
	Ifs       *Arena[IfStmt]
	Fors      *Arena[ForStmt]
	ExprStmts *Arena[ExprStmt]
	Finalizes *Arena[FinalizeStmt]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:     NewArena[Stmt](capHint),
		Blocks:    NewArena[BlockStmt](capHint),
		Lets:      NewArena[LetStmt](capHint),
		Assigns:   NewArena[AssignStmt](capHint),
		Returns:   NewArena[ReturnStmt](capHint),
		Ifs:       NewArena[IfStmt](capHint),
		Fors:      NewArena[ForStmt](capHint),
		ExprStmts: NewArena[ExprStmt](capHint),
		Finalizes: NewArena[FinalizeStmt](capHint),
	}
}

func (s *Stmts) New(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) NewBlock(stmts []StmtID, span source.Span) StmtID {
	payload := s.Blocks.Allocate(BlockStmt{Stmts: append([]StmtID(nil), stmts...)})
	return s.New(StmtBlock, span, PayloadID(payload))
}

// NewLet allocates a let or const statement. kind must be StmtLet or StmtConst.
func (s *Stmts) NewLet(kind StmtKind, name source.StringID, typ TypeRef, hasType bool, value ExprID, span source.Span) StmtID {
	payload := s.Lets.Allocate(LetStmt{Name: name, Type: typ, HasType: hasType, Value: value})
	return s.New(kind, span, PayloadID(payload))
}

func (s *Stmts) NewAssign(target ExprID, op token.Kind, value ExprID, span source.Span) StmtID {
	payload := s.Assigns.Allocate(AssignStmt{Target: target, Op: op, Value: value})
	return s.New(StmtAssign, span, PayloadID(payload))
}

func (s *Stmts) NewReturn(ret ReturnStmt, span source.Span) StmtID {
	payload := s.Returns.Allocate(ret)
	return s.New(StmtReturn, span, PayloadID(payload))
}

func (s *Stmts) NewIf(cond ExprID, then, els StmtID, span source.Span) StmtID {
	payload := s.Ifs.Allocate(IfStmt{Cond: cond, Then: then, Else: els})
	return s.New(StmtIf, span, PayloadID(payload))
}

func (s *Stmts) NewFor(f ForStmt, span source.Span) StmtID {
	payload := s.Fors.Allocate(f)
	return s.New(StmtFor, span, PayloadID(payload))
}

func (s *Stmts) NewExprStmt(expr ExprID, span source.Span) StmtID {
	payload := s.ExprStmts.Allocate(ExprStmt{Expr: expr})
	return s.New(StmtExpr, span, PayloadID(payload))
}

func (s *Stmts) NewFinalize(keyword, span source.Span) StmtID {
	payload := s.Finalizes.Allocate(FinalizeStmt{KeywordSpan: keyword})
	return s.New(StmtFinalize, span, PayloadID(payload))
}

func (s *Stmts) NewBad(span source.Span) StmtID {
	return s.New(StmtBad, span, NoPayloadID)
}

// Block returns the payload for a block statement, or nil.
func (s *Stmts) Block(id StmtID) *BlockStmt {
	st := s.Get(id)
	if st == nil || st.Kind != StmtBlock {
		return nil
	}
	return s.Blocks.Get(uint32(st.Payload))
}

// Let returns the payload for a let or const statement, or nil.
func (s *Stmts) Let(id StmtID) *LetStmt {
	st := s.Get(id)
	if st == nil || (st.Kind != StmtLet && st.Kind != StmtConst) {
		return nil
	}
	return s.Lets.Get(uint32(st.Payload))
}

// Assign returns the payload for an assignment, or nil.
func (s *Stmts) Assign(id StmtID) *AssignStmt {
	st := s.Get(id)
	if st == nil || st.Kind != StmtAssign {
		return nil
	}
	return s.Assigns.Get(uint32(st.Payload))
}

// Return returns the payload for a return statement, or nil.
func (s *Stmts) Return(id StmtID) *ReturnStmt {
	st := s.Get(id)
	if st == nil || st.Kind != StmtReturn {
		return nil
	}
	return s.Returns.Get(uint32(st.Payload))
}

// If returns the payload for a conditional, or nil.
func (s *Stmts) If(id StmtID) *IfStmt {
	st := s.Get(id)
	if st == nil || st.Kind != StmtIf {
		return nil
	}
	return s.Ifs.Get(uint32(st.Payload))
}

// For returns the payload for a loop, or nil.
func (s *Stmts) For(id StmtID) *ForStmt {
	st := s.Get(id)
	if st == nil || st.Kind != StmtFor {
		return nil
	}
	return s.Fors.Get(uint32(st.Payload))
}

// Expr returns the payload for an expression statement, or nil.
func (s *Stmts) Expr(id StmtID) *ExprStmt {
	st := s.Get(id)
	if st == nil || st.Kind != StmtExpr {
		return nil
	}
	return s.ExprStmts.Get(uint32(st.Payload))
}

// Finalize returns the payload for a deprecated finalize statement, or nil.
func (s *Stmts) Finalize(id StmtID) *FinalizeStmt {
	st := s.Get(id)
	if st == nil || st.Kind != StmtFinalize {
		return nil
	}
	return s.Finalizes.Get(uint32(st.Payload))
}
