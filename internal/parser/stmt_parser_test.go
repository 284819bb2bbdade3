package parser

import (
	"testing"

	"leo/internal/ast"
	"leo/internal/diag"
	"leo/internal/lexer"
	"leo/internal/source"
	"leo/internal/token"
)

func TestLetStatement(t *testing.T) {
	res, builder, _ := parseStmtSrc(t, "let total: u64 = a + 1u64;")
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Items())
	}

	let := builder.Stmts.Let(res.Stmt)
	if let == nil {
		t.Fatal("statement is not a let")
	}
	if builder.Name(let.Name) != "total" {
		t.Fatalf("name: %q", builder.Name(let.Name))
	}
	if !let.HasType || builder.Name(let.Type.Name) != "u64" {
		t.Fatalf("type: %+v", let.Type)
	}
	bin := builder.Exprs.Binary(let.Value)
	if bin == nil || bin.Op != token.Plus {
		t.Fatalf("value is not a + expression")
	}
}

func TestAssignStatement(t *testing.T) {
	res, builder, _ := parseStmtSrc(t, "balance += amount;")
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Items())
	}
	as := builder.Stmts.Assign(res.Stmt)
	if as == nil || as.Op != token.PlusAssign {
		t.Fatalf("assign shape: %+v", as)
	}
}

func TestIfElseChain(t *testing.T) {
	res, builder, _ := parseStmtSrc(t, "if a < b { return; } else if a == b { return; } else { return; }")
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Items())
	}
	ifs := builder.Stmts.If(res.Stmt)
	if ifs == nil || !ifs.Else.IsValid() {
		t.Fatal("else branch lost")
	}
	elseIf := builder.Stmts.If(ifs.Else)
	if elseIf == nil || !elseIf.Else.IsValid() {
		t.Fatal("else-if chain lost")
	}
}

func TestForLoop(t *testing.T) {
	res, builder, _ := parseStmtSrc(t, "for i: u32 in 0u32..10u32 { total += i; }")
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Items())
	}
	f := builder.Stmts.For(res.Stmt)
	if f == nil || builder.Name(f.Var) != "i" || !f.HasType {
		t.Fatalf("loop shape: %+v", f)
	}
	body := builder.Stmts.Block(f.Body)
	if body == nil || len(body.Stmts) != 1 {
		t.Fatal("loop body lost")
	}
}

func TestExpressionPrecedence(t *testing.T) {
	res, builder, _ := parseStmtSrc(t, "x = a + b * c;")
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Items())
	}
	as := builder.Stmts.Assign(res.Stmt)
	top := builder.Exprs.Binary(as.Value)
	if top == nil || top.Op != token.Plus {
		t.Fatal("+ must be the root")
	}
	rhs := builder.Exprs.Binary(top.RHS)
	if rhs == nil || rhs.Op != token.Star {
		t.Fatal("* must bind tighter than +")
	}
}

func TestExponentIsRightAssociative(t *testing.T) {
	res, builder, _ := parseStmtSrc(t, "x = a ** b ** c;")
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Items())
	}
	as := builder.Stmts.Assign(res.Stmt)
	top := builder.Exprs.Binary(as.Value)
	if top == nil || top.Op != token.StarStar {
		t.Fatal("** must be the root")
	}
	if builder.Exprs.Binary(top.RHS) == nil {
		t.Fatal("** must nest to the right")
	}
	if builder.Exprs.Binary(top.LHS) != nil {
		t.Fatal("** nested to the left")
	}
}

func TestPostfixChain(t *testing.T) {
	res, builder, _ := parseStmtSrc(t, "m.get(key)[0u8];")
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Items())
	}
	es := builder.Stmts.Expr(res.Stmt)
	idx := builder.Exprs.Index(es.Expr)
	if idx == nil {
		t.Fatal("outermost must be the index")
	}
	call := builder.Exprs.Call(idx.Recv)
	if call == nil || len(call.Args) != 1 {
		t.Fatal("call lost under the index")
	}
	if builder.Exprs.Member(call.Callee) == nil {
		t.Fatal("member access lost under the call")
	}
}

func TestExpectedExpressionDiagnostic(t *testing.T) {
	res, _, _ := parseStmtSrc(t, "let x = ;")
	if res.Bag.Len() != 1 {
		t.Fatalf("expected one diagnostic, got %d", res.Bag.Len())
	}
	if res.Bag.Items()[0].Code != diag.ParExpectedExpression {
		t.Fatalf("code: %s", res.Bag.Items()[0].Code.ID())
	}
}

func TestErrorAtEOFPointsPastLastToken(t *testing.T) {
	res, _, _ := parseStmtSrc(t, "return a")
	if res.Bag.Len() != 1 {
		t.Fatalf("expected one diagnostic, got %d", res.Bag.Len())
	}
	d := res.Bag.Items()[0]
	if d.Code != diag.ParUnexpected {
		t.Fatalf("code: %s", d.Code.ID())
	}
	if d.Message != "expected ; -- found '<eof>'" {
		t.Fatalf("message: %q", d.Message)
	}
	// Zero-width span just past `a`.
	if d.Primary.Start != 8 || d.Primary.End != 8 {
		t.Fatalf("span: %d..%d", d.Primary.Start, d.Primary.End)
	}
}

func TestResyncStopsAtClosingBrace(t *testing.T) {
	res, builder, _ := parseStmtSrc(t, "{ finalize(oops; return; }")
	blk := builder.Stmts.Block(res.Stmt)
	if blk == nil {
		t.Fatal("block lost")
	}
	// The finalize statement recovers at its `;`; the return still parses.
	if len(blk.Stmts) != 2 {
		t.Fatalf("statements in block: %d", len(blk.Stmts))
	}
	if res.Bag.Len() != 1 {
		t.Fatalf("expected one diagnostic, got %d", res.Bag.Len())
	}
}

func TestMaxErrorsBudget(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test", []byte("{ let = ; let = ; let = ; }"))

	bag := diag.NewBag(16)
	reporter := &diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{})

	res := ParseStatement(fs, lx, builder, Options{MaxErrors: 2, Reporter: reporter})
	if res.Bag.Len() != 2 {
		t.Fatalf("budget of 2 produced %d diagnostics", res.Bag.Len())
	}
}
