package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"leo/internal/ast"
)

// DumpAST writes an indented tree of the parsed file, one node per line.
// Meant for `leo parse --dump-ast` and test debugging, not machine parsing.
func DumpAST(w io.Writer, b *ast.Builder, fileID ast.FileID) error {
	file := b.Files.Get(fileID)
	if file == nil {
		return fmt.Errorf("dump ast: invalid file id %d", fileID)
	}
	d := astDumper{w: w, b: b}
	d.line(0, "file %s", file.Span)
	for _, item := range file.Items {
		d.item(1, item)
	}
	return d.err
}

type astDumper struct {
	w   io.Writer
	b   *ast.Builder
	err error
}

func (d *astDumper) line(depth int, format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func (d *astDumper) item(depth int, id ast.ItemID) {
	item := d.b.Items.Get(id)
	if item == nil {
		d.line(depth, "item <invalid %d>", id)
		return
	}
	switch item.Kind {
	case ast.ItemProgram:
		p := d.b.Items.Program(id)
		d.line(depth, "program %s", d.b.Name(p.Name))
		for _, sub := range p.Items {
			d.item(depth+1, sub)
		}
	case ast.ItemFunction, ast.ItemTransition, ast.ItemInline:
		fn := d.b.Items.Fn(id)
		label := map[ast.ItemKind]string{
			ast.ItemFunction:   "function",
			ast.ItemTransition: "transition",
			ast.ItemInline:     "inline",
		}[item.Kind]
		var params []string
		for _, p := range d.b.Items.CollectParams(fn) {
			params = append(params, d.b.Name(p.Name))
		}
		d.line(depth, "%s %s(%s)", label, d.b.Name(fn.Name), strings.Join(params, ", "))
		if fn.Body.IsValid() {
			d.stmt(depth+1, fn.Body)
		}
	case ast.ItemStruct, ast.ItemRecord:
		st := d.b.Items.Struct(id)
		label := "struct"
		if item.Kind == ast.ItemRecord {
			label = "record"
		}
		d.line(depth, "%s %s (%d fields)", label, d.b.Name(st.Name), st.FieldsCount)
	case ast.ItemMapping:
		m := d.b.Items.Mapping(id)
		d.line(depth, "mapping %s: %s => %s", d.b.Name(m.Name), d.b.Name(m.Key.Name), d.b.Name(m.Value.Name))
	case ast.ItemImport:
		im := d.b.Items.Import(id)
		d.line(depth, "import %s", d.b.Name(im.Name))
	case ast.ItemConst:
		c := d.b.Items.Const(id)
		d.line(depth, "const %s", d.b.Name(c.Name))
		d.expr(depth+1, c.Value)
	default:
		d.line(depth, "item kind=%d", item.Kind)
	}
}

func (d *astDumper) stmt(depth int, id ast.StmtID) {
	st := d.b.Stmts.Get(id)
	if st == nil {
		d.line(depth, "stmt <invalid %d>", id)
		return
	}
	switch st.Kind {
	case ast.StmtBlock:
		blk := d.b.Stmts.Block(id)
		d.line(depth, "block")
		for _, sub := range blk.Stmts {
			d.stmt(depth+1, sub)
		}
	case ast.StmtLet, ast.StmtConst:
		let := d.b.Stmts.Let(id)
		kw := "let"
		if st.Kind == ast.StmtConst {
			kw = "const"
		}
		d.line(depth, "%s %s", kw, d.b.Name(let.Name))
		d.expr(depth+1, let.Value)
	case ast.StmtAssign:
		as := d.b.Stmts.Assign(id)
		d.line(depth, "assign %s", as.Op)
		d.expr(depth+1, as.Target)
		d.expr(depth+1, as.Value)
	case ast.StmtReturn:
		ret := d.b.Stmts.Return(id)
		d.line(depth, "return")
		if ret.Value.IsValid() {
			d.expr(depth+1, ret.Value)
		}
		if ret.HasFinalize {
			d.line(depth+1, "then finalize (%d args)", len(ret.FinalizeArgs))
			for _, arg := range ret.FinalizeArgs {
				d.expr(depth+2, arg)
			}
		}
	case ast.StmtIf:
		ifs := d.b.Stmts.If(id)
		d.line(depth, "if")
		d.expr(depth+1, ifs.Cond)
		d.stmt(depth+1, ifs.Then)
		if ifs.Else.IsValid() {
			d.stmt(depth+1, ifs.Else)
		}
	case ast.StmtFor:
		f := d.b.Stmts.For(id)
		d.line(depth, "for %s", d.b.Name(f.Var))
		d.expr(depth+1, f.From)
		d.expr(depth+1, f.To)
		d.stmt(depth+1, f.Body)
	case ast.StmtExpr:
		es := d.b.Stmts.Expr(id)
		d.line(depth, "expr-stmt")
		d.expr(depth+1, es.Expr)
	case ast.StmtFinalize:
		d.line(depth, "finalize (deprecated)")
	case ast.StmtBad:
		d.line(depth, "bad-stmt")
	default:
		d.line(depth, "stmt kind=%d", st.Kind)
	}
}

func (d *astDumper) expr(depth int, id ast.ExprID) {
	ex := d.b.Exprs.Get(id)
	if ex == nil {
		d.line(depth, "expr <invalid %d>", id)
		return
	}
	switch ex.Kind {
	case ast.ExprIdent:
		d.line(depth, "ident %s", d.b.Name(d.b.Exprs.Ident(id).Name))
	case ast.ExprLit:
		lit := d.b.Exprs.Lit(id)
		d.line(depth, "lit %s", lit.Text)
	case ast.ExprUnary:
		un := d.b.Exprs.Unary(id)
		d.line(depth, "unary %s", un.Op)
		d.expr(depth+1, un.Operand)
	case ast.ExprBinary:
		bin := d.b.Exprs.Binary(id)
		d.line(depth, "binary %s", bin.Op)
		d.expr(depth+1, bin.LHS)
		d.expr(depth+1, bin.RHS)
	case ast.ExprCall:
		call := d.b.Exprs.Call(id)
		d.line(depth, "call (%d args)", len(call.Args))
		d.expr(depth+1, call.Callee)
		for _, arg := range call.Args {
			d.expr(depth+1, arg)
		}
	case ast.ExprMember:
		mem := d.b.Exprs.Member(id)
		d.line(depth, "member .%s", d.b.Name(mem.Name))
		d.expr(depth+1, mem.Recv)
	case ast.ExprGroup:
		d.line(depth, "group")
		d.expr(depth+1, d.b.Exprs.Group(id).Inner)
	case ast.ExprIndex:
		idx := d.b.Exprs.Index(id)
		d.line(depth, "index")
		d.expr(depth+1, idx.Recv)
		d.expr(depth+1, idx.Index)
	case ast.ExprBad:
		d.line(depth, "bad-expr")
	default:
		d.line(depth, "expr kind=%d", ex.Kind)
	}
}
