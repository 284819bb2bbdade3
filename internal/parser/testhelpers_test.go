package parser

import (
	"testing"

	"leo/internal/ast"
	"leo/internal/diag"
	"leo/internal/lexer"
	"leo/internal/source"
)

// parseStmtSrc parses a single statement from an in-memory snippet labeled
// "test", the label the snippet tooling uses.
func parseStmtSrc(t *testing.T, src string) (StmtResult, *ast.Builder, *source.FileSet) {
	t.Helper()

	fs := source.NewFileSet()
	id := fs.AddVirtual("test", []byte(src))

	bag := diag.NewBag(16)
	reporter := &diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{})

	res := ParseStatement(fs, lx, builder, Options{Reporter: reporter})
	return res, builder, fs
}

// parseFileSrc parses a whole in-memory file.
func parseFileSrc(t *testing.T, name, src string) (Result, *ast.Builder, *source.FileSet) {
	t.Helper()

	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(src))

	bag := diag.NewBag(64)
	reporter := &diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{})

	res := ParseFile(fs, lx, builder, Options{Reporter: reporter})
	return res, builder, fs
}
