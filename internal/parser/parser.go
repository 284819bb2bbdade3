package parser

import (
	"leo/internal/ast"
	"leo/internal/diag"
	"leo/internal/lexer"
	"leo/internal/source"
	"leo/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is exhausted.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// StmtResult is what ParseStatement returns: a single statement node.
type StmtResult struct {
	Stmt ast.StmtID
	Bag  *diag.Bag
}

// Parser holds per-file parsing state.
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	file     ast.FileID
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span // span of the last consumed token, for EOF diagnostics
}

// ParseFile parses one file: top-level items until EOF.
// The lexer must already be bound to a source.File.
func ParseFile(fs *source.FileSet, lx *lexer.Lexer, arenas *ast.Builder, opts Options) Result {
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		file:     arenas.Files.New(lx.EmptySpan()),
		fs:       fs,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	p.parseItems()
	return Result{
		File: p.file,
		Bag:  bagOf(opts.Reporter),
	}
}

// ParseStatement parses exactly one statement. Snippet tooling and the
// conformance tests feed it one statement per (virtual) file.
func ParseStatement(fs *source.FileSet, lx *lexer.Lexer, arenas *ast.Builder, opts Options) StmtResult {
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		file:     arenas.Files.New(lx.EmptySpan()),
		fs:       fs,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	var stmt ast.StmtID
	if !p.at(token.EOF) {
		stmt, _ = p.parseStatement()
	}
	return StmtResult{
		Stmt: stmt,
		Bag:  bagOf(opts.Reporter),
	}
}

func bagOf(r diag.Reporter) *diag.Bag {
	if br, ok := r.(*diag.BagReporter); ok {
		return br.Bag
	}
	return nil
}
