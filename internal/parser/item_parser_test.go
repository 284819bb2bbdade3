package parser

import (
	"testing"

	"leo/internal/ast"
)

const sampleProgram = `import credits.aleo;

program token.aleo {
    mapping balances: address => u64;

    record Token {
        owner: address,
        amount: u64,
    }

    struct Pair {
        first: u64,
        second: u64,
    }

    const LIMIT: u64 = 1000u64;

    transition mint(public receiver: address, amount: u64) -> Token {
        return Token then finalize(receiver, amount);
    }

    function sum(a: u64, b: u64) -> u64 {
        return a + b;
    }

    inline double(x: u64) -> u64 {
        return x * 2u64;
    }
}
`

func TestParseFileFullProgram(t *testing.T) {
	res, builder, _ := parseFileSrc(t, "token.leo", sampleProgram)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Items())
	}

	file := builder.Files.Get(res.File)
	if len(file.Items) != 2 {
		t.Fatalf("top-level items: %d, want import + program", len(file.Items))
	}

	imp := builder.Items.Import(file.Items[0])
	if imp == nil || builder.Name(imp.Name) != "credits.aleo" {
		t.Fatalf("import: %+v", imp)
	}

	prog := builder.Items.Program(file.Items[1])
	if prog == nil || builder.Name(prog.Name) != "token.aleo" {
		t.Fatalf("program: %+v", prog)
	}
	if len(prog.Items) != 7 {
		t.Fatalf("program items: %d, want 7", len(prog.Items))
	}

	wantKinds := []ast.ItemKind{
		ast.ItemMapping, ast.ItemRecord, ast.ItemStruct, ast.ItemConst,
		ast.ItemTransition, ast.ItemFunction, ast.ItemInline,
	}
	for i, want := range wantKinds {
		if got := builder.Items.Get(prog.Items[i]).Kind; got != want {
			t.Errorf("program item %d: kind %d, want %d", i, got, want)
		}
	}
}

func TestParseMappingShape(t *testing.T) {
	res, builder, _ := parseFileSrc(t, "m.leo", "mapping balances: address => u64;")
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Items())
	}
	file := builder.Files.Get(res.File)
	m := builder.Items.Mapping(file.Items[0])
	if builder.Name(m.Key.Name) != "address" || builder.Name(m.Value.Name) != "u64" {
		t.Fatalf("mapping types: %s => %s", builder.Name(m.Key.Name), builder.Name(m.Value.Name))
	}
}

func TestParseTransitionParams(t *testing.T) {
	src := "transition t(public a: u64, constant b: u64, private c: u64, d: u64) { return; }"
	res, builder, _ := parseFileSrc(t, "t.leo", src)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Items())
	}
	file := builder.Files.Get(res.File)
	fn := builder.Items.Fn(file.Items[0])
	params := builder.Items.CollectParams(fn)
	if len(params) != 4 {
		t.Fatalf("params: %d", len(params))
	}
	wantModes := []ast.ParamMode{ast.ParamPublic, ast.ParamConstant, ast.ParamPrivate, ast.ParamNone}
	for i, want := range wantModes {
		if params[i].Mode != want {
			t.Errorf("param %d mode: %d, want %d", i, params[i].Mode, want)
		}
	}
}

func TestTopLevelRecoveryKeepsLaterItems(t *testing.T) {
	src := "garbage garbage\nimport credits.aleo;"
	res, builder, _ := parseFileSrc(t, "bad.leo", src)
	if !res.Bag.HasErrors() {
		t.Fatal("expected a diagnostic for the leading garbage")
	}
	file := builder.Files.Get(res.File)
	if len(file.Items) != 1 {
		t.Fatalf("recovered items: %d, want the import", len(file.Items))
	}
	if builder.Items.Import(file.Items[0]) == nil {
		t.Fatal("recovered item is not the import")
	}
}

func TestDeprecatedFinalizeInsideTransition(t *testing.T) {
	src := "transition t() {\n    finalize(foo);\n}"
	res, builder, _ := parseFileSrc(t, "t.leo", src)
	if res.Bag.Len() != 1 {
		t.Fatalf("diagnostics: %d, want 1", res.Bag.Len())
	}
	file := builder.Files.Get(res.File)
	fn := builder.Items.Fn(file.Items[0])
	body := builder.Stmts.Block(fn.Body)
	if len(body.Stmts) != 1 || builder.Stmts.Finalize(body.Stmts[0]) == nil {
		t.Fatal("finalize statement node lost inside the block")
	}
}
