package diagfmt

import (
	"strings"
	"testing"

	"leo/internal/diag"
	"leo/internal/source"
)

func renderOne(t *testing.T, src string, d diag.Diagnostic) string {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test", []byte(src))
	d.Primary.File = id
	return Format(d, fs)
}

func TestFormatDeprecatedFinalize(t *testing.T) {
	got := renderOne(t, "finalize(;", diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.ParFinalizeStatementDeprecated,
		Message:  "The `finalize` statement is deprecated.",
		Hint:     "Use `return <expr> then finalize(<args>)` instead.",
		Primary:  source.Span{Start: 0, End: 9},
	})

	want := "Error [EPAR0370031]: The `finalize` statement is deprecated.\n" +
		"    --> test:1:1\n" +
		"     |\n" +
		"   1 | finalize(;\n" +
		"     | ^^^^^^^^^\n" +
		"     |\n" +
		"     = Use `return <expr> then finalize(<args>)` instead."

	if got != want {
		t.Fatalf("rendering mismatch:\nwant:\n%s\n\ngot:\n%s", want, got)
	}
}

func TestFormatExpectedSemicolon(t *testing.T) {
	got := renderOne(t, "async async finalize(foo);", diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.ParUnexpected,
		Message:  "expected ; -- found 'async'",
		Primary:  source.Span{Start: 6, End: 11},
	})

	want := "Error [EPAR0370005]: expected ; -- found 'async'\n" +
		"    --> test:1:7\n" +
		"     |\n" +
		"   1 | async async finalize(foo);\n" +
		"     |       ^^^^^"

	if got != want {
		t.Fatalf("rendering mismatch:\nwant:\n%s\n\ngot:\n%s", want, got)
	}
}

func TestFormatNoTrailingNewlineAndNoHintBlock(t *testing.T) {
	got := renderOne(t, "finalize;", diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.ParUnexpected,
		Message:  "expected expression",
		Primary:  source.Span{Start: 0, End: 8},
	})
	if strings.HasSuffix(got, "\n") {
		t.Fatal("rendered diagnostic must not end with a newline")
	}
	if strings.Contains(got, "=") {
		t.Fatal("hint block rendered for a diagnostic without a hint")
	}
	lines := strings.Split(got, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines without a hint, got %d:\n%s", len(lines), got)
	}
}

func TestFormatGutterWidths(t *testing.T) {
	// The gutter grows with the digit count of the start line number.
	src := strings.Repeat("pad;\n", 9) + "finalize;\n"
	got := renderOne(t, src, diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.ParFinalizeStatementDeprecated,
		Message:  "The `finalize` statement is deprecated.",
		Hint:     "Use `return <expr> then finalize(<args>)` instead.",
		Primary:  source.Span{Start: 45, End: 53},
	})

	want := "Error [EPAR0370031]: The `finalize` statement is deprecated.\n" +
		"     --> test:10:1\n" +
		"      |\n" +
		"   10 | finalize;\n" +
		"      | ^^^^^^^^\n" +
		"      |\n" +
		"      = Use `return <expr> then finalize(<args>)` instead."

	if got != want {
		t.Fatalf("rendering mismatch:\nwant:\n%s\n\ngot:\n%s", want, got)
	}
}

func TestFormatWideRunes(t *testing.T) {
	// "你好" occupies two cells per rune; carets must stay aligned.
	src := "let 你好 = 1;"
	got := renderOne(t, src, diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.ParUnexpected,
		Message:  "expected ; -- found '你好'",
		Primary:  source.Span{Start: 4, End: 10},
	})

	lines := strings.Split(got, "\n")
	underline := lines[4]
	want := "     |     ^^^^"
	if underline != want {
		t.Fatalf("underline: got %q, want %q", underline, want)
	}
}

func TestFormatZeroWidthSpanGetsOneCaret(t *testing.T) {
	got := renderOne(t, "x", diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.ParUnexpectedEOF,
		Message:  "unexpected end of file",
		Primary:  source.Span{Start: 1, End: 1},
	})
	lines := strings.Split(got, "\n")
	underline := lines[4]
	if underline != "     |  ^" {
		t.Fatalf("underline: got %q", underline)
	}
}

func TestFormatMultiLineSpan(t *testing.T) {
	got := renderOne(t, "foo(\nbar)", diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.ParMismatchedDelimiter,
		Message:  "unclosed delimiter",
		Primary:  source.Span{Start: 0, End: 9},
	})

	want := "Error [EPAR0370016]: unclosed delimiter\n" +
		"    --> test:1:1\n" +
		"     |\n" +
		"   1 | foo(\n" +
		"   2 | bar)\n" +
		"     | ^^^^"

	if got != want {
		t.Fatalf("rendering mismatch:\nwant:\n%s\n\ngot:\n%s", want, got)
	}
}

func TestFormatWarningHeader(t *testing.T) {
	got := renderOne(t, "x;", diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.ParUnexpectedToken,
		Message:  "suspicious token",
		Primary:  source.Span{Start: 0, End: 1},
	})
	if !strings.HasPrefix(got, "Warning [EPAR0370003]: suspicious token") {
		t.Fatalf("header: %q", strings.Split(got, "\n")[0])
	}
}

func TestPrettySeparatesDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test", []byte("a;\nb;\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.ParUnexpected, source.Span{File: id, Start: 0, End: 1}, "one"))
	bag.Add(diag.NewError(diag.ParUnexpected, source.Span{File: id, Start: 3, End: 4}, "two"))

	var sb strings.Builder
	if err := Pretty(&sb, bag, fs, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	out := sb.String()

	if !strings.HasSuffix(out, "\n") {
		t.Fatal("stream output must end with a newline")
	}
	if !strings.Contains(out, "^\n\nError") {
		t.Fatal("diagnostics must be separated by a blank line")
	}
}

func TestColorDisabledKeepsBytes(t *testing.T) {
	d := diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.ParUnexpected,
		Message:  "m",
		Primary:  source.Span{Start: 0, End: 1},
	}
	fs := source.NewFileSet()
	id := fs.AddVirtual("test", []byte("x;"))
	d.Primary.File = id

	plain := FormatOpts(d, fs, PrettyOpts{Color: false})
	if strings.Contains(plain, "\x1b[") {
		t.Fatal("escape sequences present with color disabled")
	}
	if plain != Format(d, fs) {
		t.Fatal("default Format differs from explicit no-color rendering")
	}
}
