package source

import (
	"testing"
)

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test", []byte("let x = 1;\nreturn x;\nlast"))

	tests := []struct {
		name     string
		off      uint32
		wantLine uint32
		wantCol  uint32
	}{
		{name: "start of file", off: 0, wantLine: 1, wantCol: 1},
		{name: "middle of first line", off: 4, wantLine: 1, wantCol: 5},
		{name: "newline byte belongs to its line", off: 10, wantLine: 1, wantCol: 11},
		{name: "start of second line", off: 11, wantLine: 2, wantCol: 1},
		{name: "middle of second line", off: 18, wantLine: 2, wantCol: 8},
		{name: "start of last line", off: 21, wantLine: 3, wantCol: 1},
		{name: "end of file", off: 25, wantLine: 3, wantCol: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
			if start.Line != tt.wantLine || start.Col != tt.wantCol {
				t.Fatalf("offset %d: got %d:%d, want %d:%d",
					tt.off, start.Line, start.Col, tt.wantLine, tt.wantCol)
			}
		})
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test", []byte("first\nsecond\n\nfourth"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, ""},
		{4, "fourth"},
		{5, ""},
		{0, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d): got %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestNormalizeCRLFAndBOM(t *testing.T) {
	content, changed := normalizeCRLF([]byte("a\r\nb\rc\r\n"))
	if !changed {
		t.Fatal("expected CRLF normalization")
	}
	if string(content) != "a\nb\rc\n" {
		t.Fatalf("unexpected normalized content: %q", content)
	}

	content, had := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'x'})
	if !had || string(content) != "x" {
		t.Fatalf("BOM not stripped: %q (had=%v)", content, had)
	}

	if _, had := removeBOM([]byte("xy")); had {
		t.Fatal("short content must not report a BOM")
	}
}

func TestAddKeepsLatestVersion(t *testing.T) {
	fs := NewFileSet()
	first := fs.AddVirtual("main.leo", []byte("a"))
	second := fs.AddVirtual("main.leo", []byte("ab"))

	if first == second {
		t.Fatal("expected distinct IDs for re-added path")
	}
	f, ok := fs.GetByPath("main.leo")
	if !ok {
		t.Fatal("path not indexed")
	}
	if f.ID != second {
		t.Fatalf("index points at %d, want latest %d", f.ID, second)
	}
	if fs.Len() != 2 {
		t.Fatalf("expected 2 files, got %d", fs.Len())
	}
}
