package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"leo/internal/diag"
)

func TestParseSourceCleanProgram(t *testing.T) {
	res, err := ParseSource("main.leo", []byte("program test.aleo {\n    function f() { return; }\n}\n"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Items())
	}
	file := res.Builder.Files.Get(res.FileID)
	if len(file.Items) != 1 {
		t.Fatalf("items: %d", len(file.Items))
	}
}

func TestParseSourceDeprecatedFinalize(t *testing.T) {
	res, err := ParseSource("main.leo", []byte("function f() {\n    finalize(foo);\n}\n"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.Len() != 1 {
		t.Fatalf("diagnostics: %d, want 1", res.Bag.Len())
	}
	d := res.Bag.Items()[0]
	if d.Code != diag.ParFinalizeStatementDeprecated {
		t.Fatalf("code: %s", d.Code.ID())
	}
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestCheckDirOrdersAndCounts(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.leo":         "function f() { return; }\n",
		"b.leo":         "function g() { finalize(x); }\n",
		"sub/c.leo":     "function h() { return; }\n",
		"ignored.txt":   "not leo\n",
		"build/d.leo":   "skipped",
		".hidden/e.leo": "skipped",
	})

	res, err := CheckDir(context.Background(), dir, 0, 2, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Reports) != 3 {
		t.Fatalf("reports: %d, want 3", len(res.Reports))
	}
	// Path order is stable regardless of worker scheduling.
	if filepath.Base(res.Reports[0].Path) != "a.leo" ||
		filepath.Base(res.Reports[1].Path) != "b.leo" ||
		filepath.Base(res.Reports[2].Path) != "c.leo" {
		t.Fatalf("order: %v", []string{res.Reports[0].Path, res.Reports[1].Path, res.Reports[2].Path})
	}
	if res.Broken != 1 || !res.HasErrors() {
		t.Fatalf("broken: %d", res.Broken)
	}
}

func TestCheckDirPublishesEvents(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.leo": "function f() { return; }\n",
	})

	sink := NewChannelSink(16)
	res, err := CheckDir(context.Background(), dir, 0, 1, sink, nil)
	if err != nil {
		t.Fatal(err)
	}
	sink.Close()
	_ = res

	var statuses []Status
	for ev := range sink.Events() {
		statuses = append(statuses, ev.Status)
	}
	if len(statuses) != 2 || statuses[0] != StatusStart || statuses[1] != StatusOK {
		t.Fatalf("events: %v", statuses)
	}
}

func TestCheckDirUsesCache(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"bad.leo": "function f() { finalize(x); }\n",
	})
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}

	first, err := CheckDir(context.Background(), dir, 0, 1, nil, cache)
	if err != nil {
		t.Fatal(err)
	}
	if first.Reports[0].Cached {
		t.Fatal("first run must parse, not hit the cache")
	}
	if !first.Reports[0].Bag.HasErrors() {
		t.Fatal("expected the deprecated-finalize error")
	}

	second, err := CheckDir(context.Background(), dir, 0, 1, nil, cache)
	if err != nil {
		t.Fatal(err)
	}
	if !second.Reports[0].Cached {
		t.Fatal("second run must hit the cache")
	}
	// Replayed diagnostics keep code, message, hint, and span.
	want := first.Reports[0].Bag.Items()[0]
	got := second.Reports[0].Bag.Items()[0]
	if got.Code != want.Code || got.Message != want.Message || got.Hint != want.Hint ||
		got.Primary.Start != want.Primary.Start || got.Primary.End != want.Primary.End {
		t.Fatalf("replayed diagnostic differs:\nwant %+v\ngot  %+v", want, got)
	}
}

func TestDiskCacheSchemaMismatchIsMiss(t *testing.T) {
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}

	key := Digest{1, 2, 3}
	if err := cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion + 1, Path: "x"}); err != nil {
		t.Fatal(err)
	}
	var out DiskPayload
	ok, err := cache.Get(key, &out)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("foreign schema version must read as a miss")
	}
}

func TestCheckDirMissingDir(t *testing.T) {
	_, err := CheckDir(context.Background(), filepath.Join(t.TempDir(), "nope"), 0, 1, nil, nil)
	if err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}
