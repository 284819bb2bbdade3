package diag

import (
	"testing"

	"leo/internal/source"
)

func TestBagCapAndErrors(t *testing.T) {
	bag := NewBag(2)

	if !bag.Add(New(SevWarning, ParUnexpected, source.Span{}, "w")) {
		t.Fatal("first add rejected")
	}
	if bag.HasErrors() {
		t.Fatal("warning counted as error")
	}
	if !bag.HasWarnings() {
		t.Fatal("warning not detected")
	}

	if !bag.Add(NewError(ParUnexpected, source.Span{}, "e")) {
		t.Fatal("second add rejected")
	}
	if bag.Add(NewError(ParUnexpected, source.Span{}, "over")) {
		t.Fatal("add above cap accepted")
	}
	if !bag.HasErrors() {
		t.Fatal("error not detected")
	}
	if bag.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", bag.Len())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	bag := NewBag(10)
	spanAt := func(start uint32) source.Span {
		return source.Span{Start: start, End: start + 1}
	}

	bag.Add(NewError(ParUnexpected, spanAt(10), "later"))
	bag.Add(NewError(ParFinalizeStatementDeprecated, spanAt(0), "first"))
	bag.Add(NewError(ParUnexpected, spanAt(10), "later")) // duplicate
	bag.Add(New(SevWarning, ParUnexpectedToken, spanAt(0), "warn at same offset"))

	bag.Sort()
	bag.Dedup()

	items := bag.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 after dedup, got %d", len(items))
	}
	if items[0].Code != ParFinalizeStatementDeprecated {
		t.Fatalf("expected deprecated-finalize first, got %s", items[0].Code.ID())
	}
	// Same span: error sorts before warning.
	if items[0].Severity != SevError || items[1].Severity != SevWarning {
		t.Fatalf("severity ordering broken: %v then %v", items[0].Severity, items[1].Severity)
	}
	if items[2].Primary.Start != 10 {
		t.Fatalf("expected later span last, got %d", items[2].Primary.Start)
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{ParUnexpected, "EPAR0370005"},
		{ParFinalizeStatementDeprecated, "EPAR0370031"},
		{UnknownCode, "EPAR0370000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("Code(%d).ID(): got %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(10)
	r := &BagReporter{Bag: bag}

	b := ReportError(r, ParFinalizeStatementDeprecated, source.Span{Start: 0, End: 9}, "deprecated").
		WithHint("use the return form")
	b.Emit()
	b.Emit()

	if bag.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", bag.Len())
	}
	d := bag.Items()[0]
	if d.Hint != "use the return form" {
		t.Fatalf("hint lost: %q", d.Hint)
	}
}
