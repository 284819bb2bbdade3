package diag

import (
	"leo/internal/source"
)

// Note is a secondary span with context for a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// FixEdit is a single text replacement.
type FixEdit struct {
	Span    source.Span
	NewText string
}

// Fix is a suggested automated correction.
type Fix struct {
	Title string
	Edits []FixEdit
}

// Diagnostic is an immutable parse/lex finding. Hint is the optional
// remediation line the pretty renderer prints after "=".
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Hint     string
	Notes    []Note
	Fixes    []Fix
}
