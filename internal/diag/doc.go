// Package diag defines the diagnostic model shared by the lexer, parser,
// and driver.
//
// Diagnostic is the central record: severity, a stable code (EPAR037-family
// identifier), a message, the primary source span, an optional remediation
// hint, plus optional notes and fix suggestions. Diagnostics are plain
// values; producers construct them once and never mutate them afterwards,
// so identical input text always yields byte-identical output.
//
// Producers emit through the Reporter interface (usually a BagReporter) or
// the fluent ReportBuilder. Bags support deterministic sorting, merging, and
// deduplication. Rendering lives in internal/diagfmt; this package stays
// free of formatting and IO.
package diag
