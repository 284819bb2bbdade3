package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"leo/internal/diag"
	"leo/internal/source"
)

// Format renders one diagnostic in the compiler's excerpt layout:
//
//	Error [EPAR0370031]: The `finalize` statement is deprecated.
//	    --> test:1:1
//	     |
//	   1 | finalize(;
//	     | ^^^^^^^^^
//	     |
//	     = Use `return <expr> then finalize(<args>)` instead.
//
// The result carries no trailing newline. Byte content is stable: a given
// diagnostic over a given file always renders identically.
func Format(d diag.Diagnostic, fs *source.FileSet) string {
	return FormatOpts(d, fs, PrettyOpts{})
}

// FormatOpts is Format with explicit options.
func FormatOpts(d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) string {
	file := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	path := formatPath(file, fs, opts.PathMode)

	paint := newPainter(opts.Color)

	lineStr := strconv.FormatUint(uint64(start.Line), 10)
	w := len(lineStr)
	gutter := strings.Repeat(" ", w+4) + paint.frame("|")

	var b strings.Builder

	// Header.
	b.WriteString(paint.severity(d.Severity, fmt.Sprintf("%s [%s]", d.Severity.Header(), d.Code.ID())))
	b.WriteString(": ")
	b.WriteString(d.Message)
	b.WriteByte('\n')

	// Arrow line with the primary location.
	b.WriteString(strings.Repeat(" ", w+3))
	b.WriteString(paint.frame("-->"))
	fmt.Fprintf(&b, " %s:%d:%d\n", path, start.Line, start.Col)

	// Bare gutter.
	b.WriteString(gutter)
	b.WriteByte('\n')

	// Covered source lines.
	for ln := start.Line; ln <= end.Line; ln++ {
		text := file.GetLine(ln)
		b.WriteString(paint.frame(fmt.Sprintf("%*d |", w+3, ln)))
		b.WriteByte(' ')
		b.WriteString(text)
		b.WriteByte('\n')
	}

	// Underline: from the start column over the span's on-screen width on
	// the first line, at least one caret.
	firstLine := file.GetLine(start.Line)
	prefix, underlined := splitAtColumn(firstLine, start, end, d.Primary)
	pad := runewidth.StringWidth(prefix)
	carets := runewidth.StringWidth(underlined)
	if carets < 1 {
		carets = 1
	}
	b.WriteString(gutter)
	b.WriteByte(' ')
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(paint.severity(d.Severity, strings.Repeat("^", carets)))

	// Hint block, only when a hint exists.
	if d.Hint != "" {
		b.WriteByte('\n')
		b.WriteString(gutter)
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", w+4))
		b.WriteString(paint.frame("="))
		b.WriteByte(' ')
		b.WriteString(d.Hint)
	}

	return b.String()
}

// Pretty writes every diagnostic in the bag, each terminated by a newline,
// with a blank line between consecutive diagnostics.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}
	for i := 0; i < maxItems; i++ {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, FormatOpts(items[i], fs, opts)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// splitAtColumn cuts the first covered line into the text before the span and
// the text the span covers on that line.
func splitAtColumn(line string, start, end source.LineCol, span source.Span) (prefix, underlined string) {
	from := int(start.Col) - 1
	if from > len(line) {
		from = len(line)
	}
	prefix = line[:from]

	if start.Line == end.Line {
		to := from + int(span.End-span.Start)
		if to > len(line) {
			to = len(line)
		}
		if to < from {
			to = from
		}
		return prefix, line[from:to]
	}
	// Multi-line span: underline to the end of the first line.
	return prefix, line[from:]
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}

// painter applies ANSI colors when enabled and is the identity otherwise,
// so disabling color never changes byte content.
type painter struct {
	enabled bool
	frameC  *color.Color
	errC    *color.Color
	warnC   *color.Color
	infoC   *color.Color
}

func newPainter(enabled bool) painter {
	return painter{
		enabled: enabled,
		frameC:  color.New(color.FgBlue, color.Bold),
		errC:    color.New(color.FgRed, color.Bold),
		warnC:   color.New(color.FgYellow, color.Bold),
		infoC:   color.New(color.FgCyan, color.Bold),
	}
}

func (p painter) frame(s string) string {
	if !p.enabled {
		return s
	}
	return p.frameC.Sprint(s)
}

func (p painter) severity(sev diag.Severity, s string) string {
	if !p.enabled {
		return s
	}
	switch sev {
	case diag.SevError:
		return p.errC.Sprint(s)
	case diag.SevWarning:
		return p.warnC.Sprint(s)
	default:
		return p.infoC.Sprint(s)
	}
}
