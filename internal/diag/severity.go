package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning is for warning diagnostics.
	SevWarning
	SevError
)

// Header returns the capitalized label used by the pretty renderer
// ("Error [EPAR...]: ...").
func (s Severity) Header() string {
	switch s {
	case SevInfo:
		return "Info"
	case SevWarning:
		return "Warning"
	case SevError:
		return "Error"
	}
	return "Unknown"
}

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}
