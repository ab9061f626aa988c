package domain

// CloseOutcome records which branch the close action took.
type CloseOutcome int

const (
	// CloseSteppedBack means a prior history entry existed and was restored.
	CloseSteppedBack CloseOutcome = iota
	// CloseFellBack means there was no prior entry and the fallback route was opened.
	CloseFellBack
)

// String returns a human-readable description of the outcome.
func (o CloseOutcome) String() string {
	switch o {
	case CloseSteppedBack:
		return "stepped back"
	case CloseFellBack:
		return "fell back"
	default:
		return "unknown"
	}
}
