package notifications

import "github.com/thenoetrevino/dressdash/internal/tui/theme"

// toastStyle is how one severity looks in the stack and in the tab bar
type toastStyle struct {
	icon   string
	title  string
	fg     string
	bg     string
	border string
	// filled paints the header line as well as the body
	filled bool
}

// toastStyles are keyed by severity. Info covers saves and sign in,
// warnings are permission refusals, errors are failed requests or
// rejected forms.
var toastStyles = map[Severity]toastStyle{
	Info: {
		icon:   "✓",
		title:  "Done",
		fg:     theme.InfoFg,
		bg:     theme.InfoBg,
		border: theme.Positive,
		filled: true,
	},
	Warning: {
		icon:   "⚠",
		title:  "Heads up",
		fg:     theme.WarningFg,
		bg:     theme.WarningBg,
		border: theme.WarningBg,
	},
	Error: {
		icon:   "✕",
		title:  "Failed",
		fg:     theme.ErrorFg,
		bg:     theme.ErrorBg,
		border: theme.Negative,
	},
}

func (s Severity) style() toastStyle {
	if st, ok := toastStyles[s]; ok {
		return st
	}
	return toastStyles[Info]
}
