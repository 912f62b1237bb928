package theme

import "github.com/thenoetrevino/dressdash/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent     = "#874BFD"
	Subtle     = "#585858"
	Normal     = "#D0D0D0"
	Title      = "#D75FD7"
	Create     = "#5FD75F"
	Edit       = "#5F87D7"
	Delete     = "#FF0000"
	Border     = "#585858"
	HeaderFg   = "#D75FD7"
	SelectedFg = "#FFFFFF"
	SelectedBg = "#3A3A3A"
	Positive   = "#5FD75F"
	Negative   = "#FF5F5F"
	InfoFg     = "#00AFFF"
	InfoBg     = "#00005F"
	WarningFg  = "#FFD700"
	WarningBg  = "#875F00"
	ErrorFg    = "#FF0000"
	ErrorBg    = "#5F0000"
	StatusBg   = "#874BFD"
	StatusText = "#D0D0D0"
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	Create = colors.Create
	Edit = colors.Edit
	Delete = colors.Delete
	Border = colors.Border
	HeaderFg = colors.HeaderFg
	SelectedFg = colors.SelectedFg
	SelectedBg = colors.SelectedBg
	Positive = colors.Positive
	Negative = colors.Negative
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
	StatusBg = colors.StatusBarBg
	StatusText = colors.StatusBarText
}
