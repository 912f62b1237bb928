package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode         Mode = iota // Default navigation mode, keys go to the active page
	LoginMode                      // Sign in form, shown whenever there is no session
	StoreFormMode                  // Creating or editing a store with huh
	PackageFormMode                // Creating or editing a package with huh
	RateFormMode                   // Editing the USD to EGP exchange rate
	CreditItemFormMode             // Creating or editing a credit catalog entry
	PromptFormMode                 // Creating or editing a global prompt
	NumberFormMode                 // Attaching a WhatsApp number to a store
	UserFormMode                   // Creating or editing an operator
	MessageFormMode                // Sending a manual bot message
	PaymentForFormMode             // Creating or renaming a payment purpose
	PaymentMethodFormMode          // Creating or renaming a payment method
	DownloadFormMode               // Preparing a store's image download
	PauseConfirmMode               // Confirming a store pause or resume
	DiscardConfirmMode             // Confirming discard of form changes
	HelpMode                       // Displaying help screen
)

// IsForm reports whether the mode shows a huh dialog over the pages. The
// login form is a screen of its own and is not included.
func (m Mode) IsForm() bool {
	return m >= StoreFormMode && m <= DownloadFormMode
}

// DiscardContext tracks information for discard confirmation dialogs.
// It stores the mode to return to if the user cancels, and a context-specific message.
type DiscardContext struct {
	SourceMode Mode   // The mode to return to if user cancels discard (N/ESC)
	Message    string // Context-specific message (e.g., "Discard store changes?")
}

// UIState manages the user interface state: terminal dimensions, the
// active tab and the current interaction mode.
type UIState struct {
	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// activeTab is the index of the page shown
	activeTab int

	// discardContext holds context for discard confirmation dialogs
	discardContext *DiscardContext
}

// chrome is the number of lines around the page: three for the tab bar
// and one for the status bar
const chrome = 4

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight is the height left for the active page.
func (s *UIState) ContentHeight() int {
	return max(s.height-chrome, 0)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ActiveTab returns the index of the page shown.
func (s *UIState) ActiveTab() int {
	return s.activeTab
}

// SetActiveTab selects a tab, clamped to the tab count.
func (s *UIState) SetActiveTab(index, tabs int) {
	if tabs <= 0 {
		s.activeTab = 0
		return
	}
	s.activeTab = min(max(index, 0), tabs-1)
}

// NextTab moves right, wrapping to the first tab.
func (s *UIState) NextTab(tabs int) {
	if tabs <= 0 {
		return
	}
	s.activeTab = (s.activeTab + 1) % tabs
}

// PrevTab moves left, wrapping to the last tab.
func (s *UIState) PrevTab(tabs int) {
	if tabs <= 0 {
		return
	}
	s.activeTab = (s.activeTab - 1 + tabs) % tabs
}

// DiscardContext returns the current discard context.
func (s *UIState) DiscardContext() *DiscardContext {
	return s.discardContext
}

// SetDiscardContext sets the discard context.
func (s *UIState) SetDiscardContext(ctx *DiscardContext) {
	s.discardContext = ctx
}

// ClearDiscardContext removes the discard context.
func (s *UIState) ClearDiscardContext() {
	s.discardContext = nil
}
