package notifications

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// DefaultTTL is how long a toast stays on screen
const DefaultTTL = 4 * time.Second

// Msg asks the application to show a toast
type Msg struct {
	Severity Severity
	Message  string
}

// Send returns a command that emits a toast request
func Send(severity Severity, message string) tea.Cmd {
	return func() tea.Msg {
		return Msg{Severity: severity, Message: message}
	}
}

// ExpiredMsg removes the toast with ID once its time is up
type ExpiredMsg struct {
	ID int
}

// Toast is one notification on screen
type Toast struct {
	ID       int
	Severity Severity
	Message  string
}

// Stack manages the toasts currently displayed.
// Toasts are stacked in the top-right corner and expire after TTL.
type Stack struct {
	toasts []Toast
	nextID int
	ttl    time.Duration

	windowWidth  int
	windowHeight int
}

// NewStack creates an empty stack. A zero ttl uses DefaultTTL.
func NewStack(ttl time.Duration) *Stack {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Stack{ttl: ttl}
}

// Add pushes a toast and returns the command that expires it
func (s *Stack) Add(severity Severity, message string) tea.Cmd {
	s.nextID++
	id := s.nextID
	s.toasts = append(s.toasts, Toast{ID: id, Severity: severity, Message: message})

	return tea.Tick(s.ttl, func(time.Time) tea.Msg {
		return ExpiredMsg{ID: id}
	})
}

// Dismiss removes the toast with id
func (s *Stack) Dismiss(id int) {
	filtered := s.toasts[:0]
	for _, t := range s.toasts {
		if t.ID != id {
			filtered = append(filtered, t)
		}
	}
	s.toasts = filtered
}

// Clear removes all toasts
func (s *Stack) Clear() {
	s.toasts = nil
}

// All returns the toasts oldest first
func (s *Stack) All() []Toast {
	return s.toasts
}

// HasAny returns true if there are any toasts
func (s *Stack) HasAny() bool {
	return len(s.toasts) > 0
}

// SetWindowSize updates the window dimensions for positioning calculations
func (s *Stack) SetWindowSize(width, height int) {
	s.windowWidth = width
	s.windowHeight = height
}

// Layers creates floating layers for all toasts, stacked from the top-right
// corner. Toasts that would run off the bottom of the screen are skipped.
func (s *Stack) Layers() []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	if s.windowWidth == 0 {
		return layers
	}

	row := 0
	for _, t := range s.toasts {
		view := RenderToast(t)
		height := lipgloss.Height(view)
		if row+height >= s.windowHeight {
			break
		}

		col := max(s.windowWidth-lipgloss.Width(view)-1, 0)
		layers = append(layers, lipgloss.NewLayer(view).X(col).Y(row))
		row += height + 1
	}
	return layers
}
