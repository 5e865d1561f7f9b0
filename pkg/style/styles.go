package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Kind classifies a reported item for styling
type Kind int

const (
	// KindChanged is something that was (or would be) created or replaced
	KindChanged Kind = iota
	// KindUnchanged is something already in the desired state
	KindUnchanged
	// KindWarning is something done with a side effect worth noticing
	KindWarning
	// KindFailed is something that could not be done
	KindFailed
)

// Styles holds the lipgloss styles bound to one renderer
type Styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Muted   lipgloss.Style
	Path    lipgloss.Style
	Bold    lipgloss.Style
}

// NewStyles builds the style set for r
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Success: r.NewStyle().Foreground(SuccessColor).Bold(true),
		Error:   r.NewStyle().Foreground(ErrorColor).Bold(true),
		Warning: r.NewStyle().Foreground(WarningColor).Bold(true),
		Info:    r.NewStyle().Foreground(InfoColor),
		Muted:   r.NewStyle().Foreground(MutedColor),
		Path:    r.NewStyle().Foreground(PathColor).Italic(true),
		Bold:    r.NewStyle().Bold(true),
	}
}

// Indicator returns the styled marker for a kind
func (s Styles) Indicator(k Kind) string {
	switch k {
	case KindChanged:
		return s.Success.Render("✓")
	case KindUnchanged:
		return s.Muted.Render("•")
	case KindWarning:
		return s.Warning.Render("!")
	case KindFailed:
		return s.Error.Render("✗")
	default:
		return s.Muted.Render("○")
	}
}
