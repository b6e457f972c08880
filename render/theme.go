package render

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette for menu listings, Tokyo Night inspired
// with light terminal fallbacks.
type Theme struct {
	Primary   lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	TextMuted lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
}

func DefaultTheme() Theme {
	return Theme{
		Primary:   lipgloss.AdaptiveColor{Dark: "#82aaff", Light: "#2e7de9"},
		Accent:    lipgloss.AdaptiveColor{Dark: "#89ddff", Light: "#007197"},
		Text:      lipgloss.AdaptiveColor{Dark: "#bfc7d5", Light: "#4c505e"},
		TextMuted: lipgloss.AdaptiveColor{Dark: "#697098", Light: "#8990a3"},
		Warning:   lipgloss.AdaptiveColor{Dark: "#ffcb6b", Light: "#8c6c3e"},
	}
}

// Styles holds the lipgloss styles for one menu listing.
type Styles struct {
	theme Theme

	Title  lipgloss.Style
	Key    lipgloss.Style
	Label  lipgloss.Style
	Buffer lipgloss.Style
}

func NewStyles() *Styles {
	theme := DefaultTheme()
	return &Styles{
		theme:  theme,
		Title:  lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Key:    lipgloss.NewStyle().Foreground(theme.Accent),
		Label:  lipgloss.NewStyle().Foreground(theme.Text),
		Buffer: lipgloss.NewStyle().Foreground(theme.Warning),
	}
}
