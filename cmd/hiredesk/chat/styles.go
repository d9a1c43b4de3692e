package chat

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the chat interface.
type Styles struct {
	Header       lipgloss.Style
	ContextLabel lipgloss.Style
	Prompt       lipgloss.Style
	Spinner      lipgloss.Style
	UserLabel    lipgloss.Style
	BotLabel     lipgloss.Style
	Muted        lipgloss.Style
	Footer       lipgloss.Style

	PaletteBox   lipgloss.Style
	PaletteTitle lipgloss.Style
	Selected     lipgloss.Style
	Item         lipgloss.Style
}

// DefaultStyles builds the style set for a theme ("dark" or "light").
func DefaultStyles(theme string) Styles {
	accent := lipgloss.Color("205")
	secondary := lipgloss.Color("86")
	muted := lipgloss.Color("241")
	if theme == "light" {
		accent = lipgloss.Color("162")
		secondary = lipgloss.Color("29")
		muted = lipgloss.Color("245")
	}

	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Padding(0, 1),
		ContextLabel: lipgloss.NewStyle().
			Foreground(secondary).
			Padding(0, 1),
		Prompt:    lipgloss.NewStyle().Foreground(accent),
		Spinner:   lipgloss.NewStyle().Foreground(accent),
		UserLabel: lipgloss.NewStyle().Bold(true).Foreground(secondary),
		BotLabel:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Muted:     lipgloss.NewStyle().Foreground(muted),
		Footer:    lipgloss.NewStyle().Foreground(muted).Padding(0, 1),

		PaletteBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		PaletteTitle: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(accent).
			Padding(0, 1),
		Item: lipgloss.NewStyle().Padding(0, 1),
	}
}
