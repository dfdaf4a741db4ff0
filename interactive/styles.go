package interactive

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the lipgloss styles for the menu TUI.
type Styles struct {
	theme Theme

	Title   lipgloss.Style
	Subtle  lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	Divider lipgloss.Style

	CrumbActive   lipgloss.Style
	CrumbInactive lipgloss.Style

	MenuKey       lipgloss.Style
	MenuDesc      lipgloss.Style
	MenuSeparator lipgloss.Style

	ListKey          lipgloss.Style
	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	ListItemDesc     lipgloss.Style
}

func NewStyles() *Styles {
	return NewStylesWithTheme(DefaultTheme())
}

func NewStylesWithTheme(theme Theme) *Styles {
	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtle: lipgloss.NewStyle().
			Foreground(theme.TextMuted),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Divider: lipgloss.NewStyle().
			Foreground(theme.BorderDim),

		CrumbActive: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(theme.TextBright).
			Background(theme.Secondary),

		CrumbInactive: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(theme.TextMuted).
			Background(theme.Surface),

		MenuKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		MenuDesc: lipgloss.NewStyle().
			Foreground(theme.Text),

		MenuSeparator: lipgloss.NewStyle().
			Foreground(theme.BorderDim),

		ListKey: lipgloss.NewStyle().
			Width(4).
			Align(lipgloss.Right).
			Foreground(theme.Accent),

		ListItem: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(theme.Text),

		ListItemSelected: lipgloss.NewStyle().
			PaddingLeft(2).
			Bold(true).
			Foreground(theme.TextBright).
			Background(theme.Highlight),

		ListItemDesc: lipgloss.NewStyle().
			Foreground(theme.TextMuted),
	}
}
