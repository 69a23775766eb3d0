package ui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Title    lipgloss.Style
	Accent   lipgloss.Style
	Muted    lipgloss.Style
	Label    lipgloss.Style
	Card     lipgloss.Style
	Pane     lipgloss.Style
	Bleed    lipgloss.Style
	Mech     lipgloss.Style
	ROI      lipgloss.Style
	Button   lipgloss.Style
	Disabled lipgloss.Style
	Toast    lipgloss.Style
	Alert    lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F8FAFC")),
		Accent:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#60A5FA")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B")),
		Label:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#94A3B8")),
		Card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#334155")).Padding(0, 1),
		Pane:     lipgloss.NewStyle().Padding(1, 2),
		Bleed:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")),
		Mech:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6")),
		ROI:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981")),
		Button:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0F172A")).Background(lipgloss.Color("#F8FAFC")).Padding(0, 2),
		Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B")).Background(lipgloss.Color("#1E293B")).Padding(0, 2),
		Toast:    lipgloss.NewStyle().Foreground(lipgloss.Color("#F8FAFC")).Background(lipgloss.Color("#0F172A")).Padding(0, 2),
		Alert:    lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("#EF4444")).Padding(1, 2),
	}
}
