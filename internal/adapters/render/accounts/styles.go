package accounts

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	account lipgloss.Style
	detail  lipgloss.Style
	label   lipgloss.Style
	tag     lipgloss.Style
	warning lipgloss.Style
	ok      lipgloss.Style
	section lipgloss.Style
	empty   lipgloss.Style
	badge   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		account: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		tag:     lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		ok:      lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		section: lipgloss.NewStyle().MarginTop(1),
		empty:   lipgloss.NewStyle().Faint(true),
		badge:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
}
