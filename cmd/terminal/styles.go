package main

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title  lipgloss.Style
	prompt lipgloss.Style
	dim    lipgloss.Style
	err    lipgloss.Style
	item   lipgloss.Style
	frame  lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		item:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		frame:  lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	}
}
