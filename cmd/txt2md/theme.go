package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Monokai Pro accents.
const (
	colorRed    = "#FF6188"
	colorOrange = "#FC9867"
	colorGreen  = "#A9DC76"
	colorGray   = "#727072"
)

// theme styles CLI output. Styles come from a renderer bound to the
// destination writer, so pipes and files get plain text.
type theme struct {
	success lipgloss.Style
	failure lipgloss.Style
	warning lipgloss.Style
	dim     lipgloss.Style
}

func newTheme(w io.Writer) theme {
	r := lipgloss.NewRenderer(w)
	return theme{
		success: r.NewStyle().Foreground(lipgloss.Color(colorGreen)),
		failure: r.NewStyle().Foreground(lipgloss.Color(colorRed)).Bold(true),
		warning: r.NewStyle().Foreground(lipgloss.Color(colorOrange)),
		dim:     r.NewStyle().Foreground(lipgloss.Color(colorGray)),
	}
}
