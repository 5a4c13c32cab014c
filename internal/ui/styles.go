package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/ticklist/internal/state"
	"github.com/nibzard/ticklist/internal/todo"
)

type theme struct {
	app       lipgloss.Style
	title     lipgloss.Style
	muted     lipgloss.Style
	text      lipgloss.Style
	done      lipgloss.Style
	cursor    lipgloss.Style
	action    lipgloss.Style
	filterOn  lipgloss.Style
	filterOff lipgloss.Style
	priority  map[todo.Priority]lipgloss.Style
	notice    map[state.Kind]lipgloss.Style
}

type palette struct {
	bg, fg, muted, accent, accentFg string
	high, medium, low               string
	success, warning, danger        string
}

var (
	lightPalette = palette{
		bg: "#f5f7fb", fg: "#1f2937", muted: "#6b7280",
		accent: "#4f46e5", accentFg: "#ffffff",
		high: "#dc2626", medium: "#d97706", low: "#059669",
		success: "#16a34a", warning: "#ea580c", danger: "#b91c1c",
	}
	darkPalette = palette{
		bg: "#111827", fg: "#e5e7eb", muted: "#9ca3af",
		accent: "#818cf8", accentFg: "#111827",
		high: "#f87171", medium: "#fbbf24", low: "#34d399",
		success: "#4ade80", warning: "#fb923c", danger: "#f87171",
	}
)

func themeFor(dark bool) theme {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	c := func(s string) lipgloss.Color { return lipgloss.Color(s) }
	badge := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c(color)).Bold(true)
	}
	banner := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c(p.bg)).Background(c(color)).Padding(0, 1)
	}
	return theme{
		app:       lipgloss.NewStyle().Foreground(c(p.fg)).Padding(0, 1),
		title:     lipgloss.NewStyle().Foreground(c(p.accent)).Bold(true),
		muted:     lipgloss.NewStyle().Foreground(c(p.muted)),
		text:      lipgloss.NewStyle().Foreground(c(p.fg)),
		done:      lipgloss.NewStyle().Foreground(c(p.muted)).Strikethrough(true),
		cursor:    lipgloss.NewStyle().Foreground(c(p.accent)).Bold(true),
		action:    lipgloss.NewStyle().Foreground(c(p.accent)),
		filterOn:  lipgloss.NewStyle().Foreground(c(p.accentFg)).Background(c(p.accent)).Padding(0, 1),
		filterOff: lipgloss.NewStyle().Foreground(c(p.muted)).Padding(0, 1),
		priority: map[todo.Priority]lipgloss.Style{
			todo.PriorityHigh:   badge(p.high),
			todo.PriorityMedium: badge(p.medium),
			todo.PriorityLow:    badge(p.low),
		},
		notice: map[state.Kind]lipgloss.Style{
			state.KindSuccess: banner(p.success),
			state.KindWarning: banner(p.warning),
			state.KindError:   banner(p.danger),
		},
	}
}
