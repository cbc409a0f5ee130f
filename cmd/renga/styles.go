package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renga-collective/renga/poem"
)

var (
	styleHuman  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleAI     = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Italic(true)
	styleLabel  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(true)
	styleMeta   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	stylePrompt = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
)

// authorLabel returns the fixed-width speaker tag shown next to each line.
func authorLabel(a poem.Author) string {
	if a == poem.AuthorAI {
		return " AI"
	}
	return "you"
}

// renderLine styles one poem line with its speaker tag.
func renderLine(line poem.Line) string {
	style := styleHuman
	if line.Author == poem.AuthorAI {
		style = styleAI
	}
	return styleLabel.Render(authorLabel(line.Author)+" |") + " " + style.Render(line.Text)
}
