package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// styled reports whether stdout is a terminal; plain text is printed otherwise.
func styled() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// render applies s only when writing to a terminal.
func render(s lipgloss.Style, text string) string {
	if !styled() {
		return text
	}
	return s.Render(text)
}

// newTable creates a table with the shared look.
func newTable(headers ...string) *table.Table {
	t := table.New().Headers(headers...)
	if !styled() {
		return t.Border(lipgloss.HiddenBorder())
	}
	return t.
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// keyValues renders aligned label/value lines.
func keyValues(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		width = max(width, len(p[0]))
	}
	label := labelStyle.Width(width + 2)
	var lines []string
	for _, p := range pairs {
		if styled() {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, label.Render(p[0]), valueStyle.Render(p[1])))
		} else {
			lines = append(lines, lipgloss.NewStyle().Width(width+2).Render(p[0])+p[1])
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
