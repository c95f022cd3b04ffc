// Package styles renders todo output with lipgloss
package styles

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/todo/internal/config/colors"
	"github.com/thenoetrevino/todo/internal/models"
)

const (
	// RuleWidth is the width of the horizontal rules around the list
	RuleWidth = 60

	// Marks
	CheckMark = "✓"
	CrossMark = "✗"
)

// Styles holds the styles for one output stream. The renderer detects the
// color profile of that stream, so piped output carries no escape codes.
type Styles struct {
	// Text styles
	Header lipgloss.Style
	Rule   lipgloss.Style

	// Completed todo lines
	Completed lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Failure lipgloss.Style
}

// New builds the styles for w with the given color scheme
func New(w io.Writer, scheme colors.ColorScheme) *Styles {
	r := lipgloss.NewRenderer(w)

	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	return &Styles{
		Header: base.
			Bold(true).
			Foreground(lipgloss.Color(scheme.Header)),

		Rule: base.
			Foreground(lipgloss.Color(scheme.Subtle)),

		Completed: base.
			Foreground(lipgloss.Color(scheme.Completed)),

		Success: base.
			Foreground(lipgloss.Color(scheme.Success)),

		Failure: base.
			Foreground(lipgloss.Color(scheme.Failure)),
	}
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// Ok renders "✓ <msg>"
func (s *Styles) Ok(msg string) string {
	return s.Success.Render(CheckMark) + " " + msg
}

// Fail renders "✗ <msg>"
func (s *Styles) Fail(msg string) string {
	return s.Failure.Render(CrossMark) + " " + msg
}

// TodoLine renders a single list line: "[✓] #1   description".
// Completed todos are dimmed as a whole.
func (s *Styles) TodoLine(todo *models.Todo) string {
	status := " "
	if todo.Completed {
		status = CheckMark
	}

	line := fmt.Sprintf("[%s] #%-3d %s", status, todo.ID, todo.Description)
	if todo.Completed {
		return s.Completed.Render(line)
	}
	return line
}

// RenderList writes the full listing: header, one line per todo and a
// footer with the number of todos listed. Output is the same shape for an
// empty list.
func (s *Styles) RenderList(w io.Writer, todos []*models.Todo) error {
	rule := s.Rule.Render(strings.Repeat("─", RuleWidth))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.Header.Render("📋 Todo List:") + "\n")
	b.WriteString(rule + "\n")
	for _, todo := range todos {
		b.WriteString(s.TodoLine(todo) + "\n")
	}
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Total: %d items\n\n", len(todos))

	_, err := io.WriteString(w, b.String())
	return err
}
