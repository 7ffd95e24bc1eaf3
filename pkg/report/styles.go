package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// styles groups the lipgloss styles of the text renderer
type styles struct {
	updated lipgloss.Style
	pending lipgloss.Style
	skipped lipgloss.Style
	warning lipgloss.Style
	failed  lipgloss.Style
	path    lipgloss.Style
	muted   lipgloss.Style
	added   lipgloss.Style
	removed lipgloss.Style
	hunk    lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		updated: r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		pending: r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		skipped: r.NewStyle().Foreground(lipgloss.Color("8")),
		warning: r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		failed:  r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		path:    r.NewStyle().Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
		added:   r.NewStyle().Foreground(lipgloss.Color("2")),
		removed: r.NewStyle().Foreground(lipgloss.Color("1")),
		hunk:    r.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

// ErrorStyle returns the style errors are printed with on w
func ErrorStyle(w io.Writer, mode ColorMode) lipgloss.Style {
	return newStyles(w, UseColor(w, mode)).failed
}
