package topics

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// Glamour style names
const (
	StyleAuto  = "auto"
	StyleNoTTY = "notty"
)

// GlamourRenderer renders markdown topics for the terminal with glamour.
// Style is a glamour style name or a path to a style file; Width wraps
// words when positive.
type GlamourRenderer struct {
	Style string
	Width int

	once sync.Once
	term *glamour.TermRenderer
}

// NewGlamourRenderer picks the auto style for colour output and notty
// otherwise, so piped help carries no escape sequences.
func NewGlamourRenderer(color bool) *GlamourRenderer {
	if color {
		return &GlamourRenderer{Style: StyleAuto}
	}
	return &GlamourRenderer{Style: StyleNoTTY}
}

// Render returns markdown rendered for the terminal. Other formats, and
// markdown glamour cannot render, come back unchanged.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}
	term := r.renderer()
	if term == nil {
		return content
	}
	rendered, err := term.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// renderer builds the glamour renderer on first use. Help for one command
// line renders at most a handful of topics, all with the same settings.
func (r *GlamourRenderer) renderer() *glamour.TermRenderer {
	r.once.Do(func() {
		options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
		if r.Style != "" && r.Style != StyleAuto {
			options[0] = glamour.WithStylePath(r.Style)
		}
		if r.Width > 0 {
			options = append(options, glamour.WithWordWrap(r.Width))
		}
		term, err := glamour.NewTermRenderer(options...)
		if err == nil {
			r.term = term
		}
	})
	return r.term
}
