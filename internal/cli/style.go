package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type styles struct {
	prompt   lipgloss.Style
	word     lipgloss.Style
	required lipgloss.Style
	err      lipgloss.Style
}

// newStyles binds styles to out so colour is dropped when out is not a
// terminal or color is off.
func newStyles(out io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		prompt:   r.NewStyle().Foreground(lipgloss.Color("244")),
		word:     r.NewStyle().Foreground(lipgloss.Color("75")),
		required: r.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		err:      r.NewStyle().Foreground(lipgloss.Color("204")),
	}
}

// highlight renders word with letters from required picked out.
func (s styles) highlight(word, required string) string {
	if required == "" {
		return s.word.Render(word)
	}
	var b strings.Builder
	for i := 0; i < len(word); i++ {
		c := word[i : i+1]
		if strings.ContainsAny(strings.ToLower(required), c) {
			b.WriteString(s.required.Render(c))
		} else {
			b.WriteString(s.word.Render(c))
		}
	}
	return b.String()
}
