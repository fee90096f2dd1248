// Package entry renders a dictionary entry in a scrollable viewport.
package entry

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/custodia-labs/lexi-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lexi-cli/internal/core/domain"
)

// Panel shows one entry: headword, first phonetic, then every meaning.
type Panel struct {
	styles   *styles.Styles
	viewport viewport.Model
	entry    *domain.DictionaryEntry
}

// NewPanel creates an empty entry panel.
func NewPanel(s *styles.Styles) *Panel {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Panel{
		styles:   s,
		viewport: viewport.New(80, 14),
	}
}

// Update forwards scrolling keys to the viewport.
func (p *Panel) Update(msg tea.Msg) (*Panel, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// SetEntry replaces the displayed entry and scrolls to the top.
// A nil entry empties the panel.
func (p *Panel) SetEntry(e *domain.DictionaryEntry) {
	p.entry = e
	p.viewport.SetContent(p.render())
	p.viewport.GotoTop()
}

// Entry returns the displayed entry.
func (p *Panel) Entry() *domain.DictionaryEntry {
	return p.entry
}

// HasEntry reports whether an entry is displayed.
func (p *Panel) HasEntry() bool {
	return p.entry != nil
}

// SetDimensions resizes the viewport and rewraps the content to the new width.
func (p *Panel) SetDimensions(width, height int) {
	if height < 3 {
		height = 3
	}
	p.viewport.Width = width
	p.viewport.Height = height
	p.viewport.SetContent(p.render())
}

// ScrollPercent returns how far the viewport is scrolled, from 0 to 1.
func (p *Panel) ScrollPercent() float64 {
	return p.viewport.ScrollPercent()
}

// View renders the panel.
func (p *Panel) View() string {
	if p.entry == nil {
		return ""
	}
	return p.viewport.View()
}

func (p *Panel) render() string {
	e := p.entry
	if e == nil {
		return ""
	}

	var b strings.Builder
	p.field(&b, "", "Word", p.styles.Headword.Render(e.Word))

	if ph := e.PrimaryPhonetic(); ph != nil {
		if ph.Text != "" {
			p.field(&b, "", "Phonetic", p.styles.Phonetic.Render(ph.Text))
		}
		if ph.Audio != "" {
			p.field(&b, "", "Audio", ph.Audio)
		}
	}

	for _, m := range e.Meanings {
		b.WriteString("\n")
		p.field(&b, "", "Part of Speech", p.styles.PartOfSpeech.Render(m.PartOfSpeech))
		for _, d := range m.Definitions {
			p.field(&b, "  ", "Definition", d.Definition)
			if d.Example != "" {
				p.field(&b, "    ", "Example", p.styles.Example.Render(d.Example))
			}
			if len(d.Synonyms) > 0 {
				p.field(&b, "    ", "Synonyms", p.styles.Related.Render(strings.Join(d.Synonyms, ", ")))
			}
			if len(d.Antonyms) > 0 {
				p.field(&b, "    ", "Antonyms", p.styles.Related.Render(strings.Join(d.Antonyms, ", ")))
			}
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// hang indents the continuation lines of a wrapped field.
const hang = "  "

// field writes "label: value", wrapped to the viewport width.
// Continuation lines are indented under the label.
func (p *Panel) field(b *strings.Builder, indent, label, value string) {
	line := p.styles.Label.Render(label+":") + " " + value

	width := p.viewport.Width - len(indent) - len(hang)
	if width < 1 {
		b.WriteString(indent + line + "\n")
		return
	}

	// wordwrap breaks at spaces, wrap splits words longer than the line.
	wrapped := wrap.String(wordwrap.String(line, width), width)
	for i, l := range strings.Split(wrapped, "\n") {
		if i > 0 {
			b.WriteString(hang)
		}
		b.WriteString(indent)
		b.WriteString(strings.TrimRight(l, " "))
		b.WriteString("\n")
	}
}
