package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zfake/internal/locale"
	"github.com/zarlcorp/zfake/internal/record"
)

// form rows before the field checkboxes
const (
	rowCount = iota
	rowLocale
	rowFirstField
)

const countStep = 10

var (
	keyLess    = key.NewBinding(key.WithKeys("left", "h"))
	keyMore    = key.NewBinding(key.WithKeys("right", "l"))
	keyLessTen = key.NewBinding(key.WithKeys("["))
	keyMoreTen = key.NewBinding(key.WithKeys("]"))
	keyToggle  = key.NewBinding(key.WithKeys(" ", "space"))
	keyAll     = key.NewBinding(key.WithKeys("a"))
)

// formModel edits the generation config.
type formModel struct {
	count  int
	locale locale.Code
	fields record.FieldSet
	cursor int
}

// generateMsg asks the root to generate a batch for cfg.
type generateMsg struct {
	cfg record.Config
}

func newFormModel(cfg record.Config) formModel {
	m := formModel{
		count:  cfg.Count,
		locale: cfg.Locale,
		fields: cfg.Fields,
	}
	m.count = clampCount(m.count)
	if _, err := locale.Parse(string(m.locale)); err != nil {
		m.locale = locale.RU
	}
	return m
}

// config returns the form state as a generation config.
func (m formModel) config() record.Config {
	return record.Config{
		Count:  m.count,
		Locale: m.locale,
		Fields: m.fields,
	}
}

func (m formModel) rows() int {
	return rowFirstField + len(record.Fields())
}

func (m formModel) Init() tea.Cmd {
	return nil
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, zstyle.KeyQuit):
		return m, tea.Quit

	case key.Matches(kmsg, zstyle.KeyUp):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(kmsg, zstyle.KeyDown):
		if m.cursor < m.rows()-1 {
			m.cursor++
		}

	case key.Matches(kmsg, zstyle.KeyEnter):
		cfg := m.config()
		return m, func() tea.Msg { return generateMsg{cfg: cfg} }

	case key.Matches(kmsg, keyLessTen):
		m.count = clampCount(m.count - countStep)

	case key.Matches(kmsg, keyMoreTen):
		m.count = clampCount(m.count + countStep)

	case key.Matches(kmsg, keyAll):
		if m.fields == record.AllFields() {
			m.fields = 0
		} else {
			m.fields = record.AllFields()
		}

	case key.Matches(kmsg, keyLess):
		m = m.adjust(-1)

	case key.Matches(kmsg, keyMore):
		m = m.adjust(1)

	case key.Matches(kmsg, keyToggle):
		m = m.toggle()
	}

	return m, nil
}

// adjust moves the value under the cursor by delta.
func (m formModel) adjust(delta int) formModel {
	switch m.cursor {
	case rowCount:
		m.count = clampCount(m.count + delta)
	case rowLocale:
		m.locale = cycleLocale(m.locale, delta)
	}
	return m
}

func (m formModel) toggle() formModel {
	switch {
	case m.cursor == rowLocale:
		m.locale = cycleLocale(m.locale, 1)
	case m.cursor >= rowFirstField:
		m.fields = m.fields.Toggle(record.Fields()[m.cursor-rowFirstField])
	}
	return m
}

func clampCount(n int) int {
	return max(record.MinCount, min(record.MaxCount, n))
}

func cycleLocale(c locale.Code, delta int) locale.Code {
	codes := locale.Codes()
	for i, code := range codes {
		if code == c {
			return codes[(i+delta+len(codes))%len(codes)]
		}
	}
	return codes[0]
}

func (m formModel) View() string {
	var b strings.Builder
	b.WriteString("\n")

	// count slider
	filled := m.count * 20 / record.MaxCount
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
	b.WriteString(m.line(rowCount, "count", fmt.Sprintf("%s %d", bar, m.count)))

	b.WriteString(m.line(rowLocale, "locale", fmt.Sprintf("‹ %s ›", m.locale.Name())))
	b.WriteString("\n")

	for i, f := range record.Fields() {
		box := "[ ]"
		if m.fields.Has(f) {
			box = "[x]"
		}
		b.WriteString(m.line(rowFirstField+i, "", box+" "+f.String()))
	}

	b.WriteString("\n  " + zstyle.MutedText.Render(fmt.Sprintf("%d of %d fields", m.fields.Len(), len(record.Fields()))) + "\n")
	return b.String()
}

func (m formModel) line(row int, label, value string) string {
	if label != "" {
		label = zstyle.MutedText.Render(fmt.Sprintf("%-8s", label)) + " "
	}
	if row == m.cursor {
		accent := lipgloss.NewStyle().Foreground(zstyle.ZburnAccent).Bold(true)
		return "  " + accent.Render("> ") + label + zstyle.Highlight.Render(value) + "\n"
	}
	return "    " + label + value + "\n"
}
