package tui

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zfake/internal/export"
	"github.com/zarlcorp/zfake/internal/record"
)

// rows shown in the preview at once
const pageSize = 10

var (
	previewHeader   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	previewCell     = lipgloss.NewStyle().Padding(0, 1)
	previewSelected = lipgloss.NewStyle().Padding(0, 1).Foreground(zstyle.ZburnAccent).Bold(true)
)

// resultsModel previews a generated batch.
type resultsModel struct {
	cfg     record.Config
	records []record.Record
	cursor  int
	flash   string
	flashAt time.Time
	failed  bool
}

// exportMsg asks the root to save the batch in format.
type exportMsg struct {
	format export.Format
}

// exportedMsg reports the outcome of a save.
type exportedMsg struct {
	saved export.Saved
	err   error
}

// regenerateMsg asks the root for a fresh batch with the same config.
type regenerateMsg struct{}

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

func newResultsModel(cfg record.Config, records []record.Record) resultsModel {
	return resultsModel{cfg: cfg, records: records}
}

func (m resultsModel) Init() tea.Cmd {
	return nil
}

func (m resultsModel) Update(msg tea.Msg) (resultsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case exportedMsg:
		if msg.err != nil {
			return m.setError("save: " + msg.err.Error()), clearFlashAfter()
		}
		return m.setFlash("saved " + msg.saved.String()), clearFlashAfter()

	case flashMsg:
		m.flash = ""
		m.failed = false
		return m, nil
	}

	return m, nil
}

func (m resultsModel) handleKey(msg tea.KeyMsg) (resultsModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewForm} }
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.records)-1 {
			m.cursor++
		}
		return m, nil
	}

	switch msg.String() {
	case "s":
		return m, func() tea.Msg { return exportMsg{format: export.CSV} }

	case "e":
		return m, func() tea.Msg { return exportMsg{format: export.JSON} }

	case "y":
		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, m.records, m.cfg.Fields.Columns()); err != nil {
			return m.setError("copy: " + err.Error()), clearFlashAfter()
		}
		if err := copyToClipboard(buf.String()); err != nil {
			return m.setError("copy: " + err.Error()), clearFlashAfter()
		}
		return m.setFlash(fmt.Sprintf("copied %d rows", len(m.records))), clearFlashAfter()

	case "r":
		return m, func() tea.Msg { return regenerateMsg{} }
	}

	return m, nil
}

func (m resultsModel) setFlash(msg string) resultsModel {
	m.flash = msg
	m.flashAt = time.Now()
	m.failed = false
	return m
}

func (m resultsModel) setError(msg string) resultsModel {
	m = m.setFlash(msg)
	m.failed = true
	return m
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

// window returns the slice bounds of the rows visible around the cursor.
func (m resultsModel) window() (start, end int) {
	start = max(0, m.cursor-pageSize/2)
	end = min(len(m.records), start+pageSize)
	start = max(0, end-pageSize)
	return start, end
}

func (m resultsModel) preview() string {
	start, end := m.window()
	selected := m.cursor - start

	return export.NewTable(m.records[start:end], m.cfg.Fields.Columns()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch row {
			case table.HeaderRow:
				return previewHeader
			case selected:
				return previewSelected
			}
			return previewCell
		}).
		String()
}

func (m resultsModel) View() string {
	var b strings.Builder

	summary := fmt.Sprintf("%d records  %s  %d fields", len(m.records), m.cfg.Locale.Name(), m.cfg.Fields.Len())
	b.WriteString("\n  " + zstyle.Title.Render(summary) + "\n\n")

	for _, line := range strings.Split(m.preview(), "\n") {
		b.WriteString("  " + line + "\n")
	}

	if len(m.records) > 0 {
		start, end := m.window()
		pos := fmt.Sprintf("rows %d-%d of %d", start+1, end, len(m.records))
		b.WriteString("  " + zstyle.MutedText.Render(pos) + "\n")
	}
	b.WriteString("\n")

	// always reserve a line for flash to prevent layout shift
	switch {
	case m.flash == "":
		b.WriteString("\n")
	case m.failed:
		b.WriteString("  " + zstyle.StatusErr.Render(m.flash) + "\n")
	default:
		b.WriteString("  " + zstyle.StatusOK.Render(m.flash) + "\n")
	}

	return b.String()
}
