// Package tui implements the root Bubble Tea model for zfake.
package tui

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zfake/internal/export"
	"github.com/zarlcorp/zfake/internal/record"
)

type viewID int

const (
	viewForm viewID = iota
	viewResults
)

// navigateMsg tells the root model to switch views.
type navigateMsg struct {
	view viewID
}

// Model is the root TUI model.
type Model struct {
	version   string
	gen       *record.Generator
	exportDir string
	now       func() time.Time

	active  viewID
	form    formModel
	results resultsModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model. cfg seeds the form; exports are written
// to exportDir.
func New(version string, gen *record.Generator, cfg record.Config, exportDir string) Model {
	return Model{
		version:   version,
		gen:       gen,
		exportDir: exportDir,
		now:       time.Now,
		active:    viewForm,
		form:      newFormModel(cfg),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case navigateMsg:
		m.active = msg.view
		return m, tea.ClearScreen

	case generateMsg:
		return m.generate(msg.cfg)

	case regenerateMsg:
		return m.generate(m.results.cfg)

	case exportMsg:
		return m, m.exportCmd(msg.format)

	case exportedMsg:
		if msg.err == nil {
			slog.Debug("export saved", "file", msg.saved.Name, "bytes", msg.saved.Bytes)
		}
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}

	return m.updateActive(msg)
}

// generate builds a fresh batch. The seed is drawn per batch so that
// regenerating yields new values.
func (m Model) generate(cfg record.Config) (tea.Model, tea.Cmd) {
	cfg.Seed = 0
	records, err := m.gen.Generate(cfg)
	if err != nil {
		m.results = newResultsModel(cfg, nil).setError("generate: " + err.Error())
		m.active = viewResults
		return m, clearFlashAfter()
	}

	m.results = newResultsModel(cfg, records)
	m.active = viewResults
	return m, tea.ClearScreen
}

func (m Model) exportCmd(f export.Format) tea.Cmd {
	dir := m.exportDir
	records := m.results.records
	cols := m.results.cfg.Fields.Columns()
	at := m.now()

	return func() tea.Msg {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return exportedMsg{err: fmt.Errorf("create export dir: %w", err)}
		}
		saved, err := export.Save(zfilesystem.NewOSFileSystem(dir), f, records, cols, at)
		return exportedMsg{saved: saved, err: err}
	}
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewForm:
		m.form, cmd = m.form.Update(msg)
	case viewResults:
		m.results, cmd = m.results.Update(msg)
	}

	return m, cmd
}

func (m Model) View() string {
	var content string
	switch m.active {
	case viewForm:
		content = m.form.View()
	case viewResults:
		content = m.results.View()
	}

	header := zstyle.RenderHeader("zfake", viewTitle(m.active), zstyle.ZburnAccent)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + " " + zstyle.MutedText.Render(m.version) + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewForm:
		return "Generate Records"
	case viewResults:
		return "Results"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewForm:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "←/→", Desc: "adjust"},
			{Key: "[/]", Desc: "±10"},
			{Key: "space", Desc: "toggle"},
			{Key: "a", Desc: "all"},
			{Key: "enter", Desc: "generate"},
			{Key: "q", Desc: "quit"},
		}
	case viewResults:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "scroll"},
			{Key: "s", Desc: "save csv"},
			{Key: "e", Desc: "save json"},
			{Key: "y", Desc: "copy csv"},
			{Key: "r", Desc: "regenerate"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}
