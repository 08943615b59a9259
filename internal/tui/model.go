package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dNmmer/SortFiles/internal/config"
	"github.com/dNmmer/SortFiles/internal/domain"
	appErrors "github.com/dNmmer/SortFiles/internal/errors"
	"github.com/dNmmer/SortFiles/internal/presentation"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhaseScanning Phase = iota
	PhaseSelect
	PhaseCopying
	PhaseDone
	PhaseError
)

// Messages for the TUI
type (
	ScanDoneMsg struct {
		Types []domain.FileType
	}
	CopyDoneMsg struct {
		Outcome domain.CopyOutcome
	}
	ErrorMsg struct {
		Err error
	}
)

// ScanFunc and CopyFunc run synchronously; the model schedules them as
// commands so the UI loop keeps redrawing while they work.
type (
	ScanFunc func() ([]domain.FileType, error)
	CopyFunc func(selected domain.Selection) (domain.CopyOutcome, error)
)

// Config for the TUI
type Config struct {
	SourceDir string
	TargetDir string
	Verbose   bool
	Scan      ScanFunc
	Copy      CopyFunc
}

// Model is the main TUI model
type Model struct {
	config   Config
	Phase    Phase
	Types    []domain.FileType
	Outcome  domain.CopyOutcome
	Warning  string
	Err      error
	Quitting bool
	cursor   int
	spinner  spinner.Model
	width    int
	height   int
}

// NewModel creates a new TUI model
func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		config:  cfg,
		Phase:   PhaseScanning,
		spinner: s,
		width:   80,
		height:  24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.scanCmd())
}

func (m Model) scanCmd() tea.Cmd {
	scan := m.config.Scan
	return func() tea.Msg {
		if scan == nil {
			return ScanDoneMsg{}
		}
		types, err := scan()
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ScanDoneMsg{Types: types}
	}
}

func (m Model) copyCmd(selected domain.Selection) tea.Cmd {
	copyFn := m.config.Copy
	return func() tea.Msg {
		if copyFn == nil {
			return CopyDoneMsg{}
		}
		outcome, err := copyFn(selected)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return CopyDoneMsg{Outcome: outcome}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ScanDoneMsg:
		m.Types = msg.Types
		m.cursor = 0
		m.Warning = ""
		m.Phase = PhaseSelect
		return m, nil

	case CopyDoneMsg:
		m.Outcome = msg.Outcome
		m.Phase = PhaseDone
		return m, nil

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.busy() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	case "q":
		// Only ctrl+c interrupts a running copy.
		if m.Phase == PhaseCopying {
			return m, nil
		}
		m.Quitting = true
		return m, tea.Quit
	}

	switch m.Phase {
	case PhaseSelect:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.Types)-1 {
				m.cursor++
			}
		case " ", "x":
			if len(m.Types) > 0 {
				m.Types[m.cursor].Selected = !m.Types[m.cursor].Selected
				m.Warning = ""
			}
		case "a":
			m.toggleAll()
			m.Warning = ""
		case "r":
			return m.rescan()
		case "enter":
			return m.startCopy()
		}
	case PhaseDone, PhaseError:
		switch msg.String() {
		case "r":
			return m.rescan()
		case "enter":
			m.Quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// toggleAll selects every row, or clears them all when all are selected.
func (m *Model) toggleAll() {
	all := true
	for _, t := range m.Types {
		if !t.Selected {
			all = false
			break
		}
	}
	for i := range m.Types {
		m.Types[i].Selected = !all
	}
}

func (m Model) rescan() (tea.Model, tea.Cmd) {
	m.Phase = PhaseScanning
	m.Types = nil
	m.Outcome = domain.CopyOutcome{}
	m.Err = nil
	m.Warning = ""
	return m, tea.Batch(m.spinner.Tick, m.scanCmd())
}

func (m Model) startCopy() (tea.Model, tea.Cmd) {
	if strings.TrimSpace(m.config.TargetDir) == "" {
		m.Warning = config.ErrTargetRequired.Error()
		return m, nil
	}
	selected := domain.SelectedExtensions(m.Types)
	if len(selected) == 0 {
		m.Warning = config.ErrSelectionRequired.Error()
		return m, nil
	}
	m.Warning = ""
	m.Phase = PhaseCopying
	return m, tea.Batch(m.spinner.Tick, m.copyCmd(selected))
}

func (m Model) busy() bool {
	return m.Phase == PhaseScanning || m.Phase == PhaseCopying
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.Phase {
	case PhaseScanning:
		b.WriteString(fmt.Sprintf("%s Сканирование...", m.spinner.View()))
	case PhaseSelect:
		b.WriteString(m.renderSelect())
	case PhaseCopying:
		b.WriteString(m.renderSelect())
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s Копирование...", m.spinner.View()))
	case PhaseDone:
		b.WriteString(m.renderSelect())
		b.WriteString("\n")
		b.WriteString(m.renderCompletion())
	case PhaseError:
		b.WriteString(m.renderError())
	}

	if m.Warning != "" {
		b.WriteString("\n\n")
		b.WriteString(warningStyle.Render(fmt.Sprintf("%s %s", iconWarning, m.Warning)))
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("SortFiles")
	subtitle := subtitleStyle.Render("Сортировка файлов по типу")

	target := m.config.TargetDir
	if target == "" {
		target = "—"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		"",
		dimStyle.Render(fmt.Sprintf("%s Источник:   %s", iconFolder, shortenPath(m.config.SourceDir))),
		dimStyle.Render(fmt.Sprintf("%s Назначение: %s", iconFolder, shortenPath(target))),
	)
}

func (m Model) renderSelect() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Типы файлов"))
	b.WriteString("\n\n")

	if len(m.Types) == 0 {
		b.WriteString(dimStyle.Render("  " + presentation.NothingFound))
		b.WriteString("\n")
		return b.String()
	}

	start, end := visibleRange(len(m.Types), m.cursor, m.listHeight())
	if start > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  ... ещё %d выше", start)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}
	if end < len(m.Types) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  ... ещё %d ниже", len(m.Types)-end)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(presentation.ScanStatus(len(m.Types))))
	return b.String()
}

func (m Model) renderRow(i int) string {
	t := m.Types[i]

	pointer := " "
	if i == m.cursor && m.Phase == PhaseSelect {
		pointer = cursorStyle.Render(iconCursor)
	}
	box := iconUnchecked
	label := labelStyle.Render(t.Label)
	if t.Selected {
		box = selectedLabelStyle.Render(iconChecked)
		label = selectedLabelStyle.Render(t.Label)
	}
	return fmt.Sprintf("%s %s %s %s", pointer, box, countStyle.Render(fmt.Sprintf("%d", t.Count)), label)
}

func (m Model) renderCompletion() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Копирование завершено"))
	b.WriteString("\n\n")

	if m.Outcome.HasFailures() {
		b.WriteString(warningStyle.Render(fmt.Sprintf("  %s %s", iconWarning, presentation.FailureWarning)))
		b.WriteString("\n")
		if m.config.Verbose {
			for _, failure := range m.Outcome.Failures {
				b.WriteString(dimStyle.Render(fmt.Sprintf("    %s: %s", failure.Path, failure.Message)))
				b.WriteString("\n")
			}
		}
	}
	b.WriteString(successStyle.Render(fmt.Sprintf("  %s %s", iconSuccess, presentation.CopyStatus(m.Outcome.Succeeded))))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderError() string {
	icon := errorStyle.Render(iconError)
	msg := errorStyle.Render(appErrors.UserMessage(m.Err))

	return errorBoxStyle.Render(fmt.Sprintf("%s %s", icon, msg))
}

func (m Model) renderHelp() string {
	var help string
	switch m.Phase {
	case PhaseScanning:
		help = "Сканирование... q — выход"
	case PhaseSelect:
		help = "↑/↓ — выбор • пробел — отметить • a — все • Enter — копировать • r — пересканировать • q — выход"
	case PhaseCopying:
		help = "Копирование... Пожалуйста, подождите"
	case PhaseDone:
		help = "r — пересканировать • Enter — выход"
	case PhaseError:
		help = "r — повторить • Enter или q — выход"
	}
	return helpStyle.Render(help)
}

// listHeight is the number of rows that fit below the header.
func (m Model) listHeight() int {
	h := m.height - 16
	if h < 5 {
		h = 5
	}
	return h
}

// visibleRange returns the window [start, end) of size at most height that
// contains cursor.
func visibleRange(total, cursor, height int) (int, int) {
	if total <= height {
		return 0, total
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	end := start + height
	if end > total {
		end = total
		start = end - height
	}
	return start, end
}

// shortenPath replaces the home directory prefix with ~ for display
func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
