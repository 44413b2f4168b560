package tui

import (
	"fmt"
	"strings"
	"time"

	"colorctl/internal/palette"
	"colorctl/internal/tui/view"
	"colorctl/pkg/color"
	"colorctl/pkg/logging"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SourceInput marks the preview row built from a literal typed into the filter.
const SourceInput palette.Source = "input"

const (
	defaultVisibleRows = 15
	// title, filter, blank, status, help
	chromeHeight  = 5
	statusTimeout = 3 * time.Second
)

// StatusType selects the style of the status line.
type StatusType int

const (
	StatusInfo StatusType = iota
	StatusSuccess
	StatusCopied
	StatusError
)

// ClearStatusMsg clears the status line once its timeout elapses.
type ClearStatusMsg struct{}

// Model is the bubbletea model of `colorctl browse`.
type Model struct {
	resolver *palette.Resolver
	keys     KeyMap
	help     help.Model
	filter   textinput.Model

	entries []palette.Entry
	cursor  int
	offset  int
	width   int
	height  int

	statusMessage     string
	statusType        StatusType
	statusClearCancel chan struct{}

	// copyToClipboard is replaced in tests.
	copyToClipboard func(string) error
}

// NewModel builds a browser over the resolver's aliases and the X11 table.
func NewModel(resolver *palette.Resolver) *Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "name, #hex, rgb(...) or rgba(...)"
	ti.CharLimit = 64

	m := &Model{
		resolver:        resolver,
		keys:            DefaultKeyMap(),
		help:            help.New(),
		filter:          ti,
		copyToClipboard: clipboard.WriteAll,
	}
	m.refreshEntries()
	return m
}

// NewProgram wraps the model in a full-screen bubbletea program.
func NewProgram(resolver *palette.Resolver, opts ...tea.ProgramOption) *tea.Program {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	return tea.NewProgram(NewModel(resolver), opts...)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.clampCursor()
		return m, nil

	case ClearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case tea.KeyMsg:
		if m.filter.Focused() {
			return m.updateFilter(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Enter):
		m.filter.Blur()
		return m, m.filterAppliedStatus()
	case key.Matches(msg, m.keys.Esc):
		m.filter.Blur()
		m.filter.SetValue("")
		m.refreshEntries()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.refreshEntries()
	return m, cmd
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.visibleRows())
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.visibleRows())
	case key.Matches(msg, m.keys.Filter):
		return m, m.filter.Focus()
	case key.Matches(msg, m.keys.Esc):
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.refreshEntries()
		}
	case key.Matches(msg, m.keys.CopyHex):
		return m, m.copySelected(color.Color.Hex)
	case key.Matches(msg, m.keys.CopyRGB):
		return m, m.copySelected(color.Color.RGB)
	case key.Matches(msg, m.keys.CopyRGBA):
		return m, m.copySelected(color.Color.RGBA)
	}
	return m, nil
}

// refreshEntries recomputes the list after the filter changed. A filter that
// is itself a color literal gets a preview row on top.
func (m *Model) refreshEntries() {
	query := m.filter.Value()
	entries := m.resolver.Filter(query)

	if looksLikeLiteral(query) {
		if c, err := color.Parse(query); err == nil {
			preview := palette.Entry{Name: strings.TrimSpace(query), Color: c, Source: SourceInput}
			entries = append([]palette.Entry{preview}, entries...)
		}
	}

	m.entries = entries
	m.cursor = 0
	m.offset = 0
}

func looksLikeLiteral(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(s, "#") || strings.HasPrefix(s, "rgb")
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

func (m *Model) visibleRows() int {
	if m.height == 0 {
		return defaultVisibleRows
	}
	if rows := m.height - chromeHeight; rows > 0 {
		return rows
	}
	return 1
}

// Selected returns the entry under the cursor.
func (m *Model) Selected() (palette.Entry, bool) {
	if len(m.entries) == 0 {
		return palette.Entry{}, false
	}
	return m.entries[m.cursor], true
}

func (m *Model) copySelected(format func(color.Color) string) tea.Cmd {
	entry, ok := m.Selected()
	if !ok {
		return m.setStatusMessage("Nothing selected", StatusError)
	}
	value := format(entry.Color)
	if err := m.copyToClipboard(value); err != nil {
		logging.Error("Browse", err, "Failed to copy %s", value)
		return m.setStatusMessage("Copy failed: "+err.Error(), StatusError)
	}
	return m.setStatusMessage(fmt.Sprintf("Copied %s", value), StatusCopied)
}

func (m *Model) filterAppliedStatus() tea.Cmd {
	query := strings.TrimSpace(m.filter.Value())
	if query == "" {
		return nil
	}
	if len(m.entries) == 0 {
		return m.setStatusMessage(fmt.Sprintf("No colors match %q", query), StatusInfo)
	}
	return m.setStatusMessage(fmt.Sprintf("%d colors match %q", len(m.entries), query), StatusSuccess)
}

// setStatusMessage shows message and schedules its removal. A newer message
// cancels the pending clear of an older one.
func (m *Model) setStatusMessage(message string, statusType StatusType) tea.Cmd {
	m.statusMessage = message
	m.statusType = statusType

	if m.statusClearCancel != nil {
		close(m.statusClearCancel)
	}
	m.statusClearCancel = make(chan struct{})
	captured := m.statusClearCancel

	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusMsg{}
		}
	})
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(view.TitleStyle.Render("colorctl browse"))
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(view.SubtleStyle.Render("No matching colors"))
		b.WriteString("\n")
	}
	end := m.offset + m.visibleRows()
	if end > len(m.entries) {
		end = len(m.entries)
	}
	for i := m.offset; i < end; i++ {
		row := view.RenderEntry(m.entries[i], true)
		if i == m.cursor {
			b.WriteString(view.SelectedStyle.Render(view.SafeIcon(view.IconCursor)))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

func (m *Model) renderStatus() string {
	if m.statusMessage == "" {
		return view.SubtleStyle.Render(fmt.Sprintf("%d/%d", min(m.cursor+1, len(m.entries)), len(m.entries)))
	}
	switch m.statusType {
	case StatusSuccess:
		return view.SuccessStyle.Render(view.IconText(view.IconCheck, m.statusMessage))
	case StatusCopied:
		return view.SuccessStyle.Render(view.IconText(view.IconClipboard, m.statusMessage))
	case StatusError:
		return view.ErrorStyle.Render(view.IconText(view.IconWarning, m.statusMessage))
	default:
		return view.SubtleStyle.Render(m.statusMessage)
	}
}
