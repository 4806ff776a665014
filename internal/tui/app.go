package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/intersections/internal/adapter"
	"github.com/rshade/intersections/internal/logging"
	"github.com/rshade/intersections/internal/tui/list"
)

// Default dimensions before the first WindowSizeMsg arrives.
const (
	appDefaultWidth  = 80
	appDefaultHeight = 24
	headerHeight     = 2
	footerHeight     = 2
	inputHeight      = 2
	inputCharLimit   = 200
)

// ReloadFunc loads a fresh dataset, e.g. by re-reading the files the list was
// started with.
type ReloadFunc func(ctx context.Context) (*adapter.Dataset, error)

// datasetReloadedMsg carries the result of a ReloadFunc.
type datasetReloadedMsg struct {
	dataset *adapter.Dataset
	err     error
}

// AppConfig configures NewAppModel.
type AppConfig struct {
	Title      string
	BufferSize int
	VimKeys    bool
	Reload     ReloadFunc
}

// AppModel is the Bubble Tea model for the interactive list application.
type AppModel struct {
	ctx     context.Context
	source  *adapter.ListAdapter[*ItemRow]
	list    *list.Model[*ItemRow]
	reload  ReloadFunc
	title   string
	printer *message.Printer

	keys  keyMap
	help  help.Model
	input textinput.Model

	adding   bool
	quitting bool
	status   string
	err      error

	width  int
	height int
}

// NewAppModel builds the application around source.
func NewAppModel(ctx context.Context, source *adapter.ListAdapter[*ItemRow], cfg AppConfig) *AppModel {
	logger := logging.ComponentLogger(*logging.FromContext(ctx), "viewport")

	input := textinput.New()
	input.Placeholder = "Street & Cross Street"
	input.CharLimit = inputCharLimit
	input.Prompt = "Add: "

	m := &AppModel{
		ctx:     ctx,
		source:  source,
		reload:  cfg.Reload,
		title:   cfg.Title,
		printer: message.NewPrinter(language.English),
		keys:    newKeyMap(cfg.VimKeys),
		help:    help.New(),
		input:   input,
		width:   appDefaultWidth,
		height:  appDefaultHeight,
	}
	m.list = list.New[*ItemRow](source, m.listHeight(), m.width,
		list.WithBufferSize(cfg.BufferSize),
		list.WithVimKeys(cfg.VimKeys),
		list.WithLogger(logger),
	)
	return m
}

// Init initializes the model.
func (m *AppModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 1)
		m.list.SetSize(m.width, m.listHeight())
		return m, nil

	case datasetReloadedMsg:
		return m.handleReloaded(msg)

	case tea.KeyMsg:
		if m.adding {
			return m.handleInputKey(msg)
		}
		return m.handleListKey(msg)
	}

	if m.adding {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *AppModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.list.SetSize(m.width, m.listHeight())
		return m, nil
	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.input.SetValue("")
		m.list.SetSize(m.width, m.listHeight())
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Delete):
		m.deleteSelected()
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		if m.reload == nil {
			return m, nil
		}
		m.status = "Reloading..."
		return m, m.reloadCmd()
	}

	_, cmd := m.list.Update(msg)
	return m, cmd
}

func (m *AppModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.addItem(strings.TrimSpace(m.input.Value()))
		m.closeInput()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.closeInput()
		return m, nil
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *AppModel) closeInput() {
	m.adding = false
	m.input.Blur()
	m.list.SetSize(m.width, m.listHeight())
}

// addItem appends to the shared dataset and rebinds the viewport.
func (m *AppModel) addItem(item string) {
	if item == "" {
		return
	}
	ds := m.source.Dataset()
	if ds == nil {
		ds = adapter.NewDataset()
		m.source.SetDataset(ds)
	}
	ds.Append(item)
	m.list.Invalidate()
	m.list.SetSelected(ds.Len() - 1)
	m.status = "Added " + item
	m.err = nil

	logging.FromContext(m.ctx).Debug().
		Str("component", "tui").
		Str("item", item).
		Int("item_count", ds.Len()).
		Msg("item added")
}

// deleteSelected removes the selected item from the shared dataset.
func (m *AppModel) deleteSelected() {
	ds := m.source.Dataset()
	if ds.Len() == 0 {
		return
	}
	pos := m.list.Selected()
	removed := ds.At(pos)
	if err := ds.Remove(pos); err != nil {
		m.err = err
		return
	}
	m.list.Invalidate()
	m.status = "Removed " + removed
	m.err = nil
}

func (m *AppModel) reloadCmd() tea.Cmd {
	ctx, reload := m.ctx, m.reload
	return func() tea.Msg {
		ds, err := reload(ctx)
		return datasetReloadedMsg{dataset: ds, err: err}
	}
}

// handleReloaded swaps in the reloaded dataset wholesale.
func (m *AppModel) handleReloaded(msg datasetReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.err = msg.err
		m.status = ""
		logging.FromContext(m.ctx).Warn().
			Str("component", "tui").
			Err(msg.err).
			Msg("dataset reload failed")
		return m, nil
	}

	m.source.SetDataset(msg.dataset)
	m.list.Invalidate()
	m.err = nil
	m.status = "Reloaded " + m.formatCount(msg.dataset.Len())
	return m, nil
}

// View renders the current view (Bubble Tea interface).
func (m *AppModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader(), m.renderBody()}
	if m.adding {
		sections = append(sections, InputStyle.Width(max(m.width, 1)).Render(m.input.View()))
	}
	sections = append(sections, m.renderStatus(), m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *AppModel) renderHeader() string {
	title := HeaderStyle.Render(m.title)
	count := LabelStyle.Render(" · " + m.formatCount(m.source.ItemCount()))
	return title + count + "\n"
}

func (m *AppModel) renderBody() string {
	if m.source.ItemCount() == 0 {
		return LabelStyle.Italic(true).Render("No intersections. Press a to add one.")
	}
	return m.list.View()
}

func (m *AppModel) renderStatus() string {
	if err := m.err; err != nil {
		return ErrorStyle.Render("Error: " + err.Error())
	}
	if err := m.list.Err(); err != nil {
		return ErrorStyle.Render("Error: " + err.Error())
	}
	return StatusStyle.Render(m.status)
}

func (m *AppModel) formatCount(n int) string {
	if n == 1 {
		return "1 item"
	}
	return m.printer.Sprintf("%d items", n)
}

// listHeight is the number of rows left for the viewport.
func (m *AppModel) listHeight() int {
	h := m.height - headerHeight - footerHeight
	if m.adding {
		h -= inputHeight
	}
	if m.help.ShowAll {
		h -= len(m.keys.FullHelp()[0]) - 1
	}
	return max(h, 1)
}

// List exposes the viewport for inspection.
func (m *AppModel) List() *list.Model[*ItemRow] {
	return m.list
}

// Status returns the last status message.
func (m *AppModel) Status() string {
	return m.status
}

// Err returns the last error shown in the status line.
func (m *AppModel) Err() error {
	return m.err
}
