package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-dict-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	reloadInterval     = 2 * time.Second
	clearStatusTimeout = 2 * time.Second
)

type screen int

const (
	screenTypes screen = iota
	screenEntries
	screenEntry
	screenLoadType
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

type appModel struct {
	ctx       context.Context
	reader    Reader
	buildInfo models.AppBuildInfo

	currentScreen screen

	types    typesModel
	entries  entriesModel
	entry    entryModel
	loadType loadTypeModel

	showError     bool
	errorOverlay  errorOverlayModel
	showBuildInfo bool
}

func newAppModel(ctx context.Context, reader Reader, buildInfo models.AppBuildInfo) appModel {
	m := appModel{
		ctx:           ctx,
		reader:        reader,
		buildInfo:     buildInfo,
		currentScreen: screenTypes,
		types:         newTypesModel(),
		loadType:      newLoadTypeModel(),
	}
	m.types.reload(reader)
	return m
}

func (m appModel) Init() tea.Cmd {
	return cmdReload()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.currentScreen != screenLoadType && key.Matches(msg, keys.info) {
			m.showBuildInfo = true
			return m, nil
		}
	case tickMsg:
		m.reloadViews()
		return m, cmdReload()
	case refreshDoneMsg:
		m.types.syncing = false
		if msg.err != nil {
			m.showErrorf("Синхронизация не выполнена. " + humanizeError(msg.err))
			return m, nil
		}
		m.reloadViews()
		m.types.status = "Синхронизация завершена"
		return m, cmdClearStatus()
	case typeLoadedMsg:
		m.loadType.loading = false
		if msg.err != nil {
			m.loadType.err = humanizeError(msg.err)
			return m, nil
		}
		m.loadType = newLoadTypeModel()
		m.currentScreen = screenTypes
		m.reloadViews()
		m.types.status = "Справочник загружен"
		return m, cmdClearStatus()
	case copiedMsg:
		status := "Скопировано!"
		if msg.err != nil {
			status = fmt.Sprintf("Не удалось скопировать: %v", msg.err)
		}
		m.entries.status = status
		m.entry.status = status
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.types.status = ""
		m.entries.status = ""
		m.entry.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.types.syncing {
			var cmd tea.Cmd
			m.types.spinner, cmd = m.types.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenTypes:
		return m.updateTypes(msg)
	case screenEntries:
		return m.updateEntries(msg)
	case screenEntry:
		return m.updateEntry(msg)
	case screenLoadType:
		return m.updateLoadType(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.reader.Status()))
	}

	var body string
	switch m.currentScreen {
	case screenTypes:
		body = m.types.View()
	case screenEntries:
		body = m.entries.View()
	case screenEntry:
		body = m.entry.View()
	case screenLoadType:
		body = m.loadType.View()
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) reloadViews() {
	m.types.reload(m.reader)
	if m.currentScreen == screenEntries || m.currentScreen == screenEntry {
		m.entries.reload(m.reader)
	}
}

func (m appModel) updateTypes(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.types.idx > 0 {
			m.types.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.types.idx < len(m.types.rows)-1 {
			m.types.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		t, ok := m.types.current()
		if !ok {
			return m, nil
		}
		m.entries = entriesModel{dictType: t}
		m.entries.reload(m.reader)
		m.currentScreen = screenEntries
	case key.Matches(keyMsg, keys.load):
		m.loadType = newLoadTypeModel()
		m.currentScreen = screenLoadType
		return m, m.loadType.input.Focus()
	case key.Matches(keyMsg, keys.refresh):
		if m.types.syncing {
			return m, nil
		}
		m.types.syncing = true
		return m, tea.Batch(m.types.spinner.Tick, m.cmdRefresh())
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateEntries(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.entries.idx > 0 {
			m.entries.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.entries.idx < len(m.entries.entries)-1 {
			m.entries.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		e, ok := m.entries.current()
		if !ok {
			return m, nil
		}
		m.entry = entryModel{dictType: m.entries.dictType, entry: e}
		m.currentScreen = screenEntry
	case key.Matches(keyMsg, keys.copy):
		e, ok := m.entries.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(e.Code)
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenTypes
		m.types.reload(m.reader)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.entry.entry.Code)
	case key.Matches(keyMsg, keys.copyLabel):
		return m, cmdCopyToClipboard(m.entry.entry.Label)
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenEntries
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateLoadType(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenTypes
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.loadType.loading {
				return m, nil
			}
			raw := m.loadType.types()
			if len(raw) == 0 {
				m.loadType.err = "Укажите хотя бы один тип"
				return m, nil
			}
			types := make([]models.DictType, 0, len(raw))
			for _, t := range raw {
				types = append(types, models.DictType(t))
			}
			m.loadType.err = ""
			m.loadType.loading = true
			return m, m.cmdEnsureLoaded(types)
		}
	}

	var cmd tea.Cmd
	m.loadType.input, cmd = m.loadType.input.Update(msg)
	return m, cmd
}

func (m appModel) cmdRefresh() tea.Cmd {
	return func() tea.Msg {
		return refreshDoneMsg{err: m.reader.Refresh(m.ctx)}
	}
}

func (m appModel) cmdEnsureLoaded(types []models.DictType) tea.Cmd {
	return func() tea.Msg {
		return typeLoadedMsg{err: m.reader.EnsureLoaded(m.ctx, types...)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := copyToClipboard(text); err != nil {
			return copiedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(clearStatusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func cmdReload() tea.Cmd {
	return tea.Tick(reloadInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}
