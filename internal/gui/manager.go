package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"quill/internal/editor"
	"quill/internal/gui/widgets"
	"quill/internal/logger"
)

const component = "GUIManager"

type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	appName    string
	isShutdown bool

	view      *widgets.DocumentView
	statusBar *widgets.StatusBar
}

func NewManager(window fyne.Window, appName string, session *editor.Session, clipboard editor.Clipboard, log logger.Logger) *Manager {
	view := widgets.NewDocumentView(session, clipboard)
	statusBar := widgets.NewStatusBar()

	manager := &Manager{
		window:    window,
		logger:    log,
		appName:   appName,
		view:      view,
		statusBar: statusBar,
	}
	view.OnChanged = manager.updateState

	log.Debug(component, "initialized", nil)
	return manager
}

func (m *Manager) GetMainContainer() fyne.CanvasObject {
	return container.NewBorder(nil, m.statusBar.GetContainer(), nil, nil, m.view)
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) View() *widgets.DocumentView {
	return m.view
}

func (m *Manager) StatusBar() *widgets.StatusBar {
	return m.statusBar
}

// FocusDocument moves keyboard focus to the editing surface.
func (m *Manager) FocusDocument() {
	m.window.Canvas().Focus(m.view)
}

// Refresh redraws the document after a session change.
func (m *Manager) Refresh() {
	m.view.Refresh()
	m.updateState()
}

// updateState shows the cursor position and the Undo/Redo availability.
func (m *Manager) updateState() {
	session := m.view.Session()
	buf := session.Buffer()
	m.statusBar.SetPosition(buf.LineCol(buf.Cursor()))
	UpdateEditMenu(m.window.MainMenu(), session.CanUndo(), session.CanRedo())
}

// SetDocumentName shows name in the window title; "" restores the bare
// application name.
func (m *Manager) SetDocumentName(name string) {
	if name == "" {
		m.window.SetTitle(m.appName)
		return
	}
	m.window.SetTitle(name + " - " + m.appName)
}

func (m *Manager) UpdateStatus(status string) {
	m.statusBar.SetStatus(status)
	m.logger.Debug(component, "status updated", map[string]interface{}{
		"status": status,
	})
}

func (m *Manager) ShowError(title string, err error) {
	m.logger.Error(component, err, map[string]interface{}{
		"title": title,
	})
	m.statusBar.SetStatus(title)
	dialog.ShowError(err, m.window)
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info(component, "shutdown initiated", nil)
}
