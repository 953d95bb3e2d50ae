package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"quill/internal/config"
	"quill/internal/editor"
	"quill/internal/gui"
	"quill/internal/logger"
)

const (
	AppName      = "Quill"
	AppID        = "io.github.quill.editor"
	AppVersion   = "1.0.0"
	WindowWidth  = 900
	WindowHeight = 700

	appComponent = "Application"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	config     config.Config
	logger     logger.Logger
	session    *editor.Session
	guiManager *gui.Manager
	handlers   *Handlers
	lifecycle  *Lifecycle
}

func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	fyneApp := app.NewWithID(AppID)
	return newApplication(fyneApp, cfg, log), nil
}

func newApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) *Application {
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info(appComponent, "starting application", map[string]interface{}{
		"version":        AppVersion,
		"native_dialogs": cfg.NativeDialogs,
		"history_limit":  cfg.HistoryLimit,
	})

	session := editor.NewSession(editor.Options{HistoryLimit: cfg.HistoryLimit}, log)
	guiManager := gui.NewManager(window, AppName, session, fyneApp.Clipboard(), log)

	var chooser gui.Chooser = gui.NewDialogChooser(window)
	if cfg.NativeDialogs {
		chooser = gui.NativeChooser{}
	}

	a := &Application{
		fyneApp:    fyneApp,
		window:     window,
		config:     cfg,
		logger:     log,
		session:    session,
		guiManager: guiManager,
		lifecycle:  NewLifecycle(session, guiManager, log),
	}
	a.handlers = NewHandlers(session, guiManager, gui.NewDialogPrompter(window), chooser, log, a.quit)

	window.SetMainMenu(gui.BuildMainMenu(a.handlers.Commands()))
	window.SetContent(guiManager.GetMainContainer())
	guiManager.Refresh()

	log.Info(appComponent, "initialization complete", nil)
	return a
}

func (a *Application) quit() {
	a.lifecycle.Shutdown()
	a.fyneApp.Quit()
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info(appComponent, "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.window.Show()
	a.guiManager.FocusDocument()

	a.logger.Info(appComponent, "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}

// Shutdown may be called from any goroutine; the work runs on the UI
// goroutine.
func (a *Application) Shutdown() {
	fyne.Do(a.quit)
}
