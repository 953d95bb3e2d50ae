package app

import (
	"errors"
	"io"

	"fyne.io/fyne/v2"

	"quill/internal/editor"
	"quill/internal/gui"
	"quill/internal/imaging"
	"quill/internal/logger"
)

const handlersComponent = "Handlers"

type Handlers struct {
	session    *editor.Session
	guiManager *gui.Manager
	prompts    gui.Prompter
	chooser    gui.Chooser
	scaler     imaging.Scaler
	logger     logger.Logger

	// background runs blocking reads off the UI goroutine.
	background func(func())
	quit       func()
}

func NewHandlers(session *editor.Session, gm *gui.Manager, prompts gui.Prompter, chooser gui.Chooser, log logger.Logger, quit func()) *Handlers {
	return &Handlers{
		session:    session,
		guiManager: gm,
		prompts:    prompts,
		chooser:    chooser,
		scaler:     imaging.DefaultScaler(),
		logger:     log,
		background: func(f func()) { go f() },
		quit:       quit,
	}
}

// Commands binds every menu leaf to its handler.
func (h *Handlers) Commands() gui.Commands {
	view := h.guiManager.View()
	return gui.Commands{
		New:    h.HandleNew,
		Open:   h.HandleOpen,
		Save:   h.HandleSave,
		SaveAs: h.HandleSave,
		Exit:   h.HandleExit,

		Undo:  view.Undo,
		Redo:  view.Redo,
		Cut:   view.Cut,
		Copy:  view.Copy,
		Paste: view.Paste,

		FontSize:     h.HandleFontSize,
		FontStyle:    h.HandleFontStyle,
		Alignment:    h.HandleAlignment,
		LineSpacing:  h.HandleLineSpacing,
		InsertHeader: h.HandleInsertHeader,

		InsertImage: h.HandleInsertImage,
		DeleteImage: h.HandleDeleteImage,
	}
}

func (h *Handlers) HandleNew() {
	h.session.New()
	h.guiManager.SetDocumentName("")
	h.guiManager.UpdateStatus("New document")
	h.guiManager.Refresh()
}

func (h *Handlers) HandleOpen() {
	h.chooser.Open(gui.TextFile, func(r io.ReadCloser, name string, err error) {
		if err != nil {
			h.showError("File Open Error", err)
			return
		}
		if r == nil {
			return
		}

		h.guiManager.UpdateStatus("Opening " + name + "...")

		h.background(func() {
			data, readErr := io.ReadAll(r)
			r.Close()

			fyne.Do(func() {
				if readErr != nil {
					h.showError("File Read Error", readErr)
					return
				}
				if err := h.session.Load(data); err != nil {
					h.showError("File Read Error", err)
					return
				}
				h.guiManager.SetDocumentName(name)
				h.guiManager.UpdateStatus("Opened " + name)
				h.guiManager.Refresh()
			})
		})
	})
}

// HandleSave serves both Save and Save As: every save asks for a path.
func (h *Handlers) HandleSave() {
	h.chooser.Save(func(w io.WriteCloser, name string, err error) {
		if err != nil {
			h.showError("File Save Error", err)
			return
		}
		if w == nil {
			return
		}

		saveErr := h.session.Save(w)
		if closeErr := w.Close(); saveErr == nil {
			saveErr = closeErr
		}
		if saveErr != nil {
			h.showError("File Save Error", saveErr)
			return
		}
		h.guiManager.SetDocumentName(name)
		h.guiManager.UpdateStatus("Saved " + name)
	})
}

func (h *Handlers) HandleExit() {
	h.logger.Info(handlersComponent, "exit requested", nil)
	if h.quit != nil {
		h.quit()
	}
}

func (h *Handlers) HandleFontSize() {
	h.prompts.AskInt("Font Size", "Enter Font Size:", 12, func(size int) {
		if err := h.session.SetFontSize(size); err != nil {
			h.showError("Font Size", err)
			return
		}
		h.guiManager.Refresh()
	})
}

func (h *Handlers) HandleFontStyle(family string) {
	h.session.SetFontStyle(family)
	h.guiManager.Refresh()
}

func (h *Handlers) HandleAlignment() {
	h.prompts.AskString("Alignment", "Enter Alignment (left, center, right):", func(value string) {
		if err := h.session.SetAlignment(value); err != nil {
			h.showError("Alignment", err)
			return
		}
		h.guiManager.Refresh()
	})
}

func (h *Handlers) HandleLineSpacing() {
	h.prompts.AskFloat("Line Spacing", "Enter Line Spacing (e.g., 1.0 for single spacing):", 1.0, func(v float64) {
		if err := h.session.SetLineSpacing(v); err != nil {
			h.showError("Line Spacing", err)
			return
		}
		h.guiManager.Refresh()
	})
}

func (h *Handlers) HandleInsertHeader() {
	h.prompts.AskString("Insert Header", "Enter Header Text:", func(text string) {
		h.session.InsertHeader(text)
		h.guiManager.Refresh()
	})
}

func (h *Handlers) HandleInsertImage() {
	h.chooser.Open(gui.ImageFile, func(r io.ReadCloser, name string, err error) {
		if err != nil {
			h.showError("Image Open Error", err)
			return
		}
		if r == nil {
			return
		}

		h.guiManager.UpdateStatus("Loading image...")

		h.background(func() {
			pic, loadErr := imaging.Load(r, name, h.scaler)
			r.Close()

			fyne.Do(func() {
				if loadErr != nil {
					h.showError("Image Load Error", loadErr)
					return
				}
				h.session.InsertImage(pic)
				h.guiManager.UpdateStatus("Inserted " + name)
				h.guiManager.Refresh()
			})
		})
	})
}

func (h *Handlers) HandleDeleteImage() {
	removed, err := h.session.DeleteImage()
	if errors.Is(err, editor.ErrNoSelection) {
		h.logger.Debug(handlersComponent, "delete image ignored", map[string]interface{}{
			"reason": err.Error(),
		})
		return
	}
	if removed {
		h.guiManager.UpdateStatus("Image deleted")
		h.guiManager.Refresh()
	}
}

func (h *Handlers) showError(title string, err error) {
	h.guiManager.ShowError(title, err)
}
