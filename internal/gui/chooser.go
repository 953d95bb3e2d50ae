package gui

import (
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"quill/internal/imaging"
)

// DefaultFileName is suggested by every save dialog.
const DefaultFileName = "untitled.txt"

type FileKind int

const (
	TextFile FileKind = iota
	ImageFile
)

// OpenFunc receives the chosen file. A nil reader with a nil error means the
// user cancelled.
type OpenFunc func(r io.ReadCloser, name string, err error)

// SaveFunc receives the destination. A nil writer with a nil error means the
// user cancelled.
type SaveFunc func(w io.WriteCloser, name string, err error)

// Chooser prompts for files to read or write.
type Chooser interface {
	Open(kind FileKind, fn OpenFunc)
	Save(fn SaveFunc)
}

// DialogChooser uses Fyne's file dialogs.
type DialogChooser struct {
	window fyne.Window
}

func NewDialogChooser(w fyne.Window) *DialogChooser {
	return &DialogChooser{window: w}
}

func (c *DialogChooser) Open(kind FileKind, fn OpenFunc) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			fn(nil, "", err)
			return
		}
		if reader == nil {
			fn(nil, "", nil)
			return
		}
		fn(reader, reader.URI().Name(), nil)
	}, c.window)
	if kind == ImageFile {
		d.SetFilter(storage.NewExtensionFileFilter(imaging.Extensions))
	}
	d.Show()
}

func (c *DialogChooser) Save(fn SaveFunc) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			fn(nil, "", err)
			return
		}
		if writer == nil {
			fn(nil, "", nil)
			return
		}
		fn(writer, writer.URI().Name(), nil)
	}, c.window)
	d.SetFileName(DefaultFileName)
	d.Show()
}
