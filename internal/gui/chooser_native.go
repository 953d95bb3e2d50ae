package gui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/sqweek/dialog"

	"quill/internal/imaging"
)

// NativeChooser uses the operating system's file dialogs. The dialogs block
// the calling goroutine until dismissed.
type NativeChooser struct{}

func (NativeChooser) Open(kind FileKind, fn OpenFunc) {
	b := dialog.File()
	switch kind {
	case ImageFile:
		b = b.Title("Insert Image").Filter("Image files", trimDots(imaging.Extensions)...)
	default:
		b = b.Title("Open").Filter("Text files", "txt").Filter("All files", "*")
	}

	path, err := b.Load()
	if errors.Is(err, dialog.ErrCancelled) {
		fn(nil, "", nil)
		return
	}
	if err != nil {
		fn(nil, "", err)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		fn(nil, "", err)
		return
	}
	fn(f, filepath.Base(path), nil)
}

func (NativeChooser) Save(fn SaveFunc) {
	path, err := dialog.File().
		Title("Save As").
		Filter("Text files", "txt").
		Filter("All files", "*").
		SetStartFile(DefaultFileName).
		Save()
	if errors.Is(err, dialog.ErrCancelled) {
		fn(nil, "", nil)
		return
	}
	if err != nil {
		fn(nil, "", err)
		return
	}

	path = withDefaultExt(path, ".txt")
	f, err := os.Create(path)
	if err != nil {
		fn(nil, "", err)
		return
	}
	fn(f, filepath.Base(path), nil)
}

func withDefaultExt(path, ext string) string {
	if filepath.Ext(path) == "" {
		return path + ext
	}
	return path
}

func trimDots(exts []string) []string {
	out := make([]string, len(exts))
	for i, e := range exts {
		out[i] = strings.TrimPrefix(e, ".")
	}
	return out
}
