package gui

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Prompter asks the user for a single value. Callbacks run only when the
// user confirms; cancellation is silent.
type Prompter interface {
	AskInt(title, label string, initial int, fn func(int))
	AskFloat(title, label string, initial float64, fn func(float64))
	AskString(title, label string, fn func(string))
}

// DialogPrompter shows Fyne form dialogs over a window.
type DialogPrompter struct {
	window fyne.Window
}

func NewDialogPrompter(w fyne.Window) *DialogPrompter {
	return &DialogPrompter{window: w}
}

func (p *DialogPrompter) AskInt(title, label string, initial int, fn func(int)) {
	entry := widget.NewEntry()
	entry.SetText(strconv.Itoa(initial))
	entry.Validator = func(s string) error {
		_, err := strconv.Atoi(strings.TrimSpace(s))
		return err
	}
	p.ask(title, label, entry, func(s string) {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			fn(v)
		}
	})
}

func (p *DialogPrompter) AskFloat(title, label string, initial float64, fn func(float64)) {
	entry := widget.NewEntry()
	entry.SetText(strconv.FormatFloat(initial, 'f', -1, 64))
	entry.Validator = func(s string) error {
		_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return err
	}
	p.ask(title, label, entry, func(s string) {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			fn(v)
		}
	})
}

// AskString passes the entry text through unmodified.
func (p *DialogPrompter) AskString(title, label string, fn func(string)) {
	p.ask(title, label, widget.NewEntry(), fn)
}

func (p *DialogPrompter) ask(title, label string, entry *widget.Entry, fn func(string)) {
	items := []*widget.FormItem{widget.NewFormItem(label, entry)}
	d := dialog.NewForm(title, "OK", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		fn(entry.Text)
	}, p.window)
	d.Resize(fyne.NewSize(360, d.MinSize().Height))
	d.Show()
	p.window.Canvas().Focus(entry)
}
