package widgets

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"quill/internal/editor"
)

// DocumentView is the focusable editing surface for a session's document.
type DocumentView struct {
	widget.BaseWidget

	session   *editor.Session
	clipboard editor.Clipboard
	theme     *DocumentTheme
	rich      *widget.RichText

	focused bool
	shift   bool

	drawn        bool
	drawnVersion uint64
	drawnFocus   bool

	// OnChanged runs after any edit, cursor move or refresh request.
	OnChanged func()
}

func NewDocumentView(session *editor.Session, clipboard editor.Clipboard) *DocumentView {
	rich := widget.NewRichText()
	rich.Wrapping = fyne.TextWrapWord

	v := &DocumentView{
		session:   session,
		clipboard: clipboard,
		theme:     NewDocumentTheme(nil),
		rich:      rich,
	}
	v.ExtendBaseWidget(v)
	v.sync()
	return v
}

func (v *DocumentView) CreateRenderer() fyne.WidgetRenderer {
	scroll := container.NewVScroll(container.NewThemeOverride(v.rich, v.theme))
	return widget.NewSimpleRenderer(scroll)
}

func (v *DocumentView) Session() *editor.Session { return v.session }

// Segments exposes the rendered rich text for inspection.
func (v *DocumentView) Segments() []widget.RichTextSegment { return v.rich.Segments }

// DocumentTheme returns the theme scoped to the document.
func (v *DocumentView) DocumentTheme() *DocumentTheme { return v.theme }

// Refresh re-renders the session's document.
func (v *DocumentView) Refresh() {
	v.sync()
	v.rich.Refresh()
	v.BaseWidget.Refresh()
}

// sync rebuilds the segments when the buffer or focus changed since the last
// rebuild.
func (v *DocumentView) sync() {
	buf := v.session.Buffer()
	if v.drawn && v.drawnVersion == buf.Version() && v.drawnFocus == v.focused {
		return
	}
	v.theme.SetLineSpacing(buf.Paragraph().LineSpacing)
	v.rich.Segments = Segments(buf, v.session.BaseFont(), v.focused)
	v.drawn, v.drawnVersion, v.drawnFocus = true, buf.Version(), v.focused
}

func (v *DocumentView) changed() {
	v.Refresh()
	if v.OnChanged != nil {
		v.OnChanged()
	}
}

func (v *DocumentView) Tapped(*fyne.PointEvent) {
	if c := fyne.CurrentApp().Driver().CanvasForObject(v); c != nil {
		c.Focus(v)
	}
}

func (v *DocumentView) FocusGained() {
	v.focused = true
	v.Refresh()
}

func (v *DocumentView) FocusLost() {
	v.focused = false
	v.shift = false
	v.Refresh()
}

// AcceptsTab keeps Tab as text instead of focus traversal.
func (v *DocumentView) AcceptsTab() bool { return true }

func (v *DocumentView) TypedRune(r rune) {
	v.session.Type(string(r))
	v.changed()
}

func (v *DocumentView) TypedKey(ev *fyne.KeyEvent) {
	buf := v.session.Buffer()
	p := buf.Cursor()

	switch ev.Name {
	case fyne.KeyReturn, fyne.KeyEnter:
		v.session.Type("\n")
	case fyne.KeyTab:
		v.session.Type("\t")
	case fyne.KeyBackspace:
		v.session.Backspace()
	case fyne.KeyDelete:
		v.session.DeleteForward()
	case fyne.KeyLeft:
		buf.MoveCursor(buf.Left(p), v.shift)
	case fyne.KeyRight:
		buf.MoveCursor(buf.Right(p), v.shift)
	case fyne.KeyUp:
		buf.MoveCursor(buf.Up(p), v.shift)
	case fyne.KeyDown:
		buf.MoveCursor(buf.Down(p), v.shift)
	case fyne.KeyHome:
		buf.MoveCursor(buf.LineStart(p), v.shift)
	case fyne.KeyEnd:
		buf.MoveCursor(buf.LineEnd(p), v.shift)
	default:
		return
	}
	v.changed()
}

func (v *DocumentView) KeyDown(ev *fyne.KeyEvent) {
	if ev.Name == desktop.KeyShiftLeft || ev.Name == desktop.KeyShiftRight {
		v.shift = true
	}
}

// KeyUp runs key-release re-tagging.
func (v *DocumentView) KeyUp(ev *fyne.KeyEvent) {
	if ev.Name == desktop.KeyShiftLeft || ev.Name == desktop.KeyShiftRight {
		v.shift = false
	}
	v.KeyReleased()
}

// KeyReleased reapplies the session's sticky font size to the selection.
func (v *DocumentView) KeyReleased() {
	if v.session.KeyReleased() {
		v.changed()
	}
}

func (v *DocumentView) TypedShortcut(s fyne.Shortcut) {
	switch s.(type) {
	case *fyne.ShortcutCopy:
		v.Copy()
	case *fyne.ShortcutCut:
		v.Cut()
	case *fyne.ShortcutPaste:
		v.Paste()
	case *fyne.ShortcutSelectAll:
		v.SelectAll()
	case *fyne.ShortcutUndo:
		v.Undo()
	case *fyne.ShortcutRedo:
		v.Redo()
	}
}

func (v *DocumentView) Copy() {
	ignoreNoSelection(v.session.Copy(v.clipboard))
}

func (v *DocumentView) Cut() {
	if ignoreNoSelection(v.session.Cut(v.clipboard)) {
		v.changed()
	}
}

func (v *DocumentView) Paste() {
	if ignoreNoSelection(v.session.Paste(v.clipboard)) {
		v.changed()
	}
}

func (v *DocumentView) SelectAll() {
	v.session.Buffer().SelectAll()
	v.changed()
}

func (v *DocumentView) Undo() {
	if v.session.Undo() {
		v.changed()
	}
}

func (v *DocumentView) Redo() {
	if v.session.Redo() {
		v.changed()
	}
}

// ignoreNoSelection reports whether err is nil; ErrNoSelection is dropped.
func ignoreNoSelection(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, editor.ErrNoSelection) {
		return false
	}
	fyne.LogError("clipboard operation failed", err)
	return false
}
