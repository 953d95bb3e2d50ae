package widgets

import (
	"image"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quill/internal/document"
	"quill/internal/editor"
	"quill/internal/imaging"
	"quill/internal/logger"
)

type memClipboard struct{ content string }

func (m *memClipboard) Content() string           { return m.content }
func (m *memClipboard) SetContent(content string) { m.content = content }

func newView(t *testing.T) (*DocumentView, *editor.Session, *memClipboard) {
	t.Helper()
	test.NewTempApp(t)
	s := editor.NewSession(editor.Options{}, logger.Nop{})
	cb := &memClipboard{}
	v := NewDocumentView(s, cb)
	w := test.NewTempWindow(t, v)
	w.Canvas().Focus(v)
	return v, s, cb
}

func TestDocumentView_Typing(t *testing.T) {
	v, s, _ := newView(t)
	changes := 0
	v.OnChanged = func() { changes++ }

	test.Type(v, "hello")
	v.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	test.Type(v, "world")
	assert.Equal(t, "hello\nworld", s.Text())
	assert.Equal(t, 11, changes)

	v.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	assert.Equal(t, "hello\nworl", s.Text())

	v.TypedKey(&fyne.KeyEvent{Name: fyne.KeyHome})
	v.TypedKey(&fyne.KeyEvent{Name: fyne.KeyDelete})
	assert.Equal(t, "hello\norl", s.Text())

	v.TypedKey(&fyne.KeyEvent{Name: fyne.KeyUp})
	assert.Equal(t, 0, s.Buffer().Cursor())
}

func TestDocumentView_ShiftSelection(t *testing.T) {
	v, s, cb := newView(t)
	test.Type(v, "abcdef")

	v.KeyDown(&fyne.KeyEvent{Name: desktop.KeyShiftLeft})
	v.TypedKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	v.TypedKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	v.KeyUp(&fyne.KeyEvent{Name: desktop.KeyShiftLeft})

	r, ok := s.Buffer().Selection()
	require.True(t, ok)
	assert.Equal(t, document.Range{Start: 4, End: 6}, r)

	v.TypedShortcut(&fyne.ShortcutCut{})
	assert.Equal(t, "ef", cb.content)
	assert.Equal(t, "abcd", s.Text())

	v.TypedKey(&fyne.KeyEvent{Name: fyne.KeyHome})
	v.TypedShortcut(&fyne.ShortcutPaste{})
	assert.Equal(t, "efabcd", s.Text())

	v.TypedShortcut(&fyne.ShortcutUndo{})
	assert.Equal(t, "abcd", s.Text())
	v.TypedShortcut(&fyne.ShortcutRedo{})
	assert.Equal(t, "efabcd", s.Text())
}

func TestDocumentView_KeyUpReappliesStickySize(t *testing.T) {
	v, s, _ := newView(t)
	test.Type(v, "abc")
	require.NoError(t, s.SetFontSize(22))

	v.TypedShortcut(&fyne.ShortcutSelectAll{})
	v.KeyUp(&fyne.KeyEvent{Name: fyne.KeyA})

	sr, ok := s.Buffer().StyleAt(1)
	require.True(t, ok)
	assert.Equal(t, 22, sr.Font.Size)
}

func TestDocumentView_RendersImagesAndSpacing(t *testing.T) {
	v, s, _ := newView(t)
	scaled, err := imaging.NewDrawScaler().Scale(image.NewRGBA(image.Rect(0, 0, 3, 3)), imaging.Footprint, imaging.Footprint)
	require.NoError(t, err)
	s.InsertImage(&imaging.Picture{Name: "p.png", Image: scaled})
	require.NoError(t, s.SetLineSpacing(2))
	v.Refresh()

	var images int
	for _, seg := range v.Segments() {
		if img, ok := seg.(*imageSegment); ok {
			images++
			obj := img.Visual()
			assert.Equal(t, fyne.NewSize(imaging.Footprint, imaging.Footprint), obj.MinSize())
		}
	}
	assert.Equal(t, 1, images)
	assert.Equal(t, 2*NewDocumentTheme(nil).Size(theme.SizeNameLineSpacing), v.DocumentTheme().Size(theme.SizeNameLineSpacing))
}

func TestDocumentView_FocusShowsCaret(t *testing.T) {
	v, _, _ := newView(t)
	assert.Equal(t, []string{caretText}, texts(v.Segments()))

	v.FocusLost()
	assert.Empty(t, v.Segments())
}

func TestDocumentView_RebuildsOnlyOnChange(t *testing.T) {
	v, s, _ := newView(t)
	s.Type("abc")
	v.Refresh()
	before := v.Segments()
	require.NotEmpty(t, before)

	v.Refresh()
	assert.Same(t, before[0], v.Segments()[0])

	s.Buffer().SetAlignment(document.AlignRight)
	v.Refresh()
	assert.NotSame(t, before[0], v.Segments()[0])
}
