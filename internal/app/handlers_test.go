package app

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"io"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quill/internal/document"
	"quill/internal/editor"
	"quill/internal/gui"
	"quill/internal/logger"
)

type memClipboard struct{ content string }

func (m *memClipboard) Content() string           { return m.content }
func (m *memClipboard) SetContent(content string) { m.content = content }

// scriptedPrompter answers every prompt with the next queued value; an
// exhausted queue behaves like Cancel.
type scriptedPrompter struct {
	ints    []int
	floats  []float64
	strings []string
}

func (p *scriptedPrompter) AskInt(_, _ string, _ int, fn func(int)) {
	if len(p.ints) == 0 {
		return
	}
	v := p.ints[0]
	p.ints = p.ints[1:]
	fn(v)
}

func (p *scriptedPrompter) AskFloat(_, _ string, _ float64, fn func(float64)) {
	if len(p.floats) == 0 {
		return
	}
	v := p.floats[0]
	p.floats = p.floats[1:]
	fn(v)
}

func (p *scriptedPrompter) AskString(_, _ string, fn func(string)) {
	if len(p.strings) == 0 {
		return
	}
	v := p.strings[0]
	p.strings = p.strings[1:]
	fn(v)
}

type closeBuffer struct {
	bytes.Buffer
	closed bool
}

func (c *closeBuffer) Close() error {
	c.closed = true
	return nil
}

type fakeChooser struct {
	open     io.ReadCloser
	openName string
	openErr  error
	openKind gui.FileKind

	save    *closeBuffer
	saveErr error
}

func (f *fakeChooser) Open(kind gui.FileKind, fn gui.OpenFunc) {
	f.openKind = kind
	if f.open == nil {
		fn(nil, "", f.openErr)
		return
	}
	fn(f.open, f.openName, nil)
}

func (f *fakeChooser) Save(fn gui.SaveFunc) {
	if f.save == nil {
		fn(nil, "", f.saveErr)
		return
	}
	fn(f.save, "out.txt", nil)
}

type fixture struct {
	handlers *Handlers
	session  *editor.Session
	manager  *gui.Manager
	prompts  *scriptedPrompter
	chooser  *fakeChooser
	quits    int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	test.NewTempApp(t)
	w := test.NewTempWindow(t, widget.NewLabel(""))

	f := &fixture{prompts: &scriptedPrompter{}, chooser: &fakeChooser{}}
	f.session = editor.NewSession(editor.Options{}, logger.Nop{})
	f.manager = gui.NewManager(w, AppName, f.session, &memClipboard{}, logger.Nop{})
	w.SetContent(f.manager.GetMainContainer())

	f.handlers = NewHandlers(f.session, f.manager, f.prompts, f.chooser, logger.Nop{}, func() { f.quits++ })
	f.handlers.background = func(fn func()) { fn() }
	return f
}

func TestHandlers_NewClears(t *testing.T) {
	f := newFixture(t)
	f.session.Type("scratch")
	f.handlers.HandleNew()
	assert.Equal(t, "", f.session.Text())
	assert.Equal(t, AppName, f.manager.GetWindow().Title())
}

func TestHandlers_OpenReplacesBuffer(t *testing.T) {
	f := newFixture(t)
	f.session.Type("old")
	f.chooser.open = io.NopCloser(strings.NewReader("fresh\ncontent"))
	f.chooser.openName = "notes.txt"

	f.handlers.HandleOpen()
	assert.Equal(t, gui.TextFile, f.chooser.openKind)
	assert.Equal(t, "fresh\ncontent", f.session.Text())
	assert.Equal(t, "notes.txt - Quill", f.manager.GetWindow().Title())
	assert.Equal(t, "Opened notes.txt", f.manager.StatusBar().Status())
}

func TestHandlers_OpenCancelledIsNoop(t *testing.T) {
	f := newFixture(t)
	f.session.Type("keep")
	f.handlers.HandleOpen()
	assert.Equal(t, "keep", f.session.Text())
	assert.Equal(t, "Ready", f.manager.StatusBar().Status())
}

func TestHandlers_OpenErrorKeepsBuffer(t *testing.T) {
	f := newFixture(t)
	f.session.Type("keep")
	f.chooser.openErr = errors.New("permission denied")
	f.handlers.HandleOpen()
	assert.Equal(t, "keep", f.session.Text())
	assert.Equal(t, "File Open Error", f.manager.StatusBar().Status())
}

func TestHandlers_SaveWritesText(t *testing.T) {
	f := newFixture(t)
	f.session.Type("to disk")
	f.chooser.save = &closeBuffer{}

	f.handlers.HandleSave()
	assert.Equal(t, "to disk", f.chooser.save.String())
	assert.True(t, f.chooser.save.closed)
	assert.Equal(t, "Saved out.txt", f.manager.StatusBar().Status())
}

func TestHandlers_SaveCancelled(t *testing.T) {
	f := newFixture(t)
	f.handlers.HandleSave()
	assert.Equal(t, "Ready", f.manager.StatusBar().Status())
}

func TestHandlers_Formatting(t *testing.T) {
	f := newFixture(t)
	f.session.Type("hello world")
	f.session.Buffer().Select(document.Range{Start: 0, End: 5})

	f.prompts.ints = []int{28}
	f.handlers.HandleFontSize()
	sr, ok := f.session.Buffer().StyleAt(0)
	require.True(t, ok)
	assert.Equal(t, 28, sr.Font.Size)

	f.handlers.HandleFontStyle("Courier")
	sr, _ = f.session.Buffer().StyleAt(0)
	assert.Equal(t, "Courier", sr.Font.Family)

	f.prompts.strings = []string{"center"}
	f.handlers.HandleAlignment()
	assert.Equal(t, document.AlignCenter, f.session.Buffer().Paragraph().Alignment)

	f.prompts.strings = []string{"sideways"}
	f.handlers.HandleAlignment()
	assert.Equal(t, document.AlignCenter, f.session.Buffer().Paragraph().Alignment)
	assert.Equal(t, "Alignment", f.manager.StatusBar().Status())

	f.prompts.floats = []float64{1.5}
	f.handlers.HandleLineSpacing()
	assert.Equal(t, 1.5, f.session.Buffer().Paragraph().LineSpacing)

	f.prompts.strings = []string{"Notes"}
	f.handlers.HandleInsertHeader()
	assert.Equal(t, "hello world\n\n### Notes ###\n\n", f.session.Text())

	f.handlers.HandleFontSize()
	f.handlers.HandleInsertHeader()
	assert.Equal(t, "hello world\n\n### Notes ###\n\n", f.session.Text(), "cancel is a no-op")

	f.prompts.strings = []string{"  "}
	f.handlers.HandleInsertHeader()
	assert.Equal(t, "hello world\n\n### Notes ###\n\n\n\n###    ###\n\n", f.session.Text())
}

func TestHandlers_InsertAndDeleteImage(t *testing.T) {
	f := newFixture(t)
	f.session.Type("caption")

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 64, 32))))
	f.chooser.open = io.NopCloser(&buf)
	f.chooser.openName = "photo.png"

	f.handlers.HandleInsertImage()
	assert.Equal(t, gui.ImageFile, f.chooser.openKind)
	images := f.session.Images()
	require.Len(t, images, 1)
	assert.Equal(t, image.Pt(400, 400), images[0].Size())

	f.handlers.HandleDeleteImage()
	assert.Len(t, f.session.Images(), 1, "no selection")

	f.session.Buffer().Select(document.Range{Start: 0, End: 3})
	f.handlers.HandleDeleteImage()
	assert.Len(t, f.session.Images(), 1, "selection not tagged img")

	f.session.Buffer().Select(document.Range{Start: 7, End: 8})
	f.handlers.HandleDeleteImage()
	assert.Empty(t, f.session.Images())
	assert.Equal(t, "caption\n", f.session.Text())
}

func TestHandlers_InsertImageDecodeError(t *testing.T) {
	f := newFixture(t)
	f.chooser.open = io.NopCloser(strings.NewReader("not an image"))
	f.chooser.openName = "bogus.png"

	f.handlers.HandleInsertImage()
	assert.Empty(t, f.session.Images())
	assert.Equal(t, "Image Load Error", f.manager.StatusBar().Status())
}

func TestHandlers_ExitAndCommands(t *testing.T) {
	f := newFixture(t)
	cmds := f.handlers.Commands()
	require.NotNil(t, cmds.Exit)
	cmds.Exit()
	assert.Equal(t, 1, f.quits)

	for _, r := range "abc" {
		f.session.Type(string(r))
	}
	cmds.Undo()
	assert.Equal(t, "ab", f.session.Text())
	cmds.Redo()
	assert.Equal(t, "abc", f.session.Text())
}

func TestLifecycle_ShutdownOnce(t *testing.T) {
	f := newFixture(t)
	f.session.Type("x")
	l := NewLifecycle(f.session, f.manager, logger.Nop{})
	l.Shutdown()
	l.Shutdown()
	assert.Equal(t, "", f.session.Text())
}
