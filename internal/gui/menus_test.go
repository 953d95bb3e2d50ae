package gui

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(m *fyne.Menu) []string {
	var out []string
	for _, item := range m.Items {
		if item.IsSeparator {
			out = append(out, "-")
			continue
		}
		out = append(out, item.Label)
	}
	return out
}

func find(m *fyne.Menu, label string) *fyne.MenuItem {
	for _, item := range m.Items {
		if item.Label == label {
			return item
		}
	}
	return nil
}

func TestBuildMainMenu_Tree(t *testing.T) {
	menu := BuildMainMenu(Commands{})
	require.Len(t, menu.Items, 4)

	file, edit, format, picture := menu.Items[0], menu.Items[1], menu.Items[2], menu.Items[3]
	assert.Equal(t, "File", file.Label)
	assert.Equal(t, []string{"New", "Open", "Save", "Save As", "-", "Exit"}, labels(file))
	assert.Equal(t, "Edit", edit.Label)
	assert.Equal(t, []string{"Undo", "Redo", "-", "Cut", "Copy", "Paste"}, labels(edit))
	assert.Equal(t, "Format", format.Label)
	assert.Equal(t, []string{"Change Font Size", "Font Style", "Change Alignment", "Formatting Options"}, labels(format))
	assert.Equal(t, "Picture", picture.Label)
	assert.Equal(t, []string{"Insert Image", "Delete Image"}, labels(picture))

	styles := find(format, "Font Style").ChildMenu
	require.NotNil(t, styles)
	assert.Equal(t, []string{"Default", "Helvetica", "Times", "Courier", "Arial", "Verdana", "Calibri"}, labels(styles))

	options := find(format, "Formatting Options").ChildMenu
	require.NotNil(t, options)
	assert.Equal(t, []string{"Change Line Spacing", "Insert Header"}, labels(options))

	assert.True(t, find(file, "Exit").IsQuit)
}

func TestBuildMainMenu_Bindings(t *testing.T) {
	var calls []string
	record := func(name string) func() { return func() { calls = append(calls, name) } }

	menu := BuildMainMenu(Commands{
		New:          record("new"),
		Open:         record("open"),
		Save:         record("save"),
		SaveAs:       record("saveas"),
		Exit:         record("exit"),
		Undo:         record("undo"),
		Redo:         record("redo"),
		Cut:          record("cut"),
		Copy:         record("copy"),
		Paste:        record("paste"),
		FontSize:     record("size"),
		FontStyle:    func(f string) { calls = append(calls, "style:"+f) },
		Alignment:    record("align"),
		LineSpacing:  record("spacing"),
		InsertHeader: record("header"),
		InsertImage:  record("image"),
		DeleteImage:  record("unimage"),
	})

	var walk func(m *fyne.Menu)
	walk = func(m *fyne.Menu) {
		for _, item := range m.Items {
			if item.ChildMenu != nil {
				walk(item.ChildMenu)
				continue
			}
			if item.Action != nil {
				item.Action()
			}
		}
	}
	for _, m := range menu.Items {
		walk(m)
	}

	assert.Equal(t, []string{
		"new", "open", "save", "saveas", "exit",
		"undo", "redo", "cut", "copy", "paste",
		"size",
		"style:Default", "style:Helvetica", "style:Times", "style:Courier", "style:Arial", "style:Verdana", "style:Calibri",
		"align", "spacing", "header",
		"image", "unimage",
	}, calls)
}

func TestUpdateEditMenu(t *testing.T) {
	menu := BuildMainMenu(Commands{})
	edit := menu.Items[1]

	UpdateEditMenu(menu, false, true)
	assert.True(t, find(edit, "Undo").Disabled)
	assert.False(t, find(edit, "Redo").Disabled)
	assert.False(t, find(edit, "Cut").Disabled)

	UpdateEditMenu(menu, true, false)
	assert.False(t, find(edit, "Undo").Disabled)
	assert.True(t, find(edit, "Redo").Disabled)

	UpdateEditMenu(nil, true, true)
}
