package gui

import (
	"fyne.io/fyne/v2"

	"quill/internal/editor"
)

// Commands holds one handler per menu leaf.
type Commands struct {
	New    func()
	Open   func()
	Save   func()
	SaveAs func()
	Exit   func()

	Undo  func()
	Redo  func()
	Cut   func()
	Copy  func()
	Paste func()

	FontSize     func()
	FontStyle    func(family string)
	Alignment    func()
	LineSpacing  func()
	InsertHeader func()

	InsertImage func()
	DeleteImage func()
}

// BuildMainMenu constructs the fixed File, Edit, Format and Picture menus.
func BuildMainMenu(c Commands) *fyne.MainMenu {
	exit := fyne.NewMenuItem("Exit", c.Exit)
	exit.IsQuit = true

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New", c.New),
		fyne.NewMenuItem("Open", c.Open),
		fyne.NewMenuItem("Save", c.Save),
		fyne.NewMenuItem("Save As", c.SaveAs),
		fyne.NewMenuItemSeparator(),
		exit,
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", c.Undo),
		fyne.NewMenuItem("Redo", c.Redo),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Cut", c.Cut),
		fyne.NewMenuItem("Copy", c.Copy),
		fyne.NewMenuItem("Paste", c.Paste),
	)

	styles := make([]*fyne.MenuItem, 0, len(editor.FontFamilies))
	for _, family := range editor.FontFamilies {
		family := family
		styles = append(styles, fyne.NewMenuItem(family, func() {
			c.FontStyle(family)
		}))
	}
	fontStyle := fyne.NewMenuItem("Font Style", nil)
	fontStyle.ChildMenu = fyne.NewMenu("", styles...)

	options := fyne.NewMenuItem("Formatting Options", nil)
	options.ChildMenu = fyne.NewMenu("",
		fyne.NewMenuItem("Change Line Spacing", c.LineSpacing),
		fyne.NewMenuItem("Insert Header", c.InsertHeader),
	)

	formatMenu := fyne.NewMenu("Format",
		fyne.NewMenuItem("Change Font Size", c.FontSize),
		fontStyle,
		fyne.NewMenuItem("Change Alignment", c.Alignment),
		options,
	)

	pictureMenu := fyne.NewMenu("Picture",
		fyne.NewMenuItem("Insert Image", c.InsertImage),
		fyne.NewMenuItem("Delete Image", c.DeleteImage),
	)

	return fyne.NewMainMenu(fileMenu, editMenu, formatMenu, pictureMenu)
}

// UpdateEditMenu enables Undo and Redo only when there is something to undo
// or redo.
func UpdateEditMenu(menu *fyne.MainMenu, canUndo, canRedo bool) {
	if menu == nil {
		return
	}
	for _, m := range menu.Items {
		if m.Label != "Edit" {
			continue
		}
		changed := false
		for _, item := range m.Items {
			var disabled bool
			switch item.Label {
			case "Undo":
				disabled = !canUndo
			case "Redo":
				disabled = !canRedo
			default:
				continue
			}
			if item.Disabled != disabled {
				item.Disabled = disabled
				changed = true
			}
		}
		if changed {
			menu.Refresh()
		}
		return
	}
}
