package widgets

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const fontSizePrefix = "quill.font."

// FontSizeName returns the theme size name that resolves to pt.
func FontSizeName(pt int) fyne.ThemeSizeName {
	return fyne.ThemeSizeName(fontSizePrefix + strconv.Itoa(pt))
}

func parseFontSizeName(name fyne.ThemeSizeName) (int, bool) {
	rest, ok := strings.CutPrefix(string(name), fontSizePrefix)
	if !ok {
		return 0, false
	}
	pt, err := strconv.Atoi(rest)
	if err != nil || pt <= 0 {
		return 0, false
	}
	return pt, true
}

// DocumentTheme scopes the document's font sizes and line spacing to the
// document view.
type DocumentTheme struct {
	fyne.Theme
	spacing float32
}

func NewDocumentTheme(base fyne.Theme) *DocumentTheme {
	if base == nil {
		base = theme.DefaultTheme()
	}
	return &DocumentTheme{Theme: base, spacing: 1}
}

// SetLineSpacing scales the base theme's line spacing by v.
func (t *DocumentTheme) SetLineSpacing(v float64) {
	if v <= 0 {
		v = 1
	}
	t.spacing = float32(v)
}

func (t *DocumentTheme) Size(name fyne.ThemeSizeName) float32 {
	if pt, ok := parseFontSizeName(name); ok {
		return float32(pt)
	}
	size := t.Theme.Size(name)
	if name == theme.SizeNameLineSpacing {
		return size * t.spacing
	}
	return size
}
