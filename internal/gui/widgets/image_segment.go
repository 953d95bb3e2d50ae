package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"

	"quill/internal/document"
	"quill/internal/imaging"
)

const selectionStroke = 2

// imageSegment renders an embedded picture as its own row of rich text.
type imageSegment struct {
	embed    *document.Embed
	selected bool
}

func newImageSegment(e *document.Embed, selected bool) *imageSegment {
	return &imageSegment{embed: e, selected: selected}
}

func (s *imageSegment) Inline() bool { return false }

func (s *imageSegment) Textual() string { return "" }

func (s *imageSegment) Visual() fyne.CanvasObject {
	img := canvas.NewImageFromImage(s.embed.Image)
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScaleSmooth
	img.SetMinSize(fyne.NewSize(imaging.Footprint, imaging.Footprint))

	outline := canvas.NewRectangle(color.Transparent)
	s.styleOutline(outline)

	return container.NewStack(img, outline)
}

func (s *imageSegment) Update(o fyne.CanvasObject) {
	stack, ok := o.(*fyne.Container)
	if !ok || len(stack.Objects) != 2 {
		return
	}
	if img, ok := stack.Objects[0].(*canvas.Image); ok {
		img.Image = s.embed.Image
		img.Refresh()
	}
	if outline, ok := stack.Objects[1].(*canvas.Rectangle); ok {
		s.styleOutline(outline)
		outline.Refresh()
	}
}

func (s *imageSegment) styleOutline(r *canvas.Rectangle) {
	if s.selected {
		r.StrokeColor = theme.Color(theme.ColorNamePrimary)
		r.StrokeWidth = selectionStroke
		return
	}
	r.StrokeColor = color.Transparent
	r.StrokeWidth = 0
}

func (s *imageSegment) Select(pos1, pos2 fyne.Position) {}

func (s *imageSegment) SelectedText() string { return "" }

func (s *imageSegment) Unselect() {}
