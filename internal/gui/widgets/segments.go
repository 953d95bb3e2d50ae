package widgets

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"quill/internal/document"
)

const caretText = "│"

// familyStyle maps a font family onto the text styles the toolkit can draw.
// Families without a distinct style draw as regular text; the family itself
// is still recorded in the style range.
func familyStyle(family string) fyne.TextStyle {
	switch family {
	case "Courier":
		return fyne.TextStyle{Monospace: true}
	case "Times":
		return fyne.TextStyle{Italic: true}
	default:
		return fyne.TextStyle{}
	}
}

func textAlign(a document.Alignment) fyne.TextAlign {
	switch a {
	case document.AlignCenter:
		return fyne.TextAlignCenter
	case document.AlignRight:
		return fyne.TextAlignTrailing
	default:
		return fyne.TextAlignLeading
	}
}

type runKey struct {
	font     document.Font
	selected bool
}

// Segments converts the buffer into rich text. Cells sharing a font and
// selection state form one text segment; each embed is its own segment.
// With caret set and no selection a caret marker is placed at the cursor.
func Segments(buf *document.Buffer, base document.Font, caret bool) []widget.RichTextSegment {
	align := textAlign(buf.Paragraph().Alignment)
	sel, hasSel := buf.Selection()
	cursor := buf.Cursor()

	var (
		out  []widget.RichTextSegment
		run  strings.Builder
		key  runKey
		open bool
	)
	flush := func() {
		if open && run.Len() > 0 {
			out = append(out, textSegment(run.String(), key, align))
		}
		run.Reset()
		open = false
	}

	for p, c := range buf.Cells() {
		if caret && !hasSel && p == cursor {
			flush()
			out = append(out, caretSegment(align))
		}

		selected := hasSel && sel.Contains(p)
		if c.Embed != nil {
			flush()
			out = append(out, newImageSegment(c.Embed, selected))
			continue
		}

		font := base
		if sr, ok := buf.StyleAt(p); ok {
			font = sr.Font
		}
		k := runKey{font: font, selected: selected}
		if open && k != key {
			flush()
		}
		key = k
		open = true
		run.WriteRune(c.Rune)
	}
	flush()

	if caret && !hasSel && cursor == buf.Len() {
		out = append(out, caretSegment(align))
	}
	return out
}

func textSegment(text string, k runKey, align fyne.TextAlign) *widget.TextSegment {
	color := theme.ColorNameForeground
	if k.selected {
		color = theme.ColorNamePrimary
	}
	return &widget.TextSegment{
		Text: text,
		Style: widget.RichTextStyle{
			Alignment: align,
			ColorName: color,
			Inline:    true,
			SizeName:  FontSizeName(k.font.Size),
			TextStyle: familyStyle(k.font.Family),
		},
	}
}

func caretSegment(align fyne.TextAlign) *widget.TextSegment {
	return &widget.TextSegment{
		Text: caretText,
		Style: widget.RichTextStyle{
			Alignment: align,
			ColorName: theme.ColorNamePrimary,
			Inline:    true,
			SizeName:  theme.SizeNameText,
		},
	}
}
