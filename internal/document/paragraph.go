package document

import "strings"

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlignment accepts left, center or right in any case.
func ParseAlignment(s string) (Alignment, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return AlignLeft, true
	case "center":
		return AlignCenter, true
	case "right":
		return AlignRight, true
	}
	return AlignLeft, false
}

// Paragraph holds settings that apply to the whole buffer.
type Paragraph struct {
	Alignment   Alignment
	LineSpacing float64
}

func DefaultParagraph() Paragraph {
	return Paragraph{Alignment: AlignLeft, LineSpacing: 1.0}
}

func (b *Buffer) Paragraph() Paragraph { return b.para }

// SetAlignment justifies the entire buffer.
func (b *Buffer) SetAlignment(a Alignment) {
	if b.para.Alignment == a {
		return
	}
	b.recordUndo(b.snapshot())
	b.para.Alignment = a
	b.version++
}

func (b *Buffer) SetLineSpacing(v float64) {
	if b.para.LineSpacing == v {
		return
	}
	b.recordUndo(b.snapshot())
	b.para.LineSpacing = v
	b.version++
}
