package document

import (
	"image"
	"strings"
)

// ImageTag is the tag set carried by cells holding an embedded image.
const ImageTag = "img"

// DefaultHistoryLimit bounds the undo stack when Options leaves it zero.
const DefaultHistoryLimit = 1000

type Options struct {
	HistoryLimit int
}

// Embed is a decoded object shown inline at one cell.
type Embed struct {
	ID    int
	Name  string
	Image image.Image
}

// Tags reports the tag names attached to the embed's cell.
func (e *Embed) Tags() []string { return []string{ImageTag} }

// Size returns the pixel footprint of the embedded image.
func (e *Embed) Size() image.Point {
	if e == nil || e.Image == nil {
		return image.Point{}
	}
	return e.Image.Bounds().Size()
}

// Cell is either a rune or, when Embed is non-nil, an embedded object.
type Cell struct {
	Rune  rune
	Embed *Embed
}

func (c Cell) IsEmbed() bool { return c.Embed != nil }

// Range is a half-open cell interval [Start, End).
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int      { return r.End - r.Start }
func (r Range) IsEmpty() bool { return r.End <= r.Start }

// Contains reports whether cell p lies inside r.
func (r Range) Contains(p int) bool { return p >= r.Start && p < r.End }

// Overlaps reports whether r and o share at least one cell.
func (r Range) Overlaps(o Range) bool { return r.Start < o.End && o.Start < r.End }

func NormalizeRange(r Range) Range {
	if r.End < r.Start {
		r.Start, r.End = r.End, r.Start
	}
	return r
}

type selectionState struct {
	active bool
	anchor int
}

// Buffer is the document state: cells, cursor, selection, styles, paragraph
// settings and history.
type Buffer struct {
	cells   []Cell
	styles  styleSet
	para    Paragraph
	version uint64

	cursor int
	sel    selectionState

	opt  Options
	hist historyState
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = DefaultHistoryLimit
	}
	return &Buffer{
		cells: textCells(text),
		para:  DefaultParagraph(),
		opt:   opt,
	}
}

func textCells(text string) []Cell {
	cells := make([]Cell, 0, len(text))
	for _, r := range text {
		cells = append(cells, Cell{Rune: r})
	}
	return cells
}

// Len returns the number of cells.
func (b *Buffer) Len() int { return len(b.cells) }

// Version changes whenever the content, styles, paragraph settings, cursor
// or selection change.
func (b *Buffer) Version() uint64 { return b.version }

// Text returns the textual content. Embedded objects contribute nothing.
func (b *Buffer) Text() string {
	return cellText(b.cells)
}

func cellText(cells []Cell) string {
	var sb strings.Builder
	for _, c := range cells {
		if c.Embed != nil {
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// TextRange returns the text of r, skipping embedded objects.
func (b *Buffer) TextRange(r Range) string {
	r = b.clampRange(r)
	return cellText(b.cells[r.Start:r.End])
}

// Cells returns a copy of the cell slice.
func (b *Buffer) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// CellAt returns the cell at p and whether p is in range.
func (b *Buffer) CellAt(p int) (Cell, bool) {
	if p < 0 || p >= len(b.cells) {
		return Cell{}, false
	}
	return b.cells[p], true
}

// TagsAt lists the tag names present at cell p.
func (b *Buffer) TagsAt(p int) []string {
	c, ok := b.CellAt(p)
	if !ok {
		return nil
	}
	var tags []string
	if c.Embed != nil {
		tags = append(tags, c.Embed.Tags()...)
	}
	if _, ok := b.styles.at(p); ok {
		tags = append(tags, FontTag)
	}
	return tags
}

// Embeds returns the embedded objects in document order.
func (b *Buffer) Embeds() []*Embed {
	var out []*Embed
	for _, c := range b.cells {
		if c.Embed != nil {
			out = append(out, c.Embed)
		}
	}
	return out
}

func (b *Buffer) Cursor() int { return b.cursor }

// SetCursor moves the cursor and clears the selection.
func (b *Buffer) SetCursor(p int) {
	b.MoveCursor(p, false)
}

// MoveCursor moves the cursor to p. With extend the selection anchor stays
// (or is set at the old cursor) so the selection grows or shrinks.
func (b *Buffer) MoveCursor(p int, extend bool) {
	p = b.clampPos(p)
	prev := b.sel
	if extend {
		if !b.sel.active {
			b.sel = selectionState{active: true, anchor: b.cursor}
		}
	} else {
		b.sel = selectionState{}
	}
	if p == b.cursor && b.sel == prev {
		return
	}
	b.cursor = p
	b.version++
}

// Select sets the selection to r with the cursor at r.End.
func (b *Buffer) Select(r Range) {
	r = b.clampRange(NormalizeRange(r))
	b.sel = selectionState{active: true, anchor: r.Start}
	b.cursor = r.End
	b.version++
}

// SelectAll selects every cell.
func (b *Buffer) SelectAll() {
	b.Select(Range{Start: 0, End: len(b.cells)})
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	b.sel = selectionState{}
	b.version++
}

// Selection returns the normalized selection, false when it is empty.
func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.cursor})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectedText returns the text of the selection, "" when there is none.
func (b *Buffer) SelectedText() string {
	r, ok := b.Selection()
	if !ok {
		return ""
	}
	return b.TextRange(r)
}

// Insert inserts text at p.
func (b *Buffer) Insert(p int, text string) {
	if text == "" {
		return
	}
	b.InsertCells(p, textCells(text))
}

// InsertCells inserts cells at p as one undoable step. Positions at or after
// p move right; style ranges starting at or after p shift, ranges spanning p
// grow.
func (b *Buffer) InsertCells(p int, cells []Cell) {
	if len(cells) == 0 {
		return
	}
	p = b.clampPos(p)
	b.recordUndo(b.snapshot())
	b.insertCells(p, cells)
}

func (b *Buffer) insertCells(p int, cells []Cell) {
	n := len(cells)
	next := make([]Cell, 0, len(b.cells)+n)
	next = append(next, b.cells[:p]...)
	next = append(next, cells...)
	next = append(next, b.cells[p:]...)
	b.cells = next

	b.styles.shiftInsert(p, n)
	if b.sel.active {
		// A selection keeps its extent when text lands on its boundary:
		// text at the start goes before it, text at the end after it.
		lo, hi := min(b.cursor, b.sel.anchor), max(b.cursor, b.sel.anchor)
		shift := func(x int) int {
			if x > p || (x == p && x == lo && hi > lo) {
				return x + n
			}
			return x
		}
		b.cursor, b.sel.anchor = shift(b.cursor), shift(b.sel.anchor)
	} else if b.cursor >= p {
		b.cursor += n
	}
	b.version++
}

// Append inserts text at the end of the buffer.
func (b *Buffer) Append(text string) {
	b.Insert(len(b.cells), text)
}

// Delete removes the cells of r.
func (b *Buffer) Delete(r Range) {
	r = b.clampRange(NormalizeRange(r))
	if r.IsEmpty() {
		return
	}
	b.recordUndo(b.snapshot())
	b.deleteRange(r)
}

func (b *Buffer) deleteRange(r Range) {
	b.cells = append(b.cells[:r.Start:r.Start], b.cells[r.End:]...)
	b.styles.shiftDelete(r)
	b.cursor = mapDeleted(b.cursor, r)
	if b.sel.active {
		b.sel.anchor = mapDeleted(b.sel.anchor, r)
	}
	b.version++
}

func mapDeleted(p int, r Range) int {
	switch {
	case p <= r.Start:
		return p
	case p >= r.End:
		return p - r.Len()
	default:
		return r.Start
	}
}

// ReplaceSelection replaces the selection (or inserts at the cursor when
// there is none) with text as one undoable step. The cursor ends after the
// inserted text.
func (b *Buffer) ReplaceSelection(text string) {
	r, ok := b.Selection()
	if !ok && text == "" {
		return
	}
	b.recordUndo(b.snapshot())
	if ok {
		b.deleteRange(r)
		b.cursor = r.Start
	}
	b.sel = selectionState{}
	b.insertCells(b.cursor, textCells(text))
}

// Reset replaces the whole document with text. Styles, paragraph settings
// and history are discarded.
func (b *Buffer) Reset(text string) {
	b.cells = textCells(text)
	b.styles = styleSet{}
	b.para = DefaultParagraph()
	b.cursor = 0
	b.sel = selectionState{}
	b.hist = historyState{}
	b.version++
}

func (b *Buffer) clampPos(p int) int {
	if p < 0 {
		return 0
	}
	if p > len(b.cells) {
		return len(b.cells)
	}
	return p
}

func (b *Buffer) clampRange(r Range) Range {
	r.Start = b.clampPos(r.Start)
	r.End = b.clampPos(r.End)
	if r.End < r.Start {
		r.End = r.Start
	}
	return r
}
