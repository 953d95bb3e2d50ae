package document

import "sort"

// FontTag names the tag reported for cells covered by a style range.
const FontTag = "font"

const (
	DefaultFamily = "Default"
	DefaultSize   = 12
)

// Font is a family and point size.
type Font struct {
	Family string
	Size   int
}

func DefaultFont() Font { return Font{Family: DefaultFamily, Size: DefaultSize} }

// RangeID identifies a style range for its whole lifetime.
type RangeID uint64

// StyleRange attaches a font to the cells of Range.
type StyleRange struct {
	ID    RangeID
	Range Range
	Font  Font
}

// styleSet keeps non-overlapping style ranges sorted by start.
type styleSet struct {
	ranges []StyleRange
	nextID RangeID
}

func (s *styleSet) newID() RangeID {
	s.nextID++
	return s.nextID
}

func (s *styleSet) clone() styleSet {
	out := styleSet{nextID: s.nextID}
	if len(s.ranges) > 0 {
		out.ranges = make([]StyleRange, len(s.ranges))
		copy(out.ranges, s.ranges)
	}
	return out
}

// apply attaches f to r. Cells of older ranges inside r are taken over by the
// new range; an older range that spans r is split in two.
func (s *styleSet) apply(r Range, f Font) RangeID {
	next := make([]StyleRange, 0, len(s.ranges)+2)
	for _, old := range s.ranges {
		if !old.Range.Overlaps(r) {
			next = append(next, old)
			continue
		}
		if old.Range.Start < r.Start {
			left := old
			left.Range.End = r.Start
			next = append(next, left)
		}
		if old.Range.End > r.End {
			right := old
			right.Range.Start = r.End
			if old.Range.Start < r.Start {
				right.ID = s.newID()
			}
			next = append(next, right)
		}
	}
	id := s.newID()
	next = append(next, StyleRange{ID: id, Range: r, Font: f})
	sort.Slice(next, func(i, j int) bool { return next[i].Range.Start < next[j].Range.Start })
	s.ranges = next
	return id
}

func (s *styleSet) at(p int) (StyleRange, bool) {
	i := sort.Search(len(s.ranges), func(i int) bool { return s.ranges[i].Range.End > p })
	if i < len(s.ranges) && s.ranges[i].Range.Contains(p) {
		return s.ranges[i], true
	}
	return StyleRange{}, false
}

// covers reports whether every cell of r belongs to some style range.
func (s *styleSet) covers(r Range) bool {
	p := r.Start
	for _, sr := range s.ranges {
		if sr.Range.End <= p {
			continue
		}
		if sr.Range.Start > p {
			return false
		}
		p = sr.Range.End
		if p >= r.End {
			return true
		}
	}
	return p >= r.End
}

func (s *styleSet) shiftInsert(p, n int) {
	for i := range s.ranges {
		sr := &s.ranges[i].Range
		switch {
		case p <= sr.Start:
			sr.Start += n
			sr.End += n
		case p < sr.End:
			sr.End += n
		}
	}
}

func (s *styleSet) shiftDelete(r Range) {
	next := s.ranges[:0]
	for _, sr := range s.ranges {
		sr.Range.Start = mapDeleted(sr.Range.Start, r)
		sr.Range.End = mapDeleted(sr.Range.End, r)
		if sr.Range.IsEmpty() {
			continue
		}
		next = append(next, sr)
	}
	s.ranges = next
}

// ApplyStyle attaches f to r as one undoable step and returns the new range's
// ID. Existing ranges keep their fonts outside r.
func (b *Buffer) ApplyStyle(r Range, f Font) (RangeID, bool) {
	r = b.clampRange(NormalizeRange(r))
	if r.IsEmpty() {
		return 0, false
	}
	b.recordUndo(b.snapshot())
	id := b.styles.apply(r, f)
	b.version++
	return id, true
}

// StyleRanges returns the style ranges sorted by start.
func (b *Buffer) StyleRanges() []StyleRange {
	return b.styles.clone().ranges
}

// StyleAt returns the style range covering cell p.
func (b *Buffer) StyleAt(p int) (StyleRange, bool) {
	return b.styles.at(p)
}

func (b *Buffer) styleByID(id RangeID) (StyleRange, bool) {
	for _, sr := range b.styles.ranges {
		if sr.ID == id {
			return sr, true
		}
	}
	return StyleRange{}, false
}

// Styled reports whether every cell of r is covered by a style range.
func (b *Buffer) Styled(r Range) bool {
	r = b.clampRange(NormalizeRange(r))
	if r.IsEmpty() {
		return false
	}
	return b.styles.covers(r)
}
