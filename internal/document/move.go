package document

// LineStart returns the position of the first cell on p's line.
func (b *Buffer) LineStart(p int) int {
	p = b.clampPos(p)
	for p > 0 && !b.isNewline(p-1) {
		p--
	}
	return p
}

// LineEnd returns the position of the newline ending p's line, or Len().
func (b *Buffer) LineEnd(p int) int {
	p = b.clampPos(p)
	for p < len(b.cells) && !b.isNewline(p) {
		p++
	}
	return p
}

func (b *Buffer) isNewline(p int) bool {
	c := b.cells[p]
	return c.Embed == nil && c.Rune == '\n'
}

// Left returns the position one cell before p.
func (b *Buffer) Left(p int) int { return b.clampPos(p - 1) }

// Right returns the position one cell after p.
func (b *Buffer) Right(p int) int { return b.clampPos(p + 1) }

// Up returns the position on the previous line at p's column, clamped to
// that line's length. On the first line it returns 0.
func (b *Buffer) Up(p int) int {
	start := b.LineStart(p)
	if start == 0 {
		return 0
	}
	col := b.clampPos(p) - start
	prevStart := b.LineStart(start - 1)
	return min(prevStart+col, start-1)
}

// Down returns the position on the next line at p's column, clamped to that
// line's length. On the last line it returns Len().
func (b *Buffer) Down(p int) int {
	end := b.LineEnd(p)
	if end == len(b.cells) {
		return end
	}
	col := b.clampPos(p) - b.LineStart(p)
	nextStart := end + 1
	return min(nextStart+col, b.LineEnd(nextStart))
}

// LineCol returns the zero-based line and column of p.
func (b *Buffer) LineCol(p int) (line, col int) {
	p = b.clampPos(p)
	for i := 0; i < p; i++ {
		if b.isNewline(i) {
			line++
			col = 0
			continue
		}
		col++
	}
	return line, col
}
