package document

type bufferSnapshot struct {
	cells  []Cell
	styles styleSet
	para   Paragraph
	cursor int
	sel    selectionState
}

type historyState struct {
	undo []bufferSnapshot
	redo []bufferSnapshot
}

func (b *Buffer) snapshot() bufferSnapshot {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return bufferSnapshot{
		cells:  cells,
		styles: b.styles.clone(),
		para:   b.para,
		cursor: b.cursor,
		sel:    b.sel,
	}
}

func (b *Buffer) restore(s bufferSnapshot) {
	b.cells = s.cells
	b.styles = s.styles
	b.para = s.para
	b.cursor = b.clampPos(s.cursor)
	b.sel = s.sel
	if b.sel.active {
		b.sel.anchor = b.clampPos(b.sel.anchor)
	}
}

func (b *Buffer) recordUndo(prev bufferSnapshot) {
	limit := b.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	b.hist.undo = append(b.hist.undo, prev)
	if len(b.hist.undo) > limit {
		b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
	}
	b.hist.redo = nil
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

// Undo restores the state before the last edit.
func (b *Buffer) Undo() bool {
	if len(b.hist.undo) == 0 {
		return false
	}

	cur := b.snapshot()
	i := len(b.hist.undo) - 1
	prev := b.hist.undo[i]
	b.hist.undo = b.hist.undo[:i]
	b.hist.redo = append(b.hist.redo, cur)

	b.restore(prev)
	b.version++
	return true
}

// Redo reapplies the last undone edit.
func (b *Buffer) Redo() bool {
	if len(b.hist.redo) == 0 {
		return false
	}

	cur := b.snapshot()
	i := len(b.hist.redo) - 1
	next := b.hist.redo[i]
	b.hist.redo = b.hist.redo[:i]
	b.hist.undo = append(b.hist.undo, cur)

	b.restore(next)
	b.version++
	return true
}
