package editor

import "quill/internal/document"

// Type replaces the selection with text, or inserts it at the cursor.
func (s *Session) Type(text string) {
	s.buf.ReplaceSelection(text)
	s.syncImages()
}

// Backspace deletes the selection or the cell before the cursor.
func (s *Session) Backspace() {
	if s.deleteSelection() {
		return
	}
	p := s.buf.Cursor()
	if p == 0 {
		return
	}
	s.buf.Delete(document.Range{Start: p - 1, End: p})
	s.syncImages()
}

// DeleteForward deletes the selection or the cell after the cursor.
func (s *Session) DeleteForward() {
	if s.deleteSelection() {
		return
	}
	p := s.buf.Cursor()
	if p >= s.buf.Len() {
		return
	}
	s.buf.Delete(document.Range{Start: p, End: p + 1})
	s.syncImages()
}

func (s *Session) deleteSelection() bool {
	r, ok := s.buf.Selection()
	if !ok {
		return false
	}
	s.buf.Delete(r)
	s.buf.ClearSelection()
	s.syncImages()
	return true
}

func (s *Session) CanUndo() bool { return s.buf.CanUndo() }

func (s *Session) CanRedo() bool { return s.buf.CanRedo() }

func (s *Session) Undo() bool {
	ok := s.buf.Undo()
	s.syncImages()
	return ok
}

func (s *Session) Redo() bool {
	ok := s.buf.Redo()
	s.syncImages()
	return ok
}

// Copy puts the selected text on cb.
func (s *Session) Copy(cb Clipboard) error {
	if _, ok := s.buf.Selection(); !ok {
		return ErrNoSelection
	}
	cb.SetContent(s.buf.SelectedText())
	return nil
}

// Cut copies the selection to cb and removes it.
func (s *Session) Cut(cb Clipboard) error {
	if err := s.Copy(cb); err != nil {
		return err
	}
	s.deleteSelection()
	return nil
}

// Paste replaces the selection with the clipboard text.
func (s *Session) Paste(cb Clipboard) error {
	text := cb.Content()
	if text == "" {
		return nil
	}
	s.Type(text)
	return nil
}
