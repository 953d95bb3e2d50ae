package editor

import (
	"fmt"
	"strings"

	"quill/internal/document"
)

// HeaderText returns the decorated heading appended by InsertHeader.
func HeaderText(text string) string {
	return "\n\n### " + text + " ###\n\n"
}

// SetFontSize applies the default family at size to the selection. The size
// also becomes the sticky size reapplied on key release, so it is recorded
// even when nothing is selected.
func (s *Session) SetFontSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFontSize, size)
	}
	s.sticky = size
	s.applyFont(document.Font{Family: document.DefaultFamily, Size: size})
	return nil
}

// SetFontStyle applies family at the default size to the selection.
// Without a selection the document is left alone.
func (s *Session) SetFontStyle(family string) {
	if family == "" {
		family = document.DefaultFamily
	}
	s.applyFont(document.Font{Family: family, Size: document.DefaultSize})
}

func (s *Session) applyFont(f document.Font) {
	r, ok := s.buf.Selection()
	if !ok {
		s.log.Debug(component, "font command ignored", map[string]interface{}{
			"reason": ErrNoSelection.Error(),
			"family": f.Family,
			"size":   f.Size,
		})
		return
	}
	id, _ := s.buf.ApplyStyle(r, f)
	s.log.Debug(component, "font applied", map[string]interface{}{
		"range_id": id,
		"start":    r.Start,
		"end":      r.End,
		"family":   f.Family,
		"size":     f.Size,
	})
}

// KeyReleased reapplies the sticky size to a selection that is not yet
// fully styled. It reports whether a style was applied.
func (s *Session) KeyReleased() bool {
	if s.sticky == 0 {
		return false
	}
	r, ok := s.buf.Selection()
	if !ok || s.buf.Styled(r) {
		return false
	}
	_, applied := s.buf.ApplyStyle(r, document.Font{Family: document.DefaultFamily, Size: s.sticky})
	return applied
}

// SetAlignment justifies the whole document. Empty input is ignored.
func (s *Session) SetAlignment(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	a, ok := document.ParseAlignment(value)
	if !ok {
		return fmt.Errorf("%w: %q (want left, center or right)", ErrInvalidAlignment, value)
	}
	s.buf.SetAlignment(a)
	s.log.Debug(component, "alignment changed", map[string]interface{}{"alignment": a.String()})
	return nil
}

// SetLineSpacing sets the buffer-wide line spacing. Zero is ignored.
func (s *Session) SetLineSpacing(v float64) error {
	if v == 0 {
		return nil
	}
	if v < 0 {
		return fmt.Errorf("%w: %g", ErrInvalidSpacing, v)
	}
	s.buf.SetLineSpacing(v)
	s.log.Debug(component, "line spacing changed", map[string]interface{}{"spacing": v})
	return nil
}

// InsertHeader appends a decorated heading at the end of the document.
// Empty text is ignored.
func (s *Session) InsertHeader(text string) {
	if text == "" {
		return
	}
	s.buf.Append(HeaderText(text))
	s.log.Debug(component, "header inserted", map[string]interface{}{"text": text})
}
