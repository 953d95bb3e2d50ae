// Package editor implements the editor session: buffer operations,
// formatting, image embedding and clipboard editing over one document.
//
// A Session is owned by the UI goroutine and is not safe for concurrent use.
package editor

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"unicode/utf8"

	"quill/internal/document"
	"quill/internal/imaging"
	"quill/internal/logger"
)

const component = "Session"

var (
	ErrNoSelection      = errors.New("no selection")
	ErrInvalidAlignment = errors.New("invalid alignment")
	ErrInvalidSpacing   = errors.New("invalid line spacing")
	ErrInvalidFontSize  = errors.New("invalid font size")
	ErrInvalidEncoding  = errors.New("file is not valid UTF-8")
)

// FontFamilies are the named styles offered by the Font Style menu.
var FontFamilies = []string{
	document.DefaultFamily,
	"Helvetica",
	"Times",
	"Courier",
	"Arial",
	"Verdana",
	"Calibri",
}

// Clipboard is the subset of fyne.Clipboard the session uses.
type Clipboard interface {
	Content() string
	SetContent(content string)
}

type Options struct {
	HistoryLimit int
}

type Session struct {
	buf    *document.Buffer
	sticky int

	images    map[int]*document.Embed
	nextEmbed int

	log logger.Logger
}

func NewSession(opt Options, log logger.Logger) *Session {
	if log == nil {
		log = logger.Nop{}
	}
	return &Session{
		buf:    document.New("", document.Options{HistoryLimit: opt.HistoryLimit}),
		images: make(map[int]*document.Embed),
		log:    log,
	}
}

// Buffer exposes the document for rendering and cursor movement.
func (s *Session) Buffer() *document.Buffer { return s.buf }

// BaseFont is the font of text not covered by any style range.
func (s *Session) BaseFont() document.Font { return document.DefaultFont() }

// StickySize is the last size chosen with SetFontSize, 0 if none.
func (s *Session) StickySize() int { return s.sticky }

func (s *Session) Text() string { return s.buf.Text() }

// New clears the document unconditionally.
func (s *Session) New() {
	s.replace("")
	s.log.Info(component, "document cleared", nil)
}

// Open replaces the document with the UTF-8 text read from r.
func (s *Session) Open(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	return s.Load(data)
}

// Load replaces the document with data. The document is unchanged on error.
func (s *Session) Load(data []byte) error {
	if !utf8.Valid(data) {
		return ErrInvalidEncoding
	}
	s.replace(string(data))
	s.log.Info(component, "document loaded", map[string]interface{}{
		"bytes": len(data),
	})
	return nil
}

func (s *Session) replace(text string) {
	s.buf.Reset(text)
	s.sticky = 0
	s.syncImages()
}

// Save writes the document text to w. Embedded images are not written.
func (s *Session) Save(w io.Writer) error {
	text := s.buf.Text()
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	s.log.Info(component, "document saved", map[string]interface{}{
		"bytes":  len(text),
		"images": len(s.images),
	})
	return nil
}

// syncImages makes the live image set match the embeds in the buffer and
// releases the ones no longer displayed.
func (s *Session) syncImages() {
	live := make(map[int]*document.Embed)
	for _, e := range s.buf.Embeds() {
		live[e.ID] = e
	}
	for id, e := range s.images {
		if _, ok := live[id]; !ok {
			s.log.Debug(component, "image released", map[string]interface{}{
				"id":   id,
				"name": e.Name,
			})
		}
	}
	s.images = live
}

// Images returns the decoded images currently displayed.
func (s *Session) Images() []*document.Embed {
	return s.buf.Embeds()
}

// Release drops every decoded image. Used at shutdown.
func (s *Session) Release() {
	if len(s.images) > 0 {
		s.log.Debug(component, "releasing images", map[string]interface{}{
			"count": len(s.images),
		})
	}
	s.replace("")
}

// InsertImage embeds pic at the end of the document followed by a newline.
func (s *Session) InsertImage(pic *imaging.Picture) *document.Embed {
	s.nextEmbed++
	e := &document.Embed{ID: s.nextEmbed, Name: pic.Name, Image: pic.Image}
	s.buf.InsertCells(s.buf.Len(), []document.Cell{{Embed: e}, {Rune: '\n'}})
	s.images[e.ID] = e
	s.log.Info(component, "image inserted", map[string]interface{}{
		"id":     e.ID,
		"name":   pic.Name,
		"source": fmt.Sprintf("%dx%d", pic.Source.X, pic.Source.Y),
	})
	return e
}

// DeleteImage removes the selection when its first cell is tagged as an
// image. It reports whether anything was removed.
func (s *Session) DeleteImage() (bool, error) {
	r, ok := s.buf.Selection()
	if !ok {
		return false, ErrNoSelection
	}
	if !slices.Contains(s.buf.TagsAt(r.Start), document.ImageTag) {
		return false, nil
	}
	s.buf.Delete(r)
	s.buf.ClearSelection()
	s.syncImages()
	return true, nil
}
