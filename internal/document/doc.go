// Package document holds the editor's in-memory document: an ordered run of
// cells (runes or embedded objects), the cursor and selection, style ranges
// that follow edits, buffer-wide paragraph settings, and snapshot history.
//
// Positions are cell offsets in [0, Len()]. The package has no toolkit
// dependency; rendering lives in internal/gui.
package document
