package display

import (
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/wordwrap"
)

const DefaultWidth = 80

// Roster layout: names are padded to RosterColumnWidth cells and a line
// break is inserted after every RosterRowLength names.
const (
	RosterColumnWidth = 8
	RosterRowLength   = 4
)

// Wrap word-wraps text to DefaultWidth, preserving ANSI escape sequences.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}

// Pad left-aligns s in a cell of the given display width. Wide (East
// Asian) runes count as two cells.
func Pad(s string, width int) string {
	return padding.String(s, uint(width))
}
