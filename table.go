package main

import "strings"

// glyphTable is the character set baked into the atlas: the 95 printable
// ASCII characters in code point order, then a trailing '?' placeholder so
// the 16x6 grid comes out full.
const glyphTable = " !\"#$%&'()*+,-./0123456789:;<=>?" +
	"@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_" +
	"`abcdefghijklmnopqrstuvwxyz{|}~?"

// glyphCell returns the grid position of table entry i.
func glyphCell(i int) (col, row int) {
	return i % gridCols, i / gridCols
}

// glyphIndex finds the table entry for ch, or -1 if the character is not
// in the set. The placeholder at the end is never matched; '?' resolves to
// its printable slot.
func glyphIndex(ch byte) int {
	return strings.IndexByte(glyphTable, ch)
}
