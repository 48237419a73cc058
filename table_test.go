package main

import "testing"

func TestGlyphTableShape(t *testing.T) {
	if len(glyphTable) != gridCols*gridRows {
		t.Fatalf("expected %d table entries, got %d", gridCols*gridRows, len(glyphTable))
	}
	for i := 0; i < 95; i++ {
		if glyphTable[i] != byte(' '+i) {
			t.Errorf("entry %d: expected %q, got %q", i, byte(' '+i), glyphTable[i])
		}
	}
	if glyphTable[95] != '?' {
		t.Errorf("expected '?' placeholder at the end, got %q", glyphTable[95])
	}
}

func TestGlyphCell(t *testing.T) {
	cases := []struct{ i, col, row int }{
		{0, 0, 0},
		{15, 15, 0},
		{16, 0, 1},
		{33, 1, 2},
		{95, 15, 5},
	}
	for _, c := range cases {
		col, row := glyphCell(c.i)
		if col != c.col || row != c.row {
			t.Errorf("glyphCell(%d): expected (%d,%d), got (%d,%d)", c.i, c.col, c.row, col, row)
		}
	}
}

func TestGlyphIndex(t *testing.T) {
	if got := glyphIndex(' '); got != 0 {
		t.Errorf("expected ' ' at entry 0, got %d", got)
	}
	if got := glyphIndex('A'); got != 33 {
		t.Errorf("expected 'A' at entry 33, got %d", got)
	}
	if got := glyphIndex('~'); got != 94 {
		t.Errorf("expected '~' at entry 94, got %d", got)
	}
	// '?' resolves to its printable slot, not the placeholder.
	if got := glyphIndex('?'); got != 31 {
		t.Errorf("expected '?' at entry 31, got %d", got)
	}
	if got := glyphIndex(0x07); got != -1 {
		t.Errorf("expected -1 for a control character, got %d", got)
	}
}
