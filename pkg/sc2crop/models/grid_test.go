package models

import "testing"

func TestGridCell(t *testing.T) {
	g := Grid{Row("abc"), Row("d"), Row("")}

	tests := []struct {
		r, c     int
		expected rune
		ok       bool
	}{
		{0, 0, 'a', true},
		{0, 2, 'c', true},
		{1, 0, 'd', true},
		{1, 1, 0, false},
		{2, 0, 0, false},
		{3, 0, 0, false},
		{-1, 0, 0, false},
		{0, -1, 0, false},
	}

	for _, tt := range tests {
		symbol, ok := g.Cell(tt.r, tt.c)
		if symbol != tt.expected || ok != tt.ok {
			t.Errorf("Cell(%d, %d) = (%q, %v), expected (%q, %v)",
				tt.r, tt.c, symbol, ok, tt.expected, tt.ok)
		}
	}

	if g.Height() != 3 {
		t.Errorf("Height() = %d, expected 3", g.Height())
	}
	if g.MaxWidth() != 3 {
		t.Errorf("MaxWidth() = %d, expected 3", g.MaxWidth())
	}
}

func TestBoundingBoxExpand(t *testing.T) {
	b := BoundingBox{R1: 1, C1: 1, R2: 1, C2: 1}

	got := b.Expand(Margin)
	expected := BoundingBox{R1: -2, C1: -2, R2: 4, C2: 4}
	if got != expected {
		t.Errorf("Expand(%d) = %+v, expected %+v", Margin, got, expected)
	}
	if got.Height() != 7 || got.Width() != 7 {
		t.Errorf("expected 7x7 area, got %dx%d", got.Height(), got.Width())
	}

	spread := BoundingBox{R1: 5, C1: 2, R2: 8, C2: 10}.Expand(Margin)
	if spread.Height() != 10 || spread.Width() != 15 {
		t.Errorf("expected 10x15 area, got %dx%d", spread.Height(), spread.Width())
	}
}
