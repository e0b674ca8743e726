package rustty

import (
	"errors"
	"testing"
)

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r        rune
		expected int
	}{
		{'A', 1},
		{'1', 1},
		{' ', 1},
		{'中', 2},
		{'한', 2},
		{'Ａ', 2}, // Fullwidth A
		{0, 0},
	}

	for _, tt := range tests {
		got := runeWidth(tt.r)
		if got != tt.expected {
			t.Errorf("runeWidth(%q) = %d, want %d", tt.r, got, tt.expected)
		}
	}
}

func TestStringWidth(t *testing.T) {
	tests := []struct {
		s        string
		expected int
	}{
		{"Hello", 5},
		{"中文", 4},
		{"Hello中文", 9},
		{"", 0},
	}

	for _, tt := range tests {
		got := StringWidth(tt.s)
		if got != tt.expected {
			t.Errorf("StringWidth(%q) = %d, want %d", tt.s, got, tt.expected)
		}
	}
}

func TestPutString(t *testing.T) {
	b := NewBuffer(10, 2)
	fg, bg := StyleWithColor(Red), StyleWithColor(Blue)

	n, err := b.PutString(2, 1, "Hi!", fg, bg)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("expected 3 cells written, got %d", n)
	}
	if got := b.LineContent(1); got != "  Hi!" {
		t.Errorf("expected '  Hi!', got '%s'", got)
	}
	if got := mustCell(t, b, 3, 1); got != NewCell('i', fg, bg) {
		t.Errorf("unexpected cell %+v", got)
	}
	if got := b.LineContent(0); got != "" {
		t.Errorf("expected row 0 untouched, got '%s'", got)
	}
}

func TestPutStringClipsAtRightEdge(t *testing.T) {
	b := NewBuffer(4, 1)

	n, err := b.PutString(1, 0, "abcdef", DefaultStyle(), DefaultStyle())
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("expected 3 cells written, got %d", n)
	}
	if got := b.LineContent(0); got != " abc" {
		t.Errorf("expected ' abc', got '%s'", got)
	}
}

func TestPutStringSkipsZeroWidth(t *testing.T) {
	b := NewBuffer(5, 1)

	n, err := b.PutString(0, 0, "a\x00b", DefaultStyle(), DefaultStyle())
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("expected 2 cells written, got %d", n)
	}
	if got := b.LineContent(0); got != "ab" {
		t.Errorf("expected 'ab', got '%s'", got)
	}
}

func TestPutStringWideRuneTakesOneCell(t *testing.T) {
	b := NewBuffer(3, 1)

	if _, err := b.PutString(0, 0, "中x", DefaultStyle(), DefaultStyle()); err != nil {
		t.Fatal(err)
	}
	if got := mustCell(t, b, 1, 0).Char(); got != 'x' {
		t.Errorf("expected 'x' in column 1, got '%c'", got)
	}
}

func TestPutStringOutOfBounds(t *testing.T) {
	b := NewBuffer(3, 2)

	if _, err := b.PutString(3, 0, "a", DefaultStyle(), DefaultStyle()); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, err := b.PutString(0, 2, "a", DefaultStyle(), DefaultStyle()); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
}
