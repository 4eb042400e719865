package source

import "testing"

func TestSpanCover(t *testing.T) {
	a := Span{Start: 4, End: 8}
	b := Span{Start: 2, End: 6}
	c := a.Cover(b)
	if c.Start != 2 || c.End != 8 {
		t.Fatalf("cover produced %v", c)
	}
}

func TestBufferText(t *testing.T) {
	buf := NewBuffer([]byte("foo.class"))
	text, ok := buf.Text(Span{Start: 0, End: 9})
	if !ok || text != "foo.class" {
		t.Fatalf("expected full text, got %q ok=%v", text, ok)
	}
	if _, ok := buf.Text(Span{Start: 4, End: 20}); ok {
		t.Fatalf("out-of-range span must not resolve")
	}
}

func TestBufferAbsent(t *testing.T) {
	var buf *Buffer
	if _, ok := buf.Text(Span{Start: 0, End: 1}); ok {
		t.Fatalf("nil buffer must report text unavailable")
	}
}

func TestNormalizeName(t *testing.T) {
	// "é" as combining sequence vs precomposed
	composed := "café"
	decomposed := "café"
	if NormalizeName(decomposed) != composed {
		t.Fatalf("names must normalize to NFC")
	}
	if NormalizeName(composed) != composed {
		t.Fatalf("already-normal names must pass through")
	}
}
