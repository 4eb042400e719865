package source

import (
	"fortio.org/safecast"
)

// Buffer holds the original text of a compilation unit. Resolution consults it
// for one narrow purpose: deciding whether a class reference is spelled with a
// literal ".class" suffix. The buffer may be absent (the unit moved or was
// never read); callers must treat a failed read as "text unavailable" and keep
// going.
type Buffer struct {
	content []byte
}

// NewBuffer wraps text in a read-only buffer.
func NewBuffer(text []byte) *Buffer {
	return &Buffer{content: text}
}

// Len reports the buffer size in bytes.
func (b *Buffer) Len() uint32 {
	if b == nil {
		return 0
	}
	n, err := safecast.Conv[uint32](len(b.content))
	if err != nil {
		panic(err)
	}
	return n
}

// Text returns the text covered by span. The second result is false when the
// buffer is absent or the span falls outside it.
func (b *Buffer) Text(span Span) (string, bool) {
	if b == nil || b.content == nil {
		return "", false
	}
	if span.Start > span.End || span.End > b.Len() {
		return "", false
	}
	return string(b.content[span.Start:span.End]), true
}
