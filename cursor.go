// Copyright © 2020 The Konbini Authors under an MIT-style license.

package konbini

import (
	"fmt"

	"github.com/eaburns/konbini/loc"
)

// A Pos is an index into a Source.
// For text sources it is a rune index.
type Pos int

// A Source is an immutable, finite sequence of elements to parse.
type Source[T any] struct {
	elems []T
	file  *loc.File
	// text is the string of a text Source.
	text string
}

// NewSource returns a Source of tokens.
// The slice must not be modified while the Source is in use.
func NewSource[T any](elems []T) *Source[T] {
	return &Source[T]{elems: elems}
}

// Text returns a Source of the runes of a string.
// Diagnostics on a text Source are rendered with line and column.
func Text(text string) *Source[rune] {
	return TextFile("", text)
}

// TextFile is like Text, but diagnostics are reported
// relative to the given file path.
func TextFile(path, text string) *Source[rune] {
	rs := []rune(text)
	return &Source[rune]{elems: rs, file: loc.NewFile(path, rs), text: text}
}

// Len returns the number of elements in the Source.
func (s *Source[T]) Len() int { return len(s.elems) }

// At returns the element at p.
func (s *Source[T]) At(p Pos) T { return s.elems[p] }

// IsText reports whether the Source was created by Text or TextFile.
func (s *Source[T]) IsText() bool { return s.file != nil }

// Loc returns the line and column of a position in a text Source.
// For token sources, Line is 1 and Col is the 1-based token index.
func (s *Source[T]) Loc(p Pos) loc.Loc {
	if s.file == nil {
		return loc.Loc{Line: 1, Col: int(p) + 1}
	}
	return s.file.Loc(int(p))
}

// offset returns the byte offset of p in the text of a text Source,
// or p itself for a token Source.
// Positions outside the Source are clamped to it.
func (s *Source[T]) offset(p Pos) int {
	if p < 0 {
		p = 0
	}
	if int(p) > len(s.elems) {
		p = Pos(len(s.elems))
	}
	if s.file == nil {
		return int(p)
	}
	n := 0
	for i := range s.text {
		if n == int(p) {
			return i
		}
		n++
	}
	return len(s.text)
}

// Cursor returns a Cursor at the start of the Source.
func (s *Source[T]) Cursor() Cursor[T] { return Cursor[T]{src: s} }

// A Cursor is a position within a Source.
// Cursors are values; advancing returns a new Cursor.
type Cursor[T any] struct {
	src *Source[T]
	pos Pos
}

// Source returns the Cursor's Source.
func (c Cursor[T]) Source() *Source[T] { return c.src }

// Pos returns the Cursor's position.
func (c Cursor[T]) Pos() Pos { return c.pos }

// AtEnd reports whether there are no elements left.
func (c Cursor[T]) AtEnd() bool { return int(c.pos) >= len(c.src.elems) }

// Peek returns the element at the Cursor without advancing.
// The bool is false at the end of input.
func (c Cursor[T]) Peek() (T, bool) {
	if c.AtEnd() {
		var zero T
		return zero, false
	}
	return c.src.elems[c.pos], true
}

// Rest returns the elements that remain.
// The returned slice must not be modified.
func (c Cursor[T]) Rest() []T { return c.src.elems[c.pos:] }

// Advance returns a new Cursor n elements further along.
func (c Cursor[T]) Advance(n int) Cursor[T] {
	if n < 0 {
		panic(fmt.Sprintf("konbini: cannot advance by %d", n))
	}
	if int(c.pos)+n > len(c.src.elems) {
		panic(fmt.Sprintf("konbini: advance by %d past end at %d", n, c.pos))
	}
	return Cursor[T]{src: c.src, pos: c.pos + Pos(n)}
}
