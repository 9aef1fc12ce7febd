// Copyright © 2020 The Konbini Authors under an MIT-style license.

// Package loc has routines for tracking text locations.
package loc

import "fmt"

// A Loc describes a text location.
// Line and Col are 1-based; Col counts runes.
type Loc struct {
	Path string
	Line int
	Col  int
}

func (l Loc) String() string {
	if l.Path == "" {
		return fmt.Sprintf("%d.%d", l.Line, l.Col)
	}
	return fmt.Sprintf("%s:%d.%d", l.Path, l.Line, l.Col)
}

// A File tracks line breaks within a single text.
// Offsets are rune offsets.
type File struct {
	Path  string
	Len   int
	Lines []int
}

// NewFile returns a new File given its path and text.
func NewFile(path string, text []rune) *File {
	var lines []int
	for i, r := range text {
		if r == '\n' {
			lines = append(lines, i)
		}
	}
	return &File{Path: path, Len: len(text), Lines: lines}
}

// Loc returns the Loc of a rune offset.
// Offsets beyond the end of the text are clamped to the end.
func (f *File) Loc(p int) Loc {
	if p < 0 {
		p = 0
	}
	if p > f.Len {
		p = f.Len
	}
	line, col1 := 1, -1
	for _, nl := range f.Lines {
		if nl >= p {
			break
		}
		col1 = nl
		line++
	}
	return Loc{Path: f.Path, Line: line, Col: p - col1}
}

// Line returns the rune offsets [start, end) of the 1-based line n,
// excluding its terminating newline.
func (f *File) Line(n int) (int, int) {
	if n < 1 || n > len(f.Lines)+1 {
		return f.Len, f.Len
	}
	start := 0
	if n > 1 {
		start = f.Lines[n-2] + 1
	}
	end := f.Len
	if n <= len(f.Lines) {
		end = f.Lines[n-1]
	}
	return start, end
}
