// Copyright © 2020 The Konbini Authors under an MIT-style license.

package konbini

import (
	"fmt"
	"strings"
)

// A Kind classifies a Diagnostic.
type Kind int

const (
	// PredicateFailed is an element rejected by Satisfy.
	PredicateFailed Kind = iota
	// LiteralMismatch is a Literal differing from the input.
	LiteralMismatch
	// UnexpectedEndOfInput is input ending where more was needed.
	UnexpectedEndOfInput
	// ExpectedEndOfInput is EndOfInput finding more input.
	ExpectedEndOfInput
	// TrailingInput is input left over after a complete parse.
	TrailingInput
	// UserDefined is an explicit Fail.
	UserDefined
)

func (k Kind) String() string {
	switch k {
	case PredicateFailed:
		return "PredicateFailed"
	case LiteralMismatch:
		return "LiteralMismatch"
	case UnexpectedEndOfInput:
		return "UnexpectedEndOfInput"
	case ExpectedEndOfInput:
		return "ExpectedEndOfInput"
	case TrailingInput:
		return "TrailingInput"
	case UserDefined:
		return "UserDefined"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// A Diagnostic describes a parse failure.
type Diagnostic struct {
	Kind    Kind
	Message string
	Pos     Pos
	// Expected lists what would have been accepted at Pos,
	// in the order the alternatives were tried.
	Expected []string
}

// String returns the message followed by the expectations, if any.
func (d *Diagnostic) String() string {
	if len(d.Expected) == 0 {
		return d.Message
	}
	return d.Message + ", expected " + orList(d.Expected)
}

func orList(ss []string) string {
	switch len(ss) {
	case 1:
		return ss[0]
	case 2:
		return ss[0] + " or " + ss[1]
	default:
		return strings.Join(ss[:len(ss)-1], ", ") + ", or " + ss[len(ss)-1]
	}
}

// Merge returns the more informative of two diagnostics.
// The one at the greater position wins.
// On a tie, the first is kept with the expectations of both.
// Either may be nil.
func Merge(a, b *Diagnostic) *Diagnostic {
	switch {
	case a == nil:
		return b
	case b == nil || a == b:
		return a
	case b.Pos > a.Pos:
		return b
	case a.Pos > b.Pos:
		return a
	}
	var extra []string
	for _, e := range b.Expected {
		if !contains(a.Expected, e) && !contains(extra, e) {
			extra = append(extra, e)
		}
	}
	if len(extra) == 0 {
		return a
	}
	m := *a
	m.Expected = append(append([]string(nil), a.Expected...), extra...)
	return &m
}

func contains(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}

// Render returns a human-readable description of d.
//
// For text sources, this is the location, the message,
// and the offending line with a caret under the column.
// For token sources, it names the offending token's index
// and representation.
func (s *Source[T]) Render(d *Diagnostic) string {
	var b strings.Builder
	if s.file == nil {
		if d.Pos >= 0 && int(d.Pos) < len(s.elems) {
			fmt.Fprintf(&b, "token %d (%v): %s", d.Pos, s.elems[d.Pos], d)
		} else {
			fmt.Fprintf(&b, "token %d (end of input): %s", d.Pos, d)
		}
		return b.String()
	}
	l := s.file.Loc(int(d.Pos))
	fmt.Fprintf(&b, "%s: %s", l, d)
	start, end := s.file.Line(l.Line)
	line := any(s.elems).([]rune)[start:end]
	b.WriteString("\n\t")
	b.WriteString(string(line))
	b.WriteString("\n\t")
	for _, r := range line[:l.Col-1] {
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteRune(' ')
		}
	}
	b.WriteRune('^')
	return b.String()
}

// describe returns how an element is named in messages.
func describe[T any](x T) string {
	if r, ok := any(x).(rune); ok {
		return fmt.Sprintf("%q", r)
	}
	return fmt.Sprintf("%v", x)
}
