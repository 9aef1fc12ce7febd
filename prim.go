// Copyright © 2020 The Konbini Authors under an MIT-style license.

package konbini

import "fmt"

func endFail(p Pos, want ...string) *Diagnostic {
	return &Diagnostic{
		Kind:     UnexpectedEndOfInput,
		Message:  "unexpected end of input",
		Pos:      p,
		Expected: want,
	}
}

// Satisfy returns a Parser that consumes one element for which pred is true.
// The name describes the accepted elements in diagnostics.
func Satisfy[T any](name string, pred func(T) bool) Parser[T, T] {
	return func(c Cursor[T]) Result[T, T] {
		x, ok := c.Peek()
		if !ok {
			return Failure[T, T](endFail(c.pos, name), false)
		}
		if !pred(x) {
			return Failure[T, T](&Diagnostic{
				Kind:     PredicateFailed,
				Message:  "unexpected " + describe(x),
				Pos:      c.pos,
				Expected: []string{name},
			}, false)
		}
		return Success(x, c.Advance(1))
	}
}

// Any returns a Parser that consumes any one element.
func Any[T any]() Parser[T, T] {
	return Satisfy("any element", func(T) bool { return true })
}

// Token returns a Parser that consumes one element equal to want.
func Token[T comparable](want T) Parser[T, T] {
	return Satisfy(describe(want), func(x T) bool { return x == want })
}

// Literal returns a Parser that consumes a sequence equal to seq.
//
// A failing Literal consumes nothing, but its Diagnostic
// is at the first element that did not match.
func Literal[T comparable](seq []T) Parser[T, []T] {
	return literal(seq, fmt.Sprintf("%v", seq))
}

func literal[T comparable](seq []T, name string) Parser[T, []T] {
	return func(c Cursor[T]) Result[T, []T] {
		rest := c.Rest()
		for i, want := range seq {
			p := c.pos + Pos(i)
			if i >= len(rest) {
				return Failure[T, []T](endFail(p, name), false)
			}
			if rest[i] != want {
				return Failure[T, []T](&Diagnostic{
					Kind:     LiteralMismatch,
					Message:  "unexpected " + describe(rest[i]),
					Pos:      p,
					Expected: []string{name},
				}, false)
			}
		}
		return Success(rest[:len(seq):len(seq)], c.Advance(len(seq)))
	}
}

// EndOfInput returns a Parser that succeeds, consuming nothing,
// only at the end of input.
func EndOfInput[T any]() Parser[T, struct{}] {
	return func(c Cursor[T]) Result[T, struct{}] {
		x, ok := c.Peek()
		if ok {
			return Failure[T, struct{}](&Diagnostic{
				Kind:     ExpectedEndOfInput,
				Message:  "unexpected " + describe(x),
				Pos:      c.pos,
				Expected: []string{"end of input"},
			}, false)
		}
		return Success(struct{}{}, c)
	}
}

// Pure returns a Parser that succeeds with v, consuming nothing.
func Pure[T, V any](v V) Parser[T, V] {
	return func(c Cursor[T]) Result[T, V] { return Success(v, c) }
}

// Fail returns a Parser that fails with msg, consuming nothing.
func Fail[T, V any](msg string) Parser[T, V] {
	return func(c Cursor[T]) Result[T, V] {
		return Failure[T, V](&Diagnostic{
			Kind:    UserDefined,
			Message: msg,
			Pos:     c.pos,
		}, false)
	}
}

// Position returns a Parser that succeeds with the Cursor's position,
// consuming nothing.
func Position[T any]() Parser[T, Pos] {
	return func(c Cursor[T]) Result[T, Pos] { return Success(c.pos, c) }
}

// LookAhead returns a Parser that runs p
// but does not consume input if p succeeds.
// A failure of p is returned unchanged.
func LookAhead[T, V any](p Parser[T, V]) Parser[T, V] {
	return func(c Cursor[T]) Result[T, V] {
		r := p(c)
		if !r.ok {
			return r
		}
		return Success(r.Value, c).hint(r.Diag)
	}
}

// NotFollowedBy returns a Parser that succeeds, consuming nothing,
// only if p fails at the Cursor.
func NotFollowedBy[T, V any](p Parser[T, V]) Parser[T, struct{}] {
	return func(c Cursor[T]) Result[T, struct{}] {
		r := p(c)
		if r.ok {
			msg := "unexpected end of input"
			if x, ok := c.Peek(); ok {
				msg = "unexpected " + describe(x)
			}
			return Failure[T, struct{}](&Diagnostic{
				Kind:    UserDefined,
				Message: msg,
				Pos:     c.pos,
			}, false)
		}
		return Success(struct{}{}, c)
	}
}

// Take returns a Parser that consumes exactly n elements.
// A negative n is the same as 0.
func Take[T any](n int) Parser[T, []T] {
	if n < 0 {
		n = 0
	}
	return func(c Cursor[T]) Result[T, []T] {
		rest := c.Rest()
		if len(rest) < n {
			return Failure[T, []T](endFail(c.pos+Pos(len(rest)), fmt.Sprintf("%d elements", n)), false)
		}
		return Success(rest[:n:n], c.Advance(n))
	}
}

// TakeWhile returns a Parser that consumes the longest run of elements,
// possibly empty, for which pred is true.
// The name is reported as an expectation where the run stops.
func TakeWhile[T any](name string, pred func(T) bool) Parser[T, []T] {
	return func(c Cursor[T]) Result[T, []T] {
		rest := c.Rest()
		n := 0
		for n < len(rest) && pred(rest[n]) {
			n++
		}
		r := Success(rest[:n:n], c.Advance(n))
		p := c.pos + Pos(n)
		if n == len(rest) {
			return r.hint(endFail(p, name))
		}
		return r.hint(&Diagnostic{
			Kind:     PredicateFailed,
			Message:  "unexpected " + describe(rest[n]),
			Pos:      p,
			Expected: []string{name},
		})
	}
}
