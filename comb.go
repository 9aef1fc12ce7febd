// Copyright © 2020 The Konbini Authors under an MIT-style license.

package konbini

// Map returns a Parser that applies f to the value of p.
// Failures of p are returned unchanged.
func Map[T, V, W any](p Parser[T, V], f func(V) W) Parser[T, W] {
	return func(c Cursor[T]) Result[T, W] {
		r := p(c)
		if !r.ok {
			return retype[W](r)
		}
		return Result[T, W]{Value: f(r.Value), Next: r.Next, Diag: r.Diag, ok: true}
	}
}

// A Pair holds the values of two sequenced parsers.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Bind returns a Parser that runs p,
// and then the Parser that f returns for p's value.
// If either fails, so does Bind; it never backtracks over
// input consumed by p.
func Bind[T, V, W any](p Parser[T, V], f func(V) Parser[T, W]) Parser[T, W] {
	return func(c Cursor[T]) Result[T, W] {
		r1 := p(c)
		if !r1.ok {
			return retype[W](r1)
		}
		r2 := f(r1.Value)(r1.Next)
		if !r2.ok && r1.Next.pos > c.pos {
			r2.Consumed = true
		}
		return r2.hint(r1.Diag)
	}
}

func seq2[T, A, B, V any](p1 Parser[T, A], p2 Parser[T, B], f func(A, B) V) Parser[T, V] {
	return func(c Cursor[T]) Result[T, V] {
		r1 := p1(c)
		if !r1.ok {
			return retype[V](r1)
		}
		r2 := p2(r1.Next)
		if !r2.ok {
			return Failure[T, V](Merge(r1.Diag, r2.Diag), r2.Consumed || r1.Next.pos > c.pos)
		}
		return Success(f(r1.Value, r2.Value), r2.Next).hint(r2.Diag).hint(r1.Diag)
	}
}

// AndThen returns a Parser that runs p1 and then p2,
// returning both values.
func AndThen[T, A, B any](p1 Parser[T, A], p2 Parser[T, B]) Parser[T, Pair[A, B]] {
	return seq2(p1, p2, func(a A, b B) Pair[A, B] { return Pair[A, B]{a, b} })
}

// Left is like AndThen, but returns only the value of p1.
func Left[T, A, B any](p1 Parser[T, A], p2 Parser[T, B]) Parser[T, A] {
	return seq2(p1, p2, func(a A, _ B) A { return a })
}

// Right is like AndThen, but returns only the value of p2.
func Right[T, A, B any](p1 Parser[T, A], p2 Parser[T, B]) Parser[T, B] {
	return seq2(p1, p2, func(_ A, b B) B { return b })
}

// Between returns a Parser for p surrounded by open and close.
func Between[T, O, V, C any](open Parser[T, O], p Parser[T, V], close Parser[T, C]) Parser[T, V] {
	return Right(open, Left(p, close))
}

// Seq returns a Parser that runs each of ps in turn.
func Seq[T, V any](ps ...Parser[T, V]) Parser[T, []V] {
	return func(c Cursor[T]) Result[T, []V] {
		vs := make([]V, 0, len(ps))
		var hint *Diagnostic
		cur := c
		for _, p := range ps {
			r := p(cur)
			if !r.ok {
				return Failure[T, []V](Merge(hint, r.Diag), r.Consumed || cur.pos > c.pos)
			}
			vs = append(vs, r.Value)
			hint = Merge(hint, r.Diag)
			cur = r.Next
		}
		return Success(vs, cur).hint(hint)
	}
}

// Or returns a Parser that tries p1, and if p1 fails
// without consuming input, tries p2 on the same input.
//
// If p1 fails after consuming input, p2 is not tried;
// wrap p1 in Attempt to try p2 regardless.
// When both fail, the failure is the one at the greater position,
// with their expectations combined on a tie.
func Or[T, V any](p1, p2 Parser[T, V]) Parser[T, V] {
	return func(c Cursor[T]) Result[T, V] {
		r1 := p1(c)
		if r1.ok || r1.Consumed {
			return r1
		}
		r2 := p2(c)
		if r2.ok {
			return r2.hint(r1.Diag)
		}
		return Failure[T, V](Merge(r1.Diag, r2.Diag), r2.Consumed)
	}
}

// Choice is Or generalized to any number of alternatives.
func Choice[T, V any](ps ...Parser[T, V]) Parser[T, V] {
	if len(ps) == 0 {
		return Fail[T, V]("no alternatives")
	}
	p := ps[len(ps)-1]
	for i := len(ps) - 2; i >= 0; i-- {
		p = Or(ps[i], p)
	}
	return p
}

// Attempt returns a Parser that runs p, but if p fails,
// reports the failure as if no input had been consumed.
// This lets Or and Many try alternatives after a partial match.
func Attempt[T, V any](p Parser[T, V]) Parser[T, V] {
	return func(c Cursor[T]) Result[T, V] {
		r := p(c)
		r.Consumed = false
		return r
	}
}

// Many returns a Parser that runs p zero or more times,
// until it fails without consuming input.
// If p fails after consuming input, so does Many.
//
// Many panics if p succeeds without consuming input,
// since that would repeat forever.
func Many[T, V any](p Parser[T, V]) Parser[T, []V] {
	return func(c Cursor[T]) Result[T, []V] {
		vs := []V{}
		var hint *Diagnostic
		cur := c
		for {
			r := p(cur)
			if !r.ok {
				if r.Consumed {
					return Failure[T, []V](Merge(hint, r.Diag), true)
				}
				return Success(vs, cur).hint(r.Diag).hint(hint)
			}
			if r.Next.pos == cur.pos {
				panic("konbini: Many applied to a parser that accepts empty input")
			}
			vs = append(vs, r.Value)
			hint = Merge(hint, r.Diag)
			cur = r.Next
		}
	}
}

// Some is like Many, but p must succeed at least once.
func Some[T, V any](p Parser[T, V]) Parser[T, []V] {
	return seq2(p, Many(p), func(v V, vs []V) []V {
		return append([]V{v}, vs...)
	})
}

// An Option is a value that may be absent.
type Option[V any] struct {
	Value V
	Valid bool
}

// Optional returns a Parser that runs p and never fails
// unless p fails after consuming input.
func Optional[T, V any](p Parser[T, V]) Parser[T, Option[V]] {
	return Or(
		Map(p, func(v V) Option[V] { return Option[V]{Value: v, Valid: true} }),
		Pure[T](Option[V]{}),
	)
}

// OptionalOr is like Optional, but returns def if p fails.
func OptionalOr[T, V any](p Parser[T, V], def V) Parser[T, V] {
	return Or(p, Pure[T](def))
}

// SepBy returns a Parser for zero or more p separated by sep.
// A trailing separator is not consumed.
func SepBy[T, V, S any](p Parser[T, V], sep Parser[T, S]) Parser[T, []V] {
	return Or(SepBy1(p, sep), Pure[T]([]V{}))
}

// SepBy1 is like SepBy, but requires at least one p.
func SepBy1[T, V, S any](p Parser[T, V], sep Parser[T, S]) Parser[T, []V] {
	return seq2(p, Many(Attempt(Right(sep, p))), func(v V, vs []V) []V {
		return append([]V{v}, vs...)
	})
}

// Count returns a Parser that runs p exactly n times.
// A negative n is the same as 0.
func Count[T, V any](n int, p Parser[T, V]) Parser[T, []V] {
	if n < 0 {
		n = 0
	}
	ps := make([]Parser[T, V], n)
	for i := range ps {
		ps[i] = p
	}
	return Seq(ps...)
}

// Fold returns a Parser that runs p zero or more times,
// accumulating its values with f, starting from init().
func Fold[T, V, A any](p Parser[T, V], init func() A, f func(A, V) A) Parser[T, A] {
	return Map(Many(p), func(vs []V) A {
		acc := init()
		for _, v := range vs {
			acc = f(acc, v)
		}
		return acc
	})
}

// ChainLeft returns a Parser for one or more p separated by op,
// combining the values left-associatively with the functions
// returned by op.
func ChainLeft[T, V any](p Parser[T, V], op Parser[T, func(V, V) V]) Parser[T, V] {
	return seq2(p, Many(AndThen(op, p)), func(x V, rest []Pair[func(V, V) V, V]) V {
		for _, r := range rest {
			x = r.First(x, r.Second)
		}
		return x
	})
}

// ChainRight is like ChainLeft, but combines right-associatively.
func ChainRight[T, V any](p Parser[T, V], op Parser[T, func(V, V) V]) Parser[T, V] {
	return seq2(p, Many(AndThen(op, p)), func(x V, rest []Pair[func(V, V) V, V]) V {
		if len(rest) == 0 {
			return x
		}
		acc := rest[len(rest)-1].Second
		for i := len(rest) - 1; i >= 0; i-- {
			lhs := x
			if i > 0 {
				lhs = rest[i-1].Second
			}
			acc = rest[i].First(lhs, acc)
		}
		return acc
	})
}

// Label returns a Parser that reports name as the expectation
// when p fails without consuming input.
func Label[T, V any](p Parser[T, V], name string) Parser[T, V] {
	return func(c Cursor[T]) Result[T, V] {
		r := p(c)
		if r.Diag == nil || r.Diag.Pos != c.pos || r.Consumed {
			return r
		}
		d := *r.Diag
		d.Expected = []string{name}
		r.Diag = &d
		return r
	}
}
