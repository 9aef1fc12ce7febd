package konbini

// A Parser parses a prefix of the input at a Cursor.
// Parsers hold no mutable state and may be shared freely.
type Parser[T, V any] func(Cursor[T]) Result[T, V]

// A Result is the outcome of a Parser:
// either a success with a value and the next Cursor,
// or a failure with a Diagnostic.
type Result[T, V any] struct {
	Value V
	Next  Cursor[T]

	// Diag is the reason for a failure.
	// On success, it is the furthest failure that the parser
	// recovered from, or nil; it is kept so that a later failure
	// can be reported against it.
	Diag *Diagnostic

	// Consumed reports whether a failing parser
	// consumed input before it failed.
	Consumed bool

	ok bool
}

// Success returns a successful Result.
func Success[T, V any](v V, next Cursor[T]) Result[T, V] {
	return Result[T, V]{Value: v, Next: next, ok: true}
}

// Failure returns a failed Result.
func Failure[T, V any](d *Diagnostic, consumed bool) Result[T, V] {
	return Result[T, V]{Diag: d, Consumed: consumed}
}

// OK reports whether the Result is a success.
func (r Result[T, V]) OK() bool { return r.ok }

// retype returns a failed Result with a different value type.
func retype[W, T, V any](r Result[T, V]) Result[T, W] {
	return Result[T, W]{Diag: r.Diag, Consumed: r.Consumed}
}

// hint returns r with an earlier diagnostic d merged into its Diag.
// A success drops hints behind its Next Cursor;
// no later failure can be further back than that.
func (r Result[T, V]) hint(d *Diagnostic) Result[T, V] {
	if d == nil || r.ok && d.Pos < r.Next.pos {
		return r
	}
	r.Diag = Merge(d, r.Diag)
	return r
}
