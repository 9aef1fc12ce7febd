package konbini

import "sync"

// Lazy returns a Parser that calls f to construct its Parser
// the first time it is used, and reuses that Parser thereafter.
// This allows grammar rules to refer to one another recursively.
//
// f must not run the returned Parser itself.
func Lazy[T, V any](f func() Parser[T, V]) Parser[T, V] {
	var once sync.Once
	var p Parser[T, V]
	return func(c Cursor[T]) Result[T, V] {
		once.Do(func() { p = f() })
		return p(c)
	}
}

// Recursive returns a Parser defined in terms of itself.
// The function is called once, with a Parser that refers
// to the Parser that the function returns.
func Recursive[T, V any](f func(self Parser[T, V]) Parser[T, V]) Parser[T, V] {
	var self Parser[T, V]
	self = Lazy(func() Parser[T, V] { return f(self) })
	return self
}
