// Copyright © 2020 The Konbini Authors under an MIT-style license.

/*
Package konbini is a lightweight parser combinator library.

Parsers are functions from a Cursor to a Result.
Small parsers such as Satisfy, Literal, and EndOfInput
are combined with Map, AndThen, Or, Many, SepBy, and the like
into parsers for whole grammars:

	digit := Map(Digit(), func(r rune) int { return int(r - '0') })
	list := SepBy(digit, Rune(','))
	ns, err := ParseString(list, "1,2,3")

Alternation is committed, as in PEG:
once an alternative consumes input,
Or does not try the next one if it fails.
Attempt lifts that restriction for a single parser.

Failures are values.
When alternatives fail, the failure furthest into the input is kept,
and Run reports it as a *ParseError
with the line, column, and text of the offending input.

Recursive grammars are defined with Lazy or Recursive:

	parens := Recursive(func(parens Parser[rune, int]) Parser[rune, int] {
		nested := Between(Rune('('), parens, Rune(')'))
		return Fold(nested, func() int { return 0 }, func(n, m int) int {
			return n + m + 1
		})
	})

Parsers hold no mutable state, so a grammar may be shared
by any number of concurrent calls to Run.
*/
package konbini
