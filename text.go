package konbini

import (
	"strconv"
	"strings"
	"unicode"
)

// Rune returns a Parser that consumes the rune r.
func Rune(r rune) Parser[rune, rune] {
	return Token(r)
}

// String returns a Parser that consumes the string s.
// Like Literal, it consumes nothing on failure.
func String(s string) Parser[rune, string] {
	return Map(literal([]rune(s), strconv.Quote(s)), func([]rune) string { return s })
}

// OneOf returns a Parser that consumes any one rune in chars.
func OneOf(chars string) Parser[rune, rune] {
	return Satisfy("one of "+strconv.Quote(chars), func(r rune) bool {
		return strings.ContainsRune(chars, r)
	})
}

// NoneOf returns a Parser that consumes any one rune not in chars.
func NoneOf(chars string) Parser[rune, rune] {
	return Satisfy("none of "+strconv.Quote(chars), func(r rune) bool {
		return !strings.ContainsRune(chars, r)
	})
}

// Digit returns a Parser that consumes a decimal digit.
func Digit() Parser[rune, rune] {
	return Satisfy("digit", func(r rune) bool { return '0' <= r && r <= '9' })
}

// Letter returns a Parser that consumes a Unicode letter.
func Letter() Parser[rune, rune] {
	return Satisfy("letter", unicode.IsLetter)
}

// Space returns a Parser that consumes a Unicode white space rune.
func Space() Parser[rune, rune] {
	return Satisfy("space", unicode.IsSpace)
}

// Spaces returns a Parser that consumes any amount of white space.
// White space is never reported as an expectation.
func Spaces() Parser[rune, struct{}] {
	return func(c Cursor[rune]) Result[rune, struct{}] {
		n := 0
		for _, r := range c.Rest() {
			if !unicode.IsSpace(r) {
				break
			}
			n++
		}
		return Success(struct{}{}, c.Advance(n))
	}
}

// Int returns a Parser that consumes an optionally signed decimal integer.
func Int() Parser[rune, int] {
	sign := OptionalOr(Rune('-'), '+')
	digits := Some(Digit())
	return Bind(sign, func(s rune) Parser[rune, int] {
		return Bind(digits, func(ds []rune) Parser[rune, int] {
			n, err := strconv.Atoi(string(ds))
			if err != nil {
				return Fail[rune, int](err.Error())
			}
			if s == '-' {
				n = -n
			}
			return Pure[rune](n)
		})
	})
}

// Lexeme returns a Parser that runs p and then skips trailing white space.
func Lexeme[V any](p Parser[rune, V]) Parser[rune, V] {
	return Left(p, Spaces())
}
