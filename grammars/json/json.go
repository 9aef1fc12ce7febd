// Copyright © 2020 The Konbini Authors under an MIT-style license.

// Package json is a JSON grammar built with konbini.
//
// Values are represented as with encoding/json's interface{} decoding:
// nil, bool, float64, string, []interface{}, and map[string]interface{}.
package json

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/eaburns/konbini"
)

type parser = konbini.Parser[rune, interface{}]

// Value parses a JSON value and any white space that follows it.
var Value = konbini.Recursive(func(value parser) parser {
	return konbini.Trace("value", konbini.Lexeme(konbini.Choice(
		konbini.Label(null, "null"),
		konbini.Label(boolean, "boolean"),
		konbini.Label(number, "number"),
		konbini.Label(toAny(str), "string"),
		konbini.Label(array(value), "array"),
		konbini.Label(object(value), "object"),
	)))
})

var document = konbini.Right(konbini.Spaces(), Value)

// Parse parses a JSON document.
// The error, if any, is a *konbini.ParseError.
func Parse(text string, opts ...konbini.RunOption) (interface{}, error) {
	return ParseFile("", text, opts...)
}

// ParseFile is like Parse, but errors are reported
// relative to the given file path.
func ParseFile(path, text string, opts ...konbini.RunOption) (interface{}, error) {
	return konbini.Run(document, konbini.TextFile(path, text), append([]konbini.RunOption{konbini.Name("json")}, opts...)...)
}

func toAny[V any](p konbini.Parser[rune, V]) parser {
	return konbini.Map(p, func(v V) interface{} { return v })
}

func constant(lit string, v interface{}) parser {
	return konbini.Map(konbini.String(lit), func(string) interface{} { return v })
}

var null = constant("null", nil)

var boolean = konbini.Or(constant("true", true), constant("false", false))

func join(ss []string) string { return strings.Join(ss, "") }

func runes(rs []rune) string { return string(rs) }

var (
	digits   = konbini.Map(konbini.Some(konbini.Digit()), runes)
	nonzero  = konbini.Map(konbini.AndThen(konbini.OneOf("123456789"), konbini.Many(konbini.Digit())), func(p konbini.Pair[rune, []rune]) string { return string(p.First) + string(p.Second) })
	intPart  = konbini.Or(konbini.String("0"), nonzero)
	fraction = konbini.OptionalOr(konbini.Map(konbini.Seq(konbini.String("."), digits), join), "")
	exponent = konbini.OptionalOr(konbini.Map(konbini.Seq(
		konbini.Map(konbini.OneOf("eE"), func(r rune) string { return string(r) }),
		konbini.OptionalOr(konbini.Map(konbini.OneOf("+-"), func(r rune) string { return string(r) }), ""),
		digits,
	), join), "")
)

var number = konbini.Bind(konbini.Seq(konbini.OptionalOr(konbini.String("-"), ""), intPart, fraction, exponent), func(parts []string) parser {
	f, err := strconv.ParseFloat(join(parts), 64)
	if err != nil {
		return konbini.Fail[rune, interface{}](err.Error())
	}
	return konbini.Pure[rune](interface{}(f))
})

var str = konbini.Map(konbini.Between(konbini.Rune('"'), konbini.Many(char), konbini.Rune('"')), decodeSurrogates)

var char = konbini.Or(
	konbini.Satisfy("character", func(r rune) bool { return r != '"' && r != '\\' && r >= 0x20 }),
	konbini.Right(konbini.Rune('\\'), escape),
)

var escape = konbini.Or(
	konbini.Map(konbini.OneOf(`"\/bfnrt`), func(r rune) rune {
		switch r {
		case 'b':
			return '\b'
		case 'f':
			return '\f'
		case 'n':
			return '\n'
		case 'r':
			return '\r'
		case 't':
			return '\t'
		}
		return r
	}),
	konbini.Right(konbini.Rune('u'), konbini.Bind(konbini.Count(4, konbini.Satisfy("hex digit", isHex)), func(hex []rune) konbini.Parser[rune, rune] {
		n, err := strconv.ParseUint(string(hex), 16, 16)
		if err != nil {
			return konbini.Fail[rune, rune](err.Error())
		}
		return konbini.Pure[rune](rune(n))
	})),
)

func isHex(r rune) bool {
	return '0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F'
}

// decodeSurrogates combines UTF-16 surrogate pairs from \u escapes.
func decodeSurrogates(rs []rune) string {
	var s strings.Builder
	for i := 0; i < len(rs); i++ {
		if utf16.IsSurrogate(rs[i]) && i+1 < len(rs) {
			if r := utf16.DecodeRune(rs[i], rs[i+1]); r != utf8.RuneError {
				s.WriteRune(r)
				i++
				continue
			}
		}
		s.WriteRune(rs[i])
	}
	return s.String()
}

func array(value parser) parser {
	elems := konbini.SepBy(value, konbini.Lexeme(konbini.Rune(',')))
	return toAny(konbini.Between(konbini.Lexeme(konbini.Rune('[')), elems, konbini.Rune(']')))
}

func object(value parser) parser {
	member := konbini.AndThen(konbini.Left(konbini.Lexeme(str), konbini.Lexeme(konbini.Rune(':'))), value)
	members := konbini.Map(konbini.SepBy(member, konbini.Lexeme(konbini.Rune(','))), func(ms []konbini.Pair[string, interface{}]) map[string]interface{} {
		obj := make(map[string]interface{}, len(ms))
		for _, m := range ms {
			obj[m.First] = m.Second
		}
		return obj
	})
	return konbini.Trace("object", toAny(konbini.Between(konbini.Lexeme(konbini.Rune('{')), members, konbini.Rune('}'))))
}
