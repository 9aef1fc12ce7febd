// Copyright © 2020 The Konbini Authors under an MIT-style license.

// Package calc is an arithmetic calculator
// that parses in two stages:
// a lexer over the text, and a parser over the lexer's tokens.
package calc

import (
	"github.com/eaburns/konbini"
)

// A Kind is the kind of a Token.
type Kind int

const (
	Number Kind = iota
	Op
	LParen
	RParen
)

// A Token is a lexical element of an expression.
type Token struct {
	Kind Kind
	Text string
	// Pos is the rune index of the Token in the text.
	Pos konbini.Pos
}

func (t Token) String() string { return t.Text }

var lexer = konbini.Right(konbini.Spaces(), konbini.Many(konbini.Lexeme(token)))

var token = konbini.Bind(konbini.Position[rune](), func(p konbini.Pos) konbini.Parser[rune, Token] {
	tok := func(k Kind) func(string) Token {
		return func(s string) Token { return Token{Kind: k, Text: s, Pos: p} }
	}
	return konbini.Choice(
		konbini.Map(konbini.Label(numeral, "number"), tok(Number)),
		konbini.Map(konbini.Label(konbini.Map(konbini.OneOf("+-*/^"), str), "operator"), tok(Op)),
		konbini.Map(konbini.Map(konbini.Rune('('), str), tok(LParen)),
		konbini.Map(konbini.Map(konbini.Rune(')'), str), tok(RParen)),
	)
})

var numeral = konbini.Map(
	konbini.AndThen(
		konbini.Some(konbini.Digit()),
		konbini.Optional(konbini.Right(konbini.Rune('.'), konbini.Some(konbini.Digit()))),
	),
	func(p konbini.Pair[[]rune, konbini.Option[[]rune]]) string {
		if !p.Second.Valid {
			return string(p.First)
		}
		return string(p.First) + "." + string(p.Second.Value)
	},
)

func str(r rune) string { return string(r) }

// Lex returns the tokens of text.
// The error, if any, is a *konbini.ParseError.
func Lex(text string) ([]Token, error) {
	return konbini.Run(lexer, konbini.Text(text), konbini.Name("calc"))
}
