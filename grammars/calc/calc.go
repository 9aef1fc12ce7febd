// Copyright © 2020 The Konbini Authors under an MIT-style license.

package calc

import (
	"errors"
	"math"
	"strconv"

	"github.com/eaburns/konbini"
)

type parser = konbini.Parser[Token, float64]

type binop = func(float64, float64) float64

func sym(text string) konbini.Parser[Token, Token] {
	return konbini.Satisfy("'"+text+"'", func(t Token) bool {
		return t.Kind == Op && t.Text == text
	})
}

func kind(k Kind, name string) konbini.Parser[Token, Token] {
	return konbini.Satisfy(name, func(t Token) bool { return t.Kind == k })
}

func op(text string, f binop) konbini.Parser[Token, binop] {
	return konbini.Map(sym(text), func(Token) binop { return f })
}

// Expr is a Parser for an arithmetic expression over Tokens.
//
// From lowest to highest precedence, the operators are
// + and - (left associative), * and / (left associative),
// prefix negation, and ^ (right associative).
var Expr = konbini.Recursive(func(expr parser) parser {
	number := konbini.Bind(kind(Number, "number"), func(t Token) parser {
		f, err := strconv.ParseFloat(t.Text, 64)
		if err != nil {
			return konbini.Fail[Token, float64](err.Error())
		}
		return konbini.Pure[Token](f)
	})
	atom := konbini.Trace("atom", konbini.Or(
		number,
		konbini.Between(kind(LParen, "'('"), expr, kind(RParen, "')'")),
	))
	power := konbini.ChainRight(atom, op("^", math.Pow))
	unary := konbini.Recursive(func(unary parser) parser {
		neg := konbini.Map(konbini.Right(sym("-"), unary), func(x float64) float64 { return -x })
		return konbini.Or(neg, power)
	})
	term := konbini.ChainLeft(unary, konbini.Or(
		op("*", func(a, b float64) float64 { return a * b }),
		op("/", func(a, b float64) float64 { return a / b }),
	))
	return konbini.ChainLeft(term, konbini.Or(
		op("+", func(a, b float64) float64 { return a + b }),
		op("-", func(a, b float64) float64 { return a - b }),
	))
})

// Eval returns the value of the expression in text.
// The error, if any, is a *konbini.ParseError
// located in text, even if it was found among the tokens.
func Eval(text string, opts ...konbini.RunOption) (float64, error) {
	src := konbini.Text(text)
	toks, err := konbini.Run(lexer, src, konbini.Name("calc"))
	if err != nil {
		return 0, err
	}
	v, err := konbini.Run(Expr, konbini.NewSource(toks), append([]konbini.RunOption{konbini.Name("calc")}, opts...)...)
	var perr *konbini.ParseError
	if errors.As(err, &perr) {
		d := perr.Diagnostic
		if int(d.Pos) < len(toks) {
			d.Pos = toks[d.Pos].Pos
		} else {
			d.Pos = konbini.Pos(src.Len())
		}
		return 0, konbini.NewParseError(src, "calc", &d)
	}
	return v, err
}
