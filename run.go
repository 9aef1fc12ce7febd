// Copyright © 2020 The Konbini Authors under an MIT-style license.

package konbini

import "github.com/eaburns/peggy/peg"

// A RunOption configures Run.
type RunOption func(*config)

type config struct {
	full bool
	name string
}

// RequireFullConsumption sets whether Run fails
// when the parser does not consume all of the input.
// The default is true.
func RequireFullConsumption(b bool) RunOption {
	return func(c *config) { c.full = b }
}

// Name sets the rule name at the root of ParseError.Tree.
// The default is "input".
func Name(name string) RunOption {
	return func(c *config) { c.name = name }
}

// A ParseError is the error returned by Run when parsing fails.
type ParseError struct {
	// Diagnostic is the furthest failure of the parse.
	Diagnostic
	// Rendered is the Diagnostic rendered against the source.
	Rendered string

	tree *peg.Fail
}

func (err *ParseError) Error() string { return err.Rendered }

// Tree returns the failure as a peg.Fail tree,
// suitable for peg.PrettyWrite.
// For text sources, positions in the tree are byte offsets
// into the text, as peggy expects; for token sources,
// they are token indices.
func (err *ParseError) Tree() *peg.Fail { return err.tree }

// Run parses src with p, returning p's value.
// If the parse fails, the error is a *ParseError.
func Run[T, V any](p Parser[T, V], src *Source[T], opts ...RunOption) (V, error) {
	cfg := config{full: true, name: "input"}
	for _, o := range opts {
		o(&cfg)
	}
	r := p(src.Cursor())
	if !r.ok && r.Diag == nil {
		r.Diag = &Diagnostic{Kind: UserDefined, Message: "parse failed"}
	}
	if r.ok && cfg.full && !r.Next.AtEnd() {
		r = Failure[T, V](trailing(r.Next.pos, r.Diag), true)
	}
	if !r.ok {
		var zero V
		return zero, NewParseError(src, cfg.name, r.Diag)
	}
	return r.Value, nil
}

// ParseString parses text with p.
func ParseString[V any](p Parser[rune, V], text string, opts ...RunOption) (V, error) {
	return Run(p, Text(text), opts...)
}

// trailing returns the failure for input left at p.
// If the parse gave up on something further along,
// the failure is reported there, with its expectations.
func trailing(p Pos, hint *Diagnostic) *Diagnostic {
	d := &Diagnostic{
		Kind:    TrailingInput,
		Message: "unexpected trailing input",
		Pos:     p,
	}
	if hint != nil && hint.Pos >= p {
		d.Pos = hint.Pos
		d.Expected = hint.Expected
	}
	return d
}

// NewParseError returns the ParseError for d on src,
// with name at the root of its Tree.
// Run uses it to report failures; a program that parses in stages,
// such as a lexer followed by a parser over its tokens,
// can use it to report a later stage's failure against the original text.
//
// A nil d is reported as an unexplained failure at the start of src.
func NewParseError[T any](src *Source[T], name string, d *Diagnostic) *ParseError {
	if d == nil {
		d = &Diagnostic{Kind: UserDefined, Message: "parse failed"}
	}
	off := src.offset(d.Pos)
	tree := &peg.Fail{Name: name, Pos: off}
	want := d.Expected
	if len(want) == 0 {
		want = []string{d.Message}
	}
	for _, w := range want {
		tree.Kids = append(tree.Kids, &peg.Fail{Pos: off, Want: w})
	}
	return &ParseError{
		Diagnostic: *d,
		Rendered:   src.Render(d),
		tree:       tree,
	}
}
