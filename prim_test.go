// Copyright © 2020 The Konbini Authors under an MIT-style license.

package konbini

import (
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"
)

func parse[V any](p Parser[rune, V], s string) Result[rune, V] {
	return p(Text(s).Cursor())
}

func TestCursor(t *testing.T) {
	c := Text("aλ").Cursor()
	if r, ok := c.Peek(); !ok || r != 'a' {
		t.Errorf("Peek()=%q,%v, want 'a',true", r, ok)
	}
	d := c.Advance(1)
	if c.Pos() != 0 {
		t.Errorf("Advance modified the cursor: Pos()=%d", c.Pos())
	}
	if r, ok := d.Peek(); !ok || r != 'λ' {
		t.Errorf("Peek()=%q,%v, want 'λ',true", r, ok)
	}
	e := d.Advance(1)
	if !e.AtEnd() {
		t.Errorf("AtEnd()=false at %d", e.Pos())
	}
	if r, ok := e.Peek(); ok {
		t.Errorf("Peek()=%q,true at end", r)
	}
	if len(e.Rest()) != 0 {
		t.Errorf("Rest()=%q at end", e.Rest())
	}
}

func TestAdvancePanics(t *testing.T) {
	for _, n := range []int{-1, 4} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Advance(%d) did not panic", n)
				}
			}()
			Text("abc").Cursor().Advance(n)
		}()
	}
}

func TestSatisfyEveryPosition(t *testing.T) {
	src := Text("abc")
	always := Satisfy("anything", func(rune) bool { return true })
	for p := 0; p <= src.Len(); p++ {
		r := always(src.Cursor().Advance(p))
		if p < src.Len() {
			if !r.OK() || r.Next.Pos() != Pos(p+1) {
				t.Errorf("at %d: OK()=%v, Next=%d, want true, %d", p, r.OK(), r.Next.Pos(), p+1)
			}
			continue
		}
		if r.OK() || r.Diag.Kind != UnexpectedEndOfInput || r.Diag.Pos != Pos(p) {
			t.Errorf("at %d: OK()=%v, Diag=%+v, want UnexpectedEndOfInput at %d", p, r.OK(), r.Diag, p)
		}
	}
}

func TestSatisfyFails(t *testing.T) {
	r := parse(Digit(), "x")
	want := &Diagnostic{
		Kind:     PredicateFailed,
		Message:  "unexpected 'x'",
		Pos:      0,
		Expected: []string{"digit"},
	}
	if r.OK() || r.Consumed {
		t.Fatalf("OK()=%v, Consumed=%v, want false, false", r.OK(), r.Consumed)
	}
	if diff := cmp.Diff(want, r.Diag); diff != "" {
		t.Errorf("got %s, want %s\n%s", r.Diag, want, diff)
	}
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		lit, in string
		ok      bool
		kind    Kind
		pos     Pos
	}{
		{lit: "ab", in: "ab", ok: true, pos: 2},
		{lit: "ab", in: "abc", ok: true, pos: 2},
		{lit: "", in: "abc", ok: true, pos: 0},
		{lit: "ab", in: "ac", kind: LiteralMismatch, pos: 1},
		{lit: "ab", in: "xb", kind: LiteralMismatch, pos: 0},
		{lit: "abc", in: "ab", kind: UnexpectedEndOfInput, pos: 2},
		{lit: "ab", in: "", kind: UnexpectedEndOfInput, pos: 0},
	}
	for _, test := range tests {
		r := parse(String(test.lit), test.in)
		switch {
		case r.OK() != test.ok:
			t.Errorf("String(%q) on %q: OK()=%v, want %v", test.lit, test.in, r.OK(), test.ok)
		case r.OK() && (r.Value != test.lit || r.Next.Pos() != test.pos):
			t.Errorf("String(%q) on %q: got %q at %d, want %q at %d",
				test.lit, test.in, r.Value, r.Next.Pos(), test.lit, test.pos)
		case !r.OK() && (r.Diag.Kind != test.kind || r.Diag.Pos != test.pos):
			t.Errorf("String(%q) on %q: got %v at %d, want %v at %d",
				test.lit, test.in, r.Diag.Kind, r.Diag.Pos, test.kind, test.pos)
		case !r.OK() && r.Consumed:
			t.Errorf("String(%q) on %q: failure consumed input", test.lit, test.in)
		}
	}
}

func TestLiteralTokens(t *testing.T) {
	src := NewSource([]string{"let", "y", "="})
	r := Literal([]string{"let", "x"})(src.Cursor())
	if r.OK() || r.Diag.Kind != LiteralMismatch || r.Diag.Pos != 1 {
		t.Errorf("got OK()=%v, Diag=%+v, want LiteralMismatch at 1", r.OK(), r.Diag)
	}
	r = Literal([]string{"let", "y"})(src.Cursor())
	if !r.OK() || r.Next.Pos() != 2 {
		t.Fatalf("got OK()=%v, Diag=%+v, want success", r.OK(), r.Diag)
	}
	if diff := cmp.Diff([]string{"let", "y"}, r.Value); diff != "" {
		t.Errorf("got %v\n%s", r.Value, diff)
	}
}

func TestEndOfInput(t *testing.T) {
	if r := parse(EndOfInput[rune](), ""); !r.OK() || r.Next.Pos() != 0 {
		t.Errorf("on empty input: OK()=%v, Next=%d", r.OK(), r.Next.Pos())
	}
	r := parse(Right(Rune('a'), EndOfInput[rune]()), "ab")
	if r.OK() || r.Diag.Kind != ExpectedEndOfInput || r.Diag.Pos != 1 {
		t.Errorf("got OK()=%v, Diag=%+v, want ExpectedEndOfInput at 1", r.OK(), r.Diag)
	}
}

func TestPureFail(t *testing.T) {
	if r := parse(Pure[rune](7), "abc"); !r.OK() || r.Value != 7 || r.Next.Pos() != 0 {
		t.Errorf("Pure: OK()=%v, Value=%d, Next=%d", r.OK(), r.Value, r.Next.Pos())
	}
	r := parse(Fail[rune, int]("no way"), "abc")
	want := &Diagnostic{Kind: UserDefined, Message: "no way"}
	if r.OK() || r.Consumed {
		t.Fatalf("Fail: OK()=%v, Consumed=%v", r.OK(), r.Consumed)
	}
	if diff := cmp.Diff(want, r.Diag); diff != "" {
		t.Errorf("got %+v, want %+v\n%s", r.Diag, want, diff)
	}
}

func TestLookAhead(t *testing.T) {
	r := parse(LookAhead(String("ab")), "abc")
	if !r.OK() || r.Value != "ab" || r.Next.Pos() != 0 {
		t.Errorf("got OK()=%v, Value=%q, Next=%d, want true, \"ab\", 0", r.OK(), r.Value, r.Next.Pos())
	}
	if r := parse(LookAhead(String("ab")), "ac"); r.OK() || r.Diag.Pos != 1 {
		t.Errorf("got OK()=%v, Diag=%+v, want failure at 1", r.OK(), r.Diag)
	}
}

func TestNotFollowedBy(t *testing.T) {
	if r := parse(NotFollowedBy(Rune('a')), "b"); !r.OK() || r.Next.Pos() != 0 {
		t.Errorf("on \"b\": OK()=%v, Next=%d, want true, 0", r.OK(), r.Next.Pos())
	}
	r := parse(NotFollowedBy(Rune('a')), "ab")
	if r.OK() || r.Consumed || r.Diag.Pos != 0 || r.Diag.Message != "unexpected 'a'" {
		t.Errorf("on \"ab\": OK()=%v, Consumed=%v, Diag=%+v", r.OK(), r.Consumed, r.Diag)
	}
}

func TestTake(t *testing.T) {
	r := parse(Take[rune](2), "abc")
	if !r.OK() || string(r.Value) != "ab" || r.Next.Pos() != 2 {
		t.Errorf("Take(2): OK()=%v, Value=%q, Next=%d", r.OK(), string(r.Value), r.Next.Pos())
	}
	r = parse(Take[rune](-1), "abc")
	if !r.OK() || len(r.Value) != 0 || r.Next.Pos() != 0 {
		t.Errorf("Take(-1): OK()=%v, Value=%q, Next=%d, want empty at 0", r.OK(), string(r.Value), r.Next.Pos())
	}
	r = parse(Take[rune](5), "abc")
	if r.OK() || r.Diag.Kind != UnexpectedEndOfInput || r.Diag.Pos != 3 {
		t.Errorf("Take(5): OK()=%v, Diag=%+v, want UnexpectedEndOfInput at 3", r.OK(), r.Diag)
	}
}

func TestTakeWhile(t *testing.T) {
	tests := []struct {
		in   string
		want string
		hint Kind
	}{
		{"12a", "12", PredicateFailed},
		{"123", "123", UnexpectedEndOfInput},
		{"a", "", PredicateFailed},
	}
	for _, test := range tests {
		r := parse(TakeWhile("digit", unicode.IsDigit), test.in)
		if !r.OK() || string(r.Value) != test.want {
			t.Errorf("on %q: OK()=%v, Value=%q, want %q", test.in, r.OK(), string(r.Value), test.want)
			continue
		}
		if r.Diag == nil || r.Diag.Kind != test.hint || r.Diag.Pos != r.Next.Pos() {
			t.Errorf("on %q: hint %+v, want %v at %d", test.in, r.Diag, test.hint, r.Next.Pos())
		}
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"-17", -17, true},
		{"x", 0, false},
		{"-", 0, false},
	}
	for _, test := range tests {
		got, err := ParseString(Int(), test.in)
		if (err == nil) != test.ok || got != test.want {
			t.Errorf("ParseString(Int(), %q)=%d,%v, want %d, ok=%v", test.in, got, err, test.want, test.ok)
		}
	}
}
