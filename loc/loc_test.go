// Copyright © 2020 The Konbini Authors under an MIT-style license.

package loc

import "testing"

func TestLoc(t *testing.T) {
	text := []rune("ab\ncd\n\nλx")
	tests := []struct {
		p    int
		want Loc
	}{
		{0, Loc{Line: 1, Col: 1}},
		{1, Loc{Line: 1, Col: 2}},
		{2, Loc{Line: 1, Col: 3}},
		{3, Loc{Line: 2, Col: 1}},
		{5, Loc{Line: 2, Col: 3}},
		{6, Loc{Line: 3, Col: 1}},
		{7, Loc{Line: 4, Col: 1}},
		{8, Loc{Line: 4, Col: 2}},
		{9, Loc{Line: 4, Col: 3}},
		{100, Loc{Line: 4, Col: 3}},
	}
	f := NewFile("", text)
	for _, test := range tests {
		if got := f.Loc(test.p); got != test.want {
			t.Errorf("Loc(%d)=%v, want %v", test.p, got, test.want)
		}
	}
}

func TestLine(t *testing.T) {
	text := []rune("ab\ncd\n\nλx")
	tests := []struct {
		n    int
		want string
	}{
		{1, "ab"},
		{2, "cd"},
		{3, ""},
		{4, "λx"},
		{5, ""},
	}
	f := NewFile("", text)
	for _, test := range tests {
		s, e := f.Line(test.n)
		if got := string(text[s:e]); got != test.want {
			t.Errorf("Line(%d)=%q, want %q", test.n, got, test.want)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		loc  Loc
		want string
	}{
		{Loc{Line: 1, Col: 5}, "1.5"},
		{Loc{Path: "x.json", Line: 3, Col: 2}, "x.json:3.2"},
	}
	for _, test := range tests {
		if got := test.loc.String(); got != test.want {
			t.Errorf("%#v.String()=%q, want %q", test.loc, got, test.want)
		}
	}
}
