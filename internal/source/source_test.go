package source

import "testing"

func TestLineColUnicodeColumns(t *testing.T) {
	f := NewFile("x.toy", "a中b\nxy\n")

	type tc struct {
		off      int
		wantLine int
		wantCol  int
	}
	// "a中b\n"
	// byte offsets: a(0), 中(1..3), b(4), \n(5)
	cases := []tc{
		{off: 0, wantLine: 1, wantCol: 1},
		{off: 1, wantLine: 1, wantCol: 2}, // at start of 中
		{off: 2, wantLine: 1, wantCol: 2}, // inside 中 bytes
		{off: 3, wantLine: 1, wantCol: 2}, // inside 中 bytes
		{off: 4, wantLine: 1, wantCol: 3}, // at b
		{off: 5, wantLine: 1, wantCol: 4}, // at newline
		{off: 6, wantLine: 2, wantCol: 1}, // next line start
		{off: 7, wantLine: 2, wantCol: 2},
	}
	for _, c := range cases {
		line, col := f.LineCol(c.off)
		if line != c.wantLine || col != c.wantCol {
			t.Fatalf("off=%d => (%d,%d), want (%d,%d)", c.off, line, col, c.wantLine, c.wantCol)
		}
	}
}

func TestLineColTabIsOneColumn(t *testing.T) {
	f := NewFile("x.toy", "\t\tx")
	if line, col := f.LineCol(2); line != 1 || col != 3 {
		t.Fatalf("expected (1,3), got (%d,%d)", line, col)
	}
}

func TestLine(t *testing.T) {
	f := NewFile("x.toy", "fn a() => 1;\r\nfn b() => 2;\n\nlast")
	cases := []struct {
		n    int
		want string
	}{
		{1, "fn a() => 1;"},
		{2, "fn b() => 2;"},
		{3, ""},
		{4, "last"},
		{5, ""},
		{0, ""},
	}
	for _, c := range cases {
		if got := f.Line(c.n); got != c.want {
			t.Fatalf("Line(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestSpanJoinAndOrder(t *testing.T) {
	a := Span{Offset: 3, Len: 2}
	b := Span{Offset: 10, Len: 4}
	if got := Join(a, b); got != (Span{Offset: 3, Len: 11}) {
		t.Fatalf("Join = %+v", got)
	}
	if got := Join(b, a); got != (Span{Offset: 3, Len: 11}) {
		t.Fatalf("Join reversed = %+v", got)
	}
	if !a.Less(b) || b.Less(a) {
		t.Fatalf("expected %+v < %+v", a, b)
	}
	if !(Span{Offset: 3, Len: 1}).Less(a) {
		t.Fatalf("expected shorter span to order first")
	}
	f := NewFile("x.toy", "fn main() => 42")
	if got := f.Text(Span{Offset: 3, Len: 4}); got != "main" {
		t.Fatalf("Text = %q", got)
	}
	if got := f.Text(Span{Offset: 14, Len: 9}); got != "" {
		t.Fatalf("expected out-of-range span to yield empty text, got %q", got)
	}
}
