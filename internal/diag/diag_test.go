package diag

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"toylang/internal/source"
)

func TestRenderCaret(t *testing.T) {
	f := source.NewFile("main.toy", "fn main() => 1;\nlet x: i32 = true;\n")
	err := Errorf(InitializerTypeMismatch, source.Span{Offset: 29, Len: 4}, "expected i32, found bool")
	var buf bytes.Buffer
	Render(&buf, f, err)
	want := "main.toy:2:14: error[T0002]: expected i32, found bool\n" +
		"let x: i32 = true;\n" +
		"             ^\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestRenderExpected(t *testing.T) {
	f := source.NewFile("a.toy", "fn")
	err := &Error{Code: UnexpectedEndOfInput, Span: source.Span{Offset: 2}, Msg: "unexpected end of input", Expected: []string{"Ident"}}
	var buf bytes.Buffer
	Render(&buf, f, err)
	want := "a.toy:1:3: error[P0002]: unexpected end of input (expected Ident)\nfn\n  ^\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestIsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("unit a.toy: %w", Errorf(NotCallable, source.Span{}, "x"))
	if !Is(err, NotCallable) {
		t.Fatalf("expected wrapped error to match code")
	}
	if Is(err, NotIndexable) {
		t.Fatalf("unexpected code match")
	}
	if Is(errors.New("plain"), NotCallable) {
		t.Fatalf("plain error must not match")
	}
	if got := CodeOf(err); got != NotCallable {
		t.Fatalf("expected %s, got %s", NotCallable, got)
	}
}

func TestPrintSorted(t *testing.T) {
	var b Bag
	b.Add("b.toy", 1, 1, UnboundIdentifier, "unbound x")
	b.Add("a.toy", 3, 2, "", "plain")
	b.AddAt(Loc{Filename: "a.toy", Line: 1, Col: 5}, NotCallable, "not callable")
	var buf bytes.Buffer
	Print(&buf, &b)
	want := "a.toy:1:5: error[T0007]: not callable\n" +
		"a.toy:3:2: error: plain\n" +
		"b.toy:1:1: error[T0012]: unbound x\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
	if b.Len() != 3 {
		t.Fatalf("expected 3 items, got %d", b.Len())
	}
}

func TestBagAddError(t *testing.T) {
	f := source.NewFile("m.toy", "fn main() =>\n  x;")
	var b Bag
	b.AddError(f, Errorf(UnboundIdentifier, source.Span{Offset: 15, Len: 1}, "unbound identifier %q", "x"))
	b.AddError(f, errors.New("disk on fire"))
	var buf bytes.Buffer
	Print(&buf, &b)
	want := "m.toy:1:1: error: disk on fire\n" +
		"m.toy:2:3: error[T0012]: unbound identifier \"x\"\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}
