package diag

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"toylang/internal/source"
)

type Item struct {
	Filename string
	Line     int
	Col      int
	Code     Code
	Msg      string
}

// Bag collects rendered diagnostics from several compilation units.
type Bag struct {
	Items []Item
}

func (b *Bag) Add(filename string, line int, col int, code Code, msg string) {
	b.Items = append(b.Items, Item{Filename: filename, Line: line, Col: col, Code: code, Msg: msg})
}

func (b *Bag) AddAt(loc Loc, code Code, msg string) {
	b.Add(loc.Filename, loc.Line, loc.Col, code, msg)
}

// AddError records err against f. Foreign errors land at 1:1 without a code.
func (b *Bag) AddError(f *source.File, err error) {
	msg := err.Error()
	var de *Error
	if errors.As(err, &de) {
		msg = de.Msg
	}
	b.AddAt(LocOf(f, err), CodeOf(err), msg)
}

func (b *Bag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Items)
}

type Loc struct {
	Filename string
	Line     int
	Col      int
}

func Print(w io.Writer, b *Bag) {
	if b == nil || len(b.Items) == 0 {
		return
	}
	items := make([]Item, 0, len(b.Items))
	items = append(items, b.Items...)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Filename != items[j].Filename {
			return items[i].Filename < items[j].Filename
		}
		if items[i].Line != items[j].Line {
			return items[i].Line < items[j].Line
		}
		return items[i].Col < items[j].Col
	})
	for _, it := range items {
		if it.Code == "" {
			fmt.Fprintf(w, "%s:%d:%d: error: %s\n", it.Filename, it.Line, it.Col, it.Msg)
			continue
		}
		fmt.Fprintf(w, "%s:%d:%d: error[%s]: %s\n", it.Filename, it.Line, it.Col, it.Code, it.Msg)
	}
}
