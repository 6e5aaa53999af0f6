package source

import "sort"
import "unicode/utf8"

// File holds a compilation unit's source buffer and precomputed line offsets
// for diagnostics. Every Span produced by the front end indexes into Input.
type File struct {
	Name        string
	Input       string
	lineOffsets []int // 0-based byte offsets of each line start
}

func NewFile(name string, input string) *File {
	f := &File{Name: name, Input: input}
	f.lineOffsets = []int{0}
	for i := 0; i < len(input); i++ {
		if input[i] == '\n' {
			f.lineOffsets = append(f.lineOffsets, i+1)
		}
	}
	return f
}

// LineCol returns 1-based line/column for a byte offset.
// Column is counted in runes (Unicode code points), not bytes; tabs count as one column.
func (f *File) LineCol(off int) (int, int) {
	if off < 0 {
		off = 0
	}
	if off > len(f.Input) {
		off = len(f.Input)
	}
	// lineOffsets is sorted.
	i := sort.Search(len(f.lineOffsets), func(i int) bool { return f.lineOffsets[i] > off }) - 1
	if i < 0 {
		i = 0
	}
	lineStart := f.lineOffsets[i]
	col := 1
	pos := lineStart
	for pos < off {
		_, sz := utf8.DecodeRuneInString(f.Input[pos:])
		if sz <= 0 {
			sz = 1
		}
		// If the offset points into a rune's bytes, keep the previous column.
		if pos+sz > off {
			break
		}
		col++
		pos += sz
	}
	return i + 1, col
}

// Line returns the text of the 1-based line n without its trailing newline.
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.lineOffsets) {
		return ""
	}
	start := f.lineOffsets[n-1]
	end := len(f.Input)
	if n < len(f.lineOffsets) {
		end = f.lineOffsets[n] - 1
	}
	if end > start && f.Input[end-1] == '\r' {
		end--
	}
	return f.Input[start:end]
}

// Text returns the source slice covered by s. It does not copy.
func (f *File) Text(s Span) string {
	if s.Offset < 0 || s.End() > len(f.Input) {
		return ""
	}
	return f.Input[s.Offset:s.End()]
}

// Span is a half-open byte range [Offset, Offset+Len) into a File's Input.
type Span struct {
	Offset int
	Len    int
}

func (s Span) End() int { return s.Offset + s.Len }

func (s Span) Contains(off int) bool { return off >= s.Offset && off < s.End() }

// Less orders spans by (Offset, Len).
func (s Span) Less(o Span) bool {
	if s.Offset != o.Offset {
		return s.Offset < o.Offset
	}
	return s.Len < o.Len
}

// Join returns the smallest span covering both a and b.
func Join(a, b Span) Span {
	start := a.Offset
	if b.Offset < start {
		start = b.Offset
	}
	end := a.End()
	if b.End() > end {
		end = b.End()
	}
	return Span{Offset: start, Len: end - start}
}
