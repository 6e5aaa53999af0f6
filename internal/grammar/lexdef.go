package grammar

import (
	"io"

	"github.com/alecthomas/participle/v2/lexer"

	toylexer "toylang/internal/lexer"
)

// definition adapts the toy lexer to participle. Whitespace tokens are
// emitted and elided by the parser.
type definition struct {
	symbols map[string]lexer.TokenType
}

var symbols = func() map[string]lexer.TokenType {
	m := map[string]lexer.TokenType{"EOF": lexer.EOF}
	for _, k := range toylexer.Kinds() {
		m[k.String()] = lexer.TokenType(k)
	}
	return m
}()

func (d definition) Symbols() map[string]lexer.TokenType { return d.symbols }

func (d definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexString(filename, string(b))
}

func (definition) LexString(filename string, input string) (lexer.Lexer, error) {
	return &tokenStream{
		input: input,
		sc:    toylexer.NewScanner(input),
		pos:   lexer.Position{Filename: filename, Line: 1, Column: 1},
	}, nil
}

type tokenStream struct {
	input string
	sc    *toylexer.Scanner
	pos   lexer.Position
}

func (s *tokenStream) Next() (lexer.Token, error) {
	t, ok := s.sc.Next()
	if !ok {
		return lexer.EOFToken(s.pos), nil
	}
	text := s.input[t.Span.Offset:t.Span.End()]
	tok := lexer.Token{Type: lexer.TokenType(t.Kind), Value: text, Pos: s.pos}
	s.pos.Advance(text)
	return tok, nil
}

// KindOf maps a participle token type back to the toy lexer kind.
func KindOf(t lexer.TokenType) (toylexer.Kind, bool) {
	if t < 0 {
		return 0, false
	}
	return toylexer.Kind(t), true
}
