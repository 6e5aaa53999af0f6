package lexer

import (
	"unicode/utf8"

	"toylang/internal/source"
)

// Next returns the longest token at the start of input and the byte length
// of its lexeme. It never fails: bytes that start no token become a
// single-rune TokenUnknown. ok is false only for empty input.
func Next(input string) (tok Token, n int, ok bool) {
	if len(input) == 0 {
		return Token{}, 0, false
	}
	tok.Suffix = NoSuffix
	ch := input[0]
	switch {
	case isSpace(ch):
		n = 1
		for n < len(input) && isSpace(input[n]) {
			n++
		}
		tok.Kind = TokenWhitespace
	case isIdentStart(ch):
		n = identRun(input)
		tok.Kind = TokenIdent
		if k, ok := keywords[input[:n]]; ok {
			tok.Kind = k
		}
	case isDigit(ch):
		n = 1
		for n < len(input) && (isDigit(input[n]) || input[n] == '_') {
			n++
		}
		tok.Kind = TokenLiteral
		if n < len(input) && isIdentStart(input[n]) {
			tok.Suffix = n
			n += identRun(input[n:])
		}
	default:
		tok.Kind, n = lexPunct(input)
	}
	return tok, n, true
}

func lexPunct(input string) (Kind, int) {
	next := byte(0)
	if len(input) > 1 {
		next = input[1]
	}
	switch input[0] {
	case ';':
		return TokenSemicolon, 1
	case ':':
		return TokenColon, 1
	case ',':
		return TokenComma, 1
	case '(':
		return TokenLParen, 1
	case ')':
		return TokenRParen, 1
	case '{':
		return TokenLBrace, 1
	case '}':
		return TokenRBrace, 1
	case '[':
		return TokenLBracket, 1
	case ']':
		return TokenRBracket, 1
	case '+':
		return TokenPlus, 1
	case '*':
		return TokenStar, 1
	case '/':
		return TokenSlash, 1
	case '%':
		return TokenPercent, 1
	case '=':
		switch next {
		case '=':
			return TokenEqEq, 2
		case '>':
			return TokenFatArrow, 2
		}
		return TokenEq, 1
	case '-':
		if next == '>' {
			return TokenArrow, 2
		}
		return TokenMinus, 1
	case '!':
		if next == '=' {
			return TokenBangEq, 2
		}
		return TokenBang, 1
	case '<':
		if next == '=' {
			return TokenLtEq, 2
		}
		return TokenLt, 1
	case '>':
		if next == '=' {
			return TokenGtEq, 2
		}
		return TokenGt, 1
	case '&':
		if next == '&' {
			return TokenAndAnd, 2
		}
	case '|':
		if next == '|' {
			return TokenOrOr, 2
		}
	}
	// Never split a multi-byte rune.
	_, sz := utf8.DecodeRuneInString(input)
	if sz <= 0 {
		sz = 1
	}
	return TokenUnknown, sz
}

// Scanner is a forward-only, restartable token sequence over one buffer.
type Scanner struct {
	input string
	pos   int
}

func NewScanner(input string) *Scanner { return &Scanner{input: input} }

// Next returns the next token, whitespace included. ok is false at the end
// of input.
func (s *Scanner) Next() (Spanned, bool) {
	tok, n, ok := Next(s.input[s.pos:])
	if !ok {
		return Spanned{}, false
	}
	sp := Spanned{Token: tok, Span: source.Span{Offset: s.pos, Len: n}}
	s.pos += n
	return sp, true
}

// Reset restarts the sequence from offset zero.
func (s *Scanner) Reset() { s.pos = 0 }

// Tokenize collects the whole token sequence of input.
func Tokenize(input string) []Spanned {
	var out []Spanned
	s := NewScanner(input)
	for {
		t, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, t)
	}
}

func identRun(input string) int {
	n := 1
	for n < len(input) && isIdentContinue(input[n]) {
		n++
	}
	return n
}

func isSpace(ch byte) bool { return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' }

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentContinue(ch byte) bool { return isIdentStart(ch) || isDigit(ch) }

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }
