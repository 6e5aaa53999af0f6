package lexer

import "toylang/internal/source"

type Kind int

const (
	TokenUnknown Kind = iota
	TokenWhitespace

	// Literals / identifiers
	TokenIdent
	TokenLiteral

	// Keywords
	TokenFn
	TokenLet
	TokenReturn
	TokenIf
	TokenElse
	TokenTrue
	TokenFalse
	TokenExtern
	TokenAnd
	TokenOr
	TokenNot

	// Punct
	TokenSemicolon
	TokenColon
	TokenComma
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket

	// Operators
	TokenEq
	TokenEqEq
	TokenFatArrow
	TokenArrow
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenBang
	TokenBangEq
	TokenLt
	TokenLtEq
	TokenGt
	TokenGtEq
	TokenAndAnd
	TokenOrOr

	numKinds
)

var kindNames = [numKinds]string{
	TokenUnknown:    "Unknown",
	TokenWhitespace: "Whitespace",
	TokenIdent:      "Ident",
	TokenLiteral:    "Int",
	TokenFn:         "Fn",
	TokenLet:        "Let",
	TokenReturn:     "Return",
	TokenIf:         "If",
	TokenElse:       "Else",
	TokenTrue:       "True",
	TokenFalse:      "False",
	TokenExtern:     "Extern",
	TokenAnd:        "And",
	TokenOr:         "Or",
	TokenNot:        "Not",
	TokenSemicolon:  "Semicolon",
	TokenColon:      "Colon",
	TokenComma:      "Comma",
	TokenLParen:     "LParen",
	TokenRParen:     "RParen",
	TokenLBrace:     "LBrace",
	TokenRBrace:     "RBrace",
	TokenLBracket:   "LBracket",
	TokenRBracket:   "RBracket",
	TokenEq:         "Eq",
	TokenEqEq:       "EqEq",
	TokenFatArrow:   "FatArrow",
	TokenArrow:      "Arrow",
	TokenPlus:       "Plus",
	TokenMinus:      "Minus",
	TokenStar:       "Star",
	TokenSlash:      "Slash",
	TokenPercent:    "Percent",
	TokenBang:       "Bang",
	TokenBangEq:     "BangEq",
	TokenLt:         "Lt",
	TokenLtEq:       "LtEq",
	TokenGt:         "Gt",
	TokenGtEq:       "GtEq",
	TokenAndAnd:     "AndAnd",
	TokenOrOr:       "OrOr",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "Kind(?)"
	}
	return kindNames[k]
}

// Kinds returns every token kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds)
	for k := TokenUnknown; k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}

var keywords = map[string]Kind{
	"fn":     TokenFn,
	"let":    TokenLet,
	"return": TokenReturn,
	"if":     TokenIf,
	"else":   TokenElse,
	"true":   TokenTrue,
	"false":  TokenFalse,
	"extern": TokenExtern,
	"and":    TokenAnd,
	"or":     TokenOr,
	"not":    TokenNot,
}

// NoSuffix marks an integer literal without a type suffix.
const NoSuffix = -1

// Token carries no text. Its lexeme is recovered by slicing the source with
// the accompanying span.
type Token struct {
	Kind Kind
	// Suffix is the byte offset inside a literal's lexeme where its type
	// suffix starts, or NoSuffix.
	Suffix int
}

type Spanned struct {
	Token
	Span source.Span
}

// SplitLiteral splits an integer literal lexeme into its digit run and its
// type suffix. The suffix is empty when suffix is NoSuffix.
func SplitLiteral(lexeme string, suffix int) (digits string, ty string) {
	if suffix == NoSuffix || suffix < 0 || suffix > len(lexeme) {
		return lexeme, ""
	}
	return lexeme[:suffix], lexeme[suffix:]
}
