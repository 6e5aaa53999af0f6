package grammar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"

	"toylang/internal/diag"
	toylexer "toylang/internal/lexer"
	"toylang/internal/source"
)

// mapError converts a participle failure into one of the four parse
// diagnostics. The classification is driven by the offending token.
func mapError(err error) error {
	var ute *participle.UnexpectedTokenError
	if errors.As(err, &ute) {
		tok := ute.Unexpected
		span := source.Span{Offset: tok.Pos.Offset, Len: len(tok.Value)}
		raw, hasExpected := expectation(ute.Message())
		expected := expectedTokens(raw)
		if tok.EOF() {
			span.Len = 0
			return &diag.Error{Code: diag.UnexpectedEndOfInput, Span: span, Msg: "unexpected end of input", Expected: expected}
		}
		if k, ok := KindOf(tok.Type); ok && k == toylexer.TokenUnknown {
			return diag.Errorf(diag.InvalidToken, span, "invalid token %q", tok.Value)
		}
		if !hasExpected {
			return diag.Errorf(diag.ExtraToken, span, "extra token %q", tok.Value)
		}
		return &diag.Error{Code: diag.UnexpectedToken, Span: span, Msg: fmt.Sprintf("unexpected token %q", tok.Value), Expected: expected}
	}
	var perr participle.Error
	if errors.As(err, &perr) {
		pos := perr.Position()
		return diag.Errorf(diag.UnexpectedToken, source.Span{Offset: pos.Offset}, "%s", perr.Message())
	}
	return diag.Errorf(diag.UnexpectedToken, source.Span{}, "%v", err)
}

// expectation extracts the grammar fragment participle reports after
// "(expected ...)".
func expectation(msg string) (string, bool) {
	const marker = " (expected "
	i := strings.Index(msg, marker)
	if i < 0 || !strings.HasSuffix(msg, ")") {
		return "", false
	}
	exp := msg[i+len(marker) : len(msg)-1]
	return exp, exp != ""
}

// expectedTokens reduces a grammar fragment to the token it starts with. A
// fragment that starts with a production names no single token and yields
// nothing.
func expectedTokens(fragment string) []string {
	fields := strings.Fields(fragment)
	if len(fields) == 0 {
		return nil
	}
	first := strings.TrimLeft(fields[0], "(")
	first = strings.TrimRight(first, "?*+)|")
	if strings.HasPrefix(first, `"`) && strings.HasSuffix(first, `"`) && len(first) > 2 {
		return []string{first}
	}
	if _, ok := symbols[first]; ok && first != "EOF" {
		return []string{first}
	}
	return nil
}
