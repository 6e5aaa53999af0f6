package types

import (
	"strconv"
	"strings"
)

// Pointer-sized integers follow a 64-bit target.
func bitWidth(k Kind) int {
	switch k {
	case TyI8, TyU8:
		return 8
	case TyI16, TyU16:
		return 16
	case TyI32, TyU32:
		return 32
	}
	return 64
}

// Fits reports whether the integer mag, negated when neg is set, fits in t.
// Unsettled literals fit until they are given a concrete type.
func Fits(t Type, mag uint64, neg bool) bool {
	if t.K == TyIntLit {
		return true
	}
	if !t.IsInteger() {
		return false
	}
	w := bitWidth(t.K)
	if t.IsSigned() {
		max := uint64(1)<<uint(w-1) - 1
		if neg {
			return mag <= max+1
		}
		return mag <= max
	}
	if neg {
		return mag == 0
	}
	if w == 64 {
		return true
	}
	return mag <= uint64(1)<<uint(w)-1
}

// ParseDigits parses a literal digit run. Underscores are ignored.
func ParseDigits(digits string) (uint64, bool) {
	clean := strings.ReplaceAll(digits, "_", "")
	if clean == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(clean, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
