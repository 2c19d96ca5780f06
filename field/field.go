// Package field converts numeric command line literals into 64-bit field
// elements. Three literal forms are accepted: hexadecimal with a 0x/0X
// prefix and an even number of digits, octal with a bare leading 0, and
// decimal otherwise.
package field

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Element is a single field element. Values cover the full 64-bit range;
// reduction, if any, is the concern of the hash primitive consuming it.
type Element uint64

// ParseError reports a literal that could not be converted to an Element.
type ParseError struct {
	Literal string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as a field element: %v", e.Literal, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	errNoDigits = errors.New("hex literal has no digits")
	errOverflow = errors.New("value overflows 64 bits")
)

// Parse converts one literal to an Element.
//
// Hex literals must encode whole bytes, so an odd digit count is rejected
// (0x01 parses, 0x1 does not). A bare "0" selects the octal form and then
// fails for lack of digits.
func Parse(s string) (Element, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		// hexutil.Decode enforces the prefix, digit validity and the
		// even digit count in one place.
		b, err := hexutil.Decode(s)
		if err != nil {
			return 0, &ParseError{Literal: s, Err: err}
		}
		if len(b) == 0 {
			return 0, &ParseError{Literal: s, Err: errNoDigits}
		}
		// leading zero bytes don't change the value, only actual
		// overflow of 64 bits is an error
		for len(b) > 8 && b[0] == 0 {
			b = b[1:]
		}
		if len(b) > 8 {
			return 0, &ParseError{Literal: s, Err: errOverflow}
		}
		var v uint64
		for _, c := range b {
			v = v<<8 | uint64(c)
		}
		return Element(v), nil
	}
	if len(s) >= 1 && s[0] == '0' {
		v, err := strconv.ParseUint(s[1:], 8, 64)
		if err != nil {
			return 0, &ParseError{Literal: s, Err: err}
		}
		return Element(v), nil
	}
	// a single leading + is accepted on decimal literals
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64)
	if err != nil {
		return 0, &ParseError{Literal: s, Err: err}
	}
	return Element(v), nil
}
