package field

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, test := range []struct {
		in   string
		want Element
	}{
		{"5", 5},
		{"+5", 5},
		{"+05", 5},
		{"16909060", 16909060},
		{"18446744073709551615", 18446744073709551615},
		{"0x05", 5},
		{"0x01020304", 16909060},
		{"0X0102", 258},
		{"0x0001", 1},
		{"0xffffffffffffffff", 18446744073709551615},
		{"0x00ffffffffffffffff", 18446744073709551615},
		{"0x000000000000000000000005", 5},
		{"0x000000000000000000", 0},
		{"05", 5},
		{"0100401404", 16909060},
		{"00", 0},
		{"01777777777777777777777", 18446744073709551615},
	} {
		got, err := Parse(test.in)
		require.NoError(t, err, "in=%q", test.in)
		assert.Equal(t, test.want, got, "in=%q", test.in)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"abc",
		"12x",
		"-5",
		"+",
		"++5",
		"18446744073709551616", // decimal overflow
		"+18446744073709551616",
		"0x",                   // no digits
		"0x1",                  // odd digit count
		"0x001",                // odd digit count
		"0xgg",                 // bad digits
		"0x010203040506070809",   // overflows 64 bits
		"0x00010203040506070809", // overflows 64 bits behind a zero byte
		"0",                    // octal with no digits
		"099",                  // bad octal digit
		"02000000000000000000000", // octal overflow
	} {
		got, err := Parse(in)
		require.Error(t, err, "in=%q", in)
		assert.Equal(t, Element(0), got, "in=%q", in)

		var perr *ParseError
		require.True(t, errors.As(err, &perr), "in=%q", in)
		assert.Equal(t, in, perr.Literal, "in=%q", in)
	}
}

// The same value must parse identically from its decimal, hex and octal
// spellings. Hex digits are padded to an even count.
func TestParseBaseEquivalence(t *testing.T) {
	for _, v := range []uint64{1, 5, 255, 256, 16909060, 1<<63 - 1, 18446744073709551615} {
		dec := strconv.FormatUint(v, 10)
		hex := strconv.FormatUint(v, 16)
		if len(hex)%2 != 0 {
			hex = "0" + hex
		}
		oct := "0" + strconv.FormatUint(v, 8)

		fromDec, err := Parse(dec)
		require.NoError(t, err)
		fromHex, err := Parse("0x" + hex)
		require.NoError(t, err)
		fromOct, err := Parse(oct)
		require.NoError(t, err)

		what := fmt.Sprintf("v=%d", v)
		assert.Equal(t, Element(v), fromDec, what)
		assert.Equal(t, fromDec, fromHex, what)
		assert.Equal(t, fromDec, fromOct, what)
	}
}

func TestParseOddHexAlwaysFails(t *testing.T) {
	for _, in := range []string{"0x1", "0x123", "0x12345", "0X1"} {
		_, err := Parse(in)
		assert.Error(t, err, "in=%q", in)
	}
	// the even-length spellings of the same values parse
	for _, in := range []string{"0x01", "0x0123", "0x012345", "0X01"} {
		_, err := Parse(in)
		assert.NoError(t, err, "in=%q", in)
	}
}
