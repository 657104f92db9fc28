// Package conv converts between the string encodings used on the command line.
package conv

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidHex is returned when a hex string contains
	// a non-hexadecimal character.
	ErrInvalidHex = errors.New("invalid hex string")

	// ErrNotASCII is returned when decoded data is not ASCII.
	ErrNotASCII = errors.New("data is not ascii")
)

// EncodingError is returned when hex-decoded data cannot be
// represented as a string in the requested encoding.
type EncodingError struct {
	// Hex is the original hex string.
	Hex string

	// Err is the reason the data could not be represented.
	Err error
}

func (o *EncodingError) Error() string {
	return fmt.Sprintf("%s is not a valid hex representation - %s", o.Hex, o.Err)
}

func (o *EncodingError) Unwrap() error {
	return o.Err
}

// HasHexPrefix returns true if s starts with "0x" or "0X".
func HasHexPrefix(s string) bool {
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

// HexToBytes decodes a hex string such as "0x68656c6c6f" or "DEADbeef".
// The "0x" prefix is optional and case does not matter. A string
// with an odd number of digits is treated as if it had a leading
// zero (e.g., "0x414" decodes to 0x04, 0x14).
func HexToBytes(s string) ([]byte, error) {
	digits := strings.ToLower(s)
	digits = strings.TrimPrefix(digits, "0x")

	if len(digits)%2 != 0 {
		digits = "0" + digits
	}

	result := make([]byte, 0, len(digits)/2)

	for i := 0; i < len(digits); i += 2 {
		pair := digits[i : i+2]

		b, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w - contains %q which is not hexadecimal",
				ErrInvalidHex, pair)
		}

		result = append(result, byte(b))
	}

	return result, nil
}

// HexToASCII decodes a hex string using HexToBytes and returns the
// result as a string. A *EncodingError wrapping ErrNotASCII is
// returned if any decoded byte is outside the ASCII range.
func HexToASCII(s string) (string, error) {
	b, err := HexToBytes(s)
	if err != nil {
		return "", err
	}

	for _, c := range b {
		if c > 0x7f {
			return "", &EncodingError{Hex: s, Err: ErrNotASCII}
		}
	}

	return string(b), nil
}

// EscapeBytes formats each byte in b as a C-style "\xHH" escape
// sequence using lowercase hex digits.
func EscapeBytes(b []byte) string {
	var sb strings.Builder

	sb.Grow(len(b) * 4)

	for _, c := range b {
		fmt.Fprintf(&sb, "\\x%02x", c)
	}

	return sb.String()
}
