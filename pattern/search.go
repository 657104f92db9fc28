package pattern

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"gitlab.com/stephen-fox/cyclic/conv"
)

// FindOffset returns the index of the first occurrence of needle in
// haystack. If reversed is true, the needle's bytes are reversed
// before searching. The second return value is false if the
// needle was not found.
func FindOffset(needle string, haystack string, reversed bool) (int, bool) {
	if reversed {
		needle = Reverse(needle)
	}

	if len(haystack) == 0 {
		return 0, len(needle) == 0
	}

	for i := 0; i < len(haystack); i++ {
		if strings.HasPrefix(haystack[i:], needle) {
			return i, true
		}
	}

	return 0, false
}

// Reverse returns s with its bytes in reverse order.
func Reverse(s string) string {
	b := make([]byte, len(s))

	for i := range s {
		b[len(s)-1-i] = s[i]
	}

	return string(b)
}

// LocateConfig configures Locate.
type LocateConfig struct {
	// Length is the length of the pattern to search.
	Length int

	// Fragment is the string to find in the pattern.
	Fragment string

	// Hex indicates that Fragment is hex-encoded. Fragments
	// starting with "0x" or "0X" are always treated as
	// hex-encoded.
	Hex bool

	// OptLogger logs the decoded fragment and each search
	// attempt if specified.
	OptLogger *log.Logger
}

// Location is the result of Locate.
type Location struct {
	// Fragment is the fragment that was searched for. If the
	// fragment was hex-encoded, this is the decoded string.
	Fragment string

	// Found is true if the fragment, or its reversed form,
	// occurs in the pattern.
	Found bool

	// Reversed is true if only the reversed fragment was found.
	Reversed bool

	// Offset is the index of the first occurrence in the pattern.
	Offset int
}

// String returns a human-readable description of the Location.
func (o Location) String() string {
	switch {
	case !o.Found:
		return fmt.Sprintf("\"%s\" not found", o.Fragment)
	case o.Reversed:
		return fmt.Sprintf("Reversed pattern \"%s\" found at offset %d",
			Reverse(o.Fragment), o.Offset)
	default:
		return fmt.Sprintf("\"%s\" found at offset %d", o.Fragment, o.Offset)
	}
}

// Locate finds a fragment in a pattern of config.Length characters.
// The fragment is searched for as-is first. If that fails, the
// fragment is reversed and searched for again, which finds fragments
// copied from little endian memory.
//
// Not finding the fragment is not an error. A *LengthError is returned
// for an unsupported length, a conv.ErrInvalidHex error for a malformed
// hex fragment, and a *conv.EncodingError when a hex fragment does not
// decode to an ASCII string.
func Locate(config LocateConfig) (Location, error) {
	gen := &Generator{
		OptLogger: config.OptLogger,
	}

	haystack, err := gen.Create(config.Length)
	if err != nil {
		return Location{}, err
	}

	fragment := config.Fragment

	if config.Hex || conv.HasHexPrefix(fragment) {
		fragment, err = conv.HexToASCII(fragment)
		if err != nil {
			var encodingErr *conv.EncodingError
			if errors.As(err, &encodingErr) {
				return Location{}, err
			}

			return Location{}, fmt.Errorf("failed to hex decode fragment - %w", err)
		}

		if config.OptLogger != nil {
			config.OptLogger.Printf("decoded hex fragment %q to %q",
				config.Fragment, fragment)
		}
	}

	loc := Location{
		Fragment: fragment,
	}

	for _, reversed := range []bool{false, true} {
		if config.OptLogger != nil {
			config.OptLogger.Printf("searching for fragment (reversed: %t)", reversed)
		}

		offset, found := FindOffset(fragment, haystack, reversed)
		if found {
			loc.Found = true
			loc.Reversed = reversed
			loc.Offset = offset

			return loc, nil
		}
	}

	return loc, nil
}
