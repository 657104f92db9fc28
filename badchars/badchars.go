// Package badchars generates sequences of potential bad characters.
//
// A bad character is a byte that a target program mangles or stops
// reading at (e.g., a null terminator or a newline). Sending every
// byte value except the ones already known to be bad, and comparing
// what arrives in memory, reveals the remaining bad characters.
package badchars

import (
	"log"
	"sort"
	"strconv"
	"strings"
)

const monaDelim = `\x`

// Set is a set of byte values.
type Set map[byte]struct{}

// Add adds b to the set.
func (o Set) Add(b byte) {
	o[b] = struct{}{}
}

// Contains returns true if b is in the set.
func (o Set) Contains(b byte) bool {
	_, hasIt := o[b]

	return hasIt
}

// Sorted returns the set's values in ascending order.
func (o Set) Sorted() []byte {
	result := make([]byte, 0, len(o))

	for b := range o {
		result = append(result, b)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i] < result[j]
	})

	return result
}

// ParseExcluded parses a list of hex-encoded bytes into a Set.
// The list can be written in mona style (e.g., `\x09\x23\xa0`)
// or separated by spaces (e.g., "09 23 a0"). Tokens that are not
// hexadecimal byte values are skipped. If optLogger is non-nil,
// each skipped token is logged to it.
//
// The returned Set always contains 0x00.
func ParseExcluded(list string, optLogger *log.Logger) Set {
	delim := " "
	if strings.HasPrefix(list, monaDelim) {
		delim = monaDelim
	}

	excluded := Set{0x00: {}}

	for _, token := range strings.Split(list, delim) {
		b, err := strconv.ParseUint(token, 16, 8)
		if err != nil {
			if optLogger != nil && token != "" {
				optLogger.Printf("ignoring non-hex byte token %q", token)
			}

			continue
		}

		excluded.Add(byte(b))
	}

	return excluded
}

// Complement returns, in ascending order, every byte value from
// 0x01 through 0xff that is not in excluded.
func Complement(excluded Set) []byte {
	result := make([]byte, 0, 255)

	for i := 1; i <= 0xff; i++ {
		if !excluded.Contains(byte(i)) {
			result = append(result, byte(i))
		}
	}

	return result
}
