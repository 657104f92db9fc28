package pattern

import (
	"errors"
	"fmt"
)

// Character classes used as the digits of a pattern block.
//
// The lowercase class intentionally contains 'z' in place of 'j'.
// Existing patterns were generated with it, so changing it would
// move offsets.
const (
	Digits    = "0123456789"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghizklmnopqrstuvwxyz"
	Symbols   = "!@#$%^&*()_+-={}[]:;<>?,./~"
)

const (
	// MinLength is the shortest pattern length.
	MinLength = 0

	// MaxLength is the longest pattern length.
	MaxLength = 730080
)

// ErrLengthOutOfRange is returned when no tier covers a pattern length.
var ErrLengthOutOfRange = errors.New("invalid length")

// LengthError describes a pattern length that no tier covers.
type LengthError struct {
	Length int
}

func (o *LengthError) Error() string {
	return fmt.Sprintf("invalid length %d - length must be in the range %d...%d",
		o.Length, MinLength, MaxLength)
}

func (o *LengthError) Unwrap() error {
	return ErrLengthOutOfRange
}

// Tier maps a range of pattern lengths to the character classes that
// make up one block and the function that derives each class's index
// from a block number.
type Tier struct {
	// Min and Max are the inclusive length bounds.
	Min int
	Max int

	// Classes is ordered in the same way as the indices
	// returned by Indices.
	Classes []string

	// Indices derives one index per class from a block number.
	Indices func(block int) []int
}

// Width returns the number of characters in one block.
func (o Tier) Width() int {
	return len(o.Classes)
}

// Contains returns true if length falls within the tier's bounds.
func (o Tier) Contains(length int) bool {
	return length >= o.Min && length <= o.Max
}

// block appends the characters of block number n to dst.
func (o Tier) block(dst []byte, n int) []byte {
	indices := o.Indices(n)

	for i, class := range o.Classes {
		dst = append(dst, class[indices[i]%len(class)])
	}

	return dst
}

// The bounds of the third and fourth tier both contain 20280. Tiers
// are matched in order, so the third tier wins.
var tiers = []Tier{
	{
		Min:     0,
		Max:     10,
		Classes: []string{Digits},
		Indices: func(b int) []int {
			return []int{b % 10}
		},
	},
	{
		Min:     11,
		Max:     520,
		Classes: []string{Uppercase, Digits},
		Indices: func(b int) []int {
			return []int{(b / 10) % 26, b % 10}
		},
	},
	{
		Min:     521,
		Max:     20280,
		Classes: []string{Uppercase, Lowercase, Digits},
		Indices: func(b int) []int {
			return []int{(b / 260) % 26, (b / 10) % 26, b % 10}
		},
	},
	{
		Min:     20280,
		Max:     MaxLength,
		Classes: []string{Uppercase, Lowercase, Symbols, Digits},
		Indices: func(b int) []int {
			return []int{(b / 6760) % 27, (b / 260) % 26, (b / 10) % 26, b % 10}
		},
	},
}

// TierFor returns the tier used to generate a pattern of the
// specified length.
func TierFor(length int) (Tier, error) {
	for _, tier := range tiers {
		if tier.Contains(length) {
			return tier, nil
		}
	}

	return Tier{}, &LengthError{Length: length}
}
