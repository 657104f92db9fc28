package pattern

import (
	"bytes"
	"fmt"
	"io"
	"log"
)

// Generator creates cyclic pattern strings. A pattern is built from
// fixed-size blocks, where each block is one character per class of
// the length's Tier. The characters are addressed by treating the
// block number as a mixed-radix number, which keeps every block
// within a tier unique without searching for duplicates.
//
// Patterns are deterministic: the same length always results in
// the same pattern. Within a tier, a shorter pattern is a prefix
// of a longer one.
//
// The zero value is ready to use.
type Generator struct {
	// OptLogger logs the tier used to create each pattern
	// if specified.
	OptLogger *log.Logger
}

// Create calls Generator.Create using the zero value Generator.
func Create(length int) (string, error) {
	return (&Generator{}).Create(length)
}

// CreateOrExit calls Create and calls DefaultExitFn if an error occurs.
func CreateOrExit(length int) string {
	str, err := Create(length)
	if err != nil {
		DefaultExitFn(fmt.Errorf("pattern: failed to create pattern - %w", err))
	}

	return str
}

// Create returns a pattern string of exactly length characters.
// A *LengthError is returned if length is outside the range
// MinLength...MaxLength.
func (o *Generator) Create(length int) (string, error) {
	b, err := o.create(length)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// WriteTo writes a pattern string of the specified length to w.
func (o *Generator) WriteTo(w io.Writer, length int) error {
	b, err := o.create(length)
	if err != nil {
		return err
	}

	_, err = io.Copy(w, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("failed to write pattern - %w", err)
	}

	return nil
}

func (o *Generator) create(length int) ([]byte, error) {
	tier, err := TierFor(length)
	if err != nil {
		return nil, err
	}

	width := tier.Width()

	if o.OptLogger != nil {
		o.OptLogger.Printf("creating %d byte pattern using %d byte blocks of tier %d...%d",
			length, width, tier.Min, tier.Max)
	}

	// Reserve room for the final block. It is truncated
	// once the pattern is complete.
	result := make([]byte, 0, length+width)

	for len(result) < length {
		result = tier.block(result, len(result)/width)
	}

	return result[:length], nil
}
