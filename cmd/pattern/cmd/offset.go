package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"gitlab.com/stephen-fox/cyclic/conv"
	"gitlab.com/stephen-fox/cyclic/pattern"
)

func newOffsetCommand(verbose *bool) *cobra.Command {
	var length int
	var isHex bool

	offsetCmd := &cobra.Command{
		Use:   "offset <subpattern>",
		Short: "Locate a subpattern inside a pattern of specified length",
		Long: `Locate a subpattern inside a pattern of specified length.

If the subpattern is not found, its reverse is searched for. This finds
fragments that were read from little endian memory (e.g., a register
value). Subpatterns starting with "0x" are always hex-decoded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := pattern.Locate(pattern.LocateConfig{
				Length:    length,
				Fragment:  args[0],
				Hex:       isHex,
				OptLogger: optVerboseLogger(cmd, *verbose),
			})

			var encodingErr *conv.EncodingError
			switch {
			case errors.As(err, &encodingErr):
				return writeLine(cmd.OutOrStdout(),
					args[0]+" is not a valid hex representation of an ASCII string")
			case err != nil:
				return err
			}

			return writeLine(cmd.OutOrStdout(), loc.String())
		},
	}

	offsetCmd.Flags().IntVar(&length, lengthFlag, 0,
		"length of generated pattern")
	offsetCmd.Flags().BoolVar(&isHex, "hex", false,
		"supplied subpattern is a hex string rather than ASCII")

	offsetCmd.MarkFlagRequired(lengthFlag)

	return offsetCmd
}
