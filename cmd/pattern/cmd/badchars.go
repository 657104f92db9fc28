package cmd

import (
	"github.com/spf13/cobra"
	"gitlab.com/stephen-fox/cyclic/badchars"
	"gitlab.com/stephen-fox/cyclic/conv"
)

func newBadcharsCommand(verbose *bool) *cobra.Command {
	var exclude string

	badcharsCmd := &cobra.Command{
		Use:   "badchars",
		Short: "Generate a string of potential bad characters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			excluded := badchars.ParseExcluded(exclude,
				optVerboseLogger(cmd, *verbose))

			err := writeLine(cmd.OutOrStdout(),
				`Excluded bytes: "`+conv.EscapeBytes(excluded.Sorted())+`"`)
			if err != nil {
				return err
			}

			return writeLine(cmd.OutOrStdout(),
				conv.EscapeBytes(badchars.Complement(excluded)))
		},
	}

	badcharsCmd.Flags().StringVarP(&exclude, "exclude", "e", "",
		`bytes to exclude, in mona style (e.g. \x09\x23\xa0) or separated by spaces (e.g. "09 23 a0")`)

	return badcharsCmd
}
