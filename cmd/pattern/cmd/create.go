package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"gitlab.com/stephen-fox/cyclic/pattern"
)

func newCreateCommand(verbose *bool) *cobra.Command {
	var length int

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create pattern of specified length",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, length, optVerboseLogger(cmd, *verbose))
		},
	}

	createCmd.Flags().IntVar(&length, lengthFlag, 0,
		"length of generated pattern")

	createCmd.MarkFlagRequired(lengthFlag)

	return createCmd
}

func runCreate(cmd *cobra.Command, length int, optLogger *log.Logger) error {
	gen := &pattern.Generator{
		OptLogger: optLogger,
	}

	str, err := gen.Create(length)
	if err != nil {
		return err
	}

	return writeLine(cmd.OutOrStdout(), str)
}
