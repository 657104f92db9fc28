package cmd

import (
	"io"
	"log"

	"github.com/spf13/cobra"
)

const (
	appName = "pattern"
	version = "1.0.0"

	lengthFlag = "length"
)

// Execute runs the root command. Errors are fatal.
func Execute() {
	log.SetFlags(0)

	err := NewRootCommand().Execute()
	if err != nil {
		log.Fatalln("fatal:", err)
	}
}

// NewRootCommand returns the pattern command tree. Running the root
// command with --length and no subcommand is the same as running
// the create subcommand.
func NewRootCommand() *cobra.Command {
	var verbose bool
	var length int

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Generates patterns for use in reverse engineering",
		Long: `Generates cyclic patterns for use in reverse engineering and locates
fragments of those patterns. Each substring of a pattern that is as
long as the pattern's block size occurs at most once, which makes it
possible to find the offset of data that overwrote a register or
a return address.

Examples:
  pattern create --length 200                # Print a 200 byte pattern
  pattern offset --length 200 Ab3A           # Find a fragment
  pattern offset --length 200 0x41623341     # Find a hex-encoded fragment
  pattern badchars -e '\x0a\x0d'             # Print candidate bad chars`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed(lengthFlag) {
				return cmd.Help()
			}

			return runCreate(cmd, length, optVerboseLogger(cmd, verbose))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")

	rootCmd.Flags().IntVar(&length, lengthFlag, 0,
		"length of generated pattern")

	rootCmd.AddCommand(
		newCreateCommand(&verbose),
		newOffsetCommand(&verbose),
		newBadcharsCommand(&verbose))

	return rootCmd
}

// optVerboseLogger returns a logger that writes to the command's
// stderr if verbose is true. It returns nil otherwise.
func optVerboseLogger(cmd *cobra.Command, verbose bool) *log.Logger {
	if !verbose {
		return nil
	}

	return log.New(cmd.ErrOrStderr(), "", 0)
}

func writeLine(w io.Writer, s string) error {
	_, err := io.WriteString(w, s+"\n")

	return err
}
