package root

import (
	"github.com/flarebyte/t9search/cmd/t9search/encode"
	"github.com/flarebyte/t9search/cmd/t9search/run"
	"github.com/flarebyte/t9search/cmd/t9search/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for t9search. The root command itself
// runs a search.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "t9search [-s] [FILTER] [-l MAX_MISTAKES]",
		Short: "Search a phone directory with a T9 keypad filter",
		Long: "Reads \"name\" / \"number\" line pairs and prints the entries whose name or\n" +
			"number matches FILTER when typed on a phone keypad. Without FILTER every\n" +
			"entry is printed.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	run.Bind(cmd)

	cmd.AddCommand(version.VersionCmd)
	cmd.AddCommand(encode.NewCmd())

	return cmd
}

// CheckArgs validates raw arguments that cobra cannot check by itself.
func CheckArgs(args []string) error {
	return run.CheckSeparatedFirst(args)
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	if err := CheckArgs(args); err != nil {
		return err
	}
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
