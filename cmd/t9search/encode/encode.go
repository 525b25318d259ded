// Package encode implements `t9search encode`, which prints the keypad
// encoding of its arguments.
package encode

import (
	"fmt"

	"github.com/flarebyte/t9search/internal/t9"
	"github.com/spf13/cobra"
)

// NewCmd creates the encode command.
func NewCmd() *cobra.Command {
	var punctuation string
	cmd := &cobra.Command{
		Use:   "encode TEXT...",
		Short: "Print the keypad digits for each TEXT",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := t9.ParsePunctuation(punctuation)
			if err != nil {
				return err
			}
			enc := t9.NewEncoder(p)
			for _, a := range args {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), enc.Encode(a)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&punctuation, "punctuation", "literal", "Characters outside the keypad: literal|drop")
	return cmd
}
