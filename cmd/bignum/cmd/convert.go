package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linal-sdk/bignum"
)

func newConvertCmd(opts *options) *cobra.Command {
	var from, to int
	cmd := &cobra.Command{
		Use:     "convert <integer>",
		Short:   "Convert an integer between bases",
		Example: `  bignum convert --from 16 --to 2 ff`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if to < 2 || to > 36 {
				return fmt.Errorf("target base %v: %w", to, bignum.ErrInvalidArgument)
			}
			x, err := bignum.ParseInteger(args[0], from)
			if err != nil {
				return err
			}
			opts.logger.Debug().Int("from", from).Int("to", to).Int("bits", x.BitLen()).Msg("converting")
			return opts.render(cmd.OutOrStdout(), result{Input: args[0], Text: x.Text(to)})
		},
	}
	cmd.Flags().IntVar(&from, "from", 10, "base of the input")
	cmd.Flags().IntVar(&to, "to", 16, "base of the output")
	return cmd
}
