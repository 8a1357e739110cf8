package cmd

import (
	"github.com/spf13/cobra"

	"github.com/linal-sdk/bignum"
)

func newPiCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "pi",
		Short: "Print an approximation of pi",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eps, err := opts.epsilon()
			if err != nil {
				return err
			}
			p, err := bignum.Pi(eps)
			if err != nil {
				return err
			}
			opts.logger.Debug().Stringer("eps", eps).Int("bits", p.Denom().BitLen()).Msg("computed pi")
			res := opts.newResult("pi", p, false)
			res.Epsilon = eps.String()
			return opts.render(cmd.OutOrStdout(), res)
		},
	}
}
