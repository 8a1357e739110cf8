package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/linal-sdk/bignum/internal/expr"
)

func newEvalCmd(opts *options) *cobra.Command {
	var exact bool
	cmd := &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Evaluate prefix expressions",
		Long: `Evaluate one or more expressions in prefix notation.
Each argument is a separate expression.`,
		Example: `  bignum eval "+ 1 / 1 3"
  bignum eval --exact "root 3 + 20 7"
  bignum eval --eps 1/1000000000000 "* 4 atan 1"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eps, err := opts.epsilon()
			if err != nil {
				return err
			}
			e := expr.Evaluator{Eps: eps}
			for _, input := range args {
				start := time.Now()
				r, err := e.Eval(input)
				if err != nil {
					return err
				}
				opts.logger.Debug().
					Str("expr", input).
					Stringer("eps", eps).
					Dur("duration", time.Since(start)).
					Msg("evaluated")
				if err := opts.render(cmd.OutOrStdout(), opts.newResult(input, r, exact)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&exact, "exact", false, "also print the exact fraction")
	return cmd
}
