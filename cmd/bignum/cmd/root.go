package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/logrusorgru/aurora/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/linal-sdk/bignum"
	"github.com/linal-sdk/bignum/internal/config"
)

// options holds the persistent flags and the settings derived from them
type options struct {
	cfgFile   string
	verbose   bool
	eps       string
	precision int
	format    string
	noColor   bool

	cfg    *config.Config
	logger zerolog.Logger
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bignum",
		Short: "Exact rational calculator",
		Long: `bignum evaluates expressions over exact fractions of
arbitrary-precision integers.

Transcendental functions are computed to the configured epsilon:
  sin cos tan cot sec csc
  asin acos atan acot asec acsc
  sqrt root log log2 log10 pi`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default: built-in settings)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&opts.eps, "eps", "", "convergence threshold, e.g. 1/1000000")
	flags.IntVar(&opts.precision, "precision", 0, "digits after the decimal point")
	flags.StringVar(&opts.format, "format", "", "output format: text or yaml")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored errors")

	rootCmd.AddCommand(
		newEvalCmd(opts),
		newPiCmd(opts),
		newConvertCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the command line tool
func Execute() error {
	opts := &options{}
	rootCmd := newRootCmd(opts)
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err, opts.cfg == nil || opts.cfg.UseColor())
	}
	return err
}

// setup loads the configuration and applies flag overrides
func (o *options) setup(cmd *cobra.Command) error {
	level := zerolog.InfoLevel
	if o.verbose {
		level = zerolog.DebugLevel
	}
	o.logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        cmd.ErrOrStderr(),
		TimeFormat: time.TimeOnly,
		NoColor:    o.noColor,
	}).Level(level).With().Timestamp().Logger()

	if o.cfgFile != "" {
		cfg, err := config.Load(o.cfgFile)
		if err != nil {
			return err
		}
		o.cfg = cfg
		o.logger.Debug().Str("path", o.cfgFile).Msg("config loaded")
	} else {
		o.cfg = config.Default()
	}

	flags := cmd.Flags()
	if flags.Changed("eps") {
		o.cfg.Math.Epsilon = o.eps
	}
	if flags.Changed("precision") {
		o.cfg.Math.Precision = &o.precision
	}
	if flags.Changed("format") {
		o.cfg.Output.Format = o.format
	}
	if o.noColor {
		color := false
		o.cfg.Output.Color = &color
	}
	return o.cfg.Validate()
}

// epsilon returns the configured convergence threshold
func (o *options) epsilon() (bignum.Rational, error) {
	eps, err := o.cfg.Eps()
	if err != nil {
		return bignum.Rational{}, fmt.Errorf("epsilon: %w", err)
	}
	return eps, nil
}

func printError(w io.Writer, err error, color bool) {
	au := aurora.New(aurora.WithColors(color))
	fmt.Fprintf(w, "%s %v\n", au.Red("Error:").Bold(), err)
}
