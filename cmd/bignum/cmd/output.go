package cmd

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/linal-sdk/bignum"
	"github.com/linal-sdk/bignum/internal/config"
)

// result is a single rendered value
type result struct {
	Input   string `yaml:"input"`
	Exact   string `yaml:"exact,omitempty"`
	Decimal string `yaml:"decimal,omitempty"`
	Text    string `yaml:"text,omitempty"`
	Epsilon string `yaml:"epsilon,omitempty"`
}

// newResult renders r with the configured precision
func (o *options) newResult(input string, r bignum.Rational, exact bool) result {
	res := result{
		Input:   input,
		Decimal: r.DecimalString(o.cfg.Prec()),
	}
	if exact {
		res.Exact = r.String()
	}
	return res
}

// render writes res in the configured output format
func (o *options) render(w io.Writer, res result) error {
	if o.cfg.Output.Format == config.FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	}
	if res.Exact != "" && res.Exact != res.Decimal {
		fmt.Fprintln(w, res.Exact)
	}
	if res.Decimal != "" {
		fmt.Fprintln(w, res.Decimal)
	}
	if res.Text != "" {
		fmt.Fprintln(w, res.Text)
	}
	return nil
}
