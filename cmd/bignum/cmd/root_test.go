package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gopkg.in/yaml.v3"

	"github.com/linal-sdk/bignum"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd := newRootCmd(&options{})
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestEval(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"eval", "--precision", "5", "+ 1 / 1 3"}, "1.33333\n"},
		{[]string{"eval", "--precision", "3", "--exact", "/ 1 3"}, "1/3\n0.333\n"},
		{[]string{"eval", "--exact", "* 2 3"}, "6\n"},
		{[]string{"eval", "1", "2"}, "1\n2\n"},
		{[]string{"eval", "--precision", "4", "--eps", "1/1000000", "sqrt 2"}, "1.4142\n"},
		{[]string{"eval", "--precision", "2", "--eps", "1/1000", "pi"}, "3.14\n"},
	}
	for _, tt := range tests {
		got, _, err := execute(t, tt.args...)
		require.NoError(t, err, "eval(%q)", tt.args)
		assert.Equal(t, tt.want, got, "eval(%q)", tt.args)
	}
}

func TestEval_YAML(t *testing.T) {
	got, _, err := execute(t, "eval", "--format", "yaml", "--exact", "/ 1 4")
	require.NoError(t, err)

	var res result
	require.NoError(t, yaml.Unmarshal([]byte(got), &res))
	assert.Equal(t, result{Input: "/ 1 4", Exact: "1/4", Decimal: "0.25"}, res)
}

func TestEval_Errors(t *testing.T) {
	_, _, err := execute(t, "eval", "/ 1 0")
	require.ErrorIs(t, err, bignum.ErrZeroDivision)

	_, _, err = execute(t, "eval", "sqrt -1")
	require.ErrorIs(t, err, bignum.ErrDomain)

	_, _, err = execute(t, "eval")
	require.Error(t, err)

	_, _, err = execute(t, "eval", "--format", "json", "1")
	require.Error(t, err)

	_, _, err = execute(t, "eval", "--eps=-1/10", "1")
	require.Error(t, err)
}

func TestEval_Verbose(t *testing.T) {
	_, logs, err := execute(t, "eval", "--verbose", "--no-color", "+ 2 2")
	require.NoError(t, err)
	assert.Contains(t, logs, "DBG evaluated")
	assert.Contains(t, logs, "expr=")

	_, logs, err = execute(t, "eval", "+ 2 2")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestEval_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bignum.toml")
	content := `
[math]
epsilon = "1/1000"
precision = 3

[output]
format = "yaml"
color = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	got, _, err := execute(t, "eval", "--config", path, "/ 2 3")
	require.NoError(t, err)
	var res result
	require.NoError(t, yaml.Unmarshal([]byte(got), &res))
	assert.Equal(t, result{Input: "/ 2 3", Decimal: "0.666"}, res)

	got, _, err = execute(t, "eval", "--config", path, "--format", "text", "--precision", "1", "/ 2 3")
	require.NoError(t, err)
	assert.Equal(t, "0.6\n", got)

	_, _, err = execute(t, "eval", "--config", filepath.Join(t.TempDir(), "missing.toml"), "1")
	require.Error(t, err)
}

func TestPi(t *testing.T) {
	got, _, err := execute(t, "pi", "--eps", "1/1000000000", "--precision", "8")
	require.NoError(t, err)
	assert.Equal(t, "3.14159265\n", got)

	got, _, err = execute(t, "pi", "--format", "yaml", "--eps", "1/100", "--precision", "1")
	require.NoError(t, err)
	var res result
	require.NoError(t, yaml.Unmarshal([]byte(got), &res))
	assert.Equal(t, result{Input: "pi", Decimal: "3.1", Epsilon: "1/100"}, res)
}

func TestConvert(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"convert", "255"}, "ff\n"},
		{[]string{"convert", "--to", "2", "10"}, "1010\n"},
		{[]string{"convert", "--from", "16", "--to", "10", "ff"}, "255\n"},
		{[]string{"convert", "--from", "36", "--to", "10", "zz"}, "1295\n"},
		{[]string{"convert", "--to", "16", "--", "-256"}, "-100\n"},
		{[]string{"convert", "--to", "10", "18446744073709551616"}, "18446744073709551616\n"},
	}
	for _, tt := range tests {
		got, _, err := execute(t, tt.args...)
		require.NoError(t, err, "convert(%q)", tt.args)
		assert.Equal(t, tt.want, got, "convert(%q)", tt.args)
	}

	_, _, err := execute(t, "convert", "--to", "37", "1")
	require.ErrorIs(t, err, bignum.ErrInvalidArgument)

	_, _, err = execute(t, "convert", "--from", "2", "12")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	got, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "bignum v"+Version+"\n"), got)
}

func TestPrintError(t *testing.T) {
	var b bytes.Buffer
	printError(&b, bignum.ErrDomain, false)
	assert.Equal(t, "Error: argument out of domain\n", b.String())

	b.Reset()
	printError(&b, bignum.ErrDomain, true)
	assert.Contains(t, b.String(), "\x1b[")
}
