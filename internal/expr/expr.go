// Package expr evaluates arithmetic expressions over exact rationals.
//
// Expressions are written in prefix (Polish) notation, with tokens
// separated by whitespace:
//
//	sqrt 2
//	root 3 + 20 7
//	log2 * 8 8
//	neg / pi 4
package expr

import (
	"fmt"
	"strings"

	"github.com/linal-sdk/bignum"
)

// Evaluator evaluates prefix expressions.
// Transcendental functions are computed with the absolute error Eps;
// a zero Eps means [bignum.DefaultEpsilon].
type Evaluator struct {
	Eps bignum.Rational
}

type unaryFunc func(x, eps bignum.Rational) (bignum.Rational, error)

var unary = map[string]unaryFunc{
	"sin":   bignum.Rational.Sin,
	"cos":   bignum.Rational.Cos,
	"tan":   bignum.Rational.Tan,
	"cot":   bignum.Rational.Cot,
	"sec":   bignum.Rational.Sec,
	"csc":   bignum.Rational.Csc,
	"asin":  bignum.Rational.Asin,
	"acos":  bignum.Rational.Acos,
	"atan":  bignum.Rational.Atan,
	"acot":  bignum.Rational.Acot,
	"asec":  bignum.Rational.Asec,
	"acsc":  bignum.Rational.Acsc,
	"sqrt":  bignum.Rational.Sqrt,
	"log":   bignum.Rational.Log,
	"log2":  bignum.Rational.Log2,
	"log10": bignum.Rational.Log10,
	"neg": func(x, _ bignum.Rational) (bignum.Rational, error) {
		return x.Neg(), nil
	},
	"abs": func(x, _ bignum.Rational) (bignum.Rational, error) {
		return x.Abs(), nil
	},
}

// Eval evaluates the expression in input.
func (e Evaluator) Eval(input string) (bignum.Rational, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return bignum.Rational{}, fmt.Errorf("parsing tokens: %w", err)
	}
	stack, err := e.processTokens(tokens)
	if err != nil {
		return bignum.Rational{}, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return bignum.Rational{}, fmt.Errorf("post-processed stack contains %v, expected exactly one item", stack)
	}
	return stack[0], nil
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no tokens")
	}
	return tokens, nil
}

// processTokens scans the tokens from right to left, so every operator
// finds its operands on top of the stack.
func (e Evaluator) processTokens(tokens []string) ([]bignum.Rational, error) {
	stack := make([]bignum.Rational, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := strings.ToLower(tokens[i])
		switch token {
		case "+", "-", "*", "/", "^", "root":
			stack, err = e.processOperator(stack, token)
		case "pi":
			stack, err = e.processConstant(stack)
		default:
			if f, ok := unary[token]; ok {
				stack, err = e.processFunction(stack, token, f)
			} else {
				stack, err = processOperand(stack, token)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", tokens[i], err)
		}
	}
	return stack, nil
}

func (e Evaluator) processOperator(stack []bignum.Rational, token string) ([]bignum.Rational, error) {
	if len(stack) < 2 {
		return nil, fmt.Errorf("not enough operands")
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result bignum.Rational
	var err error
	switch token {
	case "+":
		result = left.Add(right)
	case "-":
		result = left.Sub(right)
	case "*":
		result = left.Mul(right)
	case "/":
		result, err = left.Quo(right)
	case "^":
		result, err = power(left, right)
	case "root":
		result, err = root(left, right, e.Eps)
	}
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%s %s %s\": %w", token, left, right, err)
	}
	return append(stack, result), nil
}

// power raises x to an integer exponent that fits into int.
func power(x, exp bignum.Rational) (bignum.Rational, error) {
	n, ok := exp.Trunc().Int64()
	if !exp.IsInt() || !ok || int64(int(n)) != n {
		return bignum.Rational{}, fmt.Errorf("exponent %v: %w", exp, bignum.ErrInvalidArgument)
	}
	return x.Pow(int(n))
}

// root computes the index-th root of x; the index must be an integer.
func root(index, x, eps bignum.Rational) (bignum.Rational, error) {
	n, ok := index.Trunc().Int64()
	if !index.IsInt() || !ok || int64(int(n)) != n {
		return bignum.Rational{}, fmt.Errorf("root index %v: %w", index, bignum.ErrInvalidArgument)
	}
	return x.Root(int(n), eps)
}

func (e Evaluator) processFunction(stack []bignum.Rational, token string, f unaryFunc) ([]bignum.Rational, error) {
	if len(stack) < 1 {
		return nil, fmt.Errorf("not enough operands")
	}
	arg := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	result, err := f(arg, e.Eps)
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%s %s\": %w", token, arg, err)
	}
	return append(stack, result), nil
}

func (e Evaluator) processConstant(stack []bignum.Rational) ([]bignum.Rational, error) {
	p, err := bignum.Pi(e.Eps)
	if err != nil {
		return nil, err
	}
	return append(stack, p), nil
}

func processOperand(stack []bignum.Rational, token string) ([]bignum.Rational, error) {
	r, err := bignum.ParseRational(token)
	if err != nil {
		return nil, err
	}
	return append(stack, r), nil
}
