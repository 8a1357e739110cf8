/*
Package bignum implements immutable arbitrary-precision integers and exact
rational numbers, together with transcendental functions evaluated to a
caller-specified precision.

# Representation

[Integer] stores a signed value of unbounded magnitude as a little-endian
slice of 64-bit words in two's-complement encoding.
The top bit of the most significant word is the sign, there is no separate
sign flag.
The encoding is canonical, which means no most significant word is redundant:

  - the top word is never 0 while the sign bit of the word below it is 0;
  - the top word is never all ones while the sign bit of the word below it is 1.

The value 0 is an empty slice, so the zero value of [Integer] is 0.

[Rational] is a pair of Integers kept in lowest terms.
The numerator is never negative and the denominator carries the sign:

	-3/4 is stored as numerator 3, denominator -4.

The zero value of [Rational] is 0.

# Conversions

The package provides methods for converting values:

  - from/to string:
    [ParseInteger], [Integer.String], [Integer.Text],
    [ParseRational], [Rational.String], [Rational.DecimalString].
  - from/to int64:
    [NewInteger], [Integer.Int64], [NewRationalFromInt64].
  - from/to words and bytes:
    [NewIntegerFromWords], [Integer.Words],
    [NewIntegerFromBytes], [Integer.Bytes].
  - to float64:
    [Rational.Float64].

Both types implement text, SQL and CBOR encodings.
Integers that do not fit into int64 are encoded as CBOR bignums (tags 2 and 3),
rationals as CBOR tag 30.

# Operations

Integer arithmetic is exact.
Multiplication uses the schoolbook method on 32-bit half-words for short
operands and the Karatsuba method for long ones.
Division is Euclidean: [Integer.QuoRem] returns a remainder that is never
negative, for every combination of signs.

Rational arithmetic is exact as well.
Every result is reduced by the greatest common divisor of its numerator
and denominator.

# Transcendental functions

Trigonometric, inverse trigonometric, logarithmic and root functions are
methods of [Rational] that take an epsilon.
They are evaluated by convergent series or Newton iteration, and their
absolute error is less than epsilon.
A zero epsilon means [DefaultEpsilon].

  - trigonometric:
    [Rational.Sin], [Rational.Cos], [Rational.Tan],
    [Rational.Cot], [Rational.Sec], [Rational.Csc].
  - inverse trigonometric:
    [Rational.Asin], [Rational.Acos], [Rational.Atan],
    [Rational.Acot], [Rational.Asec], [Rational.Acsc].
  - roots:
    [Rational.Sqrt], [Rational.Root].
  - logarithms:
    [Rational.Log], [Rational.Log2], [Rational.Log10].

[Pi] and the natural logarithm of 2 are cached by epsilon for the lifetime
of the process.
Pi evaluates the two arctangents of Machin's formula concurrently.

# Errors

All methods are pure and, except for [Integer.Text] with an unsupported base
and the Must variants, panic-free.
Errors are returned in the following cases:

  - Invalid Argument ([ErrInvalidArgument]).
    Malformed strings, unsupported bases, zero denominators,
    negative epsilons and a zero root index.

  - Division by Zero ([ErrZeroDivision]).
    [Integer.QuoRem], [Rational.Quo] and [Rational.Inv] do not panic when
    dividing by 0.
    Instead, they return an error.

  - Mathematical Uncertainty ([ErrMathematicalUncertainty]).
    The indeterminate form 0 / 0 in [Integer.QuoRem].
    Rational division by 0 is always a division by zero, even for 0 / 0.

  - Domain Error ([ErrDomain]).
    Logarithms of non-positive values, even roots of negative values,
    arcsine and arccosine outside [-1, 1], tangent at its poles.
*/
package bignum
