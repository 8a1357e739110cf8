package bignum

import (
	"database/sql/driver"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// CBOR tag numbers, see RFC 8949 section 3.4.3 and the IANA registry.
const (
	cborTagPosBignum = 2
	cborTagNegBignum = 3
	cborTagRational  = 30
)

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see function [ParseInteger].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *Integer) UnmarshalText(text []byte) error {
	var err error
	*x, err = ParseInteger(string(text), 10)
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Integer.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x Integer) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (x *Integer) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*x, err = ParseInteger(value, 10)
	case []byte:
		*x, err = ParseInteger(string(value), 10)
	case int64:
		*x = NewInteger(value)
	default:
		err = fmt.Errorf("converting from %T to %T: %w", value, x, ErrInvalidArgument)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (x Integer) Value() (driver.Value, error) {
	return x.String(), nil
}

// MarshalCBOR implements the [cbor.Marshaler] interface.
// An Integer that fits into int64 is encoded as a CBOR integer,
// any other as a positive or negative bignum.
//
// [cbor.Marshaler]: https://pkg.go.dev/github.com/fxamacker/cbor/v2#Marshaler
func (x Integer) MarshalCBOR() ([]byte, error) {
	if v, ok := x.Int64(); ok {
		return cbor.Marshal(v)
	}
	if x.IsNeg() {
		// A negative bignum holds -1 - x
		return cbor.Marshal(cbor.Tag{Number: cborTagNegBignum, Content: x.Not().Bytes()})
	}
	return cbor.Marshal(cbor.Tag{Number: cborTagPosBignum, Content: x.Bytes()})
}

// UnmarshalCBOR implements the [cbor.Unmarshaler] interface.
//
// [cbor.Unmarshaler]: https://pkg.go.dev/github.com/fxamacker/cbor/v2#Unmarshaler
func (x *Integer) UnmarshalCBOR(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("decoding %T: no data: %w", x, ErrInvalidArgument)
	}
	switch data[0] >> 5 {
	case 0:
		var v uint64
		if err := cbor.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("decoding %T: %w", x, err)
		}
		*x = NewIntegerFromUint64(v)
		return nil
	case 1:
		// The head of a negative integer carries n for the value -1 - n.
		// Re-reading it as an unsigned integer yields n.
		head := append([]byte{data[0] &^ 0x20}, data[1:]...)
		var n uint64
		if err := cbor.Unmarshal(head, &n); err != nil {
			return fmt.Errorf("decoding %T: %w", x, err)
		}
		*x = NewIntegerFromUint64(n).Not()
		return nil
	}
	var tag cbor.RawTag
	if err := cbor.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("decoding %T: %w", x, err)
	}
	var mag []byte
	if err := cbor.Unmarshal(tag.Content, &mag); err != nil {
		return fmt.Errorf("decoding %T: %w", x, err)
	}
	switch tag.Number {
	case cborTagPosBignum:
		*x = NewIntegerFromBytes(false, mag)
	case cborTagNegBignum:
		*x = NewIntegerFromBytes(false, mag).Not()
	default:
		return fmt.Errorf("decoding %T: unexpected tag %v: %w", x, tag.Number, ErrInvalidArgument)
	}
	return nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see function [ParseRational].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (r *Rational) UnmarshalText(text []byte) error {
	var err error
	*r, err = ParseRational(string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Rational.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (r *Rational) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*r, err = ParseRational(value)
	case []byte:
		*r, err = ParseRational(string(value))
	case int64:
		*r = NewRationalFromInteger(NewInteger(value))
	default:
		err = fmt.Errorf("converting from %T to %T: %w", value, r, ErrInvalidArgument)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (r Rational) Value() (driver.Value, error) {
	return r.String(), nil
}

// MarshalCBOR implements the [cbor.Marshaler] interface.
// A Rational is encoded as tag 30 holding [numerator, denominator]
// with a signed numerator and a positive denominator.
//
// [cbor.Marshaler]: https://pkg.go.dev/github.com/fxamacker/cbor/v2#Marshaler
func (r Rational) MarshalCBOR() ([]byte, error) {
	num := r.num
	if r.IsNeg() {
		num = num.Neg()
	}
	return cbor.Marshal(cbor.Tag{
		Number:  cborTagRational,
		Content: []Integer{num, r.denom().Abs()},
	})
}

// UnmarshalCBOR implements the [cbor.Unmarshaler] interface.
//
// [cbor.Unmarshaler]: https://pkg.go.dev/github.com/fxamacker/cbor/v2#Unmarshaler
func (r *Rational) UnmarshalCBOR(data []byte) error {
	var tag cbor.RawTag
	if err := cbor.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("decoding %T: %w", r, err)
	}
	if tag.Number != cborTagRational {
		return fmt.Errorf("decoding %T: unexpected tag %v: %w", r, tag.Number, ErrInvalidArgument)
	}
	var parts []Integer
	if err := cbor.Unmarshal(tag.Content, &parts); err != nil {
		return fmt.Errorf("decoding %T: %w", r, err)
	}
	if len(parts) != 2 {
		return fmt.Errorf("decoding %T: %v elements: %w", r, len(parts), ErrInvalidArgument)
	}
	v, err := NewRational(parts[0], parts[1])
	if err != nil {
		return fmt.Errorf("decoding %T: %w", r, err)
	}
	*r = v
	return nil
}
