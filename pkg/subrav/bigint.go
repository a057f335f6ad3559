package subrav

import (
	"encoding/json"
	"math/big"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

var ErrInvalidBigInt = errors.New("invalid unsigned decimal integer")

// 2^256-1 has 78 decimal digits
const maxDecimalDigits = 78

// BigInt is an immutable unsigned arbitrary precision integer carried on the
// wire as a decimal string. The zero value is 0.
type BigInt struct {
	i *big.Int
}

func NewBigInt(x *big.Int) BigInt {
	if x == nil || x.Sign() == 0 {
		return BigInt{}
	}
	if x.Sign() < 0 {
		panic("subrav: negative BigInt")
	}

	return BigInt{i: new(big.Int).Set(x)}
}

func FromUint64(u uint64) BigInt {
	return NewBigInt(new(big.Int).SetUint64(u))
}

// ParseBigInt accepts a plain decimal string: digits only, no sign.
func ParseBigInt(s string) (BigInt, error) {
	if s == "" || len(s) > maxDecimalDigits {
		return BigInt{}, errors.Wrapf(ErrInvalidBigInt, "%q", s)
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return BigInt{}, errors.Wrapf(ErrInvalidBigInt, "%q", s)
		}
	}

	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return BigInt{}, errors.Wrapf(ErrInvalidBigInt, "%q", s)
	}

	return NewBigInt(x), nil
}

func MustParseBigInt(s string) BigInt {
	b, err := ParseBigInt(s)
	if err != nil {
		panic(err)
	}

	return b
}

// Big returns a copy of the value.
func (b BigInt) Big() *big.Int {
	if b.i == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(b.i)
}

func (b BigInt) String() string {
	if b.i == nil {
		return "0"
	}

	return b.i.String()
}

func (b BigInt) IsZero() bool {
	return b.i == nil
}

func (b BigInt) Cmp(o BigInt) int {
	return b.Big().Cmp(o.Big())
}

func (b BigInt) Add(o BigInt) BigInt {
	return NewBigInt(new(big.Int).Add(b.Big(), o.Big()))
}

// Sub returns b-o, or an error when o > b.
func (b BigInt) Sub(o BigInt) (BigInt, error) {
	if b.Cmp(o) < 0 {
		return BigInt{}, errors.Errorf("%s - %s underflows", b, o)
	}

	return NewBigInt(new(big.Int).Sub(b.Big(), o.Big())), nil
}

func (b BigInt) Inc() BigInt {
	return b.Add(FromUint64(1))
}

func (b BigInt) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *BigInt) UnmarshalText(d []byte) error {
	v, err := ParseBigInt(string(d))
	if err != nil {
		return err
	}

	*b = v
	return nil
}

func (b BigInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON only accepts the string form; native JSON numbers lose
// precision in other runtimes.
func (b *BigInt) UnmarshalJSON(d []byte) error {
	var s string
	if err := json.Unmarshal(d, &s); err != nil {
		return errors.Wrap(ErrInvalidBigInt, "expected a decimal string")
	}

	return b.UnmarshalText([]byte(s))
}

func (b BigInt) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(b.String())
}

func (b *BigInt) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}

	return b.UnmarshalText([]byte(s))
}
