package domain

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// Amount is an unsigned 256 bit quantity expressed in the smallest unit of the
// native currency. All arithmetic is overflow checked.
type Amount struct {
	v uint256.Int
}

func NewAmount(value uint64) Amount {
	a := Amount{}
	a.v.SetUint64(value)
	return a
}

func AmountFromString(str string) (Amount, error) {
	if len(str) <= 0 {
		return Amount{}, fmt.Errorf("missing amount")
	}
	v, err := uint256.FromDecimal(str)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %s", str, err)
	}
	return Amount{*v}, nil
}

func MustAmount(str string) Amount {
	a, err := AmountFromString(str)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) IsZero() bool {
	return a.v.IsZero()
}

func (a Amount) Cmp(other Amount) int {
	return a.v.Cmp(&other.v)
}

func (a Amount) Equal(other Amount) bool {
	return a.v.Eq(&other.v)
}

func (a Amount) Add(other Amount) (Amount, error) {
	res := Amount{}
	if _, overflow := res.v.AddOverflow(&a.v, &other.v); overflow {
		return Amount{}, ErrAmountOverflow
	}
	return res, nil
}

func (a Amount) Sub(other Amount) (Amount, error) {
	res := Amount{}
	if _, underflow := res.v.SubOverflow(&a.v, &other.v); underflow {
		return Amount{}, ErrInsufficientFunds
	}
	return res, nil
}

// MulDiv returns a * num / den rounded down.
func (a Amount) MulDiv(num, den uint64) (Amount, error) {
	if den == 0 {
		return Amount{}, fmt.Errorf("division by zero")
	}
	n := uint256.NewInt(num)
	d := uint256.NewInt(den)
	res := Amount{}
	if _, overflow := res.v.MulDivOverflow(&a.v, n, d); overflow {
		return Amount{}, ErrAmountOverflow
	}
	return res, nil
}

func (a Amount) String() string {
	return a.v.Dec()
}

func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.v.Dec()), nil
}

func (a *Amount) UnmarshalText(buf []byte) error {
	amount, err := AmountFromString(string(buf))
	if err != nil {
		return err
	}
	*a = amount
	return nil
}

func (a Amount) MarshalBinary() ([]byte, error) {
	buf := a.v.Bytes32()
	return buf[:], nil
}

func (a *Amount) UnmarshalBinary(buf []byte) error {
	if len(buf) != 32 {
		return fmt.Errorf("invalid amount length %d", len(buf))
	}
	a.v.SetBytes32(buf)
	return nil
}

// Float64 returns an approximation of the amount, meant for reporting only.
func (a Amount) Float64() float64 {
	f, _ := new(big.Float).SetInt(a.v.ToBig()).Float64()
	return f
}
