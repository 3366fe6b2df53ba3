package protocol

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Implied decimal places of the two price widths on the wire.
const (
	Price4Scale = 4
	Price8Scale = 8
)

// Price4 is a 4 byte price with 4 implied decimal places. The raw integer is
// kept as is; 1234500 is 123.4500.
type Price4 uint32

// Raw returns the unscaled integer.
func (p Price4) Raw() uint32 {
	return uint32(p)
}

// Decimal returns the exact decimal value.
func (p Price4) Decimal() decimal.Decimal {
	return decimal.New(int64(p), -Price4Scale)
}

func (p Price4) String() string {
	return formatScaled(uint64(p), Price4Scale)
}

// Price8 is an 8 byte price with 8 implied decimal places.
type Price8 uint64

// Raw returns the unscaled integer.
func (p Price8) Raw() uint64 {
	return uint64(p)
}

// Decimal returns the exact decimal value.
func (p Price8) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(p)), -Price8Scale)
}

func (p Price8) String() string {
	return formatScaled(uint64(p), Price8Scale)
}

// formatScaled renders raw / 10^scale with exactly scale fraction digits.
func formatScaled(raw uint64, scale int) string {
	digits := strconv.FormatUint(raw, 10)
	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}
	point := len(digits) - scale
	return digits[:point] + "." + digits[point:]
}
