package legend

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// fixedPoint formats v with prec decimals, rounding the exact binary value
// and resolving ties away from zero. This is the rounding browsers apply to
// Number.prototype.toFixed, so labels read the same in both renderings.
func fixedPoint(v float64, prec int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', prec, 64)
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	r := new(big.Rat).SetFloat64(v)
	r.Mul(r, new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(prec)), nil)))
	r.Add(r, big.NewRat(1, 2))
	digits := new(big.Int).Quo(r.Num(), r.Denom()).String()

	if prec == 0 {
		return sign + digits
	}
	if len(digits) <= prec {
		digits = strings.Repeat("0", prec-len(digits)+1) + digits
	}
	return sign + digits[:len(digits)-prec] + "." + digits[len(digits)-prec:]
}
