package token

import (
	"fmt"
	"math"
	"strconv"
)

func FormatUint(v uint64) string { return strconv.FormatUint(v, 10) }
func FormatInt(v int64) string   { return strconv.FormatInt(v, 10) }

// FormatFloat returns the shortest decimal text which parses back to f.
// Plain notation is used for 1e-6 <= |f| < 1e21 and exponent notation
// otherwise, with the exponent written without leading zeros (1e-7, 1e+21).
//
// NaN and infinities have no JSON form and yield ErrNumber.
func FormatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v is not representable", ErrNumber, f)
	}
	abs := math.Abs(f)
	fmat := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fmat = 'e'
	}
	b := strconv.AppendFloat(nil, f, fmat, -1, 64)
	if fmat == 'e' {
		// e-07 -> e-7
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return string(b), nil
}
