// file: internals/helpers/numeric.go
package helper

import "math"

// IntFromFloat konversi hasil coercion form ke int. NaN/Inf dari input
// angka yang rusak jadi 0 — konversi int(NaN) di Go tidak terdefinisi.
func IntFromFloat(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(f)
}
