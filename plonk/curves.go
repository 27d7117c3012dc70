package plonk

import (
	"fmt"
	"strings"

	"github.com/consensys/gnark-crypto/ecc"
	bls12377fr "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	bls12381fr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	bn254fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	bw6761fr "github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
)

// Curves lists the curves whose scalar fields can be written out.
func Curves() []ecc.ID {
	return []ecc.ID{ecc.BN254, ecc.BLS12_381, ecc.BLS12_377, ecc.BW6_761}
}

// ParseCurve accepts a curve name as gnark-crypto prints it (bls12_381),
// case insensitively and with '-' in place of '_'.
func ParseCurve(name string) (ecc.ID, error) {
	norm := strings.ReplaceAll(strings.ToLower(name), "-", "_")
	for _, id := range Curves() {
		if id.String() == norm {
			return id, nil
		}
	}
	return ecc.UNKNOWN, fmt.Errorf("%w: %q", ErrUnsupportedCurve, name)
}

// vectorStrings returns the decimal text of each element of a witness
// vector.
func vectorStrings(v any) ([]string, error) {
	switch vec := v.(type) {
	case bn254fr.Vector:
		res := make([]string, len(vec))
		for i := range vec {
			res[i] = vec[i].String()
		}
		return res, nil
	case bls12381fr.Vector:
		res := make([]string, len(vec))
		for i := range vec {
			res[i] = vec[i].String()
		}
		return res, nil
	case bls12377fr.Vector:
		res := make([]string, len(vec))
		for i := range vec {
			res[i] = vec[i].String()
		}
		return res, nil
	case bw6761fr.Vector:
		res := make([]string, len(vec))
		for i := range vec {
			res[i] = vec[i].String()
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: witness vector %T", ErrUnsupportedCurve, v)
	}
}
