package plonk

import "errors"

var (
	ErrNotSparseR1CS    = errors.New("not a sparse r1cs")
	ErrUnsupportedCurve = errors.New("unsupported curve")
	ErrUnknownCircuit   = errors.New("unknown circuit")
	ErrMissingInput     = errors.New("missing input")
	ErrBadInput         = errors.New("bad input")
)
