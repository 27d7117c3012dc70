package plonk

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/consensys/gnark/logger"

	"github.com/signadot/circuit-json/debug"
)

// Compiled is a circuit compiled to the sparse R1CS arithmetization over
// the scalar field of Curve.
type Compiled struct {
	Curve ecc.ID
	CS    constraint.ConstraintSystem

	constraints []constraint.SparseR1C
}

// Compile compiles circuit with the PLONK builder.
func Compile(curve ecc.ID, circuit frontend.Circuit, opts ...frontend.CompileOption) (*Compiled, error) {
	if !supported(curve) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCurve, curve)
	}
	ccs, err := frontend.Compile(curve.ScalarField(), scs.NewBuilder, circuit, opts...)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	spr, ok := ccs.(interface{ GetSparseR1Cs() []constraint.SparseR1C })
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotSparseR1CS, ccs)
	}
	constraints := spr.GetSparseR1Cs()
	internal, secret, public := ccs.GetNbVariables()
	log := logger.Logger()
	log.Info().
		Str("curve", curve.String()).
		Int("nbConstraints", len(constraints)).
		Int("nbPublic", public).
		Int("nbSecret", secret).
		Int("nbInternal", internal).
		Msg("compiled plonk circuit")
	if debug.Gates() {
		for i := range constraints {
			log.Debug().Int("gate", i).Msg(constraints[i].String(ccs))
		}
	}
	return &Compiled{Curve: curve, CS: ccs, constraints: constraints}, nil
}

// Check reports whether the full assignment satisfies the constraints.
func (c *Compiled) Check(assignment frontend.Circuit) error {
	w, err := frontend.NewWitness(assignment, c.Curve.ScalarField())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadInput, err)
	}
	return c.CS.IsSolved(w)
}

// NbPublic returns the number of public variables, which is also the number
// of public input rows at the top of the table.
func (c *Compiled) NbPublic() int {
	_, _, public := c.CS.GetNbVariables()
	return public
}

// UsableRows returns the number of rows filled by public inputs and gates.
func (c *Compiled) UsableRows() int {
	return c.NbPublic() + len(c.constraints)
}

func supported(curve ecc.ID) bool {
	for _, id := range Curves() {
		if id == curve {
			return true
		}
	}
	return false
}
