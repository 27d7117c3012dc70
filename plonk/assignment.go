package plonk

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/logger"

	"github.com/signadot/circuit-json/debug"
	"github.com/signadot/circuit-json/ir"
)

// PublicAssignmentTable holds the columns of the assignment table known to
// the verifier. Public input rows come first; their q_l is -1 and the other
// selectors are zero.
type PublicAssignmentTable struct {
	Names  []string
	Values []string

	// Selectors holds q_l, q_r, q_o and q_m, one entry per usable row.
	Selectors [SelectorColumns][]string
	// Constants holds q_c, one entry per usable row.
	Constants []string
}

// NewPublicAssignmentTable evaluates the public part of assignment and lays
// it out with the selector columns of c. Secret fields of assignment may be
// left unset.
func NewPublicAssignmentTable(c *Compiled, assignment frontend.Circuit) (*PublicAssignmentTable, error) {
	w, err := frontend.NewWitness(assignment, c.Curve.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadInput, err)
	}
	values, err := vectorStrings(w.Vector())
	if err != nil {
		return nil, err
	}
	nbPublic := c.NbPublic()
	if len(values) != nbPublic {
		return nil, fmt.Errorf("%w: %d public values for %d public variables", ErrBadInput, len(values), nbPublic)
	}
	t := &PublicAssignmentTable{
		Names:  make([]string, nbPublic),
		Values: values,
	}
	for i := range t.Names {
		t.Names[i] = c.CS.VariableToString(i)
	}
	if debug.Witness() {
		log := logger.Logger()
		for i := range t.Names {
			log.Debug().Str("name", t.Names[i]).Str("value", t.Values[i]).Msg("public input")
		}
	}
	for range nbPublic {
		t.Selectors[0] = append(t.Selectors[0], "-1")
		for j := 1; j < SelectorColumns; j++ {
			t.Selectors[j] = append(t.Selectors[j], "0")
		}
		t.Constants = append(t.Constants, "0")
	}
	for _, g := range c.Gates() {
		for j := range SelectorColumns {
			t.Selectors[j] = append(t.Selectors[j], g.Selectors[j])
		}
		t.Constants = append(t.Constants, g.Selectors[SelectorColumns])
	}
	return t, nil
}

func (t *PublicAssignmentTable) ToIR() (*ir.Node, error) {
	sels := make([]ir.KeyVal, SelectorColumns)
	for j := range SelectorColumns {
		sels[j] = ir.KeyVal{Key: selectorNames[j], Val: stringArray(t.Selectors[j])}
	}
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "public_input", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "names", Val: stringArray(t.Names)},
			{Key: "values", Val: stringArray(t.Values)},
		})},
		{Key: "selector", Val: ir.FromKeyVals(sels)},
		{Key: "constant", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: selectorNames[SelectorColumns], Val: stringArray(t.Constants)},
		})},
	}), nil
}

func stringArray(vs []string) *ir.Node {
	nodes := make([]*ir.Node, len(vs))
	for i, v := range vs {
		nodes[i] = ir.FromString(v)
	}
	return ir.FromSlice(nodes)
}
