package plonk

import (
	"github.com/consensys/gnark/constraint"

	"github.com/signadot/circuit-json/ir"
)

// Selector names in table order. q_c is stored in the constant column.
var selectorNames = [...]string{"q_l", "q_r", "q_o", "q_m", "q_c"}

// Gate is one row of the arithmetization:
//
//	q_l·a + q_r·b + q_o·c + q_m·a·b + q_c == 0
type Gate struct {
	Wires      [3]string
	Selectors  [5]string
	Expression string
}

// Gates returns the gates of c in constraint order. Wire and coefficient
// texts come from the constraint system.
func (c *Compiled) Gates() []Gate {
	gates := make([]Gate, len(c.constraints))
	for i := range c.constraints {
		gates[i] = newGate(&c.constraints[i], c.CS)
	}
	return gates
}

func newGate(sc *constraint.SparseR1C, r constraint.Resolver) Gate {
	return Gate{
		Wires: [3]string{
			r.VariableToString(int(sc.XA)),
			r.VariableToString(int(sc.XB)),
			r.VariableToString(int(sc.XC)),
		},
		Selectors: [5]string{
			r.CoeffToString(int(sc.QL)),
			r.CoeffToString(int(sc.QR)),
			r.CoeffToString(int(sc.QO)),
			r.CoeffToString(int(sc.QM)),
			r.CoeffToString(int(sc.QC)),
		},
		Expression: sc.String(r),
	}
}

func (g *Gate) ToIR() (*ir.Node, error) {
	sels := make([]ir.KeyVal, len(selectorNames))
	for i, name := range selectorNames {
		sels[i] = ir.KeyVal{Key: name, Val: ir.FromString(g.Selectors[i])}
	}
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "wires", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "a", Val: ir.FromString(g.Wires[0])},
			{Key: "b", Val: ir.FromString(g.Wires[1])},
			{Key: "c", Val: ir.FromString(g.Wires[2])},
		})},
		{Key: "selectors", Val: ir.FromKeyVals(sels)},
		{Key: "expression", Val: ir.FromString(g.Expression)},
	}), nil
}
