package plonk

import (
	"github.com/signadot/circuit-json/ir"
)

// Blueprint is the gate list of a compiled circuit with its variable
// counts.
type Blueprint struct {
	Gates          []Gate
	NbInstructions int
	NbPublic       int
	NbSecret       int
	NbInternal     int
}

func NewBlueprint(c *Compiled) *Blueprint {
	internal, secret, public := c.CS.GetNbVariables()
	return &Blueprint{
		Gates:          c.Gates(),
		NbInstructions: c.CS.GetNbInstructions(),
		NbPublic:       public,
		NbSecret:       secret,
		NbInternal:     internal,
	}
}

func (b *Blueprint) ToIR() (*ir.Node, error) {
	gates := make([]*ir.Node, len(b.Gates))
	for i := range b.Gates {
		g, err := b.Gates[i].ToIR()
		if err != nil {
			return nil, err
		}
		gates[i] = g
	}
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "gates", Val: ir.FromSlice(gates)},
		{Key: "stats", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "constraints", Val: ir.FromInt(int64(len(b.Gates)))},
			{Key: "instructions", Val: ir.FromInt(int64(b.NbInstructions))},
			{Key: "public", Val: ir.FromInt(int64(b.NbPublic))},
			{Key: "secret", Val: ir.FromInt(int64(b.NbSecret))},
			{Key: "internal", Val: ir.FromInt(int64(b.NbInternal))},
		})},
	}), nil
}
