package plonk

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"

	"github.com/signadot/circuit-json/ir"
)

// Column counts of the vanilla PLONK table: three advice wires, one public
// input column, the constant selector and q_l, q_r, q_o, q_m.
const (
	WitnessColumns     = 3
	PublicInputColumns = 1
	ConstantColumns    = 1
	SelectorColumns    = 4
)

// TableDescription gives the shape of the assignment table.
type TableDescription struct {
	Curve              ecc.ID
	Modulus            *big.Int
	ModulusBits        int
	WitnessColumns     int
	PublicInputColumns int
	ConstantColumns    int
	SelectorColumns    int
	UsableRowsAmount   int
	RowsAmount         int
}

func NewTableDescription(c *Compiled) *TableDescription {
	usable := c.UsableRows()
	return &TableDescription{
		Curve:              c.Curve,
		Modulus:            c.CS.Field(),
		ModulusBits:        c.CS.FieldBitLen(),
		WitnessColumns:     WitnessColumns,
		PublicInputColumns: PublicInputColumns,
		ConstantColumns:    ConstantColumns,
		SelectorColumns:    SelectorColumns,
		UsableRowsAmount:   usable,
		RowsAmount:         int(ecc.NextPowerOfTwo(uint64(usable))),
	}
}

func (d *TableDescription) ToIR() (*ir.Node, error) {
	modulus := ""
	if d.Modulus != nil {
		modulus = d.Modulus.String()
	}
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "witness_columns", Val: ir.FromInt(int64(d.WitnessColumns))},
		{Key: "public_input_columns", Val: ir.FromInt(int64(d.PublicInputColumns))},
		{Key: "constant_columns", Val: ir.FromInt(int64(d.ConstantColumns))},
		{Key: "selector_columns", Val: ir.FromInt(int64(d.SelectorColumns))},
		{Key: "usable_rows_amount", Val: ir.FromInt(int64(d.UsableRowsAmount))},
		{Key: "rows_amount", Val: ir.FromInt(int64(d.RowsAmount))},
		{Key: "field", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "curve", Val: ir.FromString(d.Curve.String())},
			{Key: "modulus", Val: ir.FromString(modulus)},
			{Key: "bits", Val: ir.FromInt(int64(d.ModulusBits))},
		})},
	}), nil
}
