package plonk

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/consensys/gnark/frontend"
)

// Circuit is a registered example circuit.
type Circuit struct {
	Name        string
	Description string
	// Inputs names the assignable fields, public ones first.
	Inputs []string
	Public []string

	New    func() frontend.Circuit
	assign func(vals map[string]*big.Int) frontend.Circuit
}

// Assign builds an assignment from decimal or 0x prefixed input values.
// All inputs must be present; use AssignPublic when only the public part
// is known.
func (c *Circuit) Assign(inputs map[string]string) (frontend.Circuit, error) {
	return c.assignNames(inputs, c.Inputs)
}

// AssignPublic builds an assignment with only the public inputs set.
func (c *Circuit) AssignPublic(inputs map[string]string) (frontend.Circuit, error) {
	return c.assignNames(inputs, c.Public)
}

func (c *Circuit) assignNames(inputs map[string]string, names []string) (frontend.Circuit, error) {
	for k := range inputs {
		if !slices.Contains(c.Inputs, k) {
			return nil, fmt.Errorf("%w: circuit %s has no input %q", ErrBadInput, c.Name, k)
		}
	}
	vals := make(map[string]*big.Int, len(names))
	for _, name := range names {
		s, ok := inputs[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrMissingInput, c.Name, name)
		}
		v, ok := new(big.Int).SetString(s, 0)
		if !ok {
			return nil, fmt.Errorf("%w: %s=%q is not an integer", ErrBadInput, name, s)
		}
		vals[name] = v
	}
	return c.assign(vals), nil
}

// CubicCircuit proves knowledge of x such that x³ + x + 5 == Y.
type CubicCircuit struct {
	X frontend.Variable `gnark:"x"`
	Y frontend.Variable `gnark:",public"`
}

func (c *CubicCircuit) Define(api frontend.API) error {
	x3 := api.Mul(c.X, c.X, c.X)
	api.AssertIsEqual(c.Y, api.Add(x3, c.X, 5))
	return nil
}

// MulCircuit proves knowledge of a factorization x·y == Z.
type MulCircuit struct {
	X frontend.Variable `gnark:"x"`
	Y frontend.Variable `gnark:"y"`
	Z frontend.Variable `gnark:",public"`
}

func (c *MulCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(c.Z, api.Mul(c.X, c.Y))
	return nil
}

// bigOrNil keeps unset inputs nil so gnark treats them as unassigned.
func bigOrNil(v *big.Int) frontend.Variable {
	if v == nil {
		return nil
	}
	return v
}

var circuits = []*Circuit{
	{
		Name:        "cubic",
		Description: "x³ + x + 5 == Y",
		Inputs:      []string{"Y", "x"},
		Public:      []string{"Y"},
		New:         func() frontend.Circuit { return &CubicCircuit{} },
		assign: func(v map[string]*big.Int) frontend.Circuit {
			return &CubicCircuit{X: bigOrNil(v["x"]), Y: bigOrNil(v["Y"])}
		},
	},
	{
		Name:        "mul",
		Description: "x·y == Z",
		Inputs:      []string{"Z", "x", "y"},
		Public:      []string{"Z"},
		New:         func() frontend.Circuit { return &MulCircuit{} },
		assign: func(v map[string]*big.Int) frontend.Circuit {
			return &MulCircuit{X: bigOrNil(v["x"]), Y: bigOrNil(v["y"]), Z: bigOrNil(v["Z"])}
		},
	},
}

// Lookup returns the registered circuit called name.
func Lookup(name string) (*Circuit, error) {
	for _, c := range circuits {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCircuit, name)
}

// Names returns the registered circuit names in registration order.
func Names() []string {
	res := make([]string, len(circuits))
	for i, c := range circuits {
		res[i] = c.Name
	}
	return res
}
