package ir

import (
	"fmt"
	"maps"
	"slices"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []string
	Values      []*Node

	String  string
	Bool    bool
	Uint64  uint64
	Int64   int64
	Float64 float64
}

// Marshaler is implemented by values which can describe themselves
// as a node tree.
type Marshaler interface {
	ToIR() (*Node, error)
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromUint(v uint64) *Node {
	return &Node{
		Type:   UintType,
		Uint64: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  IntType,
		Int64: v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    FloatType,
		Float64: f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object whose fields are rendered in the order of kvs.
// It panics if a key occurs twice.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]string, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	seen := make(map[string]struct{}, len(kvs))
	for i := range kvs {
		key, val := kvs[i].Key, kvs[i].Val
		if _, dup := seen[key]; dup {
			panic(fmt.Errorf("%w: %q", ErrDuplicateKey, key))
		}
		seen[key] = struct{}{}
		if val == nil {
			val = Null()
		}
		val.Parent = res
		val.ParentIndex = i
		val.ParentField = key
		res.Fields[i] = key
		res.Values[i] = val
	}
	return res
}

// FromMap builds an object with its keys sorted, since map iteration
// order carries no meaning.
func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: key, Val: yMap[key]}
	}
	return FromKeyVals(kvs)
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		if y == nil {
			y = Null()
		}
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = ""
		res.Values[i] = y
	}
	return res
}

func Get(y *Node, field string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	for i := range y.Fields {
		if y.Fields[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

func (y *Node) AsString() (string, error) {
	if y.Type != StringType {
		return "", typeMismatch(y, StringType)
	}
	return y.String, nil
}

func (y *Node) AsUint64() (uint64, error) {
	if y.Type != UintType {
		return 0, typeMismatch(y, UintType)
	}
	return y.Uint64, nil
}

func (y *Node) AsInt64() (int64, error) {
	if y.Type != IntType {
		return 0, typeMismatch(y, IntType)
	}
	return y.Int64, nil
}

func (y *Node) AsFloat64() (float64, error) {
	if y.Type != FloatType {
		return 0, typeMismatch(y, FloatType)
	}
	return y.Float64, nil
}

func (y *Node) AsBool() (bool, error) {
	if y.Type != BoolType {
		return false, typeMismatch(y, BoolType)
	}
	return y.Bool, nil
}

// AsObject returns the key/value pairs of an object in stored order.
func (y *Node) AsObject() ([]KeyVal, error) {
	if y.Type != ObjectType {
		return nil, typeMismatch(y, ObjectType)
	}
	res := make([]KeyVal, len(y.Fields))
	for i := range y.Fields {
		res[i] = KeyVal{Key: y.Fields[i], Val: y.Values[i]}
	}
	return res, nil
}

func (y *Node) AsArray() ([]*Node, error) {
	if y.Type != ArrayType {
		return nil, typeMismatch(y, ArrayType)
	}
	return y.Values, nil
}
