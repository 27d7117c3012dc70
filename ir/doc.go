// Package ir provides the tagged value tree printed by package encode.
//
// # Node Structure
//
// A Node represents a single JSON value. The Type field selects which
// payload field is meaningful:
//
//   - NullType: no payload
//   - BoolType: Bool
//   - UintType: Uint64
//   - IntType: Int64
//   - FloatType: Float64
//   - StringType: String
//   - ObjectType: Fields[i] is the key for Values[i]
//   - ArrayType: Values
//
// Object keys are unique and keep their insertion order, which is also the
// order in which they are printed.
//
// # Creating Nodes
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "rows", Val: ir.FromUint(8)},
//	    {Key: "names", Val: ir.FromSlice([]*ir.Node{ir.FromString("x")})},
//	})
//
// Container constructors set Parent, ParentIndex and ParentField on their
// children, which lets Path report where in a document a node lives.
//
// # Accessing Values
//
// The As* accessors check the node type and return an error wrapping
// ErrTypeMismatch when it does not match.
//
// # Thread Safety
//
// Node structures are not thread-safe.
package ir
