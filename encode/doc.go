// Package encode encodes IR nodes to indented JSON text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "a", Val: ir.FromUint(1)},
//	    {Key: "b", Val: ir.FromSlice([]*ir.Node{ir.FromBool(true), ir.Null()})},
//	})
//	err := encode.Encode(node, os.Stdout)
//
// writes
//
//	{
//	    "a" : 1,
//	    "b" : [
//	        true,
//	        null
//	    ]
//	}
//
// The layout is fixed: 4 spaces per level, " : " between a key and its
// value, no trailing commas and no compaction of empty containers. Output
// for a given tree is byte for byte reproducible.
//
// # Related Packages
//
//   - github.com/signadot/circuit-json/ir - IR representation
//   - github.com/signadot/circuit-json/token - string and number tokens
package encode
