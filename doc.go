// Package circuitjson writes a PLONK circuit as a JSON document.
//
// A document is an object with five keys, always in this order:
//
//	{
//	    "curve_type" : "pallas",
//	    "hash" : "keccak_1600<256>",
//	    "public_assignment" : ...,
//	    "desc" : ...,
//	    "bp" : ...
//	}
//
// The last three are the trees of the public assignment table, the table
// description and the blueprint, each supplied as an [ir.Marshaler].
// Package plonk provides these for gnark constraint systems.
//
// # Related Packages
//
//   - github.com/signadot/circuit-json/encode - the printer
//   - github.com/signadot/circuit-json/plonk - gnark backed circuit parts
package circuitjson
