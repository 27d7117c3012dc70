// Package plonk compiles gnark circuits to the sparse R1CS arithmetization
// and turns the result into the three parts of a serialized circuit: the
// table description, the public assignment table and the blueprint.
//
// Each part implements ir.Marshaler so it can be handed directly to the
// circuitjson composer.
package plonk
