// Package debug reads debugging switches from the environment.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Gates   bool
	Witness bool
}

var d *debug

func init() {
	d = &debug{}
	d.Gates = boolEnv("CIRCUITJSON_DEBUG_GATES")
	d.Witness = boolEnv("CIRCUITJSON_DEBUG_WITNESS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Gates reports whether each compiled gate should be logged.
func Gates() bool {
	return d.Gates
}

// Witness reports whether public witness values should be logged.
func Witness() bool {
	return d.Witness
}
