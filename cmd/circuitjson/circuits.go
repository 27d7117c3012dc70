package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/circuit-json/plonk"
)

func circuits(cfg *CircuitsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Circuits.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: circuits takes no arguments, got %v", cli.ErrUsage, args)
	}
	for _, name := range plonk.Names() {
		c, err := plonk.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\t%s\n", c.Name, c.Description)
		fmt.Fprintf(cc.Out, "\tinputs: %s\n", inputList(c))
	}
	return nil
}

func inputList(c *plonk.Circuit) string {
	parts := make([]string, len(c.Inputs))
	for i, in := range c.Inputs {
		parts[i] = in
		if slices.Contains(c.Public, in) {
			parts[i] += " (public)"
		}
	}
	return strings.Join(parts, ", ")
}
