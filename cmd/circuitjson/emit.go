package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/logger"
	"github.com/scott-cotton/cli"

	circuitjson "github.com/signadot/circuit-json"
	"github.com/signadot/circuit-json/ir"
	"github.com/signadot/circuit-json/libdiff"
	"github.com/signadot/circuit-json/plonk"
)

func emit(cfg *EmitConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Emit.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: emit takes no arguments, got %v", cli.ErrUsage, args)
	}
	if err := cfg.load(); err != nil {
		return err
	}
	if cfg.Circuit == "" {
		return fmt.Errorf("%w: no circuit given, one of %v", cli.ErrUsage, plonk.Names())
	}
	circ, err := plonk.Lookup(cfg.Circuit)
	if err != nil {
		return err
	}
	curve, err := plonk.ParseCurve(cfg.Curve)
	if err != nil {
		return err
	}
	compiled, err := plonk.Compile(curve, circ.New())
	if err != nil {
		return fmt.Errorf("circuit %s: %w", circ.Name, err)
	}
	assignment, err := assign(circ, compiled, cfg.Inputs)
	if err != nil {
		return err
	}
	pub, err := plonk.NewPublicAssignmentTable(compiled, assignment)
	if err != nil {
		return err
	}
	desc := plonk.NewTableDescription(compiled)
	bp := plonk.NewBlueprint(compiled)

	if cfg.Check != "" {
		return check(cfg, cc.Out, desc, pub, bp)
	}
	opts := append(cfg.options(), circuitjson.WithEncodeOptions(cfg.encOpts(cc.Out)...))
	return circuitjson.Serialize(cc.Out, desc, pub, bp, opts...)
}

// assign checks a full assignment against the constraints and falls back to
// the public inputs alone when some secret input is missing.
func assign(circ *plonk.Circuit, compiled *plonk.Compiled, inputs map[string]string) (frontend.Circuit, error) {
	log := logger.Logger()
	for _, name := range circ.Inputs {
		if _, ok := inputs[name]; !ok {
			log.Debug().Str("input", name).Msg("incomplete assignment, using public inputs only")
			return circ.AssignPublic(inputs)
		}
	}
	assignment, err := circ.Assign(inputs)
	if err != nil {
		return nil, err
	}
	if err := compiled.Check(assignment); err != nil {
		return nil, fmt.Errorf("assignment does not satisfy %s: %w", circ.Name, err)
	}
	log.Info().Str("circuit", circ.Name).Msg("assignment satisfies constraints")
	return assignment, nil
}

// check renders the document and compares it line by line with the golden
// file. Nothing is written to w when they match.
func check(cfg *EmitConfig, w io.Writer, desc, pub, bp ir.Marshaler) error {
	golden, err := os.ReadFile(cfg.Check)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", cfg.Check, err)
	}
	buf := &bytes.Buffer{}
	if err := circuitjson.Serialize(buf, desc, pub, bp, cfg.options()...); err != nil {
		return err
	}
	diffs := libdiff.Lines(string(golden), buf.String())
	if !libdiff.Differ(diffs) {
		return nil
	}
	if _, err := libdiff.Write(w, diffs, cfg.colors(w)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
