package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	return mainCommand(&MainConfig{})
}

func mainCommand(cfg *MainConfig) *cli.Command {
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "circuitjson").
		WithSynopsis("circuitjson [opts] command [opts]").
		WithDescription("circuitjson writes PLONK circuits as indented JSON documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return circuitjsonMain(cfg, cc, args)
		}).
		WithSubs(
			EmitCommand(cfg),
			DiffCommand(cfg),
			CircuitsCommand(cfg))
}

func EmitCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EmitConfig{MainConfig: mainCfg, Inputs: map[string]string{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "in",
		Description: "assign a circuit input",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(inputOptTypeFunc(cfg.Inputs)), "(name=val)"),
	})
	return cli.NewCommandAt(&cfg.Emit, "emit").
		WithAliases("e").
		WithSynopsis("emit [-config file] [-circuit name] [-curve name] [-in name=val]...").
		WithDescription(emitDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return emit(cfg, cc, args)
		})
}

const emitDescription = `emit compiles a built-in circuit and writes its document.

The document holds the curve type, the hash, the public assignment table, the
table description and the blueprint of the circuit.

Settings may be read from a yaml file given with -config:

  circuit: cubic
  curve: bn254
  curve_type: pallas
  hash: keccak_1600<256>
  inputs:
    Y: 35
    x: 3

Flags take precedence over the file. When every input of the circuit is
given, the assignment is checked against the constraints before anything is
written. Otherwise only the public inputs are required.

With -check, the document is compared with a golden file instead of being
written, the differing lines are shown and the exit code is 1 on difference.`

func inputOptTypeFunc(inputs map[string]string) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := inputFunc(inputs, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("diff circuit documents line by line").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func CircuitsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CircuitsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Circuits, "circuits").
		WithAliases("c", "ls").
		WithSynopsis("circuits").
		WithDescription("list built-in circuits and their inputs").
		WithRun(func(cc *cli.Context, args []string) error {
			return circuits(cfg, cc, args)
		})
}
