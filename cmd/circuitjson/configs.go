package main

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	circuitjson "github.com/signadot/circuit-json"
	"github.com/signadot/circuit-json/encode"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	Quiet bool `cli:"name=q aliases=quiet desc='do not log'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// colors reports whether output to w should be colored: -color forces it,
// an explicit -color=false disables it, otherwise terminals get color.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		color.NoColor = false
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if !cfg.colors(w) {
		return nil
	}
	return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
}

type EmitConfig struct {
	*MainConfig

	ConfigFile string `cli:"name=config desc='yaml file with emit settings'"`
	Circuit    string `cli:"name=circuit desc='built-in circuit, see circuits'"`
	Curve      string `cli:"name=curve desc='curve whose scalar field the circuit is compiled over'"`
	CurveType  string `cli:"name=curve-type desc='curve_type written to the document'"`
	Hash       string `cli:"name=hash desc='hash written to the document'"`
	Check      string `cli:"name=check desc='compare with a golden document instead of writing'"`

	Inputs map[string]string

	Emit *cli.Command
}

// EmitFile is the -config file of emit.
type EmitFile struct {
	Circuit   string         `yaml:"circuit"`
	Curve     string         `yaml:"curve"`
	CurveType string         `yaml:"curve_type"`
	Hash      string         `yaml:"hash"`
	Inputs    map[string]any `yaml:"inputs"`
}

const defaultCurve = "bn254"

// load merges the -config file under the flags and fills in defaults.
func (cfg *EmitConfig) load() error {
	if cfg.ConfigFile != "" {
		d, err := os.ReadFile(cfg.ConfigFile)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", cfg.ConfigFile, err)
		}
		f := &EmitFile{}
		if err := yaml.Unmarshal(d, f); err != nil {
			return fmt.Errorf("error decoding %s: %w", cfg.ConfigFile, err)
		}
		if err := cfg.merge(f); err != nil {
			return fmt.Errorf("%s: %w", cfg.ConfigFile, err)
		}
	}
	setDefault(&cfg.Curve, defaultCurve)
	setDefault(&cfg.CurveType, circuitjson.DefaultCurveType)
	setDefault(&cfg.Hash, circuitjson.DefaultHash)
	return nil
}

func (cfg *EmitConfig) merge(f *EmitFile) error {
	setDefault(&cfg.Circuit, f.Circuit)
	setDefault(&cfg.Curve, f.Curve)
	setDefault(&cfg.CurveType, f.CurveType)
	setDefault(&cfg.Hash, f.Hash)
	for k, v := range f.Inputs {
		if _, present := cfg.Inputs[k]; present {
			continue
		}
		s, err := inputText(v)
		if err != nil {
			return fmt.Errorf("input %s: %w", k, err)
		}
		cfg.Inputs[k] = s
	}
	return nil
}

func (cfg *EmitConfig) options() []circuitjson.Option {
	return []circuitjson.Option{
		circuitjson.WithCurveType(cfg.CurveType),
		circuitjson.WithHash(cfg.Hash),
	}
}

func setDefault(p *string, v string) {
	if *p == "" {
		*p = v
	}
}

// inputText gives the integer text of a yaml scalar.
func inputText(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case int, int64, uint64:
		return fmt.Sprint(x), nil
	case *big.Int:
		return x.String(), nil
	default:
		return "", fmt.Errorf("expected an integer, got %T", v)
	}
}

func inputFunc(inputs map[string]string, a string) error {
	name, val, ok := strings.Cut(a, "=")
	if !ok || name == "" {
		return fmt.Errorf("%w: expected name=val, got %q", cli.ErrUsage, a)
	}
	inputs[name] = val
	return nil
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type CircuitsConfig struct {
	*MainConfig

	Circuits *cli.Command
}
