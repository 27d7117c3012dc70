package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"

	circuitjson "github.com/signadot/circuit-json"
	"github.com/signadot/circuit-json/plonk"
)

func TestInputFunc(t *testing.T) {
	inputs := map[string]string{}
	if err := inputFunc(inputs, "Y=35"); err != nil {
		t.Fatal(err)
	}
	if err := inputFunc(inputs, "x=0x3"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]string{"Y": "35", "x": "0x3"}, inputs); diff != "" {
		t.Errorf("inputs (-want +got):\n%s", diff)
	}
	for _, bad := range []string{"Y", "=3"} {
		if err := inputFunc(inputs, bad); !errors.Is(err, cli.ErrUsage) {
			t.Errorf("%q: got %v, want a usage error", bad, err)
		}
	}
}

func TestEmitConfigLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emit.yaml")
	file := "circuit: cubic\n" +
		"curve: bls12-381\n" +
		"hash: sha256\n" +
		"inputs:\n" +
		"  Y: 35\n" +
		"  x: \"3\"\n"
	if err := os.WriteFile(path, []byte(file), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := &EmitConfig{
		MainConfig: &MainConfig{},
		ConfigFile: path,
		Hash:       "poseidon",
		Inputs:     map[string]string{"x": "4"},
	}
	if err := cfg.load(); err != nil {
		t.Fatal(err)
	}
	if cfg.Circuit != "cubic" || cfg.Curve != "bls12-381" {
		t.Errorf("file values not applied: circuit %q curve %q", cfg.Circuit, cfg.Curve)
	}
	if cfg.Hash != "poseidon" {
		t.Errorf("flag should override file, hash %q", cfg.Hash)
	}
	if cfg.CurveType != circuitjson.DefaultCurveType {
		t.Errorf("curve type default not applied: %q", cfg.CurveType)
	}
	if diff := cmp.Diff(map[string]string{"Y": "35", "x": "4"}, cfg.Inputs); diff != "" {
		t.Errorf("inputs (-want +got):\n%s", diff)
	}
}

func TestEmitConfigDefaults(t *testing.T) {
	cfg := &EmitConfig{MainConfig: &MainConfig{}, Inputs: map[string]string{}}
	if err := cfg.load(); err != nil {
		t.Fatal(err)
	}
	want := []string{defaultCurve, circuitjson.DefaultCurveType, circuitjson.DefaultHash}
	got := []string{cfg.Curve, cfg.CurveType, cfg.Hash}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("defaults (-want +got):\n%s", diff)
	}
}

func TestEmitConfigBadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emit.yaml")
	if err := os.WriteFile(path, []byte("inputs:\n  Y: [1, 2]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := &EmitConfig{MainConfig: &MainConfig{}, ConfigFile: path, Inputs: map[string]string{}}
	if err := cfg.load(); err == nil {
		t.Error("expected an error for a non scalar input")
	}
}

func TestInputList(t *testing.T) {
	c, err := plonk.Lookup("mul")
	if err != nil {
		t.Fatal(err)
	}
	if got := inputList(c); got != "Z (public), x, y" {
		t.Errorf("got %q", got)
	}
}
