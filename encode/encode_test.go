package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"github.com/signadot/circuit-json/ir"
)

func obj(kvs ...ir.KeyVal) *ir.Node { return ir.FromKeyVals(kvs) }
func arr(vs ...*ir.Node) *ir.Node   { return ir.FromSlice(vs) }
func kv(k string, v *ir.Node) ir.KeyVal {
	return ir.KeyVal{Key: k, Val: v}
}

func render(t *testing.T, node *ir.Node, opts ...EncodeOption) string {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := Encode(node, buf, opts...); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.String()
}

func TestEncodeScenario(t *testing.T) {
	node := obj(
		kv("a", ir.FromUint(1)),
		kv("b", arr(ir.FromBool(true), ir.Null())),
	)
	want := "{\n" +
		"    \"a\" : 1,\n" +
		"    \"b\" : [\n" +
		"        true,\n" +
		"        null\n" +
		"    ]\n" +
		"}\n"
	if diff := cmp.Diff(want, render(t, node)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeLeaves(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"string", ir.FromString("pallas"), "\"pallas\"\n"},
		{"escaped", ir.FromString("a\"b\\c\nd\x01"), `"a\"b\\c\nd\u0001"` + "\n"},
		{"uint", ir.FromUint(math.MaxUint64), "18446744073709551615\n"},
		{"int", ir.FromInt(-42), "-42\n"},
		{"zero int", ir.FromInt(0), "0\n"},
		{"float", ir.FromFloat(2.5), "2.5\n"},
		{"small float", ir.FromFloat(1e-9), "1e-9\n"},
		{"true", ir.FromBool(true), "true\n"},
		{"false", ir.FromBool(false), "false\n"},
		{"null", ir.Null(), "null\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, tt.node); got != tt.want {
				t.Errorf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeEmptyContainers(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"object", obj(), "{\n\n}\n"},
		{"array", arr(), "[\n\n]\n"},
		{"nested object", obj(kv("desc", obj())),
			"{\n    \"desc\" : {\n\n    }\n}\n"},
		{"nested array", arr(arr(arr())),
			"[\n    [\n        [\n\n        ]\n    ]\n]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, render(t, tt.node)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func sampleTree() *ir.Node {
	return obj(
		kv("curve_type", ir.FromString("pallas")),
		kv("zeta", arr(ir.FromUint(3), ir.FromInt(-1), ir.FromFloat(0.25))),
		kv("alpha", obj(
			kv("nested", arr(obj(kv("k", ir.FromString("tab\there"))), arr())),
			kv("empty", obj()),
			kv("flag", ir.FromBool(false)),
		)),
		kv("quote\"key", ir.Null()),
	)
}

func TestEncodeDeterministic(t *testing.T) {
	a := render(t, sampleTree())
	b := render(t, sampleTree())
	if a != b {
		t.Errorf("two renders differ:\n%s", cmp.Diff(a, b))
	}
}

func TestEncodeTrailingNewline(t *testing.T) {
	out := render(t, sampleTree())
	if !strings.HasSuffix(out, "}\n") || strings.HasSuffix(out, "\n\n") {
		t.Errorf("expected exactly one trailing newline, got %q", out[len(out)-4:])
	}
	if n := strings.Count(out, "\n}\n"); n != 1 {
		t.Errorf("top level close found %d times", n)
	}
}

// Every line of a container opened at depth d must be indented by
// 4(d+1) spaces, and its closing line by 4d.
func TestEncodeIndentation(t *testing.T) {
	out := render(t, sampleTree())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	depth := 0
	for i, ln := range lines {
		trimmed := strings.TrimLeft(ln, " ")
		if trimmed == "" {
			// blank body line of an empty container
			if ln != "" {
				t.Errorf("line %d: blank line carries spaces: %q", i, ln)
			}
			continue
		}
		closing := trimmed[0] == '}' || trimmed[0] == ']'
		want := depth
		if closing {
			depth--
			want = depth
		}
		if got := len(ln) - len(trimmed); got != 4*want {
			t.Errorf("line %d %q: indent %d want %d", i, ln, got, 4*want)
		}
		last := trimmed[len(trimmed)-1]
		if last == '{' || last == '[' {
			depth++
		}
	}
	if depth != 0 {
		t.Errorf("unbalanced output, final depth %d", depth)
	}
}

// decodeTree rebuilds a tree from encoded output with encoding/json,
// keeping object key order.
func decodeTree(t *testing.T, d []byte) *ir.Node {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var read func() *ir.Node
	read = func() *ir.Node {
		tok, err := dec.Token()
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		switch v := tok.(type) {
		case json.Delim:
			if v == '[' {
				var vals []*ir.Node
				for dec.More() {
					vals = append(vals, read())
				}
				dec.Token()
				return ir.FromSlice(vals)
			}
			var kvs []ir.KeyVal
			for dec.More() {
				k, err := dec.Token()
				if err != nil {
					t.Fatalf("decode key: %v", err)
				}
				kvs = append(kvs, ir.KeyVal{Key: k.(string), Val: read()})
			}
			dec.Token()
			return ir.FromKeyVals(kvs)
		case json.Number:
			if u, err := strconv.ParseUint(v.String(), 10, 64); err == nil {
				return ir.FromUint(u)
			}
			if i, err := strconv.ParseInt(v.String(), 10, 64); err == nil {
				return ir.FromInt(i)
			}
			f, err := v.Float64()
			if err != nil {
				t.Fatalf("decode number %s: %v", v, err)
			}
			return ir.FromFloat(f)
		case string:
			return ir.FromString(v)
		case bool:
			return ir.FromBool(v)
		case nil:
			return ir.Null()
		}
		t.Fatalf("unexpected token %v", tok)
		return nil
	}
	return read()
}

func TestEncodePreservesStructure(t *testing.T) {
	node := sampleTree()
	back := decodeTree(t, []byte(render(t, node)))
	if ir.Compare(node, back) != 0 {
		t.Errorf("decoded tree differs:\n%s", render(t, back))
	}
}

func TestEncodeSharedIndent(t *testing.T) {
	in := NewIndent()
	in.Push()
	node := obj(kv("a", arr(ir.FromUint(1))))
	got := render(t, node, EncodeIndent(in))
	want := "{\n" +
		"        \"a\" : [\n" +
		"            1\n" +
		"        ]\n" +
		"    }"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if in.String() != "    " {
		t.Errorf("indent not restored: %q", in.String())
	}
}

type failWriter struct {
	n   int
	err error
}

func (f *failWriter) Write(p []byte) (int, error) {
	if f.n <= 0 {
		return 0, f.err
	}
	f.n--
	return len(p), nil
}

func TestEncodeWriterErrorPropagates(t *testing.T) {
	sinkErr := errors.New("disk full")
	for n := 0; n < 12; n++ {
		in := NewIndent()
		err := Encode(sampleTree(), &failWriter{n: n, err: sinkErr}, EncodeIndent(in))
		if err != sinkErr {
			t.Errorf("after %d writes: got %v want the sink error unmodified", n, err)
		}
		if in.Len() != 0 {
			t.Errorf("after %d writes: indent left at %d", n, in.Len())
		}
	}
}

func TestEncodeNonFiniteFloat(t *testing.T) {
	node := obj(kv("x", arr(ir.FromFloat(math.NaN()))))
	err := Encode(node, io.Discard)
	if !errors.Is(err, ErrEncoding) {
		t.Fatalf("expected ErrEncoding, got %v", err)
	}
	if !strings.Contains(err.Error(), "$.x[0]") {
		t.Errorf("error should locate the value: %v", err)
	}
}

func TestEncodeUnknownTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on unknown type")
		}
	}()
	Encode(&ir.Node{Type: ir.Type(99)}, io.Discard)
}

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestEncodeColors(t *testing.T) {
	save := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = save }()

	plain := render(t, sampleTree())
	colored := render(t, sampleTree(), EncodeColors(NewColors()))
	if colored == plain {
		t.Fatal("expected colored output to differ")
	}
	if stripped := ansi.ReplaceAllString(colored, ""); stripped != plain {
		t.Errorf("stripped colored output differs:\n%s", cmp.Diff(plain, stripped))
	}
}

func TestMustString(t *testing.T) {
	if got := MustString(arr(ir.FromString("x"))); got != "[\n    \"x\"\n]\n" {
		t.Errorf("got %q", got)
	}
}
