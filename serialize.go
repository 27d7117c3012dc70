package circuitjson

import (
	"io"

	"github.com/signadot/circuit-json/encode"
	"github.com/signadot/circuit-json/ir"
)

const (
	DefaultCurveType = "pallas"
	DefaultHash      = "keccak_1600<256>"
)

// Document is the top level of a serialized circuit.
type Document struct {
	CurveType        string
	Hash             string
	PublicAssignment *ir.Node
	Desc             *ir.Node
	Blueprint        *ir.Node
}

func (d *Document) ToIR() (*ir.Node, error) {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "curve_type", Val: ir.FromString(d.CurveType)},
		{Key: "hash", Val: ir.FromString(d.Hash)},
		{Key: "public_assignment", Val: d.PublicAssignment},
		{Key: "desc", Val: d.Desc},
		{Key: "bp", Val: d.Blueprint},
	}), nil
}

// NewDocument converts the table description, the public assignment table
// and the blueprint to trees. Errors from the conversions are returned as
// is.
func NewDocument(desc, publicAssignment, bp ir.Marshaler, opts ...Option) (*Document, error) {
	return newDocument(newConfig(opts), desc, publicAssignment, bp)
}

func newDocument(cfg *config, desc, publicAssignment, bp ir.Marshaler) (*Document, error) {
	pub, err := publicAssignment.ToIR()
	if err != nil {
		return nil, err
	}
	d, err := desc.ToIR()
	if err != nil {
		return nil, err
	}
	b, err := bp.ToIR()
	if err != nil {
		return nil, err
	}
	return &Document{
		CurveType:        cfg.curveType,
		Hash:             cfg.hash,
		PublicAssignment: pub,
		Desc:             d,
		Blueprint:        b,
	}, nil
}

// Build returns the document tree without printing it.
func Build(desc, publicAssignment, bp ir.Marshaler, opts ...Option) (*ir.Node, error) {
	return build(newConfig(opts), desc, publicAssignment, bp)
}

func build(cfg *config, desc, publicAssignment, bp ir.Marshaler) (*ir.Node, error) {
	doc, err := newDocument(cfg, desc, publicAssignment, bp)
	if err != nil {
		return nil, err
	}
	return doc.ToIR()
}

// Serialize writes the circuit document for desc, publicAssignment and bp
// to w. Write errors from w are returned unmodified.
func Serialize(w io.Writer, desc, publicAssignment, bp ir.Marshaler, opts ...Option) error {
	cfg := newConfig(opts)
	node, err := build(cfg, desc, publicAssignment, bp)
	if err != nil {
		return err
	}
	return encode.Encode(node, w, cfg.encOpts...)
}
