package encode

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/circuit-json/ir"
	"github.com/signadot/circuit-json/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	indent *Indent

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w as indented JSON.
//
// Objects and arrays open with their bracket and a newline, put each
// member on its own line one indentation step deeper, separate members
// with ",\n" and close with "\n", the outer indentation and the closing
// bracket. Object members are written as key " : " value. Empty containers
// are not compacted: an empty object is "{\n\n}".
//
// Unless EncodeIndent supplies a non-empty indentation, the output ends
// with a single newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if es.indent == nil {
		es.indent = NewIndent()
	}
	return encode(node, w, es)
}

// Helper functions for writing
func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writeIndent(w io.Writer, es *EncState) error {
	if es.indent.Len() == 0 {
		return nil
	}
	_, err := w.Write(es.indent.Bytes())
	return err
}

// Color application helpers

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func writeSep(w io.Writer, es *EncState, cType ir.Type, sep string) error {
	return writeString(w, applyColor(es, cType, SepColor, sep))
}

// Main encode function

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if err := encodeValue(node, w, es); err != nil {
		return err
	}
	if es.indent.Len() == 0 {
		return writeString(w, "\n")
	}
	return nil
}

func encodeValue(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.UintType:
		return writeValue(w, es, ir.UintType, token.FormatUint(node.Uint64))
	case ir.IntType:
		return writeValue(w, es, ir.IntType, token.FormatInt(node.Int64))
	case ir.FloatType:
		return encodeFloat(node, w, es)
	case ir.BoolType:
		return encodeBool(node, w, es)
	case ir.NullType:
		return writeValue(w, es, ir.NullType, "null")
	default:
		panic("type")
	}
}

// encodeObject
func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	if err := encodeObjectFields(node, w, es); err != nil {
		return err
	}
	if err := writeIndent(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

func encodeObjectFields(node *ir.Node, w io.Writer, es *EncState) error {
	es.indent.Push()
	defer es.indent.Pop()
	for i, field := range node.Fields {
		if err := writeIndent(w, es); err != nil {
			return err
		}
		if err := writeField(w, field, es); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
		if i < len(node.Fields)-1 {
			if err := writeCommaSeparator(w, es, ir.ObjectType); err != nil {
				return err
			}
		}
	}
	return writeString(w, "\n")
}

func writeField(w io.Writer, field string, es *EncState) error {
	key := applyColor(es, ir.ObjectType, FieldColor, token.Quote(field))
	if err := writeString(w, key); err != nil {
		return err
	}
	return writeSep(w, es, ir.ObjectType, " : ")
}

func writeCommaSeparator(w io.Writer, es *EncState, cType ir.Type) error {
	if err := writeSep(w, es, cType, ","); err != nil {
		return err
	}
	return writeString(w, "\n")
}

// Array encoding

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	if err := encodeArrayElements(node, w, es); err != nil {
		return err
	}
	if err := writeIndent(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ArrayType, "]")
}

func encodeArrayElements(node *ir.Node, w io.Writer, es *EncState) error {
	es.indent.Push()
	defer es.indent.Pop()
	for i, v := range node.Values {
		if err := writeIndent(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
		if i < len(node.Values)-1 {
			if err := writeCommaSeparator(w, es, ir.ArrayType); err != nil {
				return err
			}
		}
	}
	return writeString(w, "\n")
}

// Leaf encoding

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	return writeValue(w, es, ir.StringType, token.Quote(node.String))
}

func encodeFloat(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := token.FormatFloat(node.Float64)
	if err != nil {
		return fmt.Errorf("%w at %s: %w", ErrEncoding, node.Path(), err)
	}
	return writeValue(w, es, ir.FloatType, v)
}

func encodeBool(node *ir.Node, w io.Writer, es *EncState) error {
	v := "false"
	if node.Bool {
		v = "true"
	}
	return writeValue(w, es, ir.BoolType, v)
}

func writeValue(w io.Writer, es *EncState, t ir.Type, v string) error {
	return writeString(w, applyColor(es, t, ValueColor, v))
}
