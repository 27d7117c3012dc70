package encode

type EncodeOption func(*EncState)

// EncodeIndent makes Encode start from, and share, the indentation in
// in rather than a fresh empty one.
func EncodeIndent(in *Indent) EncodeOption {
	return func(es *EncState) { es.indent = in }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
