package encode

const indentStep = "    "

// Indent accumulates the indentation of the container being encoded.
//
// Encode pushes one step when it enters an object or array and pops it
// when it leaves, so the buffer is back to its prior length when Encode
// returns. An Indent must not be shared by concurrent calls.
type Indent struct {
	buf []byte
}

func NewIndent() *Indent {
	return &Indent{}
}

func (in *Indent) Push() {
	in.buf = append(in.buf, indentStep...)
}

// Pop removes one step. Popping an empty Indent leaves it empty.
func (in *Indent) Pop() {
	if len(in.buf) < len(indentStep) {
		in.buf = in.buf[:0]
		return
	}
	in.buf = in.buf[:len(in.buf)-len(indentStep)]
}

func (in *Indent) Len() int { return len(in.buf) }

func (in *Indent) Bytes() []byte { return in.buf }

func (in *Indent) String() string { return string(in.buf) }
