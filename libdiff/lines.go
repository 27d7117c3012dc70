package libdiff

import (
	"io"
	"strings"

	"github.com/fatih/color"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines diffs from and to line by line. Each returned diff holds whole
// lines including their terminating newline.
func Lines(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	fromRunes, toRunes, lines := diffCfg.DiffLinesToRunes(from, to)
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	return diffCfg.DiffCharsToLines(diffs, lines)
}

// Differ reports whether any diff is an insertion or deletion.
func Differ(diffs []diffpatch.Diff) bool {
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			return true
		}
	}
	return false
}

var (
	delColor = color.New(color.FgRed).SprintFunc()
	insColor = color.New(color.FgGreen).SprintFunc()
)

// Write prints diffs to w, prefixing deleted lines with "-", inserted lines
// with "+" and unchanged lines with a space. It returns whether anything
// differed.
func Write(w io.Writer, diffs []diffpatch.Diff, colors bool) (bool, error) {
	differs := false
	for i := range diffs {
		diff := &diffs[i]
		prefix, paint := " ", fmtNone
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix, paint = "-", delColor
			differs = true
		case diffpatch.DiffInsert:
			prefix, paint = "+", insColor
			differs = true
		}
		if !colors {
			paint = fmtNone
		}
		for _, ln := range splitLines(diff.Text) {
			if _, err := io.WriteString(w, paint(prefix+ln)+"\n"); err != nil {
				return differs, err
			}
		}
	}
	return differs, nil
}

func fmtNone(a ...any) string {
	return a[0].(string)
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}
