package renderer

import (
	"bytes"
	"fmt"
	"io"

	journal "github.com/fanorama/stock-journal"
)

// ConditionalBlock lets you fully write a block and decide at the end to print
// it or not. If the block function returns true, the content is printed to w,
// otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// rangeLabel describes a reporting range for a heading. A range open at the
// start (only an end date given) reads "up to <date>".
func rangeLabel(rng journal.Range) string {
	switch {
	case rng.IsAllTime():
		return "(all time)"
	case rng.From.IsZero():
		return fmt.Sprintf("up to %s", rng.To.Format("2006-01-02"))
	default:
		return fmt.Sprintf("from %s to %s",
			rng.From.Format("2006-01-02"), rng.To.Format("2006-01-02"))
	}
}
