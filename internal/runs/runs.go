// Package runs compresses ascending position lists into maximal contiguous runs.
package runs

import (
	"iter"
	"strconv"

	"github.com/arloliu/listcrunch/format"
)

// Run is an inclusive range of positions [Start, End].
// A run with Start == End covers a single position.
type Run struct {
	Start int
	End   int
}

// Len returns the number of positions covered by the run, 0 if End < Start.
func (r Run) Len() int {
	if r.End < r.Start {
		return 0
	}

	return r.End - r.Start + 1
}

// AppendText appends the textual form of the run to dst: "start" for a single
// position, "start-end" otherwise.
func (r Run) AppendText(dst []byte) []byte {
	dst = strconv.AppendInt(dst, int64(r.Start), 10)
	if r.End != r.Start {
		dst = append(dst, format.RangeSep)
		dst = strconv.AppendInt(dst, int64(r.End), 10)
	}

	return dst
}

func (r Run) String() string {
	return string(r.AppendText(make([]byte, 0, 24)))
}

// Compress turns an ascending, duplicate-free list of positions into the
// minimal list of maximal contiguous runs covering exactly those positions.
//
// The current run is extended while the next position equals its end plus
// one; any gap closes it and starts a new run.
//
// Parameters:
//   - positions: Ascending, duplicate-free positions
//
// Returns:
//   - []Run: Runs in ascending order, nil for an empty input
func Compress(positions []int) []Run {
	if len(positions) == 0 {
		return nil
	}

	result := make([]Run, 0, 4)
	cur := Run{Start: positions[0], End: positions[0]}

	for _, pos := range positions[1:] {
		if pos == cur.End+1 {
			cur.End = pos
			continue
		}
		result = append(result, cur)
		cur = Run{Start: pos, End: pos}
	}

	return append(result, cur)
}

// AppendList appends runs to dst joined by ','.
func AppendList(dst []byte, runs []Run) []byte {
	for i, r := range runs {
		if i > 0 {
			dst = append(dst, format.RunSep)
		}
		dst = r.AppendText(dst)
	}

	return dst
}

// Count returns the total number of positions covered by runs.
func Count(runs []Run) int {
	n := 0
	for _, r := range runs {
		n += r.Len()
	}

	return n
}

// Positions yields every position covered by runs, in run order.
// Runs with End < Start yield nothing.
func Positions(runs []Run) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, r := range runs {
			for pos := r.Start; pos <= r.End; pos++ {
				if !yield(pos) {
					return
				}
			}
		}
	}
}
