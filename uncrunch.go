package listcrunch

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/arloliu/listcrunch/errs"
	"github.com/arloliu/listcrunch/format"
	"github.com/arloliu/listcrunch/internal/options"
	"github.com/arloliu/listcrunch/internal/pool"
	"github.com/arloliu/listcrunch/internal/runs"
)

type uncrunchConfig struct {
	unescape     bool
	strict       bool
	maxPositions int // 0 means unlimited
}

// UncrunchOption configures Parse and Uncrunch.
type UncrunchOption = options.Option[*uncrunchConfig]

// WithUnescaping honors the backslash escapes written by WithEscaping.
func WithUnescaping() UncrunchOption {
	return options.NoError(func(c *uncrunchConfig) {
		c.unescape = true
	})
}

// WithStrictCoverage requires the decoded positions to be exactly 0..n-1,
// each appearing once. Violations fail with errs.ErrInvalidCoverage.
func WithStrictCoverage() UncrunchOption {
	return options.NoError(func(c *uncrunchConfig) {
		c.strict = true
	})
}

// WithMaxPositions limits the total number of positions a crunched string may
// expand to. Exceeding it fails with errs.ErrTooManyPositions before any
// expansion takes place. n must be positive.
func WithMaxPositions(n int) UncrunchOption {
	return options.New(func(c *uncrunchConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidMaxPositions, n)
		}
		c.maxPositions = n

		return nil
	})
}

// Segment is one parsed "value:runlist" unit of a crunched string.
type Segment struct {
	Value string
	Runs  []runs.Run
}

// Len returns the number of positions covered by the segment.
func (s Segment) Len() int {
	return runs.Count(s.Runs)
}

// Positions yields every position covered by the segment, in run order.
func (s Segment) Positions() iter.Seq[int] {
	return runs.Positions(s.Runs)
}

// Parse parses a crunched string into its segments without expanding them.
//
// Blank or whitespace-only input yields no segments. Each ';'-delimited
// segment must contain exactly one ':'. Each ','-delimited run is either an
// unsigned 32-bit position, optionally prefixed by '+', or two signed 32-bit
// integers joined by a single '-'. A range whose end is before its start is
// kept and covers no positions.
//
// Parameters:
//   - s: Crunched string
//   - opts: Optional configuration (WithUnescaping, WithMaxPositions)
//
// Returns:
//   - []Segment: Segments in the order they appear in s
//   - error: A wrapped errs.ErrMalformedSegment, errs.ErrMalformedRange,
//     errs.ErrMalformedPosition or errs.ErrTooManyPositions; no partial result
//     is returned on error
func Parse(s string, opts ...UncrunchOption) ([]Segment, error) {
	cfg := &uncrunchConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return parse(s, cfg)
}

func parse(s string, cfg *uncrunchConfig) ([]Segment, error) {
	if strings.TrimSpace(s) == "" {
		return []Segment{}, nil
	}

	parts := format.Split(s, format.SegmentSep, cfg.unescape)
	segments := make([]Segment, 0, len(parts))
	total := 0

	for _, part := range parts {
		fields := format.Split(part, format.ValueSep, cfg.unescape)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: %q", errs.ErrMalformedSegment, part)
		}

		value := fields[0]
		if cfg.unescape {
			value = format.Unescape(value)
		}

		tokens := strings.Split(fields[1], string(format.RunSep))
		seg := Segment{Value: value, Runs: make([]runs.Run, 0, len(tokens))}
		for _, token := range tokens {
			r, err := parseRun(token)
			if err != nil {
				return nil, err
			}
			seg.Runs = append(seg.Runs, r)

			total += r.Len()
			if cfg.maxPositions > 0 && total > cfg.maxPositions {
				return nil, fmt.Errorf("%w: more than %d", errs.ErrTooManyPositions, cfg.maxPositions)
			}
		}

		segments = append(segments, seg)
	}

	return segments, nil
}

func parseRun(token string) (runs.Run, error) {
	startText, endText, isRange := strings.Cut(token, string(format.RangeSep))
	if !isRange {
		// ParseUint has no sign handling; accept one explicit '+'.
		pos, err := strconv.ParseUint(strings.TrimPrefix(token, "+"), 10, 32)
		if err != nil {
			return runs.Run{}, fmt.Errorf("%w: %q", errs.ErrMalformedPosition, token)
		}

		return runs.Run{Start: int(pos), End: int(pos)}, nil
	}

	if strings.IndexByte(endText, format.RangeSep) >= 0 {
		return runs.Run{}, fmt.Errorf("%w: %q", errs.ErrMalformedRange, token)
	}

	start, err := strconv.ParseInt(startText, 10, 32)
	if err != nil {
		return runs.Run{}, fmt.Errorf("%w: %q", errs.ErrMalformedRange, token)
	}
	end, err := strconv.ParseInt(endText, 10, 32)
	if err != nil {
		return runs.Run{}, fmt.Errorf("%w: %q", errs.ErrMalformedRange, token)
	}

	return runs.Run{Start: int(start), End: int(end)}, nil
}

type slot struct {
	pos   int
	value string
}

var slotPool = pool.NewSlicePool[slot]()

// Uncrunch reconstructs the textual renderings of a crunched sequence.
//
// Every (position, value) pair described by s is collected, stably sorted by
// position and the values are returned in that order. Blank input yields an
// empty, non-nil slice. Unless WithStrictCoverage is given, gaps and duplicate
// positions are not reported.
//
// Parameters:
//   - s: Crunched string
//   - opts: Optional configuration (see WithUnescaping, WithStrictCoverage, WithMaxPositions)
//
// Returns:
//   - []string: Values ordered by position
//   - error: A wrapped sentinel from package errs; no partial result is returned on error
//
// Example:
//
//	values, err := listcrunch.Uncrunch("595.0x842.0:0-6")
//	// 7 x "595.0x842.0", nil
func Uncrunch(s string, opts ...UncrunchOption) ([]string, error) {
	cfg := &uncrunchConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	segments, err := parse(s, cfg)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, seg := range segments {
		total += seg.Len()
	}

	slots, cleanup := slotPool.Get(total)
	defer cleanup()

	for _, seg := range segments {
		for pos := range seg.Positions() {
			*slots = append(*slots, slot{pos: pos, value: seg.Value})
		}
	}

	slices.SortStableFunc(*slots, func(a, b slot) int {
		return cmp.Compare(a.pos, b.pos)
	})

	values := make([]string, len(*slots))
	for i, sl := range *slots {
		if cfg.strict && sl.pos != i {
			return nil, coverageError(*slots, i)
		}
		values[i] = sl.value
	}

	return values, nil
}

// coverageError describes the first slot at index i whose position is not i.
func coverageError(slots []slot, i int) error {
	if i > 0 && slots[i].pos == slots[i-1].pos {
		return fmt.Errorf("%w: position %d appears more than once", errs.ErrInvalidCoverage, slots[i].pos)
	}

	return fmt.Errorf("%w: position %d is missing", errs.ErrInvalidCoverage, i)
}
