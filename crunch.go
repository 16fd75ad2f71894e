package listcrunch

import (
	"fmt"

	"github.com/arloliu/listcrunch/format"
	"github.com/arloliu/listcrunch/internal/index"
	"github.com/arloliu/listcrunch/internal/options"
	"github.com/arloliu/listcrunch/internal/pool"
	"github.com/arloliu/listcrunch/internal/runs"
)

type crunchConfig struct {
	escape bool
}

// CrunchOption configures Crunch and CrunchFunc.
type CrunchOption = options.Option[*crunchConfig]

// WithEscaping backslash-escapes '\', ':' and ';' inside rendered values.
//
// Output produced with this option must be decoded with WithUnescaping.
// Values without those characters are written exactly as without the option.
func WithEscaping() CrunchOption {
	return options.NoError(func(c *crunchConfig) {
		c.escape = true
	})
}

// Crunch compresses items into a crunched string, rendering each distinct
// value with fmt.Sprint.
//
// Returns "" for an empty input. Crunch never fails.
//
// Example:
//
//	pages := []string{"595.0x842.0", "595.0x842.0", "612.0x792.0", "595.0x842.0"}
//	listcrunch.Crunch(pages) // "595.0x842.0:0-1,3;612.0x792.0:2"
func Crunch[T comparable](items []T, opts ...CrunchOption) string {
	return CrunchFunc(items, func(v T) string { return fmt.Sprint(v) }, opts...)
}

// CrunchFunc is like Crunch but renders values with render.
//
// render is called once per distinct value, in order of first occurrence.
// Grouping uses Go equality on T; values that compare unequal but render to
// the same text produce separate segments with identical value text.
//
// Parameters:
//   - items: Sequence to compress (read-only)
//   - render: Textual rendering of a value
//   - opts: Optional configuration (see WithEscaping)
//
// Returns:
//   - string: The crunched string
func CrunchFunc[T comparable](items []T, render func(T) string, opts ...CrunchOption) string {
	if len(items) == 0 {
		return ""
	}

	cfg := &crunchConfig{}
	// Crunch options cannot fail.
	_ = options.Apply(cfg, opts...)

	groups := index.Build(items)

	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)
	buf.Grow(len(groups) * 16)

	for i, g := range groups {
		if i > 0 {
			buf.B = append(buf.B, format.SegmentSep)
		}
		buf.B = format.AppendValue(buf.B, render(g.Value), cfg.escape)
		buf.B = append(buf.B, format.ValueSep)
		buf.B = runs.AppendList(buf.B, runs.Compress(g.Positions))
	}

	return buf.String()
}
