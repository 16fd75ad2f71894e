package pack

import (
	"fmt"

	"github.com/arloliu/listcrunch/errs"
	"github.com/arloliu/listcrunch/format"
	"github.com/arloliu/listcrunch/internal/options"
)

type config struct {
	compression format.CompressionType
	escaped     bool
}

func newConfig() *config {
	return &config{compression: format.CompressionZstd}
}

// Option configures Encode.
type Option = options.Option[*config]

// WithCompression selects the payload compression. The default is
// format.CompressionZstd.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(c *config) error {
		if !compression.IsValid() {
			return fmt.Errorf("%w: %s (0x%02x)", errs.ErrInvalidCompression, compression, uint8(compression))
		}
		c.compression = compression

		return nil
	})
}

// WithEscapedValues records that the crunched text was produced with
// listcrunch.WithEscaping, so decoders know to unescape values.
func WithEscapedValues(escaped bool) Option {
	return options.NoError(func(c *config) {
		c.escaped = escaped
	})
}
