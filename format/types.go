package format

// Delimiters of the crunched grammar.
//
//	crunched := "" | segment (";" segment)*
//	segment  := value ":" runlist
//	runlist  := run ("," run)*
//	run      := INTEGER | INTEGER "-" INTEGER
const (
	SegmentSep = ';' // SegmentSep separates value segments.
	ValueSep   = ':' // ValueSep separates a value from its run list.
	RunSep     = ',' // RunSep separates runs within a run list.
	RangeSep   = '-' // RangeSep separates the start and end of a multi-position run.
	EscapeChar = '\\'
)

type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the supported compression types.
func (c CompressionType) IsValid() bool {
	switch c {
	case CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4:
		return true
	default:
		return false
	}
}
