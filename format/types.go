package format

type (
	CompressionType uint8
	TimeFormat      uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	TimeRelativeSeconds TimeFormat = 0x1 // TimeRelativeSeconds represents seconds relative to the stream origin.
	TimeUnixSeconds     TimeFormat = 0x2 // TimeUnixSeconds represents seconds since the Unix epoch.
	TimeMJD             TimeFormat = 0x3 // TimeMJD represents Modified Julian Date days.
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

func (t TimeFormat) String() string {
	switch t {
	case TimeRelativeSeconds:
		return "RelativeSeconds"
	case TimeUnixSeconds:
		return "UnixSeconds"
	case TimeMJD:
		return "MJD"
	default:
		return "Unknown"
	}
}
