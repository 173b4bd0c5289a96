package snapshot

import "github.com/klauspost/compress/zstd"

// DefaultEncoderLevel balances ratio and speed for checkpoint-sized payloads.
const DefaultEncoderLevel = zstd.SpeedDefault

// Option configures Encode.
type Option func(*options)

type options struct {
	level zstd.EncoderLevel
}

// WithEncoderLevel selects the zstd compression level.
// Panics if level is outside [zstd.SpeedFastest, zstd.SpeedBestCompression].
func WithEncoderLevel(level zstd.EncoderLevel) Option {
	if level < zstd.SpeedFastest || level > zstd.SpeedBestCompression {
		panic("snapshot: WithEncoderLevel: unknown zstd level " + level.String())
	}

	return func(o *options) { o.level = level }
}

// WithZstdLevel maps a classic zstd level (1..22) onto the nearest encoder
// level, as zstd.EncoderLevelFromZstd does.
func WithZstdLevel(level int) Option {
	return WithEncoderLevel(zstd.EncoderLevelFromZstd(level))
}

func gatherOptions(opts ...Option) options {
	o := options{level: DefaultEncoderLevel}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
