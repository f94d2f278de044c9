package b000

import "github.com/openscan/b000/internal/options"

type decodeConfig struct {
	checksum *uint64
}

// Option configures a Decode call.
type Option = options.Option[*decodeConfig]

func applyOptions(opts []Option) (*decodeConfig, error) {
	cfg := &decodeConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithChecksum writes the decoded row table's checksum (see ChecksumRows)
// into dst once decoding succeeds. Useful for round-trip tests that compare
// a freshly synthesized row table against the one just decoded.
func WithChecksum(dst *uint64) Option {
	return options.NoError(func(cfg *decodeConfig) {
		cfg.checksum = dst
	})
}
