package circuitjson

import "github.com/signadot/circuit-json/encode"

type Option func(*config)

type config struct {
	curveType string
	hash      string
	encOpts   []encode.EncodeOption
}

func newConfig(opts []Option) *config {
	cfg := &config{
		curveType: DefaultCurveType,
		hash:      DefaultHash,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithCurveType replaces the curve_type literal.
func WithCurveType(v string) Option {
	return func(c *config) { c.curveType = v }
}

// WithHash replaces the hash literal.
func WithHash(v string) Option {
	return func(c *config) { c.hash = v }
}

func WithEncodeOptions(opts ...encode.EncodeOption) Option {
	return func(c *config) { c.encOpts = append(c.encOpts, opts...) }
}
