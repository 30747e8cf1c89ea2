// Package config holds the settings that govern how govariant encodes and
// decodes values: byte order and the limits that keep a malformed input
// from running away with memory.
package config

// Endian selects the byte order applied to multi-byte scalars. GVariant
// proper is always little-endian; Big exists to support systems (notably
// OSTree) that store GVariant-shaped records in network byte order. Framing
// offsets are unaffected by this setting: they are always little-endian,
// per the GVariant wire format.
type Endian int

const (
	// Little is GVariant's native byte order and the default.
	Little Endian = iota
	// Big supports OSTree-style records written in network byte order.
	Big
)

// defaultMaxStringLen is the upper bound on bytes read before a string is
// declared malformed, matching the GVariant/glib default.
const defaultMaxStringLen = 8192

// Config is an immutable set of codec options. Build one with New and the
// chaining setters; a Config is safe to share across concurrent encode/
// decode calls once constructed.
type Config struct {
	endian       Endian
	maxStringLen int
	offsetWidth  int // 0 means "derive from container size"; encode-only override for test harnesses.
	strict       bool
}

// New returns the default configuration: little-endian, 8192-byte string
// cap, derived offset widths, non-strict boolean decoding.
func New() Config {
	return Config{
		endian:       Little,
		maxStringLen: defaultMaxStringLen,
	}
}

// WithEndian returns a copy of cfg with the given byte order.
func (cfg Config) WithEndian(e Endian) Config {
	cfg.endian = e
	return cfg
}

// WithMaxStringLen returns a copy of cfg with the given string-length cap.
// A value of 0 disables the cap.
func (cfg Config) WithMaxStringLen(n int) Config {
	cfg.maxStringLen = n
	return cfg
}

// WithOffsetWidth forces the encoder to use the given framing-offset width
// (1, 2, 4 or 8) instead of deriving it from the container size. Intended
// for test harnesses that need to probe specific widths; 0 restores normal
// derivation.
func (cfg Config) WithOffsetWidth(w int) Config {
	cfg.offsetWidth = w
	return cfg
}

// WithStrict returns a copy of cfg with strict-mode decoding enabled: a
// boolean byte other than 0/1 is rejected instead of coerced to true, and
// malformed UTF-8 in strings is rejected instead of lossily substituted.
func (cfg Config) WithStrict(strict bool) Config {
	cfg.strict = strict
	return cfg
}

// Endian returns the configured byte order.
func (cfg Config) Endian() Endian { return cfg.endian }

// MaxStringLen returns the configured string-length cap (0 = unlimited).
func (cfg Config) MaxStringLen() int { return cfg.maxStringLen }

// OffsetWidthOverride returns the forced offset width, or 0 if the encoder
// should derive it from container size.
func (cfg Config) OffsetWidthOverride() int { return cfg.offsetWidth }

// Strict reports whether strict-mode decoding is enabled.
func (cfg Config) Strict() bool { return cfg.strict }
