package convert

import (
	"go.uber.org/zap"

	"infa2sql/internal/gen"
)

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used for load and conversion events.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStrict makes unreadable JSON documents and documents without mappings
// fail instead of yielding an empty result.
func WithStrict(strict bool) Option {
	return func(c *Converter) {
		c.strict = strict
	}
}

// WithGenerator replaces the default SQL generator.
func WithGenerator(g *gen.Generator) Option {
	return func(c *Converter) {
		if g != nil {
			c.generator = g
		}
	}
}

// WithConcurrency bounds the number of mappings rendered at once.
// Values below one mean GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(c *Converter) {
		c.concurrency = n
	}
}
