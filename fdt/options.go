package fdt

import "github.com/rs/zerolog"

// DupPolicy decides what happens when one node declares the same property
// name twice. The format itself leaves this unspecified, so it is a caller
// policy rather than a parser opinion.
type DupPolicy int

const (
	// DupLastWins keeps the later occurrence, matching the behavior of
	// map-insert based consumers. This is the default.
	DupLastWins DupPolicy = iota
	// DupFirstWins keeps the earlier occurrence.
	DupFirstWins
	// DupReject fails the parse with ErrDuplicateProperty.
	DupReject
)

// Options configures parsing.
type Options struct {
	// ZeroCopy keeps property values as views into the input buffer. The
	// buffer must then outlive the Tree. When false (the default), values
	// are copied into tree-owned storage and the input may be discarded
	// after Parse returns.
	ZeroCopy bool

	// DuplicateProps selects the duplicate-property-name policy.
	DuplicateProps DupPolicy

	// Logger receives diagnostic parse events (header validated, node
	// opened/closed, malformed token). It never influences parse results.
	// Defaults to a no-op logger.
	Logger *zerolog.Logger
}

// logger returns the configured sink or a disabled one.
func (o Options) logger() zerolog.Logger {
	if o.Logger != nil {
		return *o.Logger
	}
	return zerolog.Nop()
}
