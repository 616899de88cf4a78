package boundaries

import (
	"log/slog"
	"slices"
)

// options holds configuration settings for the extractor.
type options struct {
	granularities      []string
	sentenceDelimiters []string
	tokenDelimiters    []string
	logger             *slog.Logger
}

// Option is a function type for configuring the extractor.
type Option func(*options)

func defaultOptions() options {
	names := make([]string, len(defaultGranularityHierarchy))
	for i, g := range defaultGranularityHierarchy {
		names[i] = string(g)
	}
	return options{
		granularities:      names,
		sentenceDelimiters: slices.Clone(defaultSentenceDelimiters),
		tokenDelimiters:    slices.Clone(defaultTokenDelimiters),
	}
}

// WithGranularities sets the requested levels, coarsest first.
func WithGranularities(levels ...Granularity) Option {
	return func(o *options) {
		o.granularities = make([]string, len(levels))
		for i, g := range levels {
			o.granularities[i] = string(g)
		}
	}
}

// WithGranularityNames is like WithGranularities but takes raw names, which
// are validated when the extractor is built.
func WithGranularityNames(names ...string) Option {
	return func(o *options) {
		o.granularities = slices.Clone(names)
	}
}

// WithSentenceDelimiters sets the delimiters used for sentence boundaries
// when the document carries no annotation.
func WithSentenceDelimiters(delimiters ...string) Option {
	return func(o *options) {
		if len(delimiters) > 0 {
			o.sentenceDelimiters = slices.Clone(delimiters)
		}
	}
}

// WithTokenDelimiters sets the delimiters used for token boundaries when the
// document carries no annotation.
func WithTokenDelimiters(delimiters ...string) Option {
	return func(o *options) {
		if len(delimiters) > 0 {
			o.tokenDelimiters = slices.Clone(delimiters)
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
