package boundaries

import (
	"fmt"
	"log/slog"
	"slices"
)

// Extractor computes boundary hierarchies for a fixed list of granularities.
// It holds only immutable state and is safe for concurrent use.
type Extractor struct {
	granularities []Granularity
	paragraphs    *Splitter
	sentences     *Splitter
	subparts      *Splitter
	tokens        *Splitter
	logger        *slog.Logger
}

// NewExtractor validates the requested granularities and delimiters once, so
// that Extract itself cannot fail on configuration.
func NewExtractor(opts ...Option) (*Extractor, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	granularities := make([]Granularity, len(o.granularities))
	for i, name := range o.granularities {
		g, err := ParseGranularity(name)
		if err != nil {
			return nil, err
		}
		granularities[i] = g
	}

	e := &Extractor{
		granularities: granularities,
		logger:        o.logger.With("component", "boundary_extractor"),
	}

	var err error
	if e.paragraphs, err = NewSplitter(paragraphDelimiters...); err != nil {
		return nil, err
	}
	if e.subparts, err = NewSplitter(subpartDelimiters...); err != nil {
		return nil, err
	}
	if e.sentences, err = NewSplitter(o.sentenceDelimiters...); err != nil {
		return nil, fmt.Errorf("sentence delimiters: %w", err)
	}
	if e.tokens, err = NewSplitter(o.tokenDelimiters...); err != nil {
		return nil, fmt.Errorf("token delimiters: %w", err)
	}

	return e, nil
}

// Granularities returns the levels this extractor produces, coarsest first.
func (e *Extractor) Granularities() []Granularity {
	return slices.Clone(e.granularities)
}

// Extract returns one boundary set per configured granularity. Sentences and
// tokens come from the document's annotation when present; paragraphs and
// subparts are always derived from delimiters. Every boundary of a level is
// propagated into all levels after it.
func (e *Extractor) Extract(doc Document) (Hierarchy, error) {
	if doc.kind != KindPlainText && doc.kind != KindAnnotated {
		return Hierarchy{}, fmt.Errorf("%w: document kind %s", ErrInvalidArgument, doc.kind)
	}

	levels := make([][]int, len(e.granularities))
	for i, g := range e.granularities {
		levels[i] = e.rawOffsets(doc, g)
	}

	for i := 0; i < len(levels)-1; i++ {
		for j := i + 1; j < len(levels); j++ {
			levels[j] = mergeSorted(levels[j], levels[i])
		}
	}

	sets := make([]Set, len(levels))
	for i, offsets := range levels {
		sets[i] = Set{offsets: offsets}
	}

	e.logger.Debug("Extracted boundaries",
		"kind", doc.kind,
		"levels", len(sets),
		"bytes", len(doc.text),
	)
	return Hierarchy{levels: sets}, nil
}

// rawOffsets computes a single level before coarse boundaries are merged in.
func (e *Extractor) rawOffsets(doc Document, g Granularity) []int {
	switch g {
	case Paragraphs:
		return e.paragraphs.Offsets(doc.text)
	case Sentences:
		if doc.kind == KindAnnotated {
			return spanStarts(doc.sentences).offsets
		}
		return e.sentences.Offsets(doc.text)
	case Subparts:
		return e.subparts.Offsets(doc.text)
	case Tokens:
		if doc.kind == KindAnnotated {
			return spanStarts(doc.tokens).offsets
		}
		return e.tokens.Offsets(doc.text)
	default:
		// Unreachable: granularities are validated in NewExtractor.
		panic(fmt.Sprintf("boundaries: unhandled granularity %q", g))
	}
}

// Extract builds a one-off extractor from opts and applies it to doc.
func Extract(doc Document, opts ...Option) (Hierarchy, error) {
	e, err := NewExtractor(opts...)
	if err != nil {
		return Hierarchy{}, err
	}
	return e.Extract(doc)
}
