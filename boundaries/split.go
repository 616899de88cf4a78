package boundaries

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Splitter finds the start offsets of the pieces a text breaks into on any of
// a fixed set of equal-length delimiters.
type Splitter struct {
	re           *regexp.Regexp
	delimiters   []string
	delimiterLen int
}

// NewSplitter compiles delimiters into a single literal alternation. All
// delimiters must be non-empty and have the same length in characters.
func NewSplitter(delimiters ...string) (*Splitter, error) {
	if len(delimiters) == 0 {
		return nil, fmt.Errorf("%w: at least one delimiter is required", ErrInvalidArgument)
	}

	delimiterLen := utf8.RuneCountInString(delimiters[0])
	if delimiterLen == 0 {
		return nil, fmt.Errorf("%w: delimiters must not be empty", ErrInvalidArgument)
	}

	quoted := make([]string, len(delimiters))
	for i, d := range delimiters {
		if n := utf8.RuneCountInString(d); n != delimiterLen {
			return nil, fmt.Errorf("%w: delimiter %q has length %d, want %d", ErrInvalidArgument, d, n, delimiterLen)
		}
		quoted[i] = regexp.QuoteMeta(d)
	}

	return &Splitter{
		re:           regexp.MustCompile(strings.Join(quoted, "|")),
		delimiters:   slices.Clone(delimiters),
		delimiterLen: delimiterLen,
	}, nil
}

func (s *Splitter) Delimiters() []string { return slices.Clone(s.delimiters) }

// Offsets returns the start offset of every piece; the first is always 0.
// Matches are leftmost and non-overlapping, and a delimiter directly
// following another yields an empty piece.
func (s *Splitter) Offsets(text string) []int {
	pieces := s.re.Split(text, -1)
	offsets := make([]int, len(pieces))
	start := 0
	for i, piece := range pieces {
		offsets[i] = start
		// The split drops the delimiter, so step over it explicitly.
		start += utf8.RuneCountInString(piece) + s.delimiterLen
	}
	return offsets
}

// SplitOffsets is the one-shot form of NewSplitter followed by Offsets.
func SplitOffsets(text string, delimiters ...string) ([]int, error) {
	s, err := NewSplitter(delimiters...)
	if err != nil {
		return nil, err
	}
	return s.Offsets(text), nil
}
