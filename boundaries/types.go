// Package boundaries computes nested character-offset boundaries for a document
// (paragraphs, sentences, subparts, tokens) and re-projects them onto chunk windows.
//
// Offsets count characters (Unicode code points), not bytes. Boundaries of a
// coarser level are always also boundaries of every finer level, so a chunker
// can merge fine units without crossing a semantic edge.
package boundaries

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Granularity names one level of the semantic hierarchy.
type Granularity string

const (
	Paragraphs Granularity = "paragraphs"
	Sentences  Granularity = "sentences"
	Subparts   Granularity = "subparts"
	Tokens     Granularity = "tokens"
)

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrUnknownGranularity = errors.New("unknown granularity")
)

// Delimiter defaults used when a document carries no annotation.
var (
	paragraphDelimiters         = []string{"\n\n"}
	subpartDelimiters           = []string{": ", "; ", ", "}
	defaultSentenceDelimiters   = []string{". ", "? ", "! "}
	defaultTokenDelimiters      = []string{" "}
	defaultGranularityHierarchy = []Granularity{Paragraphs, Sentences, Subparts, Tokens}
)

// DefaultGranularities returns paragraphs, sentences, subparts, tokens.
func DefaultGranularities() []Granularity {
	return slices.Clone(defaultGranularityHierarchy)
}

// ParseGranularity validates name by exact match against the known levels.
func ParseGranularity(name string) (Granularity, error) {
	switch g := Granularity(name); g {
	case Paragraphs, Sentences, Subparts, Tokens:
		return g, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownGranularity, name)
	}
}

// Set is an immutable, strictly increasing sequence of character offsets.
type Set struct {
	offsets []int
}

// NewSet copies offsets, sorting and removing duplicates.
func NewSet(offsets ...int) Set {
	s := slices.Clone(offsets)
	slices.Sort(s)
	return Set{offsets: slices.Compact(s)}
}

func (s Set) Len() int { return len(s.offsets) }

func (s Set) At(i int) int { return s.offsets[i] }

// Offsets returns a copy of the offsets.
func (s Set) Offsets() []int { return slices.Clone(s.offsets) }

func (s Set) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, off := range s.offsets {
			if !yield(off) {
				return
			}
		}
	}
}

func (s Set) Contains(offset int) bool {
	_, found := slices.BinarySearch(s.offsets, offset)
	return found
}

func (s Set) Equal(other Set) bool {
	return slices.Equal(s.offsets, other.offsets)
}

func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, off := range s.offsets {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(off))
	}
	b.WriteByte(')')
	return b.String()
}

// Hierarchy is an immutable list of boundary sets ordered from the coarsest
// level (index 0) to the finest.
type Hierarchy struct {
	levels []Set
}

// NewHierarchy builds a hierarchy from already constructed sets. It does not
// enforce the subset invariant; use Valid to check it.
func NewHierarchy(levels ...Set) Hierarchy {
	return Hierarchy{levels: slices.Clone(levels)}
}

func (h Hierarchy) Len() int { return len(h.levels) }

func (h Hierarchy) Level(i int) Set { return h.levels[i] }

func (h Hierarchy) Levels() []Set { return slices.Clone(h.levels) }

func (h Hierarchy) Equal(other Hierarchy) bool {
	return slices.EqualFunc(h.levels, other.levels, Set.Equal)
}

// Key returns a comparable encoding of the hierarchy. Equal hierarchies have
// equal keys, so it can be used as a map or cache key.
func (h Hierarchy) Key() string {
	var buf []byte
	for i, level := range h.levels {
		if i > 0 {
			buf = append(buf, '|')
		}
		for j, off := range level.offsets {
			if j > 0 {
				buf = append(buf, ',')
			}
			buf = strconv.AppendInt(buf, int64(off), 10)
		}
	}
	return string(buf)
}

// Valid reports whether every level is strictly increasing and every
// boundary of a coarser level is present in all finer levels.
func (h Hierarchy) Valid() bool {
	for _, level := range h.levels {
		for k := 1; k < len(level.offsets); k++ {
			if level.offsets[k] <= level.offsets[k-1] {
				return false
			}
		}
	}
	for i := 0; i < len(h.levels)-1; i++ {
		for j := i + 1; j < len(h.levels); j++ {
			if !isSubset(h.levels[i].offsets, h.levels[j].offsets) {
				return false
			}
		}
	}
	return true
}

// Adapt is shorthand for Adapt(h, w).
func (h Hierarchy) Adapt(w Window) Hierarchy {
	return Adapt(h, w)
}

func (h Hierarchy) String() string {
	parts := make([]string, len(h.levels))
	for i, level := range h.levels {
		parts[i] = level.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
