// Package annotate connects optional sentence/token annotation providers to
// the boundary extractor. Without an annotator, boundaries fall back to
// delimiter heuristics.
package annotate

import (
	"context"
	"errors"
	"fmt"

	"github.com/sevigo/semseg/boundaries"
)

// ErrAnnotatorNotFound is returned when no annotator matches a name or file.
var ErrAnnotatorNotFound = errors.New("annotator not found")

// Annotator turns raw text into a document carrying sentence and token spans.
type Annotator interface {
	Name() string
	Extensions() []string
	Annotate(ctx context.Context, text string) (boundaries.Document, error)
}

// PlainName is the name of the annotator that adds no annotation.
const PlainName = "plain"

type plain struct{}

// Plain returns an annotator that wraps text as boundaries.PlainText, so the
// extractor uses its delimiter heuristics.
func Plain() Annotator { return plain{} }

func (plain) Name() string { return PlainName }

func (plain) Extensions() []string { return nil }

func (plain) Annotate(ctx context.Context, text string) (boundaries.Document, error) {
	if err := ctx.Err(); err != nil {
		return boundaries.Document{}, err
	}
	return boundaries.PlainText(text), nil
}

// Extract annotates text with a and extracts its boundary hierarchy with e.
func Extract(ctx context.Context, a Annotator, e *boundaries.Extractor, text string) (boundaries.Hierarchy, error) {
	doc, err := a.Annotate(ctx, text)
	if err != nil {
		return boundaries.Hierarchy{}, fmt.Errorf("annotator %s: %w", a.Name(), err)
	}
	return e.Extract(doc)
}
