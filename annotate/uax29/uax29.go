// Package uax29 annotates text with Unicode (UAX #29) sentence and word
// boundaries using github.com/rivo/uniseg.
package uax29

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/sevigo/semseg/boundaries"
)

// Name is the registry name of this annotator.
const Name = "uax29"

type Annotator struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Annotator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Annotator{logger: logger}
}

func (a *Annotator) Name() string { return Name }

func (a *Annotator) Extensions() []string {
	return []string{".txt", ".text"}
}

// Annotate returns text with sentence spans and with one token span per
// word that is not pure whitespace. Spans are in characters.
func (a *Annotator) Annotate(ctx context.Context, text string) (boundaries.Document, error) {
	if err := ctx.Err(); err != nil {
		return boundaries.Document{}, err
	}

	sentences := SentenceSpans(text)
	tokens := TokenSpans(text)

	a.logger.Debug("Annotated text", "sentences", len(sentences), "tokens", len(tokens))
	return boundaries.Annotated(text, sentences, tokens), nil
}

// SentenceSpans splits text into UAX #29 sentences. Trailing whitespace
// belongs to the sentence it follows.
func SentenceSpans(text string) []boundaries.Span {
	var spans []boundaries.Span
	state := -1
	pos := 0
	for rest := text; len(rest) > 0; {
		var sentence string
		sentence, rest, state = uniseg.FirstSentenceInString(rest, state)
		n := utf8.RuneCountInString(sentence)
		spans = append(spans, boundaries.Span{Start: pos, End: pos + n})
		pos += n
	}
	return spans
}

// TokenSpans splits text into UAX #29 words, skipping whitespace runs.
func TokenSpans(text string) []boundaries.Span {
	var spans []boundaries.Span
	state := -1
	pos := 0
	for rest := text; len(rest) > 0; {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		n := utf8.RuneCountInString(word)
		if strings.TrimSpace(word) != "" {
			spans = append(spans, boundaries.Span{Start: pos, End: pos + n})
		}
		pos += n
	}
	return spans
}
