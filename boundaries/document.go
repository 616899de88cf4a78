package boundaries

import (
	"fmt"
	"slices"
)

// DocumentKind discriminates plain text from annotated documents.
type DocumentKind int

const (
	KindPlainText DocumentKind = iota
	KindAnnotated
)

func (k DocumentKind) String() string {
	switch k {
	case KindPlainText:
		return "plain_text"
	case KindAnnotated:
		return "annotated"
	default:
		return fmt.Sprintf("DocumentKind(%d)", int(k))
	}
}

// Span is a half-open character range [Start, End).
type Span struct {
	Start int
	End   int
}

// Document is either plain text or text annotated with sentence and token
// spans by an external provider. The zero value is empty plain text.
type Document struct {
	kind      DocumentKind
	text      string
	sentences []Span
	tokens    []Span
}

// PlainText wraps text without annotation; sentence and token boundaries
// are then derived from delimiters.
func PlainText(text string) Document {
	return Document{kind: KindPlainText, text: text}
}

// Annotated wraps text with sentence and token spans in document order.
func Annotated(text string, sentences, tokens []Span) Document {
	return Document{
		kind:      KindAnnotated,
		text:      text,
		sentences: slices.Clone(sentences),
		tokens:    slices.Clone(tokens),
	}
}

func (d Document) Kind() DocumentKind { return d.kind }

func (d Document) Text() string { return d.text }

func (d Document) Sentences() []Span { return slices.Clone(d.sentences) }

func (d Document) Tokens() []Span { return slices.Clone(d.tokens) }

func spanStarts(spans []Span) Set {
	starts := make([]int, len(spans))
	for i, sp := range spans {
		starts[i] = sp.Start
	}
	return NewSet(starts...)
}
