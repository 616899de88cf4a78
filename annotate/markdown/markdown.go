// Package markdown annotates Markdown documents. Sentence starts come from
// the block structure (headings, paragraphs, list items, code blocks) and from
// UAX #29 sentence breaks inside prose blocks, so code and soft line breaks
// never start a sentence.
package markdown

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/sevigo/semseg/annotate/uax29"
	"github.com/sevigo/semseg/boundaries"
)

// Name is the registry name of this annotator.
const Name = "markdown"

const frontMatterSeparator = "---"

// Annotator implements sentence/token annotation for Markdown using goldmark.
type Annotator struct {
	logger   *slog.Logger
	markdown goldmark.Markdown
}

func New(logger *slog.Logger) *Annotator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Annotator{
		logger:   logger,
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

func (a *Annotator) Name() string { return Name }

func (a *Annotator) Extensions() []string {
	return []string{".md", ".markdown"}
}

// Annotate parses text as Markdown. A leading YAML front matter block counts
// as a single sentence. Tokens are UAX #29 words over the whole text.
func (a *Annotator) Annotate(ctx context.Context, content string) (boundaries.Document, error) {
	if err := ctx.Err(); err != nil {
		return boundaries.Document{}, err
	}

	bodyStart := a.frontMatterEnd(content)
	starts, err := a.sentenceStarts(ctx, []byte(content[bodyStart:]))
	if err != nil {
		return boundaries.Document{}, err
	}
	for i := range starts {
		starts[i] += bodyStart
	}
	if bodyStart > 0 {
		starts = append(starts, 0)
	}

	sentences := spansFromStarts(runeOffsets(content, starts), utf8.RuneCountInString(content))
	tokens := uax29.TokenSpans(content)

	a.logger.Debug("Annotated markdown",
		"front_matter", bodyStart > 0,
		"sentences", len(sentences),
		"tokens", len(tokens),
	)
	return boundaries.Annotated(content, sentences, tokens), nil
}

// sentenceStarts returns byte offsets in src where a sentence begins.
func (a *Annotator) sentenceStarts(ctx context.Context, src []byte) ([]int, error) {
	root := a.markdown.Parser().Parse(text.NewReader(src))

	var starts []int
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Type() != ast.TypeBlock {
			return ast.WalkContinue, nil
		}
		if err := ctx.Err(); err != nil {
			return ast.WalkStop, err
		}

		start, ok := blockStart(src, n)
		if !ok {
			return ast.WalkContinue, nil
		}
		starts = append(starts, start)

		if isProse(n) {
			lines := n.Lines()
			end := lines.At(lines.Len() - 1).Stop
			starts = append(starts, proseSentenceStarts(src, start, end)...)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return starts, err
}

// blockStart is the start of the line a block begins on, so list markers,
// heading markers and code fences belong to the block.
func blockStart(src []byte, n ast.Node) (int, bool) {
	fenced, isFenced := n.(*ast.FencedCodeBlock)
	if isFenced && fenced.Info != nil {
		return lineStart(src, fenced.Info.Segment.Start), true
	}

	lines := n.Lines()
	if lines.Len() == 0 {
		return 0, false
	}
	start := lineStart(src, lines.At(0).Start)
	if isFenced && start > 0 {
		// Step back over the opening fence.
		start = lineStart(src, start-1)
	}
	return start, true
}

func isProse(n ast.Node) bool {
	switch n.(type) {
	case *ast.Paragraph, *ast.TextBlock, *ast.Heading:
		return n.Lines().Len() > 0
	default:
		return false
	}
}

// proseSentenceStarts runs UAX #29 over src[start:end] with newlines read as
// spaces, since a soft line break does not end a sentence. The first sentence
// is skipped; its start is the block start.
func proseSentenceStarts(src []byte, start, end int) []int {
	// Same byte length, so positions carry over unchanged.
	prose := strings.ReplaceAll(string(src[start:end]), "\n", " ")

	var starts []int
	state := -1
	pos := start
	for rest := prose; len(rest) > 0; {
		var sentence string
		sentence, rest, state = uniseg.FirstSentenceInString(rest, state)
		if pos > start {
			starts = append(starts, pos)
		}
		pos += len(sentence)
	}
	return starts
}

func lineStart(src []byte, pos int) int {
	return bytes.LastIndexByte(src[:pos], '\n') + 1
}

// frontMatterEnd returns the byte offset just past a leading YAML front matter
// block, or 0 if there is none or it is not a YAML mapping.
func (a *Annotator) frontMatterEnd(content string) int {
	if !strings.HasPrefix(content, frontMatterSeparator+"\n") {
		return 0
	}
	bodyStart := len(frontMatterSeparator) + 1
	rest := content[bodyStart:]

	for pos := 0; pos < len(rest); {
		line, _, found := strings.Cut(rest[pos:], "\n")
		if line == frontMatterSeparator {
			if pos == 0 {
				return 0
			}
			var props map[string]any
			if err := yaml.Unmarshal([]byte(rest[:pos]), &props); err != nil {
				a.logger.Debug("Ignoring front matter that is not valid YAML", "error", err)
				return 0
			}
			end := bodyStart + pos + len(line)
			if found {
				end++
			}
			return end
		}
		if !found {
			break
		}
		pos += len(line) + 1
	}
	return 0
}

// runeOffsets converts byte offsets into s to character offsets, sorted and
// deduplicated.
func runeOffsets(s string, byteOffsets []int) []int {
	slices.Sort(byteOffsets)
	byteOffsets = slices.Compact(byteOffsets)

	out := make([]int, len(byteOffsets))
	runes, prev := 0, 0
	for i, b := range byteOffsets {
		runes += utf8.RuneCountInString(s[prev:b])
		prev = b
		out[i] = runes
	}
	return out
}

// spansFromStarts closes each sorted start at the next one, the last at total.
func spansFromStarts(starts []int, total int) []boundaries.Span {
	spans := make([]boundaries.Span, len(starts))
	for i, start := range starts {
		end := total
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		spans[i] = boundaries.Span{Start: start, End: end}
	}
	return spans
}
