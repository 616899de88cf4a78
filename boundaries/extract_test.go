package boundaries

import (
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/semseg/internal/testutil"
)

func levelsOf(h Hierarchy) [][]int {
	out := make([][]int, h.Len())
	for i, level := range h.Levels() {
		out[i] = level.Offsets()
	}
	return out
}

func TestExtract_PlainText(t *testing.T) {
	text := "Hello world. This is, a test.\n\nSecond para; here."

	h, err := Extract(PlainText(text))
	require.NoError(t, err)

	assert.Equal(t, [][]int{
		{0, 31},
		{0, 13, 31},
		{0, 13, 22, 31, 44},
		{0, 6, 13, 18, 22, 24, 31, 38, 44},
	}, levelsOf(h))
	assert.True(t, h.Valid())
}

func TestExtract_Annotated(t *testing.T) {
	text := "Yes, sir. Go."
	doc := Annotated(text,
		[]Span{{0, 9}, {10, 13}},
		[]Span{{0, 3}, {3, 4}, {5, 8}, {8, 9}, {10, 12}, {12, 13}},
	)

	h, err := Extract(doc)
	require.NoError(t, err)

	assert.Equal(t, [][]int{
		{0},
		{0, 10},
		// Subparts ignore the annotation and still split on ", ".
		{0, 5, 10},
		{0, 3, 5, 8, 10, 12},
	}, levelsOf(h))
	assert.True(t, h.Valid())
}

func TestExtract_AnnotatedUnsortedSpans(t *testing.T) {
	doc := Annotated("ab cd", []Span{{3, 5}, {0, 2}, {3, 5}}, nil)

	h, err := Extract(doc, WithGranularities(Sentences))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 3}}, levelsOf(h))
}

func TestExtract_UnknownGranularity(t *testing.T) {
	_, err := Extract(PlainText("text"), WithGranularityNames("paragraphs", "lines"))
	assert.ErrorIs(t, err, ErrUnknownGranularity)

	_, err = NewExtractor(WithGranularityNames("Paragraphs"))
	assert.ErrorIs(t, err, ErrUnknownGranularity, "names match exactly")
}

func TestExtract_InvalidDelimiters(t *testing.T) {
	_, err := NewExtractor(WithSentenceDelimiters(". ", "?"))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewExtractor(WithTokenDelimiters(" ", "\t\t"))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestExtract_InvalidDocumentKind(t *testing.T) {
	doc := PlainText("x")
	doc.kind = DocumentKind(7)

	_, err := Extract(doc)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestExtract_OrderControlsPropagation(t *testing.T) {
	text := "a b\n\nc"

	h, err := Extract(PlainText(text), WithGranularities(Tokens, Paragraphs))
	require.NoError(t, err)

	// Propagation only runs from earlier to later levels.
	assert.Equal(t, [][]int{{0, 2}, {0, 2, 5}}, levelsOf(h))
}

func TestExtract_CustomDelimiters(t *testing.T) {
	h, err := Extract(PlainText("一。二。三"),
		WithGranularities(Sentences, Tokens),
		WithSentenceDelimiters("。"),
		WithTokenDelimiters("二"),
	)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 2, 4}, {0, 2, 3, 4}}, levelsOf(h))
}

func TestExtract_EmptyInputs(t *testing.T) {
	h, err := Extract(PlainText(""))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {0}, {0}, {0}}, levelsOf(h))

	h, err = Extract(PlainText("some text"), WithGranularities())
	require.NoError(t, err)
	assert.Equal(t, 0, h.Len())
}

func TestExtract_DuplicateGranularities(t *testing.T) {
	h, err := Extract(PlainText("a. b c"), WithGranularities(Sentences, Sentences))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 3}, {0, 3}}, levelsOf(h))
}

func TestExtractor_Granularities(t *testing.T) {
	e, err := NewExtractor()
	require.NoError(t, err)
	assert.Equal(t, DefaultGranularities(), e.Granularities())
}

func TestExtractor_Logging(t *testing.T) {
	logger, buf := testutil.NewTestLogger(t)

	e, err := NewExtractor(WithLogger(logger))
	require.NoError(t, err)
	_, err = e.Extract(PlainText("One. Two."))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Extracted boundaries")
	assert.Contains(t, out, "component=boundary_extractor")
	assert.Contains(t, out, "kind=plain_text")
}

func randomText(r *rand.Rand, n int) string {
	alphabet := []string{"a", "b", "é", " ", " ", ".", ",", ";", ":", "?", "!", "\n", "\n\n"}
	var b strings.Builder
	for range n {
		b.WriteString(alphabet[r.IntN(len(alphabet))])
	}
	return b.String()
}

func TestExtract_SubsetInvariantHolds(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	orders := [][]Granularity{
		DefaultGranularities(),
		{Tokens, Sentences},
		{Subparts, Paragraphs, Tokens},
	}

	for i := range 200 {
		text := randomText(r, r.IntN(80))
		for _, order := range orders {
			h, err := Extract(PlainText(text), WithGranularities(order...))
			require.NoError(t, err)
			require.Truef(t, h.Valid(), "iteration %d: %q -> %s", i, text, h)
			for _, level := range h.Levels() {
				require.Equal(t, 0, level.At(0))
			}
		}
	}
}

func TestExtractor_ConcurrentUse(t *testing.T) {
	e, err := NewExtractor()
	require.NoError(t, err)

	text := strings.Repeat("First clause, second clause; third. Next sentence!\n\n", 20)
	want, err := e.Extract(PlainText(text))
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]Hierarchy, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = e.Extract(PlainText(text))
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want.Key(), got.Key())
	}
}

func BenchmarkExtract(b *testing.B) {
	e, err := NewExtractor()
	require.NoError(b, err)
	text := strings.Repeat("The quick brown fox: it jumps, it runs; it rests. Does it sleep? Yes!\n\n", 500)
	doc := PlainText(text)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.Extract(doc)
	}
}
