package boundaries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitOffsets(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		delimiters []string
		want       []int
	}{
		{"sentence terminators", "a. b? c! ", []string{". ", "? ", "! "}, []int{0, 3, 6, 9}},
		{"no delimiter", "hello", []string{" "}, []int{0}},
		{"empty text", "", []string{" "}, []int{0}},
		{"adjacent delimiters", "a  b", []string{" "}, []int{0, 2, 3}},
		{"leading delimiter", "\n\nabc", []string{"\n\n"}, []int{0, 2}},
		{"text is a delimiter", "\n\n", []string{"\n\n"}, []int{0, 2}},
		{"metacharacters are literal", "a.b.c", []string{"."}, []int{0, 2, 4}},
		{"multibyte pieces count characters", "héllo wörld", []string{" "}, []int{0, 6}},
		{"multibyte delimiter", "一。二。", []string{"。"}, []int{0, 2, 4}},
		{"subparts", "one: two; three, four", []string{": ", "; ", ", "}, []int{0, 5, 10, 17}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitOffsets(tt.text, tt.delimiters...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitOffsets_InvalidDelimiters(t *testing.T) {
	tests := []struct {
		name       string
		delimiters []string
	}{
		{"mixed lengths", []string{"ab", "c"}},
		{"no delimiters", nil},
		{"empty delimiter", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SplitOffsets("abc", tt.delimiters...)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestSplitter_Reuse(t *testing.T) {
	s, err := NewSplitter(", ")
	require.NoError(t, err)

	assert.Equal(t, []string{", "}, s.Delimiters())
	assert.Equal(t, []int{0, 3}, s.Offsets("a, b"))
	assert.Equal(t, []int{0, 4, 8}, s.Offsets("ab, cd, ef"))
}
