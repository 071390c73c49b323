package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractHeadings_Levels(t *testing.T) {
	body := []byte("# Top\n\nsome text\n\n## Section\n\n### Sub\nbody\n")

	headings := ExtractHeadings(body)
	require.Len(t, headings, 3)

	require.Equal(t, 1, headings[0].Level)
	require.Equal(t, "Top", headings[0].Text)
	require.Equal(t, 1, headings[0].Line)

	require.Equal(t, 2, headings[1].Level)
	require.Equal(t, "Section", headings[1].Text)
	require.Equal(t, 5, headings[1].Line)

	require.Equal(t, 3, headings[2].Level)
	require.Equal(t, "Sub", headings[2].Text)
}

func TestExtractHeadings_InlineMarkupFlattened(t *testing.T) {
	body := []byte("## `Code` and *emphasis* here\n")

	headings := ExtractHeadings(body)
	require.Len(t, headings, 1)
	require.Equal(t, "Code and emphasis here", headings[0].Text)
}

func TestExtractHeadings_NoHeadings(t *testing.T) {
	require.Empty(t, ExtractHeadings([]byte("plain paragraph\n\nanother\n")))
}

func TestExtractHeadings_IgnoresCodeFences(t *testing.T) {
	body := []byte("```\n# not a heading\n```\n\n## Real\n")

	headings := ExtractHeadings(body)
	require.Len(t, headings, 1)
	require.Equal(t, "Real", headings[0].Text)
}
