package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	meta, body, had, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Empty(t, meta)
	require.Equal(t, input, body)
}

func TestSplit_YAMLFrontmatter_SplitsMetaAndBody(t *testing.T) {
	input := []byte("---\ntitle: Alpha\n---\n# Alpha\n")

	meta, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: Alpha\n"), meta)
	require.Equal(t, []byte("# Alpha\n"), body)
}

func TestSplit_EmptyBlock_ReturnsHadWithEmptyMeta(t *testing.T) {
	input := []byte("---\n---\nbody\n")

	meta, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, meta)
	require.Equal(t, []byte("body\n"), body)
}

func TestSplit_CRLF_SplitsMetaAndBody(t *testing.T) {
	input := []byte("---\r\ntitle: Alpha\r\n---\r\nbody\r\n")

	meta, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: Alpha\r\n"), meta)
	require.Equal(t, []byte("body\r\n"), body)
}

func TestSplit_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	input := []byte("---\ntitle: Alpha\n# body without close\n")

	_, _, had, err := Split(input)
	require.Error(t, err)
	require.False(t, had)
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestSplit_ClosingDelimiterAtEOF_Closes(t *testing.T) {
	input := []byte("---\ntitle: Alpha\n---")

	meta, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: Alpha\n"), meta)
	require.Empty(t, body)
}

func TestParse_TitleField(t *testing.T) {
	fields, err := Parse([]byte("title: Algorithms & Data Structures\nlayout: default\n"))
	require.NoError(t, err)
	require.Equal(t, "Algorithms & Data Structures", Title(fields))
}

func TestParse_Empty_ReturnsEmptyMap(t *testing.T) {
	fields, err := Parse(nil)
	require.NoError(t, err)
	require.Empty(t, fields)
	require.Equal(t, "", Title(fields))
}

func TestParse_InvalidYAML_ReturnsError(t *testing.T) {
	_, err := Parse([]byte("title: [unclosed\n"))
	require.Error(t, err)
}

func TestJoin_RoundTrip(t *testing.T) {
	input := []byte("---\ntitle: Alpha\n---\n# Alpha\n")

	meta, body, had, err := Split(input)
	require.NoError(t, err)
	require.Equal(t, input, Join(meta, body, had))
}

func TestJoin_NoFrontmatter_PassesBodyThrough(t *testing.T) {
	body := []byte("# Alpha\n")
	require.Equal(t, body, Join(nil, body, false))
}
