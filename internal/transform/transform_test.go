package transform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmojiRule_StripsPictographicRunes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"rocket", "Hello 🚀", "Hello "},
		{"emoticon", "fast ⚡ path", "fast  path"},
		{"tree and target", "🌳 trees 🎯", " trees "},
		{"variation selector", "printer 🖨️", "printer "},
		{"regional indicators", "flag 🇺🇸 here", "flag  here"},
		{"zwj sequence", "dev 👨‍💻 work", "dev  work"},
		{"plain ascii untouched", "no emoji here", "no emoji here"},
		{"latin accents untouched", "café naïve", "café naïve"},
		{"cjk untouched", "漢字 stays", "漢字 stays"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, string(EmojiRule{}.Apply([]byte(tc.in))))
		})
	}
}

func TestEmojiRule_NoEmoji_ReturnsInputUnchanged(t *testing.T) {
	in := []byte("plain text\n")
	out := EmojiRule{}.Apply(in)
	require.Equal(t, in, out)
}

func TestContainsEmoji(t *testing.T) {
	require.True(t, ContainsEmoji([]byte("sun ☀ shower ☔")))
	require.True(t, ContainsEmoji([]byte("🚀")))
	require.False(t, ContainsEmoji([]byte("plain")))
	require.False(t, ContainsEmoji([]byte("café")))
}

func TestLeadingHeadingRule_RemovesOpeningHeading(t *testing.T) {
	in := []byte("# Algorithms\n\nTwo pointers move inward.\n")
	want := "\nTwo pointers move inward.\n"

	require.Equal(t, want, string(LeadingHeadingRule{}.Apply(in)))
}

func TestLeadingHeadingRule_SkipsBlankLinesBeforeHeading(t *testing.T) {
	in := []byte("\n\n# Algorithms\nbody\n")

	require.Equal(t, "body\n", string(LeadingHeadingRule{}.Apply(in)))
}

func TestLeadingHeadingRule_LeavesNonHeadingBodies(t *testing.T) {
	cases := []string{
		"Just text\n# Later heading\n",
		"## Level two first\nbody\n",
		"#NoSpace\nbody\n",
		"",
	}

	for _, in := range cases {
		require.Equal(t, in, string(LeadingHeadingRule{}.Apply([]byte(in))))
	}
}

func TestLeadingHeadingRule_HeadingOnlyDocument(t *testing.T) {
	require.Empty(t, LeadingHeadingRule{}.Apply([]byte("# Only a heading")))
}

func TestChain_AppliesRulesInOrder(t *testing.T) {
	c := Chain{LeadingHeadingRule{}, EmojiRule{}}

	in := []byte("# Title 🚀\nHello 🚀\n")
	require.Equal(t, "Hello \n", string(c.Apply(in)))
	require.Equal(t, []string{"strip-leading-heading", "strip-emoji"}, c.Names())
}
