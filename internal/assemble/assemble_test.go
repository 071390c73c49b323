package assemble

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/guidegen/internal/config"
	"git.home.luguber.info/inful/guidegen/internal/docs"
	"git.home.luguber.info/inful/guidegen/internal/transform"
)

func exampleParts() []docs.Part {
	return []docs.Part{{
		Documents: []docs.Document{
			{Name: "a", Title: "Alpha", Body: []byte("# Alpha\nHello 🚀"), HadFrontMatter: true, Ordinal: 0},
			{Name: "b", Title: "B", Body: []byte("Just text"), Ordinal: 1},
		},
	}}
}

func webVariant() config.Variant {
	return config.Variant{Name: "web", Filename: "study-guide-complete.md", TOC: true}
}

func printableVariant() config.Variant {
	return config.Variant{Name: "printable", Filename: "study-guide-printable.md", TOC: true, StripEmoji: true}
}

func TestBuild_WebVariant_ExampleScenario(t *testing.T) {
	b := New(&config.Config{Title: "Guide"})

	out := string(b.Build(exampleParts(), webVariant()))

	want := "# Guide\n" +
		"\n---\n\n## Table of Contents\n" +
		"\n- [Alpha](#alpha)\n- [B](#b)\n" +
		"\n---\n\n## Alpha\n\nHello 🚀\n" +
		"\n---\n\n## B\n\nJust text\n"
	require.Equal(t, want, out)
}

func TestBuild_PrintableVariant_StripsEmoji(t *testing.T) {
	b := New(&config.Config{Title: "Guide"})

	out := b.Build(exampleParts(), printableVariant())

	require.False(t, transform.ContainsEmoji(out))
	require.Contains(t, string(out), "## Alpha\n\nHello\n")
}

func TestBuild_WebVariant_KeepsEmojiByteForByte(t *testing.T) {
	b := New(&config.Config{Title: "Guide"})

	out := b.Build(exampleParts(), webVariant())
	require.Contains(t, string(out), "Hello 🚀")
}

func TestBuild_FrontMatterMarkersNeverAppearFromSources(t *testing.T) {
	// Documents arrive with frontmatter already split off; the only `---`
	// lines in the output are the generated separators and variant header.
	b := New(&config.Config{Title: "Guide"})
	v := webVariant()
	v.FrontMatter = map[string]string{"title": "Complete Study Guide", "layout": "default"}

	out := string(b.Build(exampleParts(), v))

	require.True(t, strings.HasPrefix(out, "---\nlayout: default\ntitle: Complete Study Guide\n---\n\n# Guide\n"))
}

func TestBuild_Deterministic(t *testing.T) {
	b := New(&config.Config{Title: "Guide", Subtitle: "All the notes"})
	v := webVariant()
	v.FrontMatter = map[string]string{"title": "X", "layout": "default"}

	first := b.Build(exampleParts(), v)
	second := b.Build(exampleParts(), v)
	require.Equal(t, first, second)
}

func TestBuild_DuplicateTitles_DisambiguatedAnchors(t *testing.T) {
	parts := []docs.Part{{
		Documents: []docs.Document{
			{Name: "a", Title: "Overview", Body: []byte("one")},
			{Name: "b", Title: "Overview", Body: []byte("two")},
		},
	}}

	out := string(New(&config.Config{Title: "Guide"}).Build(parts, webVariant()))

	require.Contains(t, out, "- [Overview](#overview)\n")
	require.Contains(t, out, "- [Overview](#overview-1)\n")
}

func TestBuild_PartHeadingsAndSubtitle(t *testing.T) {
	parts := []docs.Part{
		{
			Title: "Core Fundamentals",
			Documents: []docs.Document{
				{Name: "algo", Title: "Algorithms & Data Structures", Body: []byte("content")},
			},
		},
		{Title: "Empty Part"},
	}
	cfg := &config.Config{Title: "Guide", Subtitle: "A study guide"}

	out := string(New(cfg).Build(parts, webVariant()))

	require.Contains(t, out, "# Guide\n\n*A study guide*\n")
	require.Contains(t, out, "### Core Fundamentals\n- [Algorithms & Data Structures](#algorithms--data-structures)\n")
	require.Contains(t, out, "\n---\n\n# Core Fundamentals\n")
	// an empty part gets a TOC heading but no body heading
	require.Contains(t, out, "### Empty Part\n")
	require.NotContains(t, out, "\n# Empty Part\n")
}

func TestBuild_EmptySourceSet_TOCHeaderOnly(t *testing.T) {
	out := string(New(&config.Config{Title: "Guide"}).Build([]docs.Part{{}}, webVariant()))

	require.Equal(t, "# Guide\n\n---\n\n## Table of Contents\n", out)
}

func TestBuild_PrintableStripsEmojiFromHeadings(t *testing.T) {
	parts := []docs.Part{{
		Documents: []docs.Document{
			{Name: "a", Title: "Fast ⚡ Paths", Body: []byte("body")},
		},
	}}

	out := string(New(&config.Config{Title: "Guide"}).Build(parts, printableVariant()))

	require.Contains(t, out, "## Fast  Paths\n")
	require.Contains(t, out, "- [Fast  Paths](#fast--paths)\n")
}

func TestGenerate_WritesAllVariantsAndReturnsPaths(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "generated")
	cfg := config.Default()
	cfg.Title = "Guide"

	written, err := New(cfg).Generate(exampleParts(), outDir, cfg.Variants)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(outDir, "study-guide-printable.md"),
		filepath.Join(outDir, "study-guide-complete.md"),
	}, written)

	for _, path := range written {
		info, statErr := os.Stat(path)
		require.NoError(t, statErr)
		require.Positive(t, info.Size())
	}

	// no temp files left behind
	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestGenerate_RerunProducesIdenticalBytes(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "generated")
	cfg := config.Default()

	_, err := New(cfg).Generate(exampleParts(), outDir, cfg.Variants)
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(outDir, "study-guide-complete.md"))
	require.NoError(t, err)

	_, err = New(cfg).Generate(exampleParts(), outDir, cfg.Variants)
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(outDir, "study-guide-complete.md"))
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestWriteFileAtomic_CreatesParentAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.md")

	require.NoError(t, WriteFileAtomic(path, []byte("one")))
	require.NoError(t, WriteFileAtomic(path, []byte("two")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "two", string(data))
}
