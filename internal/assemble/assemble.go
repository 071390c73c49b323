// Package assemble renders the combined guide variants from the ordered
// source documents and writes them to the output directory.
//
// Rendering is a pure function of the ordered parts and the variant's
// transform rules: two runs over unchanged inputs produce byte-identical
// output.
package assemble

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/guidegen/internal/config"
	"git.home.luguber.info/inful/guidegen/internal/docs"
	"git.home.luguber.info/inful/guidegen/internal/slug"
	"git.home.luguber.info/inful/guidegen/internal/transform"
)

// Builder assembles output variants. The accumulator is scoped to a single
// Build call, so one Builder can serve repeated or concurrent invocations.
type Builder struct {
	title    string
	subtitle string
}

// New creates a Builder for the configured guide title and subtitle.
func New(cfg *config.Config) *Builder {
	return &Builder{title: cfg.Title, subtitle: cfg.Subtitle}
}

// section is one rendered section with its resolved anchor.
type section struct {
	title  string
	anchor string
	body   []byte
}

// renderedPart groups sections under their part heading.
type renderedPart struct {
	title    string
	sections []section
}

// Build renders one variant from the ordered parts.
func (b *Builder) Build(parts []docs.Part, v config.Variant) []byte {
	chain := transform.Chain{transform.LeadingHeadingRule{}}
	if v.StripEmoji {
		chain = append(chain, transform.EmojiRule{})
	}

	rendered := b.renderParts(parts, v, chain)

	var buf bytes.Buffer
	b.writeFrontMatter(&buf, v)
	b.writeHeader(&buf, v)
	if v.TOC {
		b.writeTOC(&buf, rendered)
	}
	b.writeSections(&buf, rendered)

	return buf.Bytes()
}

// renderParts applies the variant transforms and assigns anchors in order
// of appearance, so duplicate section titles get `-1`, `-2`, ... suffixes.
func (b *Builder) renderParts(parts []docs.Part, v config.Variant, chain transform.Chain) []renderedPart {
	slugger := slug.NewSlugger()

	out := make([]renderedPart, 0, len(parts))
	for _, part := range parts {
		rp := renderedPart{title: b.headingText(part.Title, v)}
		for _, doc := range part.Documents {
			title := b.headingText(doc.Title, v)
			rp.sections = append(rp.sections, section{
				title:  title,
				anchor: slugger.Slug(title),
				body:   bytes.TrimSpace(chain.Apply(doc.Body)),
			})
		}
		out = append(out, rp)
	}
	return out
}

// headingText applies the variant's emoji rule to heading text. Unlike body
// text, headings are trimmed afterwards so stripped emoji never leave
// dangling whitespace in the TOC.
func (b *Builder) headingText(title string, v config.Variant) string {
	if !v.StripEmoji {
		return title
	}
	return strings.TrimSpace(string(transform.StripEmoji([]byte(title))))
}

func (b *Builder) writeFrontMatter(buf *bytes.Buffer, v config.Variant) {
	if len(v.FrontMatter) == 0 {
		return
	}
	buf.WriteString("---\n")
	for _, k := range v.FrontMatterKeys() {
		fmt.Fprintf(buf, "%s: %s\n", k, v.FrontMatter[k])
	}
	buf.WriteString("---\n\n")
}

func (b *Builder) writeHeader(buf *bytes.Buffer, v config.Variant) {
	fmt.Fprintf(buf, "# %s\n", b.headingText(b.title, v))
	if b.subtitle != "" {
		fmt.Fprintf(buf, "\n*%s*\n", b.headingText(b.subtitle, v))
	}
}

func (b *Builder) writeTOC(buf *bytes.Buffer, parts []renderedPart) {
	buf.WriteString("\n---\n\n## Table of Contents\n")
	for _, part := range parts {
		if part.title != "" {
			fmt.Fprintf(buf, "\n### %s\n", part.title)
		}
		if len(part.sections) > 0 && part.title == "" {
			buf.WriteString("\n")
		}
		for _, s := range part.sections {
			fmt.Fprintf(buf, "- [%s](#%s)\n", s.title, s.anchor)
		}
	}
}

func (b *Builder) writeSections(buf *bytes.Buffer, parts []renderedPart) {
	for _, part := range parts {
		if part.title != "" && len(part.sections) > 0 {
			fmt.Fprintf(buf, "\n---\n\n# %s\n", part.title)
		}
		for _, s := range part.sections {
			fmt.Fprintf(buf, "\n---\n\n## %s\n", s.title)
			if len(s.body) > 0 {
				buf.WriteString("\n")
				buf.Write(s.body)
				buf.WriteString("\n")
			}
		}
	}
}

// Generate renders and writes the given variants, returning the list of
// written file paths in variant order.
func (b *Builder) Generate(parts []docs.Part, outputDir string, variants []config.Variant) ([]string, error) {
	written := make([]string, 0, len(variants))
	for _, v := range variants {
		dest := filepath.Join(outputDir, v.Filename)
		data := b.Build(parts, v)

		if err := WriteFileAtomic(dest, data); err != nil {
			return written, err
		}

		slog.Info("Variant written", "variant", v.Name, "path", dest, "bytes", len(data))
		written = append(written, dest)
	}
	return written, nil
}
