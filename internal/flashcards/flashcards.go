// Package flashcards derives per-pattern flashcard documents from the
// algorithm notes: every subsection whose heading or content mentions a
// pattern's keywords becomes one card in that pattern's deck.
package flashcards

import (
	"bytes"
	"fmt"
	"strings"

	"git.home.luguber.info/inful/guidegen/internal/config"
	"git.home.luguber.info/inful/guidegen/internal/markdown"
	"git.home.luguber.info/inful/guidegen/internal/slug"
)

// Card is one flashcard: the section heading is the prompt, the section
// body the answer.
type Card struct {
	Title string
	Back  string
}

// Deck collects the cards matched to one pattern.
type Deck struct {
	Pattern config.Pattern
	Cards   []Card
}

// sectionBlock is a heading plus the text up to the next heading.
type sectionBlock struct {
	title string
	body  string
}

// splitSections slices the body at every level-2+ heading.
func splitSections(body []byte) []sectionBlock {
	headings := markdown.ExtractHeadings(body)
	lines := strings.Split(string(body), "\n")

	var sections []sectionBlock
	for i, h := range headings {
		if h.Level < 2 || h.Line == 0 {
			continue
		}
		end := len(lines)
		for _, next := range headings[i+1:] {
			if next.Line > 0 {
				end = next.Line - 1
				break
			}
		}
		if h.Line > len(lines) {
			continue
		}
		content := strings.TrimSpace(strings.Join(lines[h.Line:min(end, len(lines))], "\n"))
		sections = append(sections, sectionBlock{title: h.Text, body: content})
	}
	return sections
}

// matches reports whether a section belongs to the pattern: its heading or
// content mentions the pattern name or any keyword, case-insensitively.
func matches(s sectionBlock, p config.Pattern) bool {
	haystack := strings.ToLower(s.title + "\n" + s.body)
	if strings.Contains(haystack, strings.ToLower(p.Name)) {
		return true
	}
	for _, kw := range p.Keywords {
		if strings.Contains(haystack, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// ExtractDecks builds one deck per pattern from the notes body. Patterns
// with no matching sections yield empty decks so the index stays complete.
func ExtractDecks(body []byte, patterns []config.Pattern) []Deck {
	sections := splitSections(body)

	decks := make([]Deck, 0, len(patterns))
	for _, p := range patterns {
		deck := Deck{Pattern: p}
		for _, s := range sections {
			if s.body == "" || !matches(s, p) {
				continue
			}
			deck.Cards = append(deck.Cards, Card{Title: s.title, Back: s.body})
		}
		decks = append(decks, deck)
	}
	return decks
}

// Filename returns the deck's output file name.
func (d Deck) Filename() string {
	return slug.Make(d.Pattern.Name) + ".md"
}

// Render produces the deck's Markdown document.
func Render(d Deck) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# Algorithm Flashcards - %s\n", d.Pattern.Name)
	for i, c := range d.Cards {
		fmt.Fprintf(&buf, "\n## Card %d: %s\n", i+1, c.Title)
		fmt.Fprintf(&buf, "\n**Front:**\n%s\n", c.Title)
		fmt.Fprintf(&buf, "\n**Back:**\n%s\n", c.Back)
		buf.WriteString("\n---\n")
	}
	if len(d.Cards) == 0 {
		buf.WriteString("\nNo sections matched this pattern.\n")
	}
	return buf.Bytes()
}

// RenderIndex produces the deck index document.
func RenderIndex(decks []Deck) []byte {
	var buf bytes.Buffer
	buf.WriteString("# Algorithm Flashcards\n\n")
	for _, d := range decks {
		fmt.Fprintf(&buf, "- [%s](%s) (%d cards)\n", d.Pattern.Name, d.Filename(), len(d.Cards))
	}
	return buf.Bytes()
}
