package lint

import (
	"fmt"

	"git.home.luguber.info/inful/guidegen/internal/frontmatter"
	"git.home.luguber.info/inful/guidegen/internal/markdown"
	"git.home.luguber.info/inful/guidegen/internal/transform"
)

// File is the unit a rule inspects: raw bytes plus the split document.
type File struct {
	Path        string
	Raw         []byte
	Body        []byte
	FrontMatter map[string]any
	HadMeta     bool
	SplitErr    error
}

// Rule checks one file and reports issues.
type Rule interface {
	Name() string
	Check(f *File) []Issue
}

// FrontmatterRule flags frontmatter blocks that never close. The generator
// treats such content as body text, which leaks the raw `---` markers into
// the output.
type FrontmatterRule struct{}

func (FrontmatterRule) Name() string { return "unclosed-frontmatter" }

func (r FrontmatterRule) Check(f *File) []Issue {
	if f.SplitErr == nil {
		return nil
	}
	return []Issue{{
		FilePath: f.Path,
		Severity: SeverityError,
		Rule:     r.Name(),
		Message:  "frontmatter block has no closing --- delimiter",
		Fix:      "add a closing --- line after the metadata block",
		Line:     1,
	}}
}

// TitleRule flags documents without a frontmatter title; their heading is
// derived from the filename, which is usually not the intended wording.
type TitleRule struct{}

func (TitleRule) Name() string { return "missing-title" }

func (r TitleRule) Check(f *File) []Issue {
	if f.SplitErr != nil {
		return nil
	}
	if frontmatter.Title(f.FrontMatter) != "" {
		return nil
	}
	return []Issue{{
		FilePath: f.Path,
		Severity: SeverityWarning,
		Rule:     r.Name(),
		Message:  "no frontmatter title; section heading falls back to the filename",
		Fix:      "add `title:` to the frontmatter block",
	}}
}

// HeadingRule flags more than one level-1 heading in a body. The generator
// strips only the opening one; the rest collide with the generated section
// structure.
type HeadingRule struct{}

func (HeadingRule) Name() string { return "multiple-h1" }

func (r HeadingRule) Check(f *File) []Issue {
	if f.SplitErr != nil {
		return nil
	}

	var issues []Issue
	seen := 0
	for _, h := range markdown.ExtractHeadings(f.Body) {
		if h.Level != 1 {
			continue
		}
		seen++
		if seen > 1 {
			issues = append(issues, Issue{
				FilePath: f.Path,
				Severity: SeverityWarning,
				Rule:     r.Name(),
				Message:  fmt.Sprintf("extra level-1 heading %q collides with the generated section structure", h.Text),
				Fix:      "demote it to ## or lower",
				Line:     h.Line,
			})
		}
	}
	return issues
}

// EmojiRule flags emoji in source files. These disappear from the printable
// variant, so keeping sources emoji-free makes the two variants read alike.
type EmojiRule struct{}

func (EmojiRule) Name() string { return "emoji" }

func (r EmojiRule) Check(f *File) []Issue {
	if !transform.ContainsEmoji(f.Raw) {
		return nil
	}
	return []Issue{{
		FilePath: f.Path,
		Severity: SeverityInfo,
		Rule:     r.Name(),
		Message:  "file contains emoji; the printable variant strips them",
		Fix:      "run `guidegen lint --fix` to remove them in place",
	}}
}

// defaultRules returns the rule set in execution order.
func defaultRules() []Rule {
	return []Rule{
		FrontmatterRule{},
		TitleRule{},
		HeadingRule{},
		EmojiRule{},
	}
}
