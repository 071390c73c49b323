package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"git.home.luguber.info/inful/guidegen/internal/frontmatter"
	"git.home.luguber.info/inful/guidegen/internal/transform"
)

// Linter performs linting operations on source note files.
type Linter struct {
	rules []Rule
	fix   bool
}

// NewLinter creates a linter with the default rule set. When fix is true,
// files containing emoji are rewritten in place with emoji stripped.
func NewLinter(fix bool) *Linter {
	return &Linter{rules: defaultRules(), fix: fix}
}

// LintDir lints every Markdown file directly inside dir, in filename order,
// and additionally reports titles shared by more than one file.
func (l *Linter) LintDir(dir string) (*Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read source directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".md" && ext != ".markdown" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	result := &Result{}
	titles := map[string][]string{}

	for _, name := range names {
		path := filepath.Join(dir, name)
		f, err := l.loadFile(path)
		if err != nil {
			result.Issues = append(result.Issues, Issue{
				FilePath: path,
				Severity: SeverityError,
				Rule:     "decode",
				Message:  err.Error(),
			})
			result.FilesTotal++
			continue
		}

		for _, rule := range l.rules {
			result.Issues = append(result.Issues, rule.Check(f)...)
		}

		if title := frontmatter.Title(f.FrontMatter); title != "" {
			titles[title] = append(titles[title], path)
		}
		result.FilesTotal++

		if l.fix && transform.ContainsEmoji(f.Raw) {
			if err := os.WriteFile(path, transform.StripEmoji(f.Raw), 0o644); err != nil {
				return result, fmt.Errorf("rewrite %s: %w", path, err)
			}
			result.Fixed = append(result.Fixed, path)
		}
	}

	result.Issues = append(result.Issues, duplicateTitleIssues(titles)...)
	return result, nil
}

func (l *Linter) loadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("not valid UTF-8 text")
	}

	f := &File{Path: path, Raw: raw}
	meta, body, had, err := frontmatter.Split(raw)
	if err != nil {
		f.SplitErr = err
		f.Body = raw
		f.FrontMatter = map[string]any{}
		return f, nil
	}

	f.Body = body
	f.HadMeta = had
	fields, perr := frontmatter.Parse(meta)
	if perr != nil {
		fields = map[string]any{}
	}
	f.FrontMatter = fields
	return f, nil
}

// duplicateTitleIssues reports titles used by more than one file. The
// generator disambiguates the anchors, but the duplicated headings usually
// indicate a copy-paste mistake.
func duplicateTitleIssues(titles map[string][]string) []Issue {
	keys := make([]string, 0, len(titles))
	for t, paths := range titles {
		if len(paths) > 1 {
			keys = append(keys, t)
		}
	}
	sort.Strings(keys)

	var issues []Issue
	for _, t := range keys {
		paths := titles[t]
		sort.Strings(paths)
		for _, p := range paths[1:] {
			issues = append(issues, Issue{
				FilePath: p,
				Severity: SeverityWarning,
				Rule:     "duplicate-title",
				Message:  fmt.Sprintf("title %q is also used by %s; anchors get numeric suffixes", t, paths[0]),
				Fix:      "give each document a distinct title",
			})
		}
	}
	return issues
}
