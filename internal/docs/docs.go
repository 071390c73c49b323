// Package docs discovers and loads the source Markdown documents that feed
// the aggregator, in their final output order.
package docs

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	gerrors "git.home.luguber.info/inful/guidegen/internal/errors"
	"git.home.luguber.info/inful/guidegen/internal/frontmatter"
)

// Document represents one loaded source Markdown file.
type Document struct {
	Path           string         // Absolute path to the file
	Name           string         // File name without extension
	Title          string         // Resolved section heading
	Body           []byte         // Content with frontmatter removed
	FrontMatter    map[string]any // Parsed frontmatter fields
	HadFrontMatter bool
	Ordinal        int // Position in the final output, assigned by discovery
}

// Part is one top-level division of the guide with its documents in order.
// A scan-fallback run produces a single part with an empty title.
type Part struct {
	Title     string
	Documents []Document
}

// TitleFromFilename derives a section heading from a file name: extension
// dropped, separators replaced by spaces, title-cased.
func TitleFromFilename(filename string) string {
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	// cases.Caser is stateful, so build one per call.
	return cases.Title(language.English).String(name)
}

// Load reads and decodes a single source document. explicitTitle, when
// non-empty, overrides the frontmatter title.
func Load(path, explicitTitle string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, gerrors.SourceNotFound(path)
		}
		return Document{}, gerrors.Wrap(err, gerrors.CategorySource, gerrors.SeverityFatal, "failed to read source").WithContext("path", path)
	}

	if !utf8.Valid(raw) {
		return Document{}, gerrors.DecodeError(path)
	}

	doc := Document{
		Path: path,
		Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
	}

	meta, body, had, err := frontmatter.Split(raw)
	if err != nil {
		// An unclosed frontmatter block is treated as plain body text; lint
		// reports it separately.
		doc.Body = raw
		doc.FrontMatter = map[string]any{}
	} else {
		doc.Body = body
		doc.HadFrontMatter = had
		fields, perr := frontmatter.Parse(meta)
		if perr != nil {
			fields = map[string]any{}
		}
		doc.FrontMatter = fields
	}

	doc.Title = explicitTitle
	if doc.Title == "" {
		doc.Title = frontmatter.Title(doc.FrontMatter)
	}
	if doc.Title == "" {
		doc.Title = TitleFromFilename(doc.Path)
	}

	return doc, nil
}
