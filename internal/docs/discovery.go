package docs

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/guidegen/internal/config"
	gerrors "git.home.luguber.info/inful/guidegen/internal/errors"
)

// Discovery resolves the ordered set of source documents for a build.
type Discovery struct {
	sourceDir string
	structure []config.Part
}

// NewDiscovery creates a discovery instance for the configured source
// directory and optional explicit structure.
func NewDiscovery(sourceDir string, structure []config.Part) *Discovery {
	return &Discovery{sourceDir: sourceDir, structure: structure}
}

// Discover returns the guide's parts with documents loaded, in final output
// order. With an explicit structure the declared order wins (sections with
// equal weights tie-break by filename); otherwise the source directory is
// scanned and documents are ordered by filename.
func (d *Discovery) Discover() ([]Part, error) {
	info, err := os.Stat(d.sourceDir)
	if err != nil || !info.IsDir() {
		return nil, gerrors.SourceNotFound(d.sourceDir)
	}

	if len(d.structure) > 0 {
		return d.fromStructure()
	}
	return d.fromScan()
}

// fromStructure loads documents in the manifest-declared order. A section
// whose file is missing is skipped with a warning; a file that exists but
// cannot be decoded is fatal because the manifest explicitly requires it.
func (d *Discovery) fromStructure() ([]Part, error) {
	parts := make([]Part, 0, len(d.structure))
	ordinal := 0

	for _, cfgPart := range d.structure {
		sections := orderSections(cfgPart.Sections)

		part := Part{Title: cfgPart.Title}
		for _, s := range sections {
			path := filepath.Join(d.sourceDir, s.File)
			if _, err := os.Stat(path); os.IsNotExist(err) {
				slog.Warn("Section file not found, skipping", "file", s.File, "part", cfgPart.Title)
				continue
			}

			doc, err := Load(path, s.Title)
			if err != nil {
				return nil, err
			}
			doc.Ordinal = ordinal
			ordinal++
			part.Documents = append(part.Documents, doc)
		}
		parts = append(parts, part)
	}

	return parts, nil
}

// fromScan walks the source directory and aggregates every Markdown file in
// filename-lexicographic order under a single untitled part. Files that are
// not valid UTF-8 are skipped with a warning.
func (d *Discovery) fromScan() ([]Part, error) {
	entries, err := os.ReadDir(d.sourceDir)
	if err != nil {
		return nil, gerrors.Wrap(err, gerrors.CategorySource, gerrors.SeverityFatal, "failed to read source directory").WithContext("path", d.sourceDir)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !isMarkdownFile(e.Name()) || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	part := Part{}
	ordinal := 0
	for _, name := range names {
		doc, err := Load(filepath.Join(d.sourceDir, name), "")
		if err != nil {
			if gerrors.IsCategory(err, gerrors.CategoryDecode) {
				slog.Warn("Skipping file that is not valid UTF-8 text", "file", name)
				continue
			}
			return nil, err
		}
		doc.Ordinal = ordinal
		ordinal++
		part.Documents = append(part.Documents, doc)
	}

	return []Part{part}, nil
}

// orderSections applies the declared order: weight zero means list
// position, explicit weights override, ties fall back to filename order.
func orderSections(sections []config.Section) []config.Section {
	ordered := make([]config.Section, len(sections))
	copy(ordered, sections)
	for i := range ordered {
		if ordered[i].Weight == 0 {
			ordered[i].Weight = i + 1
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Weight != ordered[j].Weight {
			return ordered[i].Weight < ordered[j].Weight
		}
		return ordered[i].File < ordered[j].File
	})
	return ordered
}

func isMarkdownFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".md" || ext == ".markdown"
}

// CountDocuments returns the total number of documents across parts.
func CountDocuments(parts []Part) int {
	n := 0
	for _, p := range parts {
		n += len(p.Documents)
	}
	return n
}
