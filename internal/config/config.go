// Package config loads the guidegen YAML configuration and applies
// defaults so a bare `generate` works without any config file.
package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Title      string     `yaml:"title"`
	Subtitle   string     `yaml:"subtitle,omitempty"`
	SourceDir  string     `yaml:"source_dir"`
	OutputDir  string     `yaml:"output_dir"`
	Structure  []Part     `yaml:"structure,omitempty"`
	Variants   []Variant  `yaml:"variants,omitempty"`
	Flashcards Flashcards `yaml:"flashcards,omitempty"`
}

// Part is one top-level division of the combined guide, holding an ordered
// list of source documents.
type Part struct {
	Title    string    `yaml:"title"`
	Sections []Section `yaml:"sections"`
}

// Section names one source document and its heading in the combined guide.
type Section struct {
	File string `yaml:"file"`
	// Title overrides the document's frontmatter title. When both are empty
	// the heading is derived from the filename.
	Title string `yaml:"title,omitempty"`
	// Weight orders sections within a part; zero means "position in the
	// list". Equal weights tie-break by filename.
	Weight int `yaml:"weight,omitempty"`
}

// Variant describes one generated output document.
type Variant struct {
	Name       string `yaml:"name"`
	Filename   string `yaml:"filename"`
	StripEmoji bool   `yaml:"strip_emoji"`
	TOC        bool   `yaml:"toc"`
	// FrontMatter is emitted verbatim at the top of the output (the web
	// variant carries a Jekyll header). Keys are written in sorted order so
	// output stays byte-identical across runs.
	FrontMatter map[string]string `yaml:"front_matter,omitempty"`
}

// FrontMatterKeys returns the variant's front matter keys in emit order.
func (v Variant) FrontMatterKeys() []string {
	keys := make([]string, 0, len(v.FrontMatter))
	for k := range v.FrontMatter {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Flashcards configures flashcard extraction from the notes corpus.
type Flashcards struct {
	// Source is the note file holding the pattern guide, relative to
	// source_dir.
	Source   string    `yaml:"source,omitempty"`
	Patterns []Pattern `yaml:"patterns,omitempty"`
}

// Pattern is one algorithm pattern to extract flashcards for.
type Pattern struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords,omitempty"`
}

// VariantPrintable and VariantWeb are the two conventional variant names.
const (
	VariantPrintable = "printable"
	VariantWeb       = "web"
)

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	// Load .env if present; existing environment wins.
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "Loaded environment variables from .env")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadOrDefault loads the config file when it exists and otherwise falls
// back to defaults, so the CLI works in a bare docs directory.
func LoadOrDefault(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(configPath)
}

func (c *Config) applyDefaults() {
	if c.Title == "" {
		c.Title = "Study Guide - Complete Edition"
	}
	if c.SourceDir == "" {
		c.SourceDir = "docs"
	}
	if c.OutputDir == "" {
		c.OutputDir = "generated"
	}
	if len(c.Variants) == 0 {
		c.Variants = DefaultVariants()
	}
	if c.Flashcards.Source == "" {
		c.Flashcards.Source = "algo.md"
	}
	if len(c.Flashcards.Patterns) == 0 {
		c.Flashcards.Patterns = DefaultPatterns()
	}
}

// DefaultVariants returns the two conventional output variants.
func DefaultVariants() []Variant {
	return []Variant{
		{
			Name:       VariantPrintable,
			Filename:   "study-guide-printable.md",
			StripEmoji: true,
			TOC:        true,
		},
		{
			Name:       VariantWeb,
			Filename:   "study-guide-complete.md",
			StripEmoji: false,
			TOC:        true,
			FrontMatter: map[string]string{
				"title":  "Complete Study Guide",
				"layout": "default",
			},
		},
	}
}

// DefaultPatterns returns the built-in flashcard patterns.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{Name: "Two Pointers", Keywords: []string{"two pointers", "sum to target", "palindrome", "merge sorted"}},
		{Name: "Sliding Window", Keywords: []string{"sliding window", "longest substring", "subarray", "anagrams"}},
		{Name: "Binary Search", Keywords: []string{"binary search", "sorted array", "find element", "capacity"}},
		{Name: "Tree Traversal", Keywords: []string{"tree traversal", "binary search tree", "inorder", "level order"}},
		{Name: "Graph Traversal", Keywords: []string{"graph", "shortest path", "cycle detection", "topological sort"}},
		{Name: "Dynamic Programming", Keywords: []string{"dynamic programming", "maximum", "minimum", "coin change"}},
		{Name: "Heap", Keywords: []string{"heap", "k-th", "priority queue", "median"}},
		{Name: "Backtracking", Keywords: []string{"backtracking", "permutations", "combinations", "n-queens"}},
	}
}

// Validate checks the configuration for problems that would make a build
// ambiguous or non-deterministic.
func (c *Config) Validate() error {
	if len(c.Variants) == 0 {
		return fmt.Errorf("at least one output variant is required")
	}

	seen := map[string]struct{}{}
	for _, v := range c.Variants {
		if v.Name == "" {
			return fmt.Errorf("variant with filename %q has no name", v.Filename)
		}
		if v.Filename == "" {
			return fmt.Errorf("variant %q has no filename", v.Name)
		}
		if _, dup := seen[v.Name]; dup {
			return fmt.Errorf("duplicate variant name: %s", v.Name)
		}
		seen[v.Name] = struct{}{}
	}

	for _, part := range c.Structure {
		if part.Title == "" {
			return fmt.Errorf("structure part with %d sections has no title", len(part.Sections))
		}
		for _, s := range part.Sections {
			if s.File == "" {
				return fmt.Errorf("part %q has a section without a file", part.Title)
			}
		}
	}

	return nil
}

// FindVariant returns the variant with the given name.
func (c *Config) FindVariant(name string) (Variant, bool) {
	for _, v := range c.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}
