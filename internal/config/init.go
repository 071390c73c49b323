package config

import (
	"fmt"
	"os"
)

const exampleConfig = `# guidegen configuration
title: DevOps & Backend Study Guide - Complete Edition
subtitle: A comprehensive study guide covering DevOps, Chaos Engineering, and Backend Development fundamentals
source_dir: docs
output_dir: generated

# Explicit document order. Remove this block to fall back to
# filename-lexicographic directory order.
structure:
  - title: Core Fundamentals
    sections:
      - file: algo.md
        title: Algorithms & Data Structures
      - file: search.md
        title: Searching & Sorting
  - title: System Design & Architecture
    sections:
      - file: system_design.md
        title: System Design Problems
      - file: cheat_sheet.md
        title: Cheat Sheet

variants:
  - name: printable
    filename: study-guide-printable.md
    strip_emoji: true
    toc: true
  - name: web
    filename: study-guide-complete.md
    strip_emoji: false
    toc: true
    front_matter:
      title: Complete Study Guide
      layout: default
`

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
