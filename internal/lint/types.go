// Package lint checks source note files for problems that degrade the
// generated guide: unclosed frontmatter, missing titles, duplicate titles,
// competing level-1 headings, and emoji in sources meant for print.
package lint

// Severity indicates the importance level of a linting issue.
type Severity int

const (
	// SeverityInfo indicates informational messages.
	SeverityInfo Severity = iota
	// SeverityWarning indicates issues that should be fixed but don't block generation.
	SeverityWarning
	// SeverityError indicates issues that make a source file unusable as declared.
	SeverityError
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Issue represents a single linting problem found in a file.
type Issue struct {
	FilePath string   // Path to the file
	Severity Severity // Issue severity level
	Rule     string   // Rule identifier (e.g., "unclosed-frontmatter")
	Message  string   // Brief description of the issue
	Fix      string   // Suggested fix, empty when none applies
	Line     int      // Line number (0 if file-level issue)
}

// Result contains all issues found during linting.
type Result struct {
	Issues     []Issue
	FilesTotal int      // Total files scanned
	Fixed      []string // Files rewritten by --fix
}

// HasErrors returns true if any error-level issues exist.
func (r *Result) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// HasWarnings returns true if any warning-level issues exist.
func (r *Result) HasWarnings() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityWarning {
			return true
		}
	}
	return false
}
