package lint

import (
	"fmt"
	"io"
)

// Format writes the result as human-readable text, one line per issue,
// grouped in scan order, followed by a summary line.
func Format(w io.Writer, result *Result) error {
	for _, issue := range result.Issues {
		loc := issue.FilePath
		if issue.Line > 0 {
			loc = fmt.Sprintf("%s:%d", issue.FilePath, issue.Line)
		}
		if _, err := fmt.Fprintf(w, "%s [%s] %s: %s\n", loc, issue.Severity, issue.Rule, issue.Message); err != nil {
			return err
		}
		if issue.Fix != "" {
			if _, err := fmt.Fprintf(w, "    fix: %s\n", issue.Fix); err != nil {
				return err
			}
		}
	}

	for _, fixed := range result.Fixed {
		if _, err := fmt.Fprintf(w, "fixed: %s\n", fixed); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%d files scanned, %d issues\n", result.FilesTotal, len(result.Issues))
	return err
}
