package transform

import (
	"bytes"
)

// LeadingHeadingRule removes the document's opening top-level `# ` heading.
// The aggregator emits its own section heading derived from the document
// title, so the original one would duplicate it. A document that does not
// open with a level-1 heading is left alone.
type LeadingHeadingRule struct{}

// Name implements Rule.
func (LeadingHeadingRule) Name() string { return "strip-leading-heading" }

// Apply implements Rule.
func (LeadingHeadingRule) Apply(body []byte) []byte {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if !bytes.HasPrefix(trimmed, []byte("# ")) {
		return body
	}

	nl := bytes.IndexByte(trimmed, '\n')
	if nl < 0 {
		return nil
	}
	return trimmed[nl+1:]
}
