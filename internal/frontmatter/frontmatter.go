// Package frontmatter splits and parses `---` delimited YAML metadata blocks
// at the top of Markdown source documents.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("frontmatter opening delimiter found but closing delimiter is missing")

// Split separates YAML frontmatter (`---` delimited) from the Markdown body.
//
// If the document does not start with a frontmatter delimiter, had is false
// and body is the full input. The input's newline convention (LF or CRLF) is
// detected so CRLF sources split cleanly.
func Split(content []byte) (meta []byte, body []byte, had bool, err error) {
	nl := detectNewline(content)

	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	rest := content[len(open):]

	// Empty block: the closing delimiter immediately follows the opening one.
	if bytes.HasPrefix(rest, open) {
		return []byte{}, rest[len(open):], true, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(rest, closeSeq)
	if idx < 0 {
		// A trailing `---` without a final newline still closes the block.
		tail := []byte(nl + "---")
		if bytes.HasSuffix(rest, tail) {
			return rest[:len(rest)-len(tail)+len(nl)], []byte{}, true, nil
		}
		return nil, nil, false, ErrMissingClosingDelimiter
	}

	return rest[:idx+len(nl)], rest[idx+len(closeSeq):], true, nil
}

// Join reassembles a document from raw frontmatter and body.
//
// If had is false, Join returns body as-is. Otherwise the block is emitted
// with `---` delimiters and LF newlines.
func Join(meta []byte, body []byte, had bool) []byte {
	if !had {
		return body
	}
	out := make([]byte, 0, len(meta)+len(body)+8)
	out = append(out, []byte("---\n")...)
	out = append(out, meta...)
	out = append(out, []byte("---\n")...)
	out = append(out, body...)
	return out
}

// Parse decodes raw YAML frontmatter (without delimiters) into a map.
func Parse(meta []byte) (map[string]any, error) {
	if len(meta) == 0 {
		return map[string]any{}, nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal(meta, &fields); err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

// Title returns the `title` field of parsed frontmatter, or "" when absent
// or not a string.
func Title(fields map[string]any) string {
	if t, ok := fields["title"].(string); ok {
		return t
	}
	return ""
}

func detectNewline(content []byte) string {
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			if i > 0 && content[i-1] == '\r' {
				return "\r\n"
			}
			return "\n"
		}
	}
	return "\n"
}
