// Package transform holds the named body transforms applied while
// assembling an output variant. Each rule is independently testable and
// operates on the Markdown body after frontmatter removal.
package transform

// Rule is a single named body transform.
type Rule interface {
	// Name identifies the rule in logs and lint output.
	Name() string
	// Apply returns the transformed body. Rules never mutate their input.
	Apply(body []byte) []byte
}

// Chain applies rules in order.
type Chain []Rule

// Apply runs every rule in sequence over the body.
func (c Chain) Apply(body []byte) []byte {
	for _, r := range c {
		body = r.Apply(body)
	}
	return body
}

// Names returns the rule names in application order.
func (c Chain) Names() []string {
	names := make([]string, 0, len(c))
	for _, r := range c {
		names = append(names, r.Name())
	}
	return names
}
