// Package dom models the named output locations a host page exposes to
// the renderers. A target that does not exist is reported by Lookup and
// skipped by callers; it is never an error.
package dom

// Node is a single renderable element.
type Node interface {
	// SetText replaces the node's content with escaped text.
	SetText(text string)
	// SetHTML replaces the node's content with a markup fragment.
	SetHTML(markup string)
	SetAttr(name, value string)
	AddClass(name string)
	RemoveClass(name string)
}

// Targets is the mapping from target id to node.
type Targets interface {
	Lookup(id string) (Node, bool)
	// Body is the page root, used for page-wide classes and attributes.
	Body() Node
	// Prepend inserts a markup fragment at the top of the page.
	Prepend(markup string)
}

// WithNode calls fn with the node for id when the target exists.
func WithNode(t Targets, id string, fn func(Node)) {
	if n, ok := t.Lookup(id); ok && n != nil {
		fn(n)
	}
}

// SetText sets the text of id when the target exists.
func SetText(t Targets, id, text string) {
	WithNode(t, id, func(n Node) { n.SetText(text) })
}

// SetHTML sets the markup of id when the target exists.
func SetHTML(t Targets, id, markup string) {
	WithNode(t, id, func(n Node) { n.SetHTML(markup) })
}

// classList helpers shared by the implementations.

func addClass(classes []string, name string) []string {
	for _, c := range classes {
		if c == name {
			return classes
		}
	}
	return append(classes, name)
}

func removeClass(classes []string, name string) []string {
	out := classes[:0]
	for _, c := range classes {
		if c != name {
			out = append(out, c)
		}
	}
	return out
}
