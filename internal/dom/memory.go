package dom

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/net/html"
)

// MemNode is an in-memory node recording its inner markup, attributes and
// classes.
type MemNode struct {
	mu      sync.Mutex
	inner   string
	attrs   map[string]string
	classes []string
}

func newMemNode() *MemNode { return &MemNode{attrs: map[string]string{}} }

func (n *MemNode) SetText(text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.inner = html.EscapeString(text)
}

func (n *MemNode) SetHTML(markup string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.inner = markup
}

func (n *MemNode) SetAttr(name, value string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.attrs[name] = value
}

func (n *MemNode) AddClass(name string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.classes = addClass(n.classes, name)
}

func (n *MemNode) RemoveClass(name string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.classes = removeClass(n.classes, name)
}

// Inner returns the node's inner markup.
func (n *MemNode) Inner() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.inner
}

// Attr returns an attribute value.
func (n *MemNode) Attr(name string) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.attrs[name]
}

// HasClass reports whether the node carries the class.
func (n *MemNode) HasClass(name string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, c := range n.classes {
		if c == name {
			return true
		}
	}
	return false
}

// Class returns the class attribute value.
func (n *MemNode) Class() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return strings.Join(n.classes, " ")
}

// Memory is a Targets implementation backed by a map. Only declared ids
// exist; looking up any other id reports a missing target.
type Memory struct {
	mu      sync.Mutex
	nodes   map[string]*MemNode
	body    *MemNode
	banners []string
}

// NewMemory creates a target set containing the given ids.
func NewMemory(ids ...string) *Memory {
	m := &Memory{nodes: make(map[string]*MemNode, len(ids)), body: newMemNode()}
	for _, id := range ids {
		m.nodes[id] = newMemNode()
	}
	return m
}

func (m *Memory) Lookup(id string) (Node, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.nodes[id]
	if !ok {
		return nil, false
	}
	return n, true
}

func (m *Memory) Body() Node { return m.body }

func (m *Memory) Prepend(markup string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.banners = append([]string{markup}, m.banners...)
}

// Node returns the concrete node for id, or nil.
func (m *Memory) Node(id string) *MemNode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.nodes[id]
}

// BodyNode returns the concrete body node.
func (m *Memory) BodyNode() *MemNode { return m.body }

// Banners returns the prepended fragments, most recent first.
func (m *Memory) Banners() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.banners...)
}

// Snapshot returns the inner markup of every node keyed by id.
func (m *Memory) Snapshot() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.nodes))
	for id, n := range m.nodes {
		out[id] = n.Inner()
	}
	return out
}

// IDs returns the declared ids in sorted order.
func (m *Memory) IDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.nodes))
	for id := range m.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
