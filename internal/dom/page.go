package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Page is a Targets implementation over a parsed host page. Target ids are
// resolved from element id attributes.
type Page struct {
	mu   sync.Mutex
	doc  *html.Node
	body *html.Node
}

// ParsePage parses a host page.
func ParsePage(r io.Reader) (*Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing host page: %w", err)
	}
	body := findFirst(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Body
	})
	if body == nil {
		return nil, fmt.Errorf("host page has no body element")
	}
	return &Page{doc: doc, body: body}, nil
}

func (p *Page) Lookup(id string) (Node, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := findFirst(p.doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && getAttr(n, "id") == id
	})
	if n == nil {
		return nil, false
	}
	return &pageNode{page: p, n: n}, true
}

func (p *Page) Body() Node { return &pageNode{page: p, n: p.body} }

func (p *Page) Prepend(markup string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	first := p.body.FirstChild
	for _, c := range fragment(markup, p.body) {
		p.body.InsertBefore(c, first)
	}
}

// Render serializes the page.
func (p *Page) Render(w io.Writer) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return html.Render(w, p.doc)
}

// Inner returns the inner markup of the element with the given id.
func (p *Page) Inner(id string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := findFirst(p.doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && getAttr(n, "id") == id
	})
	if n == nil {
		return "", false
	}
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", false
		}
	}
	return buf.String(), true
}

type pageNode struct {
	page *Page
	n    *html.Node
}

func (pn *pageNode) SetText(text string) {
	pn.page.mu.Lock()
	defer pn.page.mu.Unlock()
	clearChildren(pn.n)
	pn.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func (pn *pageNode) SetHTML(markup string) {
	pn.page.mu.Lock()
	defer pn.page.mu.Unlock()
	nodes := fragment(markup, pn.n)
	clearChildren(pn.n)
	for _, c := range nodes {
		pn.n.AppendChild(c)
	}
}

// fragment parses markup in the context of parent. Markup that cannot be
// parsed is kept as a single text node.
func fragment(markup string, parent *html.Node) []*html.Node {
	nodes, err := html.ParseFragment(strings.NewReader(markup), parent)
	if err != nil {
		return []*html.Node{{Type: html.TextNode, Data: markup}}
	}
	return nodes
}

func (pn *pageNode) SetAttr(name, value string) {
	pn.page.mu.Lock()
	defer pn.page.mu.Unlock()
	setAttr(pn.n, name, value)
}

func (pn *pageNode) AddClass(name string) {
	pn.page.mu.Lock()
	defer pn.page.mu.Unlock()
	classes := addClass(strings.Fields(getAttr(pn.n, "class")), name)
	setAttr(pn.n, "class", strings.Join(classes, " "))
}

func (pn *pageNode) RemoveClass(name string) {
	pn.page.mu.Lock()
	defer pn.page.mu.Unlock()
	classes := removeClass(strings.Fields(getAttr(pn.n, "class")), name)
	if len(classes) == 0 {
		removeAttr(pn.n, "class")
		return
	}
	setAttr(pn.n, "class", strings.Join(classes, " "))
}

// findFirst walks the tree depth-first and returns the first match.
func findFirst(root *html.Node, match func(*html.Node) bool) *html.Node {
	if match(root) {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

func clearChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key != key {
			out = append(out, a)
		}
	}
	n.Attr = out
}
