package xmltree

import "strings"

// NodeKind identifies what a node holds.
type NodeKind uint8

const (
	// KindElement is a regular element node.
	KindElement NodeKind = iota
	// KindComment is an XML comment.
	KindComment
	// KindProcInst is a processing instruction (including the XML declaration).
	KindProcInst
	// KindDirective is a <!...> directive such as DOCTYPE.
	KindDirective
)

// Attr is a single attribute, order-significant within its element.
type Attr struct {
	Name  string
	Value string
}

// Node is one node of a parsed document. Children are exclusively
// owned by their parent and keep document order. Text is the character
// data before the first child, Tail is the character data between this
// node's end tag and the next sibling — together they preserve the
// original formatting, so removing an element takes its surrounding
// line with it and leaves the rest of the file untouched.
type Node struct {
	Kind     NodeKind
	Tag      string // element name, or processing instruction target
	Attrs    []Attr
	Text     string // for comments and directives: the raw content
	Tail     string
	Children []*Node
}

// IsElement reports whether the node is a regular element.
func (n *Node) IsElement() bool {
	return n.Kind == KindElement
}

// Leaf reports whether the node is an element with no element children.
// Comments inside an element make it a non-leaf: such content is
// unexpected for a data field and must never be classified away.
func (n *Node) Leaf() bool {
	return n.Kind == KindElement && len(n.Children) == 0
}

// HasMeaningfulText reports whether the node's direct text contains
// anything beyond whitespace.
func (n *Node) HasMeaningfulText() bool {
	return strings.TrimSpace(n.Text) != ""
}

// Detach removes child from n.Children. The child's tail goes with
// it, so the element's whole line disappears from the output.
// Returns false if child is not a direct child.
func (n *Node) Detach(child *Node) bool {
	for i, c := range n.Children {
		if c != child {
			continue
		}
		n.Children = append(n.Children[:i], n.Children[i+1:]...)
		return true
	}
	return false
}

// ChildElements returns the element children only.
func (n *Node) ChildElements() []*Node {
	out := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Kind == KindElement {
			out = append(out, c)
		}
	}
	return out
}

// Empty reports whether the node has no children of any kind and no
// non-whitespace text. Comments count as children: a container holding
// one is not empty.
func (n *Node) Empty() bool {
	return len(n.Children) == 0 && !n.HasMeaningfulText()
}

// Find returns the first descendant element with the given tag, in
// document order, or nil.
func (n *Node) Find(tag string) *Node {
	for _, c := range n.Children {
		if c.Kind != KindElement {
			continue
		}
		if c.Tag == tag {
			return c
		}
		if found := c.Find(tag); found != nil {
			return found
		}
	}
	return nil
}
