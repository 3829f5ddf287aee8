package xmltree

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Document is one parsed XML file. Prolog holds the XML declaration
// and any comments before the root element; Epilog holds trailing
// nodes after it. Character data outside elements lives in the Tail of
// the preceding node (or Intro, for text before the first node).
type Document struct {
	Intro  string
	Prolog []*Node
	Root   *Node
	Epilog []*Node
}

// ErrNoRoot is returned when the input contains no root element.
var ErrNoRoot = errors.New("xmltree: document has no root element")

// Parse builds a Document from an XML token stream. The tree keeps
// text, tails, comments, and processing instructions verbatim so the
// document can be re-serialized with only removed elements missing.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	doc := &Document{}

	// appendText routes character data to the element text or to the
	// tail of the most recent sibling, which is what preserves the
	// original line structure around removable fields.
	var stack []*Node
	scopes := []nsScope{rootScope()}

	appendText := func(text string) {
		if len(stack) == 0 {
			// Top level: before the root or after it.
			nodes := doc.Prolog
			if doc.Root != nil {
				nodes = doc.Epilog
			}
			switch {
			case doc.Root != nil && len(doc.Epilog) == 0:
				doc.Root.Tail += text
			case len(nodes) > 0:
				nodes[len(nodes)-1].Tail += text
			default:
				doc.Intro += text
			}
			return
		}
		parent := stack[len(stack)-1]
		if len(parent.Children) == 0 {
			parent.Text += text
			return
		}
		last := parent.Children[len(parent.Children)-1]
		last.Tail += text
	}

	addNode := func(n *Node) {
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, n)
			return
		}
		if doc.Root == nil {
			doc.Prolog = append(doc.Prolog, n)
		} else {
			doc.Epilog = append(doc.Epilog, n)
		}
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xmltree: parse: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			scope := scopes[len(scopes)-1].extend(t.Attr)
			n := &Node{Kind: KindElement, Tag: scope.name(t.Name)}
			for _, a := range t.Attr {
				n.Attrs = append(n.Attrs, Attr{Name: scope.attrName(a.Name), Value: a.Value})
			}
			if len(stack) == 0 {
				if doc.Root != nil {
					return nil, fmt.Errorf("xmltree: parse: multiple root elements")
				}
				doc.Root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
			scopes = append(scopes, scope)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("xmltree: parse: unexpected end element </%s>", t.Name.Local)
			}
			stack = stack[:len(stack)-1]
			scopes = scopes[:len(scopes)-1]
		case xml.CharData:
			appendText(string(t))
		case xml.Comment:
			addNode(&Node{Kind: KindComment, Text: string(t)})
		case xml.ProcInst:
			addNode(&Node{Kind: KindProcInst, Tag: t.Target, Text: string(t.Inst)})
		case xml.Directive:
			addNode(&Node{Kind: KindDirective, Text: string(t)})
		}
	}

	if len(stack) != 0 {
		return nil, fmt.Errorf("xmltree: parse: unterminated element <%s>", stack[len(stack)-1].Tag)
	}
	if doc.Root == nil {
		return nil, ErrNoRoot
	}
	return doc, nil
}

// ParseString is a convenience wrapper for tests and in-memory input.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

const xmlNamespaceURI = "http://www.w3.org/XML/1998/namespace"

// nsScope maps namespace URIs back to the prefixes declared for them.
// The token layer resolves prefixes to URIs; the tree stores names as
// written in the input, so serialization reverses the resolution here.
// The empty prefix is the default namespace.
type nsScope map[string]string

func rootScope() nsScope {
	return nsScope{xmlNamespaceURI: "xml"}
}

// extend returns the scope for an element, folding in any xmlns
// declarations carried on its start tag.
func (s nsScope) extend(attrs []xml.Attr) nsScope {
	declares := false
	for _, a := range attrs {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			declares = true
			break
		}
	}
	if !declares {
		return s
	}
	next := make(nsScope, len(s)+1)
	for uri, prefix := range s {
		next[uri] = prefix
	}
	for _, a := range attrs {
		switch {
		case a.Name.Space == "xmlns":
			next[a.Value] = a.Name.Local
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			next[a.Value] = ""
		}
	}
	return next
}

// name rebuilds an element name as it appeared in the input.
func (s nsScope) name(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	if prefix, ok := s[n.Space]; ok {
		if prefix == "" {
			return n.Local
		}
		return prefix + ":" + n.Local
	}
	// Unresolvable prefixes pass through as the decoder reported them.
	return n.Space + ":" + n.Local
}

// attrName rebuilds an attribute name, restoring xmlns declarations.
func (s nsScope) attrName(n xml.Name) string {
	if n.Space == "xmlns" {
		return "xmlns:" + n.Local
	}
	if n.Space == "" {
		return n.Local
	}
	return s.name(n)
}
