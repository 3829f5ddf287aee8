package xmltree

import (
	"bytes"
	"io"
	"strings"
)

// WriteTo serializes the document. Text and tails are written where
// they were parsed from, so output differs from the input only by the
// elements detached since parsing (entity escaping is normalized by
// the token layer).
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString(d.Intro)
	for _, n := range d.Prolog {
		writeNode(&buf, n)
	}
	if d.Root != nil {
		writeNode(&buf, d.Root)
	}
	for _, n := range d.Epilog {
		writeNode(&buf, n)
	}
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// Bytes returns the serialized document.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	_, _ = d.WriteTo(&buf)
	return buf.Bytes()
}

func writeNode(buf *bytes.Buffer, n *Node) {
	switch n.Kind {
	case KindElement:
		buf.WriteByte('<')
		buf.WriteString(n.Tag)
		for _, a := range n.Attrs {
			buf.WriteByte(' ')
			buf.WriteString(a.Name)
			buf.WriteString(`="`)
			buf.WriteString(attrEscaper.Replace(a.Value))
			buf.WriteByte('"')
		}
		buf.WriteByte('>')
		escapeText(buf, n.Text)
		for _, c := range n.Children {
			writeNode(buf, c)
		}
		buf.WriteString("</")
		buf.WriteString(n.Tag)
		buf.WriteByte('>')
	case KindComment:
		buf.WriteString("<!--")
		buf.WriteString(n.Text)
		buf.WriteString("-->")
	case KindProcInst:
		buf.WriteString("<?")
		buf.WriteString(n.Tag)
		if n.Text != "" {
			buf.WriteByte(' ')
			buf.WriteString(n.Text)
		}
		buf.WriteString("?>")
	case KindDirective:
		buf.WriteString("<!")
		buf.WriteString(n.Text)
		buf.WriteByte('>')
	}
	buf.WriteString(n.Tail)
}

// Only markup-significant characters are escaped. encoding/xml's
// EscapeText would also turn tabs and newlines into character
// references, which would rewrite every indented line in the file.
var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

func escapeText(buf *bytes.Buffer, s string) {
	buf.WriteString(textEscaper.Replace(s))
}
