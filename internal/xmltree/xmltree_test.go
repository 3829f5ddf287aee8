package xmltree

import (
	"bytes"
	"testing"
)

const slipDoc = `<?xml version="1.0" encoding="UTF-8"?>
<T4>
  <T4Slip>
    <empt_incamt>61344.05</empt_incamt>
    <cppe_cntrb_amt>0.00</cppe_cntrb_amt>
  </T4Slip>
</T4>
`

func TestParseRoundTrip(t *testing.T) {
	doc, err := ParseString(slipDoc)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	if buf.String() != slipDoc {
		t.Fatalf("round trip changed the document:\n--- in ---\n%s\n--- out ---\n%s", slipDoc, buf.String())
	}
}

func TestNamespacedAttributesRoundTrip(t *testing.T) {
	// The CRA T619 envelope declares xsi on the root; prefixes must
	// come back out as written, not as resolved URIs.
	input := `<?xml version="1.0" encoding="UTF-8"?>
<Submission xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:noNamespaceSchemaLocation="layout-topologie.xsd">
  <T619>
    <sbmt_ref_id>ABC12345</sbmt_ref_id>
  </T619>
</Submission>
`
	doc, err := ParseString(input)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	attrs := doc.Root.Attrs
	if len(attrs) != 2 {
		t.Fatalf("expected 2 root attributes, got %d", len(attrs))
	}
	if attrs[0].Name != "xmlns:xsi" {
		t.Fatalf("expected xmlns:xsi, got %q", attrs[0].Name)
	}
	if attrs[1].Name != "xsi:noNamespaceSchemaLocation" {
		t.Fatalf("expected xsi:noNamespaceSchemaLocation, got %q", attrs[1].Name)
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	if buf.String() != input {
		t.Fatalf("round trip changed the document:\n--- in ---\n%s\n--- out ---\n%s", input, buf.String())
	}
}

func TestPrefixedElementsRoundTrip(t *testing.T) {
	input := `<ret:Return xmlns:ret="http://example.com/return">
  <ret:Slip>
    <amt>1.00</amt>
  </ret:Slip>
</ret:Return>
`
	doc, err := ParseString(input)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if doc.Root.Tag != "ret:Return" {
		t.Fatalf("expected root ret:Return, got %q", doc.Root.Tag)
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	if buf.String() != input {
		t.Fatalf("round trip changed the document:\n--- in ---\n%s\n--- out ---\n%s", input, buf.String())
	}
}

func TestDefaultNamespaceRoundTrip(t *testing.T) {
	input := `<Return xmlns="http://example.com/return">
  <Slip>
    <amt>1.00</amt>
  </Slip>
</Return>
`
	doc, err := ParseString(input)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if doc.Root.Tag != "Return" {
		t.Fatalf("expected bare root tag, got %q", doc.Root.Tag)
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	if buf.String() != input {
		t.Fatalf("round trip changed the document:\n--- in ---\n%s\n--- out ---\n%s", input, buf.String())
	}
}

func TestParseKeepsOrderAndText(t *testing.T) {
	doc, err := ParseString(slipDoc)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if doc.Root.Tag != "T4" {
		t.Fatalf("expected root T4, got %s", doc.Root.Tag)
	}
	slip := doc.Root.Find("T4Slip")
	if slip == nil {
		t.Fatalf("expected T4Slip element")
	}
	elems := slip.ChildElements()
	if len(elems) != 2 {
		t.Fatalf("expected 2 child elements, got %d", len(elems))
	}
	if elems[0].Tag != "empt_incamt" || elems[1].Tag != "cppe_cntrb_amt" {
		t.Fatalf("child order not preserved: %s, %s", elems[0].Tag, elems[1].Tag)
	}
	if elems[0].Text != "61344.05" {
		t.Fatalf("expected text 61344.05, got %q", elems[0].Text)
	}
}

func TestDetachRemovesWholeLine(t *testing.T) {
	doc, err := ParseString(slipDoc)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	slip := doc.Root.Find("T4Slip")
	target := slip.Find("cppe_cntrb_amt")
	if target == nil {
		t.Fatalf("expected cppe_cntrb_amt")
	}
	if !slip.Detach(target) {
		t.Fatalf("detach failed")
	}

	want := `<?xml version="1.0" encoding="UTF-8"?>
<T4>
  <T4Slip>
    <empt_incamt>61344.05</empt_incamt>
  </T4Slip>
</T4>
`
	got := string(doc.Bytes())
	if got != want {
		t.Fatalf("unexpected output after detach:\n%s", got)
	}
}

func TestCommentsArePreserved(t *testing.T) {
	in := "<root><!-- keep me --><a>1</a></root>"
	doc, err := ParseString(in)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := string(doc.Bytes()); got != in {
		t.Fatalf("comment lost: %s", got)
	}
	if doc.Root.Children[0].Kind != KindComment {
		t.Fatalf("expected first child to be a comment")
	}
}

func TestCommentBlocksEmptiness(t *testing.T) {
	doc, err := ParseString("<root><OTH_INFO><!-- note --></OTH_INFO></root>")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	oth := doc.Root.Find("OTH_INFO")
	if oth.Empty() {
		t.Fatalf("container with a comment must not be empty")
	}
}

func TestEscapedTextSurvives(t *testing.T) {
	in := "<root><name>Smith &amp; Sons</name></root>"
	doc, err := ParseString(in)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if doc.Root.Find("name").Text != "Smith & Sons" {
		t.Fatalf("entity not decoded: %q", doc.Root.Find("name").Text)
	}
	if got := string(doc.Bytes()); got != in {
		t.Fatalf("entity not re-escaped: %s", got)
	}
}

func TestWhitespaceNotEscaped(t *testing.T) {
	in := "<root>\n\t<a>x</a>\n</root>"
	doc, err := ParseString(in)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := string(doc.Bytes()); got != in {
		t.Fatalf("whitespace rewritten: %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := ParseString("<a><b></a>"); err == nil {
		t.Fatalf("expected mismatched tag error")
	}
	if _, err := ParseString("   "); err == nil {
		t.Fatalf("expected no-root error")
	}
}

func TestChildPath(t *testing.T) {
	doc, err := ParseString("<T4><T4Slip><sin>1</sin></T4Slip><T4Slip><sin>2</sin></T4Slip></T4>")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	root := doc.Root
	rootPath := RootPath(root)
	if rootPath != "/T4" {
		t.Fatalf("expected /T4, got %s", rootPath)
	}

	slips := root.ChildElements()
	second := ChildPath(rootPath, root.Children, slips[1])
	if second != "/T4/T4Slip[2]" {
		t.Fatalf("expected /T4/T4Slip[2], got %s", second)
	}
	sin := ChildPath(second, slips[1].Children, slips[1].ChildElements()[0])
	if sin != "/T4/T4Slip[2]/sin" {
		t.Fatalf("expected /T4/T4Slip[2]/sin, got %s", sin)
	}
}
