package xmltree

import (
	"strconv"
	"strings"
)

// ChildPath extends a parent path with one child segment. Among
// same-tag siblings the segment carries a 1-based index, so repeated
// slips read as /T4/T4Slip[2]/empt_cd; unique tags stay bare.
// siblings is the child list to index against; callers that mutate the
// tree pass a snapshot of the original children so paths keep pointing
// into the input document.
func ChildPath(parentPath string, siblings []*Node, child *Node) string {
	var b strings.Builder
	b.WriteString(parentPath)
	b.WriteByte('/')
	b.WriteString(child.Tag)

	total := 0
	position := 0
	for _, c := range siblings {
		if c.Kind != KindElement || c.Tag != child.Tag {
			continue
		}
		total++
		if c == child {
			position = total
		}
	}
	if total > 1 {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(position))
		b.WriteByte(']')
	}
	return b.String()
}

// RootPath returns the path of the document root.
func RootPath(root *Node) string {
	return "/" + root.Tag
}
