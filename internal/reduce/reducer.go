// Package reduce walks a parsed T4 document, removes the optional
// fields the rule table marks as zero or sentinel-valued, cascades
// container emptiness, and records every change in document order.
package reduce

import (
	"fmt"
	"sort"

	"t4fix/internal/classify"
	"t4fix/internal/rules"
	"t4fix/internal/xmltree"
)

// Reducer applies one rule table to documents. It holds no per-run
// state: a single Reducer may serve many documents, each Reduce call
// owns its document exclusively.
type Reducer struct {
	Table *rules.Table
	// RemoveNegatives detaches flagged negative amounts instead of
	// keeping them. Each removal is logged with its own record kind so
	// it never blends into the silent zero cleanup.
	RemoveNegatives bool
}

// New returns a Reducer over the given table.
func New(table *rules.Table) *Reducer {
	return &Reducer{Table: table}
}

type entry struct {
	order  uint32
	record Record
}

// Reduce mutates doc in place and returns the change log. Decisions
// are computed post-order (a container's emptiness is only known after
// its children are resolved) but records are sorted back into
// pre-order document positions before the log is returned.
func (r *Reducer) Reduce(doc *xmltree.Document) *Log {
	entries := make([]entry, 0)
	var order uint32
	r.reduceChildren(doc.Root, xmltree.RootPath(doc.Root), &order, &entries)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].order < entries[j].order
	})

	log := NewLog()
	for _, e := range entries {
		log.Append(e.record)
	}
	return log
}

func (r *Reducer) reduceChildren(parent *xmltree.Node, parentPath string, order *uint32, entries *[]entry) {
	// Snapshot before any detach: paths and sibling indexes must keep
	// describing the original document.
	siblings := make([]*xmltree.Node, len(parent.Children))
	copy(siblings, parent.Children)

	for _, child := range siblings {
		if !child.IsElement() {
			continue
		}
		*order++
		childOrder := *order
		path := xmltree.ChildPath(parentPath, siblings, child)

		if child.Leaf() {
			r.reduceLeaf(parent, child, path, childOrder, entries)
			continue
		}

		r.reduceChildren(child, path, order, entries)

		if r.Table.Structural(child.Tag) && child.Empty() {
			parent.Detach(child)
			*entries = append(*entries, entry{
				order: childOrder,
				record: Record{
					Path:   path,
					Field:  child.Tag,
					Kind:   RecordContainer,
					Reason: "container is empty after reduction",
				},
			})
		}
	}
}

func (r *Reducer) reduceLeaf(parent, child *xmltree.Node, path string, order uint32, entries *[]entry) {
	// An empty leaf that is a structural container (e.g. an already
	// empty OTH_INFO block) is removable without classification.
	if r.Table.Structural(child.Tag) {
		if child.Empty() {
			parent.Detach(child)
			*entries = append(*entries, entry{
				order: order,
				record: Record{
					Path:   path,
					Field:  child.Tag,
					Kind:   RecordContainer,
					Reason: "container is empty",
				},
			})
		}
		return
	}

	rule, known := r.Table.Lookup(child.Tag)
	if !known {
		// Unknown fields are never removed.
		return
	}

	res := classify.Classify(rule, child.Text)
	switch res.Decision {
	case classify.Keep:
		return
	case classify.Remove:
		parent.Detach(child)
		*entries = append(*entries, entry{
			order: order,
			record: Record{
				Path:   path,
				Field:  child.Tag,
				Value:  child.Text,
				Kind:   RecordRemoved,
				Reason: res.Reason,
			},
		})
	case classify.FlagNegative:
		if r.RemoveNegatives {
			parent.Detach(child)
			*entries = append(*entries, entry{
				order: order,
				record: Record{
					Path:   path,
					Field:  child.Tag,
					Value:  child.Text,
					Kind:   RecordNegativeRemoved,
					Reason: fmt.Sprintf("removed on request: %s", res.Reason),
				},
			})
			return
		}
		*entries = append(*entries, entry{
			order: order,
			record: Record{
				Path:   path,
				Field:  child.Tag,
				Value:  child.Text,
				Kind:   RecordFlagged,
				Reason: res.Reason,
			},
		})
	case classify.KeepMalformed:
		*entries = append(*entries, entry{
			order: order,
			record: Record{
				Path:   path,
				Field:  child.Tag,
				Value:  child.Text,
				Kind:   RecordMalformed,
				Reason: res.Reason,
			},
		})
	}
}
