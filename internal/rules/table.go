package rules

import (
	"fmt"
	"sort"
)

// Rule describes how one field name is classified.
// Sentinel and the valid range are data owned by the table, not the
// classifier: a new tax year ships as a new table, not new code.
type Rule struct {
	Name     string
	Category Category
	// Sentinel is the documented "no value" placeholder for code fields
	// (e.g. "00" for empt_cd). Empty for other categories.
	Sentinel string
	// ValidMin/ValidMax bound the documented valid code range. Both zero
	// means no range is documented.
	ValidMin int
	ValidMax int
}

// Table is an immutable field-name -> Rule mapping plus the set of
// structural containers that become removable when emptied.
type Table struct {
	year       int
	rules      map[string]Rule
	structural map[string]bool
}

// NewTable builds a table from rules and structural container tags.
// Duplicate field names are rejected: one name, one rule.
func NewTable(year int, rs []Rule, structural []string) (*Table, error) {
	t := &Table{
		year:       year,
		rules:      make(map[string]Rule, len(rs)),
		structural: make(map[string]bool, len(structural)),
	}
	for _, r := range rs {
		if r.Name == "" {
			return nil, fmt.Errorf("rules: empty field name")
		}
		if _, dup := t.rules[r.Name]; dup {
			return nil, fmt.Errorf("rules: duplicate rule for %q", r.Name)
		}
		t.rules[r.Name] = r
	}
	for _, tag := range structural {
		t.structural[tag] = true
	}
	return t, nil
}

// Year reports the tax year the table targets.
func (t *Table) Year() int {
	return t.year
}

// Lookup returns the rule for a field name. Callers treat a miss as
// Required: unknown fields are never removed.
func (t *Table) Lookup(name string) (Rule, bool) {
	r, ok := t.rules[name]
	return r, ok
}

// Structural reports whether tag is a container that may be removed
// once reduction leaves it empty.
func (t *Table) Structural(tag string) bool {
	return t.structural[tag]
}

// Len returns the number of field rules.
func (t *Table) Len() int {
	return len(t.rules)
}

// Names returns all rule names in sorted order, for stable listings.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.rules))
	for name := range t.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StructuralTags returns the structural container tags in sorted order.
func (t *Table) StructuralTags() []string {
	tags := make([]string, 0, len(t.structural))
	for tag := range t.structural {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
