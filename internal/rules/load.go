package rules

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Rule packs let a future tax year ship as data:
//
//	[table]
//	year = 2027
//	structural = ["OTH_INFO"]
//
//	[[field]]
//	name = "empt_cd"
//	category = "optional-code"
//	sentinel = "00"
//	valid_min = 11
//	valid_max = 17

// ErrTableSectionMissing indicates that [table] is missing in a rule pack.
var ErrTableSectionMissing = errors.New("missing [table]")

type packFile struct {
	Table struct {
		Year       int      `toml:"year"`
		Structural []string `toml:"structural"`
	} `toml:"table"`
	Fields []packField `toml:"field"`
}

type packField struct {
	Name     string `toml:"name"`
	Category string `toml:"category"`
	Sentinel string `toml:"sentinel"`
	ValidMin int    `toml:"valid_min"`
	ValidMax int    `toml:"valid_max"`
}

// Load parses a TOML rule pack into a Table.
func Load(path string) (*Table, error) {
	var pack packFile
	meta, err := toml.DecodeFile(path, &pack)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("table") {
		return nil, fmt.Errorf("%s: %w", path, ErrTableSectionMissing)
	}

	rs := make([]Rule, 0, len(pack.Fields))
	for _, f := range pack.Fields {
		cat, ok := ParseCategory(f.Category)
		if !ok {
			return nil, fmt.Errorf("%s: field %q: unknown category %q", path, f.Name, f.Category)
		}
		rs = append(rs, Rule{
			Name:     f.Name,
			Category: cat,
			Sentinel: f.Sentinel,
			ValidMin: f.ValidMin,
			ValidMax: f.ValidMax,
		})
	}

	t, err := NewTable(pack.Table.Year, rs, pack.Table.Structural)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
