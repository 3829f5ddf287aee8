package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"t4fix/internal/rules"
	"t4fix/internal/schema"
)

// colorEnabled resolves the --color persistent flag against the
// terminal. "auto" means color only when stdout is a tty.
func colorEnabled(cmd *cobra.Command) (bool, error) {
	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return isTerminal(os.Stdout), nil
	case "on", "always":
		return true, nil
	case "off", "never":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

func quietEnabled(cmd *cobra.Command) bool {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	return err == nil && quiet
}

// expandPaths turns the positional arguments into a flat file list.
// Directories contribute their *.xml files, sorted; everything else
// passes through untouched so skips are reported per file.
func expandPaths(args []string) ([]string, error) {
	files := make([]string, 0, len(args))
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(arg, "*.xml"))
		if err != nil {
			return nil, err
		}
		sort.Strings(matches)
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no XML files to process")
	}
	return files, nil
}

// resolveTable loads a TOML rule pack when a path is given, otherwise
// falls back to the built-in T4 table.
func resolveTable(path string) (*rules.Table, error) {
	if path == "" {
		path = cfg.RulesPath
	}
	if path == "" {
		return rules.T4(), nil
	}
	return rules.Load(path)
}

// resolveValidator builds the xmllint validator when validation was
// requested, drawing the schema and binary paths from flags or config.
func resolveValidator(enabled bool, schemaPath string) (*schema.Validator, error) {
	if !enabled {
		return nil, nil
	}
	if schemaPath == "" {
		schemaPath = cfg.SchemaPath
	}
	return schema.New(cfg.XmllintPath, schemaPath)
}
