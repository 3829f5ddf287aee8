// Package fixer orchestrates one fix operation per file: read, parse,
// reduce, serialize, and — unless previewing — back up and write. All
// file side effects live here; the reduction engine below it never
// touches the filesystem.
package fixer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"t4fix/internal/reduce"
	"t4fix/internal/rules"
	"t4fix/internal/schema"
	"t4fix/internal/xmltree"
)

// Options configures a fix run. The engine's decisions never depend on
// Preview: the change log is identical whether or not the result is
// written.
type Options struct {
	Preview         bool
	Backup          bool
	BackupSuffix    string
	RemoveNegatives bool
	Jobs            int
	Table           *rules.Table
	Validator       *schema.Validator
	Progress        Sink
}

// DefaultBackupSuffix is appended to the original file name.
const DefaultBackupSuffix = ".bak"

// FileResult is the outcome for a single input file.
type FileResult struct {
	Path        string
	Log         *reduce.Log
	Skipped     bool
	SkipReason  string
	Err         error
	LinesBefore int
	LinesAfter  int
	Wrote       bool
	BackupPath  string
	Validation  *schema.Result
}

// Changed reports whether the file needed any removal.
func (fr *FileResult) Changed() bool {
	return fr.Log != nil && fr.Log.Removals() > 0
}

// Run executes the engine on an already parsed document: reduce and
// return the change log. Callers that preview simply discard the
// mutated document.
func Run(doc *xmltree.Document, opts Options) *reduce.Log {
	table := opts.Table
	if table == nil {
		table = rules.T4()
	}
	r := reduce.New(table)
	r.RemoveNegatives = opts.RemoveNegatives
	return r.Reduce(doc)
}

// FixFile processes one file end to end. Engine failures are reported
// in the result, never partially written: the file on disk is either
// untouched or holds a complete reduced document.
func FixFile(ctx context.Context, path string, opts Options) FileResult {
	res := FileResult{Path: path}

	if !strings.EqualFold(filepath.Ext(path), ".xml") {
		res.Skipped = true
		res.SkipReason = "not an XML file"
		return res
	}

	content, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("read: %w", err)
		return res
	}

	// Sanity check before parsing: this tool only understands T4
	// returns, anything else passes through untouched.
	if !bytes.Contains(content, []byte("<T4Slip>")) && !bytes.Contains(content, []byte("<T4Summary>")) {
		res.Skipped = true
		res.SkipReason = "does not look like a T4 XML file"
		return res
	}

	doc, err := xmltree.Parse(bytes.NewReader(content))
	if err != nil {
		res.Err = err
		return res
	}

	res.LinesBefore = countLines(content)
	res.Log = Run(doc, opts)

	fixed := doc.Bytes()
	res.LinesAfter = countLines(fixed)

	// The reduced document must still parse before it can replace the
	// original; a serialization bug must never corrupt a return.
	if _, err := xmltree.Parse(bytes.NewReader(fixed)); err != nil {
		res.Err = fmt.Errorf("reduced document is not well-formed, aborting: %w", err)
		return res
	}

	if !opts.Preview && res.Changed() {
		if opts.Backup {
			backupPath, err := writeBackup(path, content, opts.BackupSuffix)
			if err != nil {
				res.Err = fmt.Errorf("backup: %w", err)
				return res
			}
			res.BackupPath = backupPath
		}
		if err := writeInPlace(path, fixed); err != nil {
			res.Err = fmt.Errorf("write: %w", err)
			return res
		}
		res.Wrote = true
	}

	if opts.Validator != nil {
		target := path
		if opts.Preview || !res.Wrote {
			// Validate the reduced bytes without touching the input.
			tmp, err := writeTemp(fixed)
			if err != nil {
				res.Err = fmt.Errorf("validate: %w", err)
				return res
			}
			defer os.Remove(tmp)
			target = tmp
		}
		validation, err := opts.Validator.Validate(ctx, target)
		if err != nil {
			res.Err = err
			return res
		}
		res.Validation = validation
	}

	return res
}

func countLines(b []byte) int {
	return bytes.Count(b, []byte{'\n'})
}

func writeBackup(path string, content []byte, suffix string) (string, error) {
	if suffix == "" {
		suffix = DefaultBackupSuffix
	}
	backupPath := path + suffix

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(backupPath, content, mode); err != nil {
		return "", err
	}
	return backupPath, nil
}

func writeInPlace(path string, content []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	return os.WriteFile(path, content, mode)
}

func writeTemp(content []byte) (string, error) {
	f, err := os.CreateTemp("", "t4fix-*.xml")
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, bytes.NewReader(content)); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
