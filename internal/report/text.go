// Package report renders change logs for people: a colored per-file
// report on the terminal, a plain summary, and a binary audit trail
// for record keeping.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"t4fix/internal/fixer"
	"t4fix/internal/reduce"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	dimColor     = color.New(color.Faint)
	removedColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
	okColor      = color.New(color.FgGreen, color.Bold)
)

// Options controls rendering.
type Options struct {
	Color   bool
	Preview bool
	Quiet   bool
}

const rule = "────────────────────────────────────────────────────────────"

// File writes the report for one processed file: a header with the
// line delta, then one line per change record in document order.
func File(w io.Writer, res *fixer.FileResult, opts Options) {
	c := palette(opts.Color)

	fmt.Fprintln(w, c.dim(rule))
	mode := "FIXED"
	if opts.Preview {
		mode = "DRY RUN"
	}

	switch {
	case res.Skipped:
		fmt.Fprintf(w, "%s: %s — %s\n", c.warn("SKIP"), res.Path, res.SkipReason)
		return
	case res.Err != nil:
		fmt.Fprintf(w, "%s: %s — %v\n", c.err("ERROR"), res.Path, res.Err)
		return
	}

	if res.Log.Len() == 0 {
		fmt.Fprintf(w, "%s: %s\n", c.ok("OK"), res.Path)
		if !opts.Quiet {
			fmt.Fprintln(w, c.dim("  no changes needed — already compliant"))
		}
		printValidation(w, res, c)
		return
	}

	fmt.Fprintf(w, "%s: %s\n", c.header(mode), res.Path)
	removed := res.LinesBefore - res.LinesAfter
	fmt.Fprintf(w, "%s\n", c.dim(fmt.Sprintf("  lines: %d → %d (removed %d)", res.LinesBefore, res.LinesAfter, removed)))

	width := 0
	for _, rec := range res.Log.Items() {
		if l := runewidth.StringWidth(rec.Path); l > width {
			width = l
		}
	}

	for _, rec := range res.Log.Items() {
		fmt.Fprintln(w, Line(rec, width, c))
	}

	if res.BackupPath != "" {
		fmt.Fprintf(w, "%s\n", c.dim("  backup: "+res.BackupPath))
	}
	if opts.Preview {
		fmt.Fprintln(w, c.dim("  (dry run — no changes written)"))
	} else if res.Wrote {
		fmt.Fprintf(w, "%s\n", c.ok("  saved"))
	}
	printValidation(w, res, c)
}

// Line renders a single change record, path-aligned to width.
func Line(rec reduce.Record, width int, c colors) string {
	path := runewidth.FillRight(rec.Path, width)
	value := rec.Value
	if value != "" {
		value = fmt.Sprintf(" %q", rec.Value)
	}

	switch rec.Kind {
	case reduce.RecordFlagged, reduce.RecordMalformed:
		return fmt.Sprintf("  %s %s%s — %s", c.warn("⚠"), path, value, rec.Reason)
	case reduce.RecordNegativeRemoved:
		return fmt.Sprintf("  %s %s%s — %s", c.warn("✗"), path, value, rec.Reason)
	default:
		return fmt.Sprintf("  %s %s%s — %s", c.removed("✓"), path, value, rec.Reason)
	}
}

// Summary writes the final processed/failed tally.
func Summary(w io.Writer, results []fixer.FileResult, opts Options) {
	c := palette(opts.Color)

	success, failed := 0, 0
	for i := range results {
		if results[i].Err != nil || results[i].Skipped {
			failed++
		} else {
			success++
		}
	}

	fmt.Fprintln(w, c.dim(rule))
	line := fmt.Sprintf("done: %d file(s) processed", success)
	if failed > 0 {
		line += fmt.Sprintf(", %d failed", failed)
		fmt.Fprintln(w, c.warn(line))
		return
	}
	fmt.Fprintln(w, c.ok(line))
}

// Failed reports whether any result should drive a non-zero exit.
func Failed(results []fixer.FileResult) bool {
	for i := range results {
		if results[i].Err != nil || results[i].Skipped {
			return true
		}
		if results[i].Validation != nil && !results[i].Validation.OK {
			return true
		}
	}
	return false
}

func printValidation(w io.Writer, res *fixer.FileResult, c colors) {
	if res.Validation == nil {
		return
	}
	if res.Validation.OK {
		fmt.Fprintf(w, "%s\n", c.ok("  XSD validation passed"))
		return
	}
	fmt.Fprintf(w, "%s\n", c.err("  XSD validation FAILED"))
	for _, v := range res.Validation.Violations {
		fmt.Fprintf(w, "%s\n", c.err("    "+v))
	}
}

// colors is a resolved palette: either real ANSI sprints or identity
// functions when color is off, so callers never branch.
type colors struct {
	header  func(...interface{}) string
	dim     func(...interface{}) string
	removed func(...interface{}) string
	warn    func(...interface{}) string
	err     func(...interface{}) string
	ok      func(...interface{}) string
}

func palette(enabled bool) colors {
	if !enabled {
		plain := func(a ...interface{}) string { return fmt.Sprint(a...) }
		return colors{header: plain, dim: plain, removed: plain, warn: plain, err: plain, ok: plain}
	}
	return colors{
		header:  headerColor.Sprint,
		dim:     dimColor.Sprint,
		removed: removedColor.Sprint,
		warn:    warnColor.Sprint,
		err:     errorColor.Sprint,
		ok:      okColor.Sprint,
	}
}

// Plain renders a change log as bare text lines, one per record, for
// piping into other tools.
func Plain(w io.Writer, log *reduce.Log) {
	for _, rec := range log.Items() {
		var b strings.Builder
		b.WriteString(rec.Path)
		b.WriteByte('\t')
		b.WriteString(rec.Kind.String())
		if rec.Value != "" {
			b.WriteByte('\t')
			b.WriteString(rec.Value)
		}
		b.WriteByte('\t')
		b.WriteString(rec.Reason)
		fmt.Fprintln(w, b.String())
	}
}
