package fixer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"t4fix/internal/xmltree"
)

const sampleT4 = `<?xml version="1.0" encoding="UTF-8"?>
<Submission>
  <T4Slip>
    <empt_incamt>61344.05</empt_incamt>
    <cppe_cntrb_amt>0.00</cppe_cntrb_amt>
    <empt_cd>00</empt_cd>
  </T4Slip>
</Submission>
`

func writeSample(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFixFileWritesReducedDocument(t *testing.T) {
	path := writeSample(t, "t4.xml", sampleT4)

	res := FixFile(context.Background(), path, Options{Backup: true})
	if res.Err != nil {
		t.Fatalf("fix failed: %v", res.Err)
	}
	if !res.Wrote {
		t.Fatalf("expected file to be written")
	}
	if res.Log.Removals() != 2 {
		t.Fatalf("expected 2 removals, got %d", res.Log.Removals())
	}

	fixed, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(fixed), "cppe_cntrb_amt") || strings.Contains(string(fixed), "empt_cd") {
		t.Fatalf("zero fields still present:\n%s", fixed)
	}
	if !strings.Contains(string(fixed), "61344.05") {
		t.Fatalf("real data lost:\n%s", fixed)
	}

	backup, err := os.ReadFile(res.BackupPath)
	if err != nil {
		t.Fatalf("backup missing: %v", err)
	}
	if string(backup) != sampleT4 {
		t.Fatalf("backup does not match the original")
	}
}

func TestPreviewLeavesFileUntouched(t *testing.T) {
	path := writeSample(t, "t4.xml", sampleT4)

	res := FixFile(context.Background(), path, Options{Preview: true, Backup: true})
	if res.Err != nil {
		t.Fatalf("preview failed: %v", res.Err)
	}
	if res.Wrote {
		t.Fatalf("preview must not write")
	}
	if res.BackupPath != "" {
		t.Fatalf("preview must not create backups")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != sampleT4 {
		t.Fatalf("preview modified the file")
	}
}

func TestPreviewAndFixProduceSameLog(t *testing.T) {
	previewPath := writeSample(t, "a.xml", sampleT4)
	fixPath := writeSample(t, "b.xml", sampleT4)

	preview := FixFile(context.Background(), previewPath, Options{Preview: true})
	fix := FixFile(context.Background(), fixPath, Options{})

	if preview.Log.Len() != fix.Log.Len() {
		t.Fatalf("log length differs: preview=%d fix=%d", preview.Log.Len(), fix.Log.Len())
	}
	for i := range preview.Log.Items() {
		p, f := preview.Log.Items()[i], fix.Log.Items()[i]
		if p != f {
			t.Fatalf("record %d differs: preview=%+v fix=%+v", i, p, f)
		}
	}
}

func TestFixFileKeepsSchemaInstanceAttributes(t *testing.T) {
	// Real returns arrive inside a T619 envelope whose root declares
	// xsi; fixing must preserve those attributes as written.
	envelope := `<?xml version="1.0" encoding="UTF-8"?>
<Submission xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:noNamespaceSchemaLocation="layout-topologie.xsd">
  <T4Slip>
    <empt_incamt>61344.05</empt_incamt>
    <cppe_cntrb_amt>0.00</cppe_cntrb_amt>
  </T4Slip>
</Submission>
`
	path := writeSample(t, "envelope.xml", envelope)

	res := FixFile(context.Background(), path, Options{})
	if res.Err != nil {
		t.Fatalf("fix failed: %v", res.Err)
	}
	if !res.Wrote {
		t.Fatalf("expected file to be written")
	}
	if res.Log.Removals() != 1 {
		t.Fatalf("expected 1 removal, got %d", res.Log.Removals())
	}

	fixed, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(fixed), `xsi:noNamespaceSchemaLocation="layout-topologie.xsd"`) {
		t.Fatalf("schema-instance attribute lost or rewritten:\n%s", fixed)
	}
	if !strings.Contains(string(fixed), `xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"`) {
		t.Fatalf("xmlns declaration lost or rewritten:\n%s", fixed)
	}
	if strings.Contains(string(fixed), "cppe_cntrb_amt") {
		t.Fatalf("zero field still present:\n%s", fixed)
	}
}

func TestSkipNonT4(t *testing.T) {
	path := writeSample(t, "other.xml", "<Invoice><total>10.00</total></Invoice>")

	res := FixFile(context.Background(), path, Options{})
	if !res.Skipped {
		t.Fatalf("expected non-T4 file to be skipped")
	}
}

func TestSkipNonXMLExtension(t *testing.T) {
	path := writeSample(t, "notes.txt", "<T4Slip></T4Slip>")

	res := FixFile(context.Background(), path, Options{})
	if !res.Skipped {
		t.Fatalf("expected non-.xml file to be skipped")
	}
}

func TestCompliantFileNotRewritten(t *testing.T) {
	clean := "<Submission>\n  <T4Slip>\n    <empt_incamt>100.00</empt_incamt>\n  </T4Slip>\n</Submission>\n"
	path := writeSample(t, "clean.xml", clean)

	res := FixFile(context.Background(), path, Options{Backup: true})
	if res.Err != nil {
		t.Fatalf("fix failed: %v", res.Err)
	}
	if res.Wrote {
		t.Fatalf("compliant file must not be rewritten")
	}
	if res.BackupPath != "" {
		t.Fatalf("compliant file must not be backed up")
	}
}

func TestRunMatchesEngineContract(t *testing.T) {
	doc, err := xmltree.ParseString("<T4Slip><padj_amt>-622.88</padj_amt></T4Slip>")
	if err != nil {
		t.Fatal(err)
	}
	log := Run(doc, Options{})
	if log.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", log.Len())
	}
	if !strings.Contains(string(doc.Bytes()), "-622.88") {
		t.Fatalf("negative value removed without request")
	}
}

func TestFixAllIsolation(t *testing.T) {
	good := writeSample(t, "good.xml", sampleT4)
	missing := filepath.Join(t.TempDir(), "missing.xml")

	results := FixAll(context.Background(), []string{missing, good}, Options{Jobs: 2})
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Err == nil {
		t.Fatalf("missing file must fail")
	}
	if results[1].Err != nil {
		t.Fatalf("good file must succeed despite the other failing: %v", results[1].Err)
	}
	if results[1].Log.Removals() != 2 {
		t.Fatalf("expected 2 removals, got %d", results[1].Log.Removals())
	}
}
