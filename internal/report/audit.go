package report

import (
	"fmt"
	"os"
	"time"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"t4fix/internal/fixer"
	"t4fix/internal/reduce"
)

// Current schema version - increment when AuditPayload format changes
const auditSchemaVersion uint16 = 1

// AuditRecord is one change, as persisted.
type AuditRecord struct {
	Path   string
	Field  string
	Value  string
	Kind   uint8
	Reason string
}

// AuditFile summarises one processed file.
type AuditFile struct {
	Path        string
	Skipped     bool
	SkipReason  string
	Error       string
	Wrote       bool
	LinesBefore uint32
	LinesAfter  uint32
	Records     []AuditRecord
}

// AuditPayload is the on-disk audit trail for one invocation.
type AuditPayload struct {
	Schema    uint16
	CreatedAt time.Time
	Preview   bool
	Files     []AuditFile
}

// WriteAudit persists the results of a run as a msgpack audit file.
func WriteAudit(path string, results []fixer.FileResult, preview bool) error {
	payload := AuditPayload{
		Schema:    auditSchemaVersion,
		CreatedAt: time.Now().UTC(),
		Preview:   preview,
		Files:     make([]AuditFile, 0, len(results)),
	}

	for i := range results {
		res := &results[i]
		af := AuditFile{
			Path:       res.Path,
			Skipped:    res.Skipped,
			SkipReason: res.SkipReason,
			Wrote:      res.Wrote,
		}
		if res.Err != nil {
			af.Error = res.Err.Error()
		}
		var err error
		af.LinesBefore, err = safecast.Conv[uint32](res.LinesBefore)
		if err != nil {
			return fmt.Errorf("audit: line count overflow: %w", err)
		}
		af.LinesAfter, err = safecast.Conv[uint32](res.LinesAfter)
		if err != nil {
			return fmt.Errorf("audit: line count overflow: %w", err)
		}
		if res.Log != nil {
			af.Records = make([]AuditRecord, 0, res.Log.Len())
			for _, rec := range res.Log.Items() {
				af.Records = append(af.Records, AuditRecord{
					Path:   rec.Path,
					Field:  rec.Field,
					Value:  rec.Value,
					Kind:   uint8(rec.Kind),
					Reason: rec.Reason,
				})
			}
		}
		payload.Files = append(payload.Files, af)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audit: %w", err)
	}
	defer f.Close()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&payload); err != nil {
		return fmt.Errorf("audit: encode: %w", err)
	}
	return nil
}

// ReadAudit loads a previously written audit file.
func ReadAudit(path string) (*AuditPayload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audit: %w", err)
	}
	defer f.Close()

	var payload AuditPayload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("audit: decode: %w", err)
	}
	if payload.Schema != auditSchemaVersion {
		return nil, fmt.Errorf("audit: unsupported schema version %d", payload.Schema)
	}
	return &payload, nil
}

// KindString translates a persisted record kind back to its label.
func (r AuditRecord) KindString() string {
	return reduce.RecordKind(r.Kind).String()
}
