package pipeline

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Audit appends exclusion records to a side file so filtered words can be
// reviewed after a run. Each line: timestamp, run id, word, reason.
// A nil *Audit is valid and records nothing.
type Audit struct {
	f     *os.File
	runID uuid.UUID
}

// OpenAudit opens (or creates) the audit log in append mode and stamps this
// run with a fresh id.
func OpenAudit(path string) (*Audit, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open audit log %s: %w", path, err)
	}
	return &Audit{f: f, runID: uuid.New()}, nil
}

// Record writes one exclusion line. Write failures are swallowed: the audit
// log is best-effort and must never fail an ingest.
func (a *Audit) Record(word, reason string) {
	if a == nil || a.f == nil {
		return
	}
	fmt.Fprintf(a.f, "%s\t%s\t%s\t%s\n",
		time.Now().UTC().Format(time.RFC3339), a.runID, word, reason)
}

// Close closes the underlying file.
func (a *Audit) Close() error {
	if a == nil || a.f == nil {
		return nil
	}
	return a.f.Close()
}
