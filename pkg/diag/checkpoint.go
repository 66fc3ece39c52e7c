package diag

import (
	"encoding/gob"
	"fmt"
	"os"
)

// ReportEntry is a flattened, gob-friendly rendering of one Diagnostic:
// Args are pre-stringified since gob cannot encode an unregistered `any`
// payload of arbitrary diagnostic-argument types.
type ReportEntry struct {
	Code     Code
	Location Location
	Args     []string
}

// Report is a serializable snapshot of a Sink's diagnostics, for the CLI's
// --report flag. This is a debugging convenience only — it is not the
// visitor-based serialization protocol §6 describes for expressions.
type Report struct {
	Diagnostics []ReportEntry
}

func init() {
	gob.Register(Location{})
}

// SaveReport writes a snapshot of s to path using gob, the same encoding
// the teacher's checkpoint mechanism uses for resumable search state.
func SaveReport(path string, s *Sink) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	recs := s.Diagnostics()
	entries := make([]ReportEntry, len(recs))
	for i, d := range recs {
		args := make([]string, len(d.Args))
		for j, a := range d.Args {
			args[j] = fmt.Sprint(a)
		}
		entries[i] = ReportEntry{Code: d.Code, Location: d.Location, Args: args}
	}
	return gob.NewEncoder(f).Encode(Report{Diagnostics: entries})
}

// LoadReport reads back a snapshot written by SaveReport.
func LoadReport(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r Report
	if err := gob.NewDecoder(f).Decode(&r); err != nil {
		return nil, err
	}
	return &r, nil
}
