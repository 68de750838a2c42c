package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"falling-sand/internal/config"
)

// Recorder writes census rows to census.csv in an output directory. A nil
// Recorder discards everything, so callers need not check whether output is
// enabled.
type Recorder struct {
	dir           string
	censusFile    *os.File
	headerWritten bool
}

// NewRecorder creates dir and opens census.csv. Returns nil if dir is empty.
func NewRecorder(dir string) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "census.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating census.csv: %w", err)
	}
	return &Recorder{dir: dir, censusFile: f}, nil
}

// Write appends one row. The header is written with the first row only.
func (r *Recorder) Write(row Row) error {
	if r == nil {
		return nil
	}
	records := []Row{row}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.censusFile); err != nil {
			return fmt.Errorf("writing census: %w", err)
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, r.censusFile); err != nil {
		return fmt.Errorf("writing census: %w", err)
	}
	return nil
}

// WriteConfig saves the configuration the run used as config.yaml.
func (r *Recorder) WriteConfig(cfg *config.Config) error {
	if r == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(r.dir, "config.yaml"))
}

// Dir returns the output directory.
func (r *Recorder) Dir() string {
	if r == nil {
		return ""
	}
	return r.dir
}

// Close closes census.csv. Further calls are no-ops.
func (r *Recorder) Close() error {
	if r == nil || r.censusFile == nil {
		return nil
	}
	err := r.censusFile.Close()
	r.censusFile = nil
	return err
}

// ReadCensus loads a census.csv written by a Recorder.
func ReadCensus(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening census: %w", err)
	}
	defer f.Close()
	var rows []Row
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parsing census: %w", err)
	}
	return rows, nil
}
