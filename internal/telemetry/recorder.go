package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/vovakirdan/shnek/internal/config"
)

// Recorder writes sampled ticks to telemetry.csv in an output directory.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	dir           string
	every         uint64
	telemetryFile *os.File

	// Track if headers have been written
	headerWritten bool
	rows          int
}

// NewRecorder creates the output directory and opens telemetry.csv.
// Returns nil if dir is empty (output disabled). every < 1 records every tick.
func NewRecorder(dir string, every int) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("telemetry: creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		return nil, fmt.Errorf("telemetry: creating telemetry.csv: %w", err)
	}

	return &Recorder{dir: dir, every: uint64(max(1, every)), telemetryFile: f}, nil
}

// Record writes the sample if its tick falls on the sampling interval.
func (r *Recorder) Record(s Sample) error {
	if r == nil || s.Tick%r.every != 0 {
		return nil
	}

	records := []Sample{s}

	if !r.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, r.telemetryFile); err != nil {
			return fmt.Errorf("telemetry: writing sample: %w", err)
		}
		r.headerWritten = true
	} else {
		// Subsequent writes skip headers
		if err := gocsv.MarshalWithoutHeaders(records, r.telemetryFile); err != nil {
			return fmt.Errorf("telemetry: writing sample: %w", err)
		}
	}
	r.rows++

	return nil
}

// WriteConfig saves the effective configuration as YAML.
func (r *Recorder) WriteConfig(cfg config.Config) error {
	if r == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(r.dir, "config.yaml"))
}

// WriteSummary saves the run summary as a single-row summary.csv.
func (r *Recorder) WriteSummary(s Summary) error {
	if r == nil {
		return nil
	}

	f, err := os.Create(filepath.Join(r.dir, "summary.csv"))
	if err != nil {
		return fmt.Errorf("telemetry: creating summary.csv: %w", err)
	}
	defer f.Close()

	if err := gocsv.Marshal([]Summary{s}, f); err != nil {
		return fmt.Errorf("telemetry: writing summary: %w", err)
	}
	return nil
}

// Rows returns the number of samples written.
func (r *Recorder) Rows() int {
	if r == nil {
		return 0
	}
	return r.rows
}

// Dir returns the output directory path.
func (r *Recorder) Dir() string {
	if r == nil {
		return ""
	}
	return r.dir
}

// Close flushes and closes the output file.
func (r *Recorder) Close() error {
	if r == nil || r.telemetryFile == nil {
		return nil
	}
	return r.telemetryFile.Close()
}
