package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/vovakirdan/aquarium/internal/config"
)

// RunSummary is one row of runs.csv.
type RunSummary struct {
	Run        int    `csv:"run"`
	Pilot      string `csv:"pilot"`
	Seed       int64  `csv:"seed"`
	Difficulty string `csv:"difficulty"`
	Score      int    `csv:"score"`
	Level      int    `csv:"level"`
	Frames     int    `csv:"frames"`
	GameOver   bool   `csv:"game_over"`
}

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir           string
	telemetryFile *os.File
	runsFile      *os.File

	telemetryHeaderWritten bool
	runsHeaderWritten      bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("telemetry: creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		return nil, fmt.Errorf("telemetry: creating telemetry.csv: %w", err)
	}
	om.telemetryFile = f

	f, err = os.Create(filepath.Join(dir, "runs.csv"))
	if err != nil {
		om.telemetryFile.Close()
		return nil, fmt.Errorf("telemetry: creating runs.csv: %w", err)
	}
	om.runsFile = f

	return om, nil
}

// WriteConfig saves the effective configuration as YAML.
func (om *OutputManager) WriteConfig(cfg config.AquariumConfig) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteTelemetry writes a window stats record to telemetry.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}

	records := []WindowStats{stats}

	if !om.telemetryHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.telemetryFile); err != nil {
			return fmt.Errorf("telemetry: writing telemetry: %w", err)
		}
		om.telemetryHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.telemetryFile); err != nil {
			return fmt.Errorf("telemetry: writing telemetry: %w", err)
		}
	}

	return nil
}

// WriteRun writes a run record to runs.csv.
func (om *OutputManager) WriteRun(r RunSummary) error {
	if om == nil {
		return nil
	}

	records := []RunSummary{r}

	if !om.runsHeaderWritten {
		if err := gocsv.Marshal(records, om.runsFile); err != nil {
			return fmt.Errorf("telemetry: writing run: %w", err)
		}
		om.runsHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.runsFile); err != nil {
			return fmt.Errorf("telemetry: writing run: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error

	if om.telemetryFile != nil {
		if err := om.telemetryFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if om.runsFile != nil {
		if err := om.runsFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
