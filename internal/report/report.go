// Package report persists a finished Monte Carlo run as a TOML document.
package report

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/percolation/internal/config"
	"github.com/katalvlaran/percolation/montecarlo"
)

// Report is the on-disk form of a run.
type Report struct {
	RunID       string    `toml:"run_id"`
	GeneratedAt time.Time `toml:"generated_at"`
	Size        int       `toml:"size"`
	Trials      int       `toml:"trials"`
	Seed        int64     `toml:"seed"`
	Workers     int       `toml:"workers"`
	Summary     Summary   `toml:"summary"`
	Thresholds  []float64 `toml:"thresholds"`
}

// Summary holds the derived statistics.
type Summary struct {
	Mean         float64 `toml:"mean"`
	Stddev       float64 `toml:"stddev"`
	ConfidenceLo float64 `toml:"confidence_lo"`
	ConfidenceHi float64 `toml:"confidence_hi"`
}

// New builds a Report for res, stamped with a fresh run id and the current UTC time.
func New(cfg config.Config, res *montecarlo.Result) Report {
	return Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Size:        res.N,
		Trials:      res.Trials(),
		Seed:        cfg.Seed,
		Workers:     cfg.Workers,
		Summary: Summary{
			Mean:         res.Mean(),
			Stddev:       res.Stddev(),
			ConfidenceLo: res.ConfidenceLo(),
			ConfidenceHi: res.ConfidenceHi(),
		},
		Thresholds: append([]float64(nil), res.Thresholds...),
	}
}

// Write encodes r as TOML and writes it to path.
func Write(path string, r Report) error {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

// Read decodes a report previously written by Write.
func Read(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("read report %s: %w", path, err)
	}
	var r Report
	if err := toml.Unmarshal(data, &r); err != nil {
		return Report{}, fmt.Errorf("decode report %s: %w", path, err)
	}
	return r, nil
}
