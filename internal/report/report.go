// Package report persists per-hand equity results as plain text files,
// one artifact per starting hand: the per-run equity values followed by
// their average. The format is human-readable, not a machine round-trip.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lox/holdem-equity/internal/fileutil"
	"github.com/lox/holdem-equity/internal/statistics"
)

// Writer writes one result file per starting hand into a directory
type Writer struct {
	dir string
}

// NewWriter creates the output directory if needed and returns a writer
// for it.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return &Writer{dir: dir}, nil
}

// Path returns the file path the given hand's results are written to
func (w *Writer) Path(hand string) string {
	return filepath.Join(w.dir, fmt.Sprintf("equity_results_%s.txt", hand))
}

// WriteHand writes the per-run equities and their average for one hand.
// The file is written atomically so a crashed batch never leaves partial
// artifacts behind.
func (w *Writer) WriteHand(hand string, stats *statistics.Statistics, simsPerRun int) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Equity simulation results for %s over %d runs of %d simulations each:\n\n",
		hand, stats.Runs, simsPerRun)
	for i, eq := range stats.Values {
		fmt.Fprintf(&sb, "Run %d: %.4f\n", i+1, eq)
	}
	fmt.Fprintf(&sb, "\nAverage Equity: %.4f\n", stats.Mean())

	if err := fileutil.WriteFileAtomic(w.Path(hand), []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write results for %s: %w", hand, err)
	}
	return nil
}
