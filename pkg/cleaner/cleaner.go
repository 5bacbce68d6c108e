package cleaner

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"tabclean/internal/pipeline"
	"tabclean/pkg/contracts/domain"
)

// ErrNilDataset is returned when Clean is called with a nil dataset.
var ErrNilDataset = errors.New("dataset is nil")

// Cleaner runs the cleaning pipeline. Its configuration is fixed at
// construction; Clean can be called any number of times, including
// concurrently, because every call works on its own dataset copy and
// returns its own report.
type Cleaner struct {
	config domain.CleanerConfig
	logger *slog.Logger
}

// NewCleaner creates a cleaner with the given configuration. Verbose
// configurations log progress lines to stdout; otherwise the cleaner runs
// silently. Configuration problems (unknown strategy, uncoercible constant
// fill) are reported here, before any data is touched.
func NewCleaner(cfg domain.CleanerConfig) (*Cleaner, error) {
	return NewCleanerWithLogger(cfg, nil)
}

// NewCleanerWithLogger creates a cleaner that logs through the given
// logger. A nil logger falls back to the verbosity-gated default.
func NewCleanerWithLogger(cfg domain.CleanerConfig, logger *slog.Logger) (*Cleaner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = defaultLogger(cfg.Verbose)
	}
	return &Cleaner{config: cfg, logger: logger}, nil
}

// Clean runs the nine-stage pipeline over a private copy of ds and returns
// the cleaned copy together with the run report. The caller's dataset is
// never mutated. The result is deterministic for identical input and
// configuration. On error both returned values are nil; no partial report
// escapes.
func (c *Cleaner) Clean(ds *domain.Dataset) (*domain.Dataset, *domain.Report, error) {
	if ds == nil {
		return nil, nil, ErrNilDataset
	}

	start := time.Now()
	work := ds.Copy()
	report := domain.NewReport()
	report.RowsIn = ds.Rows()

	state := &pipeline.State{
		Dataset: work,
		Config:  c.config,
		Report:  report,
		Logger:  c.logger.With(slog.String("run_id", report.ID)),
	}
	if err := pipeline.Run(state); err != nil {
		return nil, nil, err
	}

	report.RowsOut = work.Rows()
	report.Duration = time.Since(start)

	c.logger.Info("data cleaning completed",
		slog.String("run_id", report.ID),
		slog.Int("rows_in", report.RowsIn),
		slog.Int("rows_out", report.RowsOut),
		slog.Duration("duration", report.Duration))
	return work, report, nil
}

// Config returns a copy of the cleaner's configuration.
func (c *Cleaner) Config() domain.CleanerConfig {
	return c.config
}

// defaultLogger builds the verbosity-gated logger: a text handler on stdout
// when verbose, a discard handler otherwise.
func defaultLogger(verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
