package sampler

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/medgenlab/seqsample/internal/config"
	"github.com/medgenlab/seqsample/internal/logger"
	"github.com/medgenlab/seqsample/internal/progress"
	"github.com/medgenlab/seqsample/internal/seqio"
)

// Options describes one sampling job.
type Options struct {
	InputURL    string
	OutputPath  string
	TargetBases int64
}

// Runner wires resource lifecycle, sampling loop and progress reporting for
// a single sequential run.
type Runner struct {
	cfg    *config.Config
	logger *logger.Logger
	stdout io.Writer
}

// NewRunner creates a Runner. A nil logger falls back to the default logger
// and a nil stdout falls back to os.Stdout.
func NewRunner(cfg *config.Config, log *logger.Logger, stdout io.Writer) *Runner {
	if log == nil {
		log = logger.NewDefault()
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Runner{cfg: cfg, logger: log, stdout: stdout}
}

// Run performs one sampling job and returns the total bases written to the
// output. The total is meaningful even when an error is returned: any
// records durably handed to the writer before the failure are kept, and the
// caller is expected to report the partial total rather than discard it.
func (r *Runner) Run(ctx context.Context, opts Options) (int64, error) {
	log := r.logger.WithRun(uuid.NewString()).WithInput(opts.InputURL)
	log.Infow("Starting sampling run",
		"output", opts.OutputPath,
		"target_bases", opts.TargetBases,
	)
	start := time.Now()

	sess, err := seqio.Open(ctx, opts.InputURL, opts.OutputPath, seqio.Options{
		HTTPTimeout:       time.Duration(r.cfg.Input.HTTPTimeoutSeconds) * time.Second,
		DecompressWorkers: r.cfg.Input.DecompressWorkers,
	})
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil {
			log.Warnw("Failed to release resources", "error", cerr)
		}
	}()

	reporter := progress.NewReporter(r.stdout, r.cfg.Sampling.ReportIntervalBases)
	loop := NewLoop(opts.TargetBases, reporter)

	total, err := loop.Run(sess.Reader, sess.Writer)
	if err != nil {
		log.Errorw("Sampling run failed",
			"sampled_bases", total,
			"elapsed", time.Since(start),
		)
		return total, err
	}

	log.Infow("Sampling run finished",
		"sampled_bases", total,
		"target_bases", opts.TargetBases,
		"elapsed", time.Since(start),
	)
	return total, nil
}

// Summary renders the unconditional completion line.
func Summary(total int64) string {
	return fmt.Sprintf("Sampling complete. Total sampled bases: %d.", total)
}
