package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/medgenlab/seqsample/internal/config"
	"github.com/medgenlab/seqsample/internal/logger"
	"github.com/medgenlab/seqsample/internal/quantity"
	"github.com/medgenlab/seqsample/internal/sampler"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile        string
	logLevel       string
	logFormat      string
	reportInterval int64
	httpTimeout    int
)

var rootCmd = &cobra.Command{
	Use:   "seqsample <input_url> <output_path> <target_base_count>",
	Short: "Base-count bounded subsampler for SAM/BAM read containers",
	Long: `seqsample streams sequence records from a source URL and copies them to a
local SAM or BAM file until a target cumulative base count is reached.

Records are copied whole and in input order; the run stops once the running
base total reaches the target (the record crossing the threshold is still
written, so the final total may overshoot by up to one record). Progress is
printed at fixed base intervals and a completion summary is always emitted,
even when the stream fails mid-run.

The input may be a local path, file://, http(s):// or s3:// (public bucket)
URL. The output format is chosen by the output file extension (.bam for the
binary container, SAM text otherwise). The target accepts plain integers or
the Mb/Gb suffixes.

Example:
  seqsample https://example.org/giab/HG002.bam sampled.bam 10Gb`,
	Args: cobra.ExactArgs(3),
	RunE: runSample,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"Path to optional configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Sampling overrides
	rootCmd.PersistentFlags().Int64Var(&reportInterval, "report-interval", 0,
		"Override progress report interval (bases between reports)")
	rootCmd.PersistentFlags().IntVar(&httpTimeout, "http-timeout", 0,
		"Override HTTP timeout in seconds (0 = no timeout)")
}

func runSample(cmd *cobra.Command, args []string) error {
	inputURL, outputPath, targetArg := args[0], args[1], args[2]

	// The target is parsed before any I/O; a bad value is a usage mistake
	// and aborts immediately.
	target, err := quantity.ParseBaseCount(targetArg)
	if err != nil {
		return fmt.Errorf("invalid target base count: %w", err)
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyOverrides(logLevel, logFormat, reportInterval, httpTimeout)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	runner := sampler.NewRunner(cfg, log, cmd.OutOrStdout())
	total, runErr := runner.Run(context.Background(), sampler.Options{
		InputURL:    inputURL,
		OutputPath:  outputPath,
		TargetBases: target,
	})
	if runErr != nil {
		// Best-effort policy: an I/O failure mid-run does not discard the
		// records already written. Report the error and fall through to the
		// summary with the partial total.
		fmt.Fprintln(cmd.ErrOrStderr(), color.Red.Sprintf("Error: %v", runErr))
	}

	fmt.Fprintln(cmd.OutOrStdout(), sampler.Summary(total))
	return nil
}
