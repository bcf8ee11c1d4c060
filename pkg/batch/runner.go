// Package batch processes every PDF in a directory and writes one JSON
// record per input.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/pyhub-apps/pdfstructure/pkg/structure"
)

// FileProcessor turns one PDF file into a structured document
type FileProcessor interface {
	ProcessFile(ctx context.Context, path string) (*structure.Document, error)
}

// Result is the outcome for one input file
type Result struct {
	Input    string
	Output   string
	Err      error // processing failure; an empty document was written
	WriteErr error // the output could not be written
	Skipped  bool  // not started because the run was canceled
}

// Summary describes a finished run
type Summary struct {
	RunID       string
	Total       int
	Processed   int
	Failed      int
	WriteErrors int
	Skipped     int
	Duration    time.Duration
	Results     []Result // in input order
}

// Runner processes the PDFs of an input directory on a bounded pool of
// workers
type Runner struct {
	processor FileProcessor
	inputDir  string
	outputDir string
	workers   int
	logger    logrus.FieldLogger
}

// Option configures a Runner
type Option func(*Runner)

// WithWorkers sets the number of files processed concurrently
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger logrus.FieldLogger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner creates a runner reading from inputDir and writing to outputDir
func NewRunner(processor FileProcessor, inputDir, outputDir string, opts ...Option) *Runner {
	r := &Runner{
		processor: processor,
		inputDir:  inputDir,
		outputDir: outputDir,
		workers:   4,
		logger:    logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// FindInputs lists the PDF files of dir sorted by name. The extension
// match is case-insensitive.
func FindInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputDir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

// Run processes every input. A file that fails to process is recorded with
// the canonical empty document. Canceling ctx stops new files from being
// started; files already in progress complete and are written.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()

	files, err := FindInputs(r.inputDir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	summary := &Summary{
		RunID:   uuid.NewString(),
		Total:   len(files),
		Results: make([]Result, len(files)),
	}
	logger := r.logger.WithField("run_id", summary.RunID)
	logger.Infof("Found %d PDF files to process", len(files))
	r.warnCollisions(logger, files)

	var g errgroup.Group
	g.SetLimit(r.workers)

	for i, file := range files {
		summary.Results[i] = Result{Input: file, Output: filepath.Join(r.outputDir, OutputName(file))}

		if ctx.Err() != nil {
			summary.Results[i].Skipped = true
			continue
		}

		result := &summary.Results[i]
		g.Go(func() error {
			r.processOne(context.WithoutCancel(ctx), logger, result)
			return nil
		})
	}

	// workers report through their Result and never fail the group
	_ = g.Wait()

	for _, result := range summary.Results {
		switch {
		case result.Skipped:
			summary.Skipped++
		case result.Err != nil:
			summary.Failed++
		default:
			summary.Processed++
		}
		if result.WriteErr != nil {
			summary.WriteErrors++
		}
	}
	summary.Duration = time.Since(start)

	logger.WithFields(logrus.Fields{
		"processed":    summary.Processed,
		"failed":       summary.Failed,
		"write_errors": summary.WriteErrors,
		"skipped":      summary.Skipped,
		"duration":     summary.Duration.String(),
	}).Info("PDF processing completed")

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	return summary, nil
}

func (r *Runner) processOne(ctx context.Context, logger logrus.FieldLogger, result *Result) {
	name := filepath.Base(result.Input)
	entry := logger.WithField("file", name)
	entry.Info("Processing")

	doc, err := r.processor.ProcessFile(ctx, result.Input)
	if err != nil {
		entry.WithError(err).Error("Error processing")
		result.Err = err
		doc = structure.EmptyDocument()
	}

	if err := WriteFile(result.Output, doc); err != nil {
		entry.WithError(err).Error("Error saving")
		result.WriteErr = err
		return
	}

	entry.WithField("output", result.Output).Info("Completed")
}

// warnCollisions logs inputs that map to the same output file, such as
// a.pdf and a.PDF
func (r *Runner) warnCollisions(logger logrus.FieldLogger, files []string) {
	seen := make(map[string]string, len(files))
	for _, file := range files {
		out := OutputName(file)
		if prev, ok := seen[out]; ok {
			logger.WithFields(logrus.Fields{
				"output": out,
				"inputs": []string{filepath.Base(prev), filepath.Base(file)},
			}).Warn("Inputs share an output file")
			continue
		}
		seen[out] = file
	}
}

// Failures returns the results whose processing or writing failed
func (s *Summary) Failures() []Result {
	var failed []Result
	for _, result := range s.Results {
		if result.Err != nil || result.WriteErr != nil {
			failed = append(failed, result)
		}
	}
	return failed
}

// IsCanceled reports whether err stems from a canceled run
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
