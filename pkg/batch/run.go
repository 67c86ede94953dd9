// Package batch orchestrates annotation of whole directories of screen
// dumps. Every dump is paired with its screenshot, processed independently,
// and a failure in one document never stops the others.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/uimark/uimark/pkg/annotate"
	"github.com/uimark/uimark/pkg/uidump"
)

// Config holds batch run options.
type Config struct {
	InputDir   string          // Directory holding dump/screenshot pairs
	OutputDir  string          // Where annotated images are written; empty keeps them beside the inputs
	ReportPath string          // Optional PDF contact sheet of the results
	Workers    int             // Concurrent documents; defaults to 4
	Style      annotate.Config // Drawing style
}

// Summary reports the outcome of a batch run.
type Summary struct {
	Processed int      // Documents annotated successfully
	Skipped   int      // Dumps without a matching screenshot
	Failed    int      // Documents that failed parsing or rendering
	Outputs   []string // Paths of the annotated images, in input order
}

// Process runs the single-document pipeline: read the dump, extract the
// leaf bounds, annotate the screenshot. The first error aborts the
// document and is returned with its taxonomy type intact.
func Process(pair Pair, outputPath string, style annotate.Config) (string, error) {
	data, err := os.ReadFile(pair.XML)
	if err != nil {
		return "", fmt.Errorf("failed to read dump: %w", err)
	}
	rects, err := uidump.BoundsFromDump(data)
	if err != nil {
		return "", err
	}
	return annotate.AnnotateFile(pair.Image, rects, outputPath, style)
}

// Run processes every pair under cfg.InputDir with bounded concurrency.
// Documents are fully independent, so each failure is logged with its
// taxonomy kind and the batch moves on.
func Run(ctx context.Context, cfg Config, log *slog.Logger) (Summary, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}

	pairs, unmatched, err := ScanPairs(cfg.InputDir)
	if err != nil {
		return Summary{}, err
	}
	for _, xml := range unmatched {
		log.Warn("no screenshot for dump, skipping", "xml", xml)
	}

	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return Summary{}, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	type result struct {
		idx int
		out string
		err error
	}
	results := make(chan result, len(pairs))
	sem := make(chan struct{}, workers)

	for i, pair := range pairs {
		sem <- struct{}{}
		go func(i int, pair Pair) {
			defer func() { <-sem }()
			select {
			case <-ctx.Done():
				results <- result{idx: i, err: ctx.Err()}
				return
			default:
			}
			outPath := ""
			if cfg.OutputDir != "" {
				outPath = filepath.Join(cfg.OutputDir, filepath.Base(annotate.DefaultOutputPath(pair.Image)))
			}
			out, err := Process(pair, outPath, cfg.Style)
			results <- result{idx: i, out: out, err: err}
		}(i, pair)
	}

	summary := Summary{Skipped: len(unmatched)}
	outputs := make([]string, len(pairs))
	for range pairs {
		r := <-results
		if r.err != nil {
			summary.Failed++
			log.Error("document failed", "xml", pairs[r.idx].XML, "kind", classify(r.err), "error", r.err)
			continue
		}
		summary.Processed++
		outputs[r.idx] = r.out
		log.Info("annotated", "xml", pairs[r.idx].XML, "output", r.out)
	}
	for _, out := range outputs {
		if out != "" {
			summary.Outputs = append(summary.Outputs, out)
		}
	}

	if cfg.ReportPath != "" && len(summary.Outputs) > 0 {
		if err := annotate.AssembleReport(summary.Outputs, cfg.ReportPath); err != nil {
			return summary, fmt.Errorf("failed to assemble report: %w", err)
		}
		log.Info("report written", "path", cfg.ReportPath)
	}

	return summary, nil
}

// classify names the failure-taxonomy bucket for log output.
func classify(err error) string {
	var syntaxErr *uidump.SyntaxError
	var structureErr *uidump.StructureError
	var formatErr *uidump.FormatError
	var resourceErr *annotate.ResourceError
	switch {
	case errors.As(err, &syntaxErr):
		return "syntax"
	case errors.As(err, &structureErr):
		return "structure"
	case errors.As(err, &formatErr):
		return "format"
	case errors.As(err, &resourceErr):
		return "resource"
	}
	return "other"
}
