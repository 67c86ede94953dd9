// uimark is a command-line tool for visualizing Android UIAutomator screen dumps.
//
// It parses the XML hierarchy of a screen dump, extracts the pixel bounds of
// every leaf UI element, and draws them as outlined rectangles on the
// matching screenshot. It can process a single dump/screenshot pair or a
// whole directory of them.
//
// Usage:
//
//	uimark -input DIR [options]
//	uimark -xml FILE -image FILE [options]
//
// Input options (one form required):
//
//	-input string      Directory of dump/screenshot pairs (batch mode)
//	-xml string        Path to a single screen dump
//	-image string      Screenshot matching -xml
//
// Output options:
//
//	-output-dir string Directory for annotated images in batch mode (default "output")
//	-output string     Output path in single mode (default <image>_annotated<ext>)
//	-report string     Also assemble the annotated images into a PDF (batch mode)
//	-overwrite         Overwrite an existing single-mode output
//
// Style options:
//
//	-config string     YAML config file (color, line_width, workers, output_dir)
//	-color string      Stroke color as RRGGBB (default ffff00)
//	-line-width float  Stroke width in pixels (default 5)
//	-workers int       Concurrent documents in batch mode (default 4)
//
// Examples:
//
// Annotate every dump in a capture directory:
//
//	uimark -input ./captures -output-dir ./annotated
//
// Annotate one screen with a red 3px outline:
//
//	uimark -xml home.xml -image home.png -color ff0000 -line-width 3
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/uimark/uimark/pkg/annotate"
	"github.com/uimark/uimark/pkg/batch"
	"github.com/uimark/uimark/pkg/uidump"
)

type yamlConfig struct {
	Color     string  `yaml:"color"`
	LineWidth float64 `yaml:"line_width"`
	Workers   int     `yaml:"workers"`
	OutputDir string  `yaml:"output_dir"`
}

// loadConfig reads the optional YAML style config.
func loadConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, err
	}
	return &yc, nil
}

// parseHexColor converts "RRGGBB" (optionally "#RRGGBB") to an opaque color.
func parseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("color must be RRGGBB, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

func main() {
	inputDir := flag.String("input", "", "Directory of dump/screenshot pairs (batch mode)")
	outputDir := flag.String("output-dir", "output", "Directory for annotated images in batch mode")
	reportPath := flag.String("report", "", "Assemble annotated images into this PDF (batch mode)")
	xmlPath := flag.String("xml", "", "Path to a single screen dump")
	imagePath := flag.String("image", "", "Screenshot matching -xml")
	outputPath := flag.String("output", "", "Output path in single mode")
	configPath := flag.String("config", "", "YAML config file")
	colorFlag := flag.String("color", "ffff00", "Stroke color as RRGGBB")
	lineWidth := flag.Float64("line-width", 5, "Stroke width in pixels")
	workers := flag.Int("workers", 4, "Concurrent documents in batch mode")
	overwrite := flag.Bool("overwrite", false, "Overwrite an existing single-mode output")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	batchMode := *inputDir != ""
	singleMode := *xmlPath != "" || *imagePath != ""
	if batchMode == singleMode {
		fmt.Fprintln(os.Stderr, "Error: Must provide either -input or both -xml and -image")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if singleMode && (*xmlPath == "" || *imagePath == "") {
		fmt.Fprintln(os.Stderr, "Error: Single mode needs both -xml and -image")
		os.Exit(1)
	}

	// Track which flags were set so they win over the config file.
	providedFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		providedFlags[f.Name] = true
	})

	if *configPath != "" {
		yc, err := loadConfig(*configPath)
		if err != nil {
			log.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		if yc.Color != "" && !providedFlags["color"] {
			*colorFlag = yc.Color
		}
		if yc.LineWidth > 0 && !providedFlags["line-width"] {
			*lineWidth = yc.LineWidth
		}
		if yc.Workers > 0 && !providedFlags["workers"] {
			*workers = yc.Workers
		}
		if yc.OutputDir != "" && !providedFlags["output-dir"] {
			*outputDir = yc.OutputDir
		}
	}

	strokeColor, err := parseHexColor(*colorFlag)
	if err != nil {
		log.Error("invalid color", "error", err)
		os.Exit(1)
	}
	style := annotate.Config{Color: strokeColor, LineWidth: *lineWidth}

	if batchMode {
		summary, err := batch.Run(context.Background(), batch.Config{
			InputDir:   *inputDir,
			OutputDir:  *outputDir,
			ReportPath: *reportPath,
			Workers:    *workers,
			Style:      style,
		}, log)
		if err != nil {
			log.Error("batch run failed", "error", err)
			os.Exit(1)
		}
		log.Info("batch complete",
			"processed", summary.Processed,
			"skipped", summary.Skipped,
			"failed", summary.Failed)
		if summary.Processed == 0 && summary.Failed > 0 {
			os.Exit(1)
		}
		return
	}

	// Single-document mode: any failure aborts.
	data, err := os.ReadFile(*xmlPath)
	if err != nil {
		log.Error("failed to read dump", "xml", *xmlPath, "error", err)
		os.Exit(1)
	}
	rects, err := uidump.BoundsFromDump(data)
	if err != nil {
		log.Error("extraction failed", "xml", *xmlPath, "error", err)
		os.Exit(1)
	}

	out := *outputPath
	if out == "" {
		out = annotate.DefaultOutputPath(*imagePath)
	}
	if _, err := os.Stat(out); err == nil && !*overwrite {
		log.Error("output already exists, use -overwrite to replace it", "output", out)
		os.Exit(1)
	}

	written, err := annotate.AnnotateFile(*imagePath, rects, out, style)
	if err != nil {
		log.Error("annotation failed", "image", *imagePath, "error", err)
		os.Exit(1)
	}
	log.Info("annotated", "xml", *xmlPath, "output", written, "elements", len(rects))
}
