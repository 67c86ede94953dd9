package annotate

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"strings"

	// Registered so image.DecodeConfig recognizes the formats we write.
	_ "image/jpeg"
	_ "image/png"

	"codeberg.org/go-pdf/fpdf"
)

// AssembleReport builds a PDF contact sheet from the annotated screenshots,
// one page per image, each page sized to its image so nothing is rescaled.
func AssembleReport(imagePaths []string, outPath string) error {
	if len(imagePaths) == 0 {
		return fmt.Errorf("no images to assemble")
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	for i, path := range imagePaths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read image %s: %w", path, err)
		}
		imageType, w, h, err := detectImage(data)
		if err != nil {
			return fmt.Errorf("image %s has invalid format: %w", path, err)
		}

		pdf.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})

		name := fmt.Sprintf("img%d", i)
		opts := fpdf.ImageOptions{ReadDpi: false, ImageType: imageType}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
		pdf.ImageOptions(name, 0, 0, w, h, false, opts, 0, "")
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// detectImage figures out whether the data is PNG, JPEG, etc., along with
// its pixel dimensions.
func detectImage(data []byte) (string, float64, float64, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", 0, 0, fmt.Errorf("failed to decode image config: %w", err)
	}
	return strings.ToUpper(format), float64(cfg.Width), float64(cfg.Height), nil
}
