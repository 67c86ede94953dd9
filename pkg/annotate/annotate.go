// Package annotate draws extracted UI element bounds onto screenshots.
//
// It is the rendering half of the tool: given the leaf rectangles pulled out
// of a screen dump, it strokes each one onto the matching screenshot and
// writes the result next to the input (or wherever the caller asks).
// Degenerate rectangles are still drawn: a rectangle collapsed in one
// dimension becomes a line, one collapsed in both becomes a point.
package annotate

import (
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"

	"github.com/uimark/uimark/pkg/uidump"
)

// DrawRects renders each rectangle onto a copy of img and returns the
// result. Corner coordinates are used exactly as given, inverted extents
// included.
func DrawRects(img image.Image, rects []uidump.Rect, cfg Config) image.Image {
	dc := gg.NewContextForImage(img)
	dc.SetColor(cfg.Color)
	dc.SetLineWidth(cfg.LineWidth)
	for _, r := range rects {
		x1, y1 := float64(r.X1), float64(r.Y1)
		x2, y2 := float64(r.X2), float64(r.Y2)
		switch {
		case r.X1 == r.X2 && r.Y1 == r.Y2:
			dc.DrawPoint(x1, y1, cfg.LineWidth/2)
			dc.Fill()
		case r.X1 == r.X2 || r.Y1 == r.Y2:
			dc.DrawLine(x1, y1, x2, y2)
			dc.Stroke()
		default:
			dc.DrawRectangle(x1, y1, x2-x1, y2-y1)
			dc.Stroke()
		}
	}
	return dc.Image()
}

// AnnotateFile reads the screenshot at imagePath, draws the given
// rectangles on it and writes the result. An empty outputPath defaults to
// "<base>_annotated<ext>" next to the input. The path actually written is
// returned.
func AnnotateFile(imagePath string, rects []uidump.Rect, outputPath string, cfg Config) (string, error) {
	if _, err := os.Stat(imagePath); err != nil {
		return "", &ResourceError{Path: imagePath, Kind: SourceMissing, Err: err}
	}
	img, err := gg.LoadImage(imagePath)
	if err != nil {
		return "", &ResourceError{Path: imagePath, Kind: SourceUndecodable, Err: err}
	}
	if outputPath == "" {
		outputPath = DefaultOutputPath(imagePath)
	}
	out := DrawRects(img, rects, cfg)
	if err := saveImage(out, outputPath); err != nil {
		return "", &ResourceError{Path: outputPath, Kind: DestUnwritable, Err: err}
	}
	return outputPath, nil
}

// DefaultOutputPath derives the annotated filename from the input:
// screen.png becomes screen_annotated.png.
func DefaultOutputPath(imagePath string) string {
	ext := filepath.Ext(imagePath)
	return strings.TrimSuffix(imagePath, ext) + "_annotated" + ext
}

// saveImage encodes by output extension. PNG is the default since that is
// what UIAutomator screenshots are.
func saveImage(img image.Image, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := jpeg.Encode(f, img, nil); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	default:
		return gg.SavePNG(path, img)
	}
}
