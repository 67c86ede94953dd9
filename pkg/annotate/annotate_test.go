package annotate

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/uimark/uimark/pkg/uidump"
)

func whiteImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, whiteImage(w, h)); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
}

func assertPixel(t *testing.T, img image.Image, x, y int, want color.RGBA) {
	t.Helper()
	r, g, b, _ := img.At(x, y).RGBA()
	wr, wg, wb, _ := (color.RGBA{want.R, want.G, want.B, 255}).RGBA()
	if r != wr || g != wg || b != wb {
		t.Errorf("pixel (%d,%d) = (%d,%d,%d), want (%d,%d,%d)",
			x, y, r>>8, g>>8, b>>8, wr>>8, wg>>8, wb>>8)
	}
}

func TestDrawRects_CornerPixelsPassThrough(t *testing.T) {
	cfg := DefaultConfig()
	out := DrawRects(whiteImage(100, 100), []uidump.Rect{{X1: 10, Y1: 10, X2: 50, Y2: 50}}, cfg)

	// All four corners carry the stroke color at their literal coordinates.
	for _, p := range [][2]int{{10, 10}, {50, 10}, {10, 50}, {50, 50}} {
		assertPixel(t, out, p[0], p[1], cfg.Color)
	}
	// The interior is untouched.
	assertPixel(t, out, 30, 30, color.RGBA{255, 255, 255, 255})
}

func TestDrawRects_InvertedRect(t *testing.T) {
	// x1 > x2 and y1 > y2 are passed through, not normalized.
	cfg := DefaultConfig()
	out := DrawRects(whiteImage(100, 100), []uidump.Rect{{X1: 50, Y1: 50, X2: 10, Y2: 10}}, cfg)
	for _, p := range [][2]int{{10, 10}, {50, 50}} {
		assertPixel(t, out, p[0], p[1], cfg.Color)
	}
}

func TestDrawRects_DegeneratePoint(t *testing.T) {
	cfg := DefaultConfig()
	out := DrawRects(whiteImage(100, 100), []uidump.Rect{{X1: 20, Y1: 20, X2: 20, Y2: 20}}, cfg)
	assertPixel(t, out, 20, 20, cfg.Color)
	assertPixel(t, out, 40, 40, color.RGBA{255, 255, 255, 255})
}

func TestDrawRects_DegenerateLine(t *testing.T) {
	cfg := DefaultConfig()

	horizontal := DrawRects(whiteImage(100, 100), []uidump.Rect{{X1: 10, Y1: 30, X2: 60, Y2: 30}}, cfg)
	assertPixel(t, horizontal, 35, 30, cfg.Color)

	vertical := DrawRects(whiteImage(100, 100), []uidump.Rect{{X1: 30, Y1: 10, X2: 30, Y2: 60}}, cfg)
	assertPixel(t, vertical, 30, 35, cfg.Color)
}

func TestAnnotateFile_DefaultOutputPath(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "screen.png")
	writePNG(t, src, 80, 80)

	out, err := AnnotateFile(src, []uidump.Rect{{X1: 5, Y1: 5, X2: 40, Y2: 40}}, "", DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(dir, "screen_annotated.png")
	if out != want {
		t.Errorf("expected output %s, got %s", want, out)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("annotated image not written: %v", err)
	}
}

func TestAnnotateFile_MissingSource(t *testing.T) {
	_, err := AnnotateFile(filepath.Join(t.TempDir(), "nope.png"), nil, "", DefaultConfig())
	var re *ResourceError
	if !errors.As(err, &re) {
		t.Fatalf("expected ResourceError, got %v", err)
	}
	if re.Kind != SourceMissing {
		t.Errorf("expected kind %v, got %v", SourceMissing, re.Kind)
	}
}

func TestAnnotateFile_UndecodableSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(src, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	_, err := AnnotateFile(src, nil, "", DefaultConfig())
	var re *ResourceError
	if !errors.As(err, &re) {
		t.Fatalf("expected ResourceError, got %v", err)
	}
	if re.Kind != SourceUndecodable {
		t.Errorf("expected kind %v, got %v", SourceUndecodable, re.Kind)
	}
}

func TestAnnotateFile_UnwritableDest(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "screen.png")
	writePNG(t, src, 40, 40)

	out := filepath.Join(dir, "missing-subdir", "out.png")
	_, err := AnnotateFile(src, nil, out, DefaultConfig())
	var re *ResourceError
	if !errors.As(err, &re) {
		t.Fatalf("expected ResourceError, got %v", err)
	}
	if re.Kind != DestUnwritable {
		t.Errorf("expected kind %v, got %v", DestUnwritable, re.Kind)
	}
}

func TestDefaultOutputPath(t *testing.T) {
	cases := []struct{ in, want string }{
		{"screen.png", "screen_annotated.png"},
		{"shots/home.jpg", "shots/home_annotated.jpg"},
	}
	for _, tc := range cases {
		if got := DefaultOutputPath(tc.in); got != tc.want {
			t.Errorf("DefaultOutputPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
