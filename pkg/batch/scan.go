package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Pair is a screen dump together with its matching screenshot.
type Pair struct {
	XML   string // Path to the UIAutomator dump
	Image string // Path to the screenshot of the same screen
}

// imageExts lists the screenshot extensions tried for each dump, in order.
// UIAutomator emits PNG; field captures are sometimes recompressed to JPEG.
var imageExts = []string{".png", ".jpg", ".jpeg"}

// ScanPairs finds every .xml file in dir and pairs it with a screenshot of
// the same stem. Dumps without a screenshot are returned separately so the
// caller can report them; they are not an error.
func ScanPairs(dir string) (pairs []Pair, unmatched []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read input directory: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".xml") {
			continue
		}
		xmlPath := filepath.Join(dir, e.Name())
		stem := strings.TrimSuffix(xmlPath, filepath.Ext(xmlPath))

		image := ""
		for _, ext := range imageExts {
			candidate := stem + ext
			if _, err := os.Stat(candidate); err == nil {
				image = candidate
				break
			}
		}
		if image == "" {
			unmatched = append(unmatched, xmlPath)
			continue
		}
		pairs = append(pairs, Pair{XML: xmlPath, Image: image})
	}
	return pairs, unmatched, nil
}
