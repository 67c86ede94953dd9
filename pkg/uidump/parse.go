package uidump

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// coordPattern matches maximal runs of digits with an optional leading
// minus sign. Brackets, commas and whitespace are not part of the grammar;
// field-captured dumps carry stray tabs and uneven spacing.
var coordPattern = regexp.MustCompile(`-?\d+`)

// ParseBounds converts a bounds attribute such as "[0,96][224,320]" into a
// Rect. It succeeds only when the string contains exactly four integer
// tokens, mapped left to right onto (x1, y1, x2, y2); any other count
// yields a FormatError. The coordinates are not validated further:
// negative, inverted and zero-extent rectangles all pass through as-is.
func ParseBounds(s string) (Rect, error) {
	tokens := coordPattern.FindAllString(s, -1)
	if len(tokens) != 4 {
		return Rect{}, &FormatError{Input: s, Count: len(tokens)}
	}
	var coords [4]int
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return Rect{}, fmt.Errorf("coordinate %q out of range: %w", tok, err)
		}
		coords[i] = v
	}
	return Rect{X1: coords[0], Y1: coords[1], X2: coords[2], Y2: coords[3]}, nil
}

// ParseDump parses raw dump bytes into a Hierarchy. It returns a
// SyntaxError for anything the XML scanner rejects and a StructureError
// when the document is well-formed but its root element is not <hierarchy>.
func ParseDump(data []byte) (*Hierarchy, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charsetReader

	var root *Node
	var stack []*Node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &SyntaxError{Err: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Tag: t.Name.Local}
			for _, attr := range t.Attr {
				if attr.Name.Local == "bounds" {
					n.Bounds = attr.Value
					n.HasBounds = true
				}
			}
			if len(stack) == 0 {
				if root != nil {
					// The token scanner tolerates sibling roots; the dump format does not.
					return nil, &SyntaxError{Err: fmt.Errorf("unexpected second root element <%s>", n.Tag)}
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}
	if root == nil {
		return nil, &SyntaxError{Err: fmt.Errorf("no root element found")}
	}
	if root.Tag != "hierarchy" {
		return nil, &StructureError{RootTag: root.Tag}
	}
	return &Hierarchy{Root: root}, nil
}

// LeafBounds walks the hierarchy in document order and collects the bounds
// of every leaf node that carries a bounds attribute. Nodes with children
// only route the traversal; their own bounds are ignored. Leaves without a
// bounds attribute contribute nothing. A leaf with a malformed bounds
// attribute aborts the whole extraction; no partial result is returned.
func LeafBounds(h *Hierarchy) ([]Rect, error) {
	var rects []Rect
	// Explicit stack instead of recursion so pathologically deep dumps
	// cannot exhaust the call stack. Children are pushed in reverse to
	// keep document pre-order.
	stack := []*Node{h.Root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.IsLeaf() {
			if !n.HasBounds {
				continue
			}
			r, err := ParseBounds(n.Bounds)
			if err != nil {
				return nil, err
			}
			rects = append(rects, r)
			continue
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return rects, nil
}

// BoundsFromDump parses raw dump bytes and extracts the leaf bounds in one
// step.
func BoundsFromDump(data []byte) ([]Rect, error) {
	h, err := ParseDump(data)
	if err != nil {
		return nil, err
	}
	return LeafBounds(h)
}

// charsetReader lets the decoder handle the single-byte encodings that
// adb-pulled dumps occasionally declare instead of UTF-8.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "utf-8", "utf8", "us-ascii", "ascii":
		// The decoder only skips the reader for the exact string "utf-8",
		// but UIAutomator writes encoding='UTF-8'.
		return input, nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1.NewDecoder().Reader(input), nil
	case "windows-1252":
		return charmap.Windows1252.NewDecoder().Reader(input), nil
	}
	return nil, fmt.Errorf("unsupported charset: %s", charset)
}
