package uidump

import "fmt"

// SyntaxError reports markup the XML scanner rejected: empty input,
// truncated or mismatched tags, binary content, trailing elements.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string { return fmt.Sprintf("malformed dump: %v", e.Err) }

func (e *SyntaxError) Unwrap() error { return e.Err }

// StructureError reports a well-formed document that is not a UIAutomator
// dump, identified by its root tag. An XHTML page, for example, parses
// cleanly but has root "html".
type StructureError struct {
	RootTag string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("unexpected root element: %s", e.RootTag)
}

// FormatError reports a bounds attribute that did not contain exactly four
// integer coordinates.
type FormatError struct {
	Input string // The offending bounds string
	Count int    // How many integer tokens were found
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("expected 4 coordinates, got %d from %q", e.Count, e.Input)
}
