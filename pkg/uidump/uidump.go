// Package uidump implements parsing of Android UIAutomator screen dumps
// and extraction of leaf element bounds.
//
// A screen dump is an XML document with a <hierarchy> root whose descendants
// describe the on-screen UI elements. Each element may carry a 'bounds'
// attribute formatted "[x1,y1][x2,y2]" giving the pixel coordinates of its
// top-left and bottom-right corners.
//
// This package provides:
//
// - A tree object model for the dump hierarchy
// - Strict parsing of dump markup with typed failure classification
// - A tolerant grammar for the bounds attribute
// - Document-order extraction of leaf element bounds
//
// Key Types:
//
// - Hierarchy: a parsed screen dump
// - Node: one element of the UI tree
// - Rect: a rectangle in screen pixel coordinates
// - SyntaxError, StructureError, FormatError: the failure taxonomy
//
// Main Functions:
//
// - ParseDump: parses raw dump bytes into a Hierarchy
// - ParseBounds: converts a bounds attribute into a Rect
// - LeafBounds: collects the bounds of all leaf elements in document order
// - BoundsFromDump: parses and extracts in one step
package uidump
