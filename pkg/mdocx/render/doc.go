// Package render provides helper functions for building DOCX body content.
//
// This package contains pure helpers used by the assembler in package mdocx.
// They work on xml package types directly and never call back into mdocx,
// avoiding circular dependencies.
//
// # Structure Organization
//
//   - helpers.go: Run merging utilities for consecutive text runs
//   - table.go: Ragged row padding and table grid sizing
//
// # Key Functions
//
// MergeConsecutiveRuns: Combines consecutive runs with identical properties so
// the serialized paragraph carries as few w:r elements as possible.
//
// PadRows: Extends every row of a ragged table to the widest row so each
// w:tr has the same number of cells.
//
// Example of using run merging:
//
//	para := &xml.Paragraph{Content: []xml.ParagraphContent{
//	    xml.NewTextRun("Hello ", nil),
//	    xml.NewTextRun("world", nil),
//	}}
//	render.MergeConsecutiveRuns(para)
//	// Result: single run containing "Hello world"
package render
