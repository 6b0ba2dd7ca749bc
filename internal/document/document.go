// Package document defines the flat styled-block model handed to the PDF
// builder, plus the builder implementations.
package document

import (
	"context"
	"fmt"

	"github.com/mbarbosa/cvgen/internal/styles"
)

// Block is one element of the flat sequence that makes up a document.
type Block interface {
	isBlock()
}

// Paragraph is a styled text block. Markup is already escaped and uses the
// builder dialect: <b>, <i>, <u>, <br/> and inline <a> links.
type Paragraph struct {
	Style  string
	Markup string
}

func (Paragraph) isBlock() {}

// Spacer is a vertical gap, in millimeters.
type Spacer struct {
	Height float64
}

func (Spacer) isBlock() {}

// BlockList accumulates blocks while sections are formatted.
type BlockList []Block

// Add appends blocks in order.
func (l *BlockList) Add(blocks ...Block) {
	*l = append(*l, blocks...)
}

// Margins are page margins in millimeters.
type Margins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// Document is the full input to a Builder: the block sequence, the page
// margins and the paragraph styles the blocks reference.
type Document struct {
	Blocks  []Block
	Margins Margins
	Styles  *styles.Stylesheet
}

// Builder turns a document into a PDF file at outputPath.
type Builder interface {
	Build(ctx context.Context, doc *Document, outputPath string) error
}

// BuildError wraps a builder failure with the intended output path for
// diagnostics.
type BuildError struct {
	OutputPath string
	Cause      error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("failed to build PDF: %s: %v", e.OutputPath, e.Cause)
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}

// Domain marks BuildError as an expected domain failure.
func (e *BuildError) Domain() {}
