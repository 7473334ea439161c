package xmltree

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// ErrorCode classifies document-level failures.
type ErrorCode string

const (
	// CodeSyntax is a tokenizer error (bad markup, bad entity, bad encoding).
	CodeSyntax ErrorCode = "SYNTAX"
	// CodeTagMismatch is an end tag that does not close the open element.
	CodeTagMismatch ErrorCode = "TAG_MISMATCH"
	// CodeUnexpectedEOF is input that ends inside an element.
	CodeUnexpectedEOF ErrorCode = "UNEXPECTED_EOF"
	// CodeNoRoot is a document without any element.
	CodeNoRoot ErrorCode = "NO_ROOT"
	// CodeTrailingContent is content after the root element or text before it.
	CodeTrailingContent ErrorCode = "TRAILING_CONTENT"
	// CodeDepthExceeded is nesting deeper than the configured limit.
	CodeDepthExceeded ErrorCode = "DEPTH_EXCEEDED"
)

// ErrDepthExceeded indicates that nesting depth exceeded the configured limit.
var ErrDepthExceeded = errors.New("xmltree: nesting depth exceeded configured limit")

// SyntaxError reports a document that could not be turned into a tree.
type SyntaxError struct {
	Code   ErrorCode
	Line   int // 1-based line number (0 if unknown)
	Column int // 1-based column number (0 if unknown)
	Err    error
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("xml:%d:%d: %s", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("xml: %s", e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func newSyntaxError(dec *xml.Decoder, code ErrorCode, err error) *SyntaxError {
	line, column := dec.InputPos()
	var xmlErr *xml.SyntaxError
	if errors.As(err, &xmlErr) && xmlErr.Line > 0 && xmlErr.Line != line {
		line, column = xmlErr.Line, 0
	}
	return &SyntaxError{Code: code, Line: line, Column: column, Err: err}
}
