// Package parser converts raw document bytes into plain paragraphs with
// structural hints, using an ordered chain of extraction strategies
// behind a quality-confidence gate.
package parser

import "fmt"

// UnreadableDocumentError means every extraction strategy failed, or the
// best attempt scored below the confidence floor.
type UnreadableDocumentError struct {
	Format   string
	Attempts int
	Best     float64
	Cause    error
}

func (e *UnreadableDocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unreadable %s document after %d strategies (best confidence %.2f): %v",
			e.Format, e.Attempts, e.Best, e.Cause)
	}
	return fmt.Sprintf("unreadable %s document after %d strategies (best confidence %.2f); "+
		"the file may be corrupted, password-protected, or a scanned image",
		e.Format, e.Attempts, e.Best)
}

func (e *UnreadableDocumentError) Unwrap() error {
	return e.Cause
}

// EmptyDocumentError means extraction succeeded but produced no text.
type EmptyDocumentError struct {
	Format string
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("%s document contains no extractable text", e.Format)
}

// ProtectedDocumentError means the document carries encryption or
// password-protection markers and cannot be read.
type ProtectedDocumentError struct {
	Format string
}

func (e *ProtectedDocumentError) Error() string {
	return fmt.Sprintf("%s document is password-protected or encrypted", e.Format)
}

// UnsupportedFormatError means the declared format has no strategy chain.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format: %s (only pdf, docx and txt are allowed)", e.Format)
}
