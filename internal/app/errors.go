package app

import "errors"

// Application errors.
var (
	// ErrDocumentNotFound indicates a document was not found.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrNoActiveDocument indicates no document is currently active.
	ErrNoActiveDocument = errors.New("no active document")
)
