package app

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/agsedit/internal/ags"
	"github.com/dshills/agsedit/internal/engine/buffer"
	"github.com/dshills/agsedit/internal/summary"
)

// Document represents one open AGS file: its buffer, its cursor, and
// the cached parse of its current text.
type Document struct {
	// ID is the buffer identity the parse cache is keyed by.
	ID uuid.UUID

	// Path is the absolute file path (empty for unsaved buffers).
	Path string

	// Name is the display name (filename or "Untitled").
	Name string

	// Buffer holds the document text.
	Buffer *buffer.Buffer

	mu     sync.Mutex
	cursor buffer.Point
	parsed *ags.Document
}

// NewDocument creates a document over existing content.
func NewDocument(path, content string) *Document {
	name := filepath.Base(path)
	if path == "" {
		name = "Untitled"
	}

	return &Document{
		ID:     uuid.New(),
		Path:   path,
		Name:   name,
		Buffer: buffer.NewBufferFromString(content),
	}
}

// Parsed returns the parsed form of the document's current text. The
// parse is produced on first access and cached until the next
// invalidation; callers always see a complete, never partially
// updated, document.
func (d *Document) Parsed() *ags.Document {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.parsed == nil {
		d.parsed = ags.Parse(d.Buffer.Lines())
	}
	return d.parsed
}

// Invalidate drops the cached parse. The next Parsed call re-parses.
func (d *Document) Invalidate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.parsed = nil
}

// Summary derives fresh statistics from the current parse. Summaries
// are never cached across edits.
func (d *Document) Summary() *summary.Summary {
	return summary.Build(d.Parsed())
}

// Cursor returns the document's cursor position.
func (d *Document) Cursor() buffer.Point {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cursor
}

// SetCursor moves the document's cursor position.
func (d *Document) SetCursor(p buffer.Point) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cursor = p
}

// DocumentManager is the process-wide registry of open documents and
// their parse cache entries, keyed by buffer identity.
type DocumentManager struct {
	mu        sync.RWMutex
	documents map[uuid.UUID]*Document
	order     []uuid.UUID
	active    *Document
}

// NewDocumentManager creates an empty document manager.
func NewDocumentManager() *DocumentManager {
	return &DocumentManager{
		documents: make(map[uuid.UUID]*Document),
	}
}

// Open opens a document from a file. The content passes through the
// given buffer options (line endings, charset decoding).
func (dm *DocumentManager) Open(path string, opts ...buffer.Option) (*Document, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(absPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return dm.OpenReader(absPath, f, opts...)
}

// OpenReader opens a document from a reader under the given name.
func (dm *DocumentManager) OpenReader(name string, r io.Reader, opts ...buffer.Option) (*Document, error) {
	buf, err := buffer.NewBufferFromReader(r, opts...)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		ID:     uuid.New(),
		Path:   name,
		Name:   filepath.Base(name),
		Buffer: buf,
	}

	dm.mu.Lock()
	defer dm.mu.Unlock()
	dm.documents[doc.ID] = doc
	dm.order = append(dm.order, doc.ID)
	dm.active = doc

	return doc, nil
}

// Close evicts a document and its cache entry wholesale.
func (dm *DocumentManager) Close(id uuid.UUID) error {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc, ok := dm.documents[id]
	if !ok {
		return ErrDocumentNotFound
	}

	delete(dm.documents, id)
	for i, d := range dm.order {
		if d == id {
			dm.order = append(dm.order[:i], dm.order[i+1:]...)
			break
		}
	}

	if dm.active == doc {
		dm.active = nil
		if len(dm.order) > 0 {
			dm.active = dm.documents[dm.order[len(dm.order)-1]]
		}
	}

	return nil
}

// Get returns a document by identity.
func (dm *DocumentManager) Get(id uuid.UUID) (*Document, bool) {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	doc, ok := dm.documents[id]
	return doc, ok
}

// Active returns the currently active document, or nil.
func (dm *DocumentManager) Active() *Document {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	return dm.active
}

// Count returns the number of open documents.
func (dm *DocumentManager) Count() int {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	return len(dm.documents)
}
