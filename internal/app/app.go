package app

import (
	"io"

	"golang.org/x/text/encoding"

	"github.com/dshills/agsedit/internal/ags"
	"github.com/dshills/agsedit/internal/ags/dict"
	"github.com/dshills/agsedit/internal/engine/buffer"
	"github.com/dshills/agsedit/internal/event"
	"github.com/dshills/agsedit/internal/summary"
	"github.com/dshills/agsedit/internal/table"
)

// Options configures the application.
type Options struct {
	// LogLevel is the minimum level written to LogOutput.
	LogLevel LogLevel

	// LogOutput receives log lines. Defaults to os.Stderr.
	LogOutput io.Writer

	// Encoding decodes file content on open. Nil reads UTF-8 as-is.
	Encoding encoding.Encoding

	// MatrixLimit caps the location count for the report matrix.
	// Zero uses the summary package default.
	MatrixLimit int
}

// App owns the editor core: the document cache, the table engine, the
// event bus, and the dictionary. All event handling is synchronous;
// the app is driven by whatever loop publishes to its bus.
type App struct {
	log    *Logger
	bus    *event.Bus
	docs   *DocumentManager
	engine *table.Engine
	dict   *dict.Dictionary
	opts   Options
}

// New creates an application and registers its event subscriptions.
func New(opts Options) *App {
	a := &App{
		log:  NewLogger(opts.LogLevel, opts.LogOutput),
		bus:  event.NewBus(),
		docs: NewDocumentManager(),
		dict: dict.Load(),
		opts: opts,
	}
	a.engine = table.NewEngine(a, a.bus)
	a.subscribe()
	return a
}

// Parsed returns the parsed document for the active buffer, making the
// app the table engine's document provider. With no active document it
// yields an empty parse.
func (a *App) Parsed() *ags.Document {
	doc := a.docs.Active()
	if doc == nil {
		return ags.NewDocument()
	}
	return doc.Parsed()
}

// subscribe registers the handlers connecting buffer, engine, and
// view. Parse invalidation is registered first so every later handler
// on the same topic observes fresh state.
func (a *App) subscribe() {
	a.bus.Subscribe(event.TopicBufferChanged, func(any) {
		if doc := a.docs.Active(); doc != nil {
			doc.Invalidate()
		}
	})

	a.bus.Subscribe(event.TopicCursorMoved, func(p any) {
		moved := p.(event.CursorMoved)
		doc := a.docs.Active()
		if doc == nil {
			return
		}
		doc.SetCursor(buffer.Point{Line: moved.Line, Column: moved.Column})
		field := ags.ColumnAt(doc.Buffer.LineText(moved.Line), moved.Column)
		a.log.Debug("cursor %d:%d field %d", moved.Line, moved.Column, field)
		a.engine.SyncFromCursor(moved.Line)
	})

	a.bus.Subscribe(event.TopicCursorGoto, func(p any) {
		move := p.(event.CursorGoto)
		if doc := a.docs.Active(); doc != nil {
			doc.SetCursor(buffer.Point{Line: move.Line, Column: move.Column})
		}
	})

	a.bus.Subscribe(event.TopicViewEdit, func(p any) {
		req := p.(event.CellEditRequest)
		a.log.Debug("cell edit %v row %d col %d", req.Kind, req.Row, req.Col)
		a.engine.EditCell(req)
	})

	a.bus.Subscribe(event.TopicViewNavigate, func(p any) {
		a.engine.Navigate(p.(event.NavigateRequest))
	})

	a.bus.Subscribe(event.TopicViewSelectGroup, func(p any) {
		a.engine.SelectGroup(p.(event.SelectGroupRequest).Group)
	})
}

// Open loads a file into a new document, makes it active, and binds
// the table engine to it.
func (a *App) Open(path string) (*Document, error) {
	var opts []buffer.Option
	if a.opts.Encoding != nil {
		opts = append(opts, buffer.WithEncoding(a.opts.Encoding))
	}

	doc, err := a.docs.Open(path, opts...)
	if err != nil {
		return nil, err
	}

	a.log.Info("opened %s (%d lines)", doc.Name, doc.Buffer.LineCount())
	a.engine.Bind(doc.Buffer, doc.Cursor().Line)
	return doc, nil
}

// OpenReader loads content from a reader, for callers that do not have
// a file (tests, stdin).
func (a *App) OpenReader(name string, r io.Reader) (*Document, error) {
	var opts []buffer.Option
	if a.opts.Encoding != nil {
		opts = append(opts, buffer.WithEncoding(a.opts.Encoding))
	}

	doc, err := a.docs.OpenReader(name, r, opts...)
	if err != nil {
		return nil, err
	}
	a.engine.Bind(doc.Buffer, doc.Cursor().Line)
	return doc, nil
}

// CloseActive evicts the active document and its cache entry.
func (a *App) CloseActive() error {
	doc := a.docs.Active()
	if doc == nil {
		return ErrNoActiveDocument
	}
	return a.docs.Close(doc.ID)
}

// SummaryReport renders the summary report for the active document.
func (a *App) SummaryReport() (string, error) {
	doc := a.docs.Active()
	if doc == nil {
		return "", ErrNoActiveDocument
	}
	return summary.Report(doc.Summary(), summary.ReportOptions{
		Dictionary:  a.dict,
		MatrixLimit: a.opts.MatrixLimit,
	}), nil
}

// Bus returns the application event bus.
func (a *App) Bus() *event.Bus { return a.bus }

// Engine returns the table synchronization engine.
func (a *App) Engine() *table.Engine { return a.engine }

// Documents returns the document manager.
func (a *App) Documents() *DocumentManager { return a.docs }

// Dictionary returns the AGS data dictionary.
func (a *App) Dictionary() *dict.Dictionary { return a.dict }

// Log returns the application logger.
func (a *App) Log() *Logger { return a.log }
