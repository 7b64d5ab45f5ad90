// Package event provides the synchronous topic bus that connects the
// buffer, the table engine, and the view.
//
// Everything in the editor core is single-threaded and event-driven: a
// text change, a cursor move, or a view message is published and every
// handler runs inline before Publish returns. There are no goroutines
// and no queueing, so each re-parse or render runs to completion before
// the next event is processed and no handler ever observes partial
// state. The only locking guards the subscription table itself.
package event
