package event

import "sync"

// Topic identifies a class of events on the bus.
type Topic string

// Topics published by the editor core.
const (
	// TopicBufferChanged fires after any text mutation in a bound
	// buffer. Payload: BufferChanged.
	TopicBufferChanged Topic = "buffer.changed"

	// TopicCursorMoved fires when the buffer cursor moves.
	// Payload: CursorMoved.
	TopicCursorMoved Topic = "cursor.moved"

	// TopicViewEdit is a cell-edit request from the view.
	// Payload: CellEditRequest.
	TopicViewEdit Topic = "view.edit"

	// TopicViewNavigate is a navigate request from the view.
	// Payload: NavigateRequest.
	TopicViewNavigate Topic = "view.navigate"

	// TopicViewSelectGroup is a group-selection request from the view.
	// Payload: SelectGroupRequest.
	TopicViewSelectGroup Topic = "view.select_group"

	// TopicTableRender instructs the view to display a fresh grid.
	// Payload: *table.Grid.
	TopicTableRender Topic = "table.render"

	// TopicTableHighlight instructs the view to highlight a row.
	// Payload: HighlightRow.
	TopicTableHighlight Topic = "table.highlight"

	// TopicCursorGoto instructs the host to move the buffer cursor.
	// Payload: CursorGoto.
	TopicCursorGoto Topic = "cursor.goto"
)

// Handler processes one published event.
type Handler func(payload any)

// Subscription identifies one registered handler for removal.
type Subscription struct {
	topic Topic
	id    uint64
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus routes published events to subscribed handlers, synchronously
// and in subscription order.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[Topic][]subscriber
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Topic][]subscriber)}
}

// Subscribe registers a handler for a topic.
func (b *Bus) Subscribe(topic Topic, h Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.subs[topic] = append(b.subs[topic], subscriber{id: b.nextID, handler: h})
	return Subscription{topic: topic, id: b.nextID}
}

// Unsubscribe removes a previously registered handler.
// Unknown subscriptions are ignored.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.subs[sub.topic]
	for i, s := range list {
		if s.id == sub.id {
			b.subs[sub.topic] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// Publish delivers the payload to every handler subscribed to the
// topic, inline, in subscription order. Publish returns after the last
// handler has run.
func (b *Bus) Publish(topic Topic, payload any) {
	b.mu.Lock()
	list := make([]subscriber, len(b.subs[topic]))
	copy(list, b.subs[topic])
	b.mu.Unlock()

	for _, s := range list {
		s.handler(payload)
	}
}
