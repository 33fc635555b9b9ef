package editor

type EventKind int

const (
	EventToolChanged EventKind = iota
	EventSelectionChanged
	EventDisplayChanged
	EventTabChanged
	EventTransformChanged
	EventThemeChanged
	EventDragCancelled
)

func (k EventKind) String() string {
	switch k {
	case EventToolChanged:
		return "tool-changed"
	case EventSelectionChanged:
		return "selection-changed"
	case EventDisplayChanged:
		return "display-changed"
	case EventTabChanged:
		return "tab-changed"
	case EventTransformChanged:
		return "transform-changed"
	case EventThemeChanged:
		return "theme-changed"
	case EventDragCancelled:
		return "drag-cancelled"
	}
	return "unknown"
}

// Event is delivered synchronously to every listener after the mutation that
// caused it has been applied.
type Event struct {
	Kind     EventKind
	Snapshot Snapshot
}

type Listener func(ev Event)

type listenerEntry struct {
	id int
	fn Listener
}

type observers struct {
	nextID  int
	entries []listenerEntry
}

func (o *observers) subscribe(fn Listener) func() {
	o.nextID++
	id := o.nextID
	o.entries = append(o.entries, listenerEntry{id: id, fn: fn})
	return func() {
		for i, e := range o.entries {
			if e.id == id {
				o.entries = append(o.entries[:i:i], o.entries[i+1:]...)
				return
			}
		}
	}
}

func (o *observers) emit(ev Event) {
	// Listeners may unsubscribe while being called.
	entries := append([]listenerEntry(nil), o.entries...)
	for _, e := range entries {
		e.fn(ev)
	}
}

func (o *observers) len() int { return len(o.entries) }
