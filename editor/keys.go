package editor

import "strings"

// FocusRole is the role of the element holding keyboard focus when a key
// event is delivered.
type FocusRole int

const (
	FocusNone FocusRole = iota
	FocusTextEntry
)

// KeyEvent is a key press as delivered by the host. Key is the key name
// ("g", "Z", "Delete", "Escape").
type KeyEvent struct {
	Key   string
	Ctrl  bool
	Meta  bool
	Shift bool
	Alt   bool
	Focus FocusRole
}

func (ev KeyEvent) command() bool { return ev.Ctrl || ev.Meta }

// KeySource delivers key events to listeners. AddKeyListener returns the
// func that removes the listener.
type KeySource interface {
	AddKeyListener(fn func(ev KeyEvent)) (remove func())
}

// ShortcutRouter turns key events into session mutations. It holds at most one
// listener on one source at a time.
type ShortcutRouter struct {
	session *Session
	detach  func()
}

func NewShortcutRouter(s *Session) *ShortcutRouter {
	return &ShortcutRouter{session: s}
}

// Attach starts listening on src, detaching from any previous source first.
func (r *ShortcutRouter) Attach(src KeySource) {
	r.Detach()
	r.detach = src.AddKeyListener(func(ev KeyEvent) { r.Handle(ev) })
}

// Detach stops listening. Safe to call when not attached.
func (r *ShortcutRouter) Detach() {
	if r.detach != nil {
		r.detach()
		r.detach = nil
	}
}

func (r *ShortcutRouter) Attached() bool { return r.detach != nil }

// Handle routes one event and reports whether it triggered anything. Events
// arriving while a text field has focus are ignored.
func (r *ShortcutRouter) Handle(ev KeyEvent) bool {
	if ev.Focus == FocusTextEntry {
		return false
	}
	key := strings.ToLower(ev.Key)

	if ev.command() {
		switch key {
		case "z":
			r.session.Undo()
		case "y":
			r.session.Redo()
		case "s":
			r.session.Save()
		case "d":
			r.session.DuplicateSelected()
		default:
			return false
		}
		return true
	}

	switch key {
	case "delete", "backspace":
		r.session.DeleteSelected()
		return true
	case "escape":
		r.session.ClearSelection()
		return true
	}

	if tool, ok := ToolForKey(key); ok {
		r.session.SetTool(tool)
		return true
	}
	return false
}
