package studio

import (
	"strings"

	"github.com/gekko3d/studio/editor"
)

// Key names as delivered to editor shortcuts. Letters and digits use their
// lowercase character.
const (
	KeyEscape    = "Escape"
	KeyEnter     = "Enter"
	KeyTab       = "Tab"
	KeySpace     = "Space"
	KeyBackspace = "Backspace"
	KeyDelete    = "Delete"
	KeyLeft      = "ArrowLeft"
	KeyRight     = "ArrowRight"
	KeyUp        = "ArrowUp"
	KeyDown      = "ArrowDown"
)

type Modifiers struct {
	Ctrl  bool
	Meta  bool
	Shift bool
	Alt   bool
}

type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Click is a mouse press in window coordinates.
type Click struct {
	X, Y   float64
	Button MouseButton
}

type InputModule struct{}

// Input collects platform events between frames. Key presses are delivered
// to key listeners during PreUpdate; clicks wait for the editor to drain them.
type Input struct {
	Pressed map[string]bool

	MouseX, MouseY            float64
	WindowWidth, WindowHeight int

	// Focus is stamped on key events that carry none, so a focused text
	// field hides keys from shortcuts.
	Focus editor.FocusRole

	keys      []editor.KeyEvent
	clicks    []Click
	listeners []keyListener
	nextID    int
}

type keyListener struct {
	id int
	fn func(ev editor.KeyEvent)
}

func NewInput() *Input {
	return &Input{Pressed: make(map[string]bool)}
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewInput())
	app.UseSystem(
		System(inputSystem).
			InStage(PreUpdate).
			RunAlways(),
	)
	app.UseSystem(
		System(inputEndFrameSystem).
			InStage(PostUpdate).
			RunAlways(),
	)
}

// AddKeyListener implements editor.KeySource.
func (in *Input) AddKeyListener(fn func(ev editor.KeyEvent)) (remove func()) {
	in.nextID++
	id := in.nextID
	in.listeners = append(in.listeners, keyListener{id: id, fn: fn})
	return func() {
		for i, l := range in.listeners {
			if l.id == id {
				in.listeners = append(in.listeners[:i:i], in.listeners[i+1:]...)
				return
			}
		}
	}
}

func (in *Input) Listeners() int { return len(in.listeners) }

// KeyDown records a press and queues it for listeners. Repeats of a held key
// are queued too, as browsers do.
func (in *Input) KeyDown(name string, mods Modifiers) {
	in.Pressed[strings.ToLower(name)] = true
	in.keys = append(in.keys, editor.KeyEvent{
		Key:   name,
		Ctrl:  mods.Ctrl,
		Meta:  mods.Meta,
		Shift: mods.Shift,
		Alt:   mods.Alt,
	})
}

func (in *Input) KeyUp(name string) {
	delete(in.Pressed, strings.ToLower(name))
}

func (in *Input) MouseMove(x, y float64) {
	in.MouseX, in.MouseY = x, y
}

func (in *Input) MouseDown(button MouseButton) {
	in.clicks = append(in.clicks, Click{X: in.MouseX, Y: in.MouseY, Button: button})
}

func (in *Input) Resize(width, height int) {
	in.WindowWidth, in.WindowHeight = width, height
}

// DrainClicks returns and clears the queued clicks.
func (in *Input) DrainClicks() []Click {
	c := in.clicks
	in.clicks = nil
	return c
}

func (in *Input) dispatchKeys() {
	keys := in.keys
	in.keys = nil
	for _, ev := range keys {
		if ev.Focus == editor.FocusNone {
			ev.Focus = in.Focus
		}
		// Listeners may detach themselves while handling.
		for _, l := range append([]keyListener(nil), in.listeners...) {
			l.fn(ev)
		}
	}
}

func inputSystem(input *Input) {
	input.dispatchKeys()
}

// Clicks nobody consumed this frame, such as on the export page, are dropped.
func inputEndFrameSystem(input *Input) {
	input.clicks = nil
}

// ParseKey reads a chord such as "ctrl+z", "shift+Delete" or "g".
func ParseKey(chord string) (string, Modifiers) {
	var mods Modifiers
	parts := strings.Split(chord, "+")
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "ctrl", "control":
			mods.Ctrl = true
		case "meta", "cmd", "super":
			mods.Meta = true
		case "shift":
			mods.Shift = true
		case "alt", "option":
			mods.Alt = true
		}
	}
	return strings.TrimSpace(parts[len(parts)-1]), mods
}
