// Package platform connects a GLFW window to the studio input queue.
package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	studio "github.com/gekko3d/studio"
)

// WindowState owns the single GLFW window of the app.
type WindowState struct {
	windowGlfw   *glfw.Window
	WindowWidth  int
	WindowHeight int
	windowTitle  string
	shownTitle   string
}

func createWindowState(windowWidth int, windowHeight int, windowTitle string) (*WindowState, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	return &WindowState{
		windowGlfw:   win,
		WindowWidth:  windowWidth,
		WindowHeight: windowHeight,
		windowTitle:  windowTitle,
	}, nil
}

// bind forwards window callbacks into in.
func (s *WindowState) bind(in *studio.Input) {
	in.Resize(s.windowGlfw.GetSize())

	s.windowGlfw.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		name, ok := keyName(key)
		if !ok {
			return
		}
		switch action {
		case glfw.Press, glfw.Repeat:
			in.KeyDown(name, modifiers(mods))
		case glfw.Release:
			in.KeyUp(name)
		}
	})
	s.windowGlfw.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		in.MouseMove(x, y)
	})
	s.windowGlfw.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch button {
		case glfw.MouseButtonLeft:
			in.MouseDown(studio.MouseButtonLeft)
		case glfw.MouseButtonRight:
			in.MouseDown(studio.MouseButtonRight)
		case glfw.MouseButtonMiddle:
			in.MouseDown(studio.MouseButtonMiddle)
		}
	})
	s.windowGlfw.SetSizeCallback(func(w *glfw.Window, width, height int) {
		s.WindowWidth, s.WindowHeight = width, height
		in.Resize(width, height)
	})
}

func (s *WindowState) destroy() {
	s.windowGlfw.Destroy()
	glfw.Terminate()
}

func modifiers(mods glfw.ModifierKey) studio.Modifiers {
	return studio.Modifiers{
		Ctrl:  mods&glfw.ModControl != 0,
		Meta:  mods&glfw.ModSuper != 0,
		Shift: mods&glfw.ModShift != 0,
		Alt:   mods&glfw.ModAlt != 0,
	}
}

// PlatformStage runs before PreUpdate so events polled this frame reach
// key listeners in the same frame.
var PlatformStage = studio.Stage{Name: "Platform"}

// WindowModule opens the window. InputModule must be installed first.
type WindowModule struct {
	Width  int
	Height int
	Title  string
}

func (m WindowModule) Install(app *studio.App, cmd *studio.Commands) {
	in, ok := studio.Resource[studio.Input](app)
	if !ok {
		panic("platform: WindowModule needs InputModule")
	}
	if m.Width <= 0 {
		m.Width = 1280
	}
	if m.Height <= 0 {
		m.Height = 720
	}
	if m.Title == "" {
		m.Title = "Studio"
	}

	ws, err := createWindowState(m.Width, m.Height, m.Title)
	if err != nil {
		panic(err)
	}
	ws.bind(in)
	cmd.AddResources(ws)

	app.UseStage(PlatformStage, studio.BeforeStage(studio.PreUpdate))
	app.UseSystem(studio.System(windowSystem).InStage(PlatformStage).RunAlways())
	app.UseSystem(studio.System(windowTitleSystem).InStage(studio.PostUpdate).RunAlways())
	app.OnClose(ws.destroy)
}

func windowSystem(s *WindowState, nav *studio.Navigation) {
	glfw.PollEvents()
	if s.windowGlfw.ShouldClose() {
		nav.Close()
	}
}

func windowTitleSystem(s *WindowState, ed *studio.Editor, cmd *studio.Commands) {
	title := fmt.Sprintf("%s - %s", s.windowTitle, studio.ViewName(cmd.State()))
	if ed.Mounted() {
		snap := ed.Session.Snapshot()
		name := "nothing selected"
		if snap.Selection != nil {
			name = snap.Selection.Name
		}
		title = fmt.Sprintf("%s - %s [%s, %s]", s.windowTitle, studio.ViewName(cmd.State()), snap.Tool, name)
	}
	if title != s.shownTitle {
		s.windowGlfw.SetTitle(title)
		s.shownTitle = title
	}
}
