package studio

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/studio/editor"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrNoSession      = errors.New("editor is not open")
)

var primitiveNames = map[string]editor.Primitive{
	"cube":     editor.PrimitiveCube,
	"sphere":   editor.PrimitiveSphere,
	"cylinder": editor.PrimitiveCylinder,
}

var modifierNames = map[string]editor.Modifier{
	"subdivide":    editor.ModifierSubdivisionOn,
	"unsubdivide":  editor.ModifierSubdivisionOff,
	"union":        editor.ModifierUnion,
	"difference":   editor.ModifierDifference,
	"intersection": editor.ModifierIntersection,
	"bend":         editor.ModifierBend,
	"twist":        editor.ModifierTwist,
	"taper":        editor.ModifierTaper,
}

var tabNames = map[string]editor.SidebarTab{
	"transform": editor.TabTransform,
	"material":  editor.TabMaterial,
	"modifiers": editor.TabModifiers,
	"scene":     editor.TabScene,
}

// Exec runs one line of the headless script. Input lines ("key", "click")
// are queued for the next frame; sidebar lines act on the session at once.
//
//	key ctrl+z | click 400 300 | resize 800 600 | focus text|none
//	open [ref] | export-view | back | quit
//	tool rotate | tab material | theme | grid | wireframe
//	light 1.5 | env night | color #ff0000 | background #000000
//	move x y z | rotate x y z | scale x y z | reset
//	add cube | delete | duplicate | undo | redo | save
//	modifier twist | export [format] [quality] [scale]
func (app *App) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	in, _ := Resource[Input](app)
	nav, _ := Resource[Navigation](app)
	ed, _ := Resource[Editor](app)
	if in == nil || nav == nil {
		return errors.New("script needs the input and views modules")
	}

	switch name {
	case "key":
		if len(args) != 1 {
			return fmt.Errorf("key: want 1 argument")
		}
		key, mods := ParseKey(args[0])
		in.KeyDown(key, mods)
		in.KeyUp(key)
		return nil
	case "click":
		v, err := parseFloats(args, 2)
		if err != nil {
			return fmt.Errorf("click: %w", err)
		}
		in.MouseMove(float64(v[0]), float64(v[1]))
		in.MouseDown(MouseButtonLeft)
		return nil
	case "resize":
		v, err := parseFloats(args, 2)
		if err != nil {
			return fmt.Errorf("resize: %w", err)
		}
		in.Resize(int(v[0]), int(v[1]))
		return nil
	case "focus":
		in.Focus = editor.FocusNone
		if len(args) == 1 && args[0] == "text" {
			in.Focus = editor.FocusTextEntry
		}
		return nil
	case "open":
		nav.OpenEditor(strings.Join(args, " "))
		return nil
	case "export-view":
		nav.OpenExport()
		return nil
	case "back":
		nav.Back()
		return nil
	case "quit":
		app.Quit()
		return nil
	}

	if ed == nil || !ed.Mounted() {
		return fmt.Errorf("%s: %w", name, ErrNoSession)
	}
	return execSession(ed.Session, name, args)
}

func execSession(s *editor.Session, name string, args []string) error {
	arg := ""
	if len(args) > 0 {
		arg = strings.ToLower(args[0])
	}

	switch name {
	case "tool":
		tool, err := editor.ParseTool(arg)
		if err != nil {
			return err
		}
		s.SetTool(tool)
	case "tab":
		tab, ok := tabNames[arg]
		if !ok {
			return fmt.Errorf("tab: %w: %q", ErrUnknownCommand, arg)
		}
		s.SetTab(tab)
	case "theme":
		s.ToggleTheme()
	case "grid":
		s.ToggleGrid()
	case "wireframe":
		s.ToggleWireframe()
	case "light":
		v, err := parseFloats(args, 1)
		if err != nil {
			return fmt.Errorf("light: %w", err)
		}
		s.SetDisplay(editor.WithLightIntensity(v[0]))
	case "env":
		env, err := editor.ParseEnvironment(arg)
		if err != nil {
			return err
		}
		s.SetDisplay(editor.WithEnvironment(env))
	case "color", "background":
		c, err := editor.ParseColor(arg)
		if err != nil {
			return err
		}
		if name == "color" {
			s.SetDisplay(editor.WithSelectedColor(c))
		} else {
			s.SetBackground(c)
		}
	case "move", "rotate", "scale":
		v, err := parseFloats(args, 3)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		t := s.Transform()
		vec := mgl32.Vec3{v[0], v[1], v[2]}
		switch name {
		case "move":
			t.Position = vec
		case "rotate":
			t.Rotation = vec
		case "scale":
			t.Scale = vec
		}
		s.SetTransform(t)
	case "reset":
		s.ResetTransform()
	case "add":
		p, ok := primitiveNames[arg]
		if !ok {
			return fmt.Errorf("add: %w: %q", ErrUnknownCommand, arg)
		}
		s.AddPrimitive(p)
	case "delete":
		s.DeleteSelected()
	case "duplicate":
		s.DuplicateSelected()
	case "undo":
		s.Undo()
	case "redo":
		s.Redo()
	case "save":
		s.Save()
	case "modifier":
		m, ok := modifierNames[arg]
		if !ok {
			return fmt.Errorf("modifier: %w: %q", ErrUnknownCommand, arg)
		}
		s.ApplyModifier(m)
	case "export":
		return s.Export(exportOptions(s.ExportDefaults(), args))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	return nil
}

// exportOptions overlays positional format, quality and scale on defaults.
// Unparsable values are passed through so validation reports them.
func exportOptions(o editor.ExportOptions, args []string) editor.ExportOptions {
	if len(args) > 0 {
		o.Format = editor.ExportFormat(strings.ToLower(args[0]))
	}
	if len(args) > 1 {
		o.Quality = editor.ExportQuality(strings.ToLower(args[1]))
	}
	if len(args) > 2 {
		if f, err := strconv.ParseFloat(args[2], 32); err == nil {
			o.Scale = float32(f)
		} else {
			o.Scale = 0
		}
	}
	return o
}

func parseFloats(args []string, n int) ([]float32, error) {
	if len(args) != n {
		return nil, fmt.Errorf("want %d numbers, got %d", n, len(args))
	}
	out := make([]float32, n)
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}
