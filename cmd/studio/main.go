// studio - 3D model editor
//
// Opens a model (GLB, GLTF, OBJ or STL) in the editor view. Without a model
// the editor shows a unit cube.
//
// Shortcuts:
//
//	G/R/S       - Move, rotate, scale tool
//	V/E/F       - Vertex, edge, face edit mode
//	Ctrl+Z/Y    - Undo/redo
//	Ctrl+S      - Save project
//	Ctrl+D      - Duplicate selection
//	Delete      - Delete selection
//	Esc         - Clear selection
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	studio "github.com/gekko3d/studio"
	"github.com/gekko3d/studio/asset"
	"github.com/gekko3d/studio/config"
	"github.com/gekko3d/studio/internal/platform"
)

var (
	configPath string
	debug      bool
	headless   bool
	projectDir string
)

func main() {
	cmd := &cobra.Command{
		Use:   "studio [model.glb|model.gltf|model.obj|model.stl]",
		Short: "3D model editor",
		Long: `studio - 3D model editor

Opens a model in the editor view. Without a model the editor shows a cube.

With --headless no window is opened; editor commands are read from stdin,
one per line:
  key g | key ctrl+z | click 400 300 | tool rotate | grid | light 1.5
  env night | color #ef4444 | move 1 0 0 | reset | add cube | delete
  undo | redo | save | export glb high 1 | back | quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := ""
			if len(args) == 1 {
				ref = args[0]
			}
			return run(ref, cmd.InOrStdin(), cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Preferences file (YAML)")
	cmd.Flags().BoolVar(&debug, "debug", false, "Log debug messages")
	cmd.Flags().BoolVar(&headless, "headless", false, "Read editor commands from stdin instead of opening a window")
	cmd.Flags().StringVar(&projectDir, "project-dir", ".", "Directory project files are saved to")

	infoCmd := &cobra.Command{
		Use:   "info <model>",
		Short: "Display model information",
		Long:  "Display format, mesh, triangle and vertex counts and the bounding box of a model file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0], cmd.OutOrStdout())
		},
	}
	cmd.AddCommand(infoCmd)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ref string, stdin io.Reader, stderr io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if debug {
		cfg.Debug = true
	}

	builder := studio.NewAppBuilder().
		UseStates(studio.ViewGallery, studio.ViewClosed).
		UseModule(
			studio.LoggingModule{Prefix: "studio", Debug: cfg.Debug},
			studio.ConfigModule{Config: cfg, Path: configPath},
			studio.TimeModule{},
			studio.InputModule{},
			studio.ViewsModule{AssetRef: ref, Open: true},
			studio.NotificationModule{},
			studio.AssetServerModule{},
			studio.EditorModule{ProjectDir: projectDir},
		)
	if !headless {
		builder.UseModule(platform.WindowModule{
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
			Title:  cfg.Window.Title,
		})
	}
	app := builder.Build()

	if !headless {
		app.Run()
		return nil
	}
	return runScript(app, stdin, stderr)
}

// runScript executes one command per line, stepping a frame after each so
// queued keys and clicks are handled in order.
func runScript(app *studio.App, stdin io.Reader, stderr io.Writer) error {
	in, _ := studio.Resource[studio.Input](app)
	in.Resize(1280, 800)
	app.Step()

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() && !app.Finished() {
		if err := app.Exec(scanner.Text()); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", strings.TrimSpace(scanner.Text()), err)
		}
		app.Step()
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	for !app.Finished() {
		app.Quit()
		app.Step()
	}
	return nil
}

func runInfo(ref string, out io.Writer) error {
	info, err := asset.NewLoader("").Inspect(ref)
	if err != nil {
		return err
	}
	size := info.Bounds.Size()
	center := info.Bounds.Center()

	fmt.Fprintf(out, "File:       %s\n", ref)
	fmt.Fprintf(out, "Name:       %s\n", info.Name)
	fmt.Fprintf(out, "Format:     %s\n", strings.ToUpper(string(info.Format)))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Meshes:     %d\n", info.Meshes)
	fmt.Fprintf(out, "Vertices:   %d\n", info.Vertices)
	fmt.Fprintf(out, "Triangles:  %d\n", info.Triangles)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Bounds Min: (%.3f, %.3f, %.3f)\n", info.Bounds.Min.X(), info.Bounds.Min.Y(), info.Bounds.Min.Z())
	fmt.Fprintf(out, "Bounds Max: (%.3f, %.3f, %.3f)\n", info.Bounds.Max.X(), info.Bounds.Max.Y(), info.Bounds.Max.Z())
	fmt.Fprintf(out, "Dimensions: %.3f x %.3f x %.3f\n", size.X(), size.Y(), size.Z())
	fmt.Fprintf(out, "Center:     (%.3f, %.3f, %.3f)\n", center.X(), center.Y(), center.Z())
	return nil
}
