package studio

import (
	"github.com/gekko3d/studio/config"
	"github.com/gekko3d/studio/editor"
	"github.com/gekko3d/studio/scene"
)

// Editor is the editor view. The session exists while the view is mounted:
// from entering the editor until going back to the gallery. Shortcuts are
// only routed while the editor view itself is showing.
type Editor struct {
	Session  *editor.Session
	Router   *editor.ShortcutRouter
	Scene    *scene.Scene
	Camera   scene.Camera
	Frame    scene.Frame
	AssetRef string

	exporter    editor.Exporter
	projectDir  string
	unsubscribe func()
}

func (ed *Editor) Mounted() bool { return ed.Session != nil }

func (ed *Editor) mount(ref string, assets *AssetServer, toasts *Toasts, cfg *config.Config, logger Logger) {
	ed.unmount(cfg)

	sc := assets.SceneFor(ref, toasts)
	opts := config.Default().SessionOptions()
	if cfg != nil {
		opts = cfg.SessionOptions()
	}
	opts.AssetRef = ref
	opts.Notifier = toasts
	opts.Scene = sc
	opts.Exporter = ed.exporter
	opts.Saver = editor.SaverFunc(func(snap editor.Snapshot) error {
		path := ProjectPath(ed.projectDir, snap.AssetRef)
		if err := NewProject(snap, sc).Save(path); err != nil {
			return err
		}
		logger.Infof("project saved to %s", path)
		return nil
	})

	ed.Session = editor.NewSession(opts)
	ed.Router = editor.NewShortcutRouter(ed.Session)
	ed.Scene = sc
	ed.Camera = scene.NewCamera()
	ed.AssetRef = ref
	ed.unsubscribe = ed.Session.Subscribe(func(ev editor.Event) {
		logger.Debugf("editor: %s (tool=%s)", ev.Kind, ev.Snapshot.Tool)
	})
	logger.Infof("editor opened %q", ref)
}

// unmount drops the session. The display flags it ended with become the
// preferences for the next one.
func (ed *Editor) unmount(cfg *config.Config) {
	if ed.Session == nil {
		return
	}
	ed.Router.Detach()
	ed.unsubscribe()
	if cfg != nil {
		cfg.Display = ed.Session.Display()
	}
	ed.Session = nil
	ed.Router = nil
	ed.Scene = nil
	ed.Frame = scene.Frame{}
	ed.unsubscribe = nil
}

// pick resolves a viewport click. Anything but a left click is ignored.
func (ed *Editor) pick(c Click, width, height int) {
	if c.Button != MouseButtonLeft {
		return
	}
	ray := ed.Camera.ScreenRay(c.X, c.Y, width, height)
	ed.Session.OnPick(ed.Scene.PickTarget(ray, ed.Session.Display().ShowGrid))
}

// logExporter stands in for a real encoder: it records the request only.
func logExporter(logger Logger) editor.Exporter {
	return editor.ExporterFunc(func(req editor.ExportRequest) error {
		o := req.Options
		logger.Infof("export %s: format=%s quality=%s scale=%g textures=%t animations=%t compress=%t",
			req.AssetRef, o.Format, o.Quality, o.Scale, o.IncludeTextures, o.IncludeAnimations, o.CompressOutput)
		return nil
	})
}

type EditorModule struct {
	// Exporter defaults to one that only logs the request.
	Exporter   editor.Exporter
	ProjectDir string
}

func (mod EditorModule) Install(app *App, cmd *Commands) {
	exporter := mod.Exporter
	if exporter == nil {
		exporter = logExporter(namedLogger(app.Logger(), "export"))
	}
	ed := &Editor{
		Camera:     scene.NewCamera(),
		exporter:   exporter,
		projectDir: mod.ProjectDir,
	}
	cmd.AddResources(ed)
	if _, ok := Resource[config.Config](app); !ok {
		cfg := config.Default()
		cmd.AddResources(&cfg)
	}

	app.UseSystem(System(editorEnterSystem).InStage(Update).InState(OnEnter(ViewEditor)))
	app.UseSystem(System(editorViewSystem).InStage(Update).InState(OnExecute(ViewEditor)))
	app.UseSystem(System(editorLeaveSystem).InStage(Update).InState(OnExit(ViewEditor)))
	app.UseSystem(System(editorUnmountSystem).InStage(Update).InState(OnEnter(ViewGallery)))
	app.UseSystem(System(editorFrameSystem).InStage(PostUpdate).RunAlways())

	app.OnClose(func() {
		cfg, _ := Resource[config.Config](app)
		ed.unmount(cfg)
	})
}

func editorEnterSystem(ed *Editor, nav *Navigation, in *Input, assets *AssetServer, toasts *Toasts, cfg *config.Config, cmd *Commands) {
	if !ed.Mounted() || ed.AssetRef != nav.AssetRef {
		ed.mount(nav.AssetRef, assets, toasts, cfg, namedLogger(cmd.Logger(), "editor"))
	}
	ed.Router.Attach(in)
}

func editorViewSystem(ed *Editor, nav *Navigation, in *Input, assets *AssetServer, toasts *Toasts, cfg *config.Config, cmd *Commands) {
	if ed.AssetRef != nav.AssetRef {
		ed.mount(nav.AssetRef, assets, toasts, cfg, namedLogger(cmd.Logger(), "editor"))
		ed.Router.Attach(in)
	}
	for _, c := range in.DrainClicks() {
		ed.pick(c, in.WindowWidth, in.WindowHeight)
	}
}

func editorLeaveSystem(ed *Editor) {
	if ed.Router != nil {
		ed.Router.Detach()
	}
}

func editorUnmountSystem(ed *Editor, cfg *config.Config) {
	ed.unmount(cfg)
}

func editorFrameSystem(ed *Editor, in *Input) {
	if !ed.Mounted() {
		return
	}
	ed.Frame = scene.BuildFrame(ed.Scene, ed.Camera, ed.Session.Snapshot(), in.WindowWidth, in.WindowHeight)
}
