package editor

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Options configures a Session. Every collaborator is optional.
type Options struct {
	AssetRef     string
	Notifier     Notifier
	Scene        SceneGraph
	Exporter     Exporter
	Saver        Saver
	Display      *DisplayState
	Export       *ExportOptions
	HistoryLimit int
}

// Snapshot is a read-only copy of the session handed to the viewport each
// frame.
type Snapshot struct {
	AssetRef  string
	Tool      ToolKind
	Selection *PickTarget
	Transform Transform
	Display   DisplayState
	Tab       SidebarTab
	Theme     Theme
	Dragging  bool
}

// Gizmo reports how the transform gizmo should be drawn. It is hidden when
// nothing is selected or the active tool has no transform mode.
func (s Snapshot) Gizmo() (mode TransformMode, target Handle, visible bool) {
	mode, ok := ModeFor(s.Tool)
	if !ok || s.Selection == nil {
		return mode, Handle{}, false
	}
	return mode, s.Selection.ID, true
}

// SelectionWireframe reports whether the selected object is drawn as
// wireframe. The edge tool forces it on.
func (s Snapshot) SelectionWireframe() bool {
	return s.Display.ShowWireframe || (s.Selection != nil && s.Tool == ToolEdge)
}

type dragState struct {
	start Transform
}

// Session is the state of one open editor view: active tool, selection and
// display flags. All mutation goes through its methods; none of them fail.
type Session struct {
	assetRef  string
	tool      ToolKind
	tab       SidebarTab
	theme     Theme
	display   DisplayState
	transform Transform
	drag      *dragState

	selection *SelectionTracker
	history   *History
	observers observers

	notifier      Notifier
	scene         SceneGraph
	exporter      Exporter
	saver         Saver
	exportDefault ExportOptions
}

func NewSession(opts Options) *Session {
	notifier := opts.Notifier
	if notifier == nil {
		notifier = Discard
	}
	display := DefaultDisplay()
	if opts.Display != nil {
		display = *opts.Display
		display.LightIntensity = mgl32.Clamp(display.LightIntensity, MinLightIntensity, MaxLightIntensity)
	}
	exportDefault := DefaultExportOptions()
	if opts.Export != nil {
		exportDefault = *opts.Export
	}
	return &Session{
		assetRef:      opts.AssetRef,
		tool:          ToolMove,
		tab:           TabTransform,
		theme:         ThemeDark,
		display:       display,
		transform:     IdentityTransform(),
		selection:     NewSelectionTracker(notifier),
		history:       NewHistory(opts.HistoryLimit),
		notifier:      notifier,
		scene:         opts.Scene,
		exporter:      opts.Exporter,
		saver:         opts.Saver,
		exportDefault: exportDefault,
	}
}

func (s *Session) AssetRef() string { return s.assetRef }
func (s *Session) Tool() ToolKind { return s.tool }
func (s *Session) Tab() SidebarTab { return s.tab }
func (s *Session) Theme() Theme { return s.theme }
func (s *Session) Display() DisplayState { return s.display }
func (s *Session) Transform() Transform { return s.transform }
func (s *Session) Selection() (PickTarget, bool) { return s.selection.Current() }
func (s *Session) History() *History { return s.history }
func (s *Session) Dragging() bool { return s.drag != nil }
func (s *Session) ExportDefaults() ExportOptions { return s.exportDefault }

func (s *Session) TransformMode() (TransformMode, bool) { return ModeFor(s.tool) }

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		AssetRef:  s.assetRef,
		Tool:      s.tool,
		Transform: s.transform,
		Display:   s.display,
		Tab:       s.tab,
		Theme:     s.theme,
		Dragging:  s.drag != nil,
	}
	if sel, ok := s.selection.Current(); ok {
		snap.Selection = &sel
	}
	return snap
}

// Subscribe registers l for every subsequent event. The returned func removes
// it and is safe to call more than once.
func (s *Session) Subscribe(l Listener) (cancel func()) {
	return s.observers.subscribe(l)
}

func (s *Session) emit(kind EventKind) {
	s.observers.emit(Event{Kind: kind, Snapshot: s.Snapshot()})
}

// SetTool switches the active tool. Any drag in progress is cancelled first.
// Picking the paint tool brings up the material tab.
func (s *Session) SetTool(tool ToolKind) {
	if !tool.Valid() {
		return
	}
	s.cancelDrag()
	changed := s.tool != tool
	s.tool = tool
	if changed {
		s.emit(EventToolChanged)
	}
	if tool == ToolPaint {
		s.SetTab(TabMaterial)
	}
	if changed && tool.isEditMode() && s.selection.Has() {
		s.notifier.Notify(editModeNotification(tool))
	}
}

func editModeNotification(tool ToolKind) Notification {
	name := tool.String()
	elements := map[ToolKind]string{ToolVertex: "vertices", ToolEdge: "edges", ToolFace: "faces"}[tool]
	return Notification{
		Title:       strings.ToUpper(name[:1]) + name[1:] + " Edit Mode",
		Description: fmt.Sprintf("Now editing %s. Select %s to modify them.", elements, elements),
	}
}

func (s *Session) SetTab(tab SidebarTab) {
	if s.tab == tab {
		return
	}
	s.tab = tab
	s.emit(EventTabChanged)
}

func (s *Session) ToggleTheme() {
	if s.theme == ThemeDark {
		s.theme = ThemeLight
	} else {
		s.theme = ThemeDark
	}
	s.emit(EventThemeChanged)
}

// SetDisplay merges p into the display state. The change is undoable.
func (s *Session) SetDisplay(p DisplayPatch) {
	prev := s.display
	next := prev.Apply(p)
	if next == prev {
		return
	}
	s.applyDisplay(next)
	s.history.push(command{
		label: "display",
		undo:  func() { s.applyDisplay(prev) },
		redo:  func() { s.applyDisplay(next) },
	})
}

func (s *Session) applyDisplay(d DisplayState) {
	s.display = d
	s.emit(EventDisplayChanged)
}

func (s *Session) ToggleGrid()      { s.SetDisplay(WithShowGrid(!s.display.ShowGrid)) }
func (s *Session) ToggleWireframe() { s.SetDisplay(WithShowWireframe(!s.display.ShowWireframe)) }

// SetBackground only acknowledges the swatch; the background is owned by the
// renderer theme.
func (s *Session) SetBackground(c Color) {
	s.notifier.Notify(Notification{
		Title:       "Background Changed",
		Description: "Scene background color has been updated.",
	})
}

// OnPick is fed by the viewport on every click. nil means empty space.
func (s *Session) OnPick(target *PickTarget) {
	prev, had := s.selection.Current()
	if had && (target == nil || target.ID != prev.ID || !target.Category.Selectable()) {
		s.cancelDrag()
	}
	changed := s.selection.OnPick(target)
	s.syncTransformFromSelection()
	if changed {
		s.emit(EventSelectionChanged)
	}
}

func (s *Session) ClearSelection() {
	s.OnPick(nil)
}

func (s *Session) selectQuietly(target PickTarget) {
	s.cancelDrag()
	s.selection.current = &target
	s.syncTransformFromSelection()
	s.emit(EventSelectionChanged)
}

func (s *Session) syncTransformFromSelection() {
	if sel, ok := s.selection.Current(); ok {
		s.transform = sel.Transform
	} else {
		s.transform = IdentityTransform()
	}
}

// SetTransform edits the selected object's transform from the sidebar. It is
// a no-op without a selection.
func (s *Session) SetTransform(t Transform) {
	sel, ok := s.selection.Current()
	if !ok || t == s.transform {
		return
	}
	s.cancelDrag()
	s.recordTransform(sel.ID, s.transform, t, "transform")
	s.applyTransform(sel.ID, t)
}

func (s *Session) recordTransform(id Handle, from, to Transform, label string) {
	s.history.push(command{
		label: label,
		undo:  func() { s.applyTransform(id, from) },
		redo:  func() { s.applyTransform(id, to) },
	})
}

func (s *Session) applyTransform(id Handle, t Transform) {
	if s.scene != nil {
		s.scene.SetTransform(id, t)
	}
	if sel, ok := s.selection.Current(); ok && sel.ID == id {
		s.transform = t
		s.selection.update(t)
	}
	s.emit(EventTransformChanged)
}

// ResetTransform returns the selected object to the identity transform. The
// notification is emitted whether or not anything was selected.
func (s *Session) ResetTransform() {
	s.cancelDrag()
	if sel, ok := s.selection.Current(); ok && !s.transform.IsIdentity() {
		s.recordTransform(sel.ID, s.transform, IdentityTransform(), "reset transform")
		s.applyTransform(sel.ID, IdentityTransform())
	}
	s.notifier.Notify(Notification{
		Title:       "Transform Reset",
		Description: "Object transform has been reset.",
	})
}

// BeginDrag starts a gizmo gesture on the selection. It fails when no gizmo
// is shown.
func (s *Session) BeginDrag() bool {
	if _, ok := ModeFor(s.tool); !ok || !s.selection.Has() {
		return false
	}
	s.drag = &dragState{start: s.transform}
	return true
}

// UpdateDrag previews t during a gesture. Previews are not recorded.
func (s *Session) UpdateDrag(t Transform) {
	sel, ok := s.selection.Current()
	if s.drag == nil || !ok {
		return
	}
	s.applyTransform(sel.ID, t)
}

// EndDrag commits the gesture as one undoable step.
func (s *Session) EndDrag() {
	sel, ok := s.selection.Current()
	if s.drag == nil {
		return
	}
	start := s.drag.start
	s.drag = nil
	if ok && start != s.transform {
		s.recordTransform(sel.ID, start, s.transform, "drag")
	}
}

// cancelDrag rolls a gesture back so no half-applied transform survives a
// tool or selection change.
func (s *Session) cancelDrag() {
	if s.drag == nil {
		return
	}
	start := s.drag.start
	s.drag = nil
	if sel, ok := s.selection.Current(); ok && sel.Transform != start {
		s.applyTransform(sel.ID, start)
	}
	s.emit(EventDragCancelled)
}

func (s *Session) Undo() {
	s.cancelDrag()
	desc := "Action undone"
	if _, ok := s.history.Undo(); !ok {
		desc = "Nothing to undo"
	}
	s.notifier.Notify(Notification{Title: "Undo", Description: desc})
}

func (s *Session) Redo() {
	s.cancelDrag()
	desc := "Action redone"
	if _, ok := s.history.Redo(); !ok {
		desc = "Nothing to redo"
	}
	s.notifier.Notify(Notification{Title: "Redo", Description: desc})
}

func (s *Session) notifyNothingSelected(action string) {
	s.notifier.Notify(Notification{
		Title:       "Nothing Selected",
		Description: fmt.Sprintf("Select an object to %s.", action),
	})
}

// DeleteSelected removes the selection from the scene. Undo puts it back.
func (s *Session) DeleteSelected() {
	// Roll back a gesture first so the removed object keeps its committed
	// transform.
	s.cancelDrag()
	sel, ok := s.selection.Current()
	if !ok || s.scene == nil {
		s.notifyNothingSelected("delete")
		return
	}
	restore, ok := s.scene.Remove(sel.ID)
	if !ok {
		s.notifyNothingSelected("delete")
		return
	}
	s.ClearSelection()
	s.history.push(command{
		label: "delete",
		undo: func() {
			restore()
			s.selectQuietly(sel)
		},
		redo: func() {
			if r, ok := s.scene.Remove(sel.ID); ok {
				restore = r
			}
			s.ClearSelection()
		},
	})
	s.notifier.Notify(Notification{
		Title:       "Object Deleted",
		Description: "Selected object has been deleted.",
		Severity:    SeverityDestructive,
	})
}

// DuplicateSelected copies the selection and selects the copy.
func (s *Session) DuplicateSelected() {
	sel, ok := s.selection.Current()
	if !ok || s.scene == nil {
		s.notifyNothingSelected("duplicate")
		return
	}
	dup, ok := s.scene.Duplicate(sel.ID)
	if !ok {
		s.notifyNothingSelected("duplicate")
		return
	}
	s.selectQuietly(dup)
	s.recordAddition(dup, "duplicate")
	s.notifier.Notify(Notification{
		Title:       "Object Duplicated",
		Description: "Selected object has been duplicated.",
	})
}

// AddPrimitive asks the scene for a new primitive. The selection is kept.
func (s *Session) AddPrimitive(p Primitive) {
	if s.scene == nil {
		return
	}
	added := s.scene.AddPrimitive(p)
	s.recordAddition(added, "add "+p.String())
	name := p.String()
	title := strings.ToUpper(name[:1]) + name[1:]
	s.notifier.Notify(Notification{
		Title:       title + " Added",
		Description: fmt.Sprintf("A new %s has been added to the scene.", name),
	})
}

func (s *Session) recordAddition(added PickTarget, label string) {
	var restore func()
	s.history.push(command{
		label: label,
		undo: func() {
			if sel, ok := s.selection.Current(); ok && sel.ID == added.ID {
				s.ClearSelection()
			}
			if r, ok := s.scene.Remove(added.ID); ok {
				restore = r
			}
		},
		redo: func() {
			if restore != nil {
				restore()
			}
		},
	})
}

func (s *Session) ApplyModifier(m Modifier) {
	s.notifier.Notify(m.notification())
}

func (s *Session) Save() {
	if s.saver != nil {
		if err := s.saver.Save(s.Snapshot()); err != nil {
			s.notifier.Notify(Notification{
				Title:       "Save Failed",
				Description: err.Error(),
				Severity:    SeverityDestructive,
			})
			return
		}
	}
	s.notifier.Notify(Notification{
		Title:       "Project Saved",
		Description: "Your 3D model has been saved successfully.",
	})
}

// Export validates opts and hands them to the exporter. Validation failures
// are reported to the user and the exporter is not called.
func (s *Session) Export(opts ExportOptions) error {
	err := opts.Validate()
	if err == nil && s.exporter == nil {
		err = ErrNoExporter
	}
	if err == nil {
		req := ExportRequest{AssetRef: s.assetRef, Options: opts}
		if sel, ok := s.selection.Current(); ok {
			id := sel.ID
			req.Selection = &id
		}
		if err = s.exporter.Export(req); err != nil {
			err = fmt.Errorf("export %s: %w", opts.Format, err)
		}
	}
	if err != nil {
		s.notifier.Notify(Notification{
			Title:       "Export Failed",
			Description: err.Error(),
			Severity:    SeverityDestructive,
		})
		return err
	}
	s.notifier.Notify(Notification{
		Title:       "Export Successful",
		Description: fmt.Sprintf("Your model has been exported as %s.", strings.ToUpper(string(opts.Format))),
	})
	return nil
}
