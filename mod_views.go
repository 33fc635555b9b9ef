package studio

import "fmt"

// Views are the app states. Gallery is the start page, Editor owns the
// session, Export is the export page opened on top of the editor.
const (
	ViewGallery State = iota
	ViewEditor
	ViewExport
	ViewClosed
)

func ViewName(s State) string {
	switch s {
	case ViewGallery:
		return "gallery"
	case ViewEditor:
		return "editor"
	case ViewExport:
		return "export"
	case ViewClosed:
		return "closed"
	}
	return fmt.Sprintf("view(%d)", int(s))
}

type navRequest int

const (
	navNone navRequest = iota
	navOpen
	navExport
	navBack
	navClose
)

// Navigation queues view changes. Requests are applied at the start of the
// next frame; the last request of a frame wins.
type Navigation struct {
	AssetRef string

	request navRequest
}

// OpenEditor goes to the editor view for ref. An empty ref opens the default
// cube.
func (n *Navigation) OpenEditor(ref string) {
	n.AssetRef = ref
	n.request = navOpen
}

func (n *Navigation) OpenExport() { n.request = navExport }
func (n *Navigation) Back()       { n.request = navBack }
func (n *Navigation) Close()      { n.request = navClose }

func (n *Navigation) target(current State) (State, bool) {
	switch n.request {
	case navOpen:
		return ViewEditor, true
	case navExport:
		return ViewExport, current == ViewEditor
	case navBack:
		switch current {
		case ViewExport:
			return ViewEditor, true
		case ViewEditor:
			return ViewGallery, true
		}
	case navClose:
		return ViewClosed, true
	}
	return current, false
}

type ViewsModule struct {
	// AssetRef, when set, opens the editor on the first frame.
	AssetRef string
	Open     bool
}

func (mod ViewsModule) Install(app *App, cmd *Commands) {
	nav := &Navigation{}
	if mod.Open {
		nav.OpenEditor(mod.AssetRef)
	}
	cmd.AddResources(nav)
	app.UseSystem(
		System(navigationSystem).
			InStage(PreUpdate).
			RunAlways(),
	)
}

func navigationSystem(nav *Navigation, cmd *Commands) {
	if nav.request == navNone {
		return
	}
	current := cmd.State()
	next, ok := nav.target(current)
	nav.request = navNone
	if !ok || next == current {
		return
	}
	cmd.Logger().Debugf("navigate %s -> %s", ViewName(current), ViewName(next))
	cmd.ChangeState(next)
}
