package studio

import (
	"strings"

	"github.com/google/uuid"

	"github.com/gekko3d/studio/asset"
	"github.com/gekko3d/studio/editor"
	"github.com/gekko3d/studio/scene"
)

type AssetId string

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}

// ModelAsset is a loaded model kept for reuse. Object is the template every
// Instantiate call copies.
type ModelAsset struct {
	Ref    string
	Info   asset.Info
	Object scene.Object
}

// AssetServer resolves asset references for the editor. Loaded models are
// cached by reference.
type AssetServer struct {
	loader *asset.Loader
	models map[AssetId]ModelAsset
	byRef  map[string]AssetId
	logger Logger
}

func NewAssetServer(root string, logger Logger) *AssetServer {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &AssetServer{
		loader: asset.NewLoader(root),
		models: make(map[AssetId]ModelAsset),
		byRef:  make(map[string]AssetId),
		logger: logger,
	}
}

// IsDefaultRef reports whether ref asks for the default cube.
func IsDefaultRef(ref string) bool {
	ref = strings.TrimSpace(ref)
	return ref == "" || strings.EqualFold(ref, "new")
}

func (server *AssetServer) LoadModel(ref string) (AssetId, error) {
	if id, ok := server.byRef[ref]; ok {
		return id, nil
	}
	obj, info, err := server.loader.Load(ref)
	if err != nil {
		return "", err
	}
	id := makeAssetId()
	server.models[id] = ModelAsset{Ref: ref, Info: info, Object: *obj}
	server.byRef[ref] = id
	server.logger.Infof("loaded %s (%s, %d triangles)", ref, info.Format, info.Triangles)
	return id, nil
}

func (server *AssetServer) Model(id AssetId) (ModelAsset, bool) {
	m, ok := server.models[id]
	return m, ok
}

// Instantiate returns a fresh scene object for a cached model.
func (server *AssetServer) Instantiate(id AssetId) (*scene.Object, bool) {
	m, ok := server.models[id]
	if !ok {
		return nil, false
	}
	obj := m.Object
	obj.ID = uuid.New()
	return &obj, true
}

// SceneFor builds the scene shown for ref. A default ref gives the unit cube.
// A ref that fails to load also gives the unit cube and tells the user why.
func (server *AssetServer) SceneFor(ref string, notifier editor.Notifier) *scene.Scene {
	sc := scene.New()
	if IsDefaultRef(ref) {
		sc.Add(scene.NewUnitCube())
		return sc
	}

	id, err := server.LoadModel(ref)
	if err == nil {
		if obj, ok := server.Instantiate(id); ok {
			sc.Add(obj)
			return sc
		}
	}

	server.logger.Errorf("load %s: %v", ref, err)
	if notifier != nil {
		notifier.Notify(editor.Notification{
			Title:       "Failed to Load Model",
			Description: "Showing the default cube instead.",
			Severity:    editor.SeverityDestructive,
		})
	}
	sc.Add(scene.NewUnitCube())
	return sc
}

type AssetServerModule struct {
	Root string
}

func (mod AssetServerModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewAssetServer(mod.Root, namedLogger(app.Logger(), "assets")))
}
