package asset

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/gekko3d/studio/scene"
)

// Info describes a loaded model.
type Info struct {
	Format    Format
	Name      string
	Source    string
	Meshes    int
	Triangles int
	Vertices  int
	Bounds    scene.Bounds
}

// Loader resolves asset references to scene objects. Only the geometry
// bounds are kept; drawing the mesh is the renderer's business.
type Loader struct {
	// Root resolves relative references. Empty means the working directory.
	Root string
}

func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

func (l *Loader) resolve(ref string) (string, error) {
	if u, err := url.Parse(ref); err == nil && len(u.Scheme) > 1 {
		if u.Scheme != "file" {
			return "", fmt.Errorf("%w: remote reference %q", ErrUnsupportedFormat, ref)
		}
		ref = u.Path
	}
	if l.Root != "" && !filepath.IsAbs(ref) {
		ref = filepath.Join(l.Root, ref)
	}
	return ref, nil
}

// Inspect reads the asset without building a scene object.
func (l *Loader) Inspect(ref string) (Info, error) {
	format, err := DetectFormat(ref)
	if err != nil {
		return Info{}, err
	}
	p, err := l.resolve(ref)
	if err != nil {
		return Info{}, err
	}

	var info Info
	switch format {
	case FormatGLB, FormatGLTF:
		info, err = readGLTF(p)
	case FormatSTL:
		info, err = readSTL(p)
	case FormatOBJ:
		info, err = readOBJ(p)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return Info{}, fmt.Errorf("load %s: %w", ref, err)
	}
	info.Format = format
	info.Source = ref
	if info.Name == "" {
		base := filepath.Base(p)
		info.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return info, nil
}

// Load reads the asset and wraps it in a scene object recentred on the origin.
func (l *Loader) Load(ref string) (*scene.Object, Info, error) {
	info, err := l.Inspect(ref)
	if err != nil {
		return nil, Info{}, err
	}
	return scene.NewModel(info.Name, ref, info.Bounds), info, nil
}
