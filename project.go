package studio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gekko3d/studio/editor"
	"github.com/gekko3d/studio/scene"
)

type ProjectObject struct {
	Name      string           `yaml:"name"`
	Type      string           `yaml:"type"`
	Source    string           `yaml:"source,omitempty"`
	Transform editor.Transform `yaml:"transform"`
}

// Project is what "save" writes: the asset, the display flags and where each
// mesh ended up.
type Project struct {
	Asset   string              `yaml:"asset"`
	Display editor.DisplayState `yaml:"display"`
	Objects []ProjectObject     `yaml:"objects"`
}

func NewProject(snap editor.Snapshot, sc *scene.Scene) Project {
	p := Project{Asset: snap.AssetRef, Display: snap.Display}
	for _, o := range sc.Meshes() {
		p.Objects = append(p.Objects, ProjectObject{
			Name:      o.Name,
			Type:      o.Type,
			Source:    o.Source,
			Transform: o.Transform,
		})
	}
	return p
}

// ProjectPath names the project file for an asset reference inside dir.
func ProjectPath(dir, ref string) string {
	name := "untitled"
	if !IsDefaultRef(ref) {
		base := filepath.Base(ref)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return filepath.Join(dir, name+".project.yaml")
}

func (p Project) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write project: %w", err)
	}
	return nil
}

func LoadProject(path string) (Project, error) {
	var p Project
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse project %s: %w", path, err)
	}
	return p, nil
}
