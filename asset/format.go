package asset

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
)

var (
	ErrUnsupportedFormat = errors.New("asset: unsupported format")
	ErrEmptyModel        = errors.New("asset: model has no geometry")
)

type Format string

const (
	FormatGLB  Format = "glb"
	FormatGLTF Format = "gltf"
	FormatOBJ  Format = "obj"
	FormatSTL  Format = "stl"
	FormatFBX  Format = "fbx"
)

// Formats lists the extensions accepted by the upload dialog.
func Formats() []Format {
	return []Format{FormatGLB, FormatGLTF, FormatOBJ, FormatSTL, FormatFBX}
}

// DetectFormat picks the format from the reference's extension. Query strings
// and fragments of URL references are ignored.
func DetectFormat(ref string) (Format, error) {
	p := ref
	if u, err := url.Parse(ref); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		p = u.Path
	}
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(p)), ".")
	for _, f := range Formats() {
		if string(f) == ext {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}
