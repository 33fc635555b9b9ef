package editor

import (
	"fmt"
	"strings"
)

type ExportFormat string

const (
	FormatNone ExportFormat = ""
	FormatGLB  ExportFormat = "glb"
	FormatGLTF ExportFormat = "gltf"
	FormatOBJ  ExportFormat = "obj"
	FormatSTL  ExportFormat = "stl"
	FormatFBX  ExportFormat = "fbx"
)

func ExportFormats() []ExportFormat {
	return []ExportFormat{FormatGLB, FormatGLTF, FormatOBJ, FormatSTL, FormatFBX}
}

func (f ExportFormat) Valid() bool {
	switch f {
	case FormatGLB, FormatGLTF, FormatOBJ, FormatSTL, FormatFBX:
		return true
	}
	return false
}

func (f *ExportFormat) UnmarshalText(b []byte) error {
	v := ExportFormat(strings.ToLower(strings.TrimSpace(string(b))))
	if v != FormatNone && !v.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownExportFormat, string(b))
	}
	*f = v
	return nil
}

type ExportQuality string

const (
	QualityLow    ExportQuality = "low"
	QualityMedium ExportQuality = "medium"
	QualityHigh   ExportQuality = "high"
)

func (q ExportQuality) Valid() bool {
	return q == QualityLow || q == QualityMedium || q == QualityHigh
}

func (q *ExportQuality) UnmarshalText(b []byte) error {
	v := ExportQuality(strings.ToLower(strings.TrimSpace(string(b))))
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidQuality, string(b))
	}
	*q = v
	return nil
}

const (
	MinExportScale float32 = 0.1
	MaxExportScale float32 = 2
)

// ExportOptions is the option set collected by the export dialog.
type ExportOptions struct {
	Format            ExportFormat  `yaml:"format"`
	Quality           ExportQuality `yaml:"quality"`
	Scale             float32       `yaml:"scale"`
	IncludeTextures   bool          `yaml:"include_textures"`
	IncludeAnimations bool          `yaml:"include_animations"`
	CompressOutput    bool          `yaml:"compress_output"`
}

func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		Format:            FormatGLB,
		Quality:           QualityMedium,
		Scale:             1,
		IncludeTextures:   true,
		IncludeAnimations: false,
		CompressOutput:    true,
	}
}

func (o ExportOptions) Validate() error {
	if o.Format == FormatNone {
		return ErrNoExportFormat
	}
	if !o.Format.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownExportFormat, string(o.Format))
	}
	if !o.Quality.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidQuality, string(o.Quality))
	}
	if o.Scale < MinExportScale || o.Scale > MaxExportScale {
		return fmt.Errorf("%w: %g not in [%g, %g]", ErrExportScale, o.Scale, MinExportScale, MaxExportScale)
	}
	return nil
}

// ExportRequest is handed to the exporter once the options validate.
type ExportRequest struct {
	AssetRef  string
	Selection *Handle
	Options   ExportOptions
}

// Exporter encodes the scene. Encoding itself lives outside this package.
type Exporter interface {
	Export(req ExportRequest) error
}

type ExporterFunc func(req ExportRequest) error

func (f ExporterFunc) Export(req ExportRequest) error { return f(req) }
