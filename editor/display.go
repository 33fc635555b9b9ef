package editor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"
)

const (
	MinLightIntensity float32 = 0
	MaxLightIntensity float32 = 2
)

type Environment int

const (
	EnvStudio Environment = iota
	EnvSunset
	EnvDawn
	EnvNight
)

var environmentNames = [...]string{"studio", "sunset", "dawn", "night"}

func Environments() []Environment {
	return []Environment{EnvStudio, EnvSunset, EnvDawn, EnvNight}
}

func (e Environment) String() string {
	if e < 0 || int(e) >= len(environmentNames) {
		return fmt.Sprintf("environment(%d)", int(e))
	}
	return environmentNames[e]
}

func ParseEnvironment(s string) (Environment, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range environmentNames {
		if name == s {
			return Environment(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEnvironment, s)
}

func (e Environment) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

func (e *Environment) UnmarshalText(b []byte) error {
	v, err := ParseEnvironment(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// Color is an sRGB swatch color.
type Color struct {
	R, G, B uint8
}

// ParseColor accepts "#rrggbb", "#rgb" or a CSS color name.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return Color{c.R, c.G, c.B}, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string { return c.Hex() }

// Vec3 returns the color as linear-ish 0..1 floats for the renderer.
func (c Color) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

func (c Color) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

var (
	DefaultSelectedColor = MustParseColor("#4f46e5")

	// MaterialPalette is the swatch row of the material tab.
	MaterialPalette = []Color{
		MustParseColor("#4f46e5"),
		MustParseColor("#ef4444"),
		MustParseColor("#f97316"),
		MustParseColor("#eab308"),
		MustParseColor("#22c55e"),
		MustParseColor("#06b6d4"),
		MustParseColor("#8b5cf6"),
		MustParseColor("#ec4899"),
		MustParseColor("#6b7280"),
		MustParseColor("#ffffff"),
	}

	BackgroundPalette = []Color{
		MustParseColor("#000000"),
		MustParseColor("#ffffff"),
		MustParseColor("#1e293b"),
		MustParseColor("#0f172a"),
		MustParseColor("#18181b"),
	}
)

type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

type SidebarTab int

const (
	TabTransform SidebarTab = iota
	TabMaterial
	TabModifiers
	TabScene
)

func (t SidebarTab) String() string {
	switch t {
	case TabTransform:
		return "transform"
	case TabMaterial:
		return "material"
	case TabModifiers:
		return "modifiers"
	case TabScene:
		return "scene"
	}
	return fmt.Sprintf("tab(%d)", int(t))
}

// DisplayState holds the viewport flags set from the sidebar. Fields are
// independent of each other and of tool/selection.
type DisplayState struct {
	ShowGrid       bool        `yaml:"show_grid"`
	ShowWireframe  bool        `yaml:"show_wireframe"`
	LightIntensity float32     `yaml:"light_intensity"`
	Environment    Environment `yaml:"environment"`
	SelectedColor  Color       `yaml:"selected_color"`
}

func DefaultDisplay() DisplayState {
	return DisplayState{
		ShowGrid:       true,
		ShowWireframe:  false,
		LightIntensity: 1,
		Environment:    EnvStudio,
		SelectedColor:  DefaultSelectedColor,
	}
}

// DisplayPatch is a partial DisplayState; nil fields are left alone.
type DisplayPatch struct {
	ShowGrid       *bool
	ShowWireframe  *bool
	LightIntensity *float32
	Environment    *Environment
	SelectedColor  *Color
}

func (p DisplayPatch) Empty() bool {
	return p.ShowGrid == nil && p.ShowWireframe == nil && p.LightIntensity == nil &&
		p.Environment == nil && p.SelectedColor == nil
}

// Apply shallow-merges p into d. Light intensity is clamped into range; NaN
// leaves it unchanged.
func (d DisplayState) Apply(p DisplayPatch) DisplayState {
	if p.ShowGrid != nil {
		d.ShowGrid = *p.ShowGrid
	}
	if p.ShowWireframe != nil {
		d.ShowWireframe = *p.ShowWireframe
	}
	if p.LightIntensity != nil && !math.IsNaN(float64(*p.LightIntensity)) {
		d.LightIntensity = mgl32.Clamp(*p.LightIntensity, MinLightIntensity, MaxLightIntensity)
	}
	if p.Environment != nil {
		d.Environment = *p.Environment
	}
	if p.SelectedColor != nil {
		d.SelectedColor = *p.SelectedColor
	}
	return d
}

func WithShowGrid(v bool) DisplayPatch           { return DisplayPatch{ShowGrid: &v} }
func WithShowWireframe(v bool) DisplayPatch      { return DisplayPatch{ShowWireframe: &v} }
func WithLightIntensity(v float32) DisplayPatch  { return DisplayPatch{LightIntensity: &v} }
func WithEnvironment(v Environment) DisplayPatch { return DisplayPatch{Environment: &v} }
func WithSelectedColor(v Color) DisplayPatch     { return DisplayPatch{SelectedColor: &v} }
