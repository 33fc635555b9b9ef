package editor

import (
	"fmt"
	"strings"
)

type ToolKind int

const (
	ToolMove ToolKind = iota
	ToolRotate
	ToolScale
	ToolVertex
	ToolEdge
	ToolFace
	ToolPaint
	ToolErase
)

// ToolInfo describes a toolbar entry. Shortcut is zero for tools that can
// only be picked from the toolbar.
type ToolInfo struct {
	Kind     ToolKind
	Name     string
	Label    string
	Icon     string
	Shortcut rune
}

var toolRegistry = [...]ToolInfo{
	ToolMove:   {Kind: ToolMove, Name: "move", Label: "Move Tool", Icon: "move", Shortcut: 'g'},
	ToolRotate: {Kind: ToolRotate, Name: "rotate", Label: "Rotate Tool", Icon: "rotate-3d", Shortcut: 'r'},
	ToolScale:  {Kind: ToolScale, Name: "scale", Label: "Scale Tool", Icon: "scale", Shortcut: 's'},
	ToolVertex: {Kind: ToolVertex, Name: "vertex", Label: "Vertex Edit Mode", Icon: "pipette", Shortcut: 'v'},
	ToolEdge:   {Kind: ToolEdge, Name: "edge", Label: "Edge Edit Mode", Icon: "scissors", Shortcut: 'e'},
	ToolFace:   {Kind: ToolFace, Name: "face", Label: "Face Edit Mode", Icon: "combine", Shortcut: 'f'},
	ToolPaint:  {Kind: ToolPaint, Name: "paint", Label: "Paint Tool", Icon: "brush"},
	ToolErase:  {Kind: ToolErase, Name: "erase", Label: "Erase Tool", Icon: "eraser"},
}

// Tools returns the registry in toolbar order.
func Tools() []ToolInfo {
	out := make([]ToolInfo, len(toolRegistry))
	copy(out, toolRegistry[:])
	return out
}

func (t ToolKind) Valid() bool {
	return t >= ToolMove && t <= ToolErase
}

func (t ToolKind) Info() ToolInfo {
	if !t.Valid() {
		return ToolInfo{Kind: t, Name: fmt.Sprintf("tool(%d)", int(t))}
	}
	return toolRegistry[t]
}

func (t ToolKind) String() string { return t.Info().Name }

// Shortcut returns the single-key binding of t, if it has one.
func (t ToolKind) Shortcut() (rune, bool) {
	r := t.Info().Shortcut
	return r, r != 0
}

// isEditMode reports whether t edits mesh elements rather than whole objects.
func (t ToolKind) isEditMode() bool {
	return t == ToolVertex || t == ToolEdge || t == ToolFace
}

// ToolForKey looks up the tool bound to key. Matching is case-insensitive and
// only single-character keys can match.
func ToolForKey(key string) (ToolKind, bool) {
	key = strings.ToLower(key)
	r := []rune(key)
	if len(r) != 1 {
		return 0, false
	}
	for _, info := range toolRegistry {
		if info.Shortcut != 0 && info.Shortcut == r[0] {
			return info.Kind, true
		}
	}
	return 0, false
}

func ParseTool(s string) (ToolKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, info := range toolRegistry {
		if info.Name == s {
			return info.Kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTool, s)
}

func (t ToolKind) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTool, int(t))
	}
	return []byte(t.String()), nil
}

func (t *ToolKind) UnmarshalText(b []byte) error {
	v, err := ParseTool(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
