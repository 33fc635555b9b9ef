package editor

import (
	"fmt"

	"github.com/google/uuid"
)

// Handle identifies an object owned by the scene graph. The editor never
// dereferences it; it is only compared and handed back to the scene.
type Handle = uuid.UUID

type ObjectCategory int

const (
	CategoryMesh ObjectCategory = iota
	CategoryGridHelper
	CategoryAxesHelper
)

// Selectable reports whether objects of this category may become the
// selection. Helpers are scene furniture.
func (c ObjectCategory) Selectable() bool {
	return c == CategoryMesh
}

// PickTarget is what the viewport reports for the object under the pointer.
type PickTarget struct {
	ID        Handle
	Name      string
	Type      string
	Category  ObjectCategory
	Transform Transform
}

// SelectionTracker holds at most one selected object.
type SelectionTracker struct {
	current  *PickTarget
	notifier Notifier
}

func NewSelectionTracker(n Notifier) *SelectionTracker {
	if n == nil {
		n = Discard
	}
	return &SelectionTracker{notifier: n}
}

// OnPick handles a click in the viewport. A nil target or a helper clears the
// selection; anything else replaces it and is announced. It returns whether
// the selected handle changed.
func (s *SelectionTracker) OnPick(target *PickTarget) bool {
	if target == nil || !target.Category.Selectable() || target.ID == uuid.Nil {
		return s.Clear()
	}

	changed := s.current == nil || s.current.ID != target.ID
	picked := *target
	s.current = &picked

	s.notifier.Notify(Notification{
		Title:       "Object Selected",
		Description: fmt.Sprintf("Selected %s. Use transform tools to modify.", typeLabel(target)),
	})
	return changed
}

func (s *SelectionTracker) Current() (PickTarget, bool) {
	if s.current == nil {
		return PickTarget{}, false
	}
	return *s.current, true
}

func (s *SelectionTracker) Has() bool { return s.current != nil }

// Clear drops the selection and reports whether there was one.
func (s *SelectionTracker) Clear() bool {
	had := s.current != nil
	s.current = nil
	return had
}

// update replaces the cached transform of the selection without announcing it.
func (s *SelectionTracker) update(t Transform) {
	if s.current != nil {
		s.current.Transform = t
	}
}

func typeLabel(t *PickTarget) string {
	if t.Type != "" {
		return t.Type
	}
	if t.Name != "" {
		return t.Name
	}
	return "object"
}
