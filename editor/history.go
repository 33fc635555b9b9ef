package editor

const DefaultHistoryLimit = 50

type command struct {
	label string
	undo  func()
	redo  func()
}

// History is a bounded undo/redo stack of inverse operations. Pushing a new
// command drops the redo branch.
type History struct {
	limit int
	undo  []command
	redo  []command
}

func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

func (h *History) push(c command) {
	if len(h.undo) >= h.limit {
		h.undo = h.undo[1:]
	}
	h.undo = append(h.undo, c)
	h.redo = h.redo[:0]
}

// Undo applies the most recent inverse and returns its label.
func (h *History) Undo() (string, bool) {
	if len(h.undo) == 0 {
		return "", false
	}
	c := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	c.undo()
	h.redo = append(h.redo, c)
	return c.label, true
}

func (h *History) Redo() (string, bool) {
	if len(h.redo) == 0 {
		return "", false
	}
	c := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	c.redo()
	h.undo = append(h.undo, c)
	return c.label, true
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }
func (h *History) Len() int      { return len(h.undo) }

func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}
