package field

const defaultHistoryLimit = 100

// History holds undo and redo stacks of coalescable changes.
//
// Consecutive compatible edits merge into the top undo entry so that a
// burst of typing undoes as one step; PreventMerge inserts a barrier
// whenever a discrete user action (cursor move, paste, cut, focus
// loss) should not fuse with adjacent edits.
type History struct {
	undo     []Change
	redo     []Change
	maxSize  int
	canMerge bool
}

// NewHistory returns a History bounded to maxSize undo entries.
// A maxSize of zero or less selects the default limit.
func NewHistory(maxSize int) *History {
	if maxSize <= 0 {
		maxSize = defaultHistoryLimit
	}
	return &History{maxSize: maxSize, canMerge: true}
}

// Push records a change, merging it into the top undo entry when
// allowed. Any push invalidates the redo stack. The oldest undo entry
// is evicted once the size bound is exceeded.
func (h *History) Push(change Change) {
	h.redo = h.redo[:0]

	if h.canMerge && len(h.undo) > 0 {
		top := &h.undo[len(h.undo)-1]
		if merged, ok := top.merge(change); ok {
			*top = merged
			return
		}
	}

	h.undo = append(h.undo, change)
	if len(h.undo) > h.maxSize {
		h.undo = append(h.undo[:0], h.undo[1:]...)
	}
	h.canMerge = true
}

// Undo pops the most recent change onto the redo stack and returns its
// inverse for the caller to apply. Reports false when there is nothing
// to undo.
func (h *History) Undo() (Change, bool) {
	h.PreventMerge()
	if len(h.undo) == 0 {
		return Change{}, false
	}
	i := len(h.undo) - 1
	entry := h.undo[i]
	h.undo = h.undo[:i]
	h.redo = append(h.redo, entry)
	return entry.Inverse(), true
}

// Redo pops the most recent undone change back onto the undo stack and
// returns it (not inverted) for the caller to re-apply.
func (h *History) Redo() (Change, bool) {
	h.PreventMerge()
	if len(h.redo) == 0 {
		return Change{}, false
	}
	i := len(h.redo) - 1
	entry := h.redo[i]
	h.redo = h.redo[:i]
	h.undo = append(h.undo, entry)
	return entry, true
}

// PreventMerge stops the next pushed change from merging into the
// current top of the undo stack.
func (h *History) PreventMerge() { h.canMerge = false }

// Clear empties both stacks.
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }

func (h *History) CanRedo() bool { return len(h.redo) > 0 }
