package category

// Viewport breakpoints for the category chip row
const (
	narrowWindowSize = 3
	wideWindowSize   = 6
	narrowMaxWidth   = 768 // px
)

// Window is a sliding view over the catalogue: N visible chips advanced or
// retreated one position at a time, clamped to the catalogue bounds.
type Window struct {
	index int
	size  int
}

// NewWindow creates a window sized for the given viewport width in pixels.
func NewWindow(viewportWidth int) *Window {
	size := wideWindowSize
	if viewportWidth < narrowMaxWidth {
		size = narrowWindowSize
	}
	if size > len(Catalogue) {
		size = len(Catalogue)
	}
	return &Window{size: size}
}

// Resize adjusts the visible chip count for a new viewport width, keeping the
// position clamped.
func (w *Window) Resize(viewportWidth int) {
	size := wideWindowSize
	if viewportWidth < narrowMaxWidth {
		size = narrowWindowSize
	}
	if size > len(Catalogue) {
		size = len(Catalogue)
	}
	w.size = size
	w.clamp()
}

// Next advances one position; no-op at the end.
func (w *Window) Next() {
	w.index++
	w.clamp()
}

// Prev retreats one position; no-op at the start.
func (w *Window) Prev() {
	w.index--
	w.clamp()
}

// HasNext reports whether the window can advance
func (w *Window) HasNext() bool {
	return w.index+w.size < len(Catalogue)
}

// HasPrev reports whether the window can retreat
func (w *Window) HasPrev() bool {
	return w.index > 0
}

// Visible returns the categories currently in view, in catalogue order.
func (w *Window) Visible() []Category {
	return Catalogue[w.index : w.index+w.size]
}

// Index returns the current window start position
func (w *Window) Index() int {
	return w.index
}

func (w *Window) clamp() {
	max := len(Catalogue) - w.size
	if w.index > max {
		w.index = max
	}
	if w.index < 0 {
		w.index = 0
	}
}
