package navigation

// Host is the rendering side of the bar: it knows its surface size, paints
// frames and receives selections.
type Host interface {
	// Measure returns the current surface size in pixels.
	Measure() (width, height float64)
	// Paint draws one frame.
	Paint(frame Frame)
	// DispatchSelection is called once per accepted selection.
	DispatchSelection(entry MenuEntry)
}

// Attach registers h's DispatchSelection as a selection listener.
func (b *NavBar) Attach(h Host) {
	b.OnSelectionChanged(h.DispatchSelection)
}

// Draw measures h, resizes when needed and paints the current frame.
func (b *NavBar) Draw(h Host) {
	w, hgt := h.Measure()
	b.Resize(w, hgt)
	h.Paint(b.RenderFrame())
}
