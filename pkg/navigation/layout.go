package navigation

// Layout is the measured geometry of the bar surface. Every item owns an
// equal horizontal slot of ItemAreaWidth pixels.
type Layout struct {
	Width         float64
	Height        float64
	ItemCount     int
	ItemAreaWidth float64
	centers       []float64
}

// NewLayout splits width evenly between count items. An unmeasured
// surface (width ≤ 0) still gets count centres, all at 0.
func NewLayout(width, height float64, count int) Layout {
	l := Layout{Width: width, Height: height, ItemCount: count}
	if count <= 0 {
		return l
	}
	if width > 0 {
		l.ItemAreaWidth = width / float64(count)
	}
	l.centers = make([]float64, count)
	for i := range l.centers {
		l.centers[i] = l.Center(i)
	}
	return l
}

// Measured reports whether the surface has a usable width.
func (l Layout) Measured() bool {
	return l.ItemAreaWidth > 0
}

// Center returns the horizontal centre of item i.
func (l Layout) Center(i int) float64 {
	return l.ItemAreaWidth * (float64(i) + 0.5)
}

// Centers returns every item centre. The slice is shared; do not modify it.
func (l Layout) Centers() []float64 {
	return l.centers
}

// ItemAt maps a horizontal position to the item whose slot contains it.
func (l Layout) ItemAt(x float64) (int, bool) {
	if !l.Measured() || x < 0 || x >= l.Width {
		return 0, false
	}
	i := int(x / l.ItemAreaWidth)
	if i >= l.ItemCount {
		i = l.ItemCount - 1
	}
	return i, true
}
