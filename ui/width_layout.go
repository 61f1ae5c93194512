package ui

import "fyne.io/fyne/v2"

// widthLayout stacks its objects to fill the container, like a max layout,
// and calls onChange whenever the laid-out width differs from the last one.
type widthLayout struct {
	width    float32
	onChange func(width float32)
}

func (l *widthLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(size)
	}
	if size.Width == l.width {
		return
	}
	l.width = size.Width
	if l.onChange != nil {
		l.onChange(size.Width)
	}
}

func (l *widthLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	min := fyne.NewSize(0, 0)
	for _, o := range objects {
		min = min.Max(o.MinSize())
	}
	return min
}
