package main

// viewport is the window of listing lines on screen.
type viewport struct {
	lines []string
	top   int
	rows  int
}

func (v *viewport) scroll(n int) {
	v.top += n
	if limit := len(v.lines) - v.rows; v.top > limit {
		v.top = limit
	}
	if v.top < 0 {
		v.top = 0
	}
}

func (v *viewport) visible() []string {
	end := v.top + v.rows
	if end > len(v.lines) {
		end = len(v.lines)
	}
	return v.lines[v.top:end]
}
