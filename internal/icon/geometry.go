package icon

// box is an axis-aligned rectangle in pixel coordinates, origin top left.
type box struct {
	X0, Y0, X1, Y1 float64
}

// layout holds the padlock geometry for a square canvas. Every measure is
// a fixed fraction of the canvas: the lock occupies a centered square at
// 60% of the canvas, the body fills its lower 60% with corners rounded to
// 10% of the lock width, and the shackle covers the upper half.
type layout struct {
	Lock   box     // centered square the padlock occupies
	Body   box     // rounded lock body
	Radius float64 // body corner radius
	Bars   [3]box  // shackle: central span plus left and right uprights
}

// layoutFor computes the padlock layout for a canvas of px pixels per side.
func layoutFor(px int) layout {
	c := float64(px)
	lockW := c * 0.6
	lockH := c * 0.6
	lockX := (c - lockW) / 2
	lockY := (c - lockH) / 2

	// The uprights are centered on the central span's edges and stick out
	// half a bar width on each side; the three bars overlap into one block.
	half := lockW * 0.1
	left := lockX + lockW*0.3
	right := lockX + lockW*0.7
	top := lockY
	bottom := lockY + lockH*0.5

	return layout{
		Lock:   box{lockX, lockY, lockX + lockW, lockY + lockH},
		Body:   box{lockX, lockY + lockH*0.4, lockX + lockW, lockY + lockH},
		Radius: lockW * 0.1,
		Bars: [3]box{
			{left, top, right, bottom},
			{left - half, top, left + half, bottom},
			{right - half, top, right + half, bottom},
		},
	}
}
