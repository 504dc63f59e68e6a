package advanced

// SignedArea is positive when the vertices run counterclockwise as displayed,
// that is, with the y axis pointing down the screen. This is the winding the
// renderer sees once it flips y into clip space.
func (t Triangle) SignedArea() float64 {
	a, b, c := t[0], t[1], t[2]
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	return -cross / 2
}

func (t Triangle) IsCCW() bool {
	return t.SignedArea() > 0
}

func (t Triangle) IsCW() bool {
	return t.SignedArea() < 0
}
