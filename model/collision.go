package model

// probe returns the coordinate gap units ahead of from in the direction of step.
func probe(from, step, gap float64) float64 {
	if step < 0 {
		return from - gap
	}
	return from + gap
}

// clear reports whether the world point (x, y) lies in an in-bounds empty cell.
func (p *Player) clear(x, y float64) bool {
	return p.grid.IsEmpty(p.grid.WorldToCell(x, y))
}
