package editor

// snapDelta adjusts a proposed move of moving by (dx, dy) so that its edges
// align with the nearest edge of another shape within distance. X and Y snap
// independently; left/right edges only align with left/right edges and
// top/bottom with top/bottom.
func snapDelta(moving *Shape, others []*Shape, dx, dy, distance float64) (float64, float64, bool) {
	if distance <= 0 {
		return dx, dy, false
	}
	r := moving.Bounds()
	r.X += dx
	r.Y += dy

	bestX, bestY := distance, distance
	adjX, adjY := 0.0, 0.0
	snappedX, snappedY := false, false

	for _, o := range others {
		if o == moving {
			continue
		}
		b := o.Bounds()
		for _, edge := range [2]float64{r.Left(), r.Right()} {
			for _, target := range [2]float64{b.Left(), b.Right()} {
				if d := target - edge; abs(d) <= bestX && (!snappedX || abs(d) < bestX) {
					bestX, adjX, snappedX = abs(d), d, true
				}
			}
		}
		for _, edge := range [2]float64{r.Top(), r.Bottom()} {
			for _, target := range [2]float64{b.Top(), b.Bottom()} {
				if d := target - edge; abs(d) <= bestY && (!snappedY || abs(d) < bestY) {
					bestY, adjY, snappedY = abs(d), d, true
				}
			}
		}
	}
	return dx + adjX, dy + adjY, snappedX || snappedY
}
