package internal

// Even-odd point-in-triangle test against the sampled outline. Points within
// the sampling error of a side (the gap between an arc and its chords) may land
// on either side.
func (tri *IdealTriangle) Contains(p Point) bool {
	return crossingCount(tri.Points, p)%2 == 1
}

// Count the outline edges crossed by a ray from p toward +x. The outline is
// treated as closed whether or not its last point repeats the first.
func crossingCount(outline []Point, p Point) int {
	crossingCount := 0
	for i, vertex := range outline {
		nextVertex := outline[CircularIndex(i+1, len(outline))]
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		// Solve for x where the edge meets the ray's line
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}
