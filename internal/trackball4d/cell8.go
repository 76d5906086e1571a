package trackball4d

// cell8 returns the tesseract: all 16 points with coordinates in {−half, +half}.
// Vertex n has axis k positive iff bit k of n is set, so x alternates fastest
// and w slowest. Edges join vertices differing in exactly one bit, listed
// axis by axis (x edges first), each as (lower, lower | 1<<axis).
func cell8(half Real) ([]VecN, []Edge) {
	const n = 1 << Dim
	verts := make([]VecN, n)
	for i := 0; i < n; i++ {
		v := NewVecN(Dim)
		for k := 0; k < Dim; k++ {
			if i&(1<<k) != 0 {
				v[k] = half
			} else {
				v[k] = -half
			}
		}
		verts[i] = v
	}

	edges := make([]Edge, 0, Dim*n/2)
	for k := 0; k < Dim; k++ {
		bit := 1 << k
		for i := 0; i < n; i++ {
			if i&bit == 0 {
				edges = append(edges, Edge{A: i, B: i | bit})
			}
		}
	}
	return verts, edges
}
