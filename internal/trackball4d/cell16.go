package trackball4d

// Colour class of the four edges joining axis a to axis b (a < b).
var cell16Colors = [Dim][Dim]EdgeColor{
	0: {1: Green, 2: Blue, 3: Black},
	1: {2: Red, 3: Yellow},
	2: {3: Grey},
}

// cell16 returns the hyperoctahedron: vertex 2k is −half·e_k and 2k+1 is
// +half·e_k. Every pair of vertices on different axes is an edge; the two
// vertices on one axis are antipodal and never joined. Edges are listed per
// axis pair (a, b) in lexicographic order as (−a,−b), (+a,−b), (−a,+b), (+a,+b).
func cell16(half Real) ([]VecN, []Edge) {
	verts := make([]VecN, 0, 2*Dim)
	for k := 0; k < Dim; k++ {
		neg, pos := NewVecN(Dim), NewVecN(Dim)
		neg[k], pos[k] = -half, half
		verts = append(verts, neg, pos)
	}

	edges := make([]Edge, 0, 2*Dim*(Dim-1))
	for a := 0; a < Dim; a++ {
		for b := a + 1; b < Dim; b++ {
			c := cell16Colors[a][b]
			edges = append(edges,
				Edge{A: 2 * a, B: 2 * b, Color: c},
				Edge{A: 2*a + 1, B: 2 * b, Color: c},
				Edge{A: 2 * a, B: 2*b + 1, Color: c},
				Edge{A: 2*a + 1, B: 2*b + 1, Color: c},
			)
		}
	}
	return verts, edges
}
