package core

import "fmt"

// Coord identifies a grid cell by row and column.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Grid is an n×n lattice where every cell is joined to its in-bounds
// up/left/right/down neighbours. There is no wraparound. Cells are addressed
// in row-major order and the adjacency never changes after construction.
type Grid struct {
	n   int
	adj [][]int
}

// NewGrid builds the n×n lattice and precomputes every neighbour list.
func NewGrid(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("grid size %d must be positive: %w", n, ErrInvalidParameter)
	}
	g := &Grid{n: n, adj: make([][]int, n*n)}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			idx := row*n + col
			nbrs := make([]int, 0, 4)
			if row > 0 {
				nbrs = append(nbrs, idx-n)
			}
			if col > 0 {
				nbrs = append(nbrs, idx-1)
			}
			if col < n-1 {
				nbrs = append(nbrs, idx+1)
			}
			if row < n-1 {
				nbrs = append(nbrs, idx+n)
			}
			g.adj[idx] = nbrs
		}
	}
	return g, nil
}

// N returns the side length of the grid.
func (g *Grid) N() int { return g.n }

// Len returns the number of cells, n².
func (g *Grid) Len() int { return g.n * g.n }

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.n, H: g.n} }

// Index returns the row-major index for c. The result is meaningless when c
// lies outside the grid; check Contains first.
func (g *Grid) Index(c Coord) int { return c.Row*g.n + c.Col }

// Coord converts a row-major index back into a coordinate.
func (g *Grid) Coord(idx int) Coord { return Coord{Row: idx / g.n, Col: idx % g.n} }

// Contains reports whether c addresses a cell of the grid.
func (g *Grid) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < g.n && c.Col >= 0 && c.Col < g.n
}

// Center returns the cell at (n/2, n/2).
func (g *Grid) Center() Coord { return Coord{Row: g.n / 2, Col: g.n / 2} }

// Neighbors returns the in-bounds 4-connected neighbours of c in ascending
// row-major order.
func (g *Grid) Neighbors(c Coord) []Coord {
	if !g.Contains(c) {
		return nil
	}
	idxs := g.adj[g.Index(c)]
	out := make([]Coord, len(idxs))
	for i, idx := range idxs {
		out[i] = g.Coord(idx)
	}
	return out
}

// NeighborIndices returns the ascending neighbour indices of the cell at idx.
// The slice is shared with the grid and must not be modified.
func (g *Grid) NeighborIndices(idx int) []int { return g.adj[idx] }
