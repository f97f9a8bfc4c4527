package domain

import (
	"fmt"
	"sort"
)

// Coord is an integer grid coordinate. It is comparable and used directly as a map key.
type Coord struct {
	X int `json:"tx"`
	Y int `json:"ty"`
}

// At is shorthand for Coord{X: x, Y: y}.
func At(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Offset returns the coordinate shifted by (dx, dy).
func (c Coord) Offset(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// OrthogonalNeighbors returns the four edge-adjacent coordinates.
func (c Coord) OrthogonalNeighbors() []Coord {
	return []Coord{c.Offset(0, -1), c.Offset(1, 0), c.Offset(0, 1), c.Offset(-1, 0)}
}

// AllNeighbors returns the eight coordinates surrounding c.
func (c Coord) AllNeighbors() []Coord {
	out := make([]Coord, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out = append(out, c.Offset(dx, dy))
		}
	}
	return out
}

// SortCoords orders coordinates row-major (Y, then X) so map iteration
// never leaks into output.
func SortCoords(cs []Coord) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Y != cs[j].Y {
			return cs[i].Y < cs[j].Y
		}
		return cs[i].X < cs[j].X
	})
}
