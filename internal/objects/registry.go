// Package objects owns the sparse map of placed world objects and their
// per-variant behaviour: attrition harvesting, tree growth, sprinklers and jars.
package objects

import (
	"github.com/osse101/CokeFamer_Go/internal/domain"
)

// Registry maps coordinates to at most one object each.
type Registry struct {
	objects map[domain.Coord]domain.PlacedObject
}

// Entry pairs a coordinate with a copy of its object.
type Entry struct {
	Coord  domain.Coord
	Object domain.PlacedObject
}

func NewRegistry() *Registry {
	return &Registry{objects: make(map[domain.Coord]domain.PlacedObject)}
}

// Get returns a copy of the object at c.
func (r *Registry) Get(c domain.Coord) (domain.PlacedObject, bool) {
	obj, ok := r.objects[c]
	if !ok {
		return nil, false
	}
	return obj.Clone(), true
}

// Lookup returns the live object at c for in-place mutation by the engine.
func (r *Registry) Lookup(c domain.Coord) (domain.PlacedObject, bool) {
	obj, ok := r.objects[c]
	return obj, ok
}

// Occupied reports whether any object sits at c.
func (r *Registry) Occupied(c domain.Coord) bool {
	_, ok := r.objects[c]
	return ok
}

// Place stores obj at c unless the coordinate is taken.
func (r *Registry) Place(c domain.Coord, obj domain.PlacedObject) bool {
	if obj == nil || r.Occupied(c) {
		return false
	}
	r.objects[c] = obj
	return true
}

// Remove deletes and returns the object at c.
func (r *Registry) Remove(c domain.Coord) (domain.PlacedObject, bool) {
	obj, ok := r.objects[c]
	if ok {
		delete(r.objects, c)
	}
	return obj, ok
}

// Len is the number of placed objects.
func (r *Registry) Len() int {
	return len(r.objects)
}

// Coords returns occupied coordinates in row-major order.
func (r *Registry) Coords() []domain.Coord {
	out := make([]domain.Coord, 0, len(r.objects))
	for c := range r.objects {
		out = append(out, c)
	}
	domain.SortCoords(out)
	return out
}

// All returns copies of every object in row-major order.
func (r *Registry) All() []Entry {
	coords := r.Coords()
	out := make([]Entry, 0, len(coords))
	for _, c := range coords {
		out = append(out, Entry{Coord: c, Object: r.objects[c].Clone()})
	}
	return out
}

// ShippingBin finds the (single) shipping bin.
func (r *Registry) ShippingBin() (domain.Coord, *domain.ShippingBin, bool) {
	for _, c := range r.Coords() {
		if bin, ok := r.objects[c].(*domain.ShippingBin); ok {
			return c, bin, true
		}
	}
	return domain.Coord{}, nil, false
}

// Chest returns the live chest at c.
func (r *Registry) Chest(c domain.Coord) (*domain.Chest, bool) {
	chest, ok := r.objects[c].(*domain.Chest)
	return chest, ok
}

// Jar returns the live preserves jar at c.
func (r *Registry) Jar(c domain.Coord) (*domain.PreservesJar, bool) {
	jar, ok := r.objects[c].(*domain.PreservesJar)
	return jar, ok
}

// FindFreeNear searches rings of growing radius around origin for the first
// coordinate accepted by free. Each ring is scanned row-major.
func FindFreeNear(origin domain.Coord, maxRadius int, free func(domain.Coord) bool) (domain.Coord, bool) {
	for radius := 1; radius <= maxRadius; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if max(abs(dx), abs(dy)) != radius {
					continue
				}
				c := origin.Offset(dx, dy)
				if free(c) {
					return c, true
				}
			}
		}
	}
	return domain.Coord{}, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
