package objects

import "github.com/osse101/CokeFamer_Go/internal/domain"

// DefaultJarMinutes is how long a jar processes one input.
const DefaultJarMinutes = 180

// JarInputPriority is the order produce is pulled from the inventory.
var JarInputPriority = []domain.ItemID{
	domain.ItemParsnip,
	domain.ItemPotato,
	domain.ItemBlueberry,
	domain.ItemCranberry,
}

var jarProducts = map[domain.ItemID]domain.ItemID{
	domain.ItemParsnip:   domain.ItemParsnipJar,
	domain.ItemPotato:    domain.ItemPotatoJar,
	domain.ItemBlueberry: domain.ItemBlueberryJar,
	domain.ItemCranberry: domain.ItemCranberryJar,
}

// JarProduct maps an input to its preserves.
func JarProduct(input domain.ItemID) (domain.ItemID, bool) {
	out, ok := jarProducts[input]
	return out, ok
}

// StartJar loads an idle jar. The caller has already taken the input from the inventory.
func StartJar(jar *domain.PreservesJar, input domain.ItemID, now, duration int) {
	jar.Input = domain.Ptr(input)
	jar.Output = nil
	jar.CompleteAt = domain.Ptr(now + duration)
}

// CollectJar empties a jar holding finished output and returns it.
func CollectJar(jar *domain.PreservesJar) (domain.ItemID, bool) {
	if jar.Output == nil {
		return "", false
	}
	out := *jar.Output
	jar.Input, jar.Output, jar.CompleteAt = nil, nil, nil
	return out, true
}

// resolveJar finishes a jar whose timer has passed.
func resolveJar(jar *domain.PreservesJar, now int) bool {
	if jar.CompleteAt == nil || jar.Input == nil || now < *jar.CompleteAt {
		return false
	}
	out, ok := JarProduct(*jar.Input)
	if !ok {
		return false
	}
	jar.Output = domain.Ptr(out)
	jar.Input = nil
	jar.CompleteAt = nil
	return true
}

// UpdateMachines resolves every machine whose completion time has passed.
// It returns the number of machines that finished on this tick.
func (r *Registry) UpdateMachines(now int) int {
	done := 0
	for _, obj := range r.objects {
		if jar, ok := obj.(*domain.PreservesJar); ok && resolveJar(jar, now) {
			done++
		}
	}
	return done
}

// SprinklerTargets lists the coordinates every sprinkler would water, in
// sprinkler order. Coordinates holding an object are skipped.
func (r *Registry) SprinklerTargets() []domain.Coord {
	var out []domain.Coord
	for _, c := range r.Coords() {
		sp, ok := r.objects[c].(*domain.SimplePlaceable)
		if !ok {
			continue
		}
		var around []domain.Coord
		switch sp.Placeable {
		case domain.KindSprinkler:
			around = c.OrthogonalNeighbors()
		case domain.KindQualitySprinkler:
			around = c.AllNeighbors()
		default:
			continue
		}
		for _, n := range around {
			if !r.Occupied(n) {
				out = append(out, n)
			}
		}
	}
	return out
}
