package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/slots"
)

func TestPlaceAndRemove(t *testing.T) {
	r := NewRegistry()
	c := domain.At(1, 2)

	require.True(t, r.Place(c, &domain.Weed{HP: domain.WeedHP}))
	assert.False(t, r.Place(c, &domain.Chest{Slots: domain.NewSlots(domain.ContainerSize)}), "one object per tile")
	assert.True(t, r.Occupied(c))

	obj, ok := r.Remove(c)
	require.True(t, ok)
	assert.Equal(t, domain.KindWeed, obj.Kind())
	assert.False(t, r.Occupied(c))
}

func TestGetReturnsCopy(t *testing.T) {
	r := NewRegistry()
	c := domain.At(0, 0)
	r.Place(c, &domain.Chest{Slots: domain.NewSlots(domain.ContainerSize)})

	obj, _ := r.Get(c)
	obj.(*domain.Chest).Slots[0] = &domain.ItemStack{Item: domain.ItemWood, Qty: 1}

	live, _ := r.Chest(c)
	assert.Nil(t, live.Slots[0])
}

func TestStrike(t *testing.T) {
	tests := []struct {
		name      string
		obj       domain.PlacedObject
		tool      Tool
		day       int
		applies   bool
		destroyed bool
		drops     slots.Bundle
	}{
		{"wood node survives first hit", &domain.ResourceNode{Resource: domain.KindWood, HP: 3}, ToolAxe, 1, true, false, nil},
		{"wood node breaks on last hit", &domain.ResourceNode{Resource: domain.KindWood, HP: 1}, ToolAxe, 1, true, true, slots.Bundle{{Item: domain.ItemWood, Qty: 5}}},
		{"stone needs a pickaxe", &domain.ResourceNode{Resource: domain.KindStone, HP: 1}, ToolAxe, 1, false, false, nil},
		{"stone breaks", &domain.ResourceNode{Resource: domain.KindStone, HP: 1}, ToolPickaxe, 1, true, true, slots.Bundle{{Item: domain.ItemStone, Qty: 5}}},
		{"weed scythed", &domain.Weed{HP: 1}, ToolScythe, 1, true, true, slots.Bundle{{Item: domain.ItemFiber, Qty: 3}}},
		{"weed ignores axe", &domain.Weed{HP: 1}, ToolAxe, 1, false, false, nil},
		{"mature tree on odd day", &domain.Tree{Stage: 2, HP: 1}, ToolAxe, 3, true, true, slots.Bundle{{Item: domain.ItemWood, Qty: 15}}},
		{"mature tree on even day drops acorn", &domain.Tree{Stage: 2, HP: 1}, ToolAxe, 4, true, true, slots.Bundle{{Item: domain.ItemWood, Qty: 15}, {Item: domain.ItemAcorn, Qty: 1}}},
		{"sapling", &domain.Tree{Stage: 1, HP: 1}, ToolAxe, 4, true, true, slots.Bundle{{Item: domain.ItemWood, Qty: 5}}},
		{"seed tree drops nothing", &domain.Tree{Stage: 0, HP: 1}, ToolAxe, 4, true, true, slots.Bundle{}},
		{"chest is not harvestable", &domain.Chest{}, ToolAxe, 1, false, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			c := domain.At(4, 4)
			r.Place(c, tt.obj)

			s, ok := r.PlanStrike(c, tt.tool, tt.day)
			assert.Equal(t, tt.applies, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.destroyed, s.Destroyed)
			if tt.destroyed {
				assert.Equal(t, tt.drops, s.Drops)
			}

			r.Apply(s)
			assert.Equal(t, !tt.destroyed, r.Occupied(c))
		})
	}
}

func TestStrikePlanDoesNotMutate(t *testing.T) {
	r := NewRegistry()
	c := domain.At(0, 0)
	r.Place(c, &domain.ResourceNode{Resource: domain.KindStone, HP: 3})

	s, ok := r.PlanStrike(c, ToolPickaxe, 1)
	require.True(t, ok)
	live, _ := r.Lookup(c)
	assert.Equal(t, 3, live.(*domain.ResourceNode).HP)

	r.Apply(s)
	live, _ = r.Lookup(c)
	assert.Equal(t, 2, live.(*domain.ResourceNode).HP)
}

func TestGrowTrees(t *testing.T) {
	r := NewRegistry()
	c := domain.At(0, 0)
	r.Place(c, NewTree())

	tree := func() *domain.Tree {
		obj, _ := r.Lookup(c)
		return obj.(*domain.Tree)
	}

	for i := 0; i < 2; i++ {
		r.GrowTrees()
	}
	assert.Equal(t, domain.TreeSeed, tree().Stage)
	r.GrowTrees()
	assert.Equal(t, domain.TreeSapling, tree().Stage)
	assert.Equal(t, 2, tree().HP)

	for i := 0; i < 3; i++ {
		r.GrowTrees()
	}
	assert.Equal(t, domain.TreeMature, tree().Stage)
	assert.Equal(t, 6, tree().HP)

	r.GrowTrees()
	assert.Equal(t, domain.TreeMature, tree().Stage)
	assert.Equal(t, 0, tree().DaysInStage)
}

func TestJarLifecycle(t *testing.T) {
	r := NewRegistry()
	c := domain.At(2, 2)
	r.Place(c, &domain.PreservesJar{})
	jar, ok := r.Jar(c)
	require.True(t, ok)
	require.True(t, jar.Idle())

	StartJar(jar, domain.ItemParsnip, 500, DefaultJarMinutes)
	assert.Equal(t, 680, *jar.CompleteAt)

	assert.Equal(t, 0, r.UpdateMachines(679))
	assert.NotNil(t, jar.Input)

	assert.Equal(t, 1, r.UpdateMachines(680))
	require.NotNil(t, jar.Output)
	assert.Equal(t, domain.ItemParsnipJar, *jar.Output)
	assert.Nil(t, jar.Input)
	assert.Nil(t, jar.CompleteAt)

	out, ok := CollectJar(jar)
	assert.True(t, ok)
	assert.Equal(t, domain.ItemParsnipJar, out)
	assert.True(t, jar.Idle())

	_, ok = CollectJar(jar)
	assert.False(t, ok)
}

func TestSprinklerTargets(t *testing.T) {
	r := NewRegistry()
	r.Place(domain.At(0, 0), &domain.SimplePlaceable{Placeable: domain.KindSprinkler})
	r.Place(domain.At(1, 0), &domain.SimplePlaceable{Placeable: domain.KindFence})
	r.Place(domain.At(10, 10), &domain.SimplePlaceable{Placeable: domain.KindQualitySprinkler})

	targets := r.SprinklerTargets()
	assert.Len(t, targets, 3+8)
	assert.NotContains(t, targets, domain.At(1, 0), "blocked by fence")
	assert.Contains(t, targets, domain.At(0, 1))
	assert.Contains(t, targets, domain.At(11, 11))
	assert.NotContains(t, targets, domain.At(1, 1), "basic sprinkler skips diagonals")
}

func TestFindFreeNear(t *testing.T) {
	taken := map[domain.Coord]bool{}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			taken[domain.At(dx, dy)] = true
		}
	}
	c, ok := FindFreeNear(domain.At(0, 0), 3, func(c domain.Coord) bool { return !taken[c] })
	require.True(t, ok)
	assert.Equal(t, domain.At(-2, -2), c, "first cell of the second ring")

	_, ok = FindFreeNear(domain.At(0, 0), 1, func(domain.Coord) bool { return false })
	assert.False(t, ok)
}

func TestShippingBinLookup(t *testing.T) {
	r := NewRegistry()
	_, _, ok := r.ShippingBin()
	assert.False(t, ok)

	r.Place(domain.At(5, 5), &domain.ShippingBin{Slots: domain.NewSlots(domain.ContainerSize)})
	c, bin, ok := r.ShippingBin()
	require.True(t, ok)
	assert.Equal(t, domain.At(5, 5), c)
	assert.Len(t, bin.Slots, domain.ContainerSize)
}
