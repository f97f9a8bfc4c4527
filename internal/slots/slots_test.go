package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CokeFamer_Go/internal/domain"
)

type stackLimits map[domain.ItemID]int

func (l stackLimits) MaxStack(id domain.ItemID) int { return l[id] }

var limits = stackLimits{domain.ItemWood: 10, domain.ItemStone: 10, domain.ItemParsnipSeed: 999}

func stack(id domain.ItemID, qty int) *domain.ItemStack {
	return &domain.ItemStack{Item: id, Qty: qty}
}

func TestPickup(t *testing.T) {
	s := domain.NewSlots(3)
	s[1] = stack(domain.ItemWood, 4)

	assert.Nil(t, Pickup(s, 0), "empty slot")
	assert.Nil(t, Pickup(s, -1), "negative index")
	assert.Nil(t, Pickup(s, 3), "out of range")
	assert.Equal(t, stack(domain.ItemWood, 4), Pickup(s, 1))
	assert.Nil(t, s[1])
}

func TestSplitHalf(t *testing.T) {
	tests := []struct {
		name     string
		qty      int
		wantTake int
		wantLeft int
	}{
		{"odd takes the larger half", 5, 3, 2},
		{"even splits evenly", 4, 2, 2},
		{"single unit behaves like pickup", 1, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.NewSlots(1)
			s[0] = stack(domain.ItemWood, tt.qty)
			got := SplitHalf(s, 0)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantTake, got.Qty)
			if tt.wantLeft == 0 {
				assert.Nil(t, s[0])
			} else {
				assert.Equal(t, tt.wantLeft, s[0].Qty)
			}
		})
	}
}

func TestPlace(t *testing.T) {
	t.Run("into empty slot", func(t *testing.T) {
		s := domain.NewSlots(2)
		assert.Nil(t, Place(limits, s, 0, stack(domain.ItemWood, 4)))
		assert.Equal(t, stack(domain.ItemWood, 4), s[0])
	})

	t.Run("into empty slot over capacity", func(t *testing.T) {
		s := domain.NewSlots(2)
		left := Place(limits, s, 0, stack(domain.ItemWood, 14))
		assert.Equal(t, stack(domain.ItemWood, 10), s[0])
		assert.Equal(t, stack(domain.ItemWood, 4), left)
	})

	t.Run("tops up matching stack", func(t *testing.T) {
		s := domain.NewSlots(1)
		s[0] = stack(domain.ItemWood, 8)
		left := Place(limits, s, 0, stack(domain.ItemWood, 5))
		assert.Equal(t, 10, s[0].Qty)
		assert.Equal(t, stack(domain.ItemWood, 3), left)
	})

	t.Run("swaps different item", func(t *testing.T) {
		s := domain.NewSlots(1)
		s[0] = stack(domain.ItemStone, 2)
		left := Place(limits, s, 0, stack(domain.ItemWood, 5))
		assert.Equal(t, stack(domain.ItemWood, 5), s[0])
		assert.Equal(t, stack(domain.ItemStone, 2), left)
	})

	t.Run("invalid index is a no-op", func(t *testing.T) {
		s := domain.NewSlots(1)
		held := stack(domain.ItemWood, 5)
		assert.Equal(t, held, Place(limits, s, 4, held))
		assert.Nil(t, s[0])
	})

	t.Run("nil input is a no-op", func(t *testing.T) {
		s := domain.NewSlots(1)
		assert.Nil(t, Place(limits, s, 0, nil))
		assert.Nil(t, s[0])
	})
}

func TestPlaceOne(t *testing.T) {
	t.Run("into empty slot", func(t *testing.T) {
		s := domain.NewSlots(1)
		res := PlaceOne(limits, s, 0, stack(domain.ItemWood, 3))
		assert.True(t, res.OK)
		assert.Equal(t, stack(domain.ItemWood, 2), res.Remaining)
		assert.Equal(t, stack(domain.ItemWood, 1), s[0])
	})

	t.Run("last unit leaves nothing in hand", func(t *testing.T) {
		s := domain.NewSlots(1)
		s[0] = stack(domain.ItemWood, 1)
		res := PlaceOne(limits, s, 0, stack(domain.ItemWood, 1))
		assert.True(t, res.OK)
		assert.Nil(t, res.Remaining)
		assert.Equal(t, 2, s[0].Qty)
	})

	t.Run("rejects different item", func(t *testing.T) {
		s := domain.NewSlots(1)
		s[0] = stack(domain.ItemStone, 1)
		held := stack(domain.ItemWood, 3)
		res := PlaceOne(limits, s, 0, held)
		assert.False(t, res.OK)
		assert.Equal(t, held, res.Remaining)
		assert.Equal(t, stack(domain.ItemStone, 1), s[0])
	})

	t.Run("rejects full stack", func(t *testing.T) {
		s := domain.NewSlots(1)
		s[0] = stack(domain.ItemWood, 10)
		res := PlaceOne(limits, s, 0, stack(domain.ItemWood, 3))
		assert.False(t, res.OK)
		assert.Equal(t, 10, s[0].Qty)
	})
}

func TestAddAndConsume(t *testing.T) {
	t.Run("fills existing stacks before empty slots", func(t *testing.T) {
		s := domain.NewSlots(3)
		s[1] = stack(domain.ItemWood, 7)
		require.True(t, Add(limits, s, domain.ItemWood, 5))
		assert.Equal(t, stack(domain.ItemWood, 2), s[0])
		assert.Equal(t, 10, s[1].Qty)
		assert.Equal(t, 12, Count(s, domain.ItemWood))
	})

	t.Run("all or nothing when full", func(t *testing.T) {
		s := domain.NewSlots(2)
		s[0] = stack(domain.ItemStone, 10)
		s[1] = stack(domain.ItemWood, 9)
		before := s.Clone()
		assert.False(t, Add(limits, s, domain.ItemWood, 2))
		assert.Equal(t, before, s)
		assert.True(t, Add(limits, s, domain.ItemWood, 1))
	})

	t.Run("unknown item never fits", func(t *testing.T) {
		s := domain.NewSlots(2)
		assert.False(t, CanAdd(limits, s, "mystery", 1))
	})

	t.Run("consume spans stacks and clears emptied slots", func(t *testing.T) {
		s := domain.NewSlots(3)
		s[0] = stack(domain.ItemWood, 3)
		s[2] = stack(domain.ItemWood, 4)
		require.True(t, Consume(s, domain.ItemWood, 5))
		assert.Nil(t, s[0])
		assert.Equal(t, 2, s[2].Qty)
	})

	t.Run("consume refuses when short", func(t *testing.T) {
		s := domain.NewSlots(1)
		s[0] = stack(domain.ItemWood, 3)
		assert.False(t, Consume(s, domain.ItemWood, 4))
		assert.Equal(t, 3, s[0].Qty)
	})

	t.Run("count matches slot sum after mixed operations", func(t *testing.T) {
		s := domain.NewSlots(4)
		ops := []struct {
			add bool
			qty int
		}{{true, 7}, {true, 9}, {false, 4}, {true, 11}, {false, 13}}
		want := 0
		for _, op := range ops {
			if op.add && Add(limits, s, domain.ItemWood, op.qty) {
				want += op.qty
			}
			if !op.add && Consume(s, domain.ItemWood, op.qty) {
				want -= op.qty
			}
		}
		assert.Equal(t, want, Count(s, domain.ItemWood))
		for _, st := range s {
			if st != nil {
				assert.LessOrEqual(t, st.Qty, 10)
				assert.Positive(t, st.Qty)
			}
		}
	})
}

func TestCanAddAll(t *testing.T) {
	s := domain.NewSlots(1)
	assert.True(t, CanAddAll(limits, s, Bundle{{Item: domain.ItemWood, Qty: 10}}))
	assert.False(t, CanAddAll(limits, s, Bundle{{Item: domain.ItemWood, Qty: 1}, {Item: domain.ItemStone, Qty: 1}}))
	assert.Nil(t, s[0], "trial run must not mutate")
}

func TestAddAllKeepsOrder(t *testing.T) {
	s := domain.NewSlots(3)
	require.True(t, AddAll(limits, s, Bundle{{Item: domain.ItemWood, Qty: 2}, {Item: domain.ItemStone, Qty: 1}}))
	assert.Equal(t, stack(domain.ItemWood, 2), s[0])
	assert.Equal(t, stack(domain.ItemStone, 1), s[1])
	assert.Nil(t, s[2])
}

func TestNormalize(t *testing.T) {
	s := domain.Slots{stack(domain.ItemWood, 1), stack(domain.ItemStone, 0)}
	out := Normalize(s, 3)
	assert.Len(t, out, 3)
	assert.Equal(t, stack(domain.ItemWood, 1), out[0])
	assert.Nil(t, out[1])
	assert.True(t, IsEmpty(domain.NewSlots(2)))
	assert.False(t, IsEmpty(out))
}
