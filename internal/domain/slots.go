package domain

// Container sizes.
const (
	InventorySize = 24
	ContainerSize = 24
)

// ItemStack is a positive quantity of one item.
type ItemStack struct {
	Item ItemID `json:"itemId"`
	Qty  int    `json:"qty"`
}

// Clone returns a copy of the stack, or nil for an empty slot.
func (s *ItemStack) Clone() *ItemStack {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// Slots is an ordered array of optional stacks. A nil entry is an empty slot.
type Slots []*ItemStack

// NewSlots returns n empty slots.
func NewSlots(n int) Slots {
	return make(Slots, n)
}

// Clone deep-copies the slot array.
func (s Slots) Clone() Slots {
	if s == nil {
		return nil
	}
	out := make(Slots, len(s))
	for i, st := range s {
		out[i] = st.Clone()
	}
	return out
}

// Player is the mutable state an action spends from: gold, energy and the inventory.
type Player struct {
	Gold      int
	Energy    int
	Inventory Slots
}
