// Package slots implements stack manipulation over any slot array:
// the player inventory, chests and the shipping bin all share it.
package slots

import "github.com/osse101/CokeFamer_Go/internal/domain"

// MaxStacker resolves stack limits. *content.Registry satisfies it.
type MaxStacker interface {
	MaxStack(id domain.ItemID) int
}

func valid(s domain.Slots, i int) bool {
	return i >= 0 && i < len(s)
}

func empty(st *domain.ItemStack) bool {
	return st == nil || st.Qty <= 0
}

// Pickup removes and returns the whole stack at i.
func Pickup(s domain.Slots, i int) *domain.ItemStack {
	if !valid(s, i) || empty(s[i]) {
		return nil
	}
	st := s[i]
	s[i] = nil
	return st
}

// SplitHalf takes the larger half, ceil(qty/2), leaving the rest in place.
func SplitHalf(s domain.Slots, i int) *domain.ItemStack {
	if !valid(s, i) || empty(s[i]) {
		return nil
	}
	if s[i].Qty <= 1 {
		return Pickup(s, i)
	}
	take := (s[i].Qty + 1) / 2
	s[i].Qty -= take
	return &domain.ItemStack{Item: s[i].Item, Qty: take}
}

// Place drops a held stack into slot i and returns what the caller is left holding:
// the overflow when stacking, the previous occupant when swapping, or nil.
func Place(reg MaxStacker, s domain.Slots, i int, held *domain.ItemStack) *domain.ItemStack {
	if !valid(s, i) || empty(held) {
		return held
	}
	limit := reg.MaxStack(held.Item)
	if limit <= 0 {
		return held
	}

	cur := s[i]
	switch {
	case empty(cur):
		put := min(held.Qty, limit)
		s[i] = &domain.ItemStack{Item: held.Item, Qty: put}
		return leftover(held.Item, held.Qty-put)
	case cur.Item == held.Item:
		put := min(held.Qty, limit-cur.Qty)
		if put < 0 {
			put = 0
		}
		cur.Qty += put
		return leftover(held.Item, held.Qty-put)
	default:
		s[i] = &domain.ItemStack{Item: held.Item, Qty: min(held.Qty, limit)}
		return cur
	}
}

// PlaceOne moves a single unit of held into slot i.
func PlaceOne(reg MaxStacker, s domain.Slots, i int, held *domain.ItemStack) domain.PlaceOneResult {
	if !valid(s, i) || empty(held) {
		return domain.PlaceOneResult{Remaining: held}
	}
	limit := reg.MaxStack(held.Item)
	cur := s[i]
	switch {
	case empty(cur):
		if limit < 1 {
			return domain.PlaceOneResult{Remaining: held}
		}
		s[i] = &domain.ItemStack{Item: held.Item, Qty: 1}
	case cur.Item == held.Item && cur.Qty < limit:
		cur.Qty++
	default:
		return domain.PlaceOneResult{Remaining: held}
	}
	return domain.PlaceOneResult{OK: true, Remaining: leftover(held.Item, held.Qty-1)}
}

func leftover(id domain.ItemID, qty int) *domain.ItemStack {
	if qty <= 0 {
		return nil
	}
	return &domain.ItemStack{Item: id, Qty: qty}
}

// IsEmpty reports whether every slot is unset.
func IsEmpty(s domain.Slots) bool {
	for _, st := range s {
		if !empty(st) {
			return false
		}
	}
	return true
}

// Normalize sizes s to n slots, dropping zero-quantity stacks.
func Normalize(s domain.Slots, n int) domain.Slots {
	out := domain.NewSlots(n)
	for i := 0; i < n && i < len(s); i++ {
		if !empty(s[i]) {
			out[i] = s[i].Clone()
		}
	}
	return out
}
