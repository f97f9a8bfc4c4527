package slots

import "github.com/osse101/CokeFamer_Go/internal/domain"

// Count sums the quantity of id across all slots.
func Count(s domain.Slots, id domain.ItemID) int {
	total := 0
	for _, st := range s {
		if st != nil && st.Item == id {
			total += st.Qty
		}
	}
	return total
}

// CanAdd reports whether qty units of id fit, topping up existing stacks first.
func CanAdd(reg MaxStacker, s domain.Slots, id domain.ItemID, qty int) bool {
	if qty <= 0 {
		return true
	}
	limit := reg.MaxStack(id)
	if limit <= 0 {
		return false
	}
	room := 0
	for _, st := range s {
		switch {
		case empty(st):
			room += limit
		case st.Item == id && st.Qty < limit:
			room += limit - st.Qty
		}
		if room >= qty {
			return true
		}
	}
	return false
}

// Add inserts qty units of id or nothing at all.
func Add(reg MaxStacker, s domain.Slots, id domain.ItemID, qty int) bool {
	if qty <= 0 {
		return true
	}
	if !CanAdd(reg, s, id, qty) {
		return false
	}
	limit := reg.MaxStack(id)
	remaining := qty

	for _, st := range s {
		if empty(st) || st.Item != id || st.Qty >= limit {
			continue
		}
		put := min(remaining, limit-st.Qty)
		st.Qty += put
		remaining -= put
		if remaining == 0 {
			return true
		}
	}

	for i := range s {
		if !empty(s[i]) {
			continue
		}
		put := min(remaining, limit)
		s[i] = &domain.ItemStack{Item: id, Qty: put}
		remaining -= put
		if remaining == 0 {
			return true
		}
	}
	return remaining == 0
}

// Consume removes qty units of id, taking from the first slots first, or nothing at all.
func Consume(s domain.Slots, id domain.ItemID, qty int) bool {
	if qty <= 0 {
		return true
	}
	if Count(s, id) < qty {
		return false
	}
	remaining := qty
	for i, st := range s {
		if st == nil || st.Item != id {
			continue
		}
		take := min(st.Qty, remaining)
		st.Qty -= take
		remaining -= take
		if st.Qty <= 0 {
			s[i] = nil
		}
		if remaining == 0 {
			break
		}
	}
	return true
}

// Bundle is an ordered list of items added together. Order decides which
// slots each entry lands in.
type Bundle []domain.ItemStack

// CanAddAll reports whether every entry of b fits at the same time.
func CanAddAll(reg MaxStacker, s domain.Slots, b Bundle) bool {
	return AddAll(reg, s.Clone(), b)
}

// AddAll adds the entries of b in order. It stops at the first entry that does
// not fit, so callers check CanAddAll first.
func AddAll(reg MaxStacker, s domain.Slots, b Bundle) bool {
	for _, st := range b {
		if !Add(reg, s, st.Item, st.Qty) {
			return false
		}
	}
	return true
}
