package save

import (
	"fmt"

	"github.com/osse101/CokeFamer_Go/internal/domain"
)

// ObjectState is the tagged on-disk form of a placed object. ID selects the
// variant; only that variant's fields are set.
type ObjectState struct {
	ID          domain.ObjectKind `json:"id"`
	Slots       domain.Slots      `json:"slots,omitempty"`
	HP          *int              `json:"hp,omitempty"`
	Stage       *int              `json:"stage,omitempty"`
	DaysInStage *int              `json:"daysInStage,omitempty"`
	Input       *domain.ItemID    `json:"input,omitempty"`
	Output      *domain.ItemID    `json:"output,omitempty"`
	ReadyAt     *int              `json:"readyAtAbsMinutes,omitempty"`
}

// EncodeObject converts a placed object to its tagged record.
func EncodeObject(obj domain.PlacedObject) ObjectState {
	switch o := obj.(type) {
	case *domain.Chest:
		return ObjectState{ID: domain.KindChest, Slots: containerSlots(o.Slots)}
	case *domain.ShippingBin:
		return ObjectState{ID: domain.KindShippingBin, Slots: containerSlots(o.Slots)}
	case *domain.ResourceNode:
		return ObjectState{ID: o.Resource, HP: domain.Ptr(o.HP)}
	case *domain.Weed:
		return ObjectState{ID: domain.KindWeed, HP: domain.Ptr(o.HP)}
	case *domain.Tree:
		return ObjectState{ID: domain.KindTree, HP: domain.Ptr(o.HP), Stage: domain.Ptr(o.Stage), DaysInStage: domain.Ptr(o.DaysInStage)}
	case *domain.SimplePlaceable:
		return ObjectState{ID: o.Placeable}
	case *domain.PreservesJar:
		c := o.Clone().(*domain.PreservesJar)
		return ObjectState{ID: domain.KindPreservesJar, Input: c.Input, Output: c.Output, ReadyAt: c.CompleteAt}
	default:
		panic(fmt.Sprintf("save: unhandled object type %T", obj))
	}
}

// DecodeObject rebuilds a placed object, filling absent fields with fresh-object values.
func DecodeObject(s ObjectState) (domain.PlacedObject, error) {
	switch s.ID {
	case domain.KindChest:
		return &domain.Chest{Slots: containerSlots(s.Slots)}, nil
	case domain.KindShippingBin:
		return &domain.ShippingBin{Slots: containerSlots(s.Slots)}, nil
	case domain.KindWood, domain.KindStone:
		return &domain.ResourceNode{Resource: s.ID, HP: positive(s.HP, domain.ResourceNodeHP)}, nil
	case domain.KindWeed:
		return &domain.Weed{HP: positive(s.HP, domain.WeedHP)}, nil
	case domain.KindTree:
		stage := clamp(valueOr(s.Stage, domain.TreeSeed), domain.TreeSeed, domain.TreeMature)
		return &domain.Tree{
			Stage:       stage,
			DaysInStage: max(valueOr(s.DaysInStage, 0), 0),
			HP:          positive(s.HP, domain.TreeHP[stage]),
		}, nil
	case domain.KindFence, domain.KindPath, domain.KindSprinkler, domain.KindQualitySprinkler:
		return &domain.SimplePlaceable{Placeable: s.ID}, nil
	case domain.KindPreservesJar:
		jar := &domain.PreservesJar{Input: s.Input, Output: s.Output, CompleteAt: s.ReadyAt}
		return jar.Clone(), nil
	default:
		return nil, fmt.Errorf("%w: unknown object id %q", domain.ErrMalformedSave, s.ID)
	}
}

func containerSlots(s domain.Slots) domain.Slots {
	out := domain.NewSlots(domain.ContainerSize)
	for i := 0; i < len(s) && i < domain.ContainerSize; i++ {
		if s[i] != nil && s[i].Qty > 0 {
			out[i] = s[i].Clone()
		}
	}
	return out
}

func valueOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func positive(p *int, def int) int {
	if p == nil || *p <= 0 {
		return def
	}
	return *p
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
