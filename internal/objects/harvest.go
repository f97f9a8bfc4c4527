package objects

import (
	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/slots"
)

// Tool is the implement used on an object.
type Tool string

const (
	ToolAxe     Tool = "axe"
	ToolPickaxe Tool = "pickaxe"
	ToolScythe  Tool = "scythe"
)

// Drop yields per destroyed object.
const (
	NodeDrop        = 5
	MatureTreeWood  = 15
	SaplingTreeWood = 5
	WeedFiber       = 3
)

// Strike is the planned effect of one tool hit. Nothing is mutated until Apply.
type Strike struct {
	Coord     domain.Coord
	Next      domain.PlacedObject
	Destroyed bool
	Drops     slots.Bundle
}

// PlanStrike computes the effect of hitting the object at c with tool.
// It reports false when the tool does not apply to the object there.
func (r *Registry) PlanStrike(c domain.Coord, tool Tool, day int) (Strike, bool) {
	obj, ok := r.objects[c]
	if !ok {
		return Strike{}, false
	}

	var hp int
	var drops slots.Bundle
	switch o := obj.(type) {
	case *domain.ResourceNode:
		if (o.Resource == domain.KindWood && tool != ToolAxe) || (o.Resource == domain.KindStone && tool != ToolPickaxe) {
			return Strike{}, false
		}
		hp = o.HP
		drops = slots.Bundle{{Item: domain.ItemID(o.Resource), Qty: NodeDrop}}
	case *domain.Tree:
		if tool != ToolAxe {
			return Strike{}, false
		}
		hp = o.HP
		drops = TreeDrops(o.Stage, day)
	case *domain.Weed:
		if tool != ToolScythe {
			return Strike{}, false
		}
		hp = o.HP
		drops = slots.Bundle{{Item: domain.ItemFiber, Qty: WeedFiber}}
	default:
		return Strike{}, false
	}

	if hp-1 <= 0 {
		return Strike{Coord: c, Destroyed: true, Drops: drops}, true
	}
	next := obj.Clone()
	switch o := next.(type) {
	case *domain.ResourceNode:
		o.HP = hp - 1
	case *domain.Tree:
		o.HP = hp - 1
	case *domain.Weed:
		o.HP = hp - 1
	}
	return Strike{Coord: c, Next: next}, true
}

// Apply commits a planned strike.
func (r *Registry) Apply(s Strike) {
	if s.Destroyed {
		delete(r.objects, s.Coord)
		return
	}
	if s.Next != nil {
		r.objects[s.Coord] = s.Next
	}
}

// TreeDrops is the yield of felling a tree. Mature trees drop an acorn on even days.
func TreeDrops(stage, day int) slots.Bundle {
	switch stage {
	case domain.TreeMature:
		b := slots.Bundle{{Item: domain.ItemWood, Qty: MatureTreeWood}}
		if day%2 == 0 {
			b = append(b, domain.ItemStack{Item: domain.ItemAcorn, Qty: 1})
		}
		return b
	case domain.TreeSapling:
		return slots.Bundle{{Item: domain.ItemWood, Qty: SaplingTreeWood}}
	default:
		return slots.Bundle{}
	}
}

// NewTree is a freshly planted acorn.
func NewTree() *domain.Tree {
	return &domain.Tree{Stage: domain.TreeSeed, HP: domain.TreeHP[domain.TreeSeed]}
}

// GrowTrees advances every tree by a day, regardless of watering.
func (r *Registry) GrowTrees() {
	for _, obj := range r.objects {
		tree, ok := obj.(*domain.Tree)
		if !ok || tree.Stage >= domain.TreeMature {
			continue
		}
		tree.DaysInStage++
		if tree.DaysInStage >= domain.TreeDaysPerStage {
			tree.Stage++
			tree.DaysInStage = 0
			tree.HP = domain.TreeHP[tree.Stage]
		}
	}
}
