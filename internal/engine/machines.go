package engine

import (
	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/objects"
	"github.com/osse101/CokeFamer_Go/internal/slots"
)

// InteractPreservesJar collects finished preserves, or loads an idle jar.
// An empty input picks the first produce in jar priority order.
func (e *Engine) InteractPreservesJar(x, y int, input domain.ItemID) domain.JarResult {
	c := domain.At(x, y)
	e.objects.UpdateMachines(e.AbsoluteMinutes())

	jar, ok := e.objects.Jar(c)
	if !ok {
		return e.jarResult(domain.JarResult{Reason: domain.ReasonNotAJar})
	}

	if jar.Output != nil {
		out := *jar.Output
		if !slots.CanAdd(e.content, e.player.Inventory, out, 1) {
			return e.jarResult(domain.JarResult{Reason: domain.ReasonInvFull})
		}
		objects.CollectJar(jar)
		slots.Add(e.content, e.player.Inventory, out, 1)
		return e.jarResult(domain.JarResult{OK: true, Collected: &domain.ItemStack{Item: out, Qty: 1}})
	}

	if jar.CompleteAt != nil {
		return e.jarResult(domain.JarResult{Reason: domain.ReasonProcessing})
	}

	if input == "" {
		for _, id := range objects.JarInputPriority {
			if slots.Count(e.player.Inventory, id) > 0 {
				input = id
				break
			}
		}
		if input == "" {
			return e.jarResult(domain.JarResult{Reason: domain.ReasonNoInput})
		}
	} else {
		if _, ok := objects.JarProduct(input); !ok {
			return e.jarResult(domain.JarResult{Reason: domain.ReasonBadInput})
		}
		if slots.Count(e.player.Inventory, input) < 1 {
			return e.jarResult(domain.JarResult{Reason: domain.ReasonNoInput})
		}
	}

	slots.Consume(e.player.Inventory, input, 1)
	objects.StartJar(jar, input, e.AbsoluteMinutes(), e.tuning.JarMinutes)
	return e.jarResult(domain.JarResult{OK: true, Inserted: domain.Ptr(input)})
}

func (e *Engine) jarResult(r domain.JarResult) domain.JarResult {
	e.resolved(ActionInteractJar, r.OK, r.Reason)
	return r
}
