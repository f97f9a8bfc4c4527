package engine

import "github.com/osse101/CokeFamer_Go/internal/config"

// Action names a player action. Costed actions look their price up in the tuning.
type Action string

const (
	ActionHoe       Action = "hoe"
	ActionWater     Action = "water"
	ActionPlant     Action = "plant"
	ActionHarvest   Action = "harvest"
	ActionChop      Action = "chop"
	ActionMine      Action = "mine"
	ActionScythe    Action = "scythe"
	ActionPlantTree Action = "plant_tree"

	ActionPlace       Action = "place"
	ActionPickup      Action = "pickup"
	ActionInteractJar Action = "interact_jar"
	ActionBuy         Action = "buy"
	ActionCraft       Action = "craft"
	ActionEat         Action = "eat"
	ActionQuest       Action = "complete_quest"
	ActionTalk        Action = "talk"
	ActionGift        Action = "gift"
	ActionImport      Action = "import"
)

// CostOf is the time and energy an action takes.
func (e *Engine) CostOf(a Action) config.ActionCost {
	return e.tuning.Cost(string(a))
}

// CanAfford reports whether the player has the energy for an action.
func (e *Engine) CanAfford(a Action) bool {
	return e.player.Energy >= e.CostOf(a).Energy
}

// spend charges a cost. Energy never drops below zero. Minutes may run past
// the day end; the next clock tick rolls the day over.
func (e *Engine) spend(c config.ActionCost) {
	e.minutes += c.Minutes
	e.player.Energy = max(0, e.player.Energy-c.Energy)
}
