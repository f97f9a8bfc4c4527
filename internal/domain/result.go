package domain

// Reason is a machine-readable code explaining why a gameplay action was rejected.
type Reason string

const (
	ReasonQty           Reason = "qty"
	ReasonGold          Reason = "gold"
	ReasonInvFull       Reason = "inv_full"
	ReasonNotForSale    Reason = "not_for_sale"
	ReasonNoRecipe      Reason = "no_recipe"
	ReasonMissing       Reason = "missing"
	ReasonNotAJar       Reason = "not_a_jar"
	ReasonProcessing    Reason = "processing"
	ReasonNoInput       Reason = "no_input"
	ReasonBadInput      Reason = "bad_input"
	ReasonBusy          Reason = "busy"
	ReasonNotEmpty      Reason = "not_empty"
	ReasonNotAChest     Reason = "not_a_chest"
	ReasonAlreadyTalked Reason = "already_talked"
	ReasonAlreadyGifted Reason = "already_gifted"
	ReasonUnknownNpc    Reason = "unknown_npc"
	ReasonUnknownItem   Reason = "unknown_item"
	ReasonMissingItem   Reason = "missing_item"
	ReasonNoGiftItems   Reason = "no_gift_items"
	ReasonNoQuest       Reason = "no_quest"
	ReasonCompleted     Reason = "completed"
	ReasonParse         Reason = "parse"
	ReasonJSON          Reason = "json"
	ReasonNotEdible     Reason = "not_edible"
	ReasonEnergy        Reason = "energy"
)

// Result is the outcome of a gameplay action.
type Result struct {
	OK     bool   `json:"ok"`
	Reason Reason `json:"reason,omitempty"`
}

// Ok is the successful Result.
func Ok() Result {
	return Result{OK: true}
}

// Fail builds a rejected Result.
func Fail(r Reason) Result {
	return Result{Reason: r}
}

// PlaceOneResult is returned by single-unit slot moves.
type PlaceOneResult struct {
	OK        bool       `json:"ok"`
	Remaining *ItemStack `json:"remaining"`
}

// SleepResult summarises the shipping-bin sale at day rollover.
type SleepResult struct {
	ShippedGold int `json:"shippedGold"`
	ItemsSold   int `json:"itemsSold"`
}

// JarResult is returned by preserves-jar interaction.
type JarResult struct {
	OK        bool       `json:"ok"`
	Reason    Reason     `json:"reason,omitempty"`
	Inserted  *ItemID    `json:"inserted,omitempty"`
	Collected *ItemStack `json:"collected,omitempty"`
}

// GiftResult is returned by giftToNpc.
type GiftResult struct {
	OK         bool      `json:"ok"`
	Reason     Reason    `json:"reason,omitempty"`
	Item       ItemID    `json:"itemId,omitempty"`
	Taste      GiftTaste `json:"taste,omitempty"`
	Delta      int       `json:"delta,omitempty"`
	Friendship int       `json:"friendship"`
}
