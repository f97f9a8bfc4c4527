package domain

// CropID identifies a crop definition.
type CropID string

const (
	CropParsnip   CropID = "parsnip"
	CropPotato    CropID = "potato"
	CropBlueberry CropID = "blueberry"
	CropCranberry CropID = "cranberry"
)

// CropDef describes how a crop grows.
type CropDef struct {
	ID                 CropID   `json:"id"`
	Name               string   `json:"name"`
	SeedItem           ItemID   `json:"seedItemId"`
	ProduceItem        ItemID   `json:"produceItemId"`
	GrowthDaysPerStage []int    `json:"growthDaysPerStage"`
	RegrowDays         *int     `json:"regrowDays,omitempty"`
	HarvestQty         int      `json:"harvestQuantity,omitempty"`
	Seasons            []Season `json:"seasons"`
}

// StageCount is the number of growth stages. A crop at this stage is harvestable.
func (d CropDef) StageCount() int {
	return len(d.GrowthDaysPerStage)
}

// DaysForStage returns the configured day count for a stage, defaulting to 1.
func (d CropDef) DaysForStage(stage int) int {
	if stage < 0 || stage >= len(d.GrowthDaysPerStage) || d.GrowthDaysPerStage[stage] <= 0 {
		return 1
	}
	return d.GrowthDaysPerStage[stage]
}

// Yield is the produce count per harvest.
func (d CropDef) Yield() int {
	if d.HarvestQty <= 0 {
		return 1
	}
	return d.HarvestQty
}

// Regrows reports whether harvesting leaves the plant in place.
func (d CropDef) Regrows() bool {
	return d.RegrowDays != nil
}

// InSeason reports whether the crop may grow in the given season.
func (d CropDef) InSeason(s Season) bool {
	for _, v := range d.Seasons {
		if v == s {
			return true
		}
	}
	return false
}

// CropState is the per-tile growth state of a planted crop.
type CropState struct {
	Crop        CropID `json:"cropId"`
	Stage       int    `json:"stage"`
	DaysInStage int    `json:"daysInStage"`
	Harvests    int    `json:"harvests,omitempty"`
}

// TileState is the farming state of a single grid tile.
type TileState struct {
	Tilled  bool       `json:"tilled"`
	Watered bool       `json:"watered"`
	Crop    *CropState `json:"crop"`
}

// IsDefault reports whether the tile carries no state and should not be stored.
func (t TileState) IsDefault() bool {
	return !t.Tilled && !t.Watered && t.Crop == nil
}

// Clone returns a deep copy.
func (t TileState) Clone() TileState {
	out := t
	if t.Crop != nil {
		c := *t.Crop
		out.Crop = &c
	}
	return out
}
