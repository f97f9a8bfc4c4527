// Package farm owns the sparse tile map and the crop growth state machine.
// Callers check object occupancy before invoking tile actions.
package farm

import (
	"github.com/osse101/CokeFamer_Go/internal/domain"
)

// CropLookup resolves crop definitions. *content.Registry satisfies it.
type CropLookup interface {
	Crop(id domain.CropID) (domain.CropDef, bool)
}

// Field is the sparse tile map. Default tiles are never stored.
type Field struct {
	crops CropLookup
	tiles map[domain.Coord]domain.TileState
}

// TileEntry pairs a coordinate with its state.
type TileEntry struct {
	domain.Coord
	State domain.TileState `json:"state"`
}

// NewField returns an empty field.
func NewField(crops CropLookup) *Field {
	return &Field{crops: crops, tiles: make(map[domain.Coord]domain.TileState)}
}

// Get returns a copy of the tile at c.
func (f *Field) Get(c domain.Coord) domain.TileState {
	return f.tiles[c].Clone()
}

// Set stores a tile, dropping it if it is default.
func (f *Field) Set(c domain.Coord, t domain.TileState) {
	if !t.Tilled {
		t.Watered = false
	}
	if t.IsDefault() {
		delete(f.tiles, c)
		return
	}
	f.tiles[c] = t.Clone()
}

// Farmed reports whether the tile carries any state.
func (f *Field) Farmed(c domain.Coord) bool {
	_, ok := f.tiles[c]
	return ok
}

// All returns copies of all stored tiles ordered by row then column.
func (f *Field) All() []TileEntry {
	coords := make([]domain.Coord, 0, len(f.tiles))
	for c := range f.tiles {
		coords = append(coords, c)
	}
	domain.SortCoords(coords)
	out := make([]TileEntry, 0, len(coords))
	for _, c := range coords {
		out = append(out, TileEntry{Coord: c, State: f.tiles[c].Clone()})
	}
	return out
}

// Len is the number of stored tiles.
func (f *Field) Len() int {
	return len(f.tiles)
}

// Till marks bare ground as tilled.
func (f *Field) Till(c domain.Coord) bool {
	t := f.tiles[c]
	if t.Tilled {
		return false
	}
	t.Tilled = true
	f.tiles[c] = t
	return true
}

// Water wets a tilled, dry tile.
func (f *Field) Water(c domain.Coord) bool {
	t, ok := f.tiles[c]
	if !ok || !t.Tilled || t.Watered {
		return false
	}
	t.Watered = true
	f.tiles[c] = t
	return true
}

// CanPlant checks everything except seed stock.
func (f *Field) CanPlant(c domain.Coord, def domain.CropDef, season domain.Season) bool {
	t, ok := f.tiles[c]
	return ok && t.Tilled && t.Crop == nil && def.InSeason(season)
}

// Plant puts a fresh crop on the tile. Seed consumption is the caller's job.
func (f *Field) Plant(c domain.Coord, def domain.CropDef, season domain.Season) bool {
	if !f.CanPlant(c, def, season) {
		return false
	}
	t := f.tiles[c]
	t.Crop = &domain.CropState{Crop: def.ID}
	f.tiles[c] = t
	return true
}

// IsHarvestable reports whether the crop at c reached its final stage.
func (f *Field) IsHarvestable(c domain.Coord) bool {
	t, ok := f.tiles[c]
	if !ok || t.Crop == nil {
		return false
	}
	def, ok := f.crops.Crop(t.Crop.Crop)
	return ok && t.Crop.Stage >= def.StageCount()
}

// Harvest returns the produce for a ripe crop. Regrowing crops drop back one stage,
// others are cleared. The returned stack is nil when nothing was harvested.
func (f *Field) Harvest(c domain.Coord) *domain.ItemStack {
	if !f.IsHarvestable(c) {
		return nil
	}
	t := f.tiles[c]
	def, _ := f.crops.Crop(t.Crop.Crop)
	drop := &domain.ItemStack{Item: def.ProduceItem, Qty: def.Yield()}

	if def.Regrows() {
		crop := *t.Crop
		crop.Stage = def.StageCount() - 1
		crop.DaysInStage = 0
		crop.Harvests++
		t.Crop = &crop
	} else {
		t.Crop = nil
	}
	f.Set(c, t)
	return drop
}

// PeekHarvest returns what Harvest would yield without mutating.
func (f *Field) PeekHarvest(c domain.Coord) *domain.ItemStack {
	if !f.IsHarvestable(c) {
		return nil
	}
	def, _ := f.crops.Crop(f.tiles[c].Crop.Crop)
	return &domain.ItemStack{Item: def.ProduceItem, Qty: def.Yield()}
}
