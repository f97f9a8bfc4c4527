package farm

import "github.com/osse101/CokeFamer_Go/internal/domain"

// requiredDays is the day count for the crop's current stage. A regrowing crop that
// was harvested and sits one stage before ripe waits its regrow period instead.
func requiredDays(def domain.CropDef, crop domain.CropState) int {
	last := def.StageCount() - 1
	if def.RegrowDays != nil && crop.Harvests > 0 && crop.Stage == last {
		return max(*def.RegrowDays, 1)
	}
	return def.DaysForStage(crop.Stage)
}

// GrowWatered advances every watered, unripe crop by one day.
func (f *Field) GrowWatered() {
	for c, t := range f.tiles {
		if !t.Watered || t.Crop == nil {
			continue
		}
		def, ok := f.crops.Crop(t.Crop.Crop)
		if !ok || t.Crop.Stage >= def.StageCount() {
			continue
		}
		crop := *t.Crop
		crop.DaysInStage++
		if crop.DaysInStage >= requiredDays(def, crop) {
			crop.Stage++
			crop.DaysInStage = 0
		}
		t.Crop = &crop
		f.tiles[c] = t
	}
}

// ClearWatering dries every tile.
func (f *Field) ClearWatering() {
	for c, t := range f.tiles {
		if t.Watered {
			t.Watered = false
			f.tiles[c] = t
		}
	}
}

// KillOutOfSeason removes crops that cannot grow in season, regrowing or not.
// It returns how many crops died.
func (f *Field) KillOutOfSeason(season domain.Season) int {
	killed := 0
	for c, t := range f.tiles {
		if t.Crop == nil {
			continue
		}
		def, ok := f.crops.Crop(t.Crop.Crop)
		if ok && def.InSeason(season) {
			continue
		}
		t.Crop = nil
		f.Set(c, t)
		killed++
	}
	return killed
}

// WaterAt waters a tile if it is tilled. Used by rain and sprinklers,
// which both skip untilled ground.
func (f *Field) WaterAt(c domain.Coord) bool {
	t, ok := f.tiles[c]
	if !ok || !t.Tilled || t.Watered {
		return false
	}
	t.Watered = true
	f.tiles[c] = t
	return true
}

// TilledCoords lists tilled tiles, ordered.
func (f *Field) TilledCoords() []domain.Coord {
	out := make([]domain.Coord, 0, len(f.tiles))
	for c, t := range f.tiles {
		if t.Tilled {
			out = append(out, c)
		}
	}
	domain.SortCoords(out)
	return out
}
