package content

import (
	"fmt"
	"sync"

	"github.com/osse101/CokeFamer_Go/internal/domain"
)

// Registry is the read-only lookup over all content tables.
type Registry struct {
	items   map[domain.ItemID]domain.ItemDef
	crops   map[domain.CropID]domain.CropDef
	bySeed  map[domain.ItemID]domain.CropID
	recipes map[domain.ItemID]domain.Recipe
	npcs    map[domain.NpcID]domain.NpcDef

	itemOrder   []domain.ItemID
	recipeOrder []domain.ItemID
	npcOrder    []domain.NpcID
}

// NewRegistry indexes a validated Config.
func NewRegistry(cfg *Config) *Registry {
	r := &Registry{
		items:   make(map[domain.ItemID]domain.ItemDef, len(cfg.Items)),
		crops:   make(map[domain.CropID]domain.CropDef, len(cfg.Crops)),
		bySeed:  make(map[domain.ItemID]domain.CropID, len(cfg.Crops)),
		recipes: make(map[domain.ItemID]domain.Recipe, len(cfg.Recipes)),
		npcs:    make(map[domain.NpcID]domain.NpcDef, len(cfg.Npcs)),
	}
	for _, it := range cfg.Items {
		r.items[it.ID] = it
		r.itemOrder = append(r.itemOrder, it.ID)
	}
	for _, c := range cfg.Crops {
		r.crops[c.ID] = c
		r.bySeed[c.SeedItem] = c.ID
	}
	for _, rec := range cfg.Recipes {
		r.recipes[rec.Output] = rec
		r.recipeOrder = append(r.recipeOrder, rec.Output)
	}
	for _, n := range cfg.Npcs {
		r.npcs[n.ID] = n
		r.npcOrder = append(r.npcOrder, n.ID)
	}
	return r
}

// Load reads, validates and indexes the tables a Loader provides.
func Load(l Loader) (*Registry, error) {
	cfg, err := l.Load()
	if err != nil {
		return nil, err
	}
	if err := l.Validate(cfg); err != nil {
		return nil, err
	}
	return NewRegistry(cfg), nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry built from the embedded tables.
// The tables ship with the binary, so a failure here is a build defect.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := Load(NewLoader())
		if err != nil {
			panic(fmt.Sprintf("embedded content is invalid: %v", err))
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}

func (r *Registry) Item(id domain.ItemID) (domain.ItemDef, bool) {
	d, ok := r.items[id]
	return d, ok
}

func (r *Registry) Crop(id domain.CropID) (domain.CropDef, bool) {
	d, ok := r.crops[id]
	return d, ok
}

// CropBySeed finds the crop grown from a seed item.
func (r *Registry) CropBySeed(seed domain.ItemID) (domain.CropDef, bool) {
	id, ok := r.bySeed[seed]
	if !ok {
		return domain.CropDef{}, false
	}
	return r.Crop(id)
}

// RecipeFor returns the recipe producing output.
func (r *Registry) RecipeFor(output domain.ItemID) (domain.Recipe, bool) {
	rec, ok := r.recipes[output]
	return rec, ok
}

func (r *Registry) Npc(id domain.NpcID) (domain.NpcDef, bool) {
	d, ok := r.npcs[id]
	return d, ok
}

// MaxStack returns the stack limit for an item, 0 for unknown items.
func (r *Registry) MaxStack(id domain.ItemID) int {
	return r.items[id].MaxStack
}

// SellPrice returns the unit sell price, 0 for unknown items.
func (r *Registry) SellPrice(id domain.ItemID) int {
	return r.items[id].SellPrice
}

// Items lists item definitions in table order.
func (r *Registry) Items() []domain.ItemDef {
	out := make([]domain.ItemDef, 0, len(r.itemOrder))
	for _, id := range r.itemOrder {
		out = append(out, r.items[id])
	}
	return out
}

// Recipes lists recipes in table order.
func (r *Registry) Recipes() []domain.Recipe {
	out := make([]domain.Recipe, 0, len(r.recipeOrder))
	for _, id := range r.recipeOrder {
		out = append(out, r.recipes[id])
	}
	return out
}

// Npcs lists villager definitions in table order.
func (r *Registry) Npcs() []domain.NpcDef {
	out := make([]domain.NpcDef, 0, len(r.npcOrder))
	for _, id := range r.npcOrder {
		out = append(out, r.npcs[id])
	}
	return out
}
