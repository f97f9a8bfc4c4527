package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/validation"
)

//go:embed data/*.json schemas/*.json
var embedded embed.FS

// Config is the full set of content tables as read from disk.
type Config struct {
	Items   []domain.ItemDef
	Crops   []domain.CropDef
	Recipes []domain.Recipe
	Npcs    []domain.NpcDef
}

type itemsFile struct {
	Version string           `json:"version"`
	Items   []domain.ItemDef `json:"items"`
}

type cropsFile struct {
	Version string           `json:"version"`
	Crops   []domain.CropDef `json:"crops"`
}

type recipesFile struct {
	Version string          `json:"version"`
	Recipes []domain.Recipe `json:"recipes"`
}

type npcsFile struct {
	Version string          `json:"version"`
	Npcs    []domain.NpcDef `json:"npcs"`
}

// Loader reads and cross-checks content tables.
type Loader interface {
	Load() (*Config, error)
	Validate(cfg *Config) error
}

type loader struct {
	source          fs.FS
	schemaValidator validation.SchemaValidator
}

// NewLoader returns a Loader over the embedded content tables.
func NewLoader() Loader {
	return NewLoaderFS(embedded)
}

// NewLoaderFS returns a Loader reading tables and schemas from source.
func NewLoaderFS(source fs.FS) Loader {
	return &loader{
		source:          source,
		schemaValidator: validation.NewSchemaValidator(source),
	}
}

func (l *loader) Load() (*Config, error) {
	var items itemsFile
	if err := l.readFile(ItemsPath, ItemsSchemaPath, &items); err != nil {
		return nil, err
	}
	var crops cropsFile
	if err := l.readFile(CropsPath, CropsSchemaPath, &crops); err != nil {
		return nil, err
	}
	var recipes recipesFile
	if err := l.readFile(RecipesPath, RecipesSchemaPath, &recipes); err != nil {
		return nil, err
	}
	var npcs npcsFile
	if err := l.readFile(NpcsPath, NpcsSchemaPath, &npcs); err != nil {
		return nil, err
	}

	return &Config{
		Items:   items.Items,
		Crops:   crops.Crops,
		Recipes: recipes.Recipes,
		Npcs:    npcs.Npcs,
	}, nil
}

func (l *loader) readFile(path, schemaPath string, out interface{}) error {
	data, err := fs.ReadFile(l.source, path)
	if err != nil {
		return fmt.Errorf(ErrMsgReadFileFailed, path, err)
	}
	if err := l.schemaValidator.ValidateBytes(data, schemaPath); err != nil {
		return fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf(ErrMsgParseFailed, path, err)
	}
	return nil
}

// Validate checks references between tables. Schemas already cover field shapes.
func (l *loader) Validate(cfg *Config) error {
	items := make(map[domain.ItemID]bool, len(cfg.Items))
	for _, it := range cfg.Items {
		if items[it.ID] {
			return fmt.Errorf(ErrFmtDuplicateID, domain.ErrInvalidContent, "item", it.ID)
		}
		items[it.ID] = true
	}

	crops := make(map[domain.CropID]bool, len(cfg.Crops))
	seeds := make(map[domain.ItemID]bool, len(cfg.Crops))
	for _, c := range cfg.Crops {
		if crops[c.ID] {
			return fmt.Errorf(ErrFmtDuplicateID, domain.ErrInvalidContent, "crop", c.ID)
		}
		crops[c.ID] = true
		if seeds[c.SeedItem] {
			return fmt.Errorf(ErrFmtDuplicateSeedItem, domain.ErrInvalidContent, c.SeedItem)
		}
		seeds[c.SeedItem] = true
		for _, ref := range []domain.ItemID{c.SeedItem, c.ProduceItem} {
			if !items[ref] {
				return fmt.Errorf(ErrFmtUnknownReference, domain.ErrInvalidContent, "crop", c.ID, ref)
			}
		}
	}

	outputs := make(map[domain.ItemID]bool, len(cfg.Recipes))
	for _, r := range cfg.Recipes {
		if !items[r.Output] {
			return fmt.Errorf(ErrFmtUnknownReference, domain.ErrInvalidContent, "recipe", r.Output, r.Output)
		}
		if outputs[r.Output] {
			return fmt.Errorf(ErrFmtDuplicateRecipe, domain.ErrInvalidContent, r.Output)
		}
		outputs[r.Output] = true
		for ing := range r.Ingredients {
			if !items[ing] {
				return fmt.Errorf(ErrFmtUnknownReference, domain.ErrInvalidContent, "recipe", r.Output, ing)
			}
		}
	}

	npcs := make(map[domain.NpcID]bool, len(cfg.Npcs))
	for _, n := range cfg.Npcs {
		if npcs[n.ID] {
			return fmt.Errorf(ErrFmtDuplicateID, domain.ErrInvalidContent, "npc", n.ID)
		}
		npcs[n.ID] = true
		for it := range n.GiftTastes {
			if !items[it] {
				return fmt.Errorf(ErrFmtUnknownReference, domain.ErrInvalidContent, "npc", n.ID, it)
			}
		}
	}

	return nil
}
