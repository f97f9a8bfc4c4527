package content

// Embedded file paths
const (
	ItemsPath   = "data/items.json"
	CropsPath   = "data/crops.json"
	RecipesPath = "data/recipes.json"
	NpcsPath    = "data/npcs.json"

	ItemsSchemaPath   = "schemas/items.schema.json"
	CropsSchemaPath   = "schemas/crops.schema.json"
	RecipesSchemaPath = "schemas/recipes.schema.json"
	NpcsSchemaPath    = "schemas/npcs.schema.json"
)

// Error message formats
const (
	ErrMsgReadFileFailed    = "failed to read content file %s: %w"
	ErrMsgSchemaFailed      = "schema validation failed for %s: %w"
	ErrMsgParseFailed       = "failed to parse content file %s: %w"
	ErrFmtDuplicateID       = "%w: duplicate %s id '%s'"
	ErrFmtUnknownReference  = "%w: %s '%s' references unknown item '%s'"
	ErrFmtDuplicateSeedItem = "%w: seed item '%s' is used by more than one crop"
	ErrFmtDuplicateRecipe   = "%w: more than one recipe produces '%s'"
)
