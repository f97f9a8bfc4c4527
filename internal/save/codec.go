package save

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/validation"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const recordSchemaPath = "schemas/save.schema.json"

// Codec reads records of any supported version and writes the current one.
type Codec struct {
	migrator  *Migrator
	validator validation.SchemaValidator
}

// NewCodec returns a Codec that defaults missing fields from d.
func NewCodec(d Defaults) *Codec {
	return &Codec{
		migrator:  NewMigrator(d),
		validator: validation.NewSchemaValidator(schemaFS),
	}
}

type header struct {
	Version *int `json:"version"`
}

// Version reads the version tag of a raw record.
func Version(raw []byte) (int, error) {
	var h header
	if err := json.Unmarshal(raw, &h); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrMalformedSave, err)
	}
	if h.Version == nil {
		return 0, fmt.Errorf("%w: missing version tag", domain.ErrUnknownSaveVersion)
	}
	return *h.Version, nil
}

// Decode upgrades raw to the current layout. It also returns the version the
// record was stored at, so callers can re-persist migrated saves.
func (c *Codec) Decode(raw []byte) (Current, int, error) {
	var out Current
	from, err := Version(raw)
	if err != nil {
		return out, 0, err
	}
	upgraded, err := c.migrator.Upgrade(raw, from)
	if err != nil {
		return out, from, err
	}
	if err := json.Unmarshal(upgraded, &out); err != nil {
		return out, from, fmt.Errorf("%w: %v", domain.ErrMalformedSave, err)
	}
	if out.Day < 1 {
		return out, from, fmt.Errorf("%w: day %d", domain.ErrMalformedSave, out.Day)
	}
	if out.Relationships == nil {
		out.Relationships = map[domain.NpcID]domain.Relationship{}
	}
	return out, from, nil
}

// Encode writes a record at CurrentVersion.
func (c *Codec) Encode(rec Current) ([]byte, error) {
	rec.Version = CurrentVersion
	if rec.Tiles == nil {
		rec.Tiles = []TileRecord{}
	}
	if rec.Objects == nil {
		rec.Objects = []ObjectRecord{}
	}
	if rec.Relationships == nil {
		rec.Relationships = map[domain.NpcID]domain.Relationship{}
	}
	return json.Marshal(rec)
}

// Validate checks import text before it is committed. It reports ReasonParse for
// text that is not JSON and ReasonJSON for JSON that is not a save record.
func (c *Codec) Validate(raw []byte) (domain.Reason, bool) {
	err := c.validator.ValidateBytes(raw, recordSchemaPath)
	switch {
	case err == nil:
		return "", true
	case errors.Is(err, validation.ErrParse):
		return domain.ReasonParse, false
	default:
		return domain.ReasonJSON, false
	}
}
