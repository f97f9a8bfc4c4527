package save

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CokeFamer_Go/internal/content"
	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/quest"
	"github.com/osse101/CokeFamer_Go/internal/slots"
)

func testDefaults() Defaults {
	return Defaults{Minutes: 360, Energy: 270, Gold: 500, Stacks: content.Default()}
}

const tilesJSON = `[{"tx":2,"ty":3,"state":{"tilled":true,"watered":false,"crop":{"cropId":"parsnip","stage":2,"daysInStage":0}}}]`

var fixtures = map[int]string{
	0: `{"version":0,"day":4,"inventory":[{"itemId":"parsnip_seed","qty":12},{"itemId":"wood","qty":3}],"tiles":` + tilesJSON + `}`,
	1: `{"version":1,"day":4,"minutes":600,"inventory":[{"itemId":"parsnip_seed","qty":12},{"itemId":"wood","qty":3}],"tiles":` + tilesJSON + `}`,
	2: `{"version":2,"day":4,"minutes":600,"energy":100,"gold":730,"inventorySlots":[{"itemId":"parsnip_seed","qty":12},null,{"itemId":"wood","qty":3}],"tiles":` + tilesJSON + `}`,
	3: `{"version":3,"day":4,"minutes":600,"energy":100,"gold":730,"inventorySlots":[{"itemId":"parsnip_seed","qty":12},null,{"itemId":"wood","qty":3}],"tiles":` + tilesJSON + `}`,
	4: `{"version":4,"day":4,"minutes":600,"energy":100,"gold":730,"inventorySlots":[{"itemId":"parsnip_seed","qty":12},null,{"itemId":"wood","qty":3}],"tiles":` + tilesJSON + `,"objects":[{"tx":0,"ty":0,"object":{"id":"chest","slots":[{"itemId":"stone","qty":2}]}}]}`,
	5: `{"version":5,"day":4,"minutes":600,"energy":100,"gold":730,"inventorySlots":[{"itemId":"parsnip_seed","qty":12},null,{"itemId":"wood","qty":3}],"tiles":` + tilesJSON + `,"objects":[{"tx":0,"ty":0,"object":{"id":"chest","slots":[{"itemId":"stone","qty":2}]}}],"quest":{"itemId":"wood","qty":20,"rewardGold":200,"completed":true},"friendship":{"townie":60}}`,
}

func TestDecodeMigratesEveryVersion(t *testing.T) {
	codec := NewCodec(testDefaults())

	for v := 0; v <= 5; v++ {
		t.Run(fmt.Sprintf("v%d", v), func(t *testing.T) {
			rec, from, err := codec.Decode([]byte(fixtures[v]))
			require.NoError(t, err)
			assert.Equal(t, v, from)
			assert.Equal(t, CurrentVersion, rec.Version)
			assert.Equal(t, 4, rec.Day)

			// Inventory content survives regardless of layout.
			assert.Len(t, rec.InventorySlots, domain.InventorySize)
			assert.Equal(t, 12, slots.Count(rec.InventorySlots, domain.ItemParsnipSeed))
			assert.Equal(t, 3, slots.Count(rec.InventorySlots, domain.ItemWood))

			require.Len(t, rec.Tiles, 1)
			assert.Equal(t, 2, rec.Tiles[0].State.Crop.Stage)

			if v < 1 {
				assert.Equal(t, 360, rec.Minutes, "minutes default")
			} else {
				assert.Equal(t, 600, rec.Minutes)
			}
			if v < 2 {
				assert.Equal(t, 270, rec.Energy)
				assert.Equal(t, 500, rec.Gold, "gold default")
			} else {
				assert.Equal(t, 100, rec.Energy)
				assert.Equal(t, 730, rec.Gold)
			}
			if v < 4 {
				assert.Empty(t, rec.Objects)
			} else {
				require.Len(t, rec.Objects, 1)
				assert.Equal(t, domain.KindChest, rec.Objects[0].Object.ID)
			}

			require.NotNil(t, rec.Quest)
			assert.Equal(t, 4, rec.Quest.DayIssued)
			if v < 5 {
				assert.Equal(t, quest.Generate(4), *rec.Quest)
				assert.Empty(t, rec.Relationships)
			} else {
				assert.True(t, rec.Quest.Completed)
				assert.Equal(t, domain.Relationship{Friendship: 60}, rec.Relationships[domain.NpcTownie])
			}
		})
	}
}

func TestDecodeRejectsUnknownVersions(t *testing.T) {
	codec := NewCodec(testDefaults())

	tests := []struct {
		name string
		raw  string
	}{
		{"future version", `{"version":7,"day":1}`},
		{"negative version", `{"version":-1,"day":1}`},
		{"missing version", `{"day":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := codec.Decode([]byte(tt.raw))
			assert.ErrorIs(t, err, domain.ErrUnknownSaveVersion)
		})
	}

	_, _, err := codec.Decode([]byte(`{not json`))
	assert.ErrorIs(t, err, domain.ErrMalformedSave)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	codec := NewCodec(testDefaults())
	inv := domain.NewSlots(domain.InventorySize)
	inv[3] = &domain.ItemStack{Item: domain.ItemAcorn, Qty: 2}

	chestSlots := domain.NewSlots(domain.ContainerSize)
	chestSlots[0] = &domain.ItemStack{Item: domain.ItemParsnipSeed, Qty: 5}

	rec := Current{
		Day:            30,
		Minutes:        900,
		Energy:         12,
		Gold:           42,
		InventorySlots: inv,
		Tiles: []TileRecord{{X: -1, Y: 5, State: domain.TileState{
			Tilled: true, Watered: true,
			Crop: &domain.CropState{Crop: domain.CropBlueberry, Stage: 4, DaysInStage: 1, Harvests: 2},
		}}},
		Objects: []ObjectRecord{
			{X: 0, Y: 0, Object: EncodeObject(&domain.Chest{Slots: chestSlots})},
			{X: 1, Y: 0, Object: EncodeObject(&domain.PreservesJar{Input: domain.Ptr(domain.ItemPotato), CompleteAt: domain.Ptr(44000)})},
			{X: 2, Y: 0, Object: EncodeObject(&domain.Tree{Stage: 1, DaysInStage: 2, HP: 2})},
		},
		Quest:         &domain.Quest{DayIssued: 30, Item: domain.ItemFiber, Qty: 5, Reward: 60},
		Relationships: map[domain.NpcID]domain.Relationship{domain.NpcTownie: {Friendship: 85, LastTalkDay: 30, LastGiftDay: 29}},
	}

	raw, err := codec.Encode(rec)
	require.NoError(t, err)

	got, from, err := codec.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, from)
	rec.Version = CurrentVersion
	assert.Equal(t, rec, got)
}

func TestObjectCodec(t *testing.T) {
	objs := []domain.PlacedObject{
		&domain.Chest{Slots: domain.NewSlots(domain.ContainerSize)},
		&domain.ShippingBin{Slots: domain.NewSlots(domain.ContainerSize)},
		&domain.ResourceNode{Resource: domain.KindStone, HP: 2},
		&domain.Weed{HP: 1},
		&domain.Tree{Stage: 2, DaysInStage: 0, HP: 6},
		&domain.SimplePlaceable{Placeable: domain.KindQualitySprinkler},
		&domain.PreservesJar{Output: domain.Ptr(domain.ItemCranberryJar)},
	}
	for _, obj := range objs {
		t.Run(string(obj.Kind()), func(t *testing.T) {
			got, err := DecodeObject(EncodeObject(obj))
			require.NoError(t, err)
			assert.Equal(t, obj, got)
		})
	}

	_, err := DecodeObject(ObjectState{ID: "statue"})
	assert.ErrorIs(t, err, domain.ErrMalformedSave)

	tree, err := DecodeObject(ObjectState{ID: domain.KindTree, Stage: domain.Ptr(9)})
	require.NoError(t, err)
	assert.Equal(t, &domain.Tree{Stage: 2, HP: 6}, tree, "out-of-range stage is clamped")
}

func TestValidate(t *testing.T) {
	codec := NewCodec(testDefaults())

	tests := []struct {
		name   string
		raw    string
		ok     bool
		reason domain.Reason
	}{
		{"current record", `{"version":6,"day":3,"minutes":400,"energy":10,"gold":0,"inventorySlots":[null],"tiles":[],"objects":[],"quest":null,"relationships":{}}`, true, ""},
		{"legacy record", fixtures[0], true, ""},
		{"not json", `{"version":`, false, domain.ReasonParse},
		{"wrong shape", `[1,2,3]`, false, domain.ReasonJSON},
		{"unknown version", `{"version":9,"day":1}`, false, domain.ReasonJSON},
		{"bad stack", `{"version":6,"day":1,"inventorySlots":[{"itemId":"wood","qty":0}]}`, false, domain.ReasonJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, ok := codec.Validate([]byte(tt.raw))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestMigrationsArePure(t *testing.T) {
	in := SaveV5{Day: 2, Friendship: map[domain.NpcID]int{domain.NpcTownie: -5}}
	out := MigrateV5(in, testDefaults())
	assert.Equal(t, 0, out.Relationships[domain.NpcTownie].Friendship, "negative friendship floors at zero")
	assert.Equal(t, -5, in.Friendship[domain.NpcTownie])
	assert.Equal(t, 360, out.Minutes)
	assert.NotNil(t, out.Objects)
}

func TestArchiveRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := Archive{
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Slots: map[int]json.RawMessage{
			1: json.RawMessage(fixtures[2]),
			3: json.RawMessage(fixtures[0]),
		},
	}
	require.NoError(t, WriteArchive(&buf, in))

	out, err := ReadArchive(&buf)
	require.NoError(t, err)
	assert.Equal(t, ArchiveVersion, out.Version)
	assert.True(t, in.CreatedAt.Equal(out.CreatedAt))
	require.Len(t, out.Slots, 2)
	assert.JSONEq(t, fixtures[2], string(out.Slots[1]))

	_, err = ReadArchive(bytes.NewReader([]byte("plain text")))
	assert.Error(t, err)
}
