package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testTrade struct {
	Item string `validate:"required,gameid"`
	Qty  int    `validate:"min=1,max=999"`
	Kind string `validate:"omitempty,oneof=wood stone"`
}

func TestValidator_GameID(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		item    string
		wantErr bool
	}{
		{"plain id", "parsnip", false},
		{"underscored id", "parsnip_seed", false},
		{"digits after first letter", "jar2", false},
		{"empty is required", "", true},
		{"upper case", "Parsnip", true},
		{"leading digit", "2jar", true},
		{"space", "parsnip seed", true},
		{"path traversal", "../wood", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(testTrade{Item: tt.item, Qty: 1})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_Quantity(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		qty     int
		wantErr bool
	}{
		{"min", 1, false},
		{"max", 999, false},
		{"zero", 0, true},
		{"negative", -1, true},
		{"over max", 1000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(testTrade{Item: "wood", Qty: tt.qty})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	err := v.ValidateStruct(testTrade{Item: "", Qty: 0, Kind: "clay"})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "This field is required", fields["item"])
	assert.Equal(t, "Must be at least 1", fields["qty"])
	assert.Equal(t, "Must be one of: wood stone", fields["kind"])

	err = v.ValidateStruct(testTrade{Item: "Wood", Qty: 1})
	require.Error(t, err)
	assert.Contains(t, FormatValidationError(err)["item"], "lower-case identifier")

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, "Invalid request format", FormatValidationError(assert.AnError)["error"])
}
