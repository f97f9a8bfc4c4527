package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var defaultTuning []byte

// ActionCost is the clock and energy price of one player action.
type ActionCost struct {
	Minutes int `yaml:"minutes" validate:"min=0"`
	Energy  int `yaml:"energy" validate:"min=0"`
}

// Tuning holds the gameplay numbers that are not content data.
type Tuning struct {
	DayStartMinutes         int                   `yaml:"day_start_minutes" validate:"min=0,max=1440"`
	DayEndMinutes           int                   `yaml:"day_end_minutes" validate:"gtfield=DayStartMinutes"`
	EnergyMax               int                   `yaml:"energy_max" validate:"min=1"`
	StartingGold            int                   `yaml:"starting_gold" validate:"min=0"`
	StartingItems           map[string]int        `yaml:"starting_items" validate:"dive,keys,required,endkeys,min=1"`
	JarMinutes              int                   `yaml:"jar_minutes" validate:"min=1"`
	ShippingBinSearchRadius int                   `yaml:"shipping_bin_search_radius" validate:"min=0"`
	Actions                 map[string]ActionCost `yaml:"actions" validate:"required,dive"`
}

// DefaultTuning returns the embedded tuning. It panics if the embedded
// document is invalid, which only a broken build can cause.
func DefaultTuning() Tuning {
	t, err := ParseTuning(defaultTuning)
	if err != nil {
		panic(err)
	}
	return t
}

// LoadTuning reads tuning from path, or returns the embedded default when path
// is empty. Keys missing from the file keep their default values.
func LoadTuning(path string) (Tuning, error) {
	if path == "" {
		return DefaultTuning(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("%s %s: %w", ErrMsgReadTuningFile, path, err)
	}
	return ParseTuning(data)
}

// ParseTuning decodes a YAML tuning document over the embedded defaults and validates it.
func ParseTuning(data []byte) (Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(defaultTuning, &t); err != nil {
		return Tuning{}, fmt.Errorf("%s: %w", ErrMsgParseTuning, err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("%s: %w", ErrMsgParseTuning, err)
	}
	if err := validate.Struct(t); err != nil {
		return Tuning{}, fmt.Errorf("%s: %w", ErrMsgInvalidTuning, err)
	}
	return t, nil
}

// Cost returns the cost of action; unknown actions are free.
func (t Tuning) Cost(action string) ActionCost {
	return t.Actions[action]
}
