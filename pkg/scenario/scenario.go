package scenario

import (
	"fmt"
	"os"

	"github.com/aretw0/fabricmock/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Assertion operations understood in addition to the emulator operations.
const (
	OpExpectParent   = "expectParent"
	OpExpectChildren = "expectChildren"
)

// RootRef is the reserved reference to the synthetic root.
const RootRef = "root"

// Step is one scripted operation. Which fields apply depends on Op.
type Step struct {
	Op string `mapstructure:"op"`

	// Node production
	Ref    string       `mapstructure:"ref"`
	Tag    int          `mapstructure:"tag"`
	View   string       `mapstructure:"view"`
	Props  domain.Props `mapstructure:"props"`
	Handle any          `mapstructure:"handle"`

	// Node references
	Node     string `mapstructure:"node"`
	Parent   string `mapstructure:"parent"`
	Child    string `mapstructure:"child"`
	Relative string `mapstructure:"relative"`
	Set      string `mapstructure:"set"`
	Root     *int   `mapstructure:"root"`

	// Stubs
	Event   string `mapstructure:"event"`
	Command string `mapstructure:"command"`
	Args    []any  `mapstructure:"args"`

	// Assertions
	Handles []any     `mapstructure:"handles"`
	Expect  []float64 `mapstructure:"expect"`
	Error   string    `mapstructure:"error"`
}

// Scenario is a named script bound to a default root tag.
type Scenario struct {
	Name  string
	Root  domain.RootTag
	Steps []Step
}

type rawScenario struct {
	Name  string           `yaml:"name"`
	Root  int              `yaml:"root"`
	Steps []map[string]any `yaml:"steps"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a scenario from YAML. JSON input is accepted as well.
func Parse(data []byte) (*Scenario, error) {
	var raw rawScenario
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	sc := &Scenario{
		Name:  raw.Name,
		Root:  domain.RootTag(raw.Root),
		Steps: make([]Step, 0, len(raw.Steps)),
	}
	for i, rs := range raw.Steps {
		step, err := decodeStep(rs)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		sc.Steps = append(sc.Steps, step)
	}
	return sc, nil
}

func decodeStep(raw map[string]any) (Step, error) {
	var step Step
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &step,
	})
	if err != nil {
		return step, err
	}
	if err := decoder.Decode(raw); err != nil {
		return step, fmt.Errorf("failed to decode step: %w", err)
	}
	if step.Op == "" {
		return step, fmt.Errorf("step missing op")
	}
	return step, nil
}
