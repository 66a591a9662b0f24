package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config groups the simulator parameters resolved from the command line
// and/or a scenario file.
type Config struct {
	Method      Method // schedule method id 0-6
	UnitCount   int    // number of execution units (default 1)
	SliceLength int64  // round-robin slice length in ticks (default 1)
}

// DefaultConfig returns a Config with the documented defaults; Method is
// deliberately left invalid because it has no default and must be given.
func DefaultConfig() Config {
	return Config{
		Method:      Method(-1),
		UnitCount:   1,
		SliceLength: 1,
	}
}

// Validate checks that all parameters are in range. A failure here is a
// fatal configuration error: no simulation tick may run after it.
func (c Config) Validate() error {
	if !c.Method.Valid() {
		return fmt.Errorf("schedule method not given or out of range (valid: 0-6)")
	}
	if c.UnitCount < 1 {
		return fmt.Errorf("unit count must be positive, got %d", c.UnitCount)
	}
	if c.SliceLength < 1 {
		return fmt.Errorf("slice length must be positive, got %d", c.SliceLength)
	}
	return nil
}

// Scenario holds simulator configuration loadable from a YAML file.
// Nil pointer fields mean "not set in YAML" -- they do not override the
// command line. Method accepts a numeric id or a canonical policy name.
type Scenario struct {
	Method string `yaml:"method"`
	Units  *int   `yaml:"units"`
	Slice  *int64 `yaml:"slice"`
}

// LoadScenario reads and parses a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario config: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario config: %w", err)
	}
	return &sc, nil
}

// Apply overlays the scenario's set fields onto cfg.
func (sc *Scenario) Apply(cfg *Config) error {
	if sc.Method != "" {
		m, err := ParseMethod(sc.Method)
		if err != nil {
			return err
		}
		cfg.Method = m
	}
	if sc.Units != nil {
		cfg.UnitCount = *sc.Units
	}
	if sc.Slice != nil {
		cfg.SliceLength = *sc.Slice
	}
	return nil
}
