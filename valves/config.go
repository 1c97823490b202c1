package valves

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config controls a Solver.
type Config struct {
	// Start is the label of the valve both searches begin at.
	Start string `yaml:"start"`
	// Budget is the minutes available to a single agent.
	Budget uint `yaml:"budget"`
	// TeamBudget is the minutes available to each of two agents.
	TeamBudget uint `yaml:"team_budget"`
	// Workers bounds the goroutines used by the two-agent search.
	Workers int `yaml:"workers"`
	// Memoize enables the two-agent transposition table.
	Memoize bool `yaml:"memoize"`
	// MemoLimit caps the number of states remembered by the two-agent
	// search, summed over all workers.
	MemoLimit int `yaml:"memo_limit"`
}

// DefaultConfig returns the puzzle's parameters.
func DefaultConfig() Config {
	return Config{
		Start:      "AA",
		Budget:     30,
		TeamBudget: 26,
		Workers:    runtime.GOMAXPROCS(0),
		Memoize:    true,
		MemoLimit:  DefaultMemoLimit,
	}
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	switch {
	case c.Start == "":
		return fmt.Errorf("%w: start valve is empty", ErrInvalidConfig)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	case c.MemoLimit < 0:
		return fmt.Errorf("%w: memo_limit must not be negative, got %d", ErrInvalidConfig, c.MemoLimit)
	}
	return nil
}

// LoadConfig reads a YAML config from path on top of DefaultConfig. Unknown
// keys are rejected. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("valves: opening config: %w", err)
	}
	defer f.Close()
	return DecodeConfig(f)
}

// DecodeConfig is LoadConfig for an already open file.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// workerMemoLimit is the share of MemoLimit each worker may use.
func (c Config) workerMemoLimit() int {
	if !c.Memoize || c.MemoLimit == 0 {
		return 0
	}
	return max(c.MemoLimit/c.Workers, 1)
}
