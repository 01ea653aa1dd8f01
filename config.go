package absplit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bbs-caleb/absplit/hasher"
	"github.com/bbs-caleb/absplit/types"
)

// GroupConfig declares one experiment arm.
type GroupConfig struct {
	// Label is the group name returned by assignment.
	Label string `yaml:"label"`

	// Weight is the group's share; weights are normalized, so any
	// non-negative scale works (percentages, fractions, counts).
	Weight float64 `yaml:"weight"`
}

// ExperimentConfig declares one experiment.
//
// Exactly one of Groups or TestShare must be set. TestShare is the two-way
// shorthand: the given fraction goes to "test", the remainder to "control".
type ExperimentConfig struct {
	// Name is the registry key for this experiment.
	Name string `yaml:"name"`

	// Salt is the experiment salt. Must remain constant for the lifetime
	// of the experiment.
	Salt string `yaml:"salt"`

	// Hash names the bucketing contract ("sha256/8", "md5/4", "xxh3/8").
	// Empty selects the default contract.
	Hash string `yaml:"hash,omitempty"`

	// TestShare is the two-way shorthand, fraction routed to "test".
	TestShare *float64 `yaml:"testShare,omitempty"`

	// Groups is the explicit ordered weight vector.
	Groups []GroupConfig `yaml:"groups,omitempty"`
}

// Config declares a set of experiments, typically loaded from YAML.
//
// Example:
//
//	experiments:
//	  - name: pricing-q1
//	    salt: pricing_test_2024_q1
//	    testShare: 0.5
//	  - name: checkout-v2
//	    salt: checkout_v2_2024
//	    hash: md5/4
//	    groups:
//	      - label: control
//	        weight: 0.5
//	      - label: test_a
//	        weight: 0.25
//	      - label: test_b
//	        weight: 0.25
type Config struct {
	Experiments []ExperimentConfig `yaml:"experiments"`
}

// ParseConfig parses a YAML experiment declaration and validates it.
//
// Parameters:
//   - data: YAML document bytes
//
// Returns:
//   - *Config: Parsed and validated configuration
//   - error: YAML decode error or types.ErrInvalidConfig / types.ErrUnknownHasher
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse experiment config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfig reads and parses a YAML experiment declaration from a file.
//
// Parameters:
//   - path: Path to the YAML file
//
// Returns:
//   - *Config: Parsed and validated configuration
//   - error: File read error, YAML decode error, or validation error
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read experiment config %s: %w", path, err)
	}

	return ParseConfig(data)
}

// Validate checks the declaration for structural errors.
//
// Weight-vector validation beyond shape (negative weights, zero sum,
// duplicate labels) happens at Splitter construction in Build.
//
// Returns:
//   - error: types.ErrInvalidConfig or types.ErrUnknownHasher with the
//     experiment named, nil if valid
func (cfg *Config) Validate() error {
	if len(cfg.Experiments) == 0 {
		return fmt.Errorf("%w: no experiments declared", types.ErrInvalidConfig)
	}

	names := make(map[string]struct{}, len(cfg.Experiments))
	for i, exp := range cfg.Experiments {
		if exp.Name == "" {
			return fmt.Errorf("%w: experiment %d has no name", types.ErrInvalidConfig, i)
		}
		if _, dup := names[exp.Name]; dup {
			return fmt.Errorf("%w: duplicate experiment name %q", types.ErrInvalidConfig, exp.Name)
		}
		names[exp.Name] = struct{}{}

		hasGroups := len(exp.Groups) > 0
		hasShare := exp.TestShare != nil
		if hasGroups == hasShare {
			return fmt.Errorf(
				"%w: experiment %q must declare exactly one of groups or testShare",
				types.ErrInvalidConfig, exp.Name,
			)
		}

		if _, err := hasher.ForName(exp.Hash); err != nil {
			return fmt.Errorf("experiment %q: %w", exp.Name, err)
		}
	}

	return nil
}

// Build constructs a Splitter per declared experiment and registers each in
// the given registry.
//
// Parameters:
//   - registry: Destination registry (construct with NewRegistry)
//   - opts: Splitter options applied to every experiment (e.g. WithLogger,
//     WithMetrics); the declared hash contract takes precedence over any
//     WithHasher in opts
//
// Returns:
//   - error: Validation, construction, or registration error
//
// Example:
//
//	cfg, err := absplit.LoadConfig("experiments.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	registry := absplit.NewRegistry(absplit.WithRegistryLogger(logger))
//	if err := cfg.Build(registry, absplit.WithLogger(logger)); err != nil {
//	    log.Fatal(err)
//	}
func (cfg *Config) Build(registry *Registry, opts ...Option) error {
	if registry == nil {
		return fmt.Errorf("%w: nil registry", types.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	for _, exp := range cfg.Experiments {
		h, err := hasher.ForName(exp.Hash)
		if err != nil {
			return fmt.Errorf("experiment %q: %w", exp.Name, err)
		}

		// Declared contract wins over any WithHasher in opts.
		expOpts := append(append([]Option(nil), opts...), WithHasher(h))

		var splitter *Splitter
		if exp.TestShare != nil {
			splitter, err = NewTwoWay(exp.Salt, *exp.TestShare, expOpts...)
		} else {
			groups := make([]types.Group, len(exp.Groups))
			for i, g := range exp.Groups {
				groups[i] = types.Group{Label: g.Label, Weight: g.Weight}
			}
			splitter, err = New(exp.Salt, groups, expOpts...)
		}
		if err != nil {
			return fmt.Errorf("experiment %q: %w", exp.Name, err)
		}

		if err := registry.Register(exp.Name, splitter); err != nil {
			return err
		}
	}

	return nil
}
