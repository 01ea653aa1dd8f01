package absplit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bbs-caleb/absplit/hasher"
)

const validConfigYAML = `
experiments:
  - name: pricing-q1
    salt: pricing_test_2024_q1
    testShare: 0.5
  - name: checkout-v2
    salt: checkout_v2_2024
    hash: md5/4
    groups:
      - label: control
        weight: 0.5
      - label: test_a
        weight: 0.25
      - label: test_b
        weight: 0.25
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(validConfigYAML))
	require.NoError(t, err)
	require.Len(t, cfg.Experiments, 2)

	require.Equal(t, "pricing-q1", cfg.Experiments[0].Name)
	require.NotNil(t, cfg.Experiments[0].TestShare)
	require.InDelta(t, 0.5, *cfg.Experiments[0].TestShare, 1e-12)

	require.Equal(t, "md5/4", cfg.Experiments[1].Hash)
	require.Len(t, cfg.Experiments[1].Groups, 3)
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", `{{`},
		{"no experiments", `experiments: []`},
		{"missing name", `
experiments:
  - salt: s
    testShare: 0.5
`},
		{"duplicate name", `
experiments:
  - name: exp
    salt: s1
    testShare: 0.5
  - name: exp
    salt: s2
    testShare: 0.5
`},
		{"both groups and testShare", `
experiments:
  - name: exp
    salt: s
    testShare: 0.5
    groups:
      - label: a
        weight: 1
      - label: b
        weight: 1
`},
		{"neither groups nor testShare", `
experiments:
  - name: exp
    salt: s
`},
		{"unknown hash", `
experiments:
  - name: exp
    salt: s
    hash: sha512/8
    testShare: 0.5
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			require.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("reads a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "experiments.yaml")
		require.NoError(t, os.WriteFile(path, []byte(validConfigYAML), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Len(t, cfg.Experiments, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}

func TestConfig_Build(t *testing.T) {
	cfg, err := ParseConfig([]byte(validConfigYAML))
	require.NoError(t, err)

	registry := NewRegistry()
	require.NoError(t, cfg.Build(registry))
	require.Equal(t, 2, registry.Len())

	pricing, ok := registry.Lookup("pricing-q1")
	require.True(t, ok)
	require.Equal(t, hasher.ContractSHA256, pricing.Contract())

	// Golden value: identifier 12345 under this salt is control.
	label, err := pricing.Assign(12345)
	require.NoError(t, err)
	require.Equal(t, "control", label)

	checkout, ok := registry.Lookup("checkout-v2")
	require.True(t, ok)
	require.Equal(t, hasher.ContractMD5, checkout.Contract())
	require.Len(t, checkout.Groups(), 3)
}

func TestConfig_Build_DeclaredHashWins(t *testing.T) {
	cfg, err := ParseConfig([]byte(validConfigYAML))
	require.NoError(t, err)

	registry := NewRegistry()
	require.NoError(t, cfg.Build(registry, WithHasher(hasher.NewXXH3())))

	checkout, ok := registry.Lookup("checkout-v2")
	require.True(t, ok)
	require.Equal(t, hasher.ContractMD5, checkout.Contract(), "declared contract must override option")

	// An empty hash field resolves to the default contract, which also wins
	// over the option: the declaration is authoritative either way.
	pricing, ok := registry.Lookup("pricing-q1")
	require.True(t, ok)
	require.Equal(t, hasher.ContractSHA256, pricing.Contract())
}

func TestConfig_Build_PropagatesWeightErrors(t *testing.T) {
	cfg := &Config{Experiments: []ExperimentConfig{{
		Name: "bad",
		Salt: "s",
		Groups: []GroupConfig{
			{Label: "control", Weight: -1},
			{Label: "test", Weight: 2},
		},
	}}}

	err := cfg.Build(NewRegistry())

	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidWeights)
}

func TestConfig_Build_NilRegistry(t *testing.T) {
	cfg, err := ParseConfig([]byte(validConfigYAML))
	require.NoError(t, err)

	require.ErrorIs(t, cfg.Build(nil), ErrInvalidConfig)
}
