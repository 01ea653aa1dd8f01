package absplit

import (
	"fmt"
	"math"

	"github.com/bbs-caleb/absplit/hasher"
	"github.com/bbs-caleb/absplit/internal/ident"
	"github.com/bbs-caleb/absplit/internal/logging"
	"github.com/bbs-caleb/absplit/internal/metrics"
	"github.com/bbs-caleb/absplit/types"
)

// Two-way shorthand labels, matching the documented SQL equivalents.
const (
	LabelControl = "control"
	LabelTest    = "test"
)

// Splitter deterministically maps identifiers to experiment groups.
//
// A Splitter is an immutable value object: construct one per experiment salt
// and share it freely across goroutines. Assignment is a pure function with
// no locking, no shared mutable state, and no I/O.
type Splitter struct {
	salt      string
	saltBytes []byte
	groups    []types.Group // weights normalized to sum 1.0
	bounds    []float64     // cumulative upper bounds; bounds[len-1] == 1.0
	hasher    types.Hasher
	logger    types.Logger
	metrics   types.MetricsCollector
}

// New creates a Splitter for the given experiment salt and ordered groups.
//
// Weights must be non-negative with a positive sum; they are normalized to
// sum 1.0, so {50, 25, 25} and {0.5, 0.25, 0.25} declare the same split.
// Group order defines the cumulative bucket boundaries: reordering groups
// changes individual assignments while preserving each label's aggregate
// share.
//
// The salt must remain constant for the lifetime of the experiment. An empty
// salt is legal but logged as a warning: without a salt, every experiment
// using the same contract partitions the identifier space identically, which
// destroys cross-experiment independence.
//
// Parameters:
//   - salt: Experiment identifier, e.g. "pricing_test_2024_q1"
//   - groups: Ordered group labels and weights, at least two
//   - opts: Optional configuration (WithHasher, WithLogger, WithMetrics)
//
// Returns:
//   - *Splitter: Immutable splitter ready for assignment
//   - error: types.ErrInvalidWeights for an invalid weight vector
//
// Example:
//
//	splitter, err := absplit.New("pricing_test_2024_q1", []types.Group{
//	    {Label: "control", Weight: 0.5},
//	    {Label: "test", Weight: 0.5},
//	})
func New(salt string, groups []types.Group, opts ...Option) (*Splitter, error) {
	s := &Splitter{
		salt:      salt,
		saltBytes: []byte(salt),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	s.applyDefaults()

	normalized, bounds, err := normalizeGroups(groups)
	if err != nil {
		return nil, err
	}
	s.groups = normalized
	s.bounds = bounds

	if salt == "" {
		s.logger.Warn("empty salt degrades cross-experiment independence; use a unique salt per experiment")
	}

	return s, nil
}

// NewTwoWay creates a Splitter for a two-way control/test split.
//
// testShare is the fraction of the population routed to the "test" group;
// the remainder goes to "control". This mirrors the common warehouse idiom
// MOD(hash, 100) < 50 for a 50/50 split.
//
// Parameters:
//   - salt: Experiment identifier
//   - testShare: Fraction in [0, 1] routed to the test group
//   - opts: Optional configuration (WithHasher, WithLogger, WithMetrics)
//
// Returns:
//   - *Splitter: Immutable splitter ready for assignment
//   - error: types.ErrInvalidWeights when testShare is outside [0, 1]
func NewTwoWay(salt string, testShare float64, opts ...Option) (*Splitter, error) {
	if math.IsNaN(testShare) || testShare < 0 || testShare > 1 {
		return nil, fmt.Errorf("%w: test share %v outside [0, 1]", types.ErrInvalidWeights, testShare)
	}

	groups := []types.Group{
		{Label: LabelControl, Weight: 1 - testShare},
		{Label: LabelTest, Weight: testShare},
	}

	return New(salt, groups, opts...)
}

// Assign deterministically maps an identifier to a group label.
//
// The identifier is canonicalized to bytes (strings and []byte as-is,
// integers as base-10 ASCII, fmt.Stringer via String()), concatenated after
// the salt, hashed under the splitter's bucketing contract, and mapped onto
// the cumulative weight boundaries. Boundaries are half-open [lower, upper):
// a value exactly on a boundary belongs to the group starting there.
//
// The operation is referentially transparent: no side effects beyond an
// optional metrics observation, bounded single-hash cost, safe from any
// number of goroutines.
//
// Parameters:
//   - identifier: Stable subject identifier (string, []byte, integer, or fmt.Stringer)
//
// Returns:
//   - string: Group label
//   - error: types.ErrUnsupportedIdentifier when the identifier cannot be
//     canonicalized deterministically (floats are rejected on purpose)
func (s *Splitter) Assign(identifier any) (string, error) {
	key, err := ident.Canonical(identifier)
	if err != nil {
		return "", err
	}

	// salt || identifier, salt first, matching the documented SQL equivalents.
	buf := make([]byte, 0, len(s.saltBytes)+len(key))
	buf = append(buf, s.saltBytes...)
	buf = append(buf, key...)

	label := s.groups[s.bucket(s.hasher.Fraction(buf))].Label
	s.metrics.IncAssignment(s.salt, label)

	return label, nil
}

// bucket maps a fraction in [0, 1) to a group index by walking the cumulative
// upper bounds in declaration order with a strict < comparison.
func (s *Splitter) bucket(r float64) int {
	for i, bound := range s.bounds {
		if r < bound {
			return i
		}
	}

	// bounds[len-1] is forced to 1.0 and r < 1.0, so this is unreachable
	// except for float rounding at the very top of the interval.
	return len(s.bounds) - 1
}

// Salt returns the experiment salt.
func (s *Splitter) Salt() string {
	return s.salt
}

// Contract returns the name of the bucketing contract, e.g. "sha256/8".
//
// Two engines agree on assignments if and only if they agree on the contract
// name, the salt, and the canonical identifier encoding.
func (s *Splitter) Contract() string {
	return s.hasher.Name()
}

// Groups returns a copy of the groups with normalized weights (summing to 1.0).
func (s *Splitter) Groups() []types.Group {
	out := make([]types.Group, len(s.groups))
	copy(out, s.groups)

	return out
}

func (s *Splitter) applyDefaults() {
	if s.hasher == nil {
		s.hasher = hasher.Default()
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	if s.metrics == nil {
		s.metrics = metrics.NewNop()
	}
}

// normalizeGroups validates a weight vector and precomputes cumulative
// upper bounds. The final bound is forced to exactly 1.0 so the last group
// absorbs any float rounding residue.
func normalizeGroups(groups []types.Group) ([]types.Group, []float64, error) {
	if len(groups) < 2 {
		return nil, nil, fmt.Errorf("%w: need at least two groups, got %d", types.ErrInvalidWeights, len(groups))
	}

	seen := make(map[string]struct{}, len(groups))
	sum := 0.0
	for _, g := range groups {
		if g.Label == "" {
			return nil, nil, fmt.Errorf("%w: empty group label", types.ErrInvalidWeights)
		}
		if _, dup := seen[g.Label]; dup {
			return nil, nil, fmt.Errorf("%w: duplicate group label %q", types.ErrInvalidWeights, g.Label)
		}
		seen[g.Label] = struct{}{}

		if math.IsNaN(g.Weight) || math.IsInf(g.Weight, 0) {
			return nil, nil, fmt.Errorf("%w: group %q weight is not finite", types.ErrInvalidWeights, g.Label)
		}
		if g.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: group %q has negative weight %v", types.ErrInvalidWeights, g.Label, g.Weight)
		}
		sum += g.Weight
	}

	if sum <= 0 {
		return nil, nil, fmt.Errorf("%w: weights sum to zero", types.ErrInvalidWeights)
	}

	normalized := make([]types.Group, len(groups))
	bounds := make([]float64, len(groups))
	cumulative := 0.0
	for i, g := range groups {
		normalized[i] = types.Group{Label: g.Label, Weight: g.Weight / sum}
		cumulative += normalized[i].Weight
		bounds[i] = cumulative
	}
	bounds[len(bounds)-1] = 1.0

	return normalized, bounds, nil
}
