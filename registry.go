package absplit

import (
	"fmt"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/bbs-caleb/absplit/internal/logging"
	"github.com/bbs-caleb/absplit/types"
)

// Registry is a process-local, concurrent index of named experiments.
//
// The core Splitter cannot validate salt uniqueness; that responsibility
// sits with the caller layer, and the Registry is where it lands: Register
// logs a warning when two experiments share a salt, since shared salts
// produce correlated assignments across supposedly independent experiments.
//
// All methods are safe for concurrent use.
type Registry struct {
	logger      types.Logger
	experiments *xsync.Map[string, *Splitter]
	salts       *xsync.Map[string, string] // salt -> first experiment registered with it
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger used for salt-reuse warnings.
func WithRegistryLogger(logger types.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates an empty experiment registry.
//
// Parameters:
//   - opts: Optional configuration (WithRegistryLogger)
//
// Returns:
//   - *Registry: Empty registry ready for use
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		experiments: xsync.NewMap[string, *Splitter](),
		salts:       xsync.NewMap[string, string](),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	if r.logger == nil {
		r.logger = logging.NewNop()
	}

	return r
}

// Register adds a named experiment.
//
// Registering two experiments with the same salt is legal but logged as a
// warning: their assignments will be correlated, not independent.
//
// Parameters:
//   - name: Experiment name, unique within the registry
//   - splitter: The experiment's splitter
//
// Returns:
//   - error: types.ErrExperimentExists when the name is taken,
//     types.ErrInvalidConfig for an empty name or nil splitter
func (r *Registry) Register(name string, splitter *Splitter) error {
	if name == "" {
		return fmt.Errorf("%w: empty experiment name", types.ErrInvalidConfig)
	}
	if splitter == nil {
		return fmt.Errorf("%w: nil splitter for experiment %q", types.ErrInvalidConfig, name)
	}

	if _, taken := r.experiments.LoadOrStore(name, splitter); taken {
		return fmt.Errorf("%w: %q", types.ErrExperimentExists, name)
	}

	if owner, reused := r.salts.LoadOrStore(splitter.Salt(), name); reused && owner != name {
		r.logger.Warn(
			"salt reused across experiments; their assignments will be correlated",
			"salt", splitter.Salt(),
			"experiment", name,
			"already_used_by", owner,
		)
	}

	return nil
}

// Lookup returns the splitter registered under name.
func (r *Registry) Lookup(name string) (*Splitter, bool) {
	return r.experiments.Load(name)
}

// Deregister removes a named experiment. Removing an unknown name is a no-op.
func (r *Registry) Deregister(name string) {
	splitter, ok := r.experiments.LoadAndDelete(name)
	if !ok {
		return
	}

	// Release the salt index only if this experiment owns it; a later
	// duplicate registration keeps its warning history intact.
	if owner, ok := r.salts.Load(splitter.Salt()); ok && owner == name {
		r.salts.Delete(splitter.Salt())
	}
}

// Assign maps an identifier to a group under a named experiment.
//
// Parameters:
//   - experiment: Registered experiment name
//   - identifier: Subject identifier, canonicalizable per (*Splitter).Assign
//
// Returns:
//   - string: Group label
//   - error: types.ErrExperimentNotFound for an unknown name, or any
//     (*Splitter).Assign error
func (r *Registry) Assign(experiment string, identifier any) (string, error) {
	splitter, ok := r.experiments.Load(experiment)
	if !ok {
		return "", fmt.Errorf("%w: %q", types.ErrExperimentNotFound, experiment)
	}

	return splitter.Assign(identifier)
}

// Len returns the number of registered experiments.
func (r *Registry) Len() int {
	return r.experiments.Size()
}
