package absplit

import "github.com/bbs-caleb/absplit/types"

// Option configures a Splitter with optional dependencies.
type Option func(*Splitter)

// WithHasher sets the bucketing contract.
//
// The default is hasher.Default() (sha256/8). Picking a contract is a
// versioned, permanent decision per experiment: assignments produced under
// one contract are not reproducible under another.
//
// Parameters:
//   - h: Hasher implementation
//
// Returns:
//   - Option: Functional option for New / NewTwoWay
//
// Example:
//
//	splitter, err := absplit.New(salt, groups, absplit.WithHasher(hasher.NewMD5()))
func WithHasher(h types.Hasher) Option {
	return func(s *Splitter) {
		s.hasher = h
	}
}

// WithLogger sets a logger.
//
// The default logger discards everything. The splitter only logs
// construction-time cautions (e.g. an empty salt); assignment itself never
// logs.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for New / NewTwoWay
func WithLogger(logger types.Logger) Option {
	return func(s *Splitter) {
		s.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New / NewTwoWay
//
// Example:
//
//	collector := metrics.NewPrometheus(prometheus.DefaultRegisterer)
//	splitter, err := absplit.New(salt, groups, absplit.WithMetrics(collector))
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(s *Splitter) {
		s.metrics = metrics
	}
}
