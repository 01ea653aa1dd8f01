package stream

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/bbs-caleb/absplit"
	"github.com/bbs-caleb/absplit/internal/logging"
	"github.com/bbs-caleb/absplit/types"
)

// Headers stamped on enriched messages.
const (
	// GroupHeader carries the assigned group label.
	GroupHeader = "Absplit-Group"

	// ExperimentHeader carries the experiment salt the label was computed under.
	ExperimentHeader = "Absplit-Experiment"
)

const (
	defaultBatchSize    = 100
	defaultFetchTimeout = 5 * time.Second
	defaultRetryBackoff = time.Second
)

// Config configures an Enricher.
type Config struct {
	// Stream is the JetStream stream to consume identifiers from.
	Stream string `yaml:"stream"`

	// Consumer is the durable consumer name. Reusing the name resumes from
	// the last acknowledged message.
	Consumer string `yaml:"consumer"`

	// OutSubject is the subject enriched messages are published to.
	OutSubject string `yaml:"outSubject"`

	// IdentifierHeader names the message header carrying the identifier.
	// Empty means the identifier is the message payload.
	IdentifierHeader string `yaml:"identifierHeader,omitempty"`

	// BatchSize is the pull buffer size. Default: 100.
	BatchSize int `yaml:"batchSize,omitempty"`

	// FetchTimeout is the expiry per pull request. Default: 5s.
	FetchTimeout time.Duration `yaml:"fetchTimeout,omitempty"`

	// RetryBackoff is the wait after a transient fetch error. Default: 1s.
	RetryBackoff time.Duration `yaml:"retryBackoff,omitempty"`
}

// Validate checks required fields.
func (cfg *Config) Validate() error {
	if cfg.Stream == "" {
		return fmt.Errorf("%w: stream name is required", types.ErrInvalidConfig)
	}
	if cfg.Consumer == "" {
		return fmt.Errorf("%w: consumer name is required", types.ErrInvalidConfig)
	}
	if cfg.OutSubject == "" {
		return fmt.Errorf("%w: output subject is required", types.ErrInvalidConfig)
	}

	return nil
}

func (cfg *Config) setDefaults() {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = defaultFetchTimeout
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = defaultRetryBackoff
	}
}

// Enricher stamps experiment group labels onto a message stream.
type Enricher struct {
	js       jetstream.JetStream
	splitter *absplit.Splitter
	config   Config
	logger   types.Logger
}

// Option configures an Enricher.
type Option func(*Enricher)

// WithLogger sets the logger used for consume-loop diagnostics.
func WithLogger(logger types.Logger) Option {
	return func(e *Enricher) {
		e.logger = logger
	}
}

// NewEnricher creates an enricher for the given splitter.
//
// Parameters:
//   - js: JetStream context
//   - splitter: Splitter computing the group labels
//   - cfg: Stream, consumer, and output configuration
//   - opts: Optional configuration (WithLogger)
//
// Returns:
//   - *Enricher: Enricher ready to Run
//   - error: types.ErrInvalidConfig for missing required fields
//
// Example:
//
//	enricher, err := stream.NewEnricher(js, splitter, stream.Config{
//	    Stream:     "signups",
//	    Consumer:   "absplit-pricing",
//	    OutSubject: "signups.assigned",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	go enricher.Run(ctx)
func NewEnricher(js jetstream.JetStream, splitter *absplit.Splitter, cfg Config, opts ...Option) (*Enricher, error) {
	if js == nil {
		return nil, fmt.Errorf("%w: JetStream context is required", types.ErrInvalidConfig)
	}
	if splitter == nil {
		return nil, fmt.Errorf("%w: splitter is required", types.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.setDefaults()

	e := &Enricher{
		js:       js,
		splitter: splitter,
		config:   cfg,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	if e.logger == nil {
		e.logger = logging.NewNop()
	}

	return e, nil
}

// Run consumes messages until the context is canceled.
//
// Each message is enriched and republished to the output subject, then
// acknowledged. Publish failures are NAKed for redelivery; re-enrichment is
// deterministic, so redelivery is harmless. Messages whose identifier is
// missing are terminated instead: a deterministic input error never succeeds
// on retry.
//
// Parameters:
//   - ctx: Context; cancellation stops the loop and returns ctx.Err()
//
// Returns:
//   - error: Consumer setup error, or ctx.Err() after cancellation
func (e *Enricher) Run(ctx context.Context) error {
	stream, err := e.js.Stream(ctx, e.config.Stream)
	if err != nil {
		return fmt.Errorf("failed to look up stream %s: %w", e.config.Stream, err)
	}

	consumer, err := stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Durable:   e.config.Consumer,
		AckPolicy: jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer %s: %w", e.config.Consumer, err)
	}

	iter, err := consumer.Messages(
		jetstream.PullMaxMessages(e.config.BatchSize),
		jetstream.PullExpiry(e.config.FetchTimeout),
		jetstream.PullHeartbeat(e.config.FetchTimeout/2),
	)
	if err != nil {
		return fmt.Errorf("failed to create message iterator: %w", err)
	}
	defer iter.Stop()

	e.logger.Info("enricher started",
		"stream", e.config.Stream,
		"consumer", e.config.Consumer,
		"outSubject", e.config.OutSubject,
		"experiment", e.splitter.Salt(),
		"contract", e.splitter.Contract(),
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := iter.Next()
		if err != nil {
			if errors.Is(err, jetstream.ErrMsgIteratorClosed) {
				return nil
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}

			e.logger.Warn("error fetching next message, retrying", "error", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(e.config.RetryBackoff):
				continue
			}
		}

		e.handle(ctx, msg)
	}
}

// handle enriches and republishes one message, then settles it.
func (e *Enricher) handle(ctx context.Context, msg jetstream.Msg) {
	identifier, ok := e.identifier(msg)
	if !ok {
		// Missing identifier is a permanent input error; redelivery cannot fix it.
		e.logger.Error("message has no identifier, terminating",
			"subject", msg.Subject(),
			"identifierHeader", e.config.IdentifierHeader,
		)
		_ = msg.Term()

		return
	}

	label, err := e.splitter.Assign(identifier)
	if err != nil {
		e.logger.Error("assignment failed, terminating", "identifier", identifier, "error", err)
		_ = msg.Term()

		return
	}

	out := &nats.Msg{
		Subject: e.config.OutSubject,
		Data:    msg.Data(),
		Header:  msg.Headers(),
	}
	if out.Header == nil {
		out.Header = nats.Header{}
	}
	out.Header.Set(GroupHeader, label)
	out.Header.Set(ExperimentHeader, e.splitter.Salt())

	if _, err := e.js.PublishMsg(ctx, out); err != nil {
		e.logger.Warn("failed to publish enriched message, sending NAK",
			"subject", msg.Subject(),
			"error", err,
		)
		_ = msg.Nak()

		return
	}

	_ = msg.Ack()
}

// identifier extracts the subject identifier from a message.
func (e *Enricher) identifier(msg jetstream.Msg) (string, bool) {
	if e.config.IdentifierHeader == "" {
		data := msg.Data()

		return string(data), len(data) > 0
	}

	id := msg.Headers().Get(e.config.IdentifierHeader)

	return id, id != ""
}
