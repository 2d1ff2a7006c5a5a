package tail

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/vburojevic/scalyr-tool/internal/api"
	"github.com/vburojevic/scalyr-tool/internal/domain"
)

// Defaults for the poll loop
const (
	DefaultMaxSessionDuration = 600 * time.Second
	DefaultReadbackWindow     = 600 * time.Second
	DefaultMaxRecordsPerPoll  = 1000
	DefaultPollInterval       = 10 * time.Second
	DefaultPriority           = api.PriorityLow
)

// Config controls the poll loop
type Config struct {
	MaxSessionDuration time.Duration
	ReadbackWindow     time.Duration
	MaxRecordsPerPoll  int
	PollInterval       time.Duration
	InitialLines       int
	SeenCapacity       int
	Priority           string
}

// DefaultConfig returns the standard tail configuration
func DefaultConfig() Config {
	return Config{
		MaxSessionDuration: DefaultMaxSessionDuration,
		ReadbackWindow:     DefaultReadbackWindow,
		MaxRecordsPerPoll:  DefaultMaxRecordsPerPoll,
		PollInterval:       DefaultPollInterval,
		InitialLines:       10,
		SeenCapacity:       DefaultSeenCapacity,
		Priority:           DefaultPriority,
	}
}

// Query asks for the newest records in [Start, End]
type Query struct {
	Filter   string
	Start    time.Time
	End      time.Time
	MaxCount int
	Priority string
}

// Querier runs one tail-mode query and returns records newest first.
type Querier interface {
	TailQuery(ctx context.Context, q Query) ([]domain.LogRecord, error)
}

// Sink receives the engine's output.
type Sink interface {
	Emit(rec domain.LogRecord) error
	Warn(msg string)
}

// Outcome says why Run returned
type Outcome int

const (
	OutcomeExpired Outcome = iota
	OutcomeInterrupted
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeExpired:
		return "expired"
	case OutcomeInterrupted:
		return "interrupted"
	default:
		return "failed"
	}
}

// Engine emulates a live log stream by polling a sliding query window.
type Engine struct {
	cfg     Config
	filter  string
	querier Querier
	sink    Sink
	clk     clock.Clock
	log     *zap.SugaredLogger
	session *Session
}

// Option configures an Engine
type Option func(*Engine)

// WithClock replaces the wall clock (tests use clock.NewMock).
func WithClock(clk clock.Clock) Option {
	return func(e *Engine) {
		if clk != nil {
			e.clk = clk
		}
	}
}

// WithLogger sets the debug logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// New creates an engine for filter
func New(cfg Config, filter string, querier Querier, sink Sink, opts ...Option) *Engine {
	if cfg.MaxRecordsPerPoll <= 0 {
		cfg.MaxRecordsPerPoll = DefaultMaxRecordsPerPoll
	}
	if cfg.Priority == "" {
		cfg.Priority = DefaultPriority
	}
	if cfg.SeenCapacity <= 0 {
		cfg.SeenCapacity = DefaultSeenCapacity
	}
	// A full batch must fit in the window or it evicts its own keys.
	if cfg.SeenCapacity < cfg.MaxRecordsPerPoll {
		cfg.SeenCapacity = cfg.MaxRecordsPerPoll
	}
	e := &Engine{
		cfg:     cfg,
		filter:  filter,
		querier: querier,
		sink:    sink,
		clk:     clock.New(),
		log:     zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Session returns the current session state, or nil before the first poll.
func (e *Engine) Session() *Session {
	return e.session
}

func (e *Engine) start() {
	backfill := e.cfg.InitialLines
	if backfill > e.cfg.MaxRecordsPerPoll {
		e.sink.Warn(fmt.Sprintf("cannot show more than %d initial lines; showing %d",
			e.cfg.MaxRecordsPerPoll, e.cfg.MaxRecordsPerPoll))
		backfill = e.cfg.MaxRecordsPerPoll
	}
	if backfill < 0 {
		backfill = 0
	}
	e.session = NewSession(e.clk.Now(), backfill, e.cfg.SeenCapacity)
}

// Run polls until the session exceeds MaxSessionDuration or ctx is
// cancelled. Query and sink errors end the run with OutcomeFailed.
func (e *Engine) Run(ctx context.Context) (Outcome, error) {
	if e.session == nil {
		e.start()
	}
	for {
		if ctx.Err() != nil {
			return OutcomeInterrupted, nil
		}

		cycleStart := e.clk.Now()
		if err := e.Poll(ctx); err != nil {
			if ctx.Err() != nil {
				return OutcomeInterrupted, nil
			}
			return OutcomeFailed, err
		}

		if wait := e.cfg.PollInterval - e.clk.Since(cycleStart); wait > 0 {
			timer := e.clk.Timer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return OutcomeInterrupted, nil
			case <-timer.C:
			}
		}

		e.session.Now = e.clk.Now()
		if e.session.Elapsed() > e.cfg.MaxSessionDuration {
			e.log.Debugf("tail expired after %s (%d polls, %d records)",
				e.session.Elapsed(), e.session.Polls, e.session.Emitted)
			return OutcomeExpired, nil
		}
	}
}

// Poll runs a single cycle: query the window ending now, filter, emit.
func (e *Engine) Poll(ctx context.Context) error {
	if e.session == nil {
		e.start()
	}
	now := e.clk.Now()
	e.session.Now = now

	records, err := e.querier.TailQuery(ctx, Query{
		Filter:   e.filter,
		Start:    now.Add(-e.cfg.ReadbackWindow),
		End:      now,
		MaxCount: e.cfg.MaxRecordsPerPoll,
		Priority: e.cfg.Priority,
	})
	if err != nil {
		return err
	}

	batch := e.session.Observe(records, e.cfg.MaxRecordsPerPoll)
	if batch.Gap {
		e.sink.Warn(fmt.Sprintf("received %d new records in one poll; some log events may have been skipped",
			len(batch.New)))
	}
	for _, rec := range batch.Display {
		if err := e.sink.Emit(rec); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
		e.session.Emitted++
	}

	e.log.Debugf("poll %d: %d returned, %d new, %d shown, %d remembered",
		e.session.Polls, len(records), len(batch.New), len(batch.Display), e.session.Seen.Len())
	return nil
}
