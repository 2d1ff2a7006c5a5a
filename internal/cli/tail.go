package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/vburojevic/scalyr-tool/internal/api"
	"github.com/vburojevic/scalyr-tool/internal/config"
	"github.com/vburojevic/scalyr-tool/internal/domain"
	"github.com/vburojevic/scalyr-tool/internal/filter"
	"github.com/vburojevic/scalyr-tool/internal/output"
	"github.com/vburojevic/scalyr-tool/internal/tail"
)

// TailCmd shows a live stream of log records by polling the query API
type TailCmd struct {
	TailTuningFlags
	ClientFilterFlags

	Filter string `arg:"" optional:"" help:"Query filter (default: all records)"`
	Lines  int    `short:"n" default:"${config_tail_lines}" help:"Number of existing records to show on start"`
	Output string `short:"o" default:"${config_tail_output}" enum:"multiline,singleline,messageonly,json" help:"Output style (json: NDJSON with a tail_id)"`
}

// Run executes the tail command
func (c *TailCmd) Run(globals *Globals) error {
	if _, err := c.buildFilters(); err != nil {
		return err
	}
	token, err := globals.resolveToken(config.ScopeReadLogs)
	if err != nil {
		return err
	}
	client, err := globals.newClient()
	if err != nil {
		return err
	}

	ctx, stop := commandContext()
	defer stop()

	return c.run(ctx, globals, &apiQuerier{client: client, token: token})
}

func (c *TailCmd) engineConfig() tail.Config {
	cfg := c.TailTuningFlags.apply(tail.DefaultConfig())
	cfg.InitialLines = c.Lines
	return cfg
}

func (c *TailCmd) run(ctx context.Context, globals *Globals, querier *apiQuerier) error {
	// Unique ID for this tail invocation (carried on all NDJSON events)
	tailID := uuid.NewString()
	chain, err := c.buildFilters()
	if err != nil {
		return err
	}
	sink := newTailSink(globals, c.Output, tailID)
	sink.filters = chain
	querier.onSessions = sink.setSessions

	engine := tail.New(c.engineConfig(), c.Filter, querier, sink,
		tail.WithClock(globals.clock()),
		tail.WithLogger(globals.logger()))
	globals.Debug("tail %s: filter=%q lines=%d output=%s", tailID, c.Filter, c.Lines, c.Output)

	outcome, err := engine.Run(ctx)
	session := engine.Session()
	globals.Debug("tail %s %s: %d polls, %d records, %d gap warnings",
		tailID, outcome, session.Polls, session.Emitted, session.GapWarnings)
	if outcome == tail.OutcomeFailed {
		return err
	}

	if sink.emitter != nil {
		if err := sink.emitter.TailEnd(session.Summary(tailID, outcome.String())); err != nil {
			return err
		}
	}
	switch outcome {
	case tail.OutcomeExpired:
		emitNotice(globals, fmt.Sprintf("Tail session expired after %s; restart the command to keep watching.",
			engine.Config().MaxSessionDuration))
	case tail.OutcomeInterrupted:
		emitNotice(globals, "Tail has quit.")
	}
	return nil
}

// apiQuerier runs tail-mode log queries through the API client.
type apiQuerier struct {
	client     *api.Client
	token      string
	onSessions func(map[string]domain.SessionInfo)
}

func (q *apiQuerier) TailQuery(ctx context.Context, query tail.Query) ([]domain.LogRecord, error) {
	req := api.NewLogQuery(q.token)
	req.Filter = query.Filter
	req.StartTime = strconv.FormatInt(query.Start.UnixNano(), 10)
	req.EndTime = strconv.FormatInt(query.End.UnixNano(), 10)
	req.MaxCount = query.MaxCount
	req.PageMode = api.PageModeTail
	req.Priority = query.Priority

	resp, err := q.client.Execute(ctx, api.EndpointQuery, req)
	if err != nil {
		return nil, err
	}
	result := api.DecodeQuery(resp)
	if q.onSessions != nil {
		q.onSessions(result.Sessions)
	}
	return result.Records, nil
}

// tailSink renders records as text, or as NDJSON when the output is json.
type tailSink struct {
	globals  *Globals
	text     *output.TextWriter
	emitter  *output.Emitter
	filters  *filter.Chain
	sessions map[string]domain.SessionInfo
}

func newTailSink(globals *Globals, style, tailID string) *tailSink {
	s := &tailSink{globals: globals, sessions: map[string]domain.SessionInfo{}}
	if style == outputJSON {
		s.emitter = output.NewEmitter(globals.Stdout, tailID)
		globals.emitter = s.emitter
		return s
	}
	s.text = output.NewTextWriter(globals.Stdout, style,
		output.WithSessions(s.sessions),
		output.WithColor(stdoutPainter(globals).Enabled))
	return s
}

// setSessions merges session metadata from the latest poll.
func (s *tailSink) setSessions(sessions map[string]domain.SessionInfo) {
	for id, info := range sessions {
		s.sessions[id] = info
	}
}

func (s *tailSink) Emit(rec domain.LogRecord) error {
	if !s.filters.Match(&rec) {
		return nil
	}
	if s.emitter != nil {
		return s.emitter.Record(rec)
	}
	return s.text.Write(rec)
}

func (s *tailSink) Warn(msg string) {
	emitWarning(s.globals, msg)
}
