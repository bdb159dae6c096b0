// Package session runs one game: exploration of the manor, the accusation and its verdict.
package session

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"detective/internal/errors"
	"detective/internal/game"
	"detective/internal/game/clues"
	"detective/internal/game/events"
	"detective/internal/game/explore"
	"detective/internal/game/verdict"
	"detective/internal/logging"
	"detective/internal/observability"
	"detective/internal/text"
)

const historySize = 100

var ErrPhase = errors.NewSentinel("action not allowed in this phase")

// Phase of a session.
type Phase int

const (
	Exploring Phase = iota
	Accusing
	Done
)

func (p Phase) String() string {
	switch p {
	case Exploring:
		return "exploring"
	case Accusing:
		return "accusing"
	default:
		return "done"
	}
}

// Recorder stores finished sessions. *logging.Journal implements it.
type Recorder interface {
	Record(ctx context.Context, entry logging.JournalEntry) (int64, error)
}

type Deps struct {
	Case    game.Case
	Options explore.Options
	// Journal is optional.
	Journal Recorder
	Logger  *slog.Logger
	// Tracer is optional.
	Tracer trace.Tracer
}

type Session struct {
	id       string
	c        game.Case
	clues    *clues.Set
	explorer *explore.Explorer
	history  *game.History
	journal  Recorder
	logger   *slog.Logger
	tracer   trace.Tracer
	phase    Phase
	started  bool
	verdict  *verdict.Verdict
}

func New(deps Deps) *Session {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	tracer := deps.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}

	set := clues.New()
	return &Session{
		id:       uuid.NewString(),
		c:        deps.Case,
		clues:    set,
		explorer: explore.New(deps.Case.Manor.Root(), set, deps.Options),
		history:  game.NewHistory(historySize),
		journal:  deps.Journal,
		logger:   logger.With("source", "Session"),
		tracer:   tracer,
		phase:    Exploring,
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Phase() Phase {
	return s.phase
}

// Context tags ctx with the session id for logs and spans.
func (s *Session) Context(ctx context.Context) context.Context {
	ctx = observability.WithSessionID(ctx, s.id)
	return logging.WithAttrs(ctx, slog.String("session", s.id))
}

// Start greets the player and enters the first room. Only the first call has an effect.
func (s *Session) Start(ctx context.Context) []string {
	if s.started {
		return nil
	}
	s.started = true
	ctx = s.Context(ctx)
	s.logger.InfoContext(ctx, "session started", slog.Int("rooms", s.c.Manor.Len()))

	evs := s.explorer.Start()
	s.history.AddEvents(evs)

	lines := append(text.Welcome(), text.Events(evs)...)
	if s.explorer.Done() {
		lines = append(lines, s.finishExploring(ctx)...)
	}
	return lines
}

// Prompt returns the question the player is answering, or "" once the session is over.
func (s *Session) Prompt() string {
	switch s.phase {
	case Exploring:
		return text.Prompt(s.explorer.Prompt(), s.explorer.Current())
	case Accusing:
		return text.AccusePrompt()
	default:
		return ""
	}
}

// Handle applies one line of player input and returns the lines to show.
func (s *Session) Handle(ctx context.Context, line string) ([]string, error) {
	if !s.started {
		return nil, errors.Wrap(ErrPhase, "handle before start")
	}
	ctx = s.Context(ctx)
	line = strings.TrimRight(line, "\r\n")

	switch s.phase {
	case Exploring:
		return s.explore(ctx, line), nil
	case Accusing:
		return s.accuse(ctx, line), nil
	default:
		return nil, errors.Wrap(ErrPhase, "handle input", slog.String("phase", s.phase.String()))
	}
}

// Reject answers a line that could not be read, such as one too long to be a choice. The player is asked
// the same question again in every phase.
func (s *Session) Reject(ctx context.Context, line string) ([]string, error) {
	if !s.started || s.phase == Done {
		return nil, errors.Wrap(ErrPhase, "reject input", slog.String("phase", s.phase.String()))
	}
	ctx = s.Context(ctx)
	s.logger.DebugContext(ctx, "rejected input", slog.Int("length", len(line)))

	if s.phase == Accusing {
		return text.Event(events.New(events.Invalid, "")), nil
	}
	return text.Events(s.explorer.Reject(line)), nil
}

// EndOfInput is the input standing for a player who stopped answering: leave the manor, accuse nobody.
func (s *Session) EndOfInput() string {
	if s.phase == Exploring {
		return string(explore.KeyExit)
	}
	return ""
}

// Clues returns the collected clues in order.
func (s *Session) Clues() []string {
	return slices.Collect(s.clues.InOrder())
}

// Verdict returns the verdict once an accusation was judged.
func (s *Session) Verdict() (verdict.Verdict, bool) {
	if s.verdict == nil {
		return verdict.Verdict{}, false
	}
	return *s.verdict, true
}

func (s *Session) Transcript() []string {
	return s.history.GetEntries()
}

func (s *Session) explore(ctx context.Context, line string) []string {
	room := s.explorer.Current()
	ctx, span := s.tracer.Start(ctx, "explore.handle", trace.WithAttributes(
		attribute.String("room", room.Name()),
		attribute.String("input", line),
	))
	defer span.End()

	evs := s.explorer.Handle(line)
	s.history.AddEvents(evs)
	span.SetAttributes(
		attribute.Int("events", len(evs)),
		attribute.String("explore.state", s.explorer.State().String()),
	)
	s.logger.DebugContext(ctx, "handled input",
		slog.String("room", room.Name()),
		slog.String("input", line),
		slog.Any("events", events.Types(evs)),
		slog.Any("path", s.explorer.Path()),
	)

	lines := text.Events(evs)
	if s.explorer.Done() {
		lines = append(lines, s.finishExploring(ctx)...)
	}
	return lines
}

func (s *Session) finishExploring(ctx context.Context) []string {
	s.phase = Accusing
	collected := s.Clues()
	s.logger.InfoContext(ctx, "exploration finished",
		slog.Int("clues", len(collected)),
		slog.Int("visited", s.explorer.Visited()),
	)
	return append(
		[]string{""},
		text.Summary(collected, s.explorer.Visited(), s.c.Manor.Len(), s.c.Suspects.All())...,
	)
}

func (s *Session) accuse(ctx context.Context, name string) []string {
	s.phase = Done
	defer func() {
		s.logger.DebugContext(ctx, "session over",
			slog.Int("clue_depth", s.clues.Depth()),
			slog.Int("directory_size", s.c.Directory.Size()),
			slog.Int("directory_longest_chain", s.c.Directory.LongestChain()),
			slog.String("transcript", s.history.String()),
		)
	}()

	if name == "" {
		s.logger.InfoContext(ctx, "no accusation")
		return append(text.NoAccusation(), text.Goodbye()...)
	}

	var lines []string
	if !s.c.Suspects.Known(name) {
		lines = append(lines, text.UnknownSuspect(name, s.c.Suspects.Suggest(name))...)
	}

	ctx, span := s.tracer.Start(ctx, "verdict.judge")
	v := verdict.Judge(s.clues, s.c.Directory, name)
	span.SetAttributes(
		attribute.String("accused", name),
		attribute.Int("votes", v.Votes),
		attribute.String("verdict", v.Class.String()),
	)
	span.End()

	s.verdict = &v
	s.history.AddAccusation(name, v.Votes)
	s.logger.InfoContext(ctx, "accusation judged",
		slog.String("accused", name),
		slog.Int("votes", v.Votes),
		slog.String("verdict", v.Class.String()),
	)
	s.record(ctx, v)

	lines = append(lines, text.Verdict(v)...)
	return append(lines, text.Goodbye()...)
}

func (s *Session) record(ctx context.Context, v verdict.Verdict) {
	if s.journal == nil {
		return
	}
	id, err := s.journal.Record(ctx, logging.JournalEntry{
		SessionID:  s.id,
		Accused:    v.Accused,
		Votes:      v.Votes,
		Verdict:    v.Class.String(),
		Clues:      s.Clues(),
		Transcript: s.Transcript(),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "could not record verdict", errors.SlogError(err))
		return
	}
	s.logger.DebugContext(ctx, "verdict recorded", slog.Int64("id", id))
}
