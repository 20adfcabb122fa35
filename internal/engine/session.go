package engine

import (
	"context"
	"sync"

	"github.com/carbonlens/carbonlens/internal/engine/batch"
	"github.com/carbonlens/carbonlens/internal/ingest"
	"github.com/carbonlens/carbonlens/internal/logging"
)

// Session owns the session-lifetime history of emission breakdowns: an
// ordered, append-only accumulation across successive imports. Nothing is
// deduplicated or persisted; the history resets when the process restarts.
//
// Appends are serialized with a mutex so concurrent imports can share one
// session; conversion itself stays pure and lock-free.
type Session struct {
	mu      sync.Mutex
	engine  *Engine
	history []Breakdown
	goalKg  float64
}

// NewSession creates a Session backed by the given engine. goalKg is the
// monthly emission goal; it is recorded and reported but not enforced.
func NewSession(engine *Engine, goalKg float64) *Session {
	return &Session{engine: engine, goalKg: goalKg}
}

// Engine returns the engine this session converts with.
func (s *Session) Engine() *Engine {
	return s.engine
}

// GoalKg returns the recorded monthly emission goal in kgCO2.
func (s *Session) GoalKg() float64 {
	return s.goalKg
}

// Append adds a batch of breakdowns to the history. This is the sole
// mutation point of session state.
func (s *Session) Append(batch []Breakdown) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, batch...)
}

// History returns a copy of the accumulated breakdowns in append order.
func (s *Session) History() []Breakdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Breakdown, len(s.history))
	copy(out, s.history)
	return out
}

// Len returns the number of accumulated breakdowns.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// ImportRows converts rows chunk by chunk and, when the whole batch
// converts cleanly, appends it to the history. A row failure aborts the
// import with a RowError carrying the absolute row index, and the history
// is left untouched: imports are all-or-nothing.
func (s *Session) ImportRows(ctx context.Context, rows []ingest.RawRow) ([]Breakdown, error) {
	log := logging.FromContext(ctx)

	breakdowns := make([]Breakdown, 0, len(rows))
	proc := batch.NewProcessorWithDefaults[ingest.RawRow]().
		WithProgress(func(p batch.Progress) {
			log.Debug().
				Ctx(ctx).
				Str("component", "engine").
				Str("operation", "import_rows").
				Int("processed", p.Processed).
				Int("total", p.TotalItems).
				Msg("import progress")
		})

	err := proc.Process(ctx, rows, func(ctx context.Context, chunk []ingest.RawRow, offset int) error {
		for i, row := range chunk {
			b, convErr := s.engine.Convert(ctx, row)
			if convErr != nil {
				return &RowError{Index: offset + i, Err: convErr}
			}
			breakdowns = append(breakdowns, b)
		}
		return nil
	})
	if err != nil {
		log.Error().
			Ctx(ctx).
			Str("component", "engine").
			Err(err).
			Msg("import aborted")
		return nil, err
	}

	s.Append(breakdowns)

	log.Info().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "import_rows").
		Int("imported", len(breakdowns)).
		Int("history_len", s.Len()).
		Msg("rows imported")

	return breakdowns, nil
}

// ImportFile loads the source at path through the input normalizer and
// imports its rows.
func (s *Session) ImportFile(ctx context.Context, path string) ([]Breakdown, error) {
	rows, err := ingest.LoadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return s.ImportRows(ctx, rows)
}
